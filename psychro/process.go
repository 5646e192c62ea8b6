package psychro

import "math"

// プロセスの種類
type ProcessType string

// プロセスの種類の定数
const (
	ProcessHeatingByCapacity    ProcessType = "heating_by_capacity"
	ProcessHeatingByTemperature ProcessType = "heating_by_temperature"
	ProcessCoolingByCapacitySHF ProcessType = "cooling_by_capacity_shf"
	ProcessCoolingByCapacityRH  ProcessType = "cooling_by_capacity_rh"
	ProcessCoolingByADP         ProcessType = "cooling_by_adp"
	ProcessHumidifyWaterSpray   ProcessType = "humidify_water_spray"
	ProcessHumidifySteam        ProcessType = "humidify_steam"
	ProcessMixing               ProcessType = "mixing"
	ProcessHeatExchangeTotal    ProcessType = "heat_exchange_total"
	ProcessHeatExchangeSeparate ProcessType = "heat_exchange_separate"
)

// 混合の入力となる1系統の空気
type MixStream struct {
	State   *AirState
	Airflow float64 // 風量, m3/h
}

// プロセスのパラメータ。
// 種類ごとに使用するフィールドが決まっている（各モデルの関数を参照）。
type ProcessParams struct {
	Airflow      float64 // 処理風量, m3/h
	Capacity     float64 // 能力の大きさ, kW
	SHF          float64 // 顕熱比, -
	TargetTemp   float64 // 出口乾球温度, degree C
	TargetRh     float64 // 出口相対湿度, %
	ADP          float64 // 装置露点温度, degree C
	BypassFactor float64 // バイパスファクタ, -
	MoistureFlow float64 // 加湿量, kg/h
	WaterTemp    float64 // 水温, degree C
	SteamTemp    float64 // 蒸気温度, degree C

	// 混合用
	Streams []MixStream

	// 全熱交換器用
	Exhaust        *AirState
	ExhaustAirflow float64 // 排気風量, m3/h
	Efficiency     float64 // 交換効率, -
	EffSensible    float64 // 顕熱交換効率, -
	EffLatent      float64 // 潜熱交換効率, -
}

// プロセスの熱・水分収支
type ProcessResult struct {
	Q_total    float64 // 全熱, kW（加熱を正、冷却を負とする）
	Q_sensible float64 // 顕熱, kW
	Q_latent   float64 // 潜熱, kW
	Dh         float64 // 比エンタルピー差, kJ/kgDA
	Dx         float64 // 絶対湿度差, kg/kgDA
	Dt         float64 // 乾球温度差, degree C
	SHF        float64 // 顕熱比, -
	SHFDefined bool    // 顕熱比が定義できるか否か

	// 宣言された運転モードと実際の熱量の符号が食い違う場合 true。
	// 計算の誤りではなく入力パラメータの問題を示すため、エラーとはしない。
	ModeMismatch bool
}

/*
プロセスを適用し、出口の状態点と熱・水分収支を計算する。

    Args:
        p_type: プロセスの種類
        inlet: 入口の状態点
        params: プロセスのパラメータ
        p_atm: 大気圧, kPa（0を指定した場合は物性値の標準大気圧を用いる）
        ov: 物性値・計算条件の上書き値

    Returns:
        (1) 出口の状態点
        (2) 熱・水分収支
*/
func ApplyProcess(
	p_type ProcessType,
	inlet *AirState,
	params ProcessParams,
	p_atm float64,
	ov *ConstantsOverride,
) (*AirState, *ProcessResult, error) {
	switch p_type {
	case ProcessHeatingByCapacity:
		return HeatingByCapacity(inlet, params.Capacity, params.Airflow, p_atm, ov)
	case ProcessHeatingByTemperature:
		return HeatingByTemperature(inlet, params.TargetTemp, params.Airflow, p_atm, ov)
	case ProcessCoolingByCapacitySHF:
		return CoolingByCapacitySHF(inlet, params.Capacity, params.SHF, params.Airflow, p_atm, ov)
	case ProcessCoolingByCapacityRH:
		return CoolingByCapacityRH(inlet, params.Capacity, params.TargetRh, params.Airflow, p_atm, ov)
	case ProcessCoolingByADP:
		return CoolingByADP(inlet, params.ADP, params.BypassFactor, params.Airflow, p_atm, ov)
	case ProcessHumidifyWaterSpray:
		return HumidifyWaterSpray(inlet, params.MoistureFlow, params.WaterTemp, params.Airflow, p_atm, ov)
	case ProcessHumidifySteam:
		return HumidifySteam(inlet, params.MoistureFlow, params.SteamTemp, params.Airflow, p_atm, ov)
	case ProcessMixing:
		return MixStreams(params.Streams, p_atm, ov)
	case ProcessHeatExchangeTotal:
		return HeatExchangeTotal(inlet, params.Airflow, params.Exhaust, params.ExhaustAirflow, params.Efficiency, p_atm, ov)
	case ProcessHeatExchangeSeparate:
		return HeatExchangeSeparate(inlet, params.Airflow, params.Exhaust, params.ExhaustAirflow, params.EffSensible, params.EffLatent, p_atm, ov)
	default:
		return nil, nil, &InvalidInputError{Field: string(p_type), Reason: "unknown process type"}
	}
}

/*
入口・出口の状態点から熱・水分収支を計算する。

    Args:
        m_dot: 乾き空気の質量流量, kg/s
        inlet: 入口の状態点
        outlet: 出口の状態点
        declared: 宣言された運転モード（空の場合は妥当性検査を行わない）
        c: 物性値・計算条件

    Returns:
        熱・水分収支
*/
func _make_result(m_dot float64, inlet, outlet *AirState, declared OperatingMode, c PsychrometricConstants) *ProcessResult {
	q_t, q_s, q_l := SplitCapacity(m_dot, inlet, outlet, c)
	shf, defined := CalcSHF(q_s, q_t)

	mismatch := false
	if declared != "" && math.Abs(q_t) > q_zero_threshold {
		mismatch = InferModeFromSigned(q_t) != declared
	}

	return &ProcessResult{
		Q_total:      q_t,
		Q_sensible:   q_s,
		Q_latent:     q_l,
		Dh:           outlet.H - inlet.H,
		Dx:           outlet.X - inlet.X,
		Dt:           outlet.T_db - inlet.T_db,
		SHF:          shf,
		SHFDefined:   defined,
		ModeMismatch: mismatch,
	}
}

// 有効な大気圧と物性値・計算条件を決定する
func _effective(p_atm float64, ov *ConstantsOverride) (float64, PsychrometricConstants) {
	c := ResolveConstants(ov)

	if p_atm == 0.0 {
		p_atm = c.P_atm
	}

	return p_atm, c
}

/*
処理風量から質量流量を求める。質量流量が決まらない場合はエラーとする。

    Args:
        v_dot: 風量, m3/h
        st: 状態点

    Returns:
        乾き空気の質量流量, kg/s
*/
func _require_mass_flow(v_dot float64, st *AirState) (float64, error) {
	m_dot := MassFlowFromAirflow(v_dot, st)

	if m_dot <= 0.0 {
		return 0.0, &InvalidInputError{Field: "airflow", Value: v_dot, Reason: "airflow must be positive and finite"}
	}

	return m_dot, nil
}
