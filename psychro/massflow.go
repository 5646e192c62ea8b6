package psychro

import "math"

// 熱量をゼロとみなす閾値, kW
const q_zero_threshold = 1e-9

// 運転モード
type OperatingMode string

// 運転モードの定数
const (
	ModeHeating OperatingMode = "heating"
	ModeCooling OperatingMode = "cooling"
)

/*
風量から乾き空気の質量流量を計算する。

    Args:
        v_dot: 風量, m3/h
        st: 空気の状態点
    Returns:
        乾き空気の質量流量, kg/s

    Notes:
        m = (V/3600)/v
        風量が非数または0以下の場合は「不明」を表す0を返す（エラーとしない）。
*/
func MassFlowFromAirflow(v_dot float64, st *AirState) float64 {
	if math.IsNaN(v_dot) || math.IsInf(v_dot, 0) || v_dot <= 0.0 {
		return 0.0
	}

	return v_dot / 3600.0 / st.V
}

/*
入口・出口の状態点から全熱・顕熱・潜熱を計算する。

    Args:
        m_dot: 乾き空気の質量流量, kg/s
        inlet: 入口の状態点
        outlet: 出口の状態点
        c: 物性値・計算条件

    Returns:
        (1) 全熱, kW
        (2) 顕熱, kW
        (3) 潜熱, kW

    Notes:
        全熱 q_t = m・(h_out - h_in)
        顕熱 q_s = m・(C_pa + x_ave・C_pv)・(t_out - t_in)
            x_ave は入口・出口の絶対湿度の算術平均
        潜熱は残差 q_l = q_t - q_s として求める。
        これにより q_s + q_l = q_t が厳密に成り立つ。
*/
func SplitCapacity(m_dot float64, inlet, outlet *AirState, c PsychrometricConstants) (float64, float64, float64) {
	q_t := m_dot * (outlet.H - inlet.H)

	x_ave := (inlet.X + outlet.X) / 2.0
	c_p_moist := c.C_pa + x_ave*c.C_pv

	q_s := m_dot * c_p_moist * (outlet.T_db - inlet.T_db)
	q_l := q_t - q_s

	return q_t, q_s, q_l
}

/*
顕熱比を計算する。

    Args:
        q_s: 顕熱, kW
        q_t: 全熱, kW

    Returns:
        (1) 顕熱比 [0, 1]
        (2) 顕熱比が定義できるか否か

    Notes:
        全熱がほぼ0の場合は顕熱比が定義できない。
*/
func CalcSHF(q_s, q_t float64) (float64, bool) {
	if math.Abs(q_t) <= q_zero_threshold {
		return 0.0, false
	}

	shf := math.Abs(q_s) / math.Abs(q_t)

	if shf > 1.0 {
		shf = 1.0
	}

	return shf, true
}

/*
運転モードと熱量の大きさから符号付きの熱量を決定する。

    Args:
        mode: 運転モード
        magnitude: 熱量の大きさ, kW

    Returns:
        符号付きの熱量, kW（加熱を正、冷却を負とする）
*/
func ToSignedCapacity(mode OperatingMode, magnitude float64) float64 {
	q := math.Abs(magnitude)

	if mode == ModeCooling {
		return -q
	}
	return q
}

/*
符号付きの熱量から運転モードを推定する。

    Args:
        q: 符号付きの熱量, kW

    Returns:
        運転モード

    Notes:
        加熱として指定されたプロセスが負の熱量（=冷却）になっていないか
        の妥当性検査に使用する。
*/
func InferModeFromSigned(q float64) OperatingMode {
	if q < 0.0 {
		return ModeCooling
	}
	return ModeHeating
}
