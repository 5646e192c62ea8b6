package psychro

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// 加熱では絶対湿度が変化しない（入口 10℃ 80%、能力 30 kW、風量 1000 m3/h）
func TestHeatingByCapacity(t *testing.T) {
	inlet, err := ResolveState(KindDryBulb, 10.0, KindRelHumidity, 80.0, 0.0, nil)
	require.NoError(t, err)

	outlet, result, err := HeatingByCapacity(inlet, 30.0, 1000.0, 0.0, nil)
	require.NoError(t, err)

	assert.Less(t, result.Dx, 1e-4)
	assert.Greater(t, result.Dx, -1e-4)
	assert.Greater(t, outlet.T_db, inlet.T_db)
	assert.InDelta(t, 30.0, result.Q_total, 0.01)
	assert.InDelta(t, result.Q_total, result.Q_sensible+result.Q_latent, 1e-9)
	assert.False(t, result.ModeMismatch)
}

func TestHeatingByTemperature(t *testing.T) {
	inlet, err := ResolveState(KindDryBulb, 10.0, KindRelHumidity, 80.0, 0.0, nil)
	require.NoError(t, err)

	outlet, result, err := HeatingByTemperature(inlet, 35.0, 1000.0, 0.0, nil)
	require.NoError(t, err)

	assert.InDelta(t, 35.0, outlet.T_db, 1e-9)
	assert.InDelta(t, inlet.X, outlet.X, 1e-12)
	assert.Greater(t, result.Q_total, 0.0)
	assert.False(t, result.ModeMismatch)

	// 出口温度が入口温度を下回る場合は実際には冷却となる
	_, result, err = HeatingByTemperature(inlet, 5.0, 1000.0, 0.0, nil)
	require.NoError(t, err)
	assert.True(t, result.ModeMismatch)
}

// 顕熱比による冷却（入口 28℃ 60%、能力 20 kW、SHF 0.75、風量 1000 m3/h）
func TestCoolingByCapacitySHF(t *testing.T) {
	inlet, err := ResolveState(KindDryBulb, 28.0, KindRelHumidity, 60.0, 0.0, nil)
	require.NoError(t, err)

	outlet, result, err := CoolingByCapacitySHF(inlet, 20.0, 0.75, 1000.0, 0.0, nil)
	require.NoError(t, err)

	assert.InDelta(t, -20.0, result.Q_total, 0.01)
	assert.InDelta(t, -15.0, result.Q_sensible, 0.5)
	assert.InDelta(t, -5.0, result.Q_latent, 0.5)
	assert.InDelta(t, result.Q_total, result.Q_sensible+result.Q_latent, 1e-9)

	assert.Less(t, outlet.T_db, inlet.T_db)
	assert.Less(t, outlet.X, inlet.X)
	assert.False(t, result.ModeMismatch)

	shf, defined := CalcSHF(result.Q_sensible, result.Q_total)
	require.True(t, defined)
	assert.InDelta(t, 0.75, shf, 0.03)
}

func TestCoolingByCapacitySHFInvalidSHF(t *testing.T) {
	inlet, err := ResolveState(KindDryBulb, 28.0, KindRelHumidity, 60.0, 0.0, nil)
	require.NoError(t, err)

	_, _, err = CoolingByCapacitySHF(inlet, 20.0, 1.5, 1000.0, 0.0, nil)
	assert.Error(t, err)
}

// 出口相対湿度による冷却の2段階モデル
func TestCoolingByCapacityRH(t *testing.T) {
	inlet, err := ResolveState(KindDryBulb, 30.0, KindRelHumidity, 40.0, 0.0, nil)
	require.NoError(t, err)

	// 小さい能力では出口相対湿度に達する前に熱量を消化し、顕熱冷却のみとなる
	outlet, result, err := CoolingByCapacityRH(inlet, 3.0, 90.0, 1000.0, 0.0, nil)
	require.NoError(t, err)

	assert.InDelta(t, 0.0, result.Dx, 1e-12)
	assert.Less(t, outlet.Rh, 90.0)
	assert.InDelta(t, -3.0, result.Q_total, 0.01)

	// 大きい能力では相対湿度一定の曲線に沿って除湿冷却が進む
	outlet, result, err = CoolingByCapacityRH(inlet, 10.0, 90.0, 1000.0, 0.0, nil)
	require.NoError(t, err)

	assert.InDelta(t, 90.0, outlet.Rh, 0.5)
	assert.Less(t, outlet.X, inlet.X)
	assert.InDelta(t, -10.0, result.Q_total, 0.01)
	assert.False(t, outlet.NotConverged)
}

// 装置露点とバイパスファクタによる冷却
func TestCoolingByADP(t *testing.T) {
	inlet, err := ResolveState(KindDryBulb, 30.0, KindRelHumidity, 50.0, 0.0, nil)
	require.NoError(t, err)

	outlet, result, err := CoolingByADP(inlet, 10.0, 0.2, 1000.0, 0.0, nil)
	require.NoError(t, err)

	// 出口状態は入口と装置露点の飽和状態の内分点となる
	c := DefaultConstants()
	x_adp := get_x(10.0, 100.0, c.P_atm, c)
	h_adp := get_h_air(10.0, x_adp, c)

	assert.InDelta(t, inlet.H+0.8*(h_adp-inlet.H), outlet.H, 1e-6)
	assert.InDelta(t, inlet.X+0.8*(x_adp-inlet.X), outlet.X, 1e-9)

	assert.Greater(t, outlet.T_db, 10.0)
	assert.Less(t, outlet.T_db, inlet.T_db)
	assert.Greater(t, outlet.Rh, inlet.Rh)
	assert.Less(t, result.Q_total, 0.0)
	assert.False(t, result.ModeMismatch)
}

// 水噴霧加湿はほぼ湿球温度一定の変化となる
func TestHumidifyWaterSpray(t *testing.T) {
	inlet, err := ResolveState(KindDryBulb, 20.0, KindRelHumidity, 30.0, 0.0, nil)
	require.NoError(t, err)

	outlet, result, err := HumidifyWaterSpray(inlet, 4.0, 15.0, 2000.0, 0.0, nil)
	require.NoError(t, err)

	assert.Greater(t, outlet.X, inlet.X)
	assert.Less(t, outlet.T_db, inlet.T_db)
	assert.InDelta(t, inlet.T_wb, outlet.T_wb, 0.3)
	assert.InDelta(t, result.Q_total, result.Q_sensible+result.Q_latent, 1e-9)
}

// 蒸気加湿は温度と絶対湿度の両方を上昇させる
func TestHumidifySteam(t *testing.T) {
	inlet, err := ResolveState(KindDryBulb, 20.0, KindRelHumidity, 30.0, 0.0, nil)
	require.NoError(t, err)

	outlet, result, err := HumidifySteam(inlet, 4.0, 100.0, 2000.0, 0.0, nil)
	require.NoError(t, err)

	assert.Greater(t, outlet.X, inlet.X)
	assert.Greater(t, outlet.T_db, inlet.T_db)
	assert.Greater(t, result.Q_total, 0.0)

	// 加湿量が同じでも水噴霧よりエンタルピーの増加が大きい
	outlet_w, _, err := HumidifyWaterSpray(inlet, 4.0, 15.0, 2000.0, 0.0, nil)
	require.NoError(t, err)
	assert.Greater(t, outlet.H, outlet_w.H)
}

func TestHumidifyInvalidMoisture(t *testing.T) {
	inlet, err := ResolveState(KindDryBulb, 20.0, KindRelHumidity, 30.0, 0.0, nil)
	require.NoError(t, err)

	_, _, err = HumidifyWaterSpray(inlet, -1.0, 15.0, 2000.0, 0.0, nil)
	assert.Error(t, err)
}

// 混合点は2つの入力を結ぶ直線上の質量流量加重位置にある
func TestMixingCollinearity(t *testing.T) {
	a, err := ResolveState(KindDryBulb, 32.0, KindRelHumidity, 65.0, 0.0, nil)
	require.NoError(t, err)
	b, err := ResolveState(KindDryBulb, 20.0, KindRelHumidity, 40.0, 0.0, nil)
	require.NoError(t, err)

	outlet, _, err := MixTwoStreams(a, 2000.0, b, 1000.0, 0.0, nil)
	require.NoError(t, err)

	m_a := MassFlowFromAirflow(2000.0, a)
	m_b := MassFlowFromAirflow(1000.0, b)
	ratio := m_b / (m_a + m_b)

	// (h, x) 平面上で同じ内分比となること
	r_x := (outlet.X - a.X) / (b.X - a.X)
	r_h := (outlet.H - a.H) / (b.H - a.H)

	assert.InDelta(t, ratio, r_x, 1e-9)
	assert.InDelta(t, ratio, r_h, 1e-9)

	// 混合点は両状態の間にある
	assert.Greater(t, outlet.T_db, b.T_db)
	assert.Less(t, outlet.T_db, a.T_db)
}

// 混合では乾き空気の質量流量が保存される
func TestMixingMassConservation(t *testing.T) {
	a, err := ResolveState(KindDryBulb, 32.0, KindRelHumidity, 65.0, 0.0, nil)
	require.NoError(t, err)
	b, err := ResolveState(KindDryBulb, 20.0, KindRelHumidity, 40.0, 0.0, nil)
	require.NoError(t, err)
	d, err := ResolveState(KindDryBulb, 5.0, KindRelHumidity, 70.0, 0.0, nil)
	require.NoError(t, err)

	outlet, _, err := MixStreams([]MixStream{
		{State: a, Airflow: 1200.0},
		{State: b, Airflow: 800.0},
		{State: d, Airflow: 500.0},
	}, 0.0, nil)
	require.NoError(t, err)
	require.NotNil(t, outlet.Airflow)

	m_in := MassFlowFromAirflow(1200.0, a) + MassFlowFromAirflow(800.0, b) + MassFlowFromAirflow(500.0, d)
	m_out := MassFlowFromAirflow(*outlet.Airflow, outlet)

	assert.InDelta(t, m_in, m_out, 1e-12)
}

func TestMixingRequiresTwoStreams(t *testing.T) {
	a, err := ResolveState(KindDryBulb, 32.0, KindRelHumidity, 65.0, 0.0, nil)
	require.NoError(t, err)

	_, _, err = MixStreams([]MixStream{{State: a, Airflow: 1000.0}}, 0.0, nil)
	assert.Error(t, err)
}

// 全熱交換器は風量バランスが取れていれば定格効率で交換する
func TestHeatExchangeTotalBalanced(t *testing.T) {
	oa, err := ResolveState(KindDryBulb, 35.0, KindRelHumidity, 60.0, 0.0, nil)
	require.NoError(t, err)
	ea, err := ResolveState(KindDryBulb, 26.0, KindRelHumidity, 50.0, 0.0, nil)
	require.NoError(t, err)

	outlet, result, err := HeatExchangeTotal(oa, 1000.0, ea, 1000.0, 0.7, 0.0, nil)
	require.NoError(t, err)

	assert.InDelta(t, oa.H+0.7*(ea.H-oa.H), outlet.H, 1e-6)
	assert.InDelta(t, oa.X+0.7*(ea.X-oa.X), outlet.X, 1e-9)
	assert.Less(t, result.Q_total, 0.0)
}

// 風量がアンバランスな場合は効率が低減される
func TestHeatExchangeTotalImbalanced(t *testing.T) {
	oa, err := ResolveState(KindDryBulb, 35.0, KindRelHumidity, 60.0, 0.0, nil)
	require.NoError(t, err)
	ea, err := ResolveState(KindDryBulb, 26.0, KindRelHumidity, 50.0, 0.0, nil)
	require.NoError(t, err)

	outlet, _, err := HeatExchangeTotal(oa, 1000.0, ea, 500.0, 0.7, 0.0, nil)
	require.NoError(t, err)

	// 実効効率は 0.7 × (500/1000) = 0.35
	assert.InDelta(t, oa.H+0.35*(ea.H-oa.H), outlet.H, 1e-6)
}

// 顕熱・潜熱の効率を個別に適用する熱交換器
func TestHeatExchangeSeparate(t *testing.T) {
	oa, err := ResolveState(KindDryBulb, 2.0, KindRelHumidity, 40.0, 0.0, nil)
	require.NoError(t, err)
	ea, err := ResolveState(KindDryBulb, 22.0, KindRelHumidity, 50.0, 0.0, nil)
	require.NoError(t, err)

	outlet, result, err := HeatExchangeSeparate(oa, 1000.0, ea, 1000.0, 0.8, 0.5, 0.0, nil)
	require.NoError(t, err)

	assert.InDelta(t, oa.T_db+0.8*(ea.T_db-oa.T_db), outlet.T_db, 1e-9)
	assert.InDelta(t, oa.X+0.5*(ea.X-oa.X), outlet.X, 1e-12)
	assert.Greater(t, result.Q_total, 0.0)
}

func TestHeatExchangeInvalidEfficiency(t *testing.T) {
	oa, err := ResolveState(KindDryBulb, 35.0, KindRelHumidity, 60.0, 0.0, nil)
	require.NoError(t, err)
	ea, err := ResolveState(KindDryBulb, 26.0, KindRelHumidity, 50.0, 0.0, nil)
	require.NoError(t, err)

	_, _, err = HeatExchangeTotal(oa, 1000.0, ea, 1000.0, 1.2, 0.0, nil)
	assert.Error(t, err)
}

// ApplyProcessのディスパッチ
func TestApplyProcessDispatch(t *testing.T) {
	inlet, err := ResolveState(KindDryBulb, 10.0, KindRelHumidity, 80.0, 0.0, nil)
	require.NoError(t, err)

	outlet, result, err := ApplyProcess(ProcessHeatingByCapacity, inlet, ProcessParams{
		Capacity: 30.0,
		Airflow:  1000.0,
	}, 0.0, nil)
	require.NoError(t, err)

	direct, direct_result, err := HeatingByCapacity(inlet, 30.0, 1000.0, 0.0, nil)
	require.NoError(t, err)

	assert.Equal(t, direct.T_db, outlet.T_db)
	assert.Equal(t, direct_result.Q_total, result.Q_total)

	_, _, err = ApplyProcess(ProcessType("unknown"), inlet, ProcessParams{}, 0.0, nil)
	assert.Error(t, err)
}
