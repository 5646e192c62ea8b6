package psychro

import "math"

/*
水噴霧による加湿プロセス。

    Args:
        inlet: 入口の状態点
        moisture: 加湿量, kg/h
        t_water: 水温, degree C
        v_dot: 処理風量, m3/h
        p_atm: 大気圧, kPa（0の場合は標準大気圧）
        ov: 物性値・計算条件の上書き値

    Returns:
        (1) 出口の状態点
        (2) 熱・水分収支

    Notes:
        断熱加湿。比エンタルピーは噴霧された水の顕熱分
        dh = C_pw・t_water・dx しか増加しないため、
        ほぼ湿球温度一定の変化となる。
*/
func HumidifyWaterSpray(
	inlet *AirState,
	moisture float64,
	t_water float64,
	v_dot float64,
	p_atm float64,
	ov *ConstantsOverride,
) (*AirState, *ProcessResult, error) {
	p_atm, c := _effective(p_atm, ov)

	m_dot, err := _require_mass_flow(v_dot, inlet)
	if err != nil {
		return nil, nil, err
	}

	dx, err := _humidity_gain(moisture, m_dot)
	if err != nil {
		return nil, nil, err
	}

	x_out := inlet.X + dx
	h_out := inlet.H + c.C_pw*t_water*dx

	outlet := _state_from_t_x(get_t_from_h(h_out, x_out, c), x_out, p_atm, c)

	return outlet, _make_result(m_dot, inlet, outlet, "", c), nil
}

/*
蒸気による加湿プロセス。

    Args:
        inlet: 入口の状態点
        moisture: 加湿量, kg/h
        t_steam: 蒸気温度, degree C
        v_dot: 処理風量, m3/h
        p_atm: 大気圧, kPa（0の場合は標準大気圧）
        ov: 物性値・計算条件の上書き値

    Returns:
        (1) 出口の状態点
        (2) 熱・水分収支

    Notes:
        比エンタルピーは蒸気の全エンタルピー分
        dh = (L0 + C_pv・t_steam)・dx 増加する。
        水噴霧と異なり温度・絶対湿度の両方が上昇する。
*/
func HumidifySteam(
	inlet *AirState,
	moisture float64,
	t_steam float64,
	v_dot float64,
	p_atm float64,
	ov *ConstantsOverride,
) (*AirState, *ProcessResult, error) {
	p_atm, c := _effective(p_atm, ov)

	m_dot, err := _require_mass_flow(v_dot, inlet)
	if err != nil {
		return nil, nil, err
	}

	dx, err := _humidity_gain(moisture, m_dot)
	if err != nil {
		return nil, nil, err
	}

	x_out := inlet.X + dx
	h_out := inlet.H + (c.L_wtr+c.C_pv*t_steam)*dx

	outlet := _state_from_t_x(get_t_from_h(h_out, x_out, c), x_out, p_atm, c)

	return outlet, _make_result(m_dot, inlet, outlet, "", c), nil
}

/*
加湿量から絶対湿度の増分を計算する。

    Args:
        moisture: 加湿量, kg/h
        m_dot: 乾き空気の質量流量, kg/s

    Returns:
        絶対湿度の増分, kg/kgDA
*/
func _humidity_gain(moisture, m_dot float64) (float64, error) {
	if math.IsNaN(moisture) || math.IsInf(moisture, 0) || moisture < 0.0 {
		return 0.0, &InvalidInputError{Field: "moisture", Value: moisture, Reason: "moisture flow must be non-negative and finite"}
	}

	return moisture / 3600.0 / m_dot, nil
}
