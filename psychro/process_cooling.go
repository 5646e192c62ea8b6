package psychro

// 出口絶対湿度の逐次計算の回数
const n_cooling_passes = 5

/*
能力と顕熱比を指定した冷却プロセス。

    Args:
        inlet: 入口の状態点
        capacity: 冷却能力の大きさ, kW
        shf: 顕熱比, -
        v_dot: 処理風量, m3/h
        p_atm: 大気圧, kPa（0の場合は標準大気圧）
        ov: 物性値・計算条件の上書き値

    Returns:
        (1) 出口の状態点
        (2) 熱・水分収支

    Notes:
        全熱を顕熱比で顕熱・潜熱に分解する。湿り空気の比熱が出口の
        絶対湿度に依存するため、出口温度と出口絶対湿度を逐次計算
        （最大5回）で自己整合させる。
*/
func CoolingByCapacitySHF(
	inlet *AirState,
	capacity float64,
	shf float64,
	v_dot float64,
	p_atm float64,
	ov *ConstantsOverride,
) (*AirState, *ProcessResult, error) {
	p_atm, c := _effective(p_atm, ov)

	if shf < 0.0 || shf > 1.0 {
		return nil, nil, &InvalidInputError{Field: "shf", Value: shf, Reason: "sensible heat fraction must be within [0, 1]"}
	}

	m_dot, err := _require_mass_flow(v_dot, inlet)
	if err != nil {
		return nil, nil, err
	}

	q_t := ToSignedCapacity(ModeCooling, capacity)
	q_s := shf * q_t

	h_out := inlet.H + q_t/m_dot

	t_out := inlet.T_db
	x_out := inlet.X

	for i := 0; i < n_cooling_passes; i++ {
		x_ave := (inlet.X + x_out) / 2.0
		c_p_moist := c.C_pa + x_ave*c.C_pv

		t_out = inlet.T_db + q_s/(m_dot*c_p_moist)
		x_out = _x_non_negative(get_x_from_h(h_out, t_out, c))
	}

	outlet := _state_from_t_x(t_out, x_out, p_atm, c)

	return outlet, _make_result(m_dot, inlet, outlet, ModeCooling, c), nil
}

/*
能力と出口相対湿度を指定した冷却プロセス。

    Args:
        inlet: 入口の状態点
        capacity: 冷却能力の大きさ, kW
        rh_out: 出口相対湿度, %
        v_dot: 処理風量, m3/h
        p_atm: 大気圧, kPa（0の場合は標準大気圧）
        ov: 物性値・計算条件の上書き値

    Returns:
        (1) 出口の状態点
        (2) 熱・水分収支

    Notes:
        2段階のモデル。まず絶対湿度一定のまま顕熱冷却し、出口相対湿度に
        達した後は相対湿度一定の曲線に沿って冷却（凝縮）を続ける。
        コイル表面が飽和に達するまで除湿が始まらないことを模擬する。
*/
func CoolingByCapacityRH(
	inlet *AirState,
	capacity float64,
	rh_out float64,
	v_dot float64,
	p_atm float64,
	ov *ConstantsOverride,
) (*AirState, *ProcessResult, error) {
	p_atm, c := _effective(p_atm, ov)

	if rh_out < 0.0 || rh_out > 100.0 {
		return nil, nil, &InvalidInputError{Field: "rh_out", Value: rh_out, Reason: "relative humidity must be within [0, 100]"}
	}

	m_dot, err := _require_mass_flow(v_dot, inlet)
	if err != nil {
		return nil, nil, err
	}

	q_t := ToSignedCapacity(ModeCooling, capacity)

	h_out := inlet.H + q_t/m_dot

	// 絶対湿度一定のまま出口相対湿度に達する状態点
	reach := _solve_by_bisection(t_search_min, t_search_max, rh_out, func(t float64) float64 {
		return get_rh(t, inlet.X, p_atm, c)
	}, func(t float64) float64 {
		return inlet.X
	}, p_atm, c)

	var outlet *AirState
	if h_out >= reach.H {
		// 顕熱冷却のみで全熱量を消化できる
		outlet = _state_from_t_x(get_t_from_h(h_out, inlet.X, c), inlet.X, p_atm, c)
	} else {
		// 残りの熱量は相対湿度一定の曲線に沿って除湿冷却する
		outlet = _solve_by_bisection(t_search_min, reach.T_db, rh_out, func(t float64) float64 {
			return get_rh(t, _x_non_negative(get_x_from_h(h_out, t, c)), p_atm, c)
		}, func(t float64) float64 {
			return _x_non_negative(get_x_from_h(h_out, t, c))
		}, p_atm, c)
	}

	return outlet, _make_result(m_dot, inlet, outlet, ModeCooling, c), nil
}

/*
装置露点温度とバイパスファクタを指定した冷却プロセス。

    Args:
        inlet: 入口の状態点
        t_adp: 装置露点温度, degree C
        bf: バイパスファクタ, -
        v_dot: 処理風量, m3/h
        p_atm: 大気圧, kPa（0の場合は標準大気圧）
        ov: 物性値・計算条件の上書き値

    Returns:
        (1) 出口の状態点
        (2) 熱・水分収支

    Notes:
        出口状態は入口状態と装置露点における飽和状態を
        (1 - バイパスファクタ) で内分した点となる
        （比エンタルピー・絶対湿度の両方について）。
*/
func CoolingByADP(
	inlet *AirState,
	t_adp float64,
	bf float64,
	v_dot float64,
	p_atm float64,
	ov *ConstantsOverride,
) (*AirState, *ProcessResult, error) {
	p_atm, c := _effective(p_atm, ov)

	if bf < 0.0 || bf >= 1.0 {
		return nil, nil, &InvalidInputError{Field: "bypass_factor", Value: bf, Reason: "bypass factor must be within [0, 1)"}
	}

	m_dot, err := _require_mass_flow(v_dot, inlet)
	if err != nil {
		return nil, nil, err
	}

	// 装置露点における飽和状態
	x_adp := get_x(t_adp, 100.0, p_atm, c)
	h_adp := get_h_air(t_adp, x_adp, c)

	h_out := inlet.H + (1.0-bf)*(h_adp-inlet.H)
	x_out := inlet.X + (1.0-bf)*(x_adp-inlet.X)

	outlet := _state_from_t_x(get_t_from_h(h_out, x_out, c), x_out, p_atm, c)

	return outlet, _make_result(m_dot, inlet, outlet, ModeCooling, c), nil
}
