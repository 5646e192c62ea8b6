package psychro

/*
能力を指定した加熱プロセス。

    Args:
        inlet: 入口の状態点
        capacity: 加熱能力の大きさ, kW
        v_dot: 処理風量, m3/h
        p_atm: 大気圧, kPa（0の場合は標準大気圧）
        ov: 物性値・計算条件の上書き値

    Returns:
        (1) 出口の状態点
        (2) 熱・水分収支

    Notes:
        加熱では絶対湿度は変化しない。出口の比エンタルピーを
        h_out = h_in + Q/m から求め、(h, x) で出口状態を再構築する。
*/
func HeatingByCapacity(
	inlet *AirState,
	capacity float64,
	v_dot float64,
	p_atm float64,
	ov *ConstantsOverride,
) (*AirState, *ProcessResult, error) {
	p_atm, c := _effective(p_atm, ov)

	m_dot, err := _require_mass_flow(v_dot, inlet)
	if err != nil {
		return nil, nil, err
	}

	q := ToSignedCapacity(ModeHeating, capacity)

	h_out := inlet.H + q/m_dot

	outlet := _state_from_t_x(get_t_from_h(h_out, inlet.X, c), inlet.X, p_atm, c)

	return outlet, _make_result(m_dot, inlet, outlet, ModeHeating, c), nil
}

/*
出口温度を指定した加熱プロセス。

    Args:
        inlet: 入口の状態点
        t_out: 出口乾球温度, degree C
        v_dot: 処理風量, m3/h
        p_atm: 大気圧, kPa（0の場合は標準大気圧）
        ov: 物性値・計算条件の上書き値

    Returns:
        (1) 出口の状態点
        (2) 熱・水分収支

    Notes:
        出口温度が入口温度を下回る場合、宣言上は加熱だが実際には
        冷却となるため、収支のModeMismatchフラグが立つ。
*/
func HeatingByTemperature(
	inlet *AirState,
	t_out float64,
	v_dot float64,
	p_atm float64,
	ov *ConstantsOverride,
) (*AirState, *ProcessResult, error) {
	p_atm, c := _effective(p_atm, ov)

	m_dot, err := _require_mass_flow(v_dot, inlet)
	if err != nil {
		return nil, nil, err
	}

	outlet := _state_from_t_x(t_out, inlet.X, p_atm, c)

	return outlet, _make_result(m_dot, inlet, outlet, ModeHeating, c), nil
}
