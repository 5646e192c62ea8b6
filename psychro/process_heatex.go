package psychro

import "math"

/*
全熱交換器による熱回収プロセス。

    Args:
        oa: 外気の状態点
        v_dot_oa: 外気風量, m3/h
        ea: 排気の状態点
        v_dot_ea: 排気風量, m3/h
        eff: 定格交換効率, -
        p_atm: 大気圧, kPa（0の場合は標準大気圧）
        ov: 物性値・計算条件の上書き値

    Returns:
        (1) 給気（外気側出口）の状態点
        (2) 熱・水分収支（外気を基準とする）

    Notes:
        比エンタルピーと絶対湿度を同一の効率で交換する。
        風量がアンバランスな場合は min(Qoa, Qea)/max(Qoa, Qea) を
        乗じて効率を低減する。アンバランスな熱交換器は定格効率を
        発揮できない。
*/
func HeatExchangeTotal(
	oa *AirState, v_dot_oa float64,
	ea *AirState, v_dot_ea float64,
	eff float64,
	p_atm float64,
	ov *ConstantsOverride,
) (*AirState, *ProcessResult, error) {
	p_atm, c := _effective(p_atm, ov)

	eff_act, m_dot, err := _effective_exchange(oa, v_dot_oa, ea, v_dot_ea, eff, "efficiency")
	if err != nil {
		return nil, nil, err
	}

	h_out := oa.H + eff_act*(ea.H-oa.H)
	x_out := _x_non_negative(oa.X + eff_act*(ea.X-oa.X))

	outlet := _state_from_t_x(get_t_from_h(h_out, x_out, c), x_out, p_atm, c)

	return outlet, _make_result(m_dot, oa, outlet, "", c), nil
}

/*
顕熱・潜熱の交換効率を個別に指定した熱回収プロセス。

    Args:
        oa: 外気の状態点
        v_dot_oa: 外気風量, m3/h
        ea: 排気の状態点
        v_dot_ea: 排気風量, m3/h
        eff_s: 顕熱交換効率, -
        eff_l: 潜熱交換効率, -
        p_atm: 大気圧, kPa（0の場合は標準大気圧）
        ov: 物性値・計算条件の上書き値

    Returns:
        (1) 給気（外気側出口）の状態点
        (2) 熱・水分収支（外気を基準とする）

    Notes:
        温度に顕熱効率を、絶対湿度に潜熱効率を適用する。
        風量アンバランスによる低減は両効率へ独立に適用する。
*/
func HeatExchangeSeparate(
	oa *AirState, v_dot_oa float64,
	ea *AirState, v_dot_ea float64,
	eff_s float64,
	eff_l float64,
	p_atm float64,
	ov *ConstantsOverride,
) (*AirState, *ProcessResult, error) {
	p_atm, c := _effective(p_atm, ov)

	eff_s_act, m_dot, err := _effective_exchange(oa, v_dot_oa, ea, v_dot_ea, eff_s, "sensible efficiency")
	if err != nil {
		return nil, nil, err
	}
	eff_l_act, _, err := _effective_exchange(oa, v_dot_oa, ea, v_dot_ea, eff_l, "latent efficiency")
	if err != nil {
		return nil, nil, err
	}

	t_out := oa.T_db + eff_s_act*(ea.T_db-oa.T_db)
	x_out := _x_non_negative(oa.X + eff_l_act*(ea.X-oa.X))

	outlet := _state_from_t_x(t_out, x_out, p_atm, c)

	return outlet, _make_result(m_dot, oa, outlet, "", c), nil
}

/*
風量アンバランスを考慮した実効交換効率を計算する。

    Args:
        oa: 外気の状態点
        v_dot_oa: 外気風量, m3/h
        ea: 排気の状態点
        v_dot_ea: 排気風量, m3/h
        eff: 定格交換効率, -
        field: エラー表示用のフィールド名

    Returns:
        (1) 実効交換効率, -
        (2) 外気側の乾き空気の質量流量, kg/s
*/
func _effective_exchange(
	oa *AirState, v_dot_oa float64,
	ea *AirState, v_dot_ea float64,
	eff float64,
	field string,
) (float64, float64, error) {
	if eff < 0.0 || eff > 1.0 || math.IsNaN(eff) {
		return 0.0, 0.0, &InvalidInputError{Field: field, Value: eff, Reason: "exchange efficiency must be within [0, 1]"}
	}

	m_dot_oa, err := _require_mass_flow(v_dot_oa, oa)
	if err != nil {
		return 0.0, 0.0, err
	}
	if _, err := _require_mass_flow(v_dot_ea, ea); err != nil {
		return 0.0, 0.0, err
	}

	ratio := math.Min(v_dot_oa, v_dot_ea) / math.Max(v_dot_oa, v_dot_ea)

	return eff * ratio, m_dot_oa, nil
}
