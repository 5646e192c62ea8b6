package psychro

import (
	"gonum.org/v1/gonum/floats"
)

/*
2系統の空気の混合プロセス。

    Args:
        a: 系統1の状態点
        v_dot_a: 系統1の風量, m3/h
        b: 系統2の状態点
        v_dot_b: 系統2の風量, m3/h
        p_atm: 大気圧, kPa（0の場合は標準大気圧）
        ov: 物性値・計算条件の上書き値

    Returns:
        (1) 混合後の状態点
        (2) 熱・水分収支（系統1を基準とする）
*/
func MixTwoStreams(
	a *AirState, v_dot_a float64,
	b *AirState, v_dot_b float64,
	p_atm float64,
	ov *ConstantsOverride,
) (*AirState, *ProcessResult, error) {
	return MixStreams([]MixStream{
		{State: a, Airflow: v_dot_a},
		{State: b, Airflow: v_dot_b},
	}, p_atm, ov)
}

/*
複数系統の空気の混合プロセス。

    Args:
        streams: 混合する系統（2系統以上）
        p_atm: 大気圧, kPa（0の場合は標準大気圧）
        ov: 物性値・計算条件の上書き値

    Returns:
        (1) 混合後の状態点
        (2) 熱・水分収支（先頭の系統を基準とする）

    Notes:
        混合後の絶対湿度・比エンタルピーはそれぞれ乾き空気の質量流量による
        加重平均となる。質量流量は各系統自身の比容積から求める。
        混合後の状態点には質量保存を満たす風量が設定される。
*/
func MixStreams(
	streams []MixStream,
	p_atm float64,
	ov *ConstantsOverride,
) (*AirState, *ProcessResult, error) {
	p_atm, c := _effective(p_atm, ov)

	if len(streams) < 2 {
		return nil, nil, &InvalidInputError{Field: "streams", Value: float64(len(streams)), Reason: "mixing requires at least two streams"}
	}

	m_dots := make([]float64, len(streams))
	xs := make([]float64, len(streams))
	hs := make([]float64, len(streams))

	for i, s := range streams {
		m_dot, err := _require_mass_flow(s.Airflow, s.State)
		if err != nil {
			return nil, nil, err
		}
		m_dots[i] = m_dot
		xs[i] = s.State.X
		hs[i] = s.State.H
	}

	m_total := floats.Sum(m_dots)

	x_mix := floats.Dot(m_dots, xs) / m_total
	h_mix := floats.Dot(m_dots, hs) / m_total

	outlet := _state_from_t_x(get_t_from_h(h_mix, x_mix, c), x_mix, p_atm, c)

	// 質量保存から混合後の風量を決定する
	v_dot_out := m_total * outlet.V * 3600.0
	outlet.Airflow = &v_dot_out

	return outlet, _make_result(m_total, streams[0].State, outlet, "", c), nil
}
