package psychro

import "math"

/*
飽和水蒸気圧を計算する。

    Args:
        t: 空気温度, degree C
        c: 物性値・計算条件

    Returns:
        飽和水蒸気圧, kPa

    Notes:
        Tetensの式 Ps = A・exp(B・t/(C+t)) による。
        t >= 0℃ では水に対する係数を、t < 0℃ では氷に対する係数を用いる。
*/
func get_p_vs(t float64, c PsychrometricConstants) float64 {
	s := c.SatWater
	if t < 0.0 {
		s = c.SatIce
	}

	return s.A * math.Exp(s.B*t/(s.C+t))
}

/*
飽和水蒸気圧の温度微分を計算する。

    Args:
        t: 空気温度, degree C
        c: 物性値・計算条件

    Returns:
        飽和水蒸気圧の温度微分, kPa/K

    Notes:
        dPs/dt = Ps・B・C/(C+t)^2
        湿球温度のNewton-Raphson法で使用する。
*/
func get_dp_vs_dt(t float64, c PsychrometricConstants) float64 {
	s := c.SatWater
	if t < 0.0 {
		s = c.SatIce
	}

	return get_p_vs(t, c) * s.B * s.C / ((s.C + t) * (s.C + t))
}
