package psychro

import (
	"log"
	"math"
)

/*
乾球温度と相対湿度から絶対湿度を計算する。

    Args:
        t: 乾球温度, degree C
        rh: 相対湿度, %
        p_atm: 大気圧, kPa
        c: 物性値・計算条件

    Returns:
        絶対湿度, kg/kgDA

    Notes:
        x = ε・Pv/(P - Pv)
        Pv = (rh/100)・Ps(t)
*/
func get_x(t, rh, p_atm float64, c PsychrometricConstants) float64 {
	p_v := rh / 100.0 * get_p_vs(t, c)

	return c.Eps * p_v / (p_atm - p_v)
}

/*
絶対湿度から水蒸気圧を計算する。

    Args:
        x: 絶対湿度, kg/kgDA
        p_atm: 大気圧, kPa
        c: 物性値・計算条件

    Returns:
        水蒸気圧, kPa
*/
func get_p_v(x, p_atm float64, c PsychrometricConstants) float64 {
	return x * p_atm / (c.Eps + x)
}

/*
乾球温度と絶対湿度から相対湿度を計算する。

    Args:
        t: 乾球温度, degree C
        x: 絶対湿度, kg/kgDA
        p_atm: 大気圧, kPa
        c: 物性値・計算条件

    Returns:
        相対湿度, %

    Notes:
        浮動小数点誤差による行き過ぎを吸収するため [0, 100] にクランプする。
*/
func get_rh(t, x, p_atm float64, c PsychrometricConstants) float64 {
	rh := get_p_v(x, p_atm, c) / get_p_vs(t, c) * 100.0

	if rh < 0.0 {
		return 0.0
	}
	if rh > 100.0 {
		return 100.0
	}
	return rh
}

/*
乾球温度と絶対湿度から比エンタルピーを計算する。

    Args:
        t: 乾球温度, degree C
        x: 絶対湿度, kg/kgDA
        c: 物性値・計算条件

    Returns:
        比エンタルピー, kJ/kgDA

    Notes:
        h = C_pa・t + x・(L0 + C_pv・t)
*/
func get_h_air(t, x float64, c PsychrometricConstants) float64 {
	return c.C_pa*t + x*(c.L_wtr+c.C_pv*t)
}

/*
比エンタルピーと絶対湿度から乾球温度を計算する。

    Args:
        h: 比エンタルピー, kJ/kgDA
        x: 絶対湿度, kg/kgDA
        c: 物性値・計算条件

    Returns:
        乾球温度, degree C

    Notes:
        get_h_air の代数的な逆算。
*/
func get_t_from_h(h, x float64, c PsychrometricConstants) float64 {
	return (h - c.L_wtr*x) / (c.C_pa + c.C_pv*x)
}

/*
比エンタルピーと乾球温度から絶対湿度を計算する。

    Args:
        h: 比エンタルピー, kJ/kgDA
        t: 乾球温度, degree C
        c: 物性値・計算条件

    Returns:
        絶対湿度, kg/kgDA
*/
func get_x_from_h(h, t float64, c PsychrometricConstants) float64 {
	return (h - c.C_pa*t) / (c.L_wtr + c.C_pv*t)
}

/*
湿球温度を計算する。

    Args:
        t: 乾球温度, degree C
        x: 絶対湿度, kg/kgDA
        p_atm: 大気圧, kPa
        c: 物性値・計算条件

    Returns:
        (1) 湿球温度, degree C
        (2) 収束したか否か

    Notes:
        乾湿計公式（Sprungの式）
            f(twb) = (Ps(twb) - Pv) - A_wb・P・(t - twb)
        の根をNewton-Raphson法で求める。初期値には露点温度を用いる。
        反復回数を使い切った場合も最後の反復値を返す（収束フラグで通知）。
*/
func get_t_wb(t, x, p_atm float64, c PsychrometricConstants) (float64, bool) {
	p_v := get_p_v(x, p_atm, c)

	// x = 0 では露点が定義できないため乾球温度から探索を始める
	var t_wb float64
	if x > 0.0 {
		t_wb = get_t_dp(x, p_atm, c)
	} else {
		t_wb = t
	}

	for i := 0; i < c.N_max; i++ {
		f := (get_p_vs(t_wb, c) - p_v) - c.A_wb*p_atm*(t-t_wb)
		df := get_dp_vs_dt(t_wb, c) + c.A_wb*p_atm

		d := f / df
		t_wb = t_wb - d

		if math.Abs(d) < c.Tol {
			return t_wb, true
		}
	}

	log.Printf("wet bulb temperature did not converge within %d iterations (t=%f, x=%f)", c.N_max, t, x)

	return t_wb, false
}

/*
乾球温度と湿球温度から絶対湿度を計算する。

    Args:
        t: 乾球温度, degree C
        t_wb: 湿球温度, degree C
        p_atm: 大気圧, kPa
        c: 物性値・計算条件

    Returns:
        絶対湿度, kg/kgDA

    Notes:
        Carrier の近似式（閉形式、反復計算なし）。
        x_ws は湿球温度における飽和絶対湿度。
*/
func get_x_from_t_wb(t, t_wb, p_atm float64, c PsychrometricConstants) float64 {
	x_ws := get_x(t_wb, 100.0, p_atm, c)

	return ((c.L_wtr-(c.C_pw-c.C_pv)*t_wb)*x_ws - c.C_pa*(t-t_wb)) /
		(c.L_wtr + c.C_pv*t - c.C_pw*t_wb)
}

/*
露点温度を計算する。

    Args:
        x: 絶対湿度, kg/kgDA
        p_atm: 大気圧, kPa
        c: 物性値・計算条件

    Returns:
        露点温度, degree C

    Notes:
        飽和水蒸気圧曲線（水）の閉形式の逆算。
*/
func get_t_dp(x, p_atm float64, c PsychrometricConstants) float64 {
	p_v := get_p_v(x, p_atm, c)

	y := math.Log(p_v / c.SatWater.A)

	return c.SatWater.C * y / (c.SatWater.B - y)
}

/*
比容積を計算する。

    Args:
        t: 乾球温度, degree C
        x: 絶対湿度, kg/kgDA
        p_atm: 大気圧, kPa
        c: 物性値・計算条件

    Returns:
        比容積, m3/kgDA

    Notes:
        v = R_da・(t + 273.15)・(1 + 1.608x)/P
*/
func get_v_air(t, x, p_atm float64, c PsychrometricConstants) float64 {
	return c.R_da * (t + 273.15) * (1.0 + 1.608*x) / p_atm
}

/*
空気の密度を計算する。

    Args:
        t: 乾球温度, degree C
        x: 絶対湿度, kg/kgDA
        p_atm: 大気圧, kPa
        c: 物性値・計算条件

    Returns:
        密度, kg/m3
*/
func get_rho_air(t, x, p_atm float64, c PsychrometricConstants) float64 {
	return 1.0 / get_v_air(t, x, p_atm, c)
}
