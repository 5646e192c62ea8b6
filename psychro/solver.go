package psychro

import (
	"log"
	"math"
)

// 二分法で乾球温度を探索する際の温度範囲, degree C
const (
	t_search_min     = -50.0
	t_search_max     = 100.0
	t_search_span_wb = 80.0
)

/*
2つの状態値から空気の状態点を決定する。

    Args:
        kind_a: 状態値1の種類
        value_a: 状態値1
        kind_b: 状態値2の種類
        value_b: 状態値2
        p_atm: 大気圧, kPa（0を指定した場合は物性値の標準大気圧を用いる）
        ov: 物性値・計算条件の上書き値

    Returns:
        空気の状態点

    Notes:
        乾球温度が直接分かる組み合わせは閉形式の計算で解く。
        閉形式の経路がない組み合わせは乾球温度に対する二分法で解く。
        露点温度と絶対湿度の組は温度の情報を持たないため解けない
        （AmbiguousPairError）。
*/
func ResolveState(
	kind_a PropertyKind,
	value_a float64,
	kind_b PropertyKind,
	value_b float64,
	p_atm float64,
	ov *ConstantsOverride,
) (*AirState, error) {
	c := ResolveConstants(ov)

	if p_atm == 0.0 {
		p_atm = c.P_atm
	}

	if err := _validate_input(kind_a, value_a, kind_b, value_b, p_atm); err != nil {
		return nil, err
	}

	// 組み合わせを種類の順序に正規化する
	if _kind_rank(kind_a) > _kind_rank(kind_b) {
		kind_a, kind_b = kind_b, kind_a
		value_a, value_b = value_b, value_a
	}

	switch {

	// ---- 閉形式で解ける組み合わせ ----

	case kind_a == KindDryBulb && kind_b == KindWetBulb:
		return _state_from_t_x(value_a, get_x_from_t_wb(value_a, value_b, p_atm, c), p_atm, c), nil

	case kind_a == KindDryBulb && kind_b == KindRelHumidity:
		return _state_from_t_x(value_a, get_x(value_a, value_b, p_atm, c), p_atm, c), nil

	case kind_a == KindDryBulb && kind_b == KindHumidityRatio:
		return _state_from_t_x(value_a, value_b, p_atm, c), nil

	case kind_a == KindDryBulb && kind_b == KindEnthalpy:
		return _state_from_t_x(value_a, get_x_from_h(value_b, value_a, c), p_atm, c), nil

	case kind_a == KindDryBulb && kind_b == KindDewPoint:
		return _state_from_t_x(value_a, _get_x_from_t_dp(value_b, p_atm, c), p_atm, c), nil

	case kind_a == KindHumidityRatio && kind_b == KindEnthalpy:
		return _state_from_t_x(get_t_from_h(value_b, value_a, c), value_a, p_atm, c), nil

	case kind_a == KindEnthalpy && kind_b == KindDewPoint:
		x := _get_x_from_t_dp(value_b, p_atm, c)
		return _state_from_t_x(get_t_from_h(value_a, x, c), x, p_atm, c), nil

	// ---- 温度が決まらない組み合わせ ----

	case kind_a == KindHumidityRatio && kind_b == KindDewPoint:
		// 露点温度と絶対湿度はいずれも水蒸気圧のみで決まるため
		// 乾球温度の情報を持たない
		return nil, &AmbiguousPairError{KindA: kind_a, KindB: kind_b}

	// ---- 二分法で解く組み合わせ ----

	case kind_a == KindWetBulb && kind_b == KindRelHumidity:
		return _solve_by_bisection(value_a, t_search_span_wb+value_a, value_a, func(t float64) float64 {
			t_wb, _ := get_t_wb(t, get_x(t, value_b, p_atm, c), p_atm, c)
			return t_wb
		}, func(t float64) float64 {
			return get_x(t, value_b, p_atm, c)
		}, p_atm, c), nil

	case kind_a == KindWetBulb && kind_b == KindHumidityRatio:
		return _solve_by_bisection(value_a, t_search_span_wb+value_a, value_a, func(t float64) float64 {
			t_wb, _ := get_t_wb(t, value_b, p_atm, c)
			return t_wb
		}, func(t float64) float64 {
			return value_b
		}, p_atm, c), nil

	case kind_a == KindWetBulb && kind_b == KindEnthalpy:
		return _solve_by_bisection(value_a, t_search_span_wb+value_a, value_a, func(t float64) float64 {
			t_wb, _ := get_t_wb(t, _x_non_negative(get_x_from_h(value_b, t, c)), p_atm, c)
			return t_wb
		}, func(t float64) float64 {
			return _x_non_negative(get_x_from_h(value_b, t, c))
		}, p_atm, c), nil

	case kind_a == KindWetBulb && kind_b == KindDewPoint:
		x := _get_x_from_t_dp(value_b, p_atm, c)
		return _solve_by_bisection(value_a, t_search_span_wb+value_a, value_a, func(t float64) float64 {
			t_wb, _ := get_t_wb(t, x, p_atm, c)
			return t_wb
		}, func(t float64) float64 {
			return x
		}, p_atm, c), nil

	case kind_a == KindRelHumidity && kind_b == KindHumidityRatio:
		return _solve_by_bisection(t_search_min, t_search_max, value_a, func(t float64) float64 {
			return get_rh(t, value_b, p_atm, c)
		}, func(t float64) float64 {
			return value_b
		}, p_atm, c), nil

	case kind_a == KindRelHumidity && kind_b == KindEnthalpy:
		return _solve_by_bisection(t_search_min, t_search_max, value_a, func(t float64) float64 {
			return get_rh(t, _x_non_negative(get_x_from_h(value_b, t, c)), p_atm, c)
		}, func(t float64) float64 {
			return _x_non_negative(get_x_from_h(value_b, t, c))
		}, p_atm, c), nil

	case kind_a == KindRelHumidity && kind_b == KindDewPoint:
		x := _get_x_from_t_dp(value_b, p_atm, c)
		return _solve_by_bisection(t_search_min, t_search_max, value_a, func(t float64) float64 {
			return get_rh(t, x, p_atm, c)
		}, func(t float64) float64 {
			return x
		}, p_atm, c), nil

	default:
		panic("invalid property kind pair")
	}
}

/*
乾球温度と絶対湿度からすべての状態値を計算する。

    Args:
        t: 乾球温度, degree C
        x: 絶対湿度, kg/kgDA
        p_atm: 大気圧, kPa
        c: 物性値・計算条件

    Returns:
        空気の状態点

    Notes:
        乾球温度が決まった後はすべての組み合わせが本関数を通る。
*/
func _state_from_t_x(t, x, p_atm float64, c PsychrometricConstants) *AirState {
	t_wb, converged := get_t_wb(t, x, p_atm, c)

	// x = 0 では露点温度が定義できない
	t_dp := math.Inf(-1)
	if x > 0.0 {
		t_dp = get_t_dp(x, p_atm, c)
	}

	return &AirState{
		T_db:         t,
		T_wb:         t_wb,
		Rh:           get_rh(t, x, p_atm, c),
		X:            x,
		H:            get_h_air(t, x, c),
		T_dp:         t_dp,
		V:            get_v_air(t, x, p_atm, c),
		NotConverged: !converged,
	}
}

/*
乾球温度に対する二分法で状態点を決定する。

    Args:
        t_lo: 探索範囲の下限, degree C
        t_hi: 探索範囲の上限, degree C
        target: 目標とする状態値
        forward: 乾球温度から目標と同じ種類の状態値を計算する関数
        x_at: 乾球温度における絶対湿度を計算する関数
        p_atm: 大気圧, kPa
        c: 物性値・計算条件

    Returns:
        空気の状態点

    Notes:
        反復回数は固定（物性値のN_bisect、標準60回）。80℃幅の区間でも
        60回の二分で実用上十分な精度に達する。反復後の残差が収束判定値を
        超える場合は収束フラグを落とした上で最終反復値を返す。
*/
func _solve_by_bisection(
	t_lo, t_hi, target float64,
	forward func(t float64) float64,
	x_at func(t float64) float64,
	p_atm float64,
	c PsychrometricConstants,
) *AirState {
	f := func(t float64) float64 {
		return forward(t) - target
	}

	f_lo := f(t_lo)

	// 反復回数が不正な場合も少なくとも1回は評価する
	n := c.N_bisect
	if n < 1 {
		n = 1
	}

	var t_mid, f_mid float64

	for i := 0; i < n; i++ {
		t_mid = (t_lo + t_hi) / 2.0
		f_mid = f(t_mid)

		if f_mid == 0.0 {
			break
		}

		if f_mid*f_lo < 0.0 {
			t_hi = t_mid
		} else {
			t_lo = t_mid
			f_lo = f_mid
		}
	}

	st := _state_from_t_x(t_mid, _x_non_negative(x_at(t_mid)), p_atm, c)

	if math.Abs(f_mid) > c.Tol {
		log.Printf("bisection residual %f exceeds tolerance after %d iterations (target=%f)", f_mid, n, target)
		st.NotConverged = true
	}

	return st
}

/*
露点温度から絶対湿度を計算する。

    Args:
        t_dp: 露点温度, degree C
        p_atm: 大気圧, kPa
        c: 物性値・計算条件

    Returns:
        絶対湿度, kg/kgDA
*/
func _get_x_from_t_dp(t_dp, p_atm float64, c PsychrometricConstants) float64 {
	p_v := get_p_vs(t_dp, c)

	return c.Eps * p_v / (p_atm - p_v)
}

// エンタルピーからの逆算で生じる負の絶対湿度を0に丸める
func _x_non_negative(x float64) float64 {
	if x < 0.0 {
		return 0.0
	}
	return x
}

// 種類の正規化順序
func _kind_rank(k PropertyKind) int {
	switch k {
	case KindDryBulb:
		return 0
	case KindWetBulb:
		return 1
	case KindRelHumidity:
		return 2
	case KindHumidityRatio:
		return 3
	case KindEnthalpy:
		return 4
	case KindDewPoint:
		return 5
	default:
		panic("invalid property kind")
	}
}

/*
APIの境界で入力値を検証する。

    Notes:
        相対湿度の範囲は内部のクランプ処理に先立ってここで検査する。
*/
func _validate_input(kind_a PropertyKind, value_a float64, kind_b PropertyKind, value_b float64, p_atm float64) error {
	if !kind_a.is_valid() {
		return &InvalidInputError{Field: string(kind_a), Value: value_a, Reason: "unknown property kind"}
	}
	if !kind_b.is_valid() {
		return &InvalidInputError{Field: string(kind_b), Value: value_b, Reason: "unknown property kind"}
	}
	if kind_a == kind_b {
		return &InvalidInputError{Field: string(kind_a), Value: value_a, Reason: "property kinds must differ"}
	}

	if p_atm <= 0.0 || math.IsNaN(p_atm) || math.IsInf(p_atm, 0) {
		return &InvalidInputError{Field: "p_atm", Value: p_atm, Reason: "pressure must be positive and finite"}
	}

	for _, kv := range []struct {
		kind  PropertyKind
		value float64
	}{{kind_a, value_a}, {kind_b, value_b}} {
		if math.IsNaN(kv.value) || math.IsInf(kv.value, 0) {
			return &InvalidInputError{Field: string(kv.kind), Value: kv.value, Reason: "value must be finite"}
		}
		if kv.kind == KindRelHumidity && (kv.value < 0.0 || kv.value > 100.0) {
			return &InvalidInputError{Field: string(kv.kind), Value: kv.value, Reason: "relative humidity must be within [0, 100]"}
		}
		if kv.kind == KindHumidityRatio && kv.value < 0.0 {
			return &InvalidInputError{Field: string(kv.kind), Value: kv.value, Reason: "humidity ratio must be non-negative"}
		}
	}

	return nil
}
