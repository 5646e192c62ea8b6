package psychro

// 湿り空気計算で使用する物性値・計算条件の一式。
// すべての計算関数は本構造体を明示的に受け取り、パッケージ内に
// 可変なグローバル状態を持たない。
type PsychrometricConstants struct {
	P_atm     float64 // 標準大気圧, kPa
	C_pa      float64 // 乾き空気の定圧比熱, kJ/(kg K)
	C_pv      float64 // 水蒸気の定圧比熱, kJ/(kg K)
	C_pw      float64 // 水の比熱, kJ/(kg K)
	L_wtr     float64 // 0℃における水の蒸発潜熱, kJ/kg
	Eps       float64 // 水蒸気と乾き空気の分子量比, -
	R_da      float64 // 乾き空気の気体定数, kJ/(kg K)
	A_wb      float64 // 乾湿計係数（Sprungの式）, 1/K
	Tol       float64 // 収束判定値
	N_max     int     // Newton-Raphson法の最大反復回数
	N_bisect  int     // 二分法の反復回数
	SatWater  SaturationCoeffs // 飽和水蒸気圧曲線の係数（水）
	SatIce    SaturationCoeffs // 飽和水蒸気圧曲線の係数（氷）
}

// 飽和水蒸気圧曲線 Ps = A・exp(B・t/(C+t)) の係数
type SaturationCoeffs struct {
	A float64 // kPa
	B float64
	C float64
}

/*
物性値・計算条件のデフォルト値を取得する。

    Returns:
        物性値・計算条件の一式

    Notes:
        飽和水蒸気圧曲線の係数はTetensの式による。
        水蒸気の定圧比熱は1.86 kJ/(kg K)に統一した。
*/
func DefaultConstants() PsychrometricConstants {
	return PsychrometricConstants{
		P_atm:    101.325,
		C_pa:     1.006,
		C_pv:     1.86,
		C_pw:     4.186,
		L_wtr:    2501.0,
		Eps:      0.622,
		R_da:     0.287,
		A_wb:     6.62e-4,
		Tol:      0.001,
		N_max:    100,
		N_bisect: 60,
		SatWater: SaturationCoeffs{A: 0.61078, B: 17.27, C: 237.3},
		SatIce:   SaturationCoeffs{A: 0.61078, B: 21.875, C: 265.5},
	}
}

// 物性値・計算条件の部分的な上書き。
// nil のフィールドはデフォルト値のままとする。
type ConstantsOverride struct {
	P_atm    *float64
	C_pa     *float64
	C_pv     *float64
	C_pw     *float64
	L_wtr    *float64
	Eps      *float64
	R_da     *float64
	A_wb     *float64
	Tol      *float64
	N_max    *int
	N_bisect *int
	SatWater *SaturationCoeffs
	SatIce   *SaturationCoeffs
}

/*
デフォルト値に上書き値を重ねて有効な物性値・計算条件を決定する。

    Args:
        ov: 上書き値（nilの場合はデフォルト値をそのまま返す）

    Returns:
        有効な物性値・計算条件の一式
*/
func ResolveConstants(ov *ConstantsOverride) PsychrometricConstants {
	c := DefaultConstants()

	if ov == nil {
		return c
	}

	if ov.P_atm != nil {
		c.P_atm = *ov.P_atm
	}
	if ov.C_pa != nil {
		c.C_pa = *ov.C_pa
	}
	if ov.C_pv != nil {
		c.C_pv = *ov.C_pv
	}
	if ov.C_pw != nil {
		c.C_pw = *ov.C_pw
	}
	if ov.L_wtr != nil {
		c.L_wtr = *ov.L_wtr
	}
	if ov.Eps != nil {
		c.Eps = *ov.Eps
	}
	if ov.R_da != nil {
		c.R_da = *ov.R_da
	}
	if ov.A_wb != nil {
		c.A_wb = *ov.A_wb
	}
	if ov.Tol != nil {
		c.Tol = *ov.Tol
	}
	if ov.N_max != nil {
		c.N_max = *ov.N_max
	}
	if ov.N_bisect != nil {
		c.N_bisect = *ov.N_bisect
	}
	if ov.SatWater != nil {
		c.SatWater = *ov.SatWater
	}
	if ov.SatIce != nil {
		c.SatIce = *ov.SatIce
	}

	return c
}
