package psychro

import "fmt"

// 状態値の種類
type PropertyKind string

// 状態値の種類の定数
const (
	KindDryBulb       PropertyKind = "dry_bulb"
	KindWetBulb       PropertyKind = "wet_bulb"
	KindRelHumidity   PropertyKind = "relative_humidity"
	KindHumidityRatio PropertyKind = "humidity_ratio"
	KindEnthalpy      PropertyKind = "enthalpy"
	KindDewPoint      PropertyKind = "dew_point"
)

/*
状態値の種類が定義済みか否かを判定する。

    Returns:
        定義済みの場合 true
*/
func (k PropertyKind) is_valid() bool {
	switch k {
	case KindDryBulb, KindWetBulb, KindRelHumidity, KindHumidityRatio, KindEnthalpy, KindDewPoint:
		return true
	default:
		return false
	}
}

// 適用区分（季節）
type Season string

// 適用区分の定数
const (
	SeasonSummer Season = "summer"
	SeasonWinter Season = "winter"
	SeasonMiddle Season = "middle"
)

// 空気の状態点。
// 構築後は7つの状態値が同一の大気圧・物性値のもとで互いに整合する。
type AirState struct {
	// 識別情報
	Id            string
	Name          string
	Season        Season
	Order         int
	Color         *string  // 表示色（未指定可）
	Airflow       *float64 // 風量, m3/h（未指定可）
	AirflowSource string   // 風量を他の状態点から引き継ぐ場合の参照名

	// 状態値
	T_db float64 // 乾球温度, degree C
	T_wb float64 // 湿球温度, degree C
	Rh   float64 // 相対湿度, %
	X    float64 // 絶対湿度, kg/kgDA
	H    float64 // 比エンタルピー, kJ/kgDA
	T_dp float64 // 露点温度, degree C
	V    float64 // 比容積, m3/kgDA

	// 反復計算が収束しなかった場合 true（最後の反復値を保持している）
	NotConverged bool
}

// 温度の情報を持たない状態値の組に対するエラー
type AmbiguousPairError struct {
	KindA PropertyKind
	KindB PropertyKind
}

func (e *AmbiguousPairError) Error() string {
	return fmt.Sprintf("property pair (%s, %s) does not determine temperature", e.KindA, e.KindB)
}

// 非数・物理的に不正な入力に対するエラー
type InvalidInputError struct {
	Field  string
	Value  float64
	Reason string
}

func (e *InvalidInputError) Error() string {
	return fmt.Sprintf("invalid input %s=%f: %s", e.Field, e.Value, e.Reason)
}
