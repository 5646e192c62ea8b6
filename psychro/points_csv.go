package psychro

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/gocarina/gocsv"
)

// 空欄を「未指定」として扱う風量列。
// ポインタ型のフィールドをそのままgocsvに渡すと空欄が0へのポインタに
// なってしまい、「未指定」と「風量0」が区別できないため、
// TypeUnmarshallerで明示的に変換する。
type AirflowCell struct {
	Value *float64 // 風量, m3/h（空欄の場合はnil）
}

/*
CSVのセルから風量を読み取る。

    Args:
        s: セルの文字列

    Notes:
        空欄（空白のみを含む）は未指定（nil）とする。
*/
func (a *AirflowCell) UnmarshalCSV(s string) error {
	s = strings.TrimSpace(s)

	if s == "" {
		a.Value = nil
		return nil
	}

	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return err
	}

	a.Value = &v
	return nil
}

// 状態点定義ファイルの1行
type StatePointRow struct {
	Name    string       `csv:"name"`
	Season  Season       `csv:"season"`
	KindA   PropertyKind `csv:"kind_a"`
	ValueA  float64      `csv:"value_a"`
	KindB   PropertyKind `csv:"kind_b"`
	ValueB  float64      `csv:"value_b"`
	Airflow AirflowCell  `csv:"airflow"`
}

/*
状態点定義ファイル（CSV）を読み込む。

    Args:
        file_path: 状態点定義ファイルのパス

    Returns:
        状態点定義の行のスライス

    Notes:
        列構成: name, season, kind_a, value_a, kind_b, value_b, airflow
        airflow列は空欄可。
*/
func LoadStatePointRows(file_path string) ([]*StatePointRow, error) {
	file, err := os.Open(file_path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	var rows []*StatePointRow
	if err := gocsv.UnmarshalFile(file, &rows); err != nil {
		return nil, err
	}

	return rows, nil
}

/*
状態点定義の行をファイルの順に解決する。

    Args:
        rows: 状態点定義の行のスライス
        p_atm: 大気圧, kPa（0の場合は標準大気圧）
        ov: 物性値・計算条件の上書き値

    Returns:
        空気の状態点のスライス（行の順序を保持する）

    Notes:
        解決できない行がある場合は行番号を含むエラーを返す。
*/
func ResolveStatePointRows(rows []*StatePointRow, p_atm float64, ov *ConstantsOverride) ([]*AirState, error) {
	states := make([]*AirState, len(rows))

	for i, row := range rows {
		st, err := ResolveState(row.KindA, row.ValueA, row.KindB, row.ValueB, p_atm, ov)
		if err != nil {
			return nil, fmt.Errorf("row %d (%s): %w", i+1, row.Name, err)
		}

		st.Id = fmt.Sprintf("point-%d", i+1)
		st.Name = row.Name
		st.Season = row.Season
		st.Order = i
		st.Airflow = row.Airflow.Value

		states[i] = st
	}

	return states, nil
}
