package main

import (
	"flag"
	"fmt"
	"log"
	"math"
	"time"

	"github.com/kn-nakamura/psychrometric-app-sub000/psychro"
)

/*
状態点計算処理の実行

    Args:
        points_path: 状態点定義CSVファイルへのパス
        p_atm: 大気圧, kPa（0の場合は標準大気圧）
*/
func run(points_path string, p_atm float64) error {
	log.Printf("Load state point definitions from `%s`", points_path)
	rows, err := psychro.LoadStatePointRows(points_path)
	if err != nil {
		return err
	}

	log.Printf("Resolve %d state points", len(rows))
	states, err := psychro.ResolveStatePointRows(rows, p_atm, nil)
	if err != nil {
		return err
	}

	fmt.Printf("%-16s %-8s %8s %8s %8s %10s %8s %8s %8s %10s\n",
		"name", "season", "t_db", "t_wb", "rh", "x", "h", "t_dp", "v", "m_dot")

	for _, st := range states {
		m_dot := math.NaN()
		if st.Airflow != nil {
			m_dot = psychro.MassFlowFromAirflow(*st.Airflow, st)
		}

		fmt.Printf("%-16s %-8s %8.2f %8.2f %8.1f %10.5f %8.2f %8.2f %8.4f %10.4f\n",
			st.Name, st.Season, st.T_db, st.T_wb, st.Rh, st.X, st.H, st.T_dp, st.V, m_dot)

		if st.NotConverged {
			log.Printf("state point `%s` did not fully converge", st.Name)
		}
	}

	return nil
}

func main() {
	var points_path string
	flag.StringVar(&points_path, "input", "", "状態点定義CSVファイル")

	var p_atm float64
	flag.Float64Var(&p_atm, "pressure", 0.0, "大気圧, kPa（0の場合は標準大気圧 101.325 kPa）")

	flag.Parse()

	if points_path == "" {
		log.Fatal("`-input` is required")
	}

	start := time.Now()

	if err := run(points_path, p_atm); err != nil {
		log.Fatal(err)
	}

	elapsedTime := time.Since(start)
	log.Printf("elapsed_time: %v [sec]", elapsedTime)
}
