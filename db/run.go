package db

import (
	"log"
	"time"

	"github.com/detoxlab/detox/metrics"
)

// Run is one evaluation result as stored in the runs table.
type Run struct {
	ID         int     `json:"id"`
	TimeStamp  int64   `json:"time_stamp"`
	Model      string  `json:"model"`
	Accuracy   float64 `json:"accuracy"`
	MacroF1    float64 `json:"macro_f1"`
	WeightedF1 float64 `json:"weighted_f1"`
	TrainSize  int     `json:"train_size"`
	TestSize   int     `json:"test_size"`
}

const addRunQuery = `
INSERT INTO runs(time_stamp, model, accuracy, macro_f1, weighted_f1, train_size, test_size) ` +
	`VALUES (?, ?, ?, ?, ?, ?, ?)`

// AddRun appends an evaluation report for the named model.
func (d DBManager) AddRun(model string, r *metrics.Report, trainSize int) error {
	_, err := d.db.Exec(addRunQuery,
		time.Now().Unix(),
		model,
		float32(r.Accuracy),
		float32(r.MacroF1),
		float32(r.WeightedF1),
		trainSize,
		r.Total,
	)
	return err
}

const returnRunsQuery = `
SELECT run_id, time_stamp, model, accuracy, macro_f1, weighted_f1, train_size, test_size ` +
	`FROM runs ORDER BY time_stamp DESC`

// ReturnRuns lists stored evaluation runs, newest first.
func (d DBManager) ReturnRuns() []Run {
	rows, err := d.db.Query(returnRunsQuery)
	if err != nil {
		log.Print("Error returning run history: ", err)
		return nil
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		var r Run
		if err := rows.Scan(&r.ID, &r.TimeStamp, &r.Model, &r.Accuracy, &r.MacroF1, &r.WeightedF1, &r.TrainSize, &r.TestSize); err != nil {
			log.Printf("ReturnRuns(): Error in rows.Scan(): %v", err)
			continue
		}
		runs = append(runs, r)
	}
	return runs
}
