package db

func (d DBManager) createTables() error {
	if _, err := d.db.Exec("CREATE TABLE IF NOT EXISTS comments(rev_id BIGINT PRIMARY KEY, comment TEXT, year INT, attack BOOL)"); err != nil {
		return err
	}
	if _, err := d.db.Exec("CREATE TABLE IF NOT EXISTS runs(run_id SERIAL PRIMARY KEY, time_stamp BIGINT, model VARCHAR(64), accuracy FLOAT, macro_f1 FLOAT, weighted_f1 FLOAT, train_size INT, test_size INT)"); err != nil {
		return err
	}
	return nil
}
