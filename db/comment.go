package db

import (
	"database/sql"
	"log"

	"github.com/detoxlab/detox/corpus"
)

const addCommentQuery = `
REPLACE INTO comments(rev_id, comment, year, attack) ` +
	`VALUES (?, ?, ?, ?)`

// AddComment inserts a single labeled comment inside a transaction.
// A failed row is logged rather than aborting the batch.
func (d DBManager) AddComment(t *sql.Tx, c corpus.Comment) {
	_, err := t.Exec(addCommentQuery,
		c.RevID,
		c.Text,
		c.Year,
		c.Attack,
	)
	if err != nil {
		log.Print("Error in AddComment(): ", err)
	}
}

// AddComments batch-inserts the labeled corpus in one transaction.
func (d DBManager) AddComments(comments []corpus.Comment) error {
	tx := d.BeginTx()
	for _, c := range comments {
		d.AddComment(tx, c)
	}
	return tx.Commit()
}

const countCommentsQuery = `SELECT COUNT(*) FROM comments`

func (d DBManager) CountComments() (int, error) {
	var count int
	if err := d.db.QueryRow(countCommentsQuery).Scan(&count); err != nil {
		return 0, err
	}
	return count, nil
}
