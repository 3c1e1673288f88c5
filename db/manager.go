// Package db persists the labeled corpus and evaluation runs to MySQL.
// The pipeline runs fine without it; persistence is opt-in.
package db

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"os"

	_ "github.com/go-sql-driver/mysql"
)

// DBManager controls how the rest of the program reaches the database.
type DBManager struct {
	db     *sql.DB
	dbName string
	dbUser string
	dbPwd  string
	dbURL  string
	URI    string
}

// NewManager opens a connection using the DB_USER, DB_PWD, DB_NAME and
// DB_URL environment variables and creates the tables on first use.
func NewManager() (DBManager, error) {
	var (
		d   DBManager
		err error
	)
	d.dbUser = os.Getenv("DB_USER")
	d.dbPwd = os.Getenv("DB_PWD")
	d.dbName = os.Getenv("DB_NAME")
	d.dbURL = os.Getenv("DB_URL")

	d.URI = fmt.Sprintf("%s:%s@tcp(%s)/%s", d.dbUser, d.dbPwd, d.dbURL, d.dbName)
	d.db, err = sql.Open("mysql", d.URI)
	if err != nil {
		log.Printf("Failed to open connection in DB NewManager(): %v", err)
		return DBManager{}, err
	}

	if err := d.db.Ping(); err != nil {
		log.Printf("Failed to Ping DB in NewManager(): %v", err)
		return DBManager{}, err
	}

	if err := d.createTables(); err != nil {
		return DBManager{}, err
	}
	return d, nil
}

func (d DBManager) Close() {
	d.db.Close()
}

func (d DBManager) BeginTx() *sql.Tx {
	t, err := d.db.BeginTx(context.Background(), nil)
	if err != nil {
		log.Printf("Error beginning transaction: %v", err)
	}
	return t
}
