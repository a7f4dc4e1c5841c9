package database

import (
	"database/sql"
	"errors"
	"log"

	"github.com/go-gorp/gorp/v3"
	"github.com/mattn/go-sqlite3"

	"github.com/draftscout/draftscout/pkg/scrape"
)

type Sqlite struct {
	db    *sql.DB
	dbmap *gorp.DbMap
}

func NewSqlite(file string) Sqlite {
	sqlite := Sqlite{}

	// Initialize the database connection
	db, err := sql.Open("sqlite3", file)
	if err != nil {
		log.Panic("Unable to connect to database: ", err)
	}
	sqlite.db = db

	// Initialize the database mapping, creating the tables if it's our first run
	dbmap := &gorp.DbMap{Db: db, Dialect: gorp.SqliteDialect{}}
	dbmap.AddTableWithName(scrape.CombineRow{}, "combine").SetUniqueTogether("Year", "Player", "School")
	dbmap.AddTableWithName(scrape.PassingRow{}, "passing").SetUniqueTogether("PlayerID", "Season")
	dbmap.AddTableWithName(scrape.RushingRow{}, "rushing").SetUniqueTogether("PlayerID", "Season")
	dbmap.AddTableWithName(scrape.ReceivingRow{}, "receiving").SetUniqueTogether("PlayerID", "Season")
	dbmap.AddTableWithName(scrape.DefenseRow{}, "defense").SetUniqueTogether("PlayerID", "Season")
	err = dbmap.CreateTablesIfNotExists()
	if err != nil {
		log.Panic("Unable to create tables: ", err)
	}
	sqlite.dbmap = dbmap

	return sqlite
}

func (s Sqlite) SaveCombine(rows []scrape.CombineRow) error {
	insertData := make([]interface{}, 0, len(rows))
	for i := range rows {
		insertData = append(insertData, &rows[i])
	}
	return s.save(insertData)
}

func (s Sqlite) SavePassing(rows []scrape.PassingRow) error {
	insertData := make([]interface{}, 0, len(rows))
	for i := range rows {
		insertData = append(insertData, &rows[i])
	}
	return s.save(insertData)
}

func (s Sqlite) SaveRushing(rows []scrape.RushingRow) error {
	insertData := make([]interface{}, 0, len(rows))
	for i := range rows {
		insertData = append(insertData, &rows[i])
	}
	return s.save(insertData)
}

func (s Sqlite) SaveReceiving(rows []scrape.ReceivingRow) error {
	insertData := make([]interface{}, 0, len(rows))
	for i := range rows {
		insertData = append(insertData, &rows[i])
	}
	return s.save(insertData)
}

func (s Sqlite) SaveDefense(rows []scrape.DefenseRow) error {
	insertData := make([]interface{}, 0, len(rows))
	for i := range rows {
		insertData = append(insertData, &rows[i])
	}
	return s.save(insertData)
}

func (s Sqlite) save(rows []interface{}) error {
	tx, err := s.dbmap.Begin()
	if err != nil {
		return err
	}
	for _, row := range rows {
		err := tx.Insert(row)
		var sqliteError sqlite3.Error
		if errors.As(err, &sqliteError) {
			if errors.Is(sqliteError.ExtendedCode, sqlite3.ErrConstraintUnique) {
				continue // silently ignore duplicates
			}
		}
	}
	return tx.Commit()
}

func (s Sqlite) Close() error {
	return s.db.Close()
}
