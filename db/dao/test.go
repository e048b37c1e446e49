package dao

import (
	"fmt"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Database wraps a throwaway database for unit tests.
type Database struct {
	Name string
	DB   *gorm.DB
}

// RunDB opens a shared in-memory database for unit tests.
func RunDB(dbName string) (*Database, error) {
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", dbName)
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	if err != nil {
		return nil, err
	}

	return &Database{
		Name: dbName,
		DB:   db,
	}, nil
}

// StopDB closes the underlying connection, dropping the in-memory database.
func (d *Database) StopDB() error {
	conn, err := d.DB.DB()
	if err != nil {
		return err
	}
	return conn.Close()
}

// ClearDB drops the tables in the database.
func (d *Database) ClearDB() error {
	tables, err := d.DB.Migrator().GetTables()
	if err != nil {
		return err
	}
	for _, table := range tables {
		// sqlite_sequence is SQLite's internal AUTOINCREMENT bookkeeping
		// table and may not be dropped.
		if table == "sqlite_sequence" {
			continue
		}
		if err := d.DB.Migrator().DropTable(table); err != nil {
			return err
		}
	}
	return nil
}
