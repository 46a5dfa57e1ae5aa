package database

import (
	"os"

	"github.com/go-pg/pg/v10"
	"github.com/go-pg/pg/v10/orm"
	_ "github.com/joho/godotenv/autoload"

	"github.com/DedS3t/monopoly-engine/app/models"
)

func PostgreSQLConnection() *pg.DB {
	return pg.Connect(&pg.Options{
		User:     os.Getenv("DB_USER"),
		Addr:     os.Getenv("DB_ADDR"),
		Password: os.Getenv("DB_PASSWORD"),
		Database: os.Getenv("DB_NAME"),
	})
}

// CreateSchema bootstraps the tables on startup.
func CreateSchema(db *pg.DB) error {
	tables := []interface{}{
		(*models.Game)(nil),
		(*models.Player)(nil),
		(*models.Ownership)(nil),
		(*models.User)(nil),
	}
	for _, table := range tables {
		err := db.Model(table).CreateTable(&orm.CreateTableOptions{
			IfNotExists: true,
		})
		if err != nil {
			return err
		}
	}
	return nil
}
