package db

import (
	"os"
	"strconv"

	"gorm.io/gorm"
)

func GetDB() (*gorm.DB, error) {
	dbHost := os.Getenv("DB_HOST")
	dbHostPort := os.Getenv("DB_PORT")
	port, err := strconv.ParseUint(dbHostPort, 10, 32)
	if err != nil {
		port = 5432 // Puerto por defecto de PostgreSQL
	}

	dbName := os.Getenv("DB_NAME")
	dbUser := os.Getenv("DB_USERNAME")
	dbPass := os.Getenv("DB_PASSWORD")
	return ConnectDataBase(uint(port), dbHost, dbName, dbUser, dbPass)
}
