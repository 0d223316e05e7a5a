// Package sqlite implementa la persistencia sobre SQLite con gorm (driver Go puro).
package sqlite

import (
	"fmt"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// Open abre la base (ruta de archivo o ":memory:") y migra el esquema.
func Open(path string) (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("abrir sqlite: %w", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("sqlite: handle: %w", err)
	}
	// Una sola conexión: cada conexión a :memory: es una base distinta y SQLite serializa escrituras.
	sqlDB.SetMaxOpenConns(1)

	if err := db.AutoMigrate(&productModel{}); err != nil {
		return nil, fmt.Errorf("sqlite: migrar esquema: %w", err)
	}
	return db, nil
}

// Close cierra la conexión subyacente.
func Close(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
