// Package postgres opens the PostgreSQL connection used for session persistence and
// keeps its schema current.
package postgres

import (
	"errors"
	"fmt"
	"strings"

	"logistics/internal/adapters/out/postgres/sessionrepo"
	"logistics/internal/pkg/errs"

	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// ConnectionConfig describes how to reach the database.
type ConnectionConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	Name     string
	SSLMode  string
}

// Validate requires host, user and database name.
func (c ConnectionConfig) Validate() error {
	var hostErr, userErr, nameErr error
	if strings.TrimSpace(c.Host) == "" {
		hostErr = errs.NewValueIsRequiredError("DB_HOST")
	}
	if strings.TrimSpace(c.User) == "" {
		userErr = errs.NewValueIsRequiredError("DB_USER")
	}
	if strings.TrimSpace(c.Name) == "" {
		nameErr = errs.NewValueIsRequiredError("DB_NAME")
	}
	return errors.Join(hostErr, userErr, nameErr)
}

// DSN renders the key/value connection string understood by pgx.
func (c ConnectionConfig) DSN() string {
	port := c.Port
	if port == "" {
		port = "5432"
	}
	sslMode := c.SSLMode
	if sslMode == "" {
		sslMode = "disable"
	}
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.Host, port, c.User, c.Password, c.Name, sslMode)
}

// Open connects with cfg and migrates the session schema.
func Open(cfg ConnectionConfig) (*gorm.DB, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return OpenDSN(cfg.DSN())
}

// OpenDSN connects with a raw DSN and migrates the session schema.
func OpenDSN(dsn string) (*gorm.DB, error) {
	db, err := gorm.Open(postgresdriver.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return nil, fmt.Errorf("connect to postgres: %w", err)
	}
	if err = sessionrepo.Migrate(db); err != nil {
		return nil, fmt.Errorf("migrate session schema: %w", err)
	}
	return db, nil
}

// Close releases the underlying connection pool.
func Close(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
