// Package repository wires database handles to the concrete repository
// implementations.
package repository

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/rajkumar2004725/Campus-Event-Management/internal/domain"
	"github.com/rajkumar2004725/Campus-Event-Management/internal/repository/postgres"
	"github.com/rajkumar2004725/Campus-Event-Management/internal/repository/postgres/migrations"
	"github.com/rajkumar2004725/Campus-Event-Management/internal/repository/sqlite"
)

// Stores bundles the repositories backed by one database handle.
type Stores struct {
	DB            *sql.DB
	Events        domain.EventRepository
	Registrations domain.RegistrationRepository
	Students      domain.StudentRepository
	Reports       domain.ReportRepository
}

// Open connects to the database named by databaseURL and ensures the schema
// is up to date. A postgres:// URL selects the Postgres backend; anything
// else is treated as a SQLite path.
func Open(ctx context.Context, databaseURL string) (*Stores, error) {
	if strings.HasPrefix(databaseURL, "postgres://") || strings.HasPrefix(databaseURL, "postgresql://") {
		db, err := postgres.Connect(ctx, databaseURL)
		if err != nil {
			return nil, err
		}
		if err := postgres.ApplyMigrations(ctx, db, migrations.FS); err != nil {
			db.Close()
			return nil, fmt.Errorf("apply migrations: %w", err)
		}
		return &Stores{
			DB:            db,
			Events:        postgres.NewEventRepository(db),
			Registrations: postgres.NewRegistrationRepository(db),
			Students:      postgres.NewStudentRepository(db),
			Reports:       postgres.NewReportRepository(db),
		}, nil
	}

	db, err := sqlite.Open(ctx, databaseURL)
	if err != nil {
		return nil, err
	}
	return &Stores{
		DB:            db,
		Events:        sqlite.NewEventRepository(db),
		Registrations: sqlite.NewRegistrationRepository(db),
		Students:      sqlite.NewStudentRepository(db),
		Reports:       sqlite.NewReportRepository(db),
	}, nil
}

// Close closes the underlying database handle.
func (s *Stores) Close() error {
	if s == nil || s.DB == nil {
		return nil
	}
	return s.DB.Close()
}
