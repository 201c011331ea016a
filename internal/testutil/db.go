// Package testutil provides an in-memory sqlite database for repository
// and handler tests. The schema mirrors the goose migrations with sqlite
// column types; queries are portable because repositories use ? bindvars
// with Rebind.
package testutil

import (
	"testing"

	"github.com/jmoiron/sqlx"
	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/require"
)

const schema = `
CREATE TABLE users (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    full_name TEXT NOT NULL,
    phone TEXT NOT NULL UNIQUE,
    password_hash TEXT NOT NULL
);

CREATE TABLE companies (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    name TEXT NOT NULL,
    city TEXT NOT NULL,
    address TEXT NOT NULL,
    phone TEXT NOT NULL UNIQUE
);

CREATE TABLE projects (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    access TEXT NOT NULL,
    user_id INTEGER NOT NULL REFERENCES users (id) ON DELETE CASCADE,
    company_id INTEGER NOT NULL REFERENCES companies (id) ON DELETE CASCADE
);

CREATE TABLE services (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    company_id INTEGER NOT NULL REFERENCES companies (id) ON DELETE CASCADE,
    name TEXT NOT NULL,
    price NUMERIC NOT NULL,
    currency TEXT NOT NULL,
    length INTEGER NOT NULL,
    break_duration INTEGER NOT NULL
);

CREATE TABLE employees (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    company_id INTEGER NOT NULL REFERENCES companies (id) ON DELETE CASCADE,
    full_name TEXT NOT NULL,
    phone TEXT NOT NULL,
    position TEXT NOT NULL,
    access TEXT NOT NULL
);

CREATE TABLE employee_services (
    employee_id INTEGER NOT NULL REFERENCES employees (id) ON DELETE CASCADE,
    service_id INTEGER NOT NULL REFERENCES services (id) ON DELETE CASCADE,
    PRIMARY KEY (employee_id, service_id)
);

CREATE TABLE schedule_types (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    name TEXT NOT NULL
);

CREATE TABLE schedule_subtypes (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    name TEXT NOT NULL
);

CREATE TABLE schedule_patterns (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    days_work INTEGER NOT NULL,
    days_rest INTEGER NOT NULL
);

CREATE TABLE schedule_week_days (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    day_of_week INTEGER NOT NULL,
    is_working BOOLEAN NOT NULL
);

CREATE TABLE schedule_exceptions (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    exception_date TEXT NOT NULL,
    is_working BOOLEAN NOT NULL
);

CREATE TABLE work_time_slots (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    start_time TEXT NOT NULL,
    end_time TEXT NOT NULL,
    valid_from TEXT NOT NULL,
    valid_to TEXT NOT NULL
);

CREATE TABLE work_breaks (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    slot_id INTEGER NOT NULL REFERENCES work_time_slots (id) ON DELETE CASCADE,
    start_time TEXT NOT NULL,
    end_time TEXT NOT NULL
);

CREATE TABLE employee_schedules (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    employee_id INTEGER NOT NULL REFERENCES employees (id) ON DELETE CASCADE,
    type_id INTEGER REFERENCES schedule_types (id),
    subtype_id INTEGER REFERENCES schedule_subtypes (id),
    pattern_id INTEGER REFERENCES schedule_patterns (id),
    week_day_id INTEGER REFERENCES schedule_week_days (id),
    exception_id INTEGER REFERENCES schedule_exceptions (id),
    slot_id INTEGER REFERENCES work_time_slots (id),
    created_at TIMESTAMP NOT NULL
);
`

// NewDB opens a fresh in-memory database with the full schema applied.
// Each call gets its own database, so tests stay independent.
func NewDB(t *testing.T) *sqlx.DB {
	t.Helper()

	db, err := sqlx.Open("sqlite3", ":memory:?_foreign_keys=on")
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	// A single connection keeps the in-memory database alive across queries.
	db.SetMaxOpenConns(1)

	_, err = db.Exec(schema)
	require.NoError(t, err)

	return db
}
