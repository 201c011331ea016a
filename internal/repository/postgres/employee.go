package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/yelizavetafitil/BookingBack/internal/model"
	"github.com/yelizavetafitil/BookingBack/internal/repository"
)

func (r *employeeRepository) Create(ctx context.Context, employee *model.Employee) (int64, error) {
	var id int64
	err := r.WithTx(ctx, func(tx *sqlx.Tx) error {
		query := tx.Rebind(`
			INSERT INTO employees (company_id, full_name, phone, position, access)
			VALUES (?, ?, ?, ?, ?)
			RETURNING id
		`)
		if err := tx.QueryRowxContext(ctx, query,
			employee.CompanyID,
			employee.FullName,
			employee.PhoneNumber,
			employee.Position,
			employee.Access,
		).Scan(&id); err != nil {
			return fmt.Errorf("failed to create employee: %w", err)
		}

		// Mirror of the register-side link: an already registered user with
		// this phone gets a membership in the company right away.
		var user model.User
		query = tx.Rebind(`SELECT id, full_name, phone, password_hash FROM users WHERE phone = ?`)
		err := tx.GetContext(ctx, &user, query, employee.PhoneNumber)
		if errors.Is(err, sql.ErrNoRows) {
			return nil
		}
		if err != nil {
			return fmt.Errorf("failed to look up user by phone: %w", err)
		}

		query = tx.Rebind(`INSERT INTO projects (access, user_id, company_id) VALUES (?, ?, ?)`)
		if _, err := tx.ExecContext(ctx, query, employee.Access, user.ID, employee.CompanyID); err != nil {
			return fmt.Errorf("failed to link user to company: %w", err)
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return id, nil
}

func (r *employeeRepository) Get(ctx context.Context, id int64) (*model.Employee, error) {
	query := r.db.Rebind(`
		SELECT id, company_id, full_name, phone, position, access
		FROM employees
		WHERE id = ?
	`)

	var employee model.Employee
	err := r.db.GetContext(ctx, &employee, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get employee: %w", err)
	}
	return &employee, nil
}

func (r *employeeRepository) ListByCompany(ctx context.Context, companyID int64) ([]model.Employee, error) {
	query := r.db.Rebind(`
		SELECT id, company_id, full_name, phone, position, access
		FROM employees
		WHERE company_id = ?
		ORDER BY id
	`)

	employees := []model.Employee{}
	if err := r.db.SelectContext(ctx, &employees, query, companyID); err != nil {
		return nil, fmt.Errorf("failed to list employees: %w", err)
	}
	return employees, nil
}

func (r *employeeRepository) Update(ctx context.Context, employee *model.Employee) error {
	query := r.db.Rebind(`
		UPDATE employees
		SET full_name = ?, position = ?, access = ?
		WHERE id = ?
	`)

	result, err := r.db.ExecContext(ctx, query,
		employee.FullName,
		employee.Position,
		employee.Access,
		employee.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update employee: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rows == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func (r *employeeRepository) Delete(ctx context.Context, id int64) error {
	query := r.db.Rebind(`DELETE FROM employees WHERE id = ?`)

	result, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("failed to delete employee: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rows == 0 {
		return repository.ErrNotFound
	}
	return nil
}
