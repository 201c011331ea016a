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

func (r *userRepository) Register(ctx context.Context, user *model.User) (int64, error) {
	var id int64
	err := r.WithTx(ctx, func(tx *sqlx.Tx) error {
		query := tx.Rebind(`
			INSERT INTO users (full_name, phone, password_hash)
			VALUES (?, ?, ?)
			RETURNING id
		`)
		if err := tx.QueryRowxContext(ctx, query, user.FullName, user.PhoneNumber, user.PasswordHash).Scan(&id); err != nil {
			return fmt.Errorf("failed to create user: %w", err)
		}

		// Pre-registered staff claim their membership: an employee row with
		// the same phone yields a project link with that employee's role.
		var emp model.Employee
		query = tx.Rebind(`
			SELECT id, company_id, full_name, phone, position, access
			FROM employees
			WHERE phone = ?
			LIMIT 1
		`)
		err := tx.GetContext(ctx, &emp, query, user.PhoneNumber)
		if errors.Is(err, sql.ErrNoRows) {
			return nil
		}
		if err != nil {
			return fmt.Errorf("failed to look up employee by phone: %w", err)
		}

		query = tx.Rebind(`INSERT INTO projects (access, user_id, company_id) VALUES (?, ?, ?)`)
		if _, err := tx.ExecContext(ctx, query, emp.Access, id, emp.CompanyID); err != nil {
			return fmt.Errorf("failed to link user to company: %w", err)
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return id, nil
}

func (r *userRepository) Get(ctx context.Context, id int64) (*model.User, error) {
	query := r.db.Rebind(`SELECT id, full_name, phone, password_hash FROM users WHERE id = ?`)

	var user model.User
	err := r.db.GetContext(ctx, &user, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	return &user, nil
}

func (r *userRepository) GetByPhone(ctx context.Context, phone string) (*model.User, error) {
	query := r.db.Rebind(`SELECT id, full_name, phone, password_hash FROM users WHERE phone = ?`)

	var user model.User
	err := r.db.GetContext(ctx, &user, query, phone)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get user by phone: %w", err)
	}
	return &user, nil
}

func (r *userRepository) GetByPhoneAndName(ctx context.Context, phone, fullName string) (*model.User, error) {
	query := r.db.Rebind(`
		SELECT id, full_name, phone, password_hash
		FROM users
		WHERE phone = ? AND full_name = ?
	`)

	var user model.User
	err := r.db.GetContext(ctx, &user, query, phone, fullName)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get user by phone and name: %w", err)
	}
	return &user, nil
}

func (r *userRepository) UpdateFullName(ctx context.Context, id int64, fullName string) error {
	query := r.db.Rebind(`UPDATE users SET full_name = ? WHERE id = ?`)

	result, err := r.db.ExecContext(ctx, query, fullName, id)
	if err != nil {
		return fmt.Errorf("failed to update user: %w", err)
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

func (r *userRepository) Delete(ctx context.Context, id int64) error {
	query := r.db.Rebind(`DELETE FROM users WHERE id = ?`)

	result, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("failed to delete user: %w", err)
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

func (r *userRepository) ListEnterprises(ctx context.Context, userID int64) ([]model.UserEnterprise, error) {
	query := r.db.Rebind(`
		SELECT c.id AS enterprise_id,
		       c.name AS enterprise_name,
		       p.user_id AS user_id,
		       p.access AS access
		FROM projects p
		JOIN companies c ON c.id = p.company_id
		WHERE p.user_id = ?
		ORDER BY c.id
	`)

	enterprises := []model.UserEnterprise{}
	if err := r.db.SelectContext(ctx, &enterprises, query, userID); err != nil {
		return nil, fmt.Errorf("failed to list user enterprises: %w", err)
	}
	return enterprises, nil
}
