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

func (r *companyRepository) Register(ctx context.Context, company *model.Company, userID int64, access string) (int64, error) {
	var id int64
	err := r.WithTx(ctx, func(tx *sqlx.Tx) error {
		query := tx.Rebind(`
			INSERT INTO companies (name, city, address, phone)
			VALUES (?, ?, ?, ?)
			RETURNING id
		`)
		if err := tx.QueryRowxContext(ctx, query, company.Name, company.City, company.Address, company.PhoneNumber).Scan(&id); err != nil {
			return fmt.Errorf("failed to create company: %w", err)
		}

		query = tx.Rebind(`INSERT INTO projects (access, user_id, company_id) VALUES (?, ?, ?)`)
		if _, err := tx.ExecContext(ctx, query, access, userID, id); err != nil {
			return fmt.Errorf("failed to grant membership: %w", err)
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return id, nil
}

func (r *companyRepository) Get(ctx context.Context, id int64) (*model.Company, error) {
	query := r.db.Rebind(`SELECT id, name, city, address, phone FROM companies WHERE id = ?`)

	var company model.Company
	err := r.db.GetContext(ctx, &company, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get company: %w", err)
	}
	return &company, nil
}

func (r *companyRepository) GetByPhone(ctx context.Context, phone string) (*model.Company, error) {
	query := r.db.Rebind(`SELECT id, name, city, address, phone FROM companies WHERE phone = ?`)

	var company model.Company
	err := r.db.GetContext(ctx, &company, query, phone)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get company by phone: %w", err)
	}
	return &company, nil
}

func (r *companyRepository) Update(ctx context.Context, company *model.Company) error {
	query := r.db.Rebind(`UPDATE companies SET name = ?, city = ?, address = ? WHERE id = ?`)

	result, err := r.db.ExecContext(ctx, query, company.Name, company.City, company.Address, company.ID)
	if err != nil {
		return fmt.Errorf("failed to update company: %w", err)
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

func (r *companyRepository) Delete(ctx context.Context, id int64) error {
	query := r.db.Rebind(`DELETE FROM companies WHERE id = ?`)

	result, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("failed to delete company: %w", err)
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
