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

func (r *serviceRepository) Create(ctx context.Context, svc *model.Service) (int64, error) {
	query := r.db.Rebind(`
		INSERT INTO services (company_id, name, price, currency, length, break_duration)
		VALUES (?, ?, ?, ?, ?, ?)
		RETURNING id
	`)

	var id int64
	err := r.db.QueryRowxContext(ctx, query,
		svc.CompanyID,
		svc.Name,
		svc.Price,
		svc.Currency,
		svc.Length,
		svc.BreakDuration,
	).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("failed to create service: %w", err)
	}
	return id, nil
}

func (r *serviceRepository) Get(ctx context.Context, id int64) (*model.Service, error) {
	query := r.db.Rebind(`
		SELECT id, company_id, name, price, currency, length, break_duration
		FROM services
		WHERE id = ?
	`)

	var svc model.Service
	err := r.db.GetContext(ctx, &svc, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get service: %w", err)
	}
	return &svc, nil
}

func (r *serviceRepository) ListByCompany(ctx context.Context, companyID int64) ([]model.Service, error) {
	query := r.db.Rebind(`
		SELECT id, company_id, name, price, currency, length, break_duration
		FROM services
		WHERE company_id = ?
		ORDER BY id
	`)

	services := []model.Service{}
	if err := r.db.SelectContext(ctx, &services, query, companyID); err != nil {
		return nil, fmt.Errorf("failed to list services: %w", err)
	}
	return services, nil
}

func (r *serviceRepository) Update(ctx context.Context, svc *model.Service) error {
	query := r.db.Rebind(`
		UPDATE services
		SET name = ?, price = ?, currency = ?, length = ?, break_duration = ?
		WHERE id = ?
	`)

	result, err := r.db.ExecContext(ctx, query,
		svc.Name,
		svc.Price,
		svc.Currency,
		svc.Length,
		svc.BreakDuration,
		svc.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update service: %w", err)
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

func (r *serviceRepository) Delete(ctx context.Context, id int64) error {
	query := r.db.Rebind(`DELETE FROM services WHERE id = ?`)

	result, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("failed to delete service: %w", err)
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

func (r *serviceRepository) AssignEmployees(ctx context.Context, serviceID int64, employeeIDs []int64) error {
	return r.WithTx(ctx, func(tx *sqlx.Tx) error {
		return insertServiceEmployees(ctx, tx, serviceID, employeeIDs)
	})
}

func (r *serviceRepository) ListEmployeeIDs(ctx context.Context, serviceID int64) ([]int64, error) {
	query := r.db.Rebind(`SELECT employee_id FROM employee_services WHERE service_id = ? ORDER BY employee_id`)

	ids := []int64{}
	if err := r.db.SelectContext(ctx, &ids, query, serviceID); err != nil {
		return nil, fmt.Errorf("failed to list service employees: %w", err)
	}
	return ids, nil
}

func (r *serviceRepository) ReplaceEmployees(ctx context.Context, serviceID int64, employeeIDs []int64) error {
	return r.WithTx(ctx, func(tx *sqlx.Tx) error {
		query := tx.Rebind(`DELETE FROM employee_services WHERE service_id = ?`)
		if _, err := tx.ExecContext(ctx, query, serviceID); err != nil {
			return fmt.Errorf("failed to clear service employees: %w", err)
		}
		return insertServiceEmployees(ctx, tx, serviceID, employeeIDs)
	})
}

func insertServiceEmployees(ctx context.Context, tx *sqlx.Tx, serviceID int64, employeeIDs []int64) error {
	query := tx.Rebind(`INSERT INTO employee_services (employee_id, service_id) VALUES (?, ?)`)
	for _, employeeID := range employeeIDs {
		if _, err := tx.ExecContext(ctx, query, employeeID, serviceID); err != nil {
			return fmt.Errorf("failed to assign employee %d: %w", employeeID, err)
		}
	}
	return nil
}
