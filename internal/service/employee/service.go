package employee

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/yelizavetafitil/BookingBack/internal/model"
	"github.com/yelizavetafitil/BookingBack/internal/repository"
	"github.com/yelizavetafitil/BookingBack/internal/validation"
	"github.com/yelizavetafitil/BookingBack/pkg/apperror"
)

type Service struct {
	employees repository.EmployeeRepository
}

func NewService(employees repository.EmployeeRepository) *Service {
	return &Service{employees: employees}
}

func (s *Service) ListByCompany(ctx context.Context, companyID int64) ([]model.Employee, error) {
	return s.employees.ListByCompany(ctx, companyID)
}

func (s *Service) Create(ctx context.Context, req *model.EmployeeCreateRequest) (int64, error) {
	if err := validation.Employee(req.FullName, req.PhoneNumber, req.Position, req.Access); err != nil {
		return 0, err
	}

	emp := &model.Employee{
		CompanyID:   req.EnterpriseID,
		FullName:    strings.TrimSpace(req.FullName),
		PhoneNumber: strings.TrimSpace(req.PhoneNumber),
		Position:    strings.TrimSpace(req.Position),
		Access:      strings.TrimSpace(req.Access),
	}

	id, err := s.employees.Create(ctx, emp)
	if err != nil {
		return 0, fmt.Errorf("failed to create employee: %w", err)
	}
	return id, nil
}

func (s *Service) Get(ctx context.Context, id int64) (*model.EmployeeEdit, error) {
	emp, err := s.employees.Get(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, apperror.NotFound("Сотрудник не найден")
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get employee: %w", err)
	}

	return &model.EmployeeEdit{
		FullName:    emp.FullName,
		PhoneNumber: emp.PhoneNumber,
		Position:    emp.Position,
		Access:      emp.Access,
	}, nil
}

// Update overwrites name, position and access. The phone number stays as is.
func (s *Service) Update(ctx context.Context, id int64, data *model.EmployeeEdit) error {
	err := s.employees.Update(ctx, &model.Employee{
		ID:       id,
		FullName: data.FullName,
		Position: data.Position,
		Access:   data.Access,
	})
	if errors.Is(err, repository.ErrNotFound) {
		return apperror.NotFound("Сотрудник не найден")
	}
	return err
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	err := s.employees.Delete(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return apperror.NotFound("Сотрудник не найден")
	}
	return err
}
