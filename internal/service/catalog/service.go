package catalog

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

// Service manages the service catalog of a company and the
// service-employee assignments.
type Service struct {
	services repository.ServiceRepository
}

func NewService(services repository.ServiceRepository) *Service {
	return &Service{services: services}
}

func (s *Service) ListByCompany(ctx context.Context, companyID int64) ([]model.Service, error) {
	return s.services.ListByCompany(ctx, companyID)
}

func (s *Service) Add(ctx context.Context, req *model.ServiceCreateRequest) (int64, error) {
	if err := validation.ServiceName(req.ServiceName); err != nil {
		return 0, err
	}

	svc := &model.Service{
		CompanyID:     req.EnterpriseID,
		Name:          strings.TrimSpace(req.ServiceName),
		Price:         req.Price,
		Currency:      strings.TrimSpace(req.Currency),
		Length:        req.Length,
		BreakDuration: req.BreakDuration,
	}

	id, err := s.services.Create(ctx, svc)
	if err != nil {
		return 0, fmt.Errorf("failed to add service: %w", err)
	}
	return id, nil
}

func (s *Service) Get(ctx context.Context, id int64) (*model.ServiceEdit, error) {
	svc, err := s.services.Get(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, apperror.NotFound("Услуга не найдена")
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get service: %w", err)
	}

	return &model.ServiceEdit{
		ServiceName:   svc.Name,
		Price:         svc.Price,
		Currency:      svc.Currency,
		Length:        svc.Length,
		BreakDuration: svc.BreakDuration,
	}, nil
}

func (s *Service) Update(ctx context.Context, id int64, data *model.ServiceEdit) error {
	err := s.services.Update(ctx, &model.Service{
		ID:            id,
		Name:          data.ServiceName,
		Price:         data.Price,
		Currency:      data.Currency,
		Length:        data.Length,
		BreakDuration: data.BreakDuration,
	})
	if errors.Is(err, repository.ErrNotFound) {
		return apperror.NotFound("Услуга не найдена")
	}
	return err
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	err := s.services.Delete(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return apperror.NotFound("Услуга не найдена")
	}
	return err
}

func (s *Service) AssignEmployees(ctx context.Context, assignment *model.ServiceEmployeeAssignment) error {
	if len(assignment.EmployeeIDs) == 0 {
		return apperror.Validation("Список сотрудников не может быть пустым")
	}
	return s.services.AssignEmployees(ctx, assignment.ServiceID, assignment.EmployeeIDs)
}

func (s *Service) ListEmployeeIDs(ctx context.Context, serviceID int64) ([]int64, error) {
	return s.services.ListEmployeeIDs(ctx, serviceID)
}

// ReplaceEmployees swaps the full employee set of a service.
func (s *Service) ReplaceEmployees(ctx context.Context, serviceID int64, employeeIDs []int64) error {
	return s.services.ReplaceEmployees(ctx, serviceID, employeeIDs)
}
