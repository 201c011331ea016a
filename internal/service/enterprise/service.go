package enterprise

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

// AdminAccess is the role granted to the user who registers the enterprise.
const AdminAccess = "Админ"

type Service struct {
	companies repository.CompanyRepository
}

func NewService(companies repository.CompanyRepository) *Service {
	return &Service{companies: companies}
}

func (s *Service) Register(ctx context.Context, req *model.EnterpriseRegistrationRequest) (int64, error) {
	if err := validation.EnterpriseRegistration(req.EnterpriseName, req.City, req.Address, req.EnterprisePhoneNumber); err != nil {
		return 0, err
	}

	phone := strings.TrimSpace(req.EnterprisePhoneNumber)

	_, err := s.companies.GetByPhone(ctx, phone)
	if err == nil {
		return 0, apperror.Conflict("Компания с таким номером телефона уже существует.")
	}
	if !errors.Is(err, repository.ErrNotFound) {
		return 0, fmt.Errorf("failed to check phone: %w", err)
	}

	company := &model.Company{
		Name:        strings.TrimSpace(req.EnterpriseName),
		City:        strings.TrimSpace(req.City),
		Address:     strings.TrimSpace(req.Address),
		PhoneNumber: phone,
	}

	id, err := s.companies.Register(ctx, company, req.UserID, AdminAccess)
	if err != nil {
		return 0, fmt.Errorf("failed to register company: %w", err)
	}
	return id, nil
}

func (s *Service) Get(ctx context.Context, id int64) (*model.Enterprise, error) {
	company, err := s.companies.Get(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, apperror.NotFound("Компания не найдена")
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get company: %w", err)
	}

	return &model.Enterprise{
		EnterpriseName:        company.Name,
		City:                  company.City,
		Address:               company.Address,
		EnterprisePhoneNumber: company.PhoneNumber,
	}, nil
}

// Update overwrites name, city and address. The phone number stays as is.
func (s *Service) Update(ctx context.Context, id int64, data *model.Enterprise) error {
	err := s.companies.Update(ctx, &model.Company{
		ID:      id,
		Name:    data.EnterpriseName,
		City:    data.City,
		Address: data.Address,
	})
	if errors.Is(err, repository.ErrNotFound) {
		return apperror.NotFound("Компания не найдена")
	}
	return err
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	err := s.companies.Delete(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return apperror.NotFound("Компания не найдена")
	}
	return err
}
