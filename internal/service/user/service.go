package user

import (
	"context"
	"errors"
	"fmt"

	"github.com/yelizavetafitil/BookingBack/internal/model"
	"github.com/yelizavetafitil/BookingBack/internal/repository"
	"github.com/yelizavetafitil/BookingBack/pkg/apperror"
)

type Service struct {
	users repository.UserRepository
}

func NewService(users repository.UserRepository) *Service {
	return &Service{users: users}
}

// Get returns the outward user shape. The password field stays empty.
func (s *Service) Get(ctx context.Context, id int64) (*model.UserData, error) {
	user, err := s.users.Get(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, apperror.NotFound("Пользователь не найден")
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	return &model.UserData{
		FullName:    user.FullName,
		PhoneNumber: user.PhoneNumber,
	}, nil
}

// Update renames the user. Phone and password are immutable here.
func (s *Service) Update(ctx context.Context, id int64, data *model.UserData) error {
	err := s.users.UpdateFullName(ctx, id, data.FullName)
	if errors.Is(err, repository.ErrNotFound) {
		return apperror.NotFound("Пользователь не найден")
	}
	return err
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	err := s.users.Delete(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return apperror.NotFound("Пользователь не найден")
	}
	return err
}

func (s *Service) ListEnterprises(ctx context.Context, userID int64) ([]model.UserEnterprise, error) {
	return s.users.ListEnterprises(ctx, userID)
}
