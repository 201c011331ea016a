package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/yelizavetafitil/BookingBack/internal/model"
	"github.com/yelizavetafitil/BookingBack/internal/repository"
	"github.com/yelizavetafitil/BookingBack/internal/validation"
	"github.com/yelizavetafitil/BookingBack/pkg/apperror"
	"github.com/yelizavetafitil/BookingBack/pkg/security"
)

type Service struct {
	users  repository.UserRepository
	hasher security.PasswordHasher
}

func NewService(users repository.UserRepository, hasher security.PasswordHasher) *Service {
	return &Service{users: users, hasher: hasher}
}

// Register validates the payload, rejects duplicate phone numbers and
// creates the user. Membership auto-linking happens inside the repository
// transaction.
func (s *Service) Register(ctx context.Context, req *model.RegisterRequest) (int64, error) {
	if err := validation.UserRegistration(req.FullName, req.PhoneNumber, req.Password); err != nil {
		return 0, err
	}

	phone := strings.TrimSpace(req.PhoneNumber)

	_, err := s.users.GetByPhone(ctx, phone)
	if err == nil {
		return 0, apperror.Conflict("Пользователь с таким номером телефона уже существует.")
	}
	if !errors.Is(err, repository.ErrNotFound) {
		return 0, fmt.Errorf("failed to check phone: %w", err)
	}

	hash, err := s.hasher.Hash(req.Password)
	if err != nil {
		return 0, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &model.User{
		FullName:     strings.TrimSpace(req.FullName),
		PhoneNumber:  phone,
		PasswordHash: hash,
	}

	id, err := s.users.Register(ctx, user)
	if err != nil {
		return 0, fmt.Errorf("failed to register user: %w", err)
	}
	return id, nil
}

// Login checks the exact (phone, full name) pair and the password. Both
// lookup and password failures come back as plain validation errors so the
// response does not reveal which field was wrong beyond the generic message.
func (s *Service) Login(ctx context.Context, req *model.LoginRequest) (int64, error) {
	if err := validation.Login(req.FullName, req.PhoneNumber, req.Password); err != nil {
		return 0, err
	}

	user, err := s.users.GetByPhoneAndName(ctx, req.PhoneNumber, req.FullName)
	if errors.Is(err, repository.ErrNotFound) {
		return 0, apperror.Validation("Пользователь не найден")
	}
	if err != nil {
		return 0, fmt.Errorf("failed to look up user: %w", err)
	}

	if err := s.hasher.Compare(user.PasswordHash, req.Password); err != nil {
		return 0, apperror.Validation("Неверный пароль")
	}

	return user.ID, nil
}
