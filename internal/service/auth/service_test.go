package auth

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/yelizavetafitil/BookingBack/internal/model"
	"github.com/yelizavetafitil/BookingBack/internal/repository"
	"github.com/yelizavetafitil/BookingBack/pkg/apperror"
	"github.com/yelizavetafitil/BookingBack/pkg/security"
)

type fakeUserRepo struct {
	byPhone map[string]*model.User
	nextID  int64
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{byPhone: map[string]*model.User{}, nextID: 1}
}

func (f *fakeUserRepo) Register(_ context.Context, user *model.User) (int64, error) {
	user.ID = f.nextID
	f.nextID++
	f.byPhone[user.PhoneNumber] = user
	return user.ID, nil
}

func (f *fakeUserRepo) Get(_ context.Context, id int64) (*model.User, error) {
	for _, u := range f.byPhone {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (f *fakeUserRepo) GetByPhone(_ context.Context, phone string) (*model.User, error) {
	if u, ok := f.byPhone[phone]; ok {
		return u, nil
	}
	return nil, repository.ErrNotFound
}

func (f *fakeUserRepo) GetByPhoneAndName(_ context.Context, phone, fullName string) (*model.User, error) {
	if u, ok := f.byPhone[phone]; ok && u.FullName == fullName {
		return u, nil
	}
	return nil, repository.ErrNotFound
}

func (f *fakeUserRepo) UpdateFullName(context.Context, int64, string) error { return nil }
func (f *fakeUserRepo) Delete(context.Context, int64) error                 { return nil }
func (f *fakeUserRepo) ListEnterprises(context.Context, int64) ([]model.UserEnterprise, error) {
	return nil, nil
}

func newTestService() (*Service, *fakeUserRepo) {
	repo := newFakeUserRepo()
	return NewService(repo, security.NewBcryptHasher(bcrypt.MinCost)), repo
}

func TestRegisterHashesPassword(t *testing.T) {
	svc, repo := newTestService()

	id, err := svc.Register(context.Background(), &model.RegisterRequest{
		FullName:    "Иванова Анна",
		PhoneNumber: "+79001234567",
		Password:    "secret123",
	})
	require.NoError(t, err)
	require.Positive(t, id)

	stored := repo.byPhone["+79001234567"]
	require.NotNil(t, stored)
	assert.NotEqual(t, "secret123", stored.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("secret123")))
}

func TestRegisterDuplicatePhone(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	_, err := svc.Register(ctx, &model.RegisterRequest{
		FullName: "Первая", PhoneNumber: "+79001234567", Password: "secret123",
	})
	require.NoError(t, err)

	_, err = svc.Register(ctx, &model.RegisterRequest{
		FullName: "Вторая", PhoneNumber: "+79001234567", Password: "secret123",
	})
	require.Error(t, err)
	appErr := apperror.From(err)
	assert.Equal(t, apperror.KindConflict, appErr.Kind)
	assert.Equal(t, "Пользователь с таким номером телефона уже существует.", appErr.Message)
}

func TestRegisterValidation(t *testing.T) {
	svc, _ := newTestService()

	_, err := svc.Register(context.Background(), &model.RegisterRequest{
		FullName: "Иванова Анна", PhoneNumber: "+79001234567", Password: "короткий",
	})
	require.Error(t, err)
	assert.Equal(t, apperror.KindValidation, apperror.From(err).Kind)
}

func TestLoginChecksExactPair(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	id, err := svc.Register(ctx, &model.RegisterRequest{
		FullName: "Иванова Анна", PhoneNumber: "+79001234567", Password: "secret123",
	})
	require.NoError(t, err)

	got, err := svc.Login(ctx, &model.LoginRequest{
		FullName: "Иванова Анна", PhoneNumber: "+79001234567", Password: "secret123",
	})
	require.NoError(t, err)
	assert.Equal(t, id, got)

	// A different name with the right phone is not found.
	_, err = svc.Login(ctx, &model.LoginRequest{
		FullName: "Другое Имя", PhoneNumber: "+79001234567", Password: "secret123",
	})
	require.Error(t, err)
	assert.Equal(t, "Пользователь не найден", apperror.From(err).Message)

	_, err = svc.Login(ctx, &model.LoginRequest{
		FullName: "Иванова Анна", PhoneNumber: "+79001234567", Password: "wrongpass1",
	})
	require.Error(t, err)
	assert.Equal(t, "Неверный пароль", apperror.From(err).Message)
}
