package postgres_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yelizavetafitil/BookingBack/internal/model"
	"github.com/yelizavetafitil/BookingBack/internal/repository"
	"github.com/yelizavetafitil/BookingBack/internal/repository/postgres"
	"github.com/yelizavetafitil/BookingBack/internal/testutil"
)

func TestCompanyRegisterGrantsAdmin(t *testing.T) {
	db := testutil.NewDB(t)
	users := postgres.NewUserRepository(db)
	companies := postgres.NewCompanyRepository(db)
	ctx := context.Background()

	userID, err := users.Register(ctx, &model.User{
		FullName: "Владелец", PhoneNumber: "+79000000001", PasswordHash: "h",
	})
	require.NoError(t, err)

	companyID, err := companies.Register(ctx, &model.Company{
		Name: "Салон", City: "Москва", Address: "ул. Ленина, 1", PhoneNumber: "+79000000002",
	}, userID, "Админ")
	require.NoError(t, err)

	list, err := users.ListEnterprises(ctx, userID)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, companyID, list[0].EnterpriseID)
	assert.Equal(t, "Админ", list[0].Access)
}

func TestCompanyDuplicatePhone(t *testing.T) {
	db := testutil.NewDB(t)
	users := postgres.NewUserRepository(db)
	companies := postgres.NewCompanyRepository(db)
	ctx := context.Background()

	userID, err := users.Register(ctx, &model.User{
		FullName: "Владелец", PhoneNumber: "+79000000001", PasswordHash: "h",
	})
	require.NoError(t, err)

	_, err = companies.Register(ctx, &model.Company{
		Name: "Первый", City: "Москва", Address: "а", PhoneNumber: "+79000000002",
	}, userID, "Админ")
	require.NoError(t, err)

	_, err = companies.Register(ctx, &model.Company{
		Name: "Второй", City: "Москва", Address: "б", PhoneNumber: "+79000000002",
	}, userID, "Админ")
	require.Error(t, err)

	_, err = companies.GetByPhone(ctx, "+79000000002")
	require.NoError(t, err)
}

func TestCompanyUpdateAndDelete(t *testing.T) {
	db := testutil.NewDB(t)
	users := postgres.NewUserRepository(db)
	companies := postgres.NewCompanyRepository(db)
	ctx := context.Background()

	companyID := seedCompany(t, users, companies)

	company, err := companies.Get(ctx, companyID)
	require.NoError(t, err)
	company.Name = "Новое имя"
	company.City = "Казань"
	require.NoError(t, companies.Update(ctx, company))

	updated, err := companies.Get(ctx, companyID)
	require.NoError(t, err)
	assert.Equal(t, "Новое имя", updated.Name)
	assert.Equal(t, "Казань", updated.City)

	require.NoError(t, companies.Delete(ctx, companyID))
	_, err = companies.Get(ctx, companyID)
	assert.ErrorIs(t, err, repository.ErrNotFound)

	// Memberships go with the company.
	var count int
	require.NoError(t, db.Get(&count, "SELECT COUNT(*) FROM projects"))
	assert.Zero(t, count)
}
