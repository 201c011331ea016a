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

func TestEmployeeCreateAutoLinksUser(t *testing.T) {
	db := testutil.NewDB(t)
	users := postgres.NewUserRepository(db)
	companies := postgres.NewCompanyRepository(db)
	employees := postgres.NewEmployeeRepository(db)
	ctx := context.Background()

	companyID := seedCompany(t, users, companies)

	// A user already registered with this phone gets linked in.
	userID, err := users.Register(ctx, &model.User{
		FullName: "Мастер", PhoneNumber: "+79000000030", PasswordHash: "h",
	})
	require.NoError(t, err)

	_, err = employees.Create(ctx, &model.Employee{
		CompanyID: companyID, FullName: "Мастер", PhoneNumber: "+79000000030",
		Position: "Парикмахер", Access: "Сотрудник",
	})
	require.NoError(t, err)

	list, err := users.ListEnterprises(ctx, userID)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, companyID, list[0].EnterpriseID)
	assert.Equal(t, "Сотрудник", list[0].Access)
}

func TestEmployeeCRUD(t *testing.T) {
	db := testutil.NewDB(t)
	users := postgres.NewUserRepository(db)
	companies := postgres.NewCompanyRepository(db)
	employees := postgres.NewEmployeeRepository(db)
	ctx := context.Background()

	companyID := seedCompany(t, users, companies)

	id, err := employees.Create(ctx, &model.Employee{
		CompanyID: companyID, FullName: "Мастер", PhoneNumber: "+79000000031",
		Position: "Парикмахер", Access: "Сотрудник",
	})
	require.NoError(t, err)

	emp, err := employees.Get(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "Парикмахер", emp.Position)

	emp.FullName = "Старший мастер"
	emp.Position = "Стилист"
	emp.Access = "Админ"
	require.NoError(t, employees.Update(ctx, emp))

	list, err := employees.ListByCompany(ctx, companyID)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "Стилист", list[0].Position)
	// Update never touches the phone.
	assert.Equal(t, "+79000000031", list[0].PhoneNumber)

	require.NoError(t, employees.Delete(ctx, id))
	_, err = employees.Get(ctx, id)
	assert.ErrorIs(t, err, repository.ErrNotFound)
}
