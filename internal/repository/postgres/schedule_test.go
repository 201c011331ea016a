package postgres_test

import (
	"context"
	"testing"

	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yelizavetafitil/BookingBack/internal/model"
	"github.com/yelizavetafitil/BookingBack/internal/repository"
	"github.com/yelizavetafitil/BookingBack/internal/repository/postgres"
	"github.com/yelizavetafitil/BookingBack/internal/testutil"
)

func seedEmployee(t *testing.T, db *sqlx.DB) int64 {
	t.Helper()
	ctx := context.Background()

	users := postgres.NewUserRepository(db)
	companies := postgres.NewCompanyRepository(db)
	employees := postgres.NewEmployeeRepository(db)

	companyID := seedCompany(t, users, companies)
	id, err := employees.Create(ctx, &model.Employee{
		CompanyID: companyID, FullName: "Мастер", PhoneNumber: "+79000000020",
		Position: "Парикмахер", Access: "Сотрудник",
	})
	require.NoError(t, err)
	return id
}

func oneSlot() []model.SlotComposition {
	return []model.SlotComposition{{
		Slot: model.WorkTimeSlot{
			StartTime: "09:00", EndTime: "18:00",
			ValidFrom: "2025-06-01", ValidTo: "2025-08-31",
		},
		Breaks: []model.WorkBreak{{StartTime: "13:00", EndTime: "14:00"}},
	}}
}

func TestComposeUnknownEmployee(t *testing.T) {
	db := testutil.NewDB(t)
	repo := postgres.NewScheduleRepository(db)

	err := repo.Compose(context.Background(), &model.ScheduleComposition{
		EmployeeID: 9999,
		Kind:       model.ScheduleFixed,
		TypeName:   "Фиксированный",
		Slots:      oneSlot(),
	})
	assert.ErrorIs(t, err, repository.ErrNotFound)

	// Nothing may survive the rollback.
	var count int
	require.NoError(t, db.Get(&count, "SELECT COUNT(*) FROM work_time_slots"))
	assert.Zero(t, count)
}

func TestComposeFixedRoundTrip(t *testing.T) {
	db := testutil.NewDB(t)
	repo := postgres.NewScheduleRepository(db)
	ctx := context.Background()

	employeeID := seedEmployee(t, db)
	_, err := db.Exec(`INSERT INTO schedule_types (name) VALUES ('Фиксированный')`)
	require.NoError(t, err)

	require.NoError(t, repo.Compose(ctx, &model.ScheduleComposition{
		EmployeeID: employeeID,
		Kind:       model.ScheduleFixed,
		TypeName:   "Фиксированный",
		Slots:      oneSlot(),
	}))

	rows, err := repo.ListRows(ctx, employeeID, model.ScheduleFixed, model.ScheduleFilter{})
	require.NoError(t, err)
	require.Len(t, rows, 1)

	row := rows[0]
	require.NotNil(t, row.TypeName)
	assert.Equal(t, "Фиксированный", *row.TypeName)
	require.NotNil(t, row.SlotStart)
	assert.Equal(t, "09:00", *row.SlotStart)
	assert.Nil(t, row.DayOfWeek)
	assert.Nil(t, row.DaysWork)

	require.NotNil(t, row.SlotID)
	breaks, err := repo.ListBreaks(ctx, *row.SlotID)
	require.NoError(t, err)
	require.Len(t, breaks, 1)
	assert.Equal(t, "13:00", breaks[0].StartTime)

	// Type filter matches and mismatches.
	rows, err = repo.ListRows(ctx, employeeID, model.ScheduleFixed, model.ScheduleFilter{Type: "Фиксированный"})
	require.NoError(t, err)
	assert.Len(t, rows, 1)

	rows, err = repo.ListRows(ctx, employeeID, model.ScheduleFixed, model.ScheduleFilter{Type: "Другой"})
	require.NoError(t, err)
	assert.Empty(t, rows)
}

func TestComposeWeeklySharesSlot(t *testing.T) {
	db := testutil.NewDB(t)
	repo := postgres.NewScheduleRepository(db)
	ctx := context.Background()

	employeeID := seedEmployee(t, db)

	require.NoError(t, repo.Compose(ctx, &model.ScheduleComposition{
		EmployeeID: employeeID,
		Kind:       model.ScheduleWeekly,
		TypeName:   "Недельный",
		WeekDays:   []int{1, 3, 5},
		Slots:      oneSlot(),
	}))

	rows, err := repo.ListRows(ctx, employeeID, model.ScheduleWeekly, model.ScheduleFilter{})
	require.NoError(t, err)
	require.Len(t, rows, 3)

	days := []int{}
	for _, row := range rows {
		require.NotNil(t, row.DayOfWeek)
		days = append(days, *row.DayOfWeek)
		require.NotNil(t, row.SlotID)
		assert.Equal(t, *rows[0].SlotID, *row.SlotID, "all weekday rows share one slot")
	}
	assert.ElementsMatch(t, []int{1, 3, 5}, days)

	var slotCount int
	require.NoError(t, db.Get(&slotCount, "SELECT COUNT(*) FROM work_time_slots"))
	assert.Equal(t, 1, slotCount)

	// Day filter narrows to one row.
	rows, err = repo.ListRows(ctx, employeeID, model.ScheduleWeekly, model.ScheduleFilter{Day: 3})
	require.NoError(t, err)
	assert.Len(t, rows, 1)
}

func TestComposeChoicePattern(t *testing.T) {
	db := testutil.NewDB(t)
	repo := postgres.NewScheduleRepository(db)
	ctx := context.Background()

	employeeID := seedEmployee(t, db)

	require.NoError(t, repo.Compose(ctx, &model.ScheduleComposition{
		EmployeeID: employeeID,
		Kind:       model.ScheduleChoice,
		TypeName:   "Сменный",
		Pattern:    &model.SchedulePattern{DaysWork: 2, DaysRest: 2},
		Slots:      oneSlot(),
	}))

	rows, err := repo.ListRows(ctx, employeeID, model.ScheduleChoice, model.ScheduleFilter{})
	require.NoError(t, err)
	require.Len(t, rows, 1)
	require.NotNil(t, rows[0].DaysWork)
	assert.Equal(t, 2, *rows[0].DaysWork)
	require.NotNil(t, rows[0].DaysRest)
	assert.Equal(t, 2, *rows[0].DaysRest)

	// Fixed listing must not see choice rows and vice versa.
	fixed, err := repo.ListRows(ctx, employeeID, model.ScheduleFixed, model.ScheduleFilter{})
	require.NoError(t, err)
	assert.Empty(t, fixed)

	rows, err = repo.ListRows(ctx, employeeID, model.ScheduleChoice, model.ScheduleFilter{DaysWork: 3, DaysRest: 1})
	require.NoError(t, err)
	assert.Empty(t, rows)
}
