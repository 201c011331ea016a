package schedule

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yelizavetafitil/BookingBack/internal/model"
	"github.com/yelizavetafitil/BookingBack/internal/repository"
	"github.com/yelizavetafitil/BookingBack/pkg/apperror"
)

type fakeScheduleRepo struct {
	composed *model.ScheduleComposition
	rows     []model.ScheduleRow
	breaks   map[int64][]model.WorkBreak
	err      error
}

func (f *fakeScheduleRepo) Compose(_ context.Context, comp *model.ScheduleComposition) error {
	if f.err != nil {
		return f.err
	}
	f.composed = comp
	return nil
}

func (f *fakeScheduleRepo) ListRows(_ context.Context, _ int64, _ model.ScheduleKind, _ model.ScheduleFilter) ([]model.ScheduleRow, error) {
	return f.rows, f.err
}

func (f *fakeScheduleRepo) ListBreaks(_ context.Context, slotID int64) ([]model.WorkBreak, error) {
	return f.breaks[slotID], nil
}

type fakeEmployeeRepo struct {
	err error
}

func (f *fakeEmployeeRepo) Create(context.Context, *model.Employee) (int64, error) {
	return 0, nil
}

func (f *fakeEmployeeRepo) Get(_ context.Context, _ int64) (*model.Employee, error) {
	if f.err != nil {
		return nil, f.err
	}
	return &model.Employee{ID: 1}, nil
}

func (f *fakeEmployeeRepo) ListByCompany(context.Context, int64) ([]model.Employee, error) {
	return nil, nil
}

func (f *fakeEmployeeRepo) Update(context.Context, *model.Employee) error { return nil }
func (f *fakeEmployeeRepo) Delete(context.Context, int64) error           { return nil }

func validSlots() []model.WorkTimeSlotRequest {
	return []model.WorkTimeSlotRequest{{
		StartTime: "09:00",
		EndTime:   "18:00",
		ValidFrom: "01.06.25",
		ValidTo:   "31.08.25",
		Breaks: []model.BreakTimeRequest{
			{StartTime: "13:00", EndTime: "14:00"},
		},
	}}
}

func TestCreateFixed(t *testing.T) {
	repo := &fakeScheduleRepo{}
	svc := NewService(repo, &fakeEmployeeRepo{})

	err := svc.CreateFixed(context.Background(), &model.WorkingHoursRequest{
		EmployeeID:    7,
		ScheduleType:  " Основной ",
		WorkTimeSlots: validSlots(),
	})
	require.NoError(t, err)

	require.NotNil(t, repo.composed)
	assert.Equal(t, int64(7), repo.composed.EmployeeID)
	assert.Equal(t, model.ScheduleFixed, repo.composed.Kind)
	assert.Equal(t, "Основной", repo.composed.TypeName)
	require.Len(t, repo.composed.Slots, 1)
	assert.Equal(t, "2025-06-01", repo.composed.Slots[0].Slot.ValidFrom)
	assert.Equal(t, "2025-08-31", repo.composed.Slots[0].Slot.ValidTo)
	require.Len(t, repo.composed.Slots[0].Breaks, 1)
}

func TestCreateFixedValidation(t *testing.T) {
	tests := []struct {
		name    string
		slots   []model.WorkTimeSlotRequest
		message string
	}{
		{
			name:    "no slots",
			slots:   nil,
			message: "Не указаны рабочие интервалы",
		},
		{
			name: "bad start time",
			slots: []model.WorkTimeSlotRequest{{
				StartTime: "9 утра", EndTime: "18:00",
				ValidFrom: "01.06.25", ValidTo: "31.08.25",
			}},
			message: "Неверный формат времени начала",
		},
		{
			name: "start after end",
			slots: []model.WorkTimeSlotRequest{{
				StartTime: "19:00", EndTime: "18:00",
				ValidFrom: "01.06.25", ValidTo: "31.08.25",
			}},
			message: "Время начала должно быть раньше времени окончания",
		},
		{
			name: "dates inverted",
			slots: []model.WorkTimeSlotRequest{{
				StartTime: "09:00", EndTime: "18:00",
				ValidFrom: "31.08.25", ValidTo: "01.06.25",
			}},
			message: "Дата начала действия не может быть позже даты окончания",
		},
		{
			name: "break outside slot",
			slots: []model.WorkTimeSlotRequest{{
				StartTime: "09:00", EndTime: "18:00",
				ValidFrom: "01.06.25", ValidTo: "31.08.25",
				Breaks:    []model.BreakTimeRequest{{StartTime: "08:00", EndTime: "08:30"}},
			}},
			message: "Перерыв должен быть в пределах рабочего времени",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &fakeScheduleRepo{}
			svc := NewService(repo, &fakeEmployeeRepo{})
			err := svc.CreateFixed(context.Background(), &model.WorkingHoursRequest{
				EmployeeID:    1,
				ScheduleType:  "Основной",
				WorkTimeSlots: tt.slots,
			})
			require.Error(t, err)
			assert.Equal(t, tt.message, apperror.From(err).Message)
			assert.Nil(t, repo.composed)
		})
	}
}

func TestCreateWeeklyDays(t *testing.T) {
	repo := &fakeScheduleRepo{}
	svc := NewService(repo, &fakeEmployeeRepo{})

	err := svc.CreateWeekly(context.Background(), &model.WorkingWeeksHoursRequest{
		EmployeeID:      1,
		ScheduleType:    "Недельный",
		ScheduleSubType: "Утренний",
		DayOfWeek:       "понедельник, 3, пятница",
		WorkTimeSlots:   validSlots(),
	})
	require.NoError(t, err)
	require.NotNil(t, repo.composed)
	assert.Equal(t, []int{1, 3, 5}, repo.composed.WeekDays)
	assert.Equal(t, "Утренний", repo.composed.SubtypeName)
}

func TestCreateWeeklyBadDay(t *testing.T) {
	svc := NewService(&fakeScheduleRepo{}, &fakeEmployeeRepo{})

	err := svc.CreateWeekly(context.Background(), &model.WorkingWeeksHoursRequest{
		EmployeeID:    1,
		ScheduleType:  "Недельный",
		DayOfWeek:     "каждый день",
		WorkTimeSlots: validSlots(),
	})
	require.Error(t, err)
	assert.Equal(t, apperror.KindValidation, apperror.From(err).Kind)
}

func TestCreateChoicePattern(t *testing.T) {
	repo := &fakeScheduleRepo{}
	svc := NewService(repo, &fakeEmployeeRepo{})

	err := svc.CreateChoice(context.Background(), &model.WorkingChoiceHoursRequest{
		EmployeeID:    1,
		ScheduleType:  "Сменный",
		DayWork:       "2",
		DayRest:       "2",
		WorkTimeSlots: validSlots(),
	})
	require.NoError(t, err)
	require.NotNil(t, repo.composed.Pattern)
	assert.Equal(t, 2, repo.composed.Pattern.DaysWork)
	assert.Equal(t, 2, repo.composed.Pattern.DaysRest)
}

func TestCreateChoiceBadPattern(t *testing.T) {
	svc := NewService(&fakeScheduleRepo{}, &fakeEmployeeRepo{})

	err := svc.CreateChoice(context.Background(), &model.WorkingChoiceHoursRequest{
		EmployeeID:    1,
		ScheduleType:  "Сменный",
		DayWork:       "два",
		DayRest:       "2",
		WorkTimeSlots: validSlots(),
	})
	require.Error(t, err)
	assert.Equal(t, "Неверный формат количества рабочих дней", apperror.From(err).Message)
}

func TestComposeUnknownEmployee(t *testing.T) {
	repo := &fakeScheduleRepo{err: repository.ErrNotFound}
	svc := NewService(repo, &fakeEmployeeRepo{})

	err := svc.CreateFixed(context.Background(), &model.WorkingHoursRequest{
		EmployeeID:    99,
		ScheduleType:  "Основной",
		WorkTimeSlots: validSlots(),
	})
	require.Error(t, err)
	assert.Equal(t, apperror.KindNotFound, apperror.From(err).Kind)
	assert.Equal(t, "Сотрудник не найден", apperror.From(err).Message)
}

func strPtr(s string) *string { return &s }
func intPtr(i int) *int       { return &i }
func i64Ptr(i int64) *int64   { return &i }

func TestListWeeklyGrouping(t *testing.T) {
	now := time.Now()
	repo := &fakeScheduleRepo{
		rows: []model.ScheduleRow{
			{
				ScheduleID: 3, TypeName: strPtr("Недельный"), SubtypeName: strPtr("Утренний"),
				DayOfWeek: intPtr(1), SlotID: i64Ptr(10),
				SlotStart: strPtr("09:00"), SlotEnd: strPtr("13:00"),
				ValidFrom: strPtr("2025-06-01"), ValidTo: strPtr("2025-08-31"),
				CreatedAt: now,
			},
			{
				ScheduleID: 2, TypeName: strPtr("Недельный"), SubtypeName: strPtr("Утренний"),
				DayOfWeek: intPtr(1), SlotID: i64Ptr(11),
				SlotStart: strPtr("14:00"), SlotEnd: strPtr("18:00"),
				ValidFrom: strPtr("2025-06-01"), ValidTo: strPtr("2025-08-31"),
				CreatedAt: now,
			},
			{
				ScheduleID: 1, TypeName: strPtr("Недельный"), SubtypeName: strPtr("Утренний"),
				DayOfWeek: intPtr(3), SlotID: i64Ptr(10),
				SlotStart: strPtr("09:00"), SlotEnd: strPtr("13:00"),
				ValidFrom: strPtr("2025-06-01"), ValidTo: strPtr("2025-08-31"),
				CreatedAt: now,
			},
		},
		breaks: map[int64][]model.WorkBreak{
			10: {{ID: 1, SlotID: 10, StartTime: "11:00", EndTime: "11:15"}},
		},
	}
	svc := NewService(repo, &fakeEmployeeRepo{})

	out, err := svc.ListWeekly(context.Background(), 1, model.ScheduleFilter{})
	require.NoError(t, err)
	require.Len(t, out, 2)

	assert.Equal(t, "1", out[0].DayOfWeek)
	require.Len(t, out[0].WorkTimeSlots, 2)
	assert.Equal(t, "01.06.25", out[0].WorkTimeSlots[0].ValidFrom)
	assert.Equal(t, "31.08.25", out[0].WorkTimeSlots[0].ValidTo)
	require.Len(t, out[0].WorkTimeSlots[0].Breaks, 1)

	assert.Equal(t, "3", out[1].DayOfWeek)
	require.Len(t, out[1].WorkTimeSlots, 1)
}

func TestListFixedUnknownEmployee(t *testing.T) {
	svc := NewService(&fakeScheduleRepo{}, &fakeEmployeeRepo{err: repository.ErrNotFound})

	_, err := svc.ListFixed(context.Background(), 99, model.ScheduleFilter{})
	require.Error(t, err)
	assert.Equal(t, apperror.KindNotFound, apperror.From(err).Kind)
}

func TestListChoiceGrouping(t *testing.T) {
	repo := &fakeScheduleRepo{
		rows: []model.ScheduleRow{
			{
				ScheduleID: 1, TypeName: strPtr("Сменный"),
				DaysWork: intPtr(2), DaysRest: intPtr(2), SlotID: i64Ptr(5),
				SlotStart: strPtr("08:00"), SlotEnd: strPtr("20:00"),
				ValidFrom: strPtr("2025-06-01"), ValidTo: strPtr("2025-12-31"),
			},
		},
		breaks: map[int64][]model.WorkBreak{},
	}
	svc := NewService(repo, &fakeEmployeeRepo{})

	out, err := svc.ListChoice(context.Background(), 1, model.ScheduleFilter{})
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, "2", out[0].DayWork)
	assert.Equal(t, "2", out[0].DayRest)
	assert.Equal(t, "08:00", out[0].WorkTimeSlots[0].StartTime)
}
