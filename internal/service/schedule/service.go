package schedule

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/yelizavetafitil/BookingBack/internal/model"
	"github.com/yelizavetafitil/BookingBack/internal/repository"
	"github.com/yelizavetafitil/BookingBack/pkg/apperror"
)

// Service composes and reconstructs employee schedules. One compose
// implementation serves the fixed, weekly and rotation endpoints; they
// differ only in how the rows are tagged.
type Service struct {
	schedules repository.ScheduleRepository
	employees repository.EmployeeRepository
}

func NewService(schedules repository.ScheduleRepository, employees repository.EmployeeRepository) *Service {
	return &Service{schedules: schedules, employees: employees}
}

func (s *Service) CreateFixed(ctx context.Context, req *model.WorkingHoursRequest) error {
	slots, err := buildSlots(req.WorkTimeSlots)
	if err != nil {
		return err
	}

	return s.compose(ctx, &model.ScheduleComposition{
		EmployeeID: req.EmployeeID,
		Kind:       model.ScheduleFixed,
		TypeName:   strings.TrimSpace(req.ScheduleType),
		Slots:      slots,
	})
}

func (s *Service) CreateWeekly(ctx context.Context, req *model.WorkingWeeksHoursRequest) error {
	days, err := parseWeekDays(req.DayOfWeek)
	if err != nil {
		return err
	}

	slots, err := buildSlots(req.WorkTimeSlots)
	if err != nil {
		return err
	}

	return s.compose(ctx, &model.ScheduleComposition{
		EmployeeID:  req.EmployeeID,
		Kind:        model.ScheduleWeekly,
		TypeName:    strings.TrimSpace(req.ScheduleType),
		SubtypeName: strings.TrimSpace(req.ScheduleSubType),
		WeekDays:    days,
		Slots:       slots,
	})
}

func (s *Service) CreateChoice(ctx context.Context, req *model.WorkingChoiceHoursRequest) error {
	daysWork, err := strconv.Atoi(strings.TrimSpace(req.DayWork))
	if err != nil || daysWork < 1 {
		return apperror.Validation("Неверный формат количества рабочих дней")
	}
	daysRest, err := strconv.Atoi(strings.TrimSpace(req.DayRest))
	if err != nil || daysRest < 1 {
		return apperror.Validation("Неверный формат количества дней отдыха")
	}

	slots, err := buildSlots(req.WorkTimeSlots)
	if err != nil {
		return err
	}

	return s.compose(ctx, &model.ScheduleComposition{
		EmployeeID:  req.EmployeeID,
		Kind:        model.ScheduleChoice,
		TypeName:    strings.TrimSpace(req.ScheduleType),
		SubtypeName: strings.TrimSpace(req.ScheduleSubType),
		Pattern:     &model.SchedulePattern{DaysWork: daysWork, DaysRest: daysRest},
		Slots:       slots,
	})
}

func (s *Service) compose(ctx context.Context, comp *model.ScheduleComposition) error {
	err := s.schedules.Compose(ctx, comp)
	if errors.Is(err, repository.ErrNotFound) {
		return apperror.NotFound("Сотрудник не найден")
	}
	if err != nil {
		return fmt.Errorf("failed to compose schedule: %w", err)
	}
	return nil
}

func (s *Service) ListFixed(ctx context.Context, employeeID int64, filter model.ScheduleFilter) ([]model.WorkingHoursResponse, error) {
	rows, err := s.listRows(ctx, employeeID, model.ScheduleFixed, filter)
	if err != nil {
		return nil, err
	}

	// Every fixed row is its own group: the schedule id distinguishes them.
	out := []model.WorkingHoursResponse{}
	for _, row := range rows {
		resp := model.WorkingHoursResponse{
			ScheduleID:    row.ScheduleID,
			ScheduleType:  strValue(row.TypeName),
			WorkTimeSlots: []model.WorkTimeSlotResponse{},
		}
		slot, err := s.slotResponse(ctx, &row)
		if err != nil {
			return nil, err
		}
		if slot != nil {
			resp.WorkTimeSlots = append(resp.WorkTimeSlots, *slot)
		}
		out = append(out, resp)
	}
	return out, nil
}

// weeklyKey distinguishes weekly schedule groups.
type weeklyKey struct {
	day     int
	typ     string
	subtype string
}

func (s *Service) ListWeekly(ctx context.Context, employeeID int64, filter model.ScheduleFilter) ([]model.WeekDayScheduleResponse, error) {
	rows, err := s.listRows(ctx, employeeID, model.ScheduleWeekly, filter)
	if err != nil {
		return nil, err
	}

	// Rows arrive ordered by creation time descending; a linear scan with a
	// first-encounter index keeps the grouping deterministic.
	out := []model.WeekDayScheduleResponse{}
	index := map[weeklyKey]int{}
	for _, row := range rows {
		key := weeklyKey{day: intValue(row.DayOfWeek), typ: strValue(row.TypeName), subtype: strValue(row.SubtypeName)}
		i, ok := index[key]
		if !ok {
			out = append(out, model.WeekDayScheduleResponse{
				DayOfWeek:       strconv.Itoa(key.day),
				ScheduleType:    key.typ,
				ScheduleSubType: key.subtype,
				WorkTimeSlots:   []model.WorkTimeSlotResponse{},
			})
			i = len(out) - 1
			index[key] = i
		}

		slot, err := s.slotResponse(ctx, &row)
		if err != nil {
			return nil, err
		}
		if slot != nil {
			out[i].WorkTimeSlots = append(out[i].WorkTimeSlots, *slot)
		}
	}
	return out, nil
}

// choiceKey distinguishes rotation schedule groups.
type choiceKey struct {
	daysWork int
	daysRest int
	typ      string
	subtype  string
}

func (s *Service) ListChoice(ctx context.Context, employeeID int64, filter model.ScheduleFilter) ([]model.ChoiceDayScheduleResponse, error) {
	rows, err := s.listRows(ctx, employeeID, model.ScheduleChoice, filter)
	if err != nil {
		return nil, err
	}

	out := []model.ChoiceDayScheduleResponse{}
	index := map[choiceKey]int{}
	for _, row := range rows {
		key := choiceKey{
			daysWork: intValue(row.DaysWork),
			daysRest: intValue(row.DaysRest),
			typ:      strValue(row.TypeName),
			subtype:  strValue(row.SubtypeName),
		}
		i, ok := index[key]
		if !ok {
			out = append(out, model.ChoiceDayScheduleResponse{
				DayWork:         strconv.Itoa(key.daysWork),
				DayRest:         strconv.Itoa(key.daysRest),
				ScheduleType:    key.typ,
				ScheduleSubType: key.subtype,
				WorkTimeSlots:   []model.WorkTimeSlotResponse{},
			})
			i = len(out) - 1
			index[key] = i
		}

		slot, err := s.slotResponse(ctx, &row)
		if err != nil {
			return nil, err
		}
		if slot != nil {
			out[i].WorkTimeSlots = append(out[i].WorkTimeSlots, *slot)
		}
	}
	return out, nil
}

func (s *Service) listRows(ctx context.Context, employeeID int64, kind model.ScheduleKind, filter model.ScheduleFilter) ([]model.ScheduleRow, error) {
	if _, err := s.employees.Get(ctx, employeeID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apperror.NotFound("Сотрудник не найден")
		}
		return nil, fmt.Errorf("failed to get employee: %w", err)
	}

	rows, err := s.schedules.ListRows(ctx, employeeID, kind, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list schedules: %w", err)
	}
	return rows, nil
}

func (s *Service) slotResponse(ctx context.Context, row *model.ScheduleRow) (*model.WorkTimeSlotResponse, error) {
	if row.SlotID == nil {
		return nil, nil
	}

	breaks, err := s.schedules.ListBreaks(ctx, *row.SlotID)
	if err != nil {
		return nil, fmt.Errorf("failed to list breaks: %w", err)
	}

	resp := &model.WorkTimeSlotResponse{
		ID:        *row.SlotID,
		StartTime: strValue(row.SlotStart),
		EndTime:   strValue(row.SlotEnd),
		ValidFrom: wireDate(strValue(row.ValidFrom)),
		ValidTo:   wireDate(strValue(row.ValidTo)),
		Breaks:    []model.BreakTimeResponse{},
	}
	for _, b := range breaks {
		resp.Breaks = append(resp.Breaks, model.BreakTimeResponse{
			ID:        b.ID,
			StartTime: b.StartTime,
			EndTime:   b.EndTime,
		})
	}
	return resp, nil
}

func strValue(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func intValue(i *int) int {
	if i == nil {
		return 0
	}
	return *i
}
