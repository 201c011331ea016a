package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/yelizavetafitil/BookingBack/internal/model"
	"github.com/yelizavetafitil/BookingBack/internal/repository"
)

func (r *scheduleRepository) Compose(ctx context.Context, comp *model.ScheduleComposition) error {
	return r.WithTx(ctx, func(tx *sqlx.Tx) error {
		var count int
		query := tx.Rebind(`SELECT COUNT(1) FROM employees WHERE id = ?`)
		if err := tx.GetContext(ctx, &count, query, comp.EmployeeID); err != nil {
			return fmt.Errorf("failed to check employee: %w", err)
		}
		if count == 0 {
			return repository.ErrNotFound
		}

		typeID, err := lookupID(ctx, tx, "schedule_types", comp.TypeName)
		if err != nil {
			return err
		}
		subtypeID, err := lookupID(ctx, tx, "schedule_subtypes", comp.SubtypeName)
		if err != nil {
			return err
		}

		var weekDayIDs []int64
		for _, day := range comp.WeekDays {
			id, err := getOrCreateWeekDay(ctx, tx, day)
			if err != nil {
				return err
			}
			weekDayIDs = append(weekDayIDs, id)
		}

		createdAt := time.Now().UTC()

		for _, sc := range comp.Slots {
			slotID, err := insertSlot(ctx, tx, &sc.Slot)
			if err != nil {
				return err
			}

			breakQuery := tx.Rebind(`INSERT INTO work_breaks (slot_id, start_time, end_time) VALUES (?, ?, ?)`)
			for _, b := range sc.Breaks {
				if _, err := tx.ExecContext(ctx, breakQuery, slotID, b.StartTime, b.EndTime); err != nil {
					return fmt.Errorf("failed to create break: %w", err)
				}
			}

			var patternID *int64
			if comp.Pattern != nil {
				id, err := insertPattern(ctx, tx, comp.Pattern)
				if err != nil {
					return err
				}
				patternID = &id
			}

			scheduleQuery := tx.Rebind(`
				INSERT INTO employee_schedules (employee_id, type_id, subtype_id, pattern_id, week_day_id, slot_id, created_at)
				VALUES (?, ?, ?, ?, ?, ?, ?)
			`)

			if comp.Kind == model.ScheduleWeekly {
				// One row per applicable weekday, all sharing the slot.
				for _, weekDayID := range weekDayIDs {
					wd := weekDayID
					if _, err := tx.ExecContext(ctx, scheduleQuery,
						comp.EmployeeID, typeID, subtypeID, nil, &wd, slotID, createdAt); err != nil {
						return fmt.Errorf("failed to create schedule row: %w", err)
					}
				}
				continue
			}

			if _, err := tx.ExecContext(ctx, scheduleQuery,
				comp.EmployeeID, typeID, subtypeID, patternID, nil, slotID, createdAt); err != nil {
				return fmt.Errorf("failed to create schedule row: %w", err)
			}
		}
		return nil
	})
}

// lookupID resolves a lookup table row by name. An unknown or empty name is
// tolerated as a missing link, not an error.
func lookupID(ctx context.Context, tx *sqlx.Tx, table, name string) (*int64, error) {
	if name == "" {
		return nil, nil
	}

	var id int64
	query := tx.Rebind(fmt.Sprintf(`SELECT id FROM %s WHERE name = ? LIMIT 1`, table))
	err := tx.GetContext(ctx, &id, query, name)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to look up %s: %w", table, err)
	}
	return &id, nil
}

// getOrCreateWeekDay returns the shared weekday row, creating it on first use.
func getOrCreateWeekDay(ctx context.Context, tx *sqlx.Tx, day int) (int64, error) {
	var id int64
	query := tx.Rebind(`SELECT id FROM schedule_week_days WHERE day_of_week = ? AND is_working = ? LIMIT 1`)
	err := tx.GetContext(ctx, &id, query, day, true)
	if err == nil {
		return id, nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return 0, fmt.Errorf("failed to look up weekday: %w", err)
	}

	query = tx.Rebind(`INSERT INTO schedule_week_days (day_of_week, is_working) VALUES (?, ?) RETURNING id`)
	if err := tx.QueryRowxContext(ctx, query, day, true).Scan(&id); err != nil {
		return 0, fmt.Errorf("failed to create weekday: %w", err)
	}
	return id, nil
}

func insertSlot(ctx context.Context, tx *sqlx.Tx, slot *model.WorkTimeSlot) (int64, error) {
	var id int64
	query := tx.Rebind(`
		INSERT INTO work_time_slots (start_time, end_time, valid_from, valid_to)
		VALUES (?, ?, ?, ?)
		RETURNING id
	`)
	if err := tx.QueryRowxContext(ctx, query, slot.StartTime, slot.EndTime, slot.ValidFrom, slot.ValidTo).Scan(&id); err != nil {
		return 0, fmt.Errorf("failed to create time slot: %w", err)
	}
	return id, nil
}

func insertPattern(ctx context.Context, tx *sqlx.Tx, pattern *model.SchedulePattern) (int64, error) {
	var id int64
	query := tx.Rebind(`INSERT INTO schedule_patterns (days_work, days_rest) VALUES (?, ?) RETURNING id`)
	if err := tx.QueryRowxContext(ctx, query, pattern.DaysWork, pattern.DaysRest).Scan(&id); err != nil {
		return 0, fmt.Errorf("failed to create pattern: %w", err)
	}
	return id, nil
}

func (r *scheduleRepository) ListRows(ctx context.Context, employeeID int64, kind model.ScheduleKind, filter model.ScheduleFilter) ([]model.ScheduleRow, error) {
	query := `
		SELECT es.id AS schedule_id,
		       st.name AS type_name,
		       ss.name AS subtype_name,
		       wd.day_of_week AS day_of_week,
		       sp.days_work AS days_work,
		       sp.days_rest AS days_rest,
		       ts.id AS slot_id,
		       ts.start_time AS slot_start,
		       ts.end_time AS slot_end,
		       ts.valid_from AS valid_from,
		       ts.valid_to AS valid_to,
		       es.created_at AS created_at
		FROM employee_schedules es
		LEFT JOIN schedule_types st ON st.id = es.type_id
		LEFT JOIN schedule_subtypes ss ON ss.id = es.subtype_id
		LEFT JOIN schedule_week_days wd ON wd.id = es.week_day_id
		LEFT JOIN schedule_patterns sp ON sp.id = es.pattern_id
		LEFT JOIN work_time_slots ts ON ts.id = es.slot_id
		WHERE es.employee_id = ?
	`
	args := []interface{}{employeeID}

	switch kind {
	case model.ScheduleWeekly:
		query += " AND es.week_day_id IS NOT NULL"
	case model.ScheduleChoice:
		query += " AND es.pattern_id IS NOT NULL"
	default:
		query += " AND es.week_day_id IS NULL AND es.pattern_id IS NULL"
	}

	if filter.Type != "" {
		query += " AND st.name = ?"
		args = append(args, filter.Type)
	}
	if filter.Subtype != "" {
		query += " AND ss.name = ?"
		args = append(args, filter.Subtype)
	}
	if filter.Day != 0 {
		query += " AND wd.day_of_week = ?"
		args = append(args, filter.Day)
	}
	if filter.DaysWork != 0 {
		query += " AND sp.days_work = ?"
		args = append(args, filter.DaysWork)
	}
	if filter.DaysRest != 0 {
		query += " AND sp.days_rest = ?"
		args = append(args, filter.DaysRest)
	}

	query += " ORDER BY es.created_at DESC, es.id DESC"

	rows := []model.ScheduleRow{}
	if err := r.db.SelectContext(ctx, &rows, r.db.Rebind(query), args...); err != nil {
		return nil, fmt.Errorf("failed to list schedule rows: %w", err)
	}
	return rows, nil
}

func (r *scheduleRepository) ListBreaks(ctx context.Context, slotID int64) ([]model.WorkBreak, error) {
	query := r.db.Rebind(`
		SELECT id, slot_id, start_time, end_time
		FROM work_breaks
		WHERE slot_id = ?
		ORDER BY id
	`)

	breaks := []model.WorkBreak{}
	if err := r.db.SelectContext(ctx, &breaks, query, slotID); err != nil {
		return nil, fmt.Errorf("failed to list breaks: %w", err)
	}
	return breaks, nil
}
