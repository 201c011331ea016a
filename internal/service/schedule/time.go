package schedule

import (
	"strconv"
	"strings"
	"time"

	"github.com/yelizavetafitil/BookingBack/internal/model"
	"github.com/yelizavetafitil/BookingBack/pkg/apperror"
)

const (
	clockLayout = "15:04"
	// Wire format for validity dates, dd.MM.yy.
	wireDateLayout = "02.01.06"
	// Storage format, sortable.
	storeDateLayout = "2006-01-02"
)

var weekDayNames = map[string]int{
	"понедельник": 1,
	"вторник":     2,
	"среда":       3,
	"четверг":     4,
	"пятница":     5,
	"суббота":     6,
	"воскресенье": 7,
}

// parseWeekDays accepts a comma-separated list of ISO weekday digits (1-7)
// or Russian day names, in any mix.
func parseWeekDays(s string) ([]int, error) {
	var days []int
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}

		if day, ok := weekDayNames[strings.ToLower(part)]; ok {
			days = append(days, day)
			continue
		}

		day, err := strconv.Atoi(part)
		if err != nil || day < 1 || day > 7 {
			return nil, apperror.Validation("Неверный формат дня недели: " + part)
		}
		days = append(days, day)
	}
	if len(days) == 0 {
		return nil, apperror.Validation("Не указаны дни недели")
	}
	return days, nil
}

// buildSlots parses and validates every slot and break of a request before
// anything is persisted, returning storage-normalized compositions.
func buildSlots(slots []model.WorkTimeSlotRequest) ([]model.SlotComposition, error) {
	if len(slots) == 0 {
		return nil, apperror.Validation("Не указаны рабочие интервалы")
	}

	out := make([]model.SlotComposition, 0, len(slots))
	for _, req := range slots {
		start, err := time.Parse(clockLayout, req.StartTime)
		if err != nil {
			return nil, apperror.Validation("Неверный формат времени начала")
		}
		end, err := time.Parse(clockLayout, req.EndTime)
		if err != nil {
			return nil, apperror.Validation("Неверный формат времени окончания")
		}
		from, err := time.Parse(wireDateLayout, req.ValidFrom)
		if err != nil {
			return nil, apperror.Validation("Неверный формат даты начала действия")
		}
		to, err := time.Parse(wireDateLayout, req.ValidTo)
		if err != nil {
			return nil, apperror.Validation("Неверный формат даты окончания действия")
		}

		if !start.Before(end) {
			return nil, apperror.Validation("Время начала должно быть раньше времени окончания")
		}
		if from.After(to) {
			return nil, apperror.Validation("Дата начала действия не может быть позже даты окончания")
		}

		comp := model.SlotComposition{
			Slot: model.WorkTimeSlot{
				StartTime: start.Format(clockLayout),
				EndTime:   end.Format(clockLayout),
				ValidFrom: from.Format(storeDateLayout),
				ValidTo:   to.Format(storeDateLayout),
			},
		}

		for _, br := range req.Breaks {
			bStart, err := time.Parse(clockLayout, br.StartTime)
			if err != nil {
				return nil, apperror.Validation("Неверный формат времени начала перерыва")
			}
			bEnd, err := time.Parse(clockLayout, br.EndTime)
			if err != nil {
				return nil, apperror.Validation("Неверный формат времени окончания перерыва")
			}
			if !bStart.Before(bEnd) {
				return nil, apperror.Validation("Время начала перерыва должно быть раньше времени окончания")
			}
			if bStart.Before(start) || bEnd.After(end) {
				return nil, apperror.Validation("Перерыв должен быть в пределах рабочего времени")
			}
			comp.Breaks = append(comp.Breaks, model.WorkBreak{
				StartTime: bStart.Format(clockLayout),
				EndTime:   bEnd.Format(clockLayout),
			})
		}

		out = append(out, comp)
	}
	return out, nil
}

// wireDate renders a stored date back in the dd.MM.yy wire format.
func wireDate(stored string) string {
	d, err := time.Parse(storeDateLayout, stored)
	if err != nil {
		return stored
	}
	return d.Format(wireDateLayout)
}
