package model

import "time"

// Lookup tables naming schedule kinds. Free-text categories, looked up by name.
type ScheduleType struct {
	ID   int64  `db:"id" json:"id"`
	Name string `db:"name" json:"name"`
}

type ScheduleSubtype struct {
	ID   int64  `db:"id" json:"id"`
	Name string `db:"name" json:"name"`
}

// SchedulePattern is a repeating N-days-on/M-days-off rotation definition.
type SchedulePattern struct {
	ID       int64 `db:"id" json:"id"`
	DaysWork int   `db:"days_work" json:"daysWork"`
	DaysRest int   `db:"days_rest" json:"daysRest"`
}

// ScheduleWeekDay is a weekday number (1-7) with a working flag. Rows are
// shared across employees and created on first use.
type ScheduleWeekDay struct {
	ID        int64 `db:"id" json:"id"`
	DayOfWeek int   `db:"day_of_week" json:"dayOfWeek"`
	IsWorking bool  `db:"is_working" json:"isWorking"`
}

// ScheduleException overrides the working status on a specific calendar date.
type ScheduleException struct {
	ID            int64  `db:"id" json:"id"`
	ExceptionDate string `db:"exception_date" json:"exceptionDate"`
	IsWorking     bool   `db:"is_working" json:"isWorking"`
}

// WorkTimeSlot holds times as HH:MM and validity dates as YYYY-MM-DD.
type WorkTimeSlot struct {
	ID        int64  `db:"id" json:"id"`
	StartTime string `db:"start_time" json:"startTime"`
	EndTime   string `db:"end_time" json:"endTime"`
	ValidFrom string `db:"valid_from" json:"validFrom"`
	ValidTo   string `db:"valid_to" json:"validTo"`
}

// WorkBreak belongs to exactly one time slot and must lie within it.
type WorkBreak struct {
	ID        int64  `db:"id" json:"id"`
	SlotID    int64  `db:"slot_id" json:"slotId"`
	StartTime string `db:"start_time" json:"startTime"`
	EndTime   string `db:"end_time" json:"endTime"`
}

// EmployeeSchedule links an employee to one time slot plus optional tagging
// rows. Rows are append-only: created once, never updated or deleted.
type EmployeeSchedule struct {
	ID          int64     `db:"id" json:"id"`
	EmployeeID  int64     `db:"employee_id" json:"employeeId"`
	TypeID      *int64    `db:"type_id" json:"typeId,omitempty"`
	SubtypeID   *int64    `db:"subtype_id" json:"subtypeId,omitempty"`
	PatternID   *int64    `db:"pattern_id" json:"patternId,omitempty"`
	WeekDayID   *int64    `db:"week_day_id" json:"weekDayId,omitempty"`
	ExceptionID *int64    `db:"exception_id" json:"exceptionId,omitempty"`
	SlotID      *int64    `db:"slot_id" json:"slotId,omitempty"`
	CreatedAt   time.Time `db:"created_at" json:"createdAt"`
}

// Request bodies: times as HH:mm, dates as dd.MM.yy.

type BreakTimeRequest struct {
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
}

type WorkTimeSlotRequest struct {
	StartTime string             `json:"startTime"`
	EndTime   string             `json:"endTime"`
	ValidFrom string             `json:"validFrom"`
	ValidTo   string             `json:"validTo"`
	Breaks    []BreakTimeRequest `json:"breaks"`
}

type WorkingHoursRequest struct {
	EmployeeID    int64                 `json:"employeeId"`
	ScheduleType  string                `json:"scheduleType"`
	WorkTimeSlots []WorkTimeSlotRequest `json:"workTimeSlots"`
}

type WorkingWeeksHoursRequest struct {
	EmployeeID      int64                 `json:"employeeId"`
	ScheduleType    string                `json:"scheduleType"`
	DayOfWeek       string                `json:"dayOfWeek"`
	ScheduleSubType string                `json:"scheduleSubType"`
	WorkTimeSlots   []WorkTimeSlotRequest `json:"workTimeSlots"`
}

type WorkingChoiceHoursRequest struct {
	EmployeeID      int64                 `json:"employeeId"`
	ScheduleType    string                `json:"scheduleType"`
	DayWork         string                `json:"dayWork"`
	DayRest         string                `json:"dayRest"`
	ScheduleSubType string                `json:"scheduleSubType"`
	WorkTimeSlots   []WorkTimeSlotRequest `json:"workTimeSlots"`
}

// Response bodies.

type BreakTimeResponse struct {
	ID        int64  `json:"id"`
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
}

type WorkTimeSlotResponse struct {
	ID        int64               `json:"id"`
	StartTime string              `json:"startTime"`
	EndTime   string              `json:"endTime"`
	ValidFrom string              `json:"validFrom"`
	ValidTo   string              `json:"validTo"`
	Breaks    []BreakTimeResponse `json:"breaks"`
}

type WorkingHoursResponse struct {
	ScheduleID    int64                  `json:"scheduleId"`
	ScheduleType  string                 `json:"scheduleType"`
	WorkTimeSlots []WorkTimeSlotResponse `json:"workTimeSlots"`
}

type WeekDayScheduleResponse struct {
	DayOfWeek       string                 `json:"dayOfWeek"`
	ScheduleType    string                 `json:"scheduleType"`
	ScheduleSubType string                 `json:"scheduleSubType"`
	WorkTimeSlots   []WorkTimeSlotResponse `json:"workTimeSlots"`
}

type ChoiceDayScheduleResponse struct {
	DayWork         string                 `json:"dayWork"`
	DayRest         string                 `json:"dayRest"`
	ScheduleType    string                 `json:"scheduleType"`
	ScheduleSubType string                 `json:"scheduleSubType"`
	WorkTimeSlots   []WorkTimeSlotResponse `json:"workTimeSlots"`
}

// ScheduleRow is one flattened row of the schedule reconstruction join.
// Nullable columns come back as pointers; grouping happens in memory.
type ScheduleRow struct {
	ScheduleID  int64     `db:"schedule_id"`
	TypeName    *string   `db:"type_name"`
	SubtypeName *string   `db:"subtype_name"`
	DayOfWeek   *int      `db:"day_of_week"`
	DaysWork    *int      `db:"days_work"`
	DaysRest    *int      `db:"days_rest"`
	SlotID      *int64    `db:"slot_id"`
	SlotStart   *string   `db:"slot_start"`
	SlotEnd     *string   `db:"slot_end"`
	ValidFrom   *string   `db:"valid_from"`
	ValidTo     *string   `db:"valid_to"`
	CreatedAt   time.Time `db:"created_at"`
}

// ScheduleFilter carries the optional query-string criteria of the GET
// endpoints. Zero values mean "no filtering on that column".
type ScheduleFilter struct {
	Type     string
	Subtype  string
	Day      int
	DaysWork int
	DaysRest int
}
