package model

// ScheduleKind selects the tagging strategy of a composed schedule.
type ScheduleKind int

const (
	// ScheduleFixed tags rows with the schedule type only.
	ScheduleFixed ScheduleKind = iota
	// ScheduleWeekly adds a subtype and one row per applicable weekday.
	ScheduleWeekly
	// ScheduleChoice adds a subtype and a work/rest rotation pattern.
	ScheduleChoice
)

// SlotComposition is one validated time slot with its breaks, normalized to
// storage format and ready for insertion.
type SlotComposition struct {
	Slot   WorkTimeSlot
	Breaks []WorkBreak
}

// ScheduleComposition is a fully validated schedule request. The repository
// persists it atomically; no field is re-validated at that point.
type ScheduleComposition struct {
	EmployeeID  int64
	Kind        ScheduleKind
	TypeName    string
	SubtypeName string
	// WeekDays holds ISO weekday numbers (1-7) for weekly schedules.
	WeekDays []int
	// Pattern holds the rotation definition for choice schedules; a pattern
	// row is inserted per slot.
	Pattern *SchedulePattern
	Slots   []SlotComposition
}
