package model

import (
	"fmt"
	"time"
)

const (
	SettingsTableName = "settings"
	EntityName        = "schedule"

	FieldKey        = "key"
	FieldValue      = "value"
	FieldModifiedAt = "modified_at"

	// SettingsKey is the settings-table key the weekly schedule lives under.
	SettingsKey = "schedule"

	// DefaultSlotDuration is applied when a stored schedule predates the
	// configurable slot duration.
	DefaultSlotDuration = 30

	daysPerWeek = 7
)

// Day is a weekday name, Monday-first.
type Day string

const (
	Monday    Day = "Monday"
	Tuesday   Day = "Tuesday"
	Wednesday Day = "Wednesday"
	Thursday  Day = "Thursday"
	Friday    Day = "Friday"
	Saturday  Day = "Saturday"
	Sunday    Day = "Sunday"
)

// Days returns the weekdays in schedule order.
func Days() []Day {
	return []Day{Monday, Tuesday, Wednesday, Thursday, Friday, Saturday, Sunday}
}

// OverbookingRule overrides the default slot capacity of 1 inside the
// half-open window [StartTime, EndTime).
type OverbookingRule struct {
	ID        string `json:"id"`
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
	Capacity  int    `json:"capacity"`
}

// DaySchedule is the bookable window of a single weekday.
type DaySchedule struct {
	Day              Day               `json:"day"`
	Enabled          bool              `json:"enabled"`
	StartTime        string            `json:"start_time"`
	EndTime          string            `json:"end_time"`
	OverbookingRules []OverbookingRule `json:"overbooking_rules"`
}

// WeeklySchedule is the full schedule configuration: one DaySchedule per
// weekday, Monday-first, plus the shared slot duration in minutes.
type WeeklySchedule struct {
	SlotDuration int           `json:"slot_duration"`
	Days         []DaySchedule `json:"days"`
	UpdatedAt    time.Time     `json:"updated_at"`
}

// Slot is a single bookable time point. Slots are derived on every read and
// never persisted.
type Slot struct {
	Day      Day    `json:"day"`
	Time     string `json:"time"`
	Capacity int    `json:"capacity"`
}

// Default is the schedule served before staff have stored one:
// weekdays 09:00-17:00 enabled, weekend 09:00-13:00 disabled, 30-minute slots.
func Default() WeeklySchedule {
	days := make([]DaySchedule, 0, daysPerWeek)

	for _, day := range Days() {
		sched := DaySchedule{
			Day:              day,
			Enabled:          true,
			StartTime:        "09:00",
			EndTime:          "17:00",
			OverbookingRules: []OverbookingRule{},
		}

		if day == Saturday || day == Sunday {
			sched.Enabled = false
			sched.StartTime = "09:00"
			sched.EndTime = "13:00"
		}

		days = append(days, sched)
	}

	return WeeklySchedule{
		SlotDuration: DefaultSlotDuration,
		Days:         days,
	}
}

// Validate rejects any schedule an external write must not store: anything
// but exactly seven Monday-first days, a non-positive slot duration, an
// enabled day with a malformed or non-increasing window, or a malformed
// overbooking rule.
func (ws *WeeklySchedule) Validate() error {
	if ws.SlotDuration <= 0 {
		return fmt.Errorf("slot duration must be positive, got %d", ws.SlotDuration)
	}

	if len(ws.Days) != daysPerWeek {
		return fmt.Errorf("schedule must contain exactly %d days, got %d", daysPerWeek, len(ws.Days))
	}

	for i, expected := range Days() {
		day := ws.Days[i]

		if day.Day != expected {
			return fmt.Errorf("day %d must be %s, got %q", i, expected, day.Day)
		}

		if err := day.validate(); err != nil {
			return err
		}
	}

	return nil
}

func (d *DaySchedule) validate() error {
	if d.Enabled {
		if _, ok := MinuteOfDay(d.StartTime); !ok {
			return fmt.Errorf("%s: start time %q is not a valid HH:MM time", d.Day, d.StartTime)
		}

		if _, ok := MinuteOfDay(d.EndTime); !ok {
			return fmt.Errorf("%s: end time %q is not a valid HH:MM time", d.Day, d.EndTime)
		}

		// Zero-padded HH:MM compares correctly as a string; no day wraps
		// past midnight.
		if d.StartTime >= d.EndTime {
			return fmt.Errorf("%s: start time %s must be before end time %s", d.Day, d.StartTime, d.EndTime)
		}
	}

	for _, rule := range d.OverbookingRules {
		if rule.Capacity < 1 {
			return fmt.Errorf("%s: overbooking rule %s must have capacity of at least 1", d.Day, rule.ID)
		}

		if _, ok := MinuteOfDay(rule.StartTime); !ok {
			return fmt.Errorf("%s: overbooking rule %s start time %q is not a valid HH:MM time", d.Day, rule.ID, rule.StartTime)
		}

		if _, ok := MinuteOfDay(rule.EndTime); !ok {
			return fmt.Errorf("%s: overbooking rule %s end time %q is not a valid HH:MM time", d.Day, rule.ID, rule.EndTime)
		}
	}

	return nil
}

// MinuteOfDay parses a zero-padded 24-hour "HH:MM" string into minutes since
// midnight. The second return is false for anything malformed.
func MinuteOfDay(t string) (int, bool) {
	if len(t) != 5 || t[2] != ':' {
		return 0, false
	}

	for _, idx := range []int{0, 1, 3, 4} {
		if t[idx] < '0' || t[idx] > '9' {
			return 0, false
		}
	}

	hour := int(t[0]-'0')*10 + int(t[1]-'0')
	minute := int(t[3]-'0')*10 + int(t[4]-'0')

	if hour >= 24 || minute >= 60 {
		return 0, false
	}

	return hour*60 + minute, true
}

// ClockTime formats minutes since midnight back into "HH:MM".
func ClockTime(minutes int) string {
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}
