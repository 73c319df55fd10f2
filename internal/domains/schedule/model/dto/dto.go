package dto

import (
	"time"

	"github.com/google/uuid"

	"turnero/internal/domains/schedule/model"
)

type OverbookingRuleRequest struct {
	ID        string `json:"id" validate:"omitempty,uuid"`
	StartTime string `json:"start_time" validate:"required,hhmm"`
	EndTime   string `json:"end_time" validate:"required,hhmm"`
	Capacity  int    `json:"capacity" validate:"required,min=1"`
}

type DayScheduleRequest struct {
	Day              string                   `json:"day" validate:"required,oneof=Monday Tuesday Wednesday Thursday Friday Saturday Sunday"`
	Enabled          bool                     `json:"enabled"`
	StartTime        string                   `json:"start_time" validate:"required,hhmm"`
	EndTime          string                   `json:"end_time" validate:"required,hhmm"`
	OverbookingRules []OverbookingRuleRequest `json:"overbooking_rules" validate:"dive"`
}

type UpdateScheduleRequest struct {
	SlotDuration int                  `json:"slot_duration" validate:"required,min=1"`
	Days         []DayScheduleRequest `json:"days" validate:"required,len=7,dive"`
}

func (r *UpdateScheduleRequest) ToModel() model.WeeklySchedule {
	days := make([]model.DaySchedule, len(r.Days))

	for i, day := range r.Days {
		rules := make([]model.OverbookingRule, len(day.OverbookingRules))

		for j, rule := range day.OverbookingRules {
			id := rule.ID
			if id == "" {
				id = uuid.NewString()
			}

			rules[j] = model.OverbookingRule{
				ID:        id,
				StartTime: rule.StartTime,
				EndTime:   rule.EndTime,
				Capacity:  rule.Capacity,
			}
		}

		days[i] = model.DaySchedule{
			Day:              model.Day(day.Day),
			Enabled:          day.Enabled,
			StartTime:        day.StartTime,
			EndTime:          day.EndTime,
			OverbookingRules: rules,
		}
	}

	return model.WeeklySchedule{
		SlotDuration: r.SlotDuration,
		Days:         days,
	}
}

type OverbookingRuleResponse struct {
	ID        string `json:"id"`
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
	Capacity  int    `json:"capacity"`
}

type DayScheduleResponse struct {
	Day              string                    `json:"day"`
	Enabled          bool                      `json:"enabled"`
	StartTime        string                    `json:"start_time"`
	EndTime          string                    `json:"end_time"`
	OverbookingRules []OverbookingRuleResponse `json:"overbooking_rules"`
}

type ScheduleResponse struct {
	SlotDuration int                   `json:"slot_duration"`
	Days         []DayScheduleResponse `json:"days"`
	UpdatedAt    *time.Time            `json:"updated_at,omitempty"`
}

func (r *ScheduleResponse) FromModel(ws model.WeeklySchedule) {
	r.SlotDuration = ws.SlotDuration

	r.Days = make([]DayScheduleResponse, len(ws.Days))
	for i, day := range ws.Days {
		rules := make([]OverbookingRuleResponse, len(day.OverbookingRules))

		for j, rule := range day.OverbookingRules {
			rules[j] = OverbookingRuleResponse(rule)
		}

		r.Days[i] = DayScheduleResponse{
			Day:              string(day.Day),
			Enabled:          day.Enabled,
			StartTime:        day.StartTime,
			EndTime:          day.EndTime,
			OverbookingRules: rules,
		}
	}

	if !ws.UpdatedAt.IsZero() {
		updatedAt := ws.UpdatedAt
		r.UpdatedAt = &updatedAt
	}
}

type SlotResponse struct {
	Time     string `json:"time"`
	Capacity int    `json:"capacity"`
}

type DaySlotsResponse struct {
	Day   string         `json:"day"`
	Slots []SlotResponse `json:"slots"`
}

type GetSlotsResponse struct {
	SlotDuration int                `json:"slot_duration"`
	Days         []DaySlotsResponse `json:"days"`
}

func (r *GetSlotsResponse) FromModel(ws model.WeeklySchedule) {
	r.SlotDuration = ws.SlotDuration

	r.Days = make([]DaySlotsResponse, len(ws.Days))
	for i, day := range ws.Days {
		slots := day.Slots(ws.SlotDuration)

		dayRes := DaySlotsResponse{
			Day:   string(day.Day),
			Slots: make([]SlotResponse, len(slots)),
		}

		for j, slot := range slots {
			dayRes.Slots[j] = SlotResponse{Time: slot.Time, Capacity: slot.Capacity}
		}

		r.Days[i] = dayRes
	}
}

// SuggestScheduleResponse carries an AI-drafted schedule. It is a draft for
// the staff UI, never stored directly.
type SuggestScheduleResponse struct {
	SlotDuration int                   `json:"slot_duration"`
	Days         []DayScheduleResponse `json:"days"`
}
