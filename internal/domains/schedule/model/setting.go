package model

import (
	"encoding/json"
	"fmt"
	"time"
)

// Setting is a row of the settings table. The weekly schedule is stored as a
// single JSON document under SettingsKey.
type Setting struct {
	Key        string    `db:"key" json:"key"`
	Value      []byte    `db:"value" json:"value"`
	ModifiedAt time.Time `db:"modified_at" json:"modified_at"`
}

// Schedule decodes the stored JSON document into a weekly schedule. Documents
// written before the slot duration became configurable fall back to the
// default duration.
func (s *Setting) Schedule() (WeeklySchedule, error) {
	var ws WeeklySchedule

	if err := json.Unmarshal(s.Value, &ws); err != nil {
		return ws, fmt.Errorf("failed to decode stored schedule: %w", err)
	}

	if ws.SlotDuration <= 0 {
		ws.SlotDuration = DefaultSlotDuration
	}

	ws.UpdatedAt = s.ModifiedAt

	return ws, nil
}
