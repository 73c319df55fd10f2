package model_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"turnero/internal/domains/schedule/model"
)

func TestDefault(t *testing.T) {
	ws := model.Default()

	require.NoError(t, ws.Validate())
	require.Len(t, ws.Days, 7)

	assert.Equal(t, 30, ws.SlotDuration)
	assert.Equal(t, model.Monday, ws.Days[0].Day)
	assert.Equal(t, model.Sunday, ws.Days[6].Day)

	for _, day := range ws.Days[:5] {
		assert.True(t, day.Enabled)
		assert.Equal(t, "09:00", day.StartTime)
		assert.Equal(t, "17:00", day.EndTime)
	}

	for _, day := range ws.Days[5:] {
		assert.False(t, day.Enabled)
		assert.Equal(t, "09:00", day.StartTime)
		assert.Equal(t, "13:00", day.EndTime)
	}
}

func TestWeeklySchedule_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(ws *model.WeeklySchedule)
		wantErr string
	}{
		{
			name:   "default schedule is valid",
			mutate: func(ws *model.WeeklySchedule) {},
		},
		{
			name: "zero slot duration",
			mutate: func(ws *model.WeeklySchedule) {
				ws.SlotDuration = 0
			},
			wantErr: "slot duration",
		},
		{
			name: "missing day",
			mutate: func(ws *model.WeeklySchedule) {
				ws.Days = ws.Days[:6]
			},
			wantErr: "exactly 7 days",
		},
		{
			name: "days out of order",
			mutate: func(ws *model.WeeklySchedule) {
				ws.Days[0], ws.Days[1] = ws.Days[1], ws.Days[0]
			},
			wantErr: "must be Monday",
		},
		{
			name: "enabled day with malformed start",
			mutate: func(ws *model.WeeklySchedule) {
				ws.Days[0].StartTime = "morning"
			},
			wantErr: "not a valid HH:MM",
		},
		{
			name: "enabled day with start after end",
			mutate: func(ws *model.WeeklySchedule) {
				ws.Days[0].StartTime = "18:00"
			},
			wantErr: "must be before end time",
		},
		{
			name: "disabled day with malformed window is tolerated",
			mutate: func(ws *model.WeeklySchedule) {
				ws.Days[6].StartTime = "whenever"
			},
		},
		{
			name: "rule capacity below one",
			mutate: func(ws *model.WeeklySchedule) {
				ws.Days[0].OverbookingRules = []model.OverbookingRule{
					{ID: "bad", StartTime: "09:00", EndTime: "10:00", Capacity: 0},
				}
			},
			wantErr: "capacity of at least 1",
		},
		{
			name: "rule with malformed window",
			mutate: func(ws *model.WeeklySchedule) {
				ws.Days[0].OverbookingRules = []model.OverbookingRule{
					{ID: "bad", StartTime: "09:00", EndTime: "25:00", Capacity: 2},
				}
			},
			wantErr: "not a valid HH:MM",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ws := model.Default()
			tt.mutate(&ws)

			err := ws.Validate()

			if tt.wantErr == "" {
				assert.NoError(t, err)
			} else {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
			}
		})
	}
}

func TestSetting_Schedule(t *testing.T) {
	setting := model.Setting{
		Key:   model.SettingsKey,
		Value: []byte(`{"slot_duration":45,"days":[]}`),
	}

	ws, err := setting.Schedule()

	require.NoError(t, err)
	assert.Equal(t, 45, ws.SlotDuration)

	setting.Value = []byte(`{"days":[]}`)
	ws, err = setting.Schedule()

	require.NoError(t, err)
	assert.Equal(t, model.DefaultSlotDuration, ws.SlotDuration)

	setting.Value = []byte(`not json`)
	_, err = setting.Schedule()

	assert.Error(t, err)
}
