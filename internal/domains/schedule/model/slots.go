package model

// GenerateSlots derives the bookable slots for every enabled day. Generation
// is pure and deterministic: the same schedule always yields the same slots
// in the same order.
func GenerateSlots(ws WeeklySchedule) map[Day][]Slot {
	slots := make(map[Day][]Slot, len(ws.Days))

	for _, day := range ws.Days {
		slots[day.Day] = day.Slots(ws.SlotDuration)
	}

	return slots
}

// Slots derives the bookable slots of a single day. A disabled day, a
// malformed window, or a non-positive duration yields an empty list, never
// an error.
func (d *DaySchedule) Slots(duration int) []Slot {
	slots := []Slot{}

	if !d.Enabled || duration <= 0 {
		return slots
	}

	start, ok := MinuteOfDay(d.StartTime)
	if !ok {
		return slots
	}

	end, ok := MinuteOfDay(d.EndTime)
	if !ok {
		return slots
	}

	// Half-open window: a slot exists at every step strictly before the end
	// time, regardless of whether a full slot duration fits after it.
	for minute := start; minute < end; minute += duration {
		at := ClockTime(minute)

		slots = append(slots, Slot{
			Day:      d.Day,
			Time:     at,
			Capacity: d.CapacityAt(at),
		})
	}

	return slots
}

// CapacityAt resolves the capacity of the slot starting at the given time.
// Overbooking rules match on the half-open window [StartTime, EndTime); when
// several match, the one with the lexicographically greatest start time wins,
// and on equal start times the rule listed first wins. A slot no rule covers
// has capacity 1, and no rule can lower capacity below 1.
func (d *DaySchedule) CapacityAt(at string) int {
	capacity := 1
	bestStart := ""

	for _, rule := range d.OverbookingRules {
		if at < rule.StartTime || at >= rule.EndTime {
			continue
		}

		if bestStart != "" && rule.StartTime <= bestStart {
			continue
		}

		bestStart = rule.StartTime
		capacity = rule.Capacity
	}

	if capacity < 1 {
		capacity = 1
	}

	return capacity
}

// FindSlot reports whether the schedule generates a slot at exactly the given
// day and time, and returns it when it does.
func (ws *WeeklySchedule) FindSlot(day Day, at string) (Slot, bool) {
	for i := range ws.Days {
		if ws.Days[i].Day != day {
			continue
		}

		for _, slot := range ws.Days[i].Slots(ws.SlotDuration) {
			if slot.Time == at {
				return slot, true
			}
		}

		return Slot{}, false
	}

	return Slot{}, false
}
