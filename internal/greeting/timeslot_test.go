package greeting

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTimeSlotContains(t *testing.T) {
	night := TimeSlot{Start: 22, End: 6}
	morning := TimeSlot{Start: 6, End: 12}

	tests := []struct {
		name string
		slot TimeSlot
		hour int
		want bool
	}{
		{"night late evening", night, 23, true},
		{"night early morning", night, 2, true},
		{"night at start", night, 22, true},
		{"night at end is exclusive", night, 6, false},
		{"night mid morning", night, 10, false},
		{"morning start", morning, 6, true},
		{"morning end is exclusive", morning, 12, false},
		{"morning before start", morning, 5, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.slot.Contains(tt.hour))
		})
	}
}

func TestDefaultSlotsPartitionTheDay(t *testing.T) {
	slots := DefaultTimeSlots()

	for hour := 0; hour < HoursPerDay; hour++ {
		matches := 0
		for _, slot := range slots {
			if slot.Contains(hour) {
				matches++
			}
		}
		assert.Equal(t, 1, matches, "hour %d should belong to exactly one slot", hour)
	}
}

func TestSlotForHour(t *testing.T) {
	ordered := orderSlots(DefaultTimeSlots())

	tests := []struct {
		hour int
		want string
	}{
		{0, SlotNight},
		{2, SlotNight},
		{5, SlotNight},
		{6, SlotMorning},
		{11, SlotMorning},
		{12, SlotAfternoon},
		{17, SlotAfternoon},
		{18, SlotEvening},
		{21, SlotEvening},
		{22, SlotNight},
		{23, SlotNight},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, slotForHour(ordered, tt.hour), "hour %d", tt.hour)
	}
}

func TestSlotForHour_CatchAllOnGap(t *testing.T) {
	ordered := orderSlots(map[string]TimeSlot{
		"work": {Start: 9, End: 17},
	})

	assert.Equal(t, "work", slotForHour(ordered, 9))
	assert.Equal(t, CatchAllSlot, slotForHour(ordered, 3))
	assert.Equal(t, CatchAllSlot, slotForHour(ordered, 20))
}

func TestOrderSlots_Deterministic(t *testing.T) {
	ordered := orderSlots(map[string]TimeSlot{
		"b":     {Start: 6, End: 10},
		"a":     {Start: 6, End: 9},
		"late":  {Start: 20, End: 2},
		"early": {Start: 2, End: 6},
	})

	names := make([]string, len(ordered))
	for i, slot := range ordered {
		names[i] = slot.Name
	}
	assert.Equal(t, []string{"early", "a", "b", "late"}, names)

	// Overlap resolves to the first slot in check order
	assert.Equal(t, "a", slotForHour(ordered, 7))
}

func TestValidateTimeSlots(t *testing.T) {
	tests := []struct {
		name    string
		slots   map[string]TimeSlot
		wantErr bool
	}{
		{"defaults", DefaultTimeSlots(), false},
		{"wrapping", map[string]TimeSlot{"night": {Start: 20, End: 4}}, false},
		{"hour too large", map[string]TimeSlot{"bad": {Start: 6, End: 24}}, true},
		{"negative hour", map[string]TimeSlot{"bad": {Start: -1, End: 5}}, true},
		{"zero length", map[string]TimeSlot{"bad": {Start: 5, End: 5}}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateTimeSlots(tt.slots)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, errors.Is(err, ErrInvalidTimeSlot))
				return
			}
			assert.NoError(t, err)
		})
	}
}
