package greeting

import (
	"fmt"
	"sort"

	"github.com/go-playground/validator/v10"
)

var slotValidator = validator.New()

// namedSlot is a TimeSlot with its table key, kept in check order
type namedSlot struct {
	Name string
	TimeSlot
}

// ValidateTimeSlots checks hour bounds and rejects zero-length ranges
func ValidateTimeSlots(slots map[string]TimeSlot) error {
	for name, slot := range slots {
		if err := slotValidator.Struct(slot); err != nil {
			return fmt.Errorf(ErrFmtSlotValidation, ErrInvalidTimeSlot, name, err)
		}
		if slot.Start == slot.End {
			return fmt.Errorf(ErrFmtSlotEmptyRange, ErrInvalidTimeSlot, name, slot.Start)
		}
	}
	return nil
}

// orderSlots fixes the check order: ascending start hour, then name
func orderSlots(slots map[string]TimeSlot) []namedSlot {
	ordered := make([]namedSlot, 0, len(slots))
	for name, slot := range slots {
		ordered = append(ordered, namedSlot{Name: name, TimeSlot: slot})
	}
	sort.Slice(ordered, func(i, j int) bool {
		if ordered[i].Start != ordered[j].Start {
			return ordered[i].Start < ordered[j].Start
		}
		return ordered[i].Name < ordered[j].Name
	})
	return ordered
}

// slotForHour returns the first slot containing hour, or CatchAllSlot
func slotForHour(ordered []namedSlot, hour int) string {
	for _, slot := range ordered {
		if slot.Contains(hour) {
			return slot.Name
		}
	}
	return CatchAllSlot
}
