package greeting

import (
	"log/slog"
	"time"

	"github.com/osse101/greeter/internal/store"
)

// LanguageTable holds the phrases of one locale
type LanguageTable struct {
	TimeSlots map[string]string       `json:"timeslots,omitempty"`
	Weekdays  map[time.Weekday]string `json:"weekdays,omitempty"`
	Dates     map[string]string       `json:"dates,omitempty"` // MM-DD format
}

// TimeSlot is an hour range [Start, End). Start > End wraps past midnight.
type TimeSlot struct {
	Start   int    `json:"start" validate:"min=0,max=23"`
	End     int    `json:"end" validate:"min=0,max=23"`
	Default string `json:"default,omitempty"`
}

// Contains reports whether hour falls inside the slot
func (s TimeSlot) Contains(hour int) bool {
	if s.Start > s.End {
		return hour >= s.Start || hour < s.End
	}
	return hour >= s.Start && hour < s.End
}

// Clock supplies the current time
type Clock interface {
	Now() time.Time
}

// ClockFunc adapts a function to the Clock interface
type ClockFunc func() time.Time

// Now calls f()
func (f ClockFunc) Now() time.Time {
	return f()
}

// SystemClock reads the wall clock
var SystemClock Clock = ClockFunc(time.Now)

// Options configures a Resolver. Every field is optional.
type Options struct {
	// Locale selects the active language table (default DefaultLocale)
	Locale string
	// TimeSlots replaces the built-in slot table when non-empty
	TimeSlots map[string]TimeSlot
	// Languages is deep-merged over the built-in tables, caller wins
	Languages map[string]LanguageTable
	// UpdateInterval is the auto update period (default DefaultUpdateInterval)
	UpdateInterval time.Duration

	// Store persists custom greetings. Nil keeps them in memory only.
	Store  store.Store
	Clock  Clock
	Logger *slog.Logger
}

// Greeting is a resolved greeting together with the inputs that produced it
type Greeting struct {
	Text    string       `json:"text"`
	Source  Source       `json:"source"`
	Locale  string       `json:"locale"`
	Slot    string       `json:"slot"`
	Weekday time.Weekday `json:"weekday"`
	Date    string       `json:"date"`
}
