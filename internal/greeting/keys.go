package greeting

import (
	"fmt"
	"strings"
	"time"
)

// DateKey formats a calendar date as the "MM-DD" key used by date phrases and overrides
func DateKey(month time.Month, day int) string {
	return fmt.Sprintf(DateKeyFormat, int(month), day)
}

// WeekdayKey formats the override key for a weekday, e.g. "day_0" for Sunday
func WeekdayKey(day time.Weekday) string {
	return fmt.Sprintf(WeekdayKeyFormat, int(day))
}

// SlotKey is the override key for a time slot
func SlotKey(slot string) string {
	return slot
}

func overrideKey(locale, key string) string {
	return locale + OverrideKeySeparator + key
}

// stripLocale returns the key part of an override key owned by locale
func stripLocale(locale, key string) (string, bool) {
	return strings.CutPrefix(key, locale+OverrideKeySeparator)
}
