package greeting

import "time"

// DefaultTimeSlots returns a fresh copy of the built-in slot table
func DefaultTimeSlots() map[string]TimeSlot {
	return map[string]TimeSlot{
		SlotMorning:   {Start: 6, End: 12, Default: "早上好"},
		SlotAfternoon: {Start: 12, End: 18, Default: "下午好"},
		SlotEvening:   {Start: 18, End: 22, Default: "晚上好"},
		SlotNight:     {Start: 22, End: 6, Default: "晚安"},
	}
}

// DefaultLanguages returns a fresh copy of the built-in language tables
func DefaultLanguages() map[string]LanguageTable {
	return map[string]LanguageTable{
		"zh-CN": {
			TimeSlots: map[string]string{
				SlotMorning:   "早上好",
				SlotAfternoon: "下午好",
				SlotEvening:   "晚上好",
				SlotNight:     "晚安",
			},
			Weekdays: map[time.Weekday]string{
				time.Sunday:    "星期日愉快",
				time.Monday:    "星期一愉快",
				time.Tuesday:   "星期二愉快",
				time.Wednesday: "星期三愉快",
				time.Thursday:  "星期四愉快",
				time.Friday:    "星期五愉快",
				time.Saturday:  "星期六愉快",
			},
			Dates: map[string]string{
				"01-01": "新年快乐",
				"03-11": "今天是3月11日",
				"12-25": "圣诞快乐",
			},
		},
		"en-US": {
			TimeSlots: map[string]string{
				SlotMorning:   "Good morning",
				SlotAfternoon: "Good afternoon",
				SlotEvening:   "Good evening",
				SlotNight:     "Good night",
			},
			Weekdays: map[time.Weekday]string{
				time.Sunday:    "Happy Sunday",
				time.Monday:    "Happy Monday",
				time.Tuesday:   "Happy Tuesday",
				time.Wednesday: "Happy Wednesday",
				time.Thursday:  "Happy Thursday",
				time.Friday:    "Happy Friday",
				time.Saturday:  "Happy Saturday",
			},
			Dates: map[string]string{
				"01-01": "Happy New Year",
				"03-11": "Today is March 11",
				"12-25": "Merry Christmas",
			},
		},
	}
}
