package scheduling

import "time"

// Weekday labels as stored in schedule rows, Monday first. The clinic's UI
// and data are Ukrainian; the table is fixed, not localized per request.
var weekdayNames = [7]string{
	"Понеділок",
	"Вівторок",
	"Середа",
	"Четвер",
	"П'ятниця",
	"Субота",
	"Неділя",
}

// BookableWeekdays are the five labels a schedule row may use.
var BookableWeekdays = weekdayNames[:5]

// WeekdayName maps a date to its schedule label.
func WeekdayName(t time.Time) string {
	// time.Weekday is Sunday-based, the label table is Monday-based.
	return weekdayNames[(int(t.Weekday())+6)%7]
}

// IsBookableWeekday reports whether the label is one of the five weekday
// labels a schedule row may carry.
func IsBookableWeekday(label string) bool {
	for _, d := range BookableWeekdays {
		if d == label {
			return true
		}
	}
	return false
}
