package record

import "time"

// NoDate is the raw value used by the source files for "no date".
const NoDate = "19000101"

// DisplayLayout is the layout of formatted dates.
const DisplayLayout = "02/01/2006"

// FormatDate turns a raw YYYYMMDD value into DD/MM/YYYY.
//
// Blank values, NoDate, values shorter than eight characters and values whose
// year, month or day parts are not all digits format to "". The parts are
// moved positionally; the result is not checked against the calendar.
func FormatDate(raw string) string {
	if len(raw) < 8 {
		return ""
	}

	if raw == NoDate {
		return ""
	}

	year, month, day := raw[:4], raw[4:6], raw[6:8]
	if !isDigits(year) || !isDigits(month) || !isDigits(day) {
		return ""
	}

	return day + "/" + month + "/" + year
}

// ParseDisplayDate parses a DD/MM/YYYY value in the local time zone.
func ParseDisplayDate(s string) (time.Time, bool) {
	t, err := time.ParseInLocation(DisplayLayout, s, time.Local)
	if err != nil {
		return time.Time{}, false
	}

	return t, true
}

func isDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}

	return true
}
