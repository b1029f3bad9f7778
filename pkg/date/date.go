package date

import "strconv"

const (
	MinYear = 1900
	MaxYear = 2100
)

// Year extracts the four digit year a date string starts with, such as
// "2024" from "2024-01-15". It returns "" when the string does not start with
// four digits or the year falls outside MinYear..MaxYear.
func Year(s string) string {
	if len(s) < 4 {
		return ""
	}

	prefix := s[:4]
	for _, r := range prefix {
		if r < '0' || r > '9' {
			return ""
		}
	}

	y, err := strconv.Atoi(prefix)
	if err != nil || y < MinYear || y > MaxYear {
		return ""
	}

	return prefix
}
