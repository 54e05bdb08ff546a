package quiz

import (
	"regexp"
	"strconv"

	"github.com/suhedayldrm/pond/internal/models"
)

// frequencyBarTotal is the fixed bar length used when the dataset stores a
// bare number instead of an "X out of Y" string.
const frequencyBarTotal = 7

// Accepts "4 out of 7", "4 of 7" and "4/7", case-insensitive, with optional
// whitespace around the separator. The tolerance is a contract on the
// bundled data format, not a convenience.
var frequencyTextPattern = regexp.MustCompile(`(?i)^\s*(\d+)\s*(?:out\s+of|of|/)\s*(\d+)\s*$`)

// FrequencyBar derives the (active, total) pair rendered as frequency dots.
// ok is false when no bar should be shown at all: absent frequency, an
// unparseable string, or a non-positive total. Absence is distinct from an
// all-zero bar.
func FrequencyBar(freq *models.FrequencyValue) (active, total int, ok bool) {
	if freq == nil {
		return 0, 0, false
	}

	if freq.Number != nil {
		active = int(*freq.Number)
		if active < 0 {
			active = 0
		}
		if active > frequencyBarTotal {
			active = frequencyBarTotal
		}
		return active, frequencyBarTotal, true
	}

	m := frequencyTextPattern.FindStringSubmatch(freq.Text)
	if m == nil {
		return 0, 0, false
	}

	active, err := strconv.Atoi(m[1])
	if err != nil {
		return 0, 0, false
	}
	total, err = strconv.Atoi(m[2])
	if err != nil || total <= 0 {
		return 0, 0, false
	}

	return active, total, true
}
