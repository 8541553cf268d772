package analyzer

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// durationPattern matches ISO 8601 video durations as returned by the Data API,
// e.g. PT1H2M3S, PT45S, P1DT2H.
var durationPattern = regexp.MustCompile(`^P(?:(\d+)D)?(?:T(?:(\d+)H)?(?:(\d+)M)?(?:(\d+)S)?)?$`)

// ParseDuration converts an ISO 8601 duration into total seconds.
// Absent components count as zero; text of any other shape yields 0.
func ParseDuration(duration string) int {
	matches := durationPattern.FindStringSubmatch(duration)
	if matches == nil {
		return 0
	}

	component := func(i int) int {
		if matches[i] == "" {
			return 0
		}
		n, err := strconv.Atoi(matches[i])
		if err != nil {
			return 0
		}
		return n
	}

	days, hours, minutes, seconds := component(1), component(2), component(3), component(4)
	return days*86400 + hours*3600 + minutes*60 + seconds
}

// FormatDuration renders seconds as H:MM:SS from one hour up, M:SS below.
func FormatDuration(seconds int) string {
	if seconds < 0 {
		seconds = 0
	}
	hours := seconds / 3600
	mins := (seconds % 3600) / 60
	secs := seconds % 60

	if hours > 0 {
		return fmt.Sprintf("%d:%02d:%02d", hours, mins, secs)
	}
	return fmt.Sprintf("%d:%02d", mins, secs)
}

// parseClock converts M:SS, MM:SS or H:MM:SS into seconds.
func parseClock(clock string) int {
	total := 0
	for _, part := range strings.Split(clock, ":") {
		n, err := strconv.Atoi(part)
		if err != nil {
			return 0
		}
		total = total*60 + n
	}
	return total
}
