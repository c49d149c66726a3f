// Package lotcode generates sequential traceability codes for production lots.
//
// A code is YYMMIISSS: two-digit year, two-digit month, two-digit zero-padded
// elaboration id and a three-digit sequence. The sequence continues from the
// most recently issued code for the same elaboration and resets to 001 when
// the year rolls over.
package lotcode

import (
	"fmt"
	"strconv"
	"time"
)

// Next returns the code following prev for the given elaboration at time now.
// prev is the most recently issued code for that elaboration, or empty when
// none has been issued yet. Next is pure: identical inputs yield identical
// codes.
func Next(prev string, elaborationID uint, now time.Time) string {
	year := now.Year() % 100
	month := int(now.Month())

	seq := 1
	if prevYear(prev) == year {
		// Last three characters carry the sequence.
		n, _ := strconv.Atoi(prev[len(prev)-3:])
		seq = n + 1
	}
	return fmt.Sprintf("%02d%02d%02d%03d", year, month, elaborationID, seq)
}

// prevYear extracts the two-digit year encoded at the start of a code.
// Codes too short to carry one count as year 0, which never matches a real
// current year and therefore forces a sequence reset.
func prevYear(code string) int {
	if len(code) < 3 {
		return 0
	}
	y, err := strconv.Atoi(code[:2])
	if err != nil {
		return 0
	}
	return y
}
