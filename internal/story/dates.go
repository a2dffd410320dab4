package story

import (
	"strings"
	"time"
)

// PresentMarker is the open-ended tenure sentinel used by the upstream API
// and carried through to CareerPhase end dates.
const PresentMarker = "present"

const dateLayout = "2006-01-02"

var dateLayouts = []string{
	dateLayout,
	time.RFC3339,
	"2006/01/02",
	"January 2, 2006",
	"Jan 2, 2006",
	"Monday, January 2, 2006",
}

// parseDate accepts the date formats the upstream API is known to emit.
// Unparseable or empty dates report ok=false; callers treat the record as
// having no date rather than defaulting to the epoch.
func parseDate(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" || strings.EqualFold(s, PresentMarker) {
		return time.Time{}, false
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}
