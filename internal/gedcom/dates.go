package gedcom

import (
	"regexp"
	"strings"
	"time"

	"gedcard/internal/textutil"
)

var (
	dayMonthYearPattern = regexp.MustCompile(`\b(\d{1,2}) ([A-Za-z]+)\.? (\d{3,4})\b`)
	qualifierPattern    = regexp.MustCompile(`(?i)\b(about|before|after)\b`)
)

var monthNames = []string{
	"January", "February", "March", "April", "May", "June",
	"July", "August", "September", "October", "November", "December",
}

var qualifiers = map[string]string{
	"about":  "ABT",
	"before": "BEF",
	"after":  "AFT",
}

// SanitizeDate rewrites a free-text date toward GEDCOM form. A date holding
// "<day> <month> <year>" with a known month is reduced to exactly that, with
// the month abbreviated ("about 28 June 2024" becomes "28 Jun 2024").
// Otherwise the qualifiers about, before and after become ABT, BEF and AFT
// and the rest passes through unchanged.
func SanitizeDate(date string) string {
	date = strings.TrimSpace(date)
	for _, parts := range dayMonthYearPattern.FindAllStringSubmatch(date, -1) {
		if abbrev, ok := monthAbbrev(parts[2]); ok {
			return parts[1] + " " + abbrev + " " + parts[3]
		}
	}
	return qualifierPattern.ReplaceAllStringFunc(date, func(word string) string {
		return qualifiers[textutil.FoldKey(word)]
	})
}

// monthAbbrev maps a full or abbreviated English month name to its
// three-letter form.
func monthAbbrev(word string) (string, bool) {
	key := textutil.FoldKey(word)
	if len(key) < 3 {
		return "", false
	}
	for _, name := range monthNames {
		if strings.HasPrefix(textutil.FoldKey(name), key) {
			return name[:3], true
		}
	}
	return "", false
}

// IsLiving reports whether a date is the "Living" placeholder used for
// people who have not died.
func IsLiving(date string) bool {
	return strings.EqualFold(strings.TrimSpace(date), "Living")
}

// FormatDate renders t as "<day> <Mon> <year>", for example "28 Jun 2024".
func FormatDate(t time.Time) string {
	return t.Format("2 Jan 2006")
}
