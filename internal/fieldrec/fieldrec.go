package fieldrec

import (
	"strings"
	"time"
)

// EventFields carries a free-text date and place. Either may be empty.
type EventFields struct {
	Date  string `json:"date,omitempty"`
	Place string `json:"place,omitempty"`
}

// Empty reports whether neither date nor place is present.
func (e *EventFields) Empty() bool {
	return e == nil || (strings.TrimSpace(e.Date) == "" && strings.TrimSpace(e.Place) == "")
}

// Normalize returns nil for an empty event so absence collapses to no record.
func (e *EventFields) Normalize() *EventFields {
	if e.Empty() {
		return nil
	}
	return &EventFields{Date: strings.TrimSpace(e.Date), Place: strings.TrimSpace(e.Place)}
}

// PersonFields is one scraped person, either a relative or the focal vitals.
type PersonFields struct {
	PID         string       `json:"pID"`
	FullName    string       `json:"fullname"`
	Lifespan    string       `json:"lifespan,omitempty"`
	Gender      string       `json:"gender,omitempty"`
	Birth       *EventFields `json:"birth,omitempty"`
	Christening *EventFields `json:"christening,omitempty"`
	Death       *EventFields `json:"death,omitempty"`
	Burial      *EventFields `json:"burial,omitempty"`
}

// ID returns the trimmed person id, or "" for a nil record.
func (p *PersonFields) ID() string {
	if p == nil {
		return ""
	}
	return strings.TrimSpace(p.PID)
}

// Household is one couple card: two parents, the marriage, and the children
// listed beneath them in document order.
type Household struct {
	Husband  *PersonFields   `json:"husband,omitempty"`
	Wife     *PersonFields   `json:"wife,omitempty"`
	Marriage *EventFields    `json:"marriage,omitempty"`
	Children []*PersonFields `json:"children,omitempty"`
}

// Source is the provenance of a page snapshot.
type Source struct {
	Title  string    `json:"title"`
	URL    string    `json:"url"`
	PID    string    `json:"pid"`
	Viewed time.Time `json:"viewed"`
}

// Snapshot is everything scraped from one page view.
type Snapshot struct {
	Source     Source        `json:"source"`
	Vitals     *PersonFields `json:"vitals,omitempty"`
	Households []Household   `json:"households,omitempty"`
}

// FocalID returns the focal individual's id, preferring the source pid and
// falling back to the id derived from the source URL.
func (s *Snapshot) FocalID() string {
	if s == nil {
		return ""
	}
	if pid := strings.TrimSpace(s.Source.PID); pid != "" {
		return pid
	}
	return PIDFromURL(s.Source.URL)
}

// PIDFromURL extracts the person id that follows "details/" in a person page URL.
func PIDFromURL(rawURL string) string {
	_, tail, ok := strings.Cut(rawURL, "details/")
	if !ok {
		return ""
	}
	if i := strings.IndexAny(tail, "/?#"); i >= 0 {
		tail = tail[:i]
	}
	return strings.TrimSpace(tail)
}
