package collector

import (
	"time"
	"unicode/utf8"
)

// Candidate holds the fields extracted for one possible article. Links and
// images are already absolute (or empty when unresolvable).
type Candidate struct {
	Title     string
	Summary   string
	Content   string
	Link      string
	Images    []string
	Published time.Time
	// Selector is the container selector or feed URL that produced it.
	Selector string
}

// Reasons a candidate can be dropped before normalization.
const (
	RejectMissingTitle = "missing_title"
	RejectShortTitle   = "short_title"
	RejectMissingLink  = "missing_link"
	RejectDuplicate    = "duplicate"
	RejectInvalid      = "invalid"
)

// screen returns the reason c cannot become an article, or "".
func screen(c Candidate, minTitle int) string {
	switch {
	case c.Title == "":
		return RejectMissingTitle
	case utf8.RuneCountInString(c.Title) <= minTitle:
		return RejectShortTitle
	case c.Link == "":
		return RejectMissingLink
	}
	return ""
}
