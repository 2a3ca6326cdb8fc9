package collector

import (
	"strings"
	"unicode/utf8"
)

const titlePrefixRunes = 30

// Deduplicator remembers what one fetch run has already accepted.
type Deduplicator struct {
	nearTitles bool
	urls       map[string]struct{}
	titles     []string
}

// NewDeduplicator returns an empty deduplicator. With nearTitles set it also
// rejects repeated or near-identical titles.
func NewDeduplicator(nearTitles bool) *Deduplicator {
	return &Deduplicator{
		nearTitles: nearTitles,
		urls:       make(map[string]struct{}),
	}
}

// Accept reports whether c is new and, if so, records it.
func (d *Deduplicator) Accept(c Candidate) bool {
	if _, ok := d.urls[c.Link]; ok {
		return false
	}
	if d.nearTitles && d.similarTitle(c.Title) {
		return false
	}
	d.urls[c.Link] = struct{}{}
	d.titles = append(d.titles, c.Title)
	return true
}

func (d *Deduplicator) similarTitle(title string) bool {
	long := utf8.RuneCountInString(title) > titlePrefixRunes
	for _, have := range d.titles {
		if have == title {
			return true
		}
		if long && utf8.RuneCountInString(have) > titlePrefixRunes && strings.Contains(title, runePrefix(have, titlePrefixRunes)) {
			return true
		}
	}
	return false
}

func runePrefix(s string, n int) string {
	i := 0
	for pos := range s {
		if i == n {
			return s[:pos]
		}
		i++
	}
	return s
}
