package collector

import (
	"bytes"
	"fmt"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
)

const selfSelector = "self"

var imageAttrs = []string{"data-src", "data-lazy-src", "data-original", "src"}

// ParsePage loads raw HTML into a document. The document is only read afterwards.
func ParsePage(raw []byte) (*goquery.Document, error) {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(raw))
	if err != nil {
		return nil, fmt.Errorf("parse html: %w", err)
	}
	return doc, nil
}

// ExtractPage applies every container selector of src to doc, in order, and
// reduces each matched container to a Candidate. Overlapping matches are
// expected; the deduplicator collapses them later.
func ExtractPage(doc *goquery.Document, src SourceConfig) []Candidate {
	var out []Candidate
	for _, sel := range src.Selectors.Containers {
		doc.Find(sel).Each(func(_ int, s *goquery.Selection) {
			out = append(out, pageCandidate(s, sel, src))
		})
	}
	return out
}

func pageCandidate(s *goquery.Selection, containerSel string, src SourceConfig) Candidate {
	c := Candidate{
		Title:    firstText(s, src.Selectors.Title),
		Summary:  firstText(s, src.Selectors.Summary),
		Link:     resolveURL(src.Origin, firstAttr(s, src.Selectors.Link, "href")),
		Selector: containerSel,
	}
	if img := firstAttr(s, src.Selectors.Image, imageAttrs...); img != "" {
		c.Images = appendDistinct(c.Images, resolveURL(src.Origin, img))
	}
	if t, ok := firstTime(s, src.Selectors.Published); ok {
		c.Published = t
	}
	return c
}

// scope resolves one sub-selector relative to the container.
func scope(s *goquery.Selection, query string) *goquery.Selection {
	query = strings.TrimSpace(query)
	if query == selfSelector {
		return s
	}
	if strings.HasPrefix(query, "closest(") {
		end := strings.Index(query, ")")
		if end < 0 {
			return s.Slice(0, 0)
		}
		anc := s.Closest(query[len("closest("):end])
		rest := strings.TrimSpace(query[end+1:])
		if rest == "" {
			return anc
		}
		return anc.Find(rest)
	}
	return s.Find(query)
}

func firstText(s *goquery.Selection, queries []string) string {
	for _, q := range queries {
		if t := cleanText(scope(s, q).First().Text()); t != "" {
			return t
		}
	}
	return ""
}

// firstAttr returns the first non-empty value of any of attrs, trying each
// sub-selector in order and each matched element in document order.
func firstAttr(s *goquery.Selection, queries []string, attrs ...string) string {
	for _, q := range queries {
		var found string
		scope(s, q).EachWithBreak(func(_ int, el *goquery.Selection) bool {
			for _, attr := range attrs {
				if v, ok := el.Attr(attr); ok && usableAttr(v) {
					found = strings.TrimSpace(v)
					return false
				}
			}
			return true
		})
		if found != "" {
			return found
		}
	}
	return ""
}

// usableAttr filters out lazy-load placeholders.
func usableAttr(v string) bool {
	v = strings.TrimSpace(v)
	return v != "" && !strings.HasPrefix(strings.ToLower(v), "data:")
}

func firstTime(s *goquery.Selection, queries []string) (time.Time, bool) {
	for _, q := range queries {
		el := scope(s, q).First()
		if el.Length() == 0 {
			continue
		}
		for _, attr := range []string{"datetime", "content"} {
			if v, ok := el.Attr(attr); ok {
				if t, ok := parseTime(v); ok {
					return t, true
				}
			}
		}
		if t, ok := parseTime(el.Text()); ok {
			return t, true
		}
	}
	return time.Time{}, false
}
