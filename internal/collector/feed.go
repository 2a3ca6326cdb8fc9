package collector

import (
	"bytes"
	"fmt"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/mmcdole/gofeed"
)

// ExtractFeed parses an RSS/Atom document and maps every item to a Candidate.
func ExtractFeed(raw []byte, feedURL string, src SourceConfig) ([]Candidate, error) {
	feed, err := gofeed.NewParser().Parse(bytes.NewReader(raw))
	if err != nil {
		return nil, fmt.Errorf("parse feed %s: %w", feedURL, err)
	}

	out := make([]Candidate, 0, len(feed.Items))
	for _, item := range feed.Items {
		if item == nil {
			continue
		}
		out = append(out, feedCandidate(item, feedURL, src))
	}
	return out, nil
}

func feedCandidate(item *gofeed.Item, feedURL string, src SourceConfig) Candidate {
	desc := htmlFragment(item.Description)

	c := Candidate{
		// gofeed has already decoded entities in titles, so a literal "<" is text
		Title:    cleanText(item.Title),
		Summary:  htmlToText(item.Description),
		Content:  htmlToText(item.Content),
		Link:     resolveURL(src.Origin, itemLink(item)),
		Selector: feedURL,
	}
	if t, ok := itemPublished(item); ok {
		c.Published = t
	}
	for _, img := range itemImages(item, desc) {
		c.Images = appendDistinct(c.Images, resolveURL(src.Origin, img))
	}
	return c
}

func itemLink(item *gofeed.Item) string {
	if link := strings.TrimSpace(item.Link); link != "" {
		return link
	}
	for _, l := range item.Links {
		if l = strings.TrimSpace(l); l != "" {
			return l
		}
	}
	// some feeds only carry the permalink in guid
	if strings.HasPrefix(item.GUID, "http://") || strings.HasPrefix(item.GUID, "https://") {
		return item.GUID
	}
	return ""
}

func itemPublished(item *gofeed.Item) (time.Time, bool) {
	if item.PublishedParsed != nil {
		return *item.PublishedParsed, true
	}
	if item.UpdatedParsed != nil {
		return *item.UpdatedParsed, true
	}
	return parseTime(item.Published)
}

// itemImages lists image URLs in preference order: enclosures, media
// elements, the item image, then <img> tags inside the description.
func itemImages(item *gofeed.Item, desc *goquery.Document) []string {
	var out []string
	for _, enc := range item.Enclosures {
		if enc == nil {
			continue
		}
		if enc.Type == "" || strings.HasPrefix(enc.Type, "image/") {
			out = append(out, enc.URL)
		}
	}
	if media, ok := item.Extensions["media"]; ok {
		for _, name := range []string{"content", "thumbnail"} {
			for _, ext := range media[name] {
				if medium := ext.Attrs["medium"]; medium != "" && medium != "image" {
					continue
				}
				out = append(out, ext.Attrs["url"])
			}
		}
	}
	if item.Image != nil {
		out = append(out, item.Image.URL)
	}
	if desc != nil {
		desc.Find("img").Each(func(_ int, s *goquery.Selection) {
			for _, attr := range imageAttrs {
				if v, ok := s.Attr(attr); ok && usableAttr(v) {
					out = append(out, v)
					return
				}
			}
		})
	}
	return out
}
