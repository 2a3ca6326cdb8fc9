package processor

import (
	"github.com/LJTian/NewsPulse/internal/article"
)

// Batch is what one source produced in a run.
type Batch struct {
	SourceID string
	Articles []article.Article
}

// Merge concatenates batches in the given order and keeps only the first
// article seen for each URL. dropped counts the removed repeats per source.
func Merge(batches []Batch) (out []article.Article, dropped map[string]int) {
	total := 0
	for _, b := range batches {
		total += len(b.Articles)
	}
	out = make([]article.Article, 0, total)
	dropped = make(map[string]int)
	seen := make(map[string]struct{}, total)

	for _, b := range batches {
		for _, a := range b.Articles {
			if _, ok := seen[a.URL]; ok {
				dropped[b.SourceID]++
				continue
			}
			seen[a.URL] = struct{}{}
			out = append(out, a)
		}
	}
	return out, dropped
}
