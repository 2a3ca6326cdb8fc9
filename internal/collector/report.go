package collector

import (
	"sort"
	"sync"
	"time"
)

// Sink receives extraction counters. Implementations must be safe for
// concurrent use by several fetchers.
type Sink interface {
	Request(sourceID, url string, attempts int, err error)
	Found(sourceID, selector string, n int)
	Rejected(sourceID, reason string)
	Accepted(sourceID string)
}

// RequestStat is the outcome of one retried download.
type RequestStat struct {
	URL      string `json:"url"`
	OK       bool   `json:"ok"`
	Attempts int    `json:"attempts"`
	Error    string `json:"error,omitempty"`
}

// SourceStats are the counters of one source within a run.
type SourceStats struct {
	Source   string         `json:"source"`
	Requests []RequestStat  `json:"requests"`
	Found    map[string]int `json:"found"`
	Rejected map[string]int `json:"rejected"`
	Accepted int            `json:"accepted"`
}

// Summary is an immutable copy of a Report.
type Summary struct {
	StartedAt  time.Time     `json:"startedAt"`
	FinishedAt time.Time     `json:"finishedAt"`
	Accepted   int           `json:"accepted"`
	Sources    []SourceStats `json:"sources"`
}

// Report collects per-selector and per-request counters for one run.
type Report struct {
	mu      sync.Mutex
	started time.Time
	sources map[string]*SourceStats
}

// NewReport starts an empty report.
func NewReport() *Report {
	return &Report{started: time.Now().UTC(), sources: make(map[string]*SourceStats)}
}

func (r *Report) stats(sourceID string) *SourceStats {
	st, ok := r.sources[sourceID]
	if !ok {
		st = &SourceStats{
			Source:   sourceID,
			Requests: []RequestStat{},
			Found:    make(map[string]int),
			Rejected: make(map[string]int),
		}
		r.sources[sourceID] = st
	}
	return st
}

func (r *Report) Request(sourceID, url string, attempts int, err error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	stat := RequestStat{URL: url, OK: err == nil, Attempts: attempts}
	if err != nil {
		stat.Error = err.Error()
	}
	st := r.stats(sourceID)
	st.Requests = append(st.Requests, stat)
}

func (r *Report) Found(sourceID, selector string, n int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.stats(sourceID).Found[selector] += n
}

func (r *Report) Rejected(sourceID, reason string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.stats(sourceID).Rejected[reason]++
}

func (r *Report) Accepted(sourceID string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.stats(sourceID).Accepted++
}

// Withdrawn moves one previously accepted article of sourceID to the
// rejected counters, for drops that happen after the fetcher returned.
func (r *Report) Withdrawn(sourceID, reason string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	st := r.stats(sourceID)
	if st.Accepted > 0 {
		st.Accepted--
	}
	st.Rejected[reason]++
}

// Summary snapshots the report, sources sorted by id.
func (r *Report) Summary() Summary {
	r.mu.Lock()
	defer r.mu.Unlock()

	sum := Summary{StartedAt: r.started, FinishedAt: time.Now().UTC(), Sources: make([]SourceStats, 0, len(r.sources))}
	for _, st := range r.sources {
		cp := SourceStats{
			Source:   st.Source,
			Requests: append([]RequestStat{}, st.Requests...),
			Found:    make(map[string]int, len(st.Found)),
			Rejected: make(map[string]int, len(st.Rejected)),
			Accepted: st.Accepted,
		}
		for k, v := range st.Found {
			cp.Found[k] = v
		}
		for k, v := range st.Rejected {
			cp.Rejected[k] = v
		}
		sum.Accepted += st.Accepted
		sum.Sources = append(sum.Sources, cp)
	}
	sort.Slice(sum.Sources, func(i, j int) bool { return sum.Sources[i].Source < sum.Sources[j].Source })
	return sum
}

// Source returns the stats for one source, if any were recorded.
func (s Summary) Source(id string) (SourceStats, bool) {
	for _, st := range s.Sources {
		if st.Source == id {
			return st, true
		}
	}
	return SourceStats{}, false
}

type nopSink struct{}

func (nopSink) Request(string, string, int, error) {}
func (nopSink) Found(string, string, int)          {}
func (nopSink) Rejected(string, string)            {}
func (nopSink) Accepted(string)                    {}
