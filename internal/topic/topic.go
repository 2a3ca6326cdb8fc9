// Package topic assigns one label from a fixed topic table to an article.
package topic

import (
	"regexp"
	"strings"
)

// General is returned when nothing in the tables matches.
const General = "general"

// Entry is one row of the topic table. Order is significant: URL patterns
// are tried top-down and keyword ties go to the earlier row.
type Entry struct {
	Name        string
	URLPatterns []string
	Keywords    []string
}

// Table is the versioned classification data.
var Table = []Entry{
	{
		Name:        "politics",
		URLPatterns: []string{"/politics/", "/india/", "/elections/"},
		Keywords: []string{
			"minister", "government", "parliament", "election", "modi", "congress",
			"bjp", "political", "vote", "democracy", "cabinet", "opposition",
			"assembly", "party", "manifesto", "campaign",
		},
	},
	{
		Name:        "business",
		URLPatterns: []string{"/business/", "/markets/", "/economy/"},
		Keywords: []string{
			"market", "economy", "stock", "company", "business", "trade",
			"investment", "profit", "revenue", "startup", "industry", "corporate",
			"shares", "investor", "rupee", "banking",
		},
	},
	{
		Name:        "technology",
		URLPatterns: []string{"/tech/", "/technology/", "/gadgets/"},
		Keywords: []string{
			"tech", "technology", "digital", "software", "ai", "artificial intelligence",
			"app", "smartphone", "cyber", "internet", "online", "innovation",
			"computing", "robot", "5g", "blockchain",
		},
	},
	{
		Name:        "sports",
		URLPatterns: []string{"/sport/", "/cricket/", "/football/"},
		Keywords: []string{
			"cricket", "football", "sport", "match", "tournament", "championship",
			"player", "team", "game", "olympic", "athlete", "racing",
			"score", "win", "trophy", "ipl", "world cup",
		},
	},
	{
		Name:        "entertainment",
		URLPatterns: []string{"/entertainment/", "/movies/", "/music/"},
		Keywords: []string{
			"movie", "film", "actor", "actress", "bollywood", "hollywood",
			"cinema", "music", "song", "celebrity", "entertainment", "star",
			"director", "show", "drama", "concert",
		},
	},
	{
		Name:        "agriculture",
		URLPatterns: []string{"/agriculture/", "/rural/", "/agri-business/"},
		Keywords: []string{
			"farm", "agriculture", "crop", "farmer", "harvest", "cultivation",
			"agricultural", "irrigation", "monsoon", "rural", "soil", "seed",
			"produce", "mandi", "kisan", "food grain",
		},
	},
	{
		Name:        "health",
		URLPatterns: []string{"/health/", "/wellness/", "/fitness/"},
		Keywords: []string{
			"health", "medical", "hospital", "doctor", "disease", "treatment",
			"patient", "medicine", "healthcare", "virus", "vaccine", "surgery",
			"clinic", "wellness", "covid", "pandemic",
		},
	},
	{
		Name:        "education",
		URLPatterns: []string{"/education/", "/students/", "/academics/"},
		Keywords: []string{
			"education", "school", "college", "university", "student", "exam",
			"academic", "course", "teacher", "learning", "study", "degree",
			"campus", "admission", "board", "ugc",
		},
	},
	{
		Name:        "environment",
		URLPatterns: []string{"/environment/", "/climate/", "/earth/"},
		Keywords: []string{
			"environment", "climate", "pollution", "green", "sustainable", "renewable",
			"energy", "carbon", "wildlife", "forest", "conservation", "ecology",
			"biodiversity", "waste", "solar", "clean",
		},
	},
	{
		Name:        "crime",
		URLPatterns: []string{"/crime/", "/legal/", "/court/"},
		Keywords: []string{
			"crime", "police", "arrest", "murder", "investigation", "court",
			"criminal", "law", "security", "theft", "scam", "fraud",
			"prison", "case", "charge", "probe",
		},
	},
}

type compiledEntry struct {
	name     string
	patterns []string
	keywords []*regexp.Regexp
}

var compiled = compile(Table)

func compile(table []Entry) []compiledEntry {
	out := make([]compiledEntry, 0, len(table))
	for _, e := range table {
		ce := compiledEntry{name: e.Name, patterns: e.URLPatterns}
		for _, kw := range e.Keywords {
			// whole word, case-insensitive; a plural "s"/"es" counts as the same word
			ce.keywords = append(ce.keywords, regexp.MustCompile(`(?i)\b`+regexp.QuoteMeta(kw)+`(?:e?s)?\b`))
		}
		out = append(out, ce)
	}
	return out
}

// Classify returns the topic for an article. A URL pattern match wins
// outright; otherwise the keyword counts over title and body decide.
func Classify(title, url, body string) string {
	if name, ok := byURL(url); ok {
		return name
	}
	return byKeywords(strings.ToLower(title + " " + body))
}

func byURL(url string) (string, bool) {
	lower := strings.ToLower(url)
	for _, e := range compiled {
		for _, p := range e.patterns {
			if strings.Contains(lower, p) {
				return e.name, true
			}
		}
	}
	return "", false
}

func byKeywords(text string) string {
	best, bestScore := General, 0
	for i, score := range scores(text) {
		if score > bestScore {
			best, bestScore = compiled[i].name, score
		}
	}
	return best
}

// scores counts keyword hits per table row of lowercased text.
func scores(text string) []int {
	out := make([]int, len(compiled))
	for i, e := range compiled {
		for _, re := range e.keywords {
			out[i] += len(re.FindAllStringIndex(text, -1))
		}
	}
	return out
}
