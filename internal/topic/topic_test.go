package topic

import (
	"strings"
	"testing"
)

func TestClassifyURLPatternWins(t *testing.T) {
	got := Classify("A quiet afternoon by the river", "https://www.thehindu.com/sport/article1.ece", "")
	if got != "sports" {
		t.Fatalf("Classify with /sport/ url = %q, want sports", got)
	}

	// keywords point elsewhere but the URL decides
	got = Classify("Election results and cabinet reshuffle", "https://example.com/Tech/story", "")
	if got != "technology" {
		t.Fatalf("URL match should short-circuit keyword scoring, got %q", got)
	}
}

func TestClassifyKeywordScoring(t *testing.T) {
	cases := []struct {
		title, body, want string
	}{
		{"markets surge as tech stocks rally", "", "business"},
		{"Hospital reports new vaccine trial", "doctors say the patient recovered", "health"},
		{"Farmers await monsoon before harvest", "", "agriculture"},
		{"Police arrest suspect in theft case", "", "crime"},
		{"Nothing to see here today", "", General},
	}
	for _, c := range cases {
		if got := Classify(c.title, "https://example.com/news/1", c.body); got != c.want {
			t.Fatalf("Classify(%q) = %q, want %q (scores %v)", c.title, got, c.want, scores(strings.ToLower(c.title+" "+c.body)))
		}
	}
}

func TestClassifyTieGoesToEarlierTopic(t *testing.T) {
	// sports (cricket) and entertainment (film) both score 1
	got := Classify("Cricket and film night", "https://example.com/a", "")
	if got != "sports" {
		t.Fatalf("tie should resolve to the earlier topic, got %q", got)
	}
	// business (market) and crime (court) both score 1; business comes first
	got = Classify("Court hears market plea", "https://example.com/b", "")
	if got != "business" {
		t.Fatalf("tie should resolve to business, got %q", got)
	}
}

func TestClassifyMatchesWholeWordsOnly(t *testing.T) {
	// "said" must not count as "ai", "standard" not as "star"
	got := Classify("Officials said the standard was upheld", "https://example.com/x", "")
	if got != General {
		t.Fatalf("substring matches should not count, got %q (scores %v)", got, scores("officials said the standard was upheld"))
	}
}

func TestClassifyIsDeterministic(t *testing.T) {
	title, url, body := "Startup raises funds for AI app", "https://example.com/n", "investors back the company"
	first := Classify(title, url, body)
	for i := 0; i < 50; i++ {
		if got := Classify(title, url, body); got != first {
			t.Fatalf("run %d: Classify = %q, want %q", i, got, first)
		}
	}
}

func TestTableOrder(t *testing.T) {
	if len(Table) != 10 || Table[0].Name != "politics" || Table[9].Name != "crime" {
		t.Fatalf("unexpected topic table order")
	}
}

func TestScoresCountEveryKeywordHit(t *testing.T) {
	got := scores("stock markets and more stocks")
	// business is the second row
	if got[1] != 3 {
		t.Fatalf("business score = %d, want 3 (%v)", got[1], got)
	}
}
