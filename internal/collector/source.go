package collector

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/LJTian/NewsPulse/internal/article"
	"gopkg.in/yaml.v3"
)

// Kind tells the fetcher how to read a source's documents.
type Kind string

const (
	KindPage Kind = "page"
	KindFeed Kind = "feed"
)

const (
	defaultTimeout        = 10 * time.Second
	defaultMinTitleLength = 15
)

// Selectors are ordered lists of CSS selectors for HTML sources. Every
// container selector is applied; for each field the first non-empty match wins.
// "self" addresses the container itself and "closest(X) Y" searches Y inside
// the nearest ancestor matching X.
type Selectors struct {
	Containers []string `yaml:"containers" json:"containers"`
	Title      []string `yaml:"title" json:"title"`
	Link       []string `yaml:"link" json:"link"`
	Summary    []string `yaml:"summary" json:"summary"`
	Image      []string `yaml:"image" json:"image"`
	Published  []string `yaml:"published" json:"published"`
}

// SourceConfig describes one news source.
type SourceConfig struct {
	ID      string   `yaml:"id" json:"id"`
	Name    string   `yaml:"name" json:"name"`
	Kind    Kind     `yaml:"kind" json:"kind"`
	Origin  string   `yaml:"origin" json:"origin"`
	URLs    []string `yaml:"urls" json:"urls"`
	Aliases []string `yaml:"aliases" json:"aliases,omitempty"`
	// Headers only make the requests look like a browser.
	Headers        map[string]string `yaml:"headers" json:"-"`
	Timeout        time.Duration     `yaml:"timeout" json:"-"`
	Attempts       int               `yaml:"attempts" json:"-"`
	InitialDelay   time.Duration     `yaml:"initial_delay" json:"-"`
	TitleDedup     bool              `yaml:"title_dedup" json:"-"`
	MinTitleLength int               `yaml:"min_title_length" json:"-"`
	Selectors      Selectors         `yaml:"selectors" json:"-"`
}

// reservedKeys are route segments under /news/ that sources may not claim.
var reservedKeys = map[string]bool{"all": true}

type catalogFile struct {
	Sources []SourceConfig `yaml:"sources"`
}

//go:embed sources.yaml
var defaultCatalog []byte

// DefaultCatalog returns the built-in sources.
func DefaultCatalog() ([]SourceConfig, error) {
	return ParseCatalog(defaultCatalog)
}

// LoadCatalog reads sources from path, or the built-in catalog when path is empty.
func LoadCatalog(path string) ([]SourceConfig, error) {
	if path == "" {
		return DefaultCatalog()
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read source catalog: %w", err)
	}
	return ParseCatalog(data)
}

// ParseCatalog decodes, defaults and validates a YAML catalog.
func ParseCatalog(data []byte) ([]SourceConfig, error) {
	var file catalogFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("decode source catalog: %w", err)
	}
	if len(file.Sources) == 0 {
		return nil, errors.New("source catalog is empty")
	}

	seen := make(map[string]string)
	for i := range file.Sources {
		src := &file.Sources[i]
		src.applyDefaults()
		if err := src.Validate(); err != nil {
			return nil, err
		}
		for _, key := range src.Keys() {
			if reservedKeys[key] {
				return nil, fmt.Errorf("source %q: key %q is reserved", src.ID, key)
			}
			if other, ok := seen[key]; ok {
				return nil, fmt.Errorf("source %q: key %q already used by %q", src.ID, key, other)
			}
			seen[key] = src.ID
		}
	}
	return file.Sources, nil
}

func (s *SourceConfig) applyDefaults() {
	if s.Timeout <= 0 {
		s.Timeout = defaultTimeout
	}
	if s.MinTitleLength <= 0 {
		s.MinTitleLength = defaultMinTitleLength
	}
	s.Origin = strings.TrimRight(s.Origin, "/")
}

// Validate reports configuration mistakes that would make a source unusable.
func (s SourceConfig) Validate() error {
	if s.ID == "" {
		return errors.New("source without id")
	}
	if s.Name == "" {
		return fmt.Errorf("source %q: name is required", s.ID)
	}
	if s.Kind != KindPage && s.Kind != KindFeed {
		return fmt.Errorf("source %q: unknown kind %q", s.ID, s.Kind)
	}
	if !article.IsAbsoluteURL(s.Origin) {
		return fmt.Errorf("source %q: origin %q is not an absolute URL", s.ID, s.Origin)
	}
	if len(s.URLs) == 0 {
		return fmt.Errorf("source %q: no urls", s.ID)
	}
	for _, u := range s.URLs {
		if !article.IsAbsoluteURL(u) {
			return fmt.Errorf("source %q: url %q is not absolute", s.ID, u)
		}
	}
	if s.Kind == KindPage {
		if len(s.Selectors.Containers) == 0 || len(s.Selectors.Title) == 0 || len(s.Selectors.Link) == 0 {
			return fmt.Errorf("source %q: page sources need container, title and link selectors", s.ID)
		}
	}
	return nil
}

// Keys returns the id followed by any aliases.
func (s SourceConfig) Keys() []string {
	return append([]string{s.ID}, s.Aliases...)
}
