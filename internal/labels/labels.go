// Package labels provides the display strings shown around the game in
// each supported language. The game engine never reads them; they are an
// opaque set handed to the renderer.
package labels

import (
	"embed"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed locales/*.yaml
var localeFS embed.FS

// Locale identifies a language.
type Locale string

const (
	English Locale = "en"
	Spanish Locale = "es"
)

// Default is the locale used when none is configured.
const Default = English

// Set is one language's labels.
type Set struct {
	Title      string `yaml:"title"`
	Init       string `yaml:"init"`
	Score      string `yaml:"score"`
	HighScore  string `yaml:"high_score"`
	Stability  string `yaml:"stability"`
	Breach     string `yaml:"breach"`
	Restart    string `yaml:"restart"`
	Desc       string `yaml:"desc"`
	Stable     string `yaml:"stable"`
	Overflow   string `yaml:"overflow"`
	TooSmall   string `yaml:"too_small"`
	Resize     string `yaml:"resize"`
	Scoreboard string `yaml:"scoreboard"`
	NoRuns     string `yaml:"no_runs"`

	Locale Locale `yaml:"-"`
}

// Available returns the supported locales in toggle order.
func Available() []Locale {
	return []Locale{English, Spanish}
}

// Parse converts a user-supplied name ("en", "ES", " es ") to a Locale.
func Parse(s string) (Locale, error) {
	l := Locale(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range Available() {
		if l == known {
			return l, nil
		}
	}
	return "", fmt.Errorf("labels: unsupported locale %q", s)
}

// Next returns the locale after l in toggle order, wrapping around.
func (l Locale) Next() Locale {
	all := Available()
	for i, known := range all {
		if known == l {
			return all[(i+1)%len(all)]
		}
	}
	return Default
}

// Load reads the embedded label set for a locale.
func Load(l Locale) (Set, error) {
	data, err := localeFS.ReadFile("locales/" + string(l) + ".yaml")
	if err != nil {
		return Set{}, fmt.Errorf("labels: no label set for %q: %w", l, err)
	}

	var set Set
	if err := yaml.Unmarshal(data, &set); err != nil {
		return Set{}, fmt.Errorf("labels: cannot parse %q: %w", l, err)
	}
	set.Locale = l
	return set, nil
}

// MustLoad is like Load but panics on error. The embedded sets are part of
// the binary, so a failure is a build defect.
func MustLoad(l Locale) Set {
	set, err := Load(l)
	if err != nil {
		panic(err)
	}
	return set
}
