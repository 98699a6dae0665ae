// Package detect runs the semantic cue detectors over normalized comment
// text. Every detector is an independent pure predicate backed by one
// versioned rule catalogue; none consults another's result.
package detect

import (
	"regexp"
	"unicode/utf8"

	ahocorasick "github.com/cloudflare/ahocorasick"
)

// Category names one cue group in the rule catalogue.
type Category string

const (
	Negation  Category = "negation"
	Small     Category = "small"
	Normal    Category = "normal"
	Large     Category = "large"
	VeryLarge Category = "very_large"

	Weather  Category = "weather"
	Movement Category = "movement"
	Facility Category = "facility"
	Lodging  Category = "lodging"
	Link     Category = "link"
	Question Category = "question"
)

// Signals is the fixed set of independent detector outputs for one comment.
// Multiple may be true at once; the scorer resolves precedence.
type Signals struct {
	Negation  bool
	Small     bool
	Normal    bool
	Large     bool
	VeryLarge bool
	Unrelated bool
}

// minReportLength is the shortest comment that can count as a report when it
// carries no squid or scooping vocabulary.
const minReportLength = 15

var (
	squidVocab   = regexp.MustCompile(`イカ|いか|ホタルイカ|掬|すくい|匹|杯`)
	harvestVocab = regexp.MustCompile(`匹|杯|獲れ|取れ|収穫|掬|すくい`)

	// A question that itself reports an empty beach ("none here, right?")
	// is still a report. This carve-out is deliberate; keep it.
	negativeReport = regexp.MustCompile(`(?:いない|居ない|ゼロ|無い|なし)(?:です|でした)(?:か|ね|よ)`)
)

type compiledGroup struct {
	category Category
	patterns []*regexp.Regexp
}

// Catalogue is the compiled rule table: one Aho-Corasick automaton over all
// literal keywords plus per-group compiled patterns.
type Catalogue struct {
	matcher    *ahocorasick.Matcher
	kwCategory []Category
	groups     []compiledGroup
}

// NewCatalogue compiles the versioned rule table.
func NewCatalogue() *Catalogue {
	c := &Catalogue{}

	var keywords []string
	for _, g := range ruleTable {
		cg := compiledGroup{category: g.Category}
		for _, p := range g.Patterns {
			cg.patterns = append(cg.patterns, regexp.MustCompile(p))
		}
		c.groups = append(c.groups, cg)

		for _, kw := range g.Keywords {
			keywords = append(keywords, kw)
			c.kwCategory = append(c.kwCategory, g.Category)
		}
	}

	c.matcher = ahocorasick.NewStringMatcher(keywords)
	return c
}

// hits returns the cue categories matched anywhere in text.
func (c *Catalogue) hits(text string) map[Category]bool {
	found := make(map[Category]bool)

	for _, idx := range c.matcher.Match([]byte(text)) {
		if idx < len(c.kwCategory) {
			found[c.kwCategory[idx]] = true
		}
	}

	for _, g := range c.groups {
		if found[g.category] {
			continue
		}
		for _, p := range g.patterns {
			if p.MatchString(text) {
				found[g.category] = true
				break
			}
		}
	}

	return found
}

// Detect evaluates all detectors over normalized text.
func (c *Catalogue) Detect(text string) Signals {
	hits := c.hits(text)

	return Signals{
		Negation:  hits[Negation],
		Small:     hits[Small],
		Normal:    hits[Normal],
		Large:     hits[Large],
		VeryLarge: hits[VeryLarge],
		Unrelated: unrelated(text, hits),
	}
}

// unrelated decides whether a comment is off-topic for swarm reporting.
func unrelated(text string, hits map[Category]bool) bool {
	if utf8.RuneCountInString(text) < minReportLength && !squidVocab.MatchString(text) {
		return true
	}

	if hits[Question] && !negativeReport.MatchString(text) {
		return true
	}

	if hits[Link] {
		return true
	}

	offTopic := 0
	for _, cat := range []Category{Weather, Movement, Facility, Lodging} {
		if hits[cat] {
			offTopic++
		}
	}
	return offTopic >= 2 && !harvestVocab.MatchString(text)
}
