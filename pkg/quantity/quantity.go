// Package quantity finds count expressions in normalized comment text and
// reduces them to one representative integer.
package quantity

import (
	"regexp"
	"strconv"
)

// The pattern classes are applied to the whole comment, in this order.
// Counts from every class are pooled and the maximum wins: later or larger
// numbers typically describe the final or peak count of a session.
var (
	counterPattern   = regexp.MustCompile(`(\d+)\s*(?:匹|杯|尾|個|つ)`)
	aboutPattern     = regexp.MustCompile(`約\s*(\d+)`)
	qualifierPattern = regexp.MustCompile(`(\d+)\s*(?:くらい|ぐらい|ほど|程度|位)`)
	perUnitPattern   = regexp.MustCompile(`(\d+)\s*(?:ずつ|づつ)`)
	rangePattern     = regexp.MustCompile(`(\d+)\s*(?:〜|~)\s*(\d+)`)
	kanjiPattern     = regexp.MustCompile(`(二|三|四|五|六|七|八|九|十)\s*(?:匹|杯|尾|個|つ)`)
	zeroPattern      = regexp.MustCompile(`ゼロ|0匹|0杯`)
)

var kanjiValues = map[string]int{
	"二": 2, "三": 3, "四": 4, "五": 5, "六": 6,
	"七": 7, "八": 8, "九": 9, "十": 10,
}

// Extract returns the representative quantity mentioned in text, if any.
// The boolean distinguishes "no count mentioned" from an explicit zero;
// callers must not conflate the two.
func Extract(text string) (int, bool) {
	var candidates []int

	for _, p := range []*regexp.Regexp{counterPattern, aboutPattern, qualifierPattern, perUnitPattern} {
		for _, m := range p.FindAllStringSubmatch(text, -1) {
			if n, err := strconv.Atoi(m[1]); err == nil {
				candidates = append(candidates, n)
			}
		}
	}

	// Ranges reduce to the integer average, rounded down.
	for _, m := range rangePattern.FindAllStringSubmatch(text, -1) {
		lo, err1 := strconv.Atoi(m[1])
		hi, err2 := strconv.Atoi(m[2])
		if err1 == nil && err2 == nil {
			candidates = append(candidates, (lo+hi)/2)
		}
	}

	for _, m := range kanjiPattern.FindAllStringSubmatch(text, -1) {
		if n, ok := kanjiValues[m[1]]; ok {
			candidates = append(candidates, n)
		}
	}

	// An orthographic zero is a real report of zero, not an absent count.
	if zeroPattern.MatchString(text) {
		candidates = append(candidates, 0)
	}

	if len(candidates) == 0 {
		return 0, false
	}

	max := candidates[0]
	for _, n := range candidates[1:] {
		if n > max {
			max = n
		}
	}
	return max, true
}
