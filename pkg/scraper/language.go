package scraper

import (
	"github.com/pemistahl/lingua-go"
)

// Screener flags comments that are not written in Japanese. Link spam on
// the board is usually English; genuine reports are Japanese.
type Screener struct {
	detector lingua.LanguageDetector
}

func NewScreener() *Screener {
	detector := lingua.NewLanguageDetectorBuilder().
		FromLanguages(lingua.Japanese, lingua.English).
		Build()
	return &Screener{detector: detector}
}

// Foreign reports whether the text is confidently detected as something
// other than Japanese. Undetectable text passes as Japanese; the detector
// is unreliable on very short strings and a false skip loses real data.
func (s *Screener) Foreign(text string) bool {
	lang, ok := s.detector.DetectLanguageOf(text)
	if !ok {
		return false
	}
	return lang != lingua.Japanese
}
