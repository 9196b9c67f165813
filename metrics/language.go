package metrics

import (
	"unicode/utf8"

	"trapcheck/types"
)

// minLanguageTextLen is the minimum text length, in characters, for
// language detection.
// Shorter snippets give unreliable results, so they are skipped rather
// than guessed at.
const minLanguageTextLen = 30

// touristLanguages are the languages dominant among international visitors.
// A positive cohort skewed toward these while the negative cohort skews
// local suggests two disjoint audiences.
var touristLanguages = map[string]bool{
	"en": true,
	"zh": true,
	"ja": true,
	"ko": true,
}

// Detector reports the ISO 639-1 code of a text sample. It is an optional
// capability: an Engine built with a nil Detector reports every cohort as
// not detected instead of failing the pipeline.
type Detector interface {
	Detect(text string) (lang string, ok bool)
}

// analyzeLanguages builds the language distribution for one cohort. It must
// be run per cohort; merging positive and negative reviews first would
// erase the audience-split signal.
func (e *Engine) analyzeLanguages(reviews []types.Review) types.LanguageStats {
	if e.detector == nil {
		return types.LanguageStats{Detected: false}
	}

	distribution := make(map[string]int)
	total := 0
	for _, r := range reviews {
		if utf8.RuneCountInString(r.Text) <= minLanguageTextLen {
			continue
		}
		lang, ok := e.detector.Detect(r.Text)
		if !ok || lang == "" {
			continue
		}
		distribution[lang]++
		total++
	}

	if total == 0 {
		return types.LanguageStats{Detected: false}
	}

	touristCount := 0
	englishCount := 0
	dominant := ""
	dominantCount := 0
	for lang, count := range distribution {
		if touristLanguages[lang] {
			touristCount += count
		}
		if lang == "en" {
			englishCount = count
		}
		// Ties break alphabetically so the result is deterministic.
		if count > dominantCount || (count == dominantCount && lang < dominant) {
			dominant = lang
			dominantCount = count
		}
	}

	return types.LanguageStats{
		Detected:           true,
		TotalAnalyzed:      total,
		Distribution:       distribution,
		TouristLanguagePct: round1(float64(touristCount) / float64(total) * 100),
		DominantLanguage:   dominant,
		EnglishPct:         round1(float64(englishCount) / float64(total) * 100),
	}
}
