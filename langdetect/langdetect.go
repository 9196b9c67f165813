// Package langdetect wraps whatlanggo behind the metrics.Detector
// capability. Detection runs fully offline; when the capability is not
// wanted the engine is simply built with a nil detector.
package langdetect

import (
	"github.com/abadojack/whatlanggo"
)

// minConfidence is whatlanggo's reliability cutoff below which we report
// no detection rather than guess.
const minConfidence = 0.5

type Detector struct{}

// New returns a whatlanggo-backed detector.
func New() *Detector {
	return &Detector{}
}

// Detect returns the ISO 639-1 code of text, or ok=false when the text is
// empty or detection confidence is too low.
func (d *Detector) Detect(text string) (string, bool) {
	if text == "" {
		return "", false
	}
	info := whatlanggo.Detect(text)
	if info.Lang == -1 || info.Confidence < minConfidence {
		return "", false
	}
	code := info.Lang.Iso6391()
	if code == "" {
		return "", false
	}
	return code, true
}
