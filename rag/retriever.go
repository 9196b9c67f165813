// Package rag retrieves calibration examples from a curated venue database
// using keyword overlap, so verdict prompts can anchor their scoring against
// known tourist traps and local gems.
package rag

import (
	"encoding/json"
	"fmt"
	"os"
	"regexp"
	"sort"
	"strings"
	"sync"

	"trapcheck/types"
)

// Entry is one curated venue in the calibration database.
type Entry struct {
	ID               string `json:"id"`
	Name             string `json:"name"`
	Location         string `json:"location"`
	Category         string `json:"category"`
	Verdict          string `json:"verdict"`
	TouristTrapScore int    `json:"tourist_trap_score"`
	Confidence       string `json:"confidence"`
	PriceTier        string `json:"price_tier"`
	Summary          string `json:"summary"`
	EmbeddingText    string `json:"embedding_text"`
	RedFlags         []Flag `json:"red_flags"`
	PositiveSignals  []Flag `json:"positive_signals"`
}

// Flag is a typed signal attached to a database entry.
type Flag struct {
	Type   string `json:"type"`
	Detail string `json:"detail"`
}

// Example is the trimmed view of an entry returned to callers.
type Example struct {
	ID              string
	Name            string
	Location        string
	Category        string
	Verdict         string
	Score           int
	Confidence      string
	PriceTier       string
	Summary         string
	RedFlags        []Flag
	PositiveSignals []Flag
}

// CalibrationSet groups examples by verdict for prompt injection.
type CalibrationSet struct {
	Traps []Example
	Gems  []Example
	Mixed []Example
}

// Total reports how many examples were retrieved across all verdicts.
func (s CalibrationSet) Total() int {
	return len(s.Traps) + len(s.Gems) + len(s.Mixed)
}

const summaryMaxLen = 500

var venueCategories = map[types.VenueType][]string{
	types.VenueRestaurant: {"restaurant", "cafe", "bar", "street_food"},
	types.VenueMuseum:     {"attraction", "museum"},
	types.VenueAttraction: {"attraction", "museum"},
	types.VenueTour:       {"attraction", "tour"},
	types.VenueShop:       {"market", "shop"},
}

var wordPattern = regexp.MustCompile(`\b[a-z]{3,}\b`)

var stopwords = map[string]struct{}{
	"the": {}, "and": {}, "for": {}, "are": {}, "but": {}, "not": {},
	"you": {}, "all": {}, "can": {}, "had": {}, "her": {}, "was": {},
	"one": {}, "our": {}, "out": {}, "has": {}, "have": {}, "been": {},
	"were": {}, "they": {}, "this": {}, "that": {}, "with": {}, "from": {},
	"your": {}, "will": {}, "more": {}, "when": {}, "very": {}, "just": {},
	"about": {}, "also": {}, "some": {}, "what": {}, "there": {}, "than": {},
	"into": {}, "them": {}, "would": {}, "could": {}, "which": {}, "their": {},
	"other": {},
}

// Retriever serves calibration examples from an in-memory copy of the
// database. Reload swaps the copy atomically so the cron refresh never
// blocks in-flight retrievals for long.
type Retriever struct {
	path string

	mu      sync.RWMutex
	entries []Entry
}

// NewRetriever loads the database at path. An error leaves the retriever
// unusable; callers should treat it as optional and analyze without
// calibration examples.
func NewRetriever(path string) (*Retriever, error) {
	r := &Retriever{path: path}
	if err := r.Reload(); err != nil {
		return nil, err
	}
	return r, nil
}

// Reload re-reads the database file and replaces the indexed entries.
func (r *Retriever) Reload() error {
	raw, err := os.ReadFile(r.path)
	if err != nil {
		return fmt.Errorf("read rag database: %w", err)
	}
	var doc struct {
		Entries []Entry `json:"entries"`
	}
	if err := json.Unmarshal(raw, &doc); err != nil {
		return fmt.Errorf("parse rag database: %w", err)
	}

	r.mu.Lock()
	r.entries = doc.Entries
	r.mu.Unlock()
	return nil
}

// Size reports how many entries are currently loaded.
func (r *Retriever) Size() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.entries)
}

// RetrieveSimilar returns the n entries most similar to the query,
// optionally restricted to a verdict and to the categories that match
// the venue type.
func (r *Retriever) RetrieveSimilar(query string, n int, verdictFilter string, venueType types.VenueType) []Example {
	r.mu.RLock()
	entries := r.entries
	r.mu.RUnlock()

	queryKeywords := extractKeywords(query)
	categories := venueCategories[venueType]

	candidates := filterEntries(entries, verdictFilter, categories)
	if len(candidates) == 0 {
		// Category filter was too narrow, fall back to verdict only.
		candidates = filterEntries(entries, verdictFilter, nil)
	}

	type scoredEntry struct {
		score float64
		entry Entry
	}
	scored := make([]scoredEntry, 0, len(candidates))
	for _, e := range candidates {
		scored = append(scored, scoredEntry{score: keywordSimilarity(queryKeywords, e), entry: e})
	}
	sort.SliceStable(scored, func(i, j int) bool {
		if scored[i].score != scored[j].score {
			return scored[i].score > scored[j].score
		}
		return scored[i].entry.ID < scored[j].entry.ID
	})

	if n > len(scored) {
		n = len(scored)
	}
	out := make([]Example, 0, n)
	for _, s := range scored[:n] {
		out = append(out, toExample(s.entry))
	}
	return out
}

// RetrieveCalibrationExamples returns a balanced set of examples, up to
// nPerVerdict for each of the trap, gem, and mixed verdicts.
func (r *Retriever) RetrieveCalibrationExamples(query string, venueType types.VenueType, nPerVerdict int) CalibrationSet {
	return CalibrationSet{
		Traps: r.RetrieveSimilar(query, nPerVerdict, "tourist_trap", venueType),
		Gems:  r.RetrieveSimilar(query, nPerVerdict, "local_gem", venueType),
		Mixed: r.RetrieveSimilar(query, nPerVerdict, "mixed", venueType),
	}
}

func filterEntries(entries []Entry, verdict string, categories []string) []Entry {
	var out []Entry
	for _, e := range entries {
		if verdict != "" && e.Verdict != verdict {
			continue
		}
		if len(categories) > 0 && !containsString(categories, e.Category) {
			continue
		}
		out = append(out, e)
	}
	return out
}

func containsString(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}

func toExample(e Entry) Example {
	summary := e.Summary
	if len(summary) > summaryMaxLen {
		summary = summary[:summaryMaxLen]
	}
	return Example{
		ID:              e.ID,
		Name:            e.Name,
		Location:        e.Location,
		Category:        e.Category,
		Verdict:         e.Verdict,
		Score:           e.TouristTrapScore,
		Confidence:      e.Confidence,
		PriceTier:       e.PriceTier,
		Summary:         summary,
		RedFlags:        firstFlags(e.RedFlags, 2),
		PositiveSignals: firstFlags(e.PositiveSignals, 2),
	}
}

func firstFlags(flags []Flag, n int) []Flag {
	if len(flags) > n {
		return flags[:n]
	}
	return flags
}

func extractKeywords(text string) map[string]struct{} {
	keywords := map[string]struct{}{}
	for _, w := range wordPattern.FindAllString(strings.ToLower(text), -1) {
		if _, skip := stopwords[w]; skip {
			continue
		}
		keywords[w] = struct{}{}
	}
	return keywords
}

// keywordSimilarity is a Jaccard score over the query keywords and the
// keywords of the entry's descriptive text.
func keywordSimilarity(queryKeywords map[string]struct{}, e Entry) float64 {
	entryKeywords := extractKeywords(e.EmbeddingText + " " + e.Summary)
	for w := range extractKeywords(e.Name) {
		entryKeywords[w] = struct{}{}
	}
	for w := range extractKeywords(e.Location) {
		entryKeywords[w] = struct{}{}
	}
	if len(entryKeywords) == 0 || len(queryKeywords) == 0 {
		return 0
	}

	intersection := 0
	for w := range queryKeywords {
		if _, ok := entryKeywords[w]; ok {
			intersection++
		}
	}
	union := len(entryKeywords) + len(queryKeywords) - intersection
	if union == 0 {
		return 0
	}
	return float64(intersection) / float64(union)
}

// FormatExamplesForPrompt renders a calibration set as a markdown block
// for the verdict prompt. Returns "" when the set is empty.
func FormatExamplesForPrompt(set CalibrationSet) string {
	all := make([]Example, 0, set.Total())
	all = append(all, set.Traps...)
	all = append(all, set.Gems...)
	all = append(all, set.Mixed...)
	if len(all) == 0 {
		return ""
	}

	var b strings.Builder
	b.WriteString("## REFERENCE EXAMPLES FOR CALIBRATION\n\n")
	b.WriteString("Use these similar venues as reference points for your scoring:\n\n")

	for _, ex := range all {
		fmt.Fprintf(&b, "### %s (%s)\n", ex.Name, ex.Location)
		fmt.Fprintf(&b, "- **Score:** %d/100\n", ex.Score)
		fmt.Fprintf(&b, "- **Verdict:** %s\n", titleVerdict(ex.Verdict))
		fmt.Fprintf(&b, "- **Category:** %s\n", ex.Category)
		if ex.PriceTier != "" {
			fmt.Fprintf(&b, "- **Price:** %s\n", ex.PriceTier)
		}
		fmt.Fprintf(&b, "- **Summary:** %s\n", ex.Summary)
		if len(ex.RedFlags) > 0 {
			fmt.Fprintf(&b, "- **Red Flags:** %s\n", joinFlagTypes(ex.RedFlags))
		}
		if len(ex.PositiveSignals) > 0 {
			fmt.Fprintf(&b, "- **Positives:** %s\n", joinFlagTypes(ex.PositiveSignals))
		}
		b.WriteString("\n")
	}

	b.WriteString("---\n")
	b.WriteString("Use these examples to calibrate your scoring. A venue similar to the tourist traps above should score 60+, while one similar to local gems should score below 30.\n")
	return b.String()
}

func titleVerdict(verdict string) string {
	parts := strings.Split(verdict, "_")
	for i, p := range parts {
		if p == "" {
			continue
		}
		parts[i] = strings.ToUpper(p[:1]) + p[1:]
	}
	return strings.Join(parts, " ")
}

func joinFlagTypes(flags []Flag) string {
	names := make([]string, 0, len(flags))
	for _, f := range flags {
		names = append(names, f.Type)
	}
	return strings.Join(names, ", ")
}
