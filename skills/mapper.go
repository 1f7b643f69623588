package skills

import (
	"github.com/adrg/strutil"
	"github.com/adrg/strutil/metrics"

	"github.com/talentfold/ingest/core"
)

// FuzzyThreshold is the minimum similarity either fuzzy tier accepts.
// A fixed design constant: false positives are worse than false negatives.
const FuzzyThreshold = 0.85

// Mapper resolves raw skill mentions against a canonical catalog.
// Construct once per run with NewMapper; safe for concurrent use.
type Mapper struct {
	records       []core.SkillRecord
	abbreviations []Abbreviation

	// exact maps normalized names and aliases to a record index.
	exact map[string]int
	// keys holds every normalized name/alias in declaration order; keyRecs
	// holds the record index for each key.
	keys    []string
	keyRecs []int
	// grams is an inverted bigram index over keys for candidate retrieval.
	grams map[string][]int

	tokenSet *metrics.Jaccard
	dice     *metrics.SorensenDice
}

// Option configures a Mapper.
type Option func(*Mapper)

// WithAbbreviations replaces the abbreviation expansion table.
// Default is DefaultAbbreviations.
func WithAbbreviations(abbreviations []Abbreviation) Option {
	return func(m *Mapper) {
		m.abbreviations = abbreviations
	}
}

// NewMapper builds a mapper from the full skill catalog for a run.
// The records are copied; later mutation of the input slice has no effect.
func NewMapper(records []core.SkillRecord, opts ...Option) *Mapper {
	m := &Mapper{
		records:       make([]core.SkillRecord, len(records)),
		abbreviations: DefaultAbbreviations,
		exact:         make(map[string]int),
		grams:         make(map[string][]int),
		tokenSet:      metrics.NewJaccard(),
		dice:          metrics.NewSorensenDice(),
	}
	copy(m.records, records)

	for _, opt := range opts {
		opt(m)
	}

	for i := range m.records {
		m.addKey(normalize(m.records[i].SkillName, m.abbreviations), i)
		for _, alias := range m.records[i].Aliases {
			m.addKey(normalize(alias, m.abbreviations), i)
		}
	}
	return m
}

func (m *Mapper) addKey(key string, record int) {
	if key == "" {
		return
	}
	if _, ok := m.exact[key]; !ok {
		m.exact[key] = record
	}
	idx := len(m.keys)
	m.keys = append(m.keys, key)
	m.keyRecs = append(m.keyRecs, record)
	for _, gram := range bigrams(key) {
		m.grams[gram] = append(m.grams[gram], idx)
	}
}

// Match resolves a raw skill mention. Matched is nil and Score is 0 when no
// tier clears its threshold.
func (m *Mapper) Match(raw string) core.SkillMapping {
	key := normalize(raw, m.abbreviations)
	if key == "" {
		return core.SkillMapping{Input: raw}
	}

	// Tier 1: exact name/alias hit.
	if idx, ok := m.exact[key]; ok {
		return core.SkillMapping{Input: raw, Matched: &m.records[idx], Score: 1}
	}

	// Tier 2: bigram-indexed candidates scored with token-set similarity.
	if idx, score, ok := m.indexedFuzzy(key); ok {
		return core.SkillMapping{Input: raw, Matched: &m.records[idx], Score: score}
	}

	// Tier 3: global bigram-overlap scan, a slower safety net on a second
	// metric.
	if idx, score, ok := m.globalFuzzy(key); ok {
		return core.SkillMapping{Input: raw, Matched: &m.records[idx], Score: score}
	}

	return core.SkillMapping{Input: raw}
}

func (m *Mapper) indexedFuzzy(key string) (record int, score float64, ok bool) {
	seen := make(map[int]struct{})
	bestIdx := -1
	var bestScore float64
	for _, gram := range bigrams(key) {
		for _, idx := range m.grams[gram] {
			if _, dup := seen[idx]; dup {
				continue
			}
			seen[idx] = struct{}{}
			s := strutil.Similarity(key, m.keys[idx], m.tokenSet)
			if s > bestScore {
				bestScore = s
				bestIdx = idx
			}
		}
	}
	if bestIdx >= 0 && bestScore >= FuzzyThreshold {
		return m.keyRecs[bestIdx], bestScore, true
	}
	return 0, 0, false
}

func (m *Mapper) globalFuzzy(key string) (record int, score float64, ok bool) {
	bestIdx := -1
	var bestScore float64
	for idx, candidate := range m.keys {
		s := strutil.Similarity(key, candidate, m.dice)
		if s > bestScore {
			bestScore = s
			bestIdx = idx
		}
	}
	if bestIdx >= 0 && bestScore >= FuzzyThreshold {
		return m.keyRecs[bestIdx], bestScore, true
	}
	return 0, 0, false
}
