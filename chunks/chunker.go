// Copyright 2025 Talentfold
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


package chunks

import (
	"regexp"
	"sort"
	"strings"

	"github.com/talentfold/ingest/core"
	"github.com/talentfold/ingest/skills"
)

const (
	// WindowSize is the character length of one chunk window.
	WindowSize = 1500
	// WindowOverlap is the character count shared between adjacent windows.
	WindowOverlap = 300
	// TopSkillLimit caps the skills tagged onto a chunk.
	TopSkillLimit = 5
)

var (
	markupRe       = regexp.MustCompile(`<[^>]*>`)
	whitespaceRe   = regexp.MustCompile(`\s+`)
	nonPrintableRe = regexp.MustCompile(`[^\x20-\x7E]`)
	tokenSplitRe   = regexp.MustCompile(`[,.;\s]+`)
)

// Options carries the per-source context stamped onto every emitted chunk.
// Mapper may be nil, in which case no skill tagging happens.
type Options struct {
	SourceType core.SourceType
	SourceID   string
	Mapper     *skills.Mapper
	Location   core.ParsedLocation
	PostedDate string
	Source     string
}

// Split cuts text into overlapping windows and returns them as chunks.
// It is pure: calling it twice with the same input yields identical output,
// and chunk indices form a dense zero-based sequence.
func Split(text string, opts Options) []core.Chunk {
	cleaned := sanitize(text)

	var out []core.Chunk
	index := 0
	for start := 0; start < len(cleaned); start += WindowSize - WindowOverlap {
		end := start + WindowSize
		if end > len(cleaned) {
			end = len(cleaned)
		}
		window := strings.TrimSpace(cleaned[start:end])
		if window == "" {
			// Empty windows do not consume an index.
			continue
		}
		out = append(out, core.Chunk{
			ChunkID:         core.ChunkID(opts.SourceID, index),
			SourceType:      opts.SourceType,
			SourceID:        opts.SourceID,
			ChunkIndex:      index,
			Text:            window,
			TokensEstimate:  (len(window) + 3) / 4,
			TopSkills:       topSkills(window, opts.Mapper),
			LocationCity:    opts.Location.City,
			LocationState:   opts.Location.State,
			LocationCountry: opts.Location.Country,
			Mode:            string(opts.Location.Mode),
			PostedDate:      opts.PostedDate,
			Source:          opts.Source,
		})
		index++
	}
	return out
}

// sanitize strips markup tags, collapses whitespace, and drops anything
// outside printable ASCII. Cheap by intent; proper HTML parsing is not
// worth it for tag-stripping job descriptions.
func sanitize(text string) string {
	text = markupRe.ReplaceAllString(text, " ")
	text = nonPrintableRe.ReplaceAllString(text, " ")
	text = whitespaceRe.ReplaceAllString(text, " ")
	return strings.TrimSpace(text)
}

// topSkills tokenizes the window, resolves every token through the mapper,
// and returns the most frequent canonical skill names. Ties keep
// first-encountered order via the stable sort.
func topSkills(window string, mapper *skills.Mapper) []string {
	if mapper == nil {
		return nil
	}

	counts := make(map[string]int)
	var order []string
	for _, token := range tokenSplitRe.Split(window, -1) {
		if token == "" {
			continue
		}
		mapping := mapper.Match(token)
		if mapping.Matched == nil {
			continue
		}
		name := mapping.Matched.SkillName
		if _, seen := counts[name]; !seen {
			order = append(order, name)
		}
		counts[name]++
	}

	sort.SliceStable(order, func(i, j int) bool {
		return counts[order[i]] > counts[order[j]]
	})
	if len(order) > TopSkillLimit {
		order = order[:TopSkillLimit]
	}
	return order
}
