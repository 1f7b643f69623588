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


package core

import (
	"fmt"
	"strings"
)

// ValidateChunk validates a Chunk according to domain rules.
//
// Validation rules:
//   - Text must be non-empty after trimming
//   - SourceType must be listing or resume
//   - ChunkIndex must not be negative
//   - TokensEstimate must be positive
//
// NOT validated (nullable metadata):
//   - Location fields, PostedDate, Source (can be empty)
//   - TopSkills (empty when no mapper was supplied)
func ValidateChunk(chunk *Chunk) error {
	if chunk == nil {
		return fmt.Errorf("%w: chunk is nil", ErrInvalidChunk)
	}

	if strings.TrimSpace(chunk.Text) == "" {
		return fmt.Errorf("%w: %w", ErrInvalidChunk, ErrEmptyText)
	}

	if err := ValidateSourceType(chunk.SourceType); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidChunk, err)
	}

	if chunk.ChunkIndex < 0 {
		return fmt.Errorf("%w: chunk index %d is negative", ErrInvalidChunk, chunk.ChunkIndex)
	}

	if chunk.TokensEstimate <= 0 {
		return fmt.Errorf("%w: tokens estimate %d is not positive", ErrInvalidChunk, chunk.TokensEstimate)
	}

	return nil
}

// ValidateSourceType validates a SourceType value.
func ValidateSourceType(st SourceType) error {
	switch st {
	case SourceTypeListing, SourceTypeResume:
		return nil
	default:
		return fmt.Errorf("%w: %q", ErrInvalidSourceType, st)
	}
}

// ValidateSkillRecord validates a SkillRecord according to domain rules.
// Aliases and category may be empty.
func ValidateSkillRecord(record *SkillRecord) error {
	if record == nil {
		return fmt.Errorf("%w: record is nil", ErrInvalidSkillRecord)
	}

	if strings.TrimSpace(record.SkillName) == "" {
		return fmt.Errorf("%w: %w", ErrInvalidSkillRecord, ErrEmptySkillName)
	}

	return nil
}

// ValidateListing validates a Listing according to domain rules.
// A listing without a title or company is unusable downstream and is dropped
// by the normalizer rather than erroring the run.
func ValidateListing(listing *Listing) error {
	if listing == nil {
		return fmt.Errorf("%w: listing is nil", ErrInvalidListing)
	}

	if strings.TrimSpace(listing.Title) == "" {
		return fmt.Errorf("%w: %w", ErrInvalidListing, ErrEmptyTitle)
	}

	if strings.TrimSpace(listing.CompanyName) == "" {
		return fmt.Errorf("%w: %w", ErrInvalidListing, ErrEmptyCompany)
	}

	return nil
}
