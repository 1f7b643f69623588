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

import "errors"

// Domain validation errors
var (
	// ErrInvalidChunk indicates a Chunk failed validation.
	ErrInvalidChunk = errors.New("invalid chunk")

	// ErrInvalidSkillRecord indicates a SkillRecord failed validation.
	ErrInvalidSkillRecord = errors.New("invalid skill record")

	// ErrInvalidListing indicates a Listing failed validation.
	ErrInvalidListing = errors.New("invalid listing")

	// ErrEmptyText indicates the Text field is empty after trimming.
	ErrEmptyText = errors.New("text cannot be empty")

	// ErrInvalidSourceType indicates an unknown SourceType value.
	ErrInvalidSourceType = errors.New("invalid source type")

	// ErrEmptySkillName indicates the SkillName field is empty.
	ErrEmptySkillName = errors.New("skill name cannot be empty")

	// ErrEmptyTitle indicates the listing Title field is empty.
	ErrEmptyTitle = errors.New("title cannot be empty")

	// ErrEmptyCompany indicates the listing CompanyName field is empty.
	ErrEmptyCompany = errors.New("company name cannot be empty")
)
