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


package ingestion

import (
	"fmt"

	"github.com/talentfold/ingest/core"
	"github.com/talentfold/ingest/parse"
	"github.com/talentfold/ingest/skills"
)

// maxMappingSamples caps the skill-mapping samples kept for the run report.
const maxMappingSamples = 25

// ParseFailures counts rows whose heuristic parses produced nothing.
// These are data quality metrics, never errors.
type ParseFailures struct {
	Locations   int
	Stipends    int
	PostedDates int
}

// ListingResult is the output of normalizing the listings dataset.
type ListingResult struct {
	Listings       []core.Listing
	MappingSamples []string
	Failures       ParseFailures
}

// NormalizeListings builds listing rows from raw rows, resolving listed
// skills against the catalog. Rows without a title or company are dropped.
// Unmatched skill mentions are kept verbatim rather than discarded.
func NormalizeListings(rows []map[string]string, mapper *skills.Mapper) (*ListingResult, error) {
	if mapper == nil {
		return nil, ErrMapperRequired
	}

	result := &ListingResult{}
	for i, row := range rows {
		title := listingTitleFields.resolve(row)
		if title == "" {
			continue
		}
		company := listingCompanyField.resolve(row)
		if company == "" {
			company = "Unknown"
		}

		place := listingPlaceFields.resolve(row)
		location := parse.NormalizeLocation(place)
		if place != "" && location == (core.ParsedLocation{}) {
			result.Failures.Locations++
		}

		pay := listingPayFields.resolve(row)
		stipend := parse.ParseStipend(pay)
		if pay != "" && stipend.Ambiguous {
			result.Failures.Stipends++
		}

		posted := listingPostedFields.resolve(row)
		if posted == "" {
			result.Failures.PostedDates++
		}

		var mapped []string
		for _, raw := range parseList(listingSkillFields.resolve(row)) {
			mapping := mapper.Match(raw)
			if mapping.Matched != nil {
				if len(result.MappingSamples) < maxMappingSamples {
					result.MappingSamples = append(result.MappingSamples,
						fmt.Sprintf("%s -> %s", raw, mapping.Matched.SkillName))
				}
				mapped = append(mapped, mapping.Matched.SkillName)
				continue
			}
			mapped = append(mapped, raw)
		}

		country := location.Country
		if country == "" && location.Mode == core.WorkModeOnline {
			country = "Remote"
		}

		mode := string(location.Mode)
		if mode == "" {
			mode = listingModeFields.resolve(row)
		}

		listing := core.Listing{
			ListingID:       listingIDFields.resolve(row),
			Title:           title,
			CompanyID:       row["company_id"],
			CompanyName:     company,
			LocationCity:    location.City,
			LocationState:   location.State,
			LocationCountry: country,
			Skills:          mapped,
			StipendMinINR:   stipend.Min,
			StipendMaxINR:   stipend.Max,
			DurationWeeks:   inferDuration(listingDurationField.resolve(row)),
			Mode:            mode,
			Category:        categoryFields.resolve(row),
			Description:     listingDescFields.resolve(row),
			ApplicationURL:  listingURLFields.resolve(row),
			PostedDate:      posted,
			Source:          sourceFields.resolve(row),
		}
		if listing.ListingID == "" {
			listing.ListingID = fmt.Sprintf("listing-%d", i)
		}
		if listing.Source == "" {
			listing.Source = "unknown"
		}
		result.Listings = append(result.Listings, listing)
	}
	return result, nil
}

// DeduplicateListings drops repeated postings, keeping the first occurrence
// of each dedup key. Returns the survivors and the number dropped.
func DeduplicateListings(listings []core.Listing) ([]core.Listing, int) {
	seen := make(map[core.ID]struct{}, len(listings))
	out := make([]core.Listing, 0, len(listings))
	for _, listing := range listings {
		key := listing.DedupKey()
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, listing)
	}
	return out, len(listings) - len(out)
}
