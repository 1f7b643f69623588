package parse

import (
	"strings"

	"github.com/talentfold/ingest/core"
)

// indianStates is the first-level gazetteer. Declaration order is the
// tie-break policy: the first containment match wins, with no longest-match
// or confidence scoring.
var indianStates = []string{
	"andhra pradesh", "arunachal pradesh", "assam", "bihar", "chhattisgarh", "goa",
	"gujarat", "haryana", "himachal pradesh", "jharkhand", "karnataka", "kerala",
	"madhya pradesh", "maharashtra", "manipur", "meghalaya", "mizoram", "nagaland",
	"odisha", "punjab", "rajasthan", "sikkim", "tamil nadu", "telangana", "tripura",
	"uttar pradesh", "uttarakhand", "west bengal", "delhi", "jammu and kashmir", "ladakh",
}

// metroCities is the second gazetteer, scanned after states.
var metroCities = []string{
	"mumbai", "delhi", "bengaluru", "bangalore", "hyderabad", "chennai", "kolkata", "pune",
}

// cityStates derives a state when only a metro city was mentioned.
var cityStates = map[string]string{
	"mumbai":    "Maharashtra",
	"delhi":     "Delhi",
	"bengaluru": "Karnataka",
	"bangalore": "Karnataka",
	"hyderabad": "Telangana",
	"chennai":   "Tamil Nadu",
	"kolkata":   "West Bengal",
	"pune":      "Maharashtra",
}

// remoteMarkers force the online work mode regardless of any place mentions.
var remoteMarkers = []string{"remote", "work from home"}

// NormalizeLocation parses a free-text place/remote description.
// It never fails; in the worst case every field stays empty and the caller
// counts the row as unparseable.
func NormalizeLocation(input string) core.ParsedLocation {
	if input == "" {
		return core.ParsedLocation{}
	}
	text := strings.ToLower(input)

	for _, marker := range remoteMarkers {
		if strings.Contains(text, marker) {
			// Remote overrides all further parsing.
			return core.ParsedLocation{Mode: core.WorkModeOnline}
		}
	}

	var loc core.ParsedLocation
	for _, state := range indianStates {
		if strings.Contains(text, state) {
			loc.State = titleCase(state)
			loc.Country = "India"
			break
		}
	}
	for _, city := range metroCities {
		if strings.Contains(text, city) {
			loc.City = titleCase(city)
			if loc.State == "" {
				loc.State = cityStates[city]
			}
			loc.Country = "India"
			break
		}
	}
	if loc.Country == "" {
		switch {
		case strings.Contains(text, "india"):
			loc.Country = "India"
		case strings.Contains(text, "usa"), strings.Contains(text, "united states"):
			loc.Country = "United States"
		case strings.Contains(text, "uk"), strings.Contains(text, "united kingdom"):
			loc.Country = "United Kingdom"
		case strings.Contains(text, "canada"):
			loc.Country = "Canada"
		}
	}
	return loc
}

func titleCase(value string) string {
	words := strings.Split(value, " ")
	for i, word := range words {
		if word == "" {
			continue
		}
		words[i] = strings.ToUpper(word[:1]) + word[1:]
	}
	return strings.Join(words, " ")
}
