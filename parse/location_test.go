package parse

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/talentfold/ingest/core"
)

func TestNormalizeLocation(t *testing.T) {
	t.Run("metro city with country", func(t *testing.T) {
		got := NormalizeLocation("Mumbai, India")
		assert.Equal(t, "Mumbai", got.City)
		assert.Equal(t, "Maharashtra", got.State)
		assert.Equal(t, "India", got.Country)
		assert.Equal(t, core.WorkMode(""), got.Mode)
	})

	t.Run("remote overrides place mentions", func(t *testing.T) {
		got := NormalizeLocation("Remote - Work from home (Pune preferred)")
		assert.Equal(t, core.WorkModeOnline, got.Mode)
		assert.Empty(t, got.City)
		assert.Empty(t, got.State)
		assert.Empty(t, got.Country)
	})

	t.Run("state only", func(t *testing.T) {
		got := NormalizeLocation("Anywhere in Karnataka")
		assert.Empty(t, got.City)
		assert.Equal(t, "Karnataka", got.State)
		assert.Equal(t, "India", got.Country)
	})

	t.Run("city derives the state", func(t *testing.T) {
		got := NormalizeLocation("Bengaluru office")
		assert.Equal(t, "Bengaluru", got.City)
		assert.Equal(t, "Karnataka", got.State)
	})

	t.Run("explicit state wins over city derivation", func(t *testing.T) {
		got := NormalizeLocation("Delhi NCR, Haryana")
		assert.Equal(t, "Delhi", got.City)
		assert.Equal(t, "Haryana", got.State)
		assert.Equal(t, "India", got.Country)
	})

	t.Run("first declared match wins", func(t *testing.T) {
		// Both states appear; the gazetteer scan stops at the first hit.
		got := NormalizeLocation("goa or kerala")
		assert.Equal(t, "Goa", got.State)
	})

	t.Run("country fallbacks", func(t *testing.T) {
		cases := map[string]string{
			"somewhere in india": "India",
			"New York, USA":      "United States",
			"London, UK":         "United Kingdom",
			"Toronto, Canada":    "Canada",
		}
		for input, want := range cases {
			got := NormalizeLocation(input)
			assert.Equal(t, want, got.Country, input)
		}
	})

	t.Run("multi-word state is title cased", func(t *testing.T) {
		got := NormalizeLocation("tamil nadu")
		assert.Equal(t, "Tamil Nadu", got.State)
	})

	t.Run("unknown input leaves everything empty", func(t *testing.T) {
		got := NormalizeLocation("the moon")
		assert.Equal(t, core.ParsedLocation{}, got)
	})

	t.Run("empty input", func(t *testing.T) {
		assert.Equal(t, core.ParsedLocation{}, NormalizeLocation(""))
	})
}
