package names

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeCountry(t *testing.T) {
	assert.Equal(t, "United States", NormalizeCountry("United States of America"))
	assert.Equal(t, "United States", NormalizeCountry("USA"))
	assert.Equal(t, "Netherlands", NormalizeCountry("The Netherlands"))
	assert.Equal(t, "Atlantis", NormalizeCountry("Atlantis"))
}

func TestStatesAreDerived(t *testing.T) {
	assert.Len(t, USStates, len(USStateAbbreviations))

	for abbr, name := range USStateAbbreviations {
		assert.Len(t, abbr, 2)
		assert.Equal(t, strings.ToLower(name), name)
		assert.Contains(t, USStates, name)
	}
}

func TestCountryCodes(t *testing.T) {
	assert.Equal(t, "united states", CountryCodes["us"])
	assert.Equal(t, "united kingdom", CountryCodes["gb"])
	assert.Equal(t, "united kingdom", CountryCodes["uk"])
	assert.Contains(t, Countries, "germany")

	for code, name := range CountryCodes {
		assert.Equal(t, strings.ToLower(code), code)
		assert.Equal(t, strings.ToLower(name), name)
	}
}

func TestStateNamesAreCapitalized(t *testing.T) {
	assert.Equal(t, "Tennessee", USStates["tennessee"])
	assert.Equal(t, "New York", USStates["new york"])
	assert.Equal(t, "District of Columbia", USStates["district of columbia"])
	assert.Equal(t, "", USStates["atlantis"])
}
