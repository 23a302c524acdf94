package config

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConfigOk(t *testing.T) {
	text := `order = ["geocode", "place", "timezone"]
		locations = "/data/locations.json.gz"

		[resolvers]

			[resolvers.geocode]
			max_distance = 10
			cell_size = 0.5

			[resolvers.place]
			allow_unknown_locations = true
			resolve_to_known_ancestor = false`

	conf, err := Parse(strings.NewReader(text))
	assert.Nil(t, err)
	assert.NotNil(t, conf)

	assert.Equal(t, conf.Order, []string{"geocode", "place", "timezone"})
	assert.Equal(t, conf.Locations, "/data/locations.json.gz")

	assert.Contains(t, conf.Resolvers, "geocode")
	assert.Equal(t, conf.Resolvers["geocode"]["max_distance"], int64(10))
	assert.InDelta(t, conf.Resolvers["geocode"]["cell_size"], 0.5, 1e-6)
	assert.Equal(t, conf.Resolvers["place"]["allow_unknown_locations"], true)
	assert.Equal(t, conf.Resolvers["place"]["resolve_to_known_ancestor"], false)
}

func TestConfigDefaults(t *testing.T) {
	conf, err := Parse(strings.NewReader(""))
	assert.Nil(t, err)
	assert.NotNil(t, conf)

	assert.Len(t, conf.Order, 0)
	assert.Equal(t, conf.Locations, "")
	assert.Len(t, conf.Resolvers, 0)
}

func TestUnknownResolverInOrder(t *testing.T) {
	_, err := Parse(strings.NewReader(`order = ["place", "qqq"]`))
	assert.NotNil(t, err)
}

func TestDuplicatedResolverInOrder(t *testing.T) {
	_, err := Parse(strings.NewReader(`order = ["place", "place"]`))
	assert.NotNil(t, err)
}

func TestUnknownResolverOptions(t *testing.T) {
	text := `
		[resolvers.qqq]
		enabled = true`

	_, err := Parse(strings.NewReader(text))
	assert.NotNil(t, err)
}

func TestIncorrectTOML(t *testing.T) {
	_, err := Parse(strings.NewReader(`order = [`))
	assert.NotNil(t, err)
}
