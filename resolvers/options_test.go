package resolvers

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOptionsBool(t *testing.T) {
	opts := Options{
		"a": true,
		"b": "yes",
		"c": "0",
		"d": 1.5,
	}

	value, err := opts.Bool("a", false)
	assert.Nil(t, err)
	assert.True(t, value)

	value, err = opts.Bool("b", false)
	assert.Nil(t, err)
	assert.True(t, value)

	value, err = opts.Bool("c", true)
	assert.Nil(t, err)
	assert.False(t, value)

	value, err = opts.Bool("absent", true)
	assert.Nil(t, err)
	assert.True(t, value)

	_, err = opts.Bool("d", false)
	assert.NotNil(t, err)
}

func TestOptionsFloat(t *testing.T) {
	opts := Options{
		"float":  2.5,
		"int64":  int64(3),
		"number": json.Number("4.25"),
		"string": "5",
		"bad":    "five",
		"bool":   true,
	}

	for name, expected := range map[string]float64{
		"float":  2.5,
		"int64":  3,
		"number": 4.25,
		"string": 5,
		"absent": 1,
	} {
		value, err := opts.Float(name, 1)
		assert.Nil(t, err, name)
		assert.InDelta(t, expected, value, 1e-9, name)
	}

	_, err := opts.Float("bad", 1)
	assert.NotNil(t, err)

	_, err = opts.Float("bool", 1)
	assert.NotNil(t, err)
}

func TestOptionsInt(t *testing.T) {
	opts := Options{"size": int64(10), "fraction": 1.5}

	value, err := opts.Int("size", 0)
	assert.Nil(t, err)
	assert.Equal(t, 10, value)

	_, err = opts.Int("fraction", 0)
	assert.NotNil(t, err)
}
