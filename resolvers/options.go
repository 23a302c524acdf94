package resolvers

import (
	"encoding/json"
	"strconv"
	"strings"

	"github.com/juju/errors"
)

// Options is a set of resolver specific parameters. Values come either
// from TOML configuration or from JSON given on command line so several
// representations of the same value are accepted.
type Options map[string]interface{}

// Bool returns a boolean option or default value if it is absent.
func (o Options) Bool(name string, defaultValue bool) (bool, error) {
	value, ok := o[name]
	if !ok || value == nil {
		return defaultValue, nil
	}

	switch value := value.(type) {
	case bool:
		return value, nil
	case string:
		switch strings.ToLower(value) {
		case "1", "true", "enabled", "yes":
			return true, nil
		case "0", "false", "disabled", "no", "":
			return false, nil
		}
	}

	return false, errors.Errorf("Incorrect boolean value %v for option %s", value, name)
}

// Float returns a float option or default value if it is absent.
func (o Options) Float(name string, defaultValue float64) (float64, error) {
	value, ok := o[name]
	if !ok || value == nil {
		return defaultValue, nil
	}

	switch value := value.(type) {
	case float64:
		return value, nil
	case float32:
		return float64(value), nil
	case int:
		return float64(value), nil
	case int64:
		return float64(value), nil
	case json.Number:
		rv, err := value.Float64()
		if err != nil {
			return 0, errors.Annotatef(err, "Incorrect number for option %s", name)
		}
		return rv, nil
	case string:
		rv, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return 0, errors.Annotatef(err, "Incorrect number for option %s", name)
		}
		return rv, nil
	}

	return 0, errors.Errorf("Incorrect number %v for option %s", value, name)
}

// Int returns an integer option or default value if it is absent.
func (o Options) Int(name string, defaultValue int) (int, error) {
	value, err := o.Float(name, float64(defaultValue))
	if err != nil {
		return 0, err
	}

	if value != float64(int(value)) {
		return 0, errors.Errorf("Option %s has to be integer, got %v", name, value)
	}

	return int(value), nil
}
