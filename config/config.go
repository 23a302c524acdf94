package config

import (
	"io"
	"io/ioutil"

	"github.com/BurntSushi/toml"
	"github.com/juju/errors"
)

// ValidResolvers is a set of resolver names which may be configured.
var ValidResolvers = map[string]bool{
	"place":    true,
	"geocode":  true,
	"profile":  true,
	"timezone": true,
}

// Config is a parsed configuration file.
//
//   order = ["place", "geocode", "profile"]
//   locations = "/data/locations.json.gz"
//
//   [resolvers.geocode]
//   max_distance = 25
//   cell_size = 1.0
type Config struct {
	Order     []string
	Locations string
	Resolvers map[string]map[string]interface{}
}

// Parse reads config from the reader and validates it.
func Parse(reader io.Reader) (*Config, error) {
	conf := &Config{}

	buf, err := ioutil.ReadAll(reader)
	if err != nil {
		return nil, errors.Annotate(err, "Cannot read config file")
	}

	if _, err := toml.Decode(string(buf), conf); err != nil {
		return nil, errors.Annotate(err, "Cannot parse config file")
	}

	if err = validate(conf); err != nil {
		return nil, errors.Annotate(err, "Invalid value")
	}

	if conf.Resolvers == nil {
		conf.Resolvers = map[string]map[string]interface{}{}
	}

	return conf, nil
}

func validate(conf *Config) error {
	seen := map[string]bool{}

	for _, name := range conf.Order {
		if !ValidResolvers[name] {
			return errors.Errorf("Unknown resolver %s", name)
		}
		if seen[name] {
			return errors.Errorf("Resolver %s is duplicated", name)
		}
		seen[name] = true
	}

	for name := range conf.Resolvers {
		if !ValidResolvers[name] {
			return errors.Errorf("Unknown resolver %s", name)
		}
	}

	return nil
}
