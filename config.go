package main

import (
	"bytes"
	"encoding/json"
	"os"
	"strings"

	"github.com/juju/errors"

	"github.com/9seconds/carmen/config"
	"github.com/9seconds/carmen/resolvers"
)

type settings struct {
	Order     []string
	Options   map[string]resolvers.Options
	Locations string
}

// makeSettings merges config file with command line flags. Flags win.
// Options given on command line are merged into configured ones key by
// key.
func makeSettings(configFile *os.File, order, options, locations string) (*settings, error) {
	conf := &config.Config{Resolvers: map[string]map[string]interface{}{}}

	if configFile != nil {
		defer configFile.Close() // nolint

		parsed, err := config.Parse(configFile)
		if err != nil {
			return nil, errors.Annotatef(err, "Cannot parse config %s", configFile.Name())
		}
		conf = parsed
	}

	rv := &settings{
		Order:     conf.Order,
		Options:   map[string]resolvers.Options{},
		Locations: conf.Locations,
	}

	for name, opts := range conf.Resolvers {
		rv.Options[name] = resolvers.Options(opts)
	}

	if order != "" {
		rv.Order = parseOrder(order)
	}

	if locations != "" {
		rv.Locations = locations
	}
	if rv.Locations == "" {
		return nil, errors.New("Location database is not set")
	}

	flagOptions, err := parseOptions(options)
	if err != nil {
		return nil, err
	}

	for name, opts := range flagOptions {
		current, ok := rv.Options[name]
		if !ok {
			current = resolvers.Options{}
			rv.Options[name] = current
		}
		for k, v := range opts {
			current[k] = v
		}
	}

	return rv, nil
}

func parseOrder(order string) []string {
	rv := []string{}

	for _, v := range strings.Split(order, ",") {
		if v = strings.TrimSpace(v); v != "" {
			rv = append(rv, v)
		}
	}

	return rv
}

func parseOptions(options string) (map[string]resolvers.Options, error) {
	rv := map[string]resolvers.Options{}
	if strings.TrimSpace(options) == "" {
		return rv, nil
	}

	decoder := json.NewDecoder(bytes.NewBufferString(options))
	decoder.UseNumber()

	if err := decoder.Decode(&rv); err != nil {
		return nil, errors.Annotate(err, "Incorrect resolver options")
	}

	return rv, nil
}
