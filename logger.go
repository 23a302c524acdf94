package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/juju/errors"
	log "github.com/sirupsen/logrus"

	"github.com/9seconds/carmen/stats"
)

func setupLogger() {
	log.SetFormatter(&log.TextFormatter{})
	log.SetLevel(log.WarnLevel)
}

// inputLogger points to the place in the input file, not in the code.
func inputLogger(inputName string, line int) *log.Entry {
	return log.WithFields(log.Fields{
		"input": inputName,
		"line":  line,
	})
}

func printSummary(writer io.Writer, runStats *stats.Stats, full bool) {
	if full {
		fmt.Fprintf(writer, "Skipped %d tweets.\n", runStats.Skipped)
		fmt.Fprintf(writer, "Tweets with \"place\" key: %d; \"coordinates\" key: %d; \"geo\" key: %d; profile location: %d.\n",
			runStats.HasPlace, runStats.HasCoordinates, runStats.HasGeo, runStats.HasProfileLocation)
		fmt.Fprintf(writer, "Resolved %d tweets to a city, %d to a county, %d to a state, and %d to a country.\n",
			runStats.Granularity["city"], runStats.Granularity["county"],
			runStats.Granularity["state"], runStats.Granularity["country"])

		methods := make([]string, 0, len(runStats.Methods))
		for _, name := range runStats.MethodNames() {
			methods = append(methods, fmt.Sprintf("%d by %s", runStats.Methods[name], name))
		}
		fmt.Fprintf(writer, "Tweet resolution methods: %s.\n", strings.Join(methods, ", "))
	}

	fmt.Fprintf(writer, "Resolved locations for %d of %d tweets.\n", runStats.Resolved, runStats.Total)
}

func printJSONSummary(writer io.Writer, runStats *stats.Stats) error {
	encoder := json.NewEncoder(writer)
	encoder.SetIndent("", "  ")

	if err := encoder.Encode(runStats); err != nil {
		return errors.Annotate(err, "Cannot encode statistics")
	}

	return nil
}
