package main

import (
	"os"

	log "github.com/sirupsen/logrus"
	kingpin "gopkg.in/alecthomas/kingpin.v2"

	"github.com/9seconds/carmen/locdb"
	"github.com/9seconds/carmen/resolvers"
	"github.com/9seconds/carmen/stats"
)

var version = "0.1.0"

var (
	app = kingpin.New(
		"carmen",
		"Resolve tweet locations. Paths ending in \".gz\" are treated as gzipped files.")

	debug = app.Flag("debug", "Run in debug mode.").
		Short('d').
		Envar("CARMEN_DEBUG").
		Bool()
	showStatistics = app.Flag("statistics", "Show summary statistics.").
			Short('s').
			Bool()
	statisticsFormat = app.Flag("statistics-format", "Format of the summary: text or json.").
				Default("text").
				Enum("text", "json")
	configFile = app.Flag("config", "Path to the TOML config.").
			Short('c').
			File()
	order = app.Flag("order", "Preferred resolver order (comma-separated).").
		PlaceHolder("RESOLVERS").
		String()
	options = app.Flag("options", "JSON dictionary of resolver options.").
		Default("{}").
		String()
	locationsPath = app.Flag("locations", "Path to the location database.").
			PlaceHolder("PATH").
			String()
	inputPath = app.Arg("input-path", "File containing tweets to locate (defaults to standard input).").
			String()
	outputPath = app.Arg("output-path", "File to write geolocated tweets to (defaults to standard output).").
			String()
)

func init() {
	app.Version(version)
	setupLogger()
}

func main() {
	kingpin.MustParse(app.Parse(os.Args[1:]))

	if *debug {
		log.SetLevel(log.DebugLevel)
	}

	conf, err := makeSettings(*configFile, *order, *options, *locationsPath)
	if err != nil {
		log.Fatal(err.Error())
	}

	set, err := resolvers.NewResolverSet(conf.Order, conf.Options, resolvers.DefaultFactories())
	if err != nil {
		log.Fatal(err.Error())
	}

	if err := loadLocations(set, conf.Locations); err != nil {
		log.Fatal(err.Error())
	}

	input, inputName, err := openInput(*inputPath)
	if err != nil {
		log.Fatal(err.Error())
	}
	defer input.Close() // nolint

	output, err := openOutput(*outputPath)
	if err != nil {
		log.Fatal(err.Error())
	}

	runStats := stats.New()
	processErr := processTweets(set, input, output, runStats, inputName)

	if err := output.Close(); err != nil {
		log.Fatal(err.Error())
	}
	if processErr != nil {
		log.Fatal(processErr.Error())
	}

	if *statisticsFormat == "json" {
		if err := printJSONSummary(os.Stderr, runStats); err != nil {
			log.Fatal(err.Error())
		}
		return
	}

	printSummary(os.Stderr, runStats, *showStatistics)
}

func loadLocations(set *resolvers.ResolverSet, path string) error {
	file, err := locdb.Open(path)
	if err != nil {
		return err
	}
	defer file.Close() // nolint

	_, err = set.LoadLocations(file)

	return err
}
