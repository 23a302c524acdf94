package main

import (
	"bufio"
	"bytes"
	"encoding/json"
	"io/ioutil"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/klauspost/compress/gzip"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/9seconds/carmen/resolvers"
	"github.com/9seconds/carmen/stats"
)

const testLocations = `
{"id": 1, "country": "United States", "latitude": 39.83, "longitude": -98.58, "aliases": ["United States", "USA"]}
{"id": 2, "parent_id": 1, "country": "United States", "state": "Maryland", "latitude": 39.0, "longitude": -76.7, "aliases": ["Maryland", "MD"]}
{"id": 3, "parent_id": 2, "country": "United States", "state": "Maryland", "city": "Baltimore", "latitude": 39.29, "longitude": -76.61, "aliases": ["Baltimore", "Baltimore, MD"]}
`

type ProcessTestSuite struct {
	suite.Suite

	set   *resolvers.ResolverSet
	stats *stats.Stats
}

func (suite *ProcessTestSuite) SetupTest() {
	set, err := resolvers.NewResolverSet(nil, nil, resolvers.DefaultFactories())
	suite.Require().Nil(err)

	_, err = set.LoadLocations(bytes.NewBufferString(testLocations))
	suite.Require().Nil(err)

	suite.set = set
	suite.stats = stats.New()
}

func (suite *ProcessTestSuite) process(input string) []map[string]interface{} {
	output := &bytes.Buffer{}
	err := processTweets(suite.set, bytes.NewBufferString(input), output, suite.stats, "test")
	suite.Require().Nil(err)

	rv := []map[string]interface{}{}
	scanner := bufio.NewScanner(output)
	for scanner.Scan() {
		obj := map[string]interface{}{}
		suite.Require().Nil(json.Unmarshal(scanner.Bytes(), &obj))
		rv = append(rv, obj)
	}

	return rv
}

func (suite *ProcessTestSuite) TestV1() {
	tweets := suite.process(`{"id": 1, "coordinates": {"coordinates": [-76.62, 39.30]}}`)

	suite.Len(tweets, 1)
	loc := tweets[0]["location"].(map[string]interface{})
	suite.Equal("Baltimore", loc["city"])
	suite.Equal("geocode", loc["resolution_method"])
	suite.EqualValues(1, suite.stats.Resolved)
	suite.EqualValues(1, suite.stats.Granularity["city"])
}

func (suite *ProcessTestSuite) TestV2() {
	tweets := suite.process(`{"data": {"id": "1", "author_id": "5"}, "includes": {"users": [{"id": "5", "location": "Maryland"}]}}`)

	suite.Len(tweets, 1)
	loc := tweets[0]["location"].(map[string]interface{})
	suite.Equal("Maryland", loc["state"])
	suite.Equal("profile", loc["resolution_method"])
	suite.EqualValues(1, suite.stats.HasProfileLocation)
}

func (suite *ProcessTestSuite) TestUnresolvedIsWritten() {
	tweets := suite.process(`{"id": 1, "user": {"location": "Narnia"}}`)

	suite.Len(tweets, 1)
	suite.Nil(tweets[0]["location"])
	suite.EqualValues(1, suite.stats.Total)
	suite.EqualValues(0, suite.stats.Resolved)
}

func (suite *ProcessTestSuite) TestMalformedLineIsSkipped() {
	tweets := suite.process("{\"id\": 1}\nnot json\n\n{\"id\": 2}")

	suite.Len(tweets, 2)
	suite.EqualValues(1, suite.stats.Skipped)
	suite.EqualValues(2, suite.stats.Total)
}

func (suite *ProcessTestSuite) TestHugeIDsKeepPrecision() {
	output := &bytes.Buffer{}
	err := processTweets(suite.set, bytes.NewBufferString(`{"id": 1234567890123456789}`), output, suite.stats, "test")
	suite.Nil(err)
	suite.Contains(output.String(), "1234567890123456789")
}

func (suite *ProcessTestSuite) TestSummary() {
	suite.process(`{"id": 1, "coordinates": {"coordinates": [-76.62, 39.30]}}
{"id": 2}`)

	buf := &bytes.Buffer{}
	printSummary(buf, suite.stats, false)
	suite.Equal("Resolved locations for 1 of 2 tweets.\n", buf.String())

	buf.Reset()
	printSummary(buf, suite.stats, true)
	suite.Contains(buf.String(), "1 by geocode")
	suite.Contains(buf.String(), "Resolved 1 tweets to a city")
}

func (suite *ProcessTestSuite) TestJSONSummary() {
	suite.process(`{"id": 1, "coordinates": {"coordinates": [-76.62, 39.30]}}
not json
{"id": 2}`)

	buf := &bytes.Buffer{}
	suite.Nil(printJSONSummary(buf, suite.stats))

	summary := map[string]interface{}{}
	suite.Nil(json.Unmarshal(buf.Bytes(), &summary))
	suite.EqualValues(2, summary["total"])
	suite.EqualValues(1, summary["resolved"])
	suite.EqualValues(1, summary["skipped"])
	suite.EqualValues(1, summary["methods"].(map[string]interface{})["geocode"])
	suite.EqualValues(1, summary["granularity"].(map[string]interface{})["city"])
}

func TestProcess(t *testing.T) {
	suite.Run(t, &ProcessTestSuite{})
}

func TestGzipOutput(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.json.gz")

	output, err := openOutput(path)
	require.Nil(t, err)

	_, err = output.Write([]byte("{\"id\": 1}\n"))
	require.Nil(t, err)
	require.Nil(t, output.Close())

	file, err := os.Open(path)
	require.Nil(t, err)
	defer file.Close() // nolint

	reader, err := gzip.NewReader(file)
	require.Nil(t, err)

	data, err := ioutil.ReadAll(reader)
	assert.Nil(t, err)
	assert.Equal(t, "{\"id\": 1}\n", string(data))
}

func TestGzipInput(t *testing.T) {
	path := filepath.Join(t.TempDir(), "in.json.gz")

	file, err := os.Create(path)
	require.Nil(t, err)
	writer := gzip.NewWriter(file)
	_, err = writer.Write([]byte("{\"id\": 1}\n"))
	require.Nil(t, err)
	require.Nil(t, writer.Close())
	require.Nil(t, file.Close())

	input, name, err := openInput(path)
	require.Nil(t, err)
	defer input.Close() // nolint

	assert.Equal(t, path, name)
	data, err := ioutil.ReadAll(input)
	assert.Nil(t, err)
	assert.Equal(t, "{\"id\": 1}\n", string(data))
}

func TestStdinInput(t *testing.T) {
	input, name, err := openInput("")
	assert.Nil(t, err)
	assert.Equal(t, os.Stdin, input)
	assert.Equal(t, stdinName, name)
}

func writeConfig(t *testing.T, content string) *os.File {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.Nil(t, ioutil.WriteFile(path, []byte(content), 0600))

	file, err := os.Open(path)
	require.Nil(t, err)

	return file
}

func TestSettingsFlagsOnly(t *testing.T) {
	conf, err := makeSettings(nil, "profile, place", `{"geocode": {"max_distance": 10}}`, "locations.json")
	require.Nil(t, err)

	assert.Equal(t, []string{"profile", "place"}, conf.Order)
	assert.Equal(t, "locations.json", conf.Locations)
	maxDistance, err := conf.Options["geocode"].Float("max_distance", 0)
	assert.Nil(t, err)
	assert.Equal(t, 10.0, maxDistance)
}

func TestSettingsNoLocations(t *testing.T) {
	_, err := makeSettings(nil, "", "{}", "")
	assert.NotNil(t, err)
}

func TestSettingsIncorrectOptions(t *testing.T) {
	_, err := makeSettings(nil, "", "[1, 2]", "locations.json")
	assert.NotNil(t, err)
}

func TestSettingsFlagsOverrideConfig(t *testing.T) {
	file := writeConfig(t, strings.Join([]string{
		`order = ["place", "geocode"]`,
		`locations = "from-config.json"`,
		``,
		`[resolvers.geocode]`,
		`max_distance = 25`,
		`cell_size = 2.0`,
	}, "\n"))

	conf, err := makeSettings(file, "", `{"geocode": {"max_distance": 5}, "place": {"allow_unknown_locations": true}}`, "")
	require.Nil(t, err)

	assert.Equal(t, []string{"place", "geocode"}, conf.Order)
	assert.Equal(t, "from-config.json", conf.Locations)
	maxDistance, err := conf.Options["geocode"].Float("max_distance", 0)
	assert.Nil(t, err)
	assert.Equal(t, 5.0, maxDistance)

	cellSize, err := conf.Options["geocode"].Float("cell_size", 0)
	assert.Nil(t, err)
	assert.Equal(t, 2.0, cellSize)

	allowUnknown, err := conf.Options["place"].Bool("allow_unknown_locations", false)
	assert.Nil(t, err)
	assert.True(t, allowUnknown)

	file = writeConfig(t, `locations = "from-config.json"`)
	conf, err = makeSettings(file, "timezone", "{}", "from-flag.json")
	require.Nil(t, err)
	assert.Equal(t, []string{"timezone"}, conf.Order)
	assert.Equal(t, "from-flag.json", conf.Locations)
}

func TestSettingsBrokenConfig(t *testing.T) {
	file := writeConfig(t, `order = ["nothing"]`)

	_, err := makeSettings(file, "", "{}", "locations.json")
	assert.NotNil(t, err)
}
