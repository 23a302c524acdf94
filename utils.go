package main

import (
	"bufio"
	"bytes"
	"encoding/json"
	"io"
	"os"
	"strings"

	"github.com/juju/errors"
	"github.com/klauspost/compress/gzip"

	"github.com/9seconds/carmen/locdb"
	"github.com/9seconds/carmen/resolvers"
	"github.com/9seconds/carmen/stats"
	"github.com/9seconds/carmen/tweet"
)

const stdinName = "<stdin>"

type nopWriteCloser struct {
	io.Writer
}

func (nopWriteCloser) Close() error {
	return nil
}

type outputFile struct {
	buffered *bufio.Writer
	gzipped  *gzip.Writer
	file     io.Closer
}

func (o *outputFile) Write(p []byte) (int, error) {
	return o.buffered.Write(p)
}

func (o *outputFile) Close() error {
	if err := o.buffered.Flush(); err != nil {
		return errors.Annotate(err, "Cannot flush output")
	}

	if o.gzipped != nil {
		if err := o.gzipped.Close(); err != nil {
			return errors.Annotate(err, "Cannot finish gzip stream")
		}
	}

	return o.file.Close()
}

func openInput(path string) (io.ReadCloser, string, error) {
	if path == "" || path == "-" {
		return os.Stdin, stdinName, nil
	}

	file, err := locdb.Open(path)
	if err != nil {
		return nil, "", err
	}

	return file, path, nil
}

func openOutput(path string) (io.WriteCloser, error) {
	if path == "" || path == "-" {
		return &outputFile{
			buffered: bufio.NewWriter(os.Stdout),
			file:     nopWriteCloser{os.Stdout},
		}, nil
	}

	file, err := os.Create(path)
	if err != nil {
		return nil, errors.Annotatef(err, "Cannot create file %s", path)
	}

	rv := &outputFile{file: file}

	if strings.HasSuffix(path, locdb.GzipSuffix) {
		rv.gzipped = gzip.NewWriter(file)
		rv.buffered = bufio.NewWriter(rv.gzipped)
	} else {
		rv.buffered = bufio.NewWriter(file)
	}

	return rv, nil
}

// processTweets resolves every tweet of the input and writes it with
// attached location to the output. Lines which are not JSON objects are
// reported and skipped. Resolver failure stops processing.
func processTweets(set *resolvers.ResolverSet,
	input io.Reader,
	output io.Writer,
	runStats *stats.Stats,
	inputName string) error {
	reader := bufio.NewReader(input)
	encoder := json.NewEncoder(output)
	encoder.SetEscapeHTML(false)

	for line := 1; ; line++ {
		data, readErr := reader.ReadBytes('\n')
		if readErr != nil && readErr != io.EOF {
			return errors.Annotate(readErr, "Cannot read tweets")
		}

		if data = bytes.TrimSpace(data); len(data) > 0 {
			if err := processTweet(set, data, encoder, runStats, inputName, line); err != nil {
				return err
			}
		}

		if readErr == io.EOF {
			return nil
		}
	}
}

func processTweet(set *resolvers.ResolverSet,
	data []byte,
	encoder *json.Encoder,
	runStats *stats.Stats,
	inputName string,
	line int) error {
	twt, err := tweet.Parse(data)
	if err != nil {
		inputLogger(inputName, line).WithField("err", err).Warn("Invalid JSON object.")
		runStats.Skip()

		return nil
	}

	runStats.Seen(twt)

	loc, err := set.ResolveTweet(twt)
	if err != nil {
		return errors.Annotatef(err, "Cannot resolve tweet at %s:%d", inputName, line)
	}

	if loc != nil {
		twt.SetLocation(loc)
		runStats.ResolvedTo(loc)
	}

	if err := encoder.Encode(twt); err != nil {
		return errors.Annotate(err, "Cannot write tweet")
	}

	return nil
}
