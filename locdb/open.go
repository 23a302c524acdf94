package locdb

import (
	"bufio"
	"io"
	"os"
	"strings"

	"github.com/juju/errors"
	"github.com/klauspost/compress/gzip"
)

// GzipSuffix marks paths which are treated as gzipped files.
const GzipSuffix = ".gz"

type gzipReadCloser struct {
	*gzip.Reader

	file *os.File
}

func (g gzipReadCloser) Close() error {
	g.Reader.Close() // nolint

	return g.file.Close()
}

// Open opens a file for reading. Files with names ending in .gz are
// decompressed transparently.
func Open(path string) (io.ReadCloser, error) {
	rawFile, err := os.Open(path)
	if err != nil {
		return nil, errors.Annotatef(err, "Cannot open file %s", path)
	}

	if !strings.HasSuffix(path, GzipSuffix) {
		return rawFile, nil
	}

	gzipFile, err := gzip.NewReader(bufio.NewReader(rawFile))
	if err != nil {
		rawFile.Close() // nolint
		return nil, errors.Annotatef(err, "Incorrect gzip archive %s", path)
	}

	return gzipReadCloser{Reader: gzipFile, file: rawFile}, nil
}
