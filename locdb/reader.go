package locdb

import (
	"bufio"
	"bytes"
	"encoding/json"
	"io"

	log "github.com/sirupsen/logrus"

	"github.com/juju/errors"
)

// Reader is a wrapper over bufio.Reader to convert each JSON line into
// Record instance.
type Reader struct {
	reader *bufio.Reader
	line   int
}

// Read returns next record. Blank lines are skipped. At the end of the
// stream io.EOF is returned. Malformed record is an error: database is
// an authoritative source and partial load is not what anyone wants.
func (lr *Reader) Read() (*Record, error) {
	data, err := lr.next()
	if err != nil {
		if err == io.EOF {
			return nil, io.EOF
		}
		return nil, errors.Annotate(err, "Cannot read new record")
	}

	record := &Record{}
	if err := json.Unmarshal(data, record); err != nil {
		log.WithFields(log.Fields{
			"line": lr.line,
			"err":  err,
		}).Debug("Cannot parse record")

		return nil, errors.Annotatef(err, "Cannot parse record at line %d", lr.line)
	}

	return record, nil
}

// Line returns a number of the last read line.
func (lr *Reader) Line() int {
	return lr.line
}

func (lr *Reader) next() ([]byte, error) {
	for {
		data, err := lr.reader.ReadBytes('\n')
		if len(data) > 0 {
			lr.line++
		}

		data = bytes.TrimSpace(data)
		if len(data) > 0 {
			return data, nil
		}
		if err != nil {
			return nil, err
		}
	}
}

// NewReader converts given io.Reader instance into Reader.
func NewReader(rawReader io.Reader) *Reader {
	return &Reader{reader: bufio.NewReader(rawReader)}
}
