package csvio

import (
	"bytes"
	"encoding/csv"
	"io"
	"os"
	"strings"

	"github.com/cockroachdb/errors"

	"twiddler-tools/internal/chord"
)

// Column names of a chord table, in order.
var Columns = []string{"Thumbs", "Fingers", "Actions"}

// ErrHeader is returned when a table does not start with the expected header.
var ErrHeader = errors.New("malformed chord table header")

const utf8BOM = "\ufeff"

// ReadFile reads a chord table from path.
func ReadFile(path string) ([]chord.Entry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read chord table %s", path)
	}

	entries, err := Read(bytes.NewReader(data))
	if err != nil {
		return nil, errors.Wrapf(err, "failed to parse chord table %s", path)
	}

	return entries, nil
}

// Read parses a chord table. The first record must be the header.
func Read(r io.Reader) ([]chord.Entry, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = len(Columns)

	header, err := cr.Read()
	if errors.Is(err, io.EOF) {
		return nil, errors.WithHint(errors.Wrap(ErrHeader, "table is empty"), headerHint())
	}

	if err != nil {
		var perr *csv.ParseError
		if errors.As(err, &perr) && errors.Is(perr.Err, csv.ErrFieldCount) {
			return nil, errors.WithHint(errors.Wrapf(ErrHeader, "expected %d columns", len(Columns)), headerHint())
		}

		return nil, errors.Wrap(err, "reading header")
	}

	if err := checkHeader(header); err != nil {
		return nil, err
	}

	var entries []chord.Entry

	for {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			return entries, nil
		}

		if err != nil {
			return nil, errors.Wrap(err, "reading chord row")
		}

		entries = append(entries, chord.Entry{
			Thumbs:  rec[0],
			Fingers: rec[1],
			Action:  rec[2],
		})
	}
}

func checkHeader(header []string) error {
	for i, want := range Columns {
		got := strings.TrimSpace(header[i])
		if i == 0 {
			got = strings.TrimPrefix(got, utf8BOM)
		}

		if !strings.EqualFold(got, want) {
			return errors.WithHint(
				errors.Wrapf(ErrHeader, "column %d is %q, want %q", i+1, got, want),
				headerHint())
		}
	}

	return nil
}

func headerHint() string {
	return "the first line must be: " + strings.Join(Columns, ",")
}
