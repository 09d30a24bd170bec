// Package tutor converts a two-column Twiddler chord CSV into the JSON
// document read by the Twiddler Tutor application.
//
// Each chord cell holds a thumb/mode token and the finger chord separated
// by a space, e.g. "O RLLL". The output keeps the token in "m":
//
//	{"chords":[{"chord":"RLLL","key":"a","m":"O"}]}
package tutor

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"io"
	"os"
	"strings"

	"github.com/cockroachdb/errors"
)

const filePerm = 0o644

// Row is one line of the input table.
type Row struct {
	Chord string
	Key   string
}

// Chord is one entry of the Tutor document. Chord is nil when the cell
// had no finger part.
type Chord struct {
	Chord *string `json:"chord"`
	Key   string  `json:"key"`
	M     string  `json:"m"`
}

// Document is the Tutor configuration.
type Document struct {
	Chords []Chord `json:"chords"`
}

// Read parses the input table. The first line is a header and is skipped.
func Read(r io.Reader) ([]Row, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = 2

	if _, err := cr.Read(); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, errors.WithHint(errors.New("tutor table is empty"),
				"the first line must be a header with two columns: chord,key")
		}

		return nil, errors.Wrap(err, "reading tutor header")
	}

	var rows []Row

	for {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			return rows, nil
		}

		if err != nil {
			return nil, errors.Wrap(err, "reading tutor row")
		}

		rows = append(rows, Row{Chord: rec[0], Key: rec[1]})
	}
}

// Convert reshapes rows into a Document.
func Convert(rows []Row) Document {
	doc := Document{Chords: make([]Chord, 0, len(rows))}

	for _, r := range rows {
		m, rest, found := strings.Cut(strings.TrimSpace(r.Chord), " ")

		c := Chord{Key: r.Key, M: m}
		if found {
			c.Chord = &rest
		}

		doc.Chords = append(doc.Chords, c)
	}

	return doc
}

// Write encodes doc as JSON.
func Write(w io.Writer, doc Document) error {
	return errors.Wrap(json.NewEncoder(w).Encode(doc), "encoding tutor document")
}

// ConvertFile reads the CSV at in and writes the Tutor JSON to out.
// It returns the number of chords written.
func ConvertFile(in, out string) (int, error) {
	f, err := os.Open(in)
	if err != nil {
		return 0, errors.Wrapf(err, "failed to open %s", in)
	}
	defer f.Close()

	rows, err := Read(f)
	if err != nil {
		return 0, errors.Wrapf(err, "failed to parse %s", in)
	}

	doc := Convert(rows)

	var buf bytes.Buffer
	if err := Write(&buf, doc); err != nil {
		return 0, err
	}

	if err := os.WriteFile(out, buf.Bytes(), filePerm); err != nil {
		return 0, errors.Wrapf(err, "failed to write %s", out)
	}

	return len(doc.Chords), nil
}
