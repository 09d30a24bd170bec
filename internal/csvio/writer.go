package csvio

import (
	"bufio"
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/cockroachdb/errors"

	"twiddler-tools/internal/chord"
)

// File permission constants.
const (
	filePerm = 0o644
)

// DefaultSuffix is appended to the input name to build the output name.
const DefaultSuffix = "_w_modifiers"

// Write writes the header and entries with every field quoted.
func Write(w io.Writer, entries []chord.Entry) error {
	bw := bufio.NewWriter(w)

	if err := writeRecord(bw, Columns...); err != nil {
		return errors.Wrap(err, "writing header")
	}

	for _, e := range entries {
		if err := writeRecord(bw, e.Thumbs, e.Fingers, e.Action); err != nil {
			return errors.Wrapf(err, "writing row %s", e)
		}
	}

	return errors.Wrap(bw.Flush(), "flushing chord table")
}

// WriteFile writes entries to path, replacing any existing file.
func WriteFile(path string, entries []chord.Entry) error {
	var buf bytes.Buffer

	if err := Write(&buf, entries); err != nil {
		return err
	}

	if err := os.WriteFile(path, buf.Bytes(), filePerm); err != nil {
		return errors.Wrapf(err, "failed to write chord table %s", path)
	}

	return nil
}

// OutputPath derives the output file name by inserting suffix between the
// stem and the extension of input: "dir/cfg.csv" -> "dir/cfg_w_modifiers.csv".
func OutputPath(input, suffix string) string {
	dir, base := filepath.Split(input)
	ext := filepath.Ext(base)

	return filepath.Join(dir, strings.TrimSuffix(base, ext)+suffix+ext)
}

// writeRecord writes one line with all fields quoted. Quotes inside a field
// are doubled.
func writeRecord(w *bufio.Writer, fields ...string) error {
	for i, f := range fields {
		if i > 0 {
			if err := w.WriteByte(','); err != nil {
				return err
			}
		}

		if _, err := w.WriteString(`"` + strings.ReplaceAll(f, `"`, `""`) + `"`); err != nil {
			return err
		}
	}

	return w.WriteByte('\n')
}
