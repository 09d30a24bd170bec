package csvio

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"twiddler-tools/internal/chord"
)

func TestRead(t *testing.T) {
	data := `Thumbs,Fingers,Actions
1,LOOO,[KB]a
"",OOOR,"[SYS]toggle"
4,OLOO,"[KB]""quoted"", with comma"
`

	entries, err := Read(strings.NewReader(data))
	require.NoError(t, err)

	assert.Equal(t, []chord.Entry{
		{Thumbs: "1", Fingers: "LOOO", Action: "[KB]a"},
		{Thumbs: "", Fingers: "OOOR", Action: "[SYS]toggle"},
		{Thumbs: "4", Fingers: "OLOO", Action: `[KB]"quoted", with comma`},
	}, entries)
}

func TestReadKeepsEmptyCellsAndLeadingZeros(t *testing.T) {
	data := "\ufeffthumbs , FINGERS,Actions\n01,,\nNA,null,\n"

	entries, err := Read(strings.NewReader(data))
	require.NoError(t, err)

	assert.Equal(t, []chord.Entry{
		{Thumbs: "01", Fingers: "", Action: ""},
		{Thumbs: "NA", Fingers: "null", Action: ""},
	}, entries)
}

func TestReadHeaderOnly(t *testing.T) {
	entries, err := Read(strings.NewReader("Thumbs,Fingers,Actions\n"))
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestReadMalformed(t *testing.T) {
	tests := []struct {
		name       string
		data       string
		wantHeader bool
	}{
		{name: "empty", data: "", wantHeader: true},
		{name: "renamed column", data: "Thumbs,Fingers,Action\n1,A,[KB]x\n", wantHeader: true},
		{name: "missing column", data: "Thumbs,Fingers\n1,A\n", wantHeader: true},
		{name: "extra column", data: "Thumbs,Fingers,Actions,Notes\n", wantHeader: true},
		{name: "ragged row", data: "Thumbs,Fingers,Actions\n1,A\n"},
		{name: "bad quoting", data: "Thumbs,Fingers,Actions\n1,A,\"[KB]x\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Read(strings.NewReader(tt.data))
			require.Error(t, err)
			assert.Equal(t, tt.wantHeader, errors.Is(err, ErrHeader), "%+v", err)

			if tt.wantHeader {
				assert.Contains(t, errors.FlattenHints(err), "Thumbs,Fingers,Actions")
			}
		})
	}
}

func TestReadFileMissing(t *testing.T) {
	_, err := ReadFile(filepath.Join(t.TempDir(), "nope.csv"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}
