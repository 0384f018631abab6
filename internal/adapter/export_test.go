package adapter

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	m "github.com/aryanadla/twinTrim/internal/model"
)

func sampleReport() m.DuplicateReport {
	return m.DuplicateReport{
		Sets: []m.DuplicateSet{
			{
				Original: m.Candidate{Path: "/data/a.txt", Size: 10, Index: 0},
				Duplicates: []m.Candidate{
					{Path: "/data/b.txt", Size: 10, Index: 1},
					{Path: "/data/sub/c.txt", Size: 10, Index: 4},
				},
			},
		},
	}
}

func TestNewExporter(t *testing.T) {
	text, err := NewExporter("text")
	require.NoError(t, err)
	assert.IsType(t, &TextExporter{}, text)

	def, err := NewExporter("")
	require.NoError(t, err)
	assert.IsType(t, &TextExporter{}, def)

	yml, err := NewExporter("YAML")
	require.NoError(t, err)
	assert.IsType(t, &YAMLExporter{}, yml)

	_, err = NewExporter("csv")
	require.Error(t, err)
}

func TestTextExporter_Export(t *testing.T) {
	out := filepath.Join(t.TempDir(), "report.txt")

	err := (&TextExporter{}).Export(sampleReport(), m.Path(out))
	require.NoError(t, err)

	content, err := os.ReadFile(out)
	require.NoError(t, err)

	expected := "Original file: /data/a.txt\n" +
		"  Duplicate: /data/b.txt (Size: 10 bytes)\n" +
		"  Duplicate: /data/sub/c.txt (Size: 10 bytes)\n" +
		"\nTotal potential space saved: 0.00 MB\n"
	assert.Equal(t, expected, string(content))
}

func TestYAMLExporter_Export(t *testing.T) {
	out := filepath.Join(t.TempDir(), "report.yaml")

	err := (&YAMLExporter{}).Export(sampleReport(), m.Path(out))
	require.NoError(t, err)

	content, err := os.ReadFile(out)
	require.NoError(t, err)

	var doc yamlReport
	require.NoError(t, yaml.Unmarshal(content, &doc))

	assert.Equal(t, 1, doc.DuplicateSetCount)
	assert.Equal(t, uint64(20), doc.ReclaimableBytes)
	require.Len(t, doc.Sets, 1)
	assert.Equal(t, "/data/a.txt", doc.Sets[0].Original.Path)
	require.Len(t, doc.Sets[0].Duplicates, 2)
	assert.Equal(t, "/data/sub/c.txt", doc.Sets[0].Duplicates[1].Path)
}
