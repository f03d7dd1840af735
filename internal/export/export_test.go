package export

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/parquet-go/parquet-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/zyarat-mobile/zyarat/internal/artifact"
	"github.com/zyarat-mobile/zyarat/internal/kronodex"
)

func sampleEntries(t *testing.T) []kronodex.Entry {
	t.Helper()
	store := kronodex.New()
	for i := range artifact.Samples {
		require.NoError(t, store.Add(kronodex.NewEntry(&artifact.Samples[i], "")))
	}
	return store.Items()
}

func TestWriteYAML(t *testing.T) {
	entries := sampleEntries(t)
	path := filepath.Join(t.TempDir(), "kronodex.yaml")

	require.NoError(t, Write(entries, path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var doc Document
	require.NoError(t, yaml.Unmarshal(data, &doc))
	assert.Equal(t, len(entries), doc.Count)
	require.Len(t, doc.Records, len(entries))
	assert.Equal(t, "Aghlabid Coin", doc.Records[0].Title)
	assert.NotEmpty(t, doc.Records[0].ScanDate)
}

func TestWriteParquet(t *testing.T) {
	entries := sampleEntries(t)
	path := filepath.Join(t.TempDir(), "kronodex.parquet")

	require.NoError(t, Write(entries, path))

	rows, err := parquet.ReadFile[Record](path)
	require.NoError(t, err)
	require.Len(t, rows, len(entries))
	assert.Equal(t, "Aghlabid Coin", rows[0].Title)
	assert.Equal(t, "aghlabid coin", rows[0].ID)
}

func TestWriteRejectsUnknownExtension(t *testing.T) {
	err := Write(nil, filepath.Join(t.TempDir(), "kronodex.csv"))
	assert.Error(t, err)
}
