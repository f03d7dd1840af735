package events

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultCatalog(t *testing.T) {
	c := Default()

	require.NotEmpty(t, c.All())

	e, ok := c.Get("el-jem")
	require.True(t, ok)
	assert.Equal(t, "El Jem Amphitheatre", e.Title)
	assert.False(t, e.Free())

	e, ok = c.Get("kairouan-medina")
	require.True(t, ok)
	assert.True(t, e.Free())

	_, ok = c.Get("atlantis")
	assert.False(t, ok)

	ids := c.IDs()
	assert.Equal(t, []string{"carthage", "el-jem", "bardo", "dougga", "kairouan-medina"}, ids)
}

func TestLoadCatalogFromYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "events.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
events:
  - id: sidi-bou-said
    title: Sidi Bou Said Village Walk
    location: Sidi Bou Said
    price: 5
  - id: matmata
    title: Matmata Troglodyte Homes
    location: Matmata, Gabès Governorate
    price: 0
`), 0644))

	c, err := LoadCatalog(path)
	require.NoError(t, err)
	assert.Len(t, c.All(), 2)

	e, ok := c.Get("matmata")
	require.True(t, ok)
	assert.True(t, e.Free())
}

func TestLoadCatalogErrors(t *testing.T) {
	dir := t.TempDir()

	tests := []struct {
		name string
		body string
	}{
		{name: "empty file", body: ""},
		{name: "missing id", body: "events:\n  - title: Nameless\n"},
		{name: "duplicate id", body: "events:\n  - id: x\n    title: A\n  - id: x\n    title: B\n"},
		{name: "not yaml", body: "{{{"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(dir, "bad.yaml")
			require.NoError(t, os.WriteFile(path, []byte(tt.body), 0644))
			_, err := LoadCatalog(path)
			assert.Error(t, err)
		})
	}
}

func TestLoadCatalogEmptyPathUsesDefaults(t *testing.T) {
	c, err := LoadCatalog("")
	require.NoError(t, err)
	assert.Equal(t, Default().All(), c.All())
}
