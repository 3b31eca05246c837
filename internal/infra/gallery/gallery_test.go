package gallery

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func writeGallery(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func TestOpenAndRandom(t *testing.T) {
	path := filepath.Join(t.TempDir(), "thicc.json")
	writeGallery(t, path, `{"images": [{"name": "one", "url": "https://cdn.example/1.png"}]}`)

	g, err := Open(path, zap.NewNop())
	require.NoError(t, err)
	defer g.Close()

	require.Equal(t, 1, g.Len())
	img, ok := g.Random()
	require.True(t, ok)
	assert.Equal(t, "https://cdn.example/1.png", img.URL)
}

func TestMissingFileIsEmptyNotFatal(t *testing.T) {
	g, err := Open(filepath.Join(t.TempDir(), "nope.json"), zap.NewNop())
	require.NoError(t, err)
	defer g.Close()

	assert.Equal(t, 0, g.Len())
	_, ok := g.Random()
	assert.False(t, ok)
}

func TestReloadPicksUpNewEntries(t *testing.T) {
	path := filepath.Join(t.TempDir(), "thicc.json")
	writeGallery(t, path, `{"images": []}`)

	g, err := Open(path, zap.NewNop())
	require.NoError(t, err)
	defer g.Close()
	require.Equal(t, 0, g.Len())

	writeGallery(t, path, `{"images": [{"name": "a", "url": "u1"}, {"name": "b", "url": "u2"}]}`)
	g.Reload()
	assert.Equal(t, 2, g.Len())
}

func TestReloadKeepsPreviousSetOnCorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "thicc.json")
	writeGallery(t, path, `{"images": [{"name": "a", "url": "u1"}]}`)

	g, err := Open(path, zap.NewNop())
	require.NoError(t, err)
	defer g.Close()
	require.Equal(t, 1, g.Len())

	writeGallery(t, path, `{not json`)
	g.Reload()
	assert.Equal(t, 1, g.Len())
}
