package filesystem

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"elevated-studio/core"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPutGetRoundTrip(t *testing.T) {
	ctx := context.Background()
	s := NewStore(t.TempDir())

	require.NoError(t, s.Put(ctx, core.KeyGallery, []byte(`[]`)))

	data, err := s.Get(ctx, core.KeyGallery)
	require.NoError(t, err)
	assert.Equal(t, `[]`, string(data))
}

func TestGetMissingKey(t *testing.T) {
	s := NewStore(t.TempDir())
	_, err := s.Get(context.Background(), core.KeyBlog)
	assert.ErrorIs(t, err, core.ErrKeyNotFound)
}

func TestOneFilePerKey(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	s := NewStore(dir)

	require.NoError(t, s.Put(ctx, core.KeyGallery, []byte("g")))
	require.NoError(t, s.Put(ctx, core.KeyBlog, []byte("b")))

	_, err := os.Stat(filepath.Join(dir, core.KeyGallery+".json"))
	assert.NoError(t, err)
	_, err = os.Stat(filepath.Join(dir, core.KeyBlog+".json"))
	assert.NoError(t, err)
}

func TestRejectsPathLikeKeys(t *testing.T) {
	ctx := context.Background()
	s := NewStore(t.TempDir())

	for _, key := range []string{"", ".", "..", "../escape", "a/b"} {
		_, err := s.Get(ctx, key)
		assert.Error(t, err, "key %q", key)
		assert.NotErrorIs(t, err, core.ErrKeyNotFound)
		assert.Error(t, s.Put(ctx, key, []byte("x")), "key %q", key)
	}
}
