package bolt

import (
	"context"
	"path/filepath"
	"testing"

	"elevated-studio/core"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *boltStore {
	t.Helper()
	s := NewStore(filepath.Join(t.TempDir(), "studio.bolt"))
	t.Cleanup(func() { s.Close() })
	return s
}

func TestPutGetRoundTrip(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	require.NoError(t, s.Put(ctx, core.KeyBookings, []byte(`[{"id":"x"}]`)))

	data, err := s.Get(ctx, core.KeyBookings)
	require.NoError(t, err)
	assert.Equal(t, `[{"id":"x"}]`, string(data))
}

func TestGetMissingKey(t *testing.T) {
	s := newTestStore(t)
	_, err := s.Get(context.Background(), core.KeyGallery)
	assert.ErrorIs(t, err, core.ErrKeyNotFound)
}

func TestPutOverwrites(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	require.NoError(t, s.Put(ctx, core.KeyBlog, []byte("old")))
	require.NoError(t, s.Put(ctx, core.KeyBlog, []byte("new")))

	data, err := s.Get(ctx, core.KeyBlog)
	require.NoError(t, err)
	assert.Equal(t, "new", string(data))
}
