package studio

import (
	"context"
	"testing"

	"elevated-studio/core"
	"elevated-studio/stores/memory"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFlushLoadRoundTrip(t *testing.T) {
	ctx := context.Background()
	snaps := memory.NewStore()

	s := newTestState()
	s.AddGalleryImages([]string{"data:1", "data:2"}, core.CategoryBrows)
	s.AddBlogPost(core.BlogPost{Title: "T", Author: "A", Content: "C", ReadTime: 4})
	s.AddBooking(core.Booking{Name: "Jane", Email: "j@x.com", Phone: "555", Date: "2025-12-01", Time: "10:00", Service: "classic-lashes"})

	require.NoError(t, NewGateway(s, snaps).Flush(ctx))

	fresh := newTestState()
	NewGateway(fresh, snaps).Load(ctx)

	assert.Equal(t, s.Gallery(), fresh.Gallery())
	assert.Equal(t, s.BlogPosts(), fresh.BlogPosts())

	// Booking timestamps survive JSON with their wall-clock value.
	want, got := s.Bookings(), fresh.Bookings()
	require.Len(t, got, len(want))
	assert.Equal(t, want[0].ID, got[0].ID)
	assert.True(t, want[0].CreatedAt.Equal(got[0].CreatedAt))
}

func TestFlushLoadEmptyCollections(t *testing.T) {
	ctx := context.Background()
	snaps := memory.NewStore()

	empty := newTestState()
	require.NoError(t, NewGateway(empty, snaps).Flush(ctx))

	fresh := newTestState()
	NewGateway(fresh, snaps).Load(ctx)

	// Persisted-but-empty is honored; the sample data must not kick in.
	assert.Empty(t, fresh.Gallery())
	assert.Empty(t, fresh.BlogPosts())
	assert.Empty(t, fresh.Bookings())
}

func TestLoadSeedsWhenNothingPersisted(t *testing.T) {
	fresh := newTestState()
	NewGateway(fresh, memory.NewStore()).Load(context.Background())

	assert.Len(t, fresh.Gallery(), 18)
	assert.Len(t, fresh.BlogPosts(), 3)
	assert.Empty(t, fresh.Bookings())
}

func TestLoadMalformedKeyFallsBackPerKey(t *testing.T) {
	ctx := context.Background()
	snaps := memory.NewStore()

	s := newTestState()
	s.AddGalleryImages([]string{"data:1"}, core.CategoryLashes)
	require.NoError(t, NewGateway(s, snaps).Flush(ctx))

	// Corrupt only the blog slot.
	require.NoError(t, snaps.Put(ctx, core.KeyBlog, []byte("{not json")))

	fresh := newTestState()
	NewGateway(fresh, snaps).Load(ctx)

	// Gallery restored, blog left at its pre-load (empty) value.
	assert.Len(t, fresh.Gallery(), 1)
	assert.Empty(t, fresh.BlogPosts())
}

func TestLoadMalformedGallerySeedsSampleData(t *testing.T) {
	ctx := context.Background()
	snaps := memory.NewStore()
	require.NoError(t, snaps.Put(ctx, core.KeyGallery, []byte("[broken")))

	fresh := newTestState()
	NewGateway(fresh, snaps).Load(ctx)

	assert.Len(t, fresh.Gallery(), 18)
}

func TestLoadDiscardsStaleSampleGallery(t *testing.T) {
	ctx := context.Background()
	snaps := memory.NewStore()

	// The retired demo dataset pointed at an external image host.
	stale := newTestState()
	stale.setGallery([]core.GalleryItem{{ID: "1", URL: "https://images.unsplash.com/photo-1", Category: core.CategoryLashes}})
	require.NoError(t, NewGateway(stale, snaps).Flush(ctx))

	fresh := newTestState()
	NewGateway(fresh, snaps).Load(ctx)

	gallery := fresh.Gallery()
	require.Len(t, gallery, 18)
	for _, item := range gallery {
		assert.NotContains(t, item.URL, "https")
	}
}

func TestFlushIsRepeatable(t *testing.T) {
	ctx := context.Background()
	snaps := memory.NewStore()

	s := newTestState()
	s.SeedSampleData()
	g := NewGateway(s, snaps)

	require.NoError(t, g.Flush(ctx))
	require.NoError(t, g.Flush(ctx))

	fresh := newTestState()
	NewGateway(fresh, snaps).Load(ctx)
	assert.Equal(t, s.Gallery(), fresh.Gallery())
}
