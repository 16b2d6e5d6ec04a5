package studio

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"sync"
	"time"

	"elevated-studio/core"

	"github.com/sirupsen/logrus"
)

// AutoSaveInterval is how often the gateway flushes the collections to the
// snapshot store. Mutations between ticks are lost on an abnormal exit; a
// clean shutdown gets a final flush.
const AutoSaveInterval = 30 * time.Second

// Gateway bridges the State to a SnapshotStore. It only ever reads a copy
// of the collections to serialize, or replaces them wholesale at startup;
// it never mutates the live collections in place.
type Gateway struct {
	state *State
	snaps core.SnapshotStore

	// flushMu makes Flush idempotent under overlap: the autosave tick and
	// the teardown flush must never interleave writes to the same key.
	flushMu sync.Mutex
}

// NewGateway returns a Gateway persisting state through snaps.
func NewGateway(state *State, snaps core.SnapshotStore) *Gateway {
	return &Gateway{state: state, snaps: snaps}
}

// Load restores the collections from the snapshot store. Each key is
// handled independently: a missing or malformed key leaves that collection
// at whatever it already holds. With no persisted gallery at all, the
// built-in sample dataset is seeded instead. A persisted gallery whose
// first URL points at an external host is the retired demo dataset; it is
// discarded and re-seeded.
func (g *Gateway) Load(ctx context.Context) {
	data, err := g.snaps.Get(ctx, core.KeyGallery)
	switch {
	case errors.Is(err, core.ErrKeyNotFound):
		g.state.SeedSampleData()
	case err != nil:
		logrus.WithError(err).WithField("key", core.KeyGallery).Warn("Failed to read gallery snapshot, seeding sample data")
		g.state.SeedSampleData()
	default:
		var gallery []core.GalleryItem
		if err := json.Unmarshal(data, &gallery); err != nil {
			logrus.WithError(err).WithField("key", core.KeyGallery).Warn("Malformed gallery snapshot, seeding sample data")
			g.state.SeedSampleData()
		} else if staleSampleGallery(gallery) {
			logrus.WithField("key", core.KeyGallery).Info("Persisted gallery is retired sample data, re-seeding")
			g.state.SeedSampleData()
		} else {
			g.state.setGallery(gallery)
		}
	}

	if data, err := g.snaps.Get(ctx, core.KeyBlog); err == nil {
		var posts []core.BlogPost
		if err := json.Unmarshal(data, &posts); err != nil {
			logrus.WithError(err).WithField("key", core.KeyBlog).Warn("Malformed blog snapshot, keeping current posts")
		} else {
			g.state.setBlogPosts(posts)
		}
	} else if !errors.Is(err, core.ErrKeyNotFound) {
		logrus.WithError(err).WithField("key", core.KeyBlog).Warn("Failed to read blog snapshot")
	}

	if data, err := g.snaps.Get(ctx, core.KeyBookings); err == nil {
		var bookings []core.Booking
		if err := json.Unmarshal(data, &bookings); err != nil {
			logrus.WithError(err).WithField("key", core.KeyBookings).Warn("Malformed bookings snapshot, keeping current bookings")
		} else {
			g.state.setBookings(bookings)
		}
	} else if !errors.Is(err, core.ErrKeyNotFound) {
		logrus.WithError(err).WithField("key", core.KeyBookings).Warn("Failed to read bookings snapshot")
	}
}

// staleSampleGallery recognizes the old demo dataset, which was hosted on
// an external image CDN rather than under /gallery.
func staleSampleGallery(gallery []core.GalleryItem) bool {
	return len(gallery) > 0 && strings.HasPrefix(gallery[0].URL, "https")
}

// Flush serializes the three collections to their keys. Writes are
// independent; a failed key is logged and the rest are still written. There
// is no transactionality across keys.
func (g *Gateway) Flush(ctx context.Context) error {
	g.flushMu.Lock()
	defer g.flushMu.Unlock()

	gallery, posts, bookings := g.state.collections()

	var firstErr error
	for _, slot := range []struct {
		key   string
		value any
	}{
		{core.KeyGallery, gallery},
		{core.KeyBlog, posts},
		{core.KeyBookings, bookings},
	} {
		data, err := json.Marshal(slot.value)
		if err != nil {
			logrus.WithError(err).WithField("key", slot.key).Error("Failed to serialize snapshot")
			if firstErr == nil {
				firstErr = err
			}
			continue
		}
		if err := g.snaps.Put(ctx, slot.key, data); err != nil {
			logrus.WithError(err).WithField("key", slot.key).Error("Failed to write snapshot")
			if firstErr == nil {
				firstErr = err
			}
		}
	}
	return firstErr
}

// AutoSave flushes on a fixed interval until ctx is cancelled, then runs
// one final flush so a clean shutdown never loses the tail of a session.
func (g *Gateway) AutoSave(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			if err := g.Flush(ctx); err != nil {
				logrus.WithError(err).Warn("Autosave flush failed")
			}
		case <-ctx.Done():
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			if err := g.Flush(shutdownCtx); err != nil {
				logrus.WithError(err).Error("Final flush on shutdown failed")
			}
			cancel()
			return
		}
	}
}
