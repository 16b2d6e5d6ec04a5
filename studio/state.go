// Package studio owns the site's state: the gallery, blog, booking, and
// membership collections, the transient gallery filter, and the gateway
// that persists the collections to a snapshot store.
package studio

import (
	"sync"
	"time"

	"elevated-studio/core"
	"elevated-studio/notify"

	"github.com/oklog/ulid/v2"
	"github.com/sirupsen/logrus"
)

// State is the single source of truth for the site's collections. Handlers
// run concurrently, so every operation takes the mutex; within it each
// mutation is atomic, which is all the ordering the collections need.
//
// Gallery and bookings keep insertion order; blog posts are kept
// newest-first by prepending on publish. IDs are ULIDs: unique and
// monotonically increasing in creation order, with a random component
// breaking ties inside one millisecond.
type State struct {
	mu          sync.Mutex
	gallery     []core.GalleryItem
	blogPosts   []core.BlogPost
	bookings    []core.Booking
	memberships []core.Membership
	filter      core.Category

	toasts *notify.Notifier
}

// NewState returns an empty State with the filter set to "all". Toasts
// emitted by mutations go through n.
func NewState(n *notify.Notifier) *State {
	return &State{
		filter: core.FilterAll,
		toasts: n,
	}
}

func newID() string {
	return ulid.Make().String()
}

// AddGalleryImages appends one gallery item per URL, all under the given
// category, stamped with today's date. The caller guarantees each entry is
// already decoded into a displayable URL or data-URI; no content validation
// happens here.
func (s *State) AddGalleryImages(urls []string, category core.Category) []core.GalleryItem {
	date := time.Now().Format("1/2/2006")

	s.mu.Lock()
	added := make([]core.GalleryItem, 0, len(urls))
	for _, url := range urls {
		item := core.GalleryItem{
			ID:       newID(),
			URL:      url,
			Category: category,
			Date:     date,
		}
		s.gallery = append(s.gallery, item)
		added = append(added, item)
	}
	s.mu.Unlock()

	logrus.WithFields(logrus.Fields{
		"count":    len(added),
		"category": category,
	}).Info("Gallery images added")
	s.toasts.Show("Images uploaded successfully!")
	return added
}

// SetFilter replaces the transient gallery filter. Unknown values are kept
// as-is and behave like "all" when the gallery is read.
func (s *State) SetFilter(filter string) {
	s.mu.Lock()
	s.filter = core.Category(filter)
	s.mu.Unlock()
}

// Filter returns the current gallery filter.
func (s *State) Filter() core.Category {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.filter
}

// FilteredGallery returns the gallery narrowed to the current filter,
// preserving insertion order. "all" and any undeclared filter value return
// the whole gallery.
func (s *State) FilteredGallery() []core.GalleryItem {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.filter == core.FilterAll || !s.filter.Known() {
		out := make([]core.GalleryItem, len(s.gallery))
		copy(out, s.gallery)
		return out
	}

	out := make([]core.GalleryItem, 0)
	for _, item := range s.gallery {
		if item.Category == s.filter {
			out = append(out, item)
		}
	}
	return out
}

// Gallery returns a copy of the full gallery in insertion order.
func (s *State) Gallery() []core.GalleryItem {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]core.GalleryItem, len(s.gallery))
	copy(out, s.gallery)
	return out
}

// AddBlogPost publishes a post: it gets a fresh id and today's long-form
// publish date, and is prepended so the collection stays newest-first
// without re-sorting. Returns the stored record.
func (s *State) AddBlogPost(post core.BlogPost) core.BlogPost {
	post.ID = newID()
	post.Date = time.Now().Format("January 2, 2006")

	s.mu.Lock()
	s.blogPosts = append([]core.BlogPost{post}, s.blogPosts...)
	s.mu.Unlock()

	logrus.WithFields(logrus.Fields{
		"post_id": post.ID,
		"title":   post.Title,
	}).Info("Blog post published")
	s.toasts.Show("Blog post published successfully!")
	return post
}

// DeleteBlogPost removes the post with the given id. Deleting a missing id
// is a no-op, not an error.
func (s *State) DeleteBlogPost(id string) {
	s.mu.Lock()
	kept := s.blogPosts[:0]
	for _, post := range s.blogPosts {
		if post.ID != id {
			kept = append(kept, post)
		}
	}
	s.blogPosts = kept
	s.mu.Unlock()

	logrus.WithField("post_id", id).Info("Blog post deleted")
	s.toasts.Show("Blog post deleted")
}

// BlogPosts returns a copy of the posts, newest first.
func (s *State) BlogPosts() []core.BlogPost {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]core.BlogPost, len(s.blogPosts))
	copy(out, s.blogPosts)
	return out
}

// BlogPost looks up a single post by id.
func (s *State) BlogPost(id string) (core.BlogPost, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, post := range s.blogPosts {
		if post.ID == id {
			return post, true
		}
	}
	return core.BlogPost{}, false
}

// AddBooking stores an appointment request: fresh id, status pending,
// createdAt now, appended in arrival order. It does not toast; the booking
// flow shows its own confirmation after the relay attempt.
func (s *State) AddBooking(b core.Booking) core.Booking {
	b.ID = newID()
	b.Status = core.BookingPending
	b.CreatedAt = time.Now()

	s.mu.Lock()
	s.bookings = append(s.bookings, b)
	s.mu.Unlock()

	logrus.WithFields(logrus.Fields{
		"booking_id": b.ID,
		"service":    b.Service,
		"date":       b.Date,
	}).Info("Booking created")
	return b
}

// Bookings returns a copy of the bookings in arrival order.
func (s *State) Bookings() []core.Booking {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]core.Booking, len(s.bookings))
	copy(out, s.bookings)
	return out
}

// AddMembership records a plan signup and toasts the confirmation.
func (s *State) AddMembership(m core.Membership) core.Membership {
	m.ID = newID()
	m.CreatedAt = time.Now()

	s.mu.Lock()
	s.memberships = append(s.memberships, m)
	s.mu.Unlock()

	plan, _ := core.PlanByID(m.PlanID)
	logrus.WithFields(logrus.Fields{
		"membership_id": m.ID,
		"plan":          m.PlanID,
	}).Info("Membership signup recorded")
	s.toasts.Show("Successfully subscribed to " + plan.Name + " plan!")
	return m
}

// Memberships returns a copy of the recorded signups.
func (s *State) Memberships() []core.Membership {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]core.Membership, len(s.memberships))
	copy(out, s.memberships)
	return out
}

// collections returns copies of the three persisted collections under one
// lock acquisition, for the gateway to serialize.
func (s *State) collections() (gallery []core.GalleryItem, posts []core.BlogPost, bookings []core.Booking) {
	s.mu.Lock()
	defer s.mu.Unlock()
	gallery = make([]core.GalleryItem, len(s.gallery))
	copy(gallery, s.gallery)
	posts = make([]core.BlogPost, len(s.blogPosts))
	copy(posts, s.blogPosts)
	bookings = make([]core.Booking, len(s.bookings))
	copy(bookings, s.bookings)
	return gallery, posts, bookings
}

// Wholesale replacement, used only by the gateway at startup.

func (s *State) setGallery(items []core.GalleryItem) {
	s.mu.Lock()
	s.gallery = items
	s.mu.Unlock()
}

func (s *State) setBlogPosts(posts []core.BlogPost) {
	s.mu.Lock()
	s.blogPosts = posts
	s.mu.Unlock()
}

func (s *State) setBookings(bookings []core.Booking) {
	s.mu.Lock()
	s.bookings = bookings
	s.mu.Unlock()
}
