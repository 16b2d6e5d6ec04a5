package core

type (
	// Category classifies gallery images by the kind of work shown.
	Category string

	// GalleryItem is a single image in the studio gallery. Items are
	// immutable once created and live in insertion order.
	GalleryItem struct {
		ID       string   `json:"id"`
		URL      string   `json:"url"` // data-URI or site-relative path
		Category Category `json:"category"`
		Date     string   `json:"date"`
	}
)

const (
	CategoryLashes    Category = "lashes"
	CategoryBrows     Category = "brows"
	CategoryThreading Category = "threading"
	CategoryOther     Category = "other"

	// FilterAll is the gallery filter value that matches every category.
	FilterAll Category = "all"
)

// Known reports whether c is one of the declared gallery categories.
func (c Category) Known() bool {
	switch c {
	case CategoryLashes, CategoryBrows, CategoryThreading, CategoryOther:
		return true
	}
	return false
}
