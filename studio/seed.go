package studio

import (
	"fmt"
	"time"

	"elevated-studio/core"

	"github.com/sirupsen/logrus"
)

var sampleGalleryFiles = []string{
	"IMG_1614.JPG", "IMG_1617.JPG", "IMG_1618.JPG", "IMG_1620.JPG",
	"IMG_1622.JPG", "IMG_1623.JPG", "IMG_1630.JPG", "IMG_1631.JPG",
	"IMG_1637.JPG", "IMG_1638.JPG", "IMG_1639.JPG", "IMG_1643.JPG",
	"IMG_1645.JPG", "IMG_1647.JPG", "IMG_1648.JPG", "IMG_1650.JPG",
	"IMG_1652.JPG", "IMG_1653.JPG",
}

// SeedSampleData fills the gallery and blog with the built-in demo dataset.
// It is called only when no persisted snapshot exists (or when the persisted
// gallery is recognized as stale sample data). Bookings always start empty.
func (s *State) SeedSampleData() {
	gallery := make([]core.GalleryItem, 0, len(sampleGalleryFiles))
	for i, file := range sampleGalleryFiles {
		gallery = append(gallery, core.GalleryItem{
			ID:       fmt.Sprintf("%d", i+1),
			URL:      "/gallery/" + file,
			Category: core.CategoryLashes,
			Date:     time.Date(2025, time.November, 28-i, 0, 0, 0, 0, time.UTC).Format("1/2/2006"),
		})
	}

	s.mu.Lock()
	s.gallery = gallery
	s.blogPosts = samplePosts()
	s.mu.Unlock()

	logrus.WithFields(logrus.Fields{
		"gallery_items": len(gallery),
		"blog_posts":    3,
	}).Info("Seeded sample data")
}

func samplePosts() []core.BlogPost {
	return []core.BlogPost{
		{
			ID:      "1",
			Title:   "The Ultimate Guide to Lash Extensions",
			Author:  "Sarah Johnson",
			Image:   "/gallery/IMG_1622.JPG",
			Excerpt: "Everything you need to know about choosing the perfect lash extensions for your eye shape and lifestyle.",
			Content: `Lash extensions have become increasingly popular as a beauty enhancement that saves time and creates stunning results. Whether you're looking for a natural look or dramatic volume, understanding the different types of extensions is key to achieving your desired results.

Classic lash extensions offer a natural enhancement, with one extension applied to each natural lash. They're perfect for those who want subtle definition and length without too much drama.

Volume lashes create a fuller, more glamorous look by applying multiple ultra-fine extensions to each natural lash. This technique is ideal for those with sparse lashes or anyone wanting a more dramatic effect.

Hybrid lashes combine both classic and volume techniques, offering the best of both worlds with texture and dimension.

Remember, proper aftercare is essential for maintaining your lash extensions. Avoid oil-based products, be gentle when cleansing, and brush your lashes daily to keep them looking their best!`,
			Date:     "November 28, 2025",
			Category: "Tutorials",
			ReadTime: 7,
		},
		{
			ID:      "2",
			Title:   "Threading vs. Waxing: Which is Better for Your Brows?",
			Author:  "Maria Garcia",
			Image:   "https://images.unsplash.com/photo-1515688594390-b649af70d282?w=800",
			Excerpt: "Discover the differences between threading and waxing, and find out which method is best for achieving perfect brows.",
			Content: `When it comes to shaping your eyebrows, two popular methods stand out: threading and waxing. Both have their unique advantages, and the best choice depends on your skin type, pain tolerance, and desired results.

Threading is an ancient hair removal technique that uses twisted cotton thread to remove hair from the follicle. It's incredibly precise, making it ideal for creating clean, defined brow shapes. Threading is also gentle on sensitive skin and doesn't use any chemicals or heat.

Waxing, on the other hand, removes hair in larger sections, making it faster for covering more area. It can be more efficient for shaping and cleaning up larger areas around the brows. However, it can be harsher on sensitive skin.

For most clients with sensitive skin or those who want precise shaping, we recommend threading. It's gentler, more accurate, and creates beautiful, crisp lines. Plus, the results last just as long as waxing – typically 3-4 weeks!`,
			Date:     "November 25, 2025",
			Category: "Tips & Tricks",
			ReadTime: 5,
		},
		{
			ID:      "3",
			Title:   "How to Care for Your Lashes: Expert Tips",
			Author:  "Emily Chen",
			Image:   "https://images.unsplash.com/photo-1487412912498-0447578fcca8?w=800",
			Excerpt: "Learn professional tips for maintaining healthy natural lashes and extending the life of your lash extensions.",
			Content: `Whether you have natural lashes or extensions, proper care is essential for maintaining their health and beauty. Here are our top expert tips for lash care that will keep your eyes looking gorgeous.

First and foremost, be gentle! Your lashes are delicate, so avoid rubbing your eyes and be careful when removing makeup. Use a gentle, oil-free makeup remover and pat – don't rub.

If you have lash extensions, avoid oil-based products completely. Oil breaks down the adhesive, causing your extensions to fall out prematurely. Stick to oil-free cleansers, makeup, and skincare products.

Brush your lashes daily with a clean spoolie brush. This keeps them looking neat and prevents tangling. For extensions, brush them gently from mid-length to tips.

Stay away from steam and excessive heat for the first 24-48 hours after getting extensions. This allows the adhesive to fully cure.

Sleep on your back when possible to avoid crushing your lashes against the pillow. If you're a side sleeper, consider using a silk pillowcase to reduce friction.

Schedule regular fills every 2-3 weeks to maintain your extensions. This keeps them looking full and beautiful while protecting your natural lashes.

Finally, give your natural lashes a break every few months. Taking a short break from extensions allows your natural lashes to rest and rejuvenate.`,
			Date:     "November 22, 2025",
			Category: "Tips & Tricks",
			ReadTime: 6,
		},
	}
}
