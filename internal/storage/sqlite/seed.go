package sqlite

import "media_gallery/internal/domain/models"

func strPtr(s string) *string { return &s }

// seedItems — стартовое наполнение галереи. Вставляется один раз,
// только если таблица gallery_items пуста.
var seedItems = []models.GalleryItem{
	{
		ID:         "img-001",
		Type:       models.MediaTypeImage,
		Src:        "https://images.unsplash.com/photo-1506905925346-21bda4d32df4?w=1200",
		Alt:        "Mountain lake at dawn",
		DateGroup:  "May 1, 2025",
		Categories: models.Categories{"library", "nature", "landscape"},
	},
	{
		ID:         "img-002",
		Type:       models.MediaTypeImage,
		Src:        "https://images.unsplash.com/photo-1472214103451-9374bd1c798e?w=1200",
		Alt:        "Sunlit forest path",
		DateGroup:  "May 1, 2025",
		Categories: models.Categories{"library", "nature"},
	},
	{
		ID:         "img-003",
		Type:       models.MediaTypeImage,
		Src:        "https://images.unsplash.com/photo-1449824913935-59a10b8d2000?w=1200",
		Alt:        "City skyline at dusk",
		DateGroup:  "May 1, 2025",
		Categories: models.Categories{"library", "city"},
	},
	{
		ID:         "img-004",
		Type:       models.MediaTypeImage,
		Src:        "https://images.unsplash.com/photo-1501594907352-04cda38ebc29?w=1200",
		Alt:        "Golden Gate in fog",
		DateGroup:  "May 1, 2025",
		Categories: models.Categories{"library", "city", "architecture"},
	},
	{
		ID:         "vid-001",
		Type:       models.MediaTypeVideo,
		Src:        "https://storage.googleapis.com/gtv-videos-bucket/sample/BigBuckBunny.mp4",
		Alt:        "Big Buck Bunny",
		Poster:     strPtr("https://images.unsplash.com/photo-1574267432553-4b4628081c31?w=1200"),
		DateGroup:  "May 1, 2025",
		Categories: models.Categories{"library", "animation"},
	},
	{
		ID:         "img-005",
		Type:       models.MediaTypeImage,
		Src:        "https://images.unsplash.com/photo-1441974231531-c6227db76b6e?w=1200",
		Alt:        "Tall pines from below",
		DateGroup:  "April 15, 2025",
		Categories: models.Categories{"library", "nature", "forest"},
	},
	{
		ID:         "img-006",
		Type:       models.MediaTypeImage,
		Src:        "https://images.unsplash.com/photo-1507525428034-b723cf961d3e?w=1200",
		Alt:        "Empty beach at noon",
		DateGroup:  "April 15, 2025",
		Categories: models.Categories{"library", "sea"},
	},
	{
		ID:         "img-007",
		Type:       models.MediaTypeImage,
		Src:        "https://images.unsplash.com/photo-1470071459604-3b5ec3a7fe05?w=1200",
		Alt:        "Foggy hills panorama",
		DateGroup:  "April 15, 2025",
		Categories: models.Categories{"library", "nature", "landscape"},
	},
	{
		ID:         "vid-002",
		Type:       models.MediaTypeVideo,
		Src:        "https://storage.googleapis.com/gtv-videos-bucket/sample/ElephantsDream.mp4",
		Alt:        "Elephants Dream",
		Poster:     strPtr("https://images.unsplash.com/photo-1489599849927-2ee91cede3ba?w=1200"),
		DateGroup:  "April 15, 2025",
		Categories: models.Categories{"library", "animation"},
	},
	{
		ID:         "img-008",
		Type:       models.MediaTypeImage,
		Src:        "https://images.unsplash.com/photo-1433086966358-54859d0ed716?w=1200",
		Alt:        "Waterfall in spring",
		DateGroup:  "March 5, 2025",
		Categories: models.Categories{"library", "nature", "water"},
	},
	{
		ID:         "img-009",
		Type:       models.MediaTypeImage,
		Src:        "https://images.unsplash.com/photo-1444927714506-8492d94b4e3d?w=1200",
		Alt:        "Cafe interior, morning light",
		DateGroup:  "March 5, 2025",
		Categories: models.Categories{"library", "interior"},
	},
	{
		ID:         "img-010",
		Type:       models.MediaTypeImage,
		Src:        "https://images.unsplash.com/photo-1426604966848-d7adac402bff?w=1200",
		Alt:        "Valley under low clouds",
		DateGroup:  "March 5, 2025",
		Categories: models.Categories{"library", "nature", "landscape"},
	},
	{
		ID:         "vid-003",
		Type:       models.MediaTypeVideo,
		Src:        "https://storage.googleapis.com/gtv-videos-bucket/sample/ForBiggerBlazes.mp4",
		Alt:        "For Bigger Blazes",
		Poster:     strPtr("https://images.unsplash.com/photo-1478720568477-152d9b164e26?w=1200"),
		DateGroup:  "March 5, 2025",
		Categories: models.Categories{"library", "promo"},
	},
	{
		ID:         "img-011",
		Type:       models.MediaTypeImage,
		Src:        "https://images.unsplash.com/photo-1418065460487-3e41a6c84dc5?w=1200",
		Alt:        "Snowy ridge line",
		DateGroup:  "February 20, 2025",
		Categories: models.Categories{"library", "winter", "mountains"},
	},
	{
		ID:         "img-012",
		Type:       models.MediaTypeImage,
		Src:        "https://images.unsplash.com/photo-1431794062232-2a99a5431c6c?w=1200",
		Alt:        "Frozen lake shore",
		DateGroup:  "February 20, 2025",
		Categories: models.Categories{"library", "winter"},
	},
	{
		ID:         "img-013",
		Type:       models.MediaTypeImage,
		Src:        "https://images.unsplash.com/photo-1439853949127-fa647821eba0?w=1200",
		Alt:        "Lighthouse in a storm",
		DateGroup:  "February 20, 2025",
		Categories: models.Categories{"library", "sea", "architecture"},
	},
	{
		ID:         "img-014",
		Type:       models.MediaTypeImage,
		Src:        "https://images.unsplash.com/photo-1475924156734-496f6cac6ec1?w=1200",
		Alt:        "Sunrise over the bay",
		DateGroup:  "February 20, 2025",
		Categories: models.Categories{"library", "sea", "landscape"},
	},
}
