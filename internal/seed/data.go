package seed

import "villa_cms/internal/domain/models"

func rooms() []models.Room {
	return []models.Room{
		{
			Name:        "Entire Villa",
			Description: "Exclusive use of the whole villa with lake views, private pool and staff.",
			NightlyRate: 450,
			Capacity:    12,
			Size:        "620 m²",
			Features:    []string{"Private pool", "Lake view", "Chef on request", "Air conditioning"},
			ImageURL:    "/images/rooms/entire-villa.jpg",
		},
		{
			Name:        "Family Suite",
			Description: "Two connected bedrooms opening onto the roof garden.",
			NightlyRate: 180,
			Capacity:    4,
			Size:        "65 m²",
			Features:    []string{"Roof garden access", "Ensuite bathroom", "Air conditioning"},
			ImageURL:    "/images/rooms/family-suite.jpg",
		},
		{
			Name:        "Group Room",
			Description: "A large shared room for friends travelling together.",
			NightlyRate: 150,
			Capacity:    6,
			Size:        "55 m²",
			Features:    []string{"Garden view", "Ceiling fans", "Lockers"},
			ImageURL:    "/images/rooms/group-room.jpg",
		},
		{
			Name:        "Triple Room",
			Description: "Bright room with one double and one single bed.",
			NightlyRate: 110,
			Capacity:    3,
			Size:        "32 m²",
			Features:    []string{"Front garden view", "Ensuite bathroom"},
			ImageURL:    "/images/rooms/triple-room.jpg",
		},
	}
}

func testimonials() []models.Testimonial {
	return []models.Testimonial{
		{GuestName: "Sarah Mitchell", GuestCountry: "United Kingdom", Rating: 5, Comment: "Waking up to the lake every morning was unforgettable. The staff made us feel at home."},
		{GuestName: "Lukas Weber", GuestCountry: "Germany", Rating: 5, Comment: "Perfect base for exploring the south coast. The breakfasts were outstanding."},
		{GuestName: "Priya Raman", GuestCountry: "India", Rating: 4, Comment: "Beautiful gardens and a calm pool. We would happily come back with the whole family."},
	}
}

func activities() []models.Activity {
	return []models.Activity{
		{Name: "Koggala Lake Boat Safari", Description: "Explore the islands, mangroves and birdlife of Koggala Lake.", ImageURL: "/images/activities/lake-safari.jpg"},
		{Name: "Galle Fort Day Trip", Description: "Walk the ramparts and lanes of the UNESCO-listed fort.", ImageURL: "/images/activities/galle-fort.jpg"},
		{Name: "Stilt Fishermen at Sunrise", Description: "Watch the traditional stilt fishermen along the coast.", ImageURL: "/images/activities/stilt-fishing.jpg"},
		{Name: "Whale Watching in Mirissa", Description: "Seasonal boat trips to see blue whales and dolphins.", ImageURL: "/images/activities/whales.jpg"},
	}
}

func diningOptions() []models.DiningOption {
	return []models.DiningOption{
		{
			Name:        "Sri Lankan Breakfast",
			Description: "Hoppers, string hoppers, fresh fruit and Ceylon tea served on the terrace.",
			Features:    []string{"Included with stay", "Vegetarian options"},
			ImageURL:    "/images/dining/breakfast.jpg",
		},
		{
			Name:        "Lakeside Dinner",
			Description: "Rice and curry or fresh seafood prepared by the villa chef.",
			Features:    []string{"On request", "Private setting"},
			ImageURL:    "/images/dining/dinner.jpg",
		},
		{
			Name:        "Barbecue by the Pool",
			Description: "Grilled catch of the day with salads for groups.",
			Features:    []string{"Groups", "Evening"},
			ImageURL:    "/images/dining/bbq.jpg",
		},
	}
}

func media() []models.MediaAsset {
	return []models.MediaAsset{
		{URL: "/images/gallery/villa-front.jpg", AltText: "Villa seen from the front garden", Title: "The villa", Category: models.CategoryEntireVilla, Tags: []string{"villa", "exterior"}, MediaType: models.MediaTypeImage, Featured: true, SortOrder: 0},
		{URL: "/images/gallery/pool-deck.jpg", AltText: "Pool deck at sunset", Title: "Pool deck", Category: models.CategoryPoolDeck, Tags: []string{"pool", "sunset"}, MediaType: models.MediaTypeImage, Featured: true, SortOrder: 1},
		{URL: "/images/gallery/lake-garden.jpg", AltText: "Lawn running down to the lake", Title: "Lake garden", Category: models.CategoryLakeGarden, Tags: []string{"garden", "lake"}, MediaType: models.MediaTypeImage, SortOrder: 2},
		{URL: "/images/gallery/roof-garden.jpg", AltText: "Roof garden with loungers", Title: "Roof garden", Category: models.CategoryRoofGarden, Tags: []string{"garden"}, MediaType: models.MediaTypeImage, SortOrder: 3},
		{URL: "/images/gallery/family-suite.jpg", AltText: "Family suite bedroom", Title: "Family suite", Category: models.CategoryFamilySuite, Tags: []string{"room"}, MediaType: models.MediaTypeImage, SortOrder: 4},
		{URL: "/images/gallery/dining-area.jpg", AltText: "Dining table set for dinner", Title: "Dining area", Category: models.CategoryDiningArea, Tags: []string{"dining"}, MediaType: models.MediaTypeImage, SortOrder: 5},
		{URL: "/videos/gallery/koggala-lake.mp4", AltText: "Boat ride on Koggala Lake", Title: "Koggala Lake", Category: models.CategoryKoggalaLake, Tags: []string{"lake", "boat"}, MediaType: models.MediaTypeVideo, SortOrder: 6},
	}
}
