package catalog

import "storefront-service/internal/model"

func intPtr(v int) *int { return &v }

// Seed returns the built-in catalog used when nothing has been stored yet
func Seed() []model.Product {
	return []model.Product{
		{
			ID:            "1",
			Name:          "Imperial Crimson Silk",
			Brand:         "Maria B",
			Price:         18500,
			Gender:        model.GenderWomen,
			Season:        model.SeasonWinter,
			Fabric:        model.FabricSilk,
			Occasion:      model.OccasionFestive,
			Color:         "Crimson",
			Image:         "https://images.pexels.com/photos/10309117/pexels-photo-10309117.jpeg?auto=compress&cs=tinysrgb&w=800",
			Images:        []string{},
			Description:   "Radiate confidence in this meticulously handcrafted silk masterpiece. Designed with intricate gold thread work for the modern professional seeking high-profile festive elegance.",
			WhatsIncluded: []string{"3m Premium Silk Shirt", "2.5m Hand-Woven Dupatta", "2.5m Dyed Trouser"},
			FabricCare:    []string{"Dry clean only", "Use steam iron on reverse"},
			IsNew:         true,
		},
		{
			ID:            "2",
			Name:          "Executive Slate Khaddar",
			Brand:         "Gul Ahmed",
			Price:         4500,
			OriginalPrice: intPtr(5500),
			Gender:        model.GenderMen,
			Season:        model.SeasonWinter,
			Fabric:        model.FabricKhaddar,
			Occasion:      model.OccasionCasual,
			Color:         "Slate",
			Image:         "https://images.pexels.com/photos/5935232/pexels-photo-5935232.jpeg?auto=compress&cs=tinysrgb&w=800",
			Images:        []string{},
			Description:   "Precision-woven khaddar fabric designed for the leader who values both heritage and functionality. Durable, breathable, and commandingly sharp.",
			WhatsIncluded: []string{"4.5m Unstitched Premium Fabric", "Metallic Branding Buttons"},
			FabricCare:    []string{"Cold wash", "Medium iron"},
			IsSale:        true,
		},
		{
			ID:            "3",
			Name:          "Azure Luxe Lawn",
			Brand:         "J.",
			Price:         3200,
			Gender:        model.GenderWomen,
			Season:        model.SeasonSummer,
			Fabric:        model.FabricLawn,
			Occasion:      model.OccasionCasual,
			Color:         "Azure",
			Image:         "https://images.pexels.com/photos/10309109/pexels-photo-10309109.jpeg?auto=compress&cs=tinysrgb&w=800",
			Images:        []string{},
			Description:   "Effortless sophistication for summer business luncheons. High-density lawn with minimalist digital motifs that speak volumes without saying a word.",
			WhatsIncluded: []string{"3m Digital Print Shirt", "2.5m Voile Dupatta", "2m Plain Trouser"},
			FabricCare:    []string{"Gentle cycle wash", "Do not bleach"},
			IsNew:         true,
		},
		{
			ID:            "4",
			Name:          "Midnight Wool Edition",
			Brand:         "Edenrobe",
			Price:         8900,
			Gender:        model.GenderMen,
			Season:        model.SeasonWinter,
			Fabric:        model.FabricWool,
			Occasion:      model.OccasionFestive,
			Color:         "Midnight",
			Image:         "https://images.pexels.com/photos/5935240/pexels-photo-5935240.jpeg?auto=compress&cs=tinysrgb&w=800",
			Images:        []string{},
			Description:   "Rich wool-blend fabric curated for peak performance in cooler climates. This edition ensures a crisp silhouette for networking galas and evening soirées.",
			WhatsIncluded: []string{"4m Signature Wool Fabric", "Authentic Branding Patch"},
			FabricCare:    []string{"Dry clean only", "Store in a garment bag"},
		},
		{
			ID:            "5",
			Name:          "Ivory Karandi Heritage",
			Brand:         "Gul Ahmed",
			Price:         12500,
			Gender:        model.GenderWomen,
			Season:        model.SeasonWinter,
			Fabric:        model.FabricKarandi,
			Occasion:      model.OccasionFestive,
			Color:         "Ivory",
			Image:         "https://images.pexels.com/photos/10309121/pexels-photo-10309121.jpeg?auto=compress&cs=tinysrgb&w=800",
			Images:        []string{},
			Description:   "A masterpiece of South Asian heritage. Hand-loomed ivory karandi paired with a signature pashmina-style shawl for the discerning professional collector.",
			WhatsIncluded: []string{"3m Luxury Karandi Shirt", "Pashmina Style Shawl", "2.5m Dyed Trouser"},
			FabricCare:    []string{"Professional care only", "Avoid moisture exposure"},
			IsNew:         true,
		},
	}
}
