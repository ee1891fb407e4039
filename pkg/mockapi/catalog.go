package mockapi

import "tableflip.dev/pedal/pkg/bike"

// DefaultCatalog is the fleet served when no catalog is given.
func DefaultCatalog() []bike.Bike {
	return []bike.Bike{
		{
			ID:          1,
			CandidateID: 1,
			Name:        "Rustler",
			Type:        "Mountain Bike",
			BodySize:    19,
			MaxLoad:     120,
			Rate:        22.5,
			Ratings:     4.6,
			Description: "Full suspension trail bike with hydraulic disc brakes.",
			ImageURLs:   []string{"https://cdn.example.com/bikes/rustler-1.png", "https://cdn.example.com/bikes/rustler-2.png"},
		},
		{
			ID:          2,
			CandidateID: 1,
			Name:        "Veloz",
			Type:        "Road Bike",
			BodySize:    56,
			MaxLoad:     100,
			Rate:        18,
			Ratings:     4.2,
			Description: "Carbon frame road bike for long distance rides.",
			ImageURLs:   []string{"https://cdn.example.com/bikes/veloz-1.png"},
		},
		{
			ID:          3,
			CandidateID: 1,
			Name:        "Cargo Max",
			Type:        "Cargo Bike",
			BodySize:    52,
			MaxLoad:     200,
			Rate:        30,
			Ratings:     4.8,
			Description: "Electric assisted cargo bike with front box.",
			ImageURLs:   []string{"https://cdn.example.com/bikes/cargo-max-1.png"},
		},
		{
			ID:          4,
			CandidateID: 1,
			Name:        "Commuter",
			Type:        "City Bike",
			BodySize:    50,
			MaxLoad:     110,
			Rate:        12,
			Ratings:     3.9,
			Description: "Upright city bike with rack and dynamo lights.",
			ImageURLs:   []string{"https://cdn.example.com/bikes/commuter-1.png"},
		},
	}
}
