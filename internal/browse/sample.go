package browse

// SampleListings returns the fixed seed set shown when no backend is
// reachable or configured.
func SampleListings() []Listing {
	return []Listing{
		{
			ID:        1,
			Title:     "Textbook: Calculus 101",
			Condition: "Used, good condition",
			Price:     250,
			Image:     "https://images.unsplash.com/photo-1544716278-ca5e3f4abd8c?w=400&h=300&fit=crop&crop=center",
			Category:  "books",
			Campus:    "Onakoor",
		},
		{
			ID:        2,
			Title:     "Desk Lamp",
			Condition: "Like new",
			Price:     750,
			Image:     "https://images.unsplash.com/photo-1507473885765-e6ed057f782c?w=400&h=300&fit=crop&crop=center",
			Category:  "furniture",
			Campus:    "Warriom Road",
		},
		{
			ID:        3,
			Title:     "Mini Fridge",
			Condition: "Excellent condition",
			Price:     3200,
			Image:     "https://images.unsplash.com/photo-1571175443880-49e1d25b2bc5?w=400&h=300&fit=crop&crop=center",
			Category:  "appliances",
			Campus:    "Warriom Road",
		},
		{
			ID:        4,
			Title:     "Bike",
			Condition: "Barely used",
			Price:     2600,
			Image:     "https://images.unsplash.com/photo-1558618047-3c8c76ca7d13?w=400&h=300&fit=crop&crop=center",
			Category:  "transportation",
			Campus:    "Onakoor",
		},
		{
			ID:        5,
			Title:     "Gaming Laptop",
			Condition: "High-end specs",
			Price:     65000,
			Image:     "https://images.unsplash.com/photo-1603302576837-37561b2e2302?w=400&h=300&fit=crop&crop=center",
			Category:  "electronics",
			Campus:    "Onakoor",
		},
		{
			ID:        6,
			Title:     "Dorm Room Decor",
			Condition: "Various items",
			Price:     6000,
			Image:     "https://images.unsplash.com/photo-1586023492125-27b2c045efd7?w=400&h=300&fit=crop&crop=center",
			Category:  "decor",
			Campus:    "Pune",
		},
		{
			ID:        7,
			Title:     "Coffee Maker",
			Condition: "New",
			Price:     3500,
			Image:     "https://images.unsplash.com/photo-1495474472287-4d71bcdd2085?w=400&h=300&fit=crop&crop=center",
			Category:  "appliances",
			Campus:    "Onakoor",
		},
		{
			ID:        8,
			Title:     "Microwave",
			Condition: "Used",
			Price:     3200,
			Image:     "https://images.unsplash.com/photo-1574269909862-7e1d70bb8078?w=400&h=300&fit=crop&crop=center",
			Category:  "appliances",
			Campus:    "Warriom Road",
		},
	}
}
