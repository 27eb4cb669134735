package model

var seedResources = []Resource{
	{ID: "r1", Name: "ช่างอเล็กซ์", Type: ResourceTypeStaff, Description: "วินเทจ", Image: "https://images.unsplash.com/photo-1542385151-efd9000785a0?q=80&w=200&h=250&fit=crop", IsAvailable: true},
	{ID: "r2", Name: "ช่างบอย", Type: ResourceTypeStaff, Description: "แกะลาย", Image: "https://images.unsplash.com/photo-1521119989659-a83eee488004?q=80&w=200&h=250&fit=crop", IsAvailable: true},
	{ID: "r3", Name: "สนาม A (7-man)", Type: ResourceTypeField, Description: "หญ้าเทียมพรีเมียม", Image: "https://images.unsplash.com/photo-1551958219-acbc608c6377?q=80&w=200&h=250&fit=crop", IsAvailable: true},
	{ID: "r4", Name: "สนาม B (9-man)", Type: ResourceTypeField, Description: "มาตรฐานสากล", Image: "https://images.unsplash.com/photo-1431324155629-1a6eda1f469a?q=80&w=200&h=250&fit=crop", IsAvailable: true},
}

var seedOfferings = []Offering{
	{ID: "v1", Name: "จองคิวตัดผม", Price: 200, Discount: "ลด 20.-", Icon: "Scissors"},
	{ID: "v2", Name: "แกะลาย", Price: 150, Icon: "Palette"},
	{ID: "v3", Name: "สระไดร์", Price: 100, Icon: "Wind"},
}

var seedProfile = Profile{
	ID:     "shop_01",
	Name:   "ร้านตัดผม นราธิวาส",
	Type:   "barber",
	Logo:   "✂️",
	Status: "active",
}

// SeedResources returns a fresh copy of the initial resource catalog.
func SeedResources() []Resource {
	resources := make([]Resource, len(seedResources))
	copy(resources, seedResources)

	return resources
}

// SeedOfferings returns a fresh copy of the service catalog.
func SeedOfferings() []Offering {
	offerings := make([]Offering, len(seedOfferings))
	copy(offerings, seedOfferings)

	return offerings
}

// SeedProfile returns the business profile.
func SeedProfile() Profile {
	return seedProfile
}
