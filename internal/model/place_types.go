package model

// PlaceType describes one Google Places type the sync endpoint knows how to
// populate, along with the grid parameters used to sweep the city for it.
type PlaceType struct {
	ID         string  // Places API type name, e.g. "movie_theater"
	Label      string  // human-readable label for tables and logs
	Icon       string  // emoji shown next to the label
	Category   string  // catalog grouping, see Category* constants
	CellSizeKm float64 // grid cell edge length in km
	RadiusM    int     // nearby-search radius per cell in meters
}

// Catalog categories, following Table A / Table B of the Places API type docs.
const (
	CategoryLeisure    = "Leisure & Entertainment"
	CategoryFood       = "Food & Drink"
	CategoryAdditional = "Additional"
)

// AllPlaceTypes is the full sync catalog in canonical order. Dense types
// (restaurants, cafes) use small cells and short radii; sparse ones (parks,
// landmarks) sweep with coarser grids so a city fits in fewer requests.
var AllPlaceTypes = []PlaceType{
	// Table A — leisure and entertainment
	{ID: "amusement_center", Label: "Amusement Centers", Icon: "🎪", Category: CategoryLeisure, CellSizeKm: 3.0, RadiusM: 2000},
	{ID: "amusement_park", Label: "Amusement Parks", Icon: "🎢", Category: CategoryLeisure, CellSizeKm: 4.0, RadiusM: 3000},
	{ID: "aquarium", Label: "Aquariums", Icon: "🐠", Category: CategoryLeisure, CellSizeKm: 4.0, RadiusM: 3000},
	{ID: "banquet_hall", Label: "Banquet Halls", Icon: "🎉", Category: CategoryLeisure, CellSizeKm: 3.0, RadiusM: 2000},
	{ID: "bowling_alley", Label: "Bowling Alleys", Icon: "🎳", Category: CategoryLeisure, CellSizeKm: 3.0, RadiusM: 2000},
	{ID: "casino", Label: "Casinos", Icon: "🎰", Category: CategoryLeisure, CellSizeKm: 4.0, RadiusM: 3000},
	{ID: "community_center", Label: "Community Centers", Icon: "🏛️", Category: CategoryLeisure, CellSizeKm: 2.5, RadiusM: 1500},
	{ID: "convention_center", Label: "Convention Centers", Icon: "🏢", Category: CategoryLeisure, CellSizeKm: 4.0, RadiusM: 3000},
	{ID: "cultural_center", Label: "Cultural Centers", Icon: "🎭", Category: CategoryLeisure, CellSizeKm: 2.5, RadiusM: 1500},
	{ID: "dog_park", Label: "Dog Parks", Icon: "🐕", Category: CategoryLeisure, CellSizeKm: 2.5, RadiusM: 1500},
	{ID: "event_venue", Label: "Event Venues", Icon: "🎫", Category: CategoryLeisure, CellSizeKm: 2.5, RadiusM: 1500},
	{ID: "hiking_area", Label: "Hiking Areas", Icon: "🥾", Category: CategoryLeisure, CellSizeKm: 5.0, RadiusM: 4000},
	{ID: "historical_landmark", Label: "Historical Landmarks", Icon: "🏰", Category: CategoryLeisure, CellSizeKm: 2.0, RadiusM: 1500},
	{ID: "marina", Label: "Marinas", Icon: "⛵", Category: CategoryLeisure, CellSizeKm: 5.0, RadiusM: 4000},
	{ID: "movie_rental", Label: "Movie Rentals", Icon: "📼", Category: CategoryLeisure, CellSizeKm: 3.0, RadiusM: 2000},
	{ID: "movie_theater", Label: "Movie Theaters", Icon: "🎬", Category: CategoryLeisure, CellSizeKm: 3.0, RadiusM: 2000},
	{ID: "national_park", Label: "National Parks", Icon: "🏞️", Category: CategoryLeisure, CellSizeKm: 5.0, RadiusM: 4000},
	{ID: "night_club", Label: "Night Clubs", Icon: "🪩", Category: CategoryLeisure, CellSizeKm: 2.0, RadiusM: 1000},
	{ID: "park", Label: "Parks", Icon: "🌳", Category: CategoryLeisure, CellSizeKm: 2.0, RadiusM: 1500},
	{ID: "tourist_attraction", Label: "Tourist Attractions", Icon: "📸", Category: CategoryLeisure, CellSizeKm: 2.0, RadiusM: 1500},
	{ID: "visitor_center", Label: "Visitor Centers", Icon: "ℹ️", Category: CategoryLeisure, CellSizeKm: 4.0, RadiusM: 3000},
	{ID: "wedding_venue", Label: "Wedding Venues", Icon: "💒", Category: CategoryLeisure, CellSizeKm: 3.0, RadiusM: 2000},
	{ID: "zoo", Label: "Zoos", Icon: "🦁", Category: CategoryLeisure, CellSizeKm: 5.0, RadiusM: 4000},

	// Table A — food and drink
	{ID: "american_restaurant", Label: "American Restaurants", Icon: "🍔", Category: CategoryFood, CellSizeKm: 1.5, RadiusM: 800},
	{ID: "bakery", Label: "Bakeries", Icon: "🥐", Category: CategoryFood, CellSizeKm: 1.5, RadiusM: 800},
	{ID: "bar", Label: "Bars", Icon: "🍺", Category: CategoryFood, CellSizeKm: 1.0, RadiusM: 600},
	{ID: "barbecue_restaurant", Label: "Barbecue Restaurants", Icon: "🍖", Category: CategoryFood, CellSizeKm: 2.0, RadiusM: 1000},
	{ID: "brazilian_restaurant", Label: "Brazilian Restaurants", Icon: "🇧🇷", Category: CategoryFood, CellSizeKm: 2.5, RadiusM: 1500},
	{ID: "breakfast_restaurant", Label: "Breakfast Restaurants", Icon: "🍳", Category: CategoryFood, CellSizeKm: 1.5, RadiusM: 800},
	{ID: "brunch_restaurant", Label: "Brunch Restaurants", Icon: "🥞", Category: CategoryFood, CellSizeKm: 2.0, RadiusM: 1000},
	{ID: "cafe", Label: "Cafes", Icon: "☕", Category: CategoryFood, CellSizeKm: 1.0, RadiusM: 600},
	{ID: "chinese_restaurant", Label: "Chinese Restaurants", Icon: "🥡", Category: CategoryFood, CellSizeKm: 2.0, RadiusM: 1000},
	{ID: "coffee_shop", Label: "Coffee Shops", Icon: "🫘", Category: CategoryFood, CellSizeKm: 1.0, RadiusM: 600},
	{ID: "fast_food_restaurant", Label: "Fast Food Restaurants", Icon: "🍟", Category: CategoryFood, CellSizeKm: 1.5, RadiusM: 800},
	{ID: "french_restaurant", Label: "French Restaurants", Icon: "🇫🇷", Category: CategoryFood, CellSizeKm: 2.5, RadiusM: 1500},
	{ID: "greek_restaurant", Label: "Greek Restaurants", Icon: "🇬🇷", Category: CategoryFood, CellSizeKm: 2.5, RadiusM: 1500},
	{ID: "hamburger_restaurant", Label: "Hamburger Restaurants", Icon: "🍔", Category: CategoryFood, CellSizeKm: 1.5, RadiusM: 800},
	{ID: "ice_cream_shop", Label: "Ice Cream Shops", Icon: "🍦", Category: CategoryFood, CellSizeKm: 1.5, RadiusM: 800},
	{ID: "indian_restaurant", Label: "Indian Restaurants", Icon: "🇮🇳", Category: CategoryFood, CellSizeKm: 2.5, RadiusM: 1500},
	{ID: "indonesian_restaurant", Label: "Indonesian Restaurants", Icon: "🇮🇩", Category: CategoryFood, CellSizeKm: 3.0, RadiusM: 2000},
	{ID: "italian_restaurant", Label: "Italian Restaurants", Icon: "🍝", Category: CategoryFood, CellSizeKm: 1.5, RadiusM: 800},
	{ID: "japanese_restaurant", Label: "Japanese Restaurants", Icon: "🍣", Category: CategoryFood, CellSizeKm: 2.0, RadiusM: 1000},
	{ID: "korean_restaurant", Label: "Korean Restaurants", Icon: "🇰🇷", Category: CategoryFood, CellSizeKm: 2.5, RadiusM: 1500},
	{ID: "lebanese_restaurant", Label: "Lebanese Restaurants", Icon: "🇱🇧", Category: CategoryFood, CellSizeKm: 3.0, RadiusM: 2000},
	{ID: "meal_delivery", Label: "Meal Delivery", Icon: "🛵", Category: CategoryFood, CellSizeKm: 2.0, RadiusM: 1000},
	{ID: "meal_takeaway", Label: "Meal Takeaway", Icon: "🥡", Category: CategoryFood, CellSizeKm: 1.5, RadiusM: 800},
	{ID: "mediterranean_restaurant", Label: "Mediterranean Restaurants", Icon: "🫒", Category: CategoryFood, CellSizeKm: 2.0, RadiusM: 1000},
	{ID: "mexican_restaurant", Label: "Mexican Restaurants", Icon: "🌮", Category: CategoryFood, CellSizeKm: 2.0, RadiusM: 1000},
	{ID: "middle_eastern_restaurant", Label: "Middle Eastern Restaurants", Icon: "🧆", Category: CategoryFood, CellSizeKm: 2.5, RadiusM: 1500},
	{ID: "pizza_restaurant", Label: "Pizza Restaurants", Icon: "🍕", Category: CategoryFood, CellSizeKm: 1.5, RadiusM: 800},
	{ID: "ramen_restaurant", Label: "Ramen Restaurants", Icon: "🍜", Category: CategoryFood, CellSizeKm: 2.5, RadiusM: 1500},
	{ID: "restaurant", Label: "Restaurants", Icon: "🍽️", Category: CategoryFood, CellSizeKm: 1.0, RadiusM: 600},
	{ID: "sandwich_shop", Label: "Sandwich Shops", Icon: "🥪", Category: CategoryFood, CellSizeKm: 1.5, RadiusM: 800},
	{ID: "seafood_restaurant", Label: "Seafood Restaurants", Icon: "🦐", Category: CategoryFood, CellSizeKm: 2.0, RadiusM: 1000},
	{ID: "spanish_restaurant", Label: "Spanish Restaurants", Icon: "🥘", Category: CategoryFood, CellSizeKm: 1.5, RadiusM: 800},
	{ID: "steak_house", Label: "Steak Houses", Icon: "🥩", Category: CategoryFood, CellSizeKm: 2.0, RadiusM: 1000},
	{ID: "sushi_restaurant", Label: "Sushi Restaurants", Icon: "🍱", Category: CategoryFood, CellSizeKm: 2.0, RadiusM: 1000},
	{ID: "thai_restaurant", Label: "Thai Restaurants", Icon: "🇹🇭", Category: CategoryFood, CellSizeKm: 2.5, RadiusM: 1500},
	{ID: "turkish_restaurant", Label: "Turkish Restaurants", Icon: "🥙", Category: CategoryFood, CellSizeKm: 2.5, RadiusM: 1500},
	{ID: "vegan_restaurant", Label: "Vegan Restaurants", Icon: "🥬", Category: CategoryFood, CellSizeKm: 2.0, RadiusM: 1000},
	{ID: "vegetarian_restaurant", Label: "Vegetarian Restaurants", Icon: "🥗", Category: CategoryFood, CellSizeKm: 2.0, RadiusM: 1000},
	{ID: "vietnamese_restaurant", Label: "Vietnamese Restaurants", Icon: "🇻🇳", Category: CategoryFood, CellSizeKm: 2.5, RadiusM: 1500},

	// Table B — additional values
	{ID: "point_of_interest", Label: "Points of Interest", Icon: "📍", Category: CategoryAdditional, CellSizeKm: 2.0, RadiusM: 1500},
}

// PlaceTypeByID returns the catalog entry for the given type id, or ok=false.
func PlaceTypeByID(id string) (PlaceType, bool) {
	for _, pt := range AllPlaceTypes {
		if pt.ID == id {
			return pt, true
		}
	}
	return PlaceType{}, false
}

// FilterPlaceTypes returns the catalog entries whose IDs appear in ids,
// preserving catalog order. Unknown ids are ignored. An empty or nil ids
// slice selects the whole catalog.
func FilterPlaceTypes(ids []string) []PlaceType {
	if len(ids) == 0 {
		out := make([]PlaceType, len(AllPlaceTypes))
		copy(out, AllPlaceTypes)
		return out
	}
	want := make(map[string]bool, len(ids))
	for _, id := range ids {
		want[id] = true
	}
	var out []PlaceType
	for _, pt := range AllPlaceTypes {
		if want[pt.ID] {
			out = append(out, pt)
		}
	}
	return out
}
