package locations

import "math/rand"

// Location is an immutable catalog entry. Entries are referenced by pointer
// into the package-level catalog and never mutated.
type Location struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
	Icon string `json:"icon"`
}

var catalog = []Location{
	{ID: 1, Name: "Beach", Icon: "🏖️"},
	{ID: 2, Name: "Casino", Icon: "🎰"},
	{ID: 3, Name: "Circus", Icon: "🎪"},
	{ID: 4, Name: "Hospital", Icon: "🏥"},
	{ID: 5, Name: "Hotel", Icon: "🏨"},
	{ID: 6, Name: "Military Base", Icon: "🪖"},
	{ID: 7, Name: "Movie Studio", Icon: "🎬"},
	{ID: 8, Name: "Ocean Liner", Icon: "🛳️"},
	{ID: 9, Name: "Passenger Train", Icon: "🚆"},
	{ID: 10, Name: "Pirate Ship", Icon: "🏴‍☠️"},
	{ID: 11, Name: "Polar Station", Icon: "🧊"},
	{ID: 12, Name: "Police Station", Icon: "🚓"},
	{ID: 13, Name: "Restaurant", Icon: "🍽️"},
	{ID: 14, Name: "School", Icon: "🏫"},
	{ID: 15, Name: "Gas Station", Icon: "⛽"},
	{ID: 16, Name: "Space Station", Icon: "🛰️"},
	{ID: 17, Name: "Submarine", Icon: "🌊"},
	{ID: 18, Name: "Supermarket", Icon: "🛒"},
	{ID: 19, Name: "Theater", Icon: "🎭"},
	{ID: 20, Name: "University", Icon: "🎓"},
	{ID: 21, Name: "Amusement Park", Icon: "🎢"},
	{ID: 22, Name: "Airplane", Icon: "✈️"},
	{ID: 23, Name: "Bank", Icon: "🏦"},
	{ID: 24, Name: "Library", Icon: "📚"},
}

// All returns the full catalog in id order.
func All() []Location {
	return catalog
}

// ByID looks up a catalog entry.
func ByID(id int) (Location, bool) {
	for _, loc := range catalog {
		if loc.ID == id {
			return loc, true
		}
	}
	return Location{}, false
}

// Random picks one catalog entry uniformly.
func Random() Location {
	return catalog[rand.Intn(len(catalog))]
}
