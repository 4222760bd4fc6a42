package model

// Hall is immutable reference data owned by the venue catalog. The
// booking engine reads the hourly rate and never mutates halls.
type Hall struct {
	ID           string   `json:"id" bson:"_id"`
	VenueID      string   `json:"venueId" bson:"venue_id"`
	Name         string   `json:"name" bson:"name"`
	CapacityMin  int      `json:"capacityMin" bson:"capacity_min"`
	CapacityMax  int      `json:"capacityMax" bson:"capacity_max"`
	PricePerHour float64  `json:"pricePerHour" bson:"price_per_hour"`
	Amenities    []string `json:"amenities" bson:"amenities"`
}
