package model

// Car mirrors the `cars` table. A car belongs to one dealer and one
// vehicle type and owns zero or more image rows. The json tags follow
// the column names because car rows are returned to clients as-is,
// enriched by the repository with dealer/type/image data.
//
// Fields:
//  ID       – primary key identifier.
//  Brand    – manufacturer name.
//  Model    – model name.
//  Year     – production year.
//  Price    – listed price.
//  DealerID – foreign key into dealers.
//  TypeID   – foreign key into vehicle_types.
type Car struct {
	ID       uint64  `json:"id"`        // cars.id
	Brand    string  `json:"brand"`     // cars.brand
	Model    string  `json:"model"`     // cars.model
	Year     int     `json:"year"`      // cars.year
	Price    float64 `json:"price"`     // cars.price
	DealerID uint64  `json:"dealer_id"` // cars.dealer_id
	TypeID   uint64  `json:"type_id"`   // cars.type_id
}

// Image is a photo attached to a car. Images are created and deleted
// together with their car inside one transaction; row order carries no
// meaning.
type Image struct {
	ID          uint64 `json:"id"`          // images.id
	CarID       uint64 `json:"car_id"`      // images.car_id
	ImageURL    string `json:"image_url"`   // images.image_url
	Description string `json:"description"` // images.description
}
