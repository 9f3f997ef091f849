package model

// Dealer mirrors the `dealers` table. Address, phone and email are
// nullable in the schema and empty strings here.
type Dealer struct {
	ID      uint64 `json:"id"`      // dealers.id
	Name    string `json:"name"`    // dealers.name
	Address string `json:"address"` // dealers.address
	Phone   string `json:"phone"`   // dealers.phone
	Email   string `json:"email"`   // dealers.email
}

// VehicleType mirrors the `vehicle_types` table (body-style category:
// sedan, SUV and so on). Type names are unique.
type VehicleType struct {
	ID       uint64 `json:"id"`        // vehicle_types.id
	TypeName string `json:"type_name"` // vehicle_types.type_name
}
