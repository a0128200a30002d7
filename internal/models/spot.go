package models

// ParkingSpotDB represents the single parking-spot row kept per user.
// Optional columns are pointers so NULLs round-trip through the database.
type ParkingSpotDB struct {
	ID        int64   `json:"id" db:"id"`               // Primary key
	UserID    int64   `json:"user_id" db:"user_id"`     // Owning user
	Latitude  float64 `json:"latitude" db:"latitude"`   // Required coordinate
	Longitude float64 `json:"longitude" db:"longitude"` // Required coordinate
	Address   *string `json:"address" db:"address"`     // Optional reverse-geocoded address
	Notes     *string `json:"notes" db:"notes"`         // Optional free-form notes
	ImageURI  *string `json:"imageUri" db:"imageUri"`   // Optional opaque image reference
	Timestamp string  `json:"timestamp" db:"timestamp"` // RFC 3339, server-assigned unless supplied
}
