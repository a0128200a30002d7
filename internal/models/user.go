package models

// UserDB represents a user record in the database.
type UserDB struct {
	ID        int64   `json:"id" db:"id"`                 // Primary key
	Username  string  `json:"username" db:"username"`     // Unique username
	Password  string  `json:"-" db:"password"`            // Bcrypt hash, never serialized
	Email     *string `json:"email" db:"email"`           // Optional unique email, nullable
	CreatedAt string  `json:"created_at" db:"created_at"` // Creation timestamp
}
