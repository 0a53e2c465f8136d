package model

import "time"

type User struct {
	ID        int64      `gorm:"primaryKey" json:"id"`
	Name      string     `gorm:"not null" json:"name"`
	Email     string     `gorm:"uniqueIndex;not null" json:"email"`
	Password  *string    `json:"-"` // bcrypt hash, nil for Google-only accounts
	GoogleID  *string    `gorm:"column:google_id;uniqueIndex" json:"-"`
	CreatedAt time.Time  `json:"created_at"`
	LastLogin *time.Time `json:"last_login"`
	Verified  bool       `gorm:"column:is_verified;default:false" json:"is_verified"`
}

type Package struct {
	ID          int64   `gorm:"primaryKey" json:"id"`
	Name        string  `gorm:"not null" json:"name"`
	Description string  `json:"description"`
	Price       float64 `gorm:"not null" json:"price"` // per guest
	MinGuests   int     `gorm:"column:min_guests" json:"min_guests"`
	MaxGuests   int     `gorm:"column:max_guests" json:"max_guests"`
	ImageURL    string  `gorm:"column:image_url" json:"image_url"`
}

type MenuItem struct {
	ID          int64   `gorm:"primaryKey" json:"id"`
	Name        string  `gorm:"not null" json:"name"`
	Description string  `json:"description"`
	Category    string  `gorm:"index" json:"category"`
	Price       float64 `gorm:"not null" json:"price"`
	Available   bool    `gorm:"default:true" json:"available"`
}

type Order struct {
	ID           int64  `gorm:"primaryKey" json:"id"`
	CustomerName string `gorm:"column:customer_name;not null" json:"customer_name"`
	Email        string `gorm:"not null" json:"email"`
	Phone        string `json:"phone"`
	// PackageID is stored as supplied and never checked against the
	// catalog, so orphan references are possible.
	PackageID       *int64    `gorm:"column:package_id" json:"package_id"`
	TotalPrice      float64   `gorm:"column:total_price;not null" json:"total_price"`
	EventDate       string    `gorm:"column:event_date;type:date" json:"event_date"`
	GuestCount      int       `gorm:"column:guest_count" json:"guest_count"`
	Status          string    `gorm:"default:pending" json:"status"`
	SpecialRequests string    `gorm:"column:special_requests" json:"special_requests"`
	CreatedAt       time.Time `json:"created_at"`
}
