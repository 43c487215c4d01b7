package entity

import "time"

// DefaultMedicineCategory is used when a medicine is created without a category.
const DefaultMedicineCategory = "general"

// Reminder is a client-defined reminder schedule entry, stored as-is.
type Reminder map[string]any

// Medicine is an item in a user's medicine cabinet.
type Medicine struct {
	ID     string `json:"id"`
	UserID string `json:"user_id"`

	Name         string  `json:"name"`
	Dosage       string  `json:"dosage"`
	Frequency    string  `json:"frequency"`
	Instructions *string `json:"instructions"`

	StockQuantity int        `json:"stock_quantity"`
	ExpiryDate    *time.Time `json:"expiry_date"`
	Category      string     `json:"category"`

	// PrescriptionImage is a base64-encoded photo of the prescription label.
	PrescriptionImage *string    `json:"prescription_image"`
	Reminders         []Reminder `json:"reminders"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
