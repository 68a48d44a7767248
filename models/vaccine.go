package models

import "time"

// Vaccine is one catalog entry served to the services page. Price is the
// authoritative per-course price in whole VND; client carts are re-priced
// from this record at checkout.
type Vaccine struct {
	ID           string    `bson:"id" json:"id"`
	Name         string    `bson:"name" json:"name"`
	Manufacturer string    `bson:"manufacturer" json:"manufacturer"`
	Description  string    `bson:"description" json:"description"`
	Doses        int       `bson:"doses" json:"doses"`
	Price        int64     `bson:"price" json:"price"`
	Active       bool      `bson:"active" json:"active"`
	CreatedAt    time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt    time.Time `bson:"updatedAt" json:"updatedAt"`
}
