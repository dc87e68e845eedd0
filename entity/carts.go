package entity

import "time"

// CartSnapshot is the durable copy of a caller's cart, keyed by storage key.
type CartSnapshot struct {
	Key       string    `gorm:"primaryKey;size:128;column:storage_key" bson:"_id"`
	Payload   string    `gorm:"type:text" bson:"payload"`
	UpdatedAt time.Time `bson:"updatedAt"`
}
