package entity

// OrderItem is a snapshot of a cart line taken at checkout.
type OrderItem struct {
	ID      uint   `gorm:"primaryKey" bson:"-" json:"-"`
	OrderID string `gorm:"size:36;index" bson:"-" json:"-"`

	MenuItemID string `gorm:"size:36" bson:"menuItemId" json:"menuItemId"`
	Name       string `bson:"name" json:"name"`
	UnitPrice  int64  `bson:"unitPrice" json:"unitPrice"`
	Quantity   int    `bson:"quantity" json:"quantity"`
	LineTotal  int64  `bson:"lineTotal" json:"lineTotal"`
	Notes      string `bson:"notes,omitempty" json:"notes,omitempty"`
}
