package entity

type Restaurant struct {
	Model `bson:",inline"`

	Name         string `gorm:"not null" bson:"name" json:"name"`
	Description  string `bson:"description" json:"description"`
	Address      string `bson:"address" json:"address"`
	Image        string `bson:"image" json:"image"`
	Cuisine      string `gorm:"index" bson:"cuisine" json:"cuisine"`
	DeliveryFee  int64  `bson:"deliveryFee" json:"deliveryFee"`
	DeliveryTime string `bson:"deliveryTime" json:"deliveryTime"`
	IsOpen       bool   `bson:"isOpen" json:"isOpen"`

	// rating and reviewCount are derived from the restaurant's reviews
	Rating      float64 `bson:"rating" json:"rating"`
	ReviewCount int     `bson:"reviewCount" json:"reviewCount"`

	OwnerID string `gorm:"size:36;index" bson:"ownerId,omitempty" json:"ownerId,omitempty"`
}
