package entity

type MenuItem struct {
	Model `bson:",inline"`

	RestaurantID string `gorm:"size:36;index;not null" bson:"restaurantId" json:"restaurantId"`
	Name         string `gorm:"not null" bson:"name" json:"name"`
	Description  string `bson:"description" json:"description"`
	Price        int64  `bson:"price" json:"price"`
	Category     string `bson:"category" json:"category"`
	Image        string `bson:"image" json:"image"`
	IsAvailable  bool   `bson:"isAvailable" json:"isAvailable"`
}
