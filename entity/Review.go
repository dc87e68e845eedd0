package entity

type Review struct {
	Model `bson:",inline"`

	UserID       string `gorm:"size:36;index;not null" bson:"userId" json:"userId"`
	RestaurantID string `gorm:"size:36;index;not null" bson:"restaurantId" json:"restaurantId"`
	Rating       int    `bson:"rating" json:"rating"`
	Comment      string `bson:"comment" json:"comment"`
	UserName     string `bson:"userName" json:"userName"`
	UserAvatar   string `bson:"userAvatar,omitempty" json:"userAvatar,omitempty"`
}
