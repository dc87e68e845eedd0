package entity

type Customer struct {
	Name    string `bson:"name" json:"name"`
	Email   string `bson:"email" json:"email"`
	Phone   string `bson:"phone" json:"phone"`
	Address string `bson:"address" json:"address"`
}

type Order struct {
	Model `bson:",inline"`

	OrderNumber    string   `gorm:"size:32;uniqueIndex;not null" bson:"orderNumber" json:"orderNumber"`
	UserID         string   `gorm:"size:36;index" bson:"userId" json:"userId"`
	RestaurantID   string   `gorm:"size:36;index" bson:"restaurantId" json:"restaurantId"`
	RestaurantName string   `bson:"restaurantName" json:"restaurantName"`
	Customer       Customer `gorm:"embedded;embeddedPrefix:customer_" bson:"customer" json:"customer"`

	Items []OrderItem `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" bson:"items" json:"items"`

	Status           OrderStatus   `gorm:"size:16;index" bson:"status" json:"status"`
	PaymentStatus    PaymentStatus `gorm:"size:16;index" bson:"paymentStatus" json:"paymentStatus"`
	PaymentMethod    PaymentMethod `gorm:"size:16" bson:"paymentMethod" json:"paymentMethod"`
	PaymentReference string        `gorm:"uniqueIndex:idx_orders_payment_reference,where:payment_reference <> ''" bson:"paymentReference,omitempty" json:"paymentReference,omitempty"`

	Subtotal    int64 `bson:"subtotal" json:"subtotal"`
	DeliveryFee int64 `bson:"deliveryFee" json:"deliveryFee"`
	Total       int64 `bson:"total" json:"total"`

	Address string `bson:"address" json:"address"`
	Notes   string `bson:"notes,omitempty" json:"notes,omitempty"`
}
