package entity

const (
	RoleCustomer = "customer"
	RoleAdmin    = "admin"
)

type User struct {
	Model `bson:",inline"`

	Email        string `gorm:"uniqueIndex;not null" bson:"email" json:"email"`
	PasswordHash string `bson:"passwordHash" json:"-"`
	Name         string `bson:"name" json:"name"`
	Phone        string `bson:"phone" json:"phone"`
	Address      string `bson:"address" json:"address"`
	Avatar       string `bson:"avatar,omitempty" json:"avatar,omitempty"`
	Role         string `gorm:"not null;default:customer" bson:"role" json:"role"`
}
