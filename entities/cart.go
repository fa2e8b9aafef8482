package entities

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Cart is the single open cart of a user. The unique index on user_id is what
// keeps a second cart from appearing under concurrent ensure-cart calls.
type Cart struct {
	ID     uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	UserID uuid.UUID `gorm:"type:uuid;uniqueIndex;not null" json:"user_id"`

	User  *User       `gorm:"foreignKey:UserID"`
	Items []*CartItem `gorm:"foreignKey:CartID;constraint:OnDelete:CASCADE"`
	Timestamp
}

func (c *Cart) BeforeCreate(tx *gorm.DB) error {
	ensureID(&c.ID)
	return nil
}

type CartItem struct {
	ID         uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	CartID     uuid.UUID `gorm:"type:uuid;index;not null" json:"cart_id"`
	MenuItemID uuid.UUID `gorm:"type:uuid;index;not null" json:"menu_item_id"`
	OptionIDs  string    `gorm:"type:text" json:"option_ids"` // JSON array, never re-validated
	Quantity   int       `gorm:"not null" json:"quantity"`
	UnitPrice  float64   `gorm:"type:decimal(10,2);not null" json:"unit_price"`

	Cart     *Cart     `gorm:"foreignKey:CartID"`
	MenuItem *MenuItem `gorm:"foreignKey:MenuItemID;constraint:OnDelete:CASCADE"`
	Timestamp
}

func (i *CartItem) BeforeCreate(tx *gorm.DB) error {
	ensureID(&i.ID)
	return nil
}
