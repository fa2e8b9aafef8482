package entities

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Order struct {
	ID            uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	UserID        uuid.UUID `gorm:"type:uuid;index;not null" json:"user_id"`
	Address       string    `gorm:"type:text;not null" json:"address"`
	Notes         string    `gorm:"type:text" json:"notes,omitempty"`
	Subtotal      float64   `gorm:"type:decimal(10,2);not null" json:"subtotal"`
	Tax           float64   `gorm:"type:decimal(10,2);not null" json:"tax"`
	DeliveryFee   float64   `gorm:"type:decimal(10,2);not null" json:"delivery_fee"`
	TotalAmount   float64   `gorm:"type:decimal(10,2);not null" json:"total_amount"`
	OrderStatus   string    `gorm:"type:varchar(32);index;not null" json:"order_status"`
	PaymentStatus string    `gorm:"type:varchar(32);not null" json:"payment_status"`
	PromoCodeID   *string   `json:"promo_code_id,omitempty"` // stored as given, never evaluated

	User  *User        `gorm:"foreignKey:UserID"`
	Items []*OrderItem `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
	Timestamp
}

func (o *Order) BeforeCreate(tx *gorm.DB) error {
	ensureID(&o.ID)
	return nil
}

// OrderItem keeps the price that was charged; it is never updated after the
// order is placed.
type OrderItem struct {
	ID         uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	OrderID    uuid.UUID `gorm:"type:uuid;index;not null" json:"order_id"`
	MenuItemID uuid.UUID `gorm:"type:uuid;index;not null" json:"menu_item_id"`
	OptionIDs  string    `gorm:"type:text" json:"option_ids"`
	Quantity   int       `gorm:"not null" json:"quantity"`
	Price      float64   `gorm:"type:decimal(10,2);not null" json:"price"`

	Order    *Order    `gorm:"foreignKey:OrderID"`
	MenuItem *MenuItem `gorm:"foreignKey:MenuItemID;constraint:OnDelete:RESTRICT"`
	Timestamp
}

func (i *OrderItem) BeforeCreate(tx *gorm.DB) error {
	ensureID(&i.ID)
	return nil
}
