package entities

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Category struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	Name        string    `gorm:"not null" json:"name"`
	Description string    `json:"description,omitempty"`

	MenuItems []*MenuItem `gorm:"foreignKey:CategoryID;constraint:OnDelete:RESTRICT"`
	Timestamp
}

func (c *Category) BeforeCreate(tx *gorm.DB) error {
	ensureID(&c.ID)
	return nil
}

type MenuItem struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	CategoryID  uuid.UUID `gorm:"type:uuid;index;not null" json:"category_id"`
	Name        string    `gorm:"not null" json:"name"`
	Description string    `gorm:"type:text" json:"description"`
	BasePrice   float64   `gorm:"type:decimal(10,2);not null" json:"base_price"`
	ImageURL    string    `json:"image_url,omitempty"`
	IsAvailable bool      `gorm:"not null" json:"is_available"`

	Category *Category    `gorm:"foreignKey:CategoryID"`
	Options  []*ItemOption `gorm:"foreignKey:MenuItemID;constraint:OnDelete:CASCADE"`
	Timestamp
}

func (m *MenuItem) BeforeCreate(tx *gorm.DB) error {
	ensureID(&m.ID)
	return nil
}

type ItemOption struct {
	ID         uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	MenuItemID uuid.UUID `gorm:"type:uuid;index;not null" json:"menu_item_id"`
	Name       string    `gorm:"not null" json:"name"`
	ExtraPrice float64   `gorm:"type:decimal(10,2);not null" json:"extra_price"`

	MenuItem *MenuItem `gorm:"foreignKey:MenuItemID"`
	Timestamp
}

func (o *ItemOption) BeforeCreate(tx *gorm.DB) error {
	ensureID(&o.ID)
	return nil
}
