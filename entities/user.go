package entities

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type User struct {
	ID       uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	Name     string    `json:"name"`
	Email    string    `gorm:"uniqueIndex;not null" json:"email"`
	Password string    `gorm:"not null" json:"-"`
	Phone    string    `json:"phone,omitempty"`
	Role     string    `gorm:"type:varchar(16);not null" json:"role"` // user, admin

	Addresses []*Address `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	Orders    []*Order   `gorm:"foreignKey:UserID"`
	Timestamp
}

func (u *User) BeforeCreate(tx *gorm.DB) error {
	ensureID(&u.ID)
	return nil
}

type Address struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	UserID    uuid.UUID `gorm:"type:uuid;index;not null" json:"user_id"`
	Street    string    `json:"street"`
	City      string    `json:"city"`
	ZipCode   string    `json:"zip_code"`
	IsDefault bool      `gorm:"not null" json:"is_default"`

	User *User `gorm:"foreignKey:UserID"`
	Timestamp
}

func (a *Address) BeforeCreate(tx *gorm.DB) error {
	ensureID(&a.ID)
	return nil
}
