package address

import (
	"context"
	"spice-garden/entities"

	"gorm.io/gorm"
)

type (
	AddressRepository interface {
		GetAddresses(ctx context.Context, userID string) ([]*entities.Address, error)
		GetAddressByID(ctx context.Context, id string, userID string) (*entities.Address, error)
		CreateAddress(ctx context.Context, address *entities.Address) error
		UpdateAddress(ctx context.Context, address *entities.Address) error
		DeleteAddress(ctx context.Context, id string, userID string) error
		SetDefault(ctx context.Context, id string, userID string) error
	}

	addressRepository struct {
		db *gorm.DB
	}
)

func NewAddressRepository(db *gorm.DB) AddressRepository {
	return &addressRepository{db: db}
}

func (r *addressRepository) GetAddresses(ctx context.Context, userID string) ([]*entities.Address, error) {
	var addresses []*entities.Address
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("is_default desc").Order("created_at asc").
		Find(&addresses).Error
	return addresses, err
}

func (r *addressRepository) GetAddressByID(ctx context.Context, id string, userID string) (*entities.Address, error) {
	var address entities.Address
	if err := r.db.WithContext(ctx).Where("id = ? AND user_id = ?", id, userID).First(&address).Error; err != nil {
		return nil, err
	}
	return &address, nil
}

// clearDefault must run before the target row is flagged, otherwise the
// partial unique index rejects the write.
func clearDefault(tx *gorm.DB, userID any, exceptID any) error {
	return tx.Model(&entities.Address{}).
		Where("user_id = ? AND id <> ? AND is_default = ?", userID, exceptID, true).
		Update("is_default", false).Error
}

func (r *addressRepository) CreateAddress(ctx context.Context, address *entities.Address) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if address.IsDefault {
			if err := clearDefault(tx, address.UserID, address.ID); err != nil {
				return err
			}
		}
		return tx.Create(address).Error
	})
}

func (r *addressRepository) UpdateAddress(ctx context.Context, address *entities.Address) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if address.IsDefault {
			if err := clearDefault(tx, address.UserID, address.ID); err != nil {
				return err
			}
		}
		return tx.Save(address).Error
	})
}

func (r *addressRepository) DeleteAddress(ctx context.Context, id string, userID string) error {
	res := r.db.WithContext(ctx).Where("id = ? AND user_id = ?", id, userID).Delete(&entities.Address{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *addressRepository) SetDefault(ctx context.Context, id string, userID string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := clearDefault(tx, userID, id); err != nil {
			return err
		}
		res := tx.Model(&entities.Address{}).
			Where("id = ? AND user_id = ?", id, userID).
			Update("is_default", true)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
}
