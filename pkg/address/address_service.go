package address

import (
	"context"
	"errors"
	"spice-garden/domain"
	"spice-garden/entities"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	AddressService interface {
		GetAddresses(ctx context.Context, userID string) ([]domain.AddressResponse, error)
		AddAddress(ctx context.Context, userID string, req domain.AddressRequest) (domain.AddressResponse, error)
		UpdateAddress(ctx context.Context, userID string, id string, req domain.AddressRequest) (domain.AddressResponse, error)
		DeleteAddress(ctx context.Context, userID string, id string) error
		SetDefault(ctx context.Context, userID string, id string) error
		// ResolveSnapshot returns the free-text form of a saved address owned by userID.
		ResolveSnapshot(ctx context.Context, userID string, id string) (string, error)
	}

	addressService struct {
		addressRepository AddressRepository
	}
)

func NewAddressService(addressRepository AddressRepository) AddressService {
	return &addressService{addressRepository: addressRepository}
}

func toAddressResponse(a *entities.Address) domain.AddressResponse {
	return domain.AddressResponse{
		ID:        a.ID.String(),
		Street:    a.Street,
		City:      a.City,
		ZipCode:   a.ZipCode,
		IsDefault: a.IsDefault,
		CreatedAt: a.CreatedAt,
	}
}

// Snapshot is the text copied onto an order.
func Snapshot(a *entities.Address) string {
	return strings.TrimSpace(a.Street + ", " + a.City + " " + a.ZipCode)
}

func (s *addressService) getOwned(ctx context.Context, userID string, id string) (*entities.Address, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, domain.ErrAddressNotFound
	}
	address, err := s.addressRepository.GetAddressByID(ctx, id, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrAddressNotFound
		}
		return nil, err
	}
	return address, nil
}

func (s *addressService) GetAddresses(ctx context.Context, userID string) ([]domain.AddressResponse, error) {
	addresses, err := s.addressRepository.GetAddresses(ctx, userID)
	if err != nil {
		return nil, err
	}

	res := make([]domain.AddressResponse, 0, len(addresses))
	for _, a := range addresses {
		res = append(res, toAddressResponse(a))
	}
	return res, nil
}

func (s *addressService) AddAddress(ctx context.Context, userID string, req domain.AddressRequest) (domain.AddressResponse, error) {
	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return domain.AddressResponse{}, domain.ErrParseUUID
	}

	address := &entities.Address{
		ID:        uuid.New(),
		UserID:    userUUID,
		Street:    strings.TrimSpace(req.Street),
		City:      strings.TrimSpace(req.City),
		ZipCode:   strings.TrimSpace(req.ZipCode),
		IsDefault: req.IsDefault,
	}

	if err := s.addressRepository.CreateAddress(ctx, address); err != nil {
		return domain.AddressResponse{}, err
	}
	return toAddressResponse(address), nil
}

func (s *addressService) UpdateAddress(ctx context.Context, userID string, id string, req domain.AddressRequest) (domain.AddressResponse, error) {
	address, err := s.getOwned(ctx, userID, id)
	if err != nil {
		return domain.AddressResponse{}, err
	}

	address.Street = strings.TrimSpace(req.Street)
	address.City = strings.TrimSpace(req.City)
	address.ZipCode = strings.TrimSpace(req.ZipCode)
	address.IsDefault = req.IsDefault

	if err := s.addressRepository.UpdateAddress(ctx, address); err != nil {
		return domain.AddressResponse{}, err
	}
	return toAddressResponse(address), nil
}

func (s *addressService) DeleteAddress(ctx context.Context, userID string, id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return domain.ErrAddressNotFound
	}
	if err := s.addressRepository.DeleteAddress(ctx, id, userID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrAddressNotFound
		}
		return err
	}
	return nil
}

func (s *addressService) SetDefault(ctx context.Context, userID string, id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return domain.ErrAddressNotFound
	}
	if err := s.addressRepository.SetDefault(ctx, id, userID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrAddressNotFound
		}
		return err
	}
	return nil
}

func (s *addressService) ResolveSnapshot(ctx context.Context, userID string, id string) (string, error) {
	address, err := s.getOwned(ctx, userID, id)
	if err != nil {
		if errors.Is(err, domain.ErrAddressNotFound) {
			return "", domain.ErrSavedAddressNotFound
		}
		return "", err
	}
	return Snapshot(address), nil
}
