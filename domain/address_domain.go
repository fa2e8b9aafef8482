package domain

import (
	"time"
)

var (
	MessageSuccessGetAddresses  = "addresses retrieved successfully"
	MessageSuccessAddAddress    = "address added successfully"
	MessageSuccessUpdateAddress = "address updated successfully"
	MessageSuccessDeleteAddress = "address deleted successfully"
	MessageSuccessSetDefault    = "default address updated successfully"

	MessageFailedGetAddresses  = "failed to get addresses"
	MessageFailedAddAddress    = "failed to add address"
	MessageFailedUpdateAddress = "failed to update address"
	MessageFailedDeleteAddress = "failed to delete address"
	MessageFailedSetDefault    = "failed to set default address"

	ErrAddressNotFound = NewError(KindNotFound, "address not found")
)

type (
	AddressRequest struct {
		Street    string `json:"street" validate:"required"`
		City      string `json:"city" validate:"required"`
		ZipCode   string `json:"zip_code" validate:"required"`
		IsDefault bool   `json:"is_default"`
	}

	AddressResponse struct {
		ID        string    `json:"id"`
		Street    string    `json:"street"`
		City      string    `json:"city"`
		ZipCode   string    `json:"zip_code"`
		IsDefault bool      `json:"is_default"`
		CreatedAt time.Time `json:"created_at"`
	}
)
