package domain

import (
	"mime/multipart"
	"time"
)

var (
	MessageSuccessGetCategories   = "categories retrieved successfully"
	MessageSuccessGetCategory     = "category retrieved successfully"
	MessageSuccessCreateCategory  = "category created successfully"
	MessageSuccessUpdateCategory  = "category updated successfully"
	MessageSuccessDeleteCategory  = "category deleted successfully"
	MessageSuccessGetMenuItems    = "menu items retrieved successfully"
	MessageSuccessGetMenuItem     = "menu item retrieved successfully"
	MessageSuccessCreateMenuItem  = "menu item created successfully"
	MessageSuccessUpdateMenuItem  = "menu item updated successfully"
	MessageSuccessDeleteMenuItem  = "menu item deleted successfully"
	MessageSuccessUploadMenuImage = "menu item image uploaded successfully"
	MessageSuccessGetOptions      = "item options retrieved successfully"
	MessageSuccessCreateOption    = "item option created successfully"
	MessageSuccessUpdateOption    = "item option updated successfully"
	MessageSuccessDeleteOption    = "item option deleted successfully"

	MessageFailedGetCategories   = "failed to get categories"
	MessageFailedGetCategory     = "failed to get category"
	MessageFailedCreateCategory  = "failed to create category"
	MessageFailedUpdateCategory  = "failed to update category"
	MessageFailedDeleteCategory  = "failed to delete category"
	MessageFailedGetMenuItems    = "failed to get menu items"
	MessageFailedGetMenuItem     = "failed to get menu item"
	MessageFailedCreateMenuItem  = "failed to create menu item"
	MessageFailedUpdateMenuItem  = "failed to update menu item"
	MessageFailedDeleteMenuItem  = "failed to delete menu item"
	MessageFailedUploadMenuImage = "failed to upload menu item image"
	MessageFailedGetOptions      = "failed to get item options"
	MessageFailedCreateOption    = "failed to create item option"
	MessageFailedUpdateOption    = "failed to update item option"
	MessageFailedDeleteOption    = "failed to delete item option"

	ErrCategoryNotFound     = NewError(KindNotFound, "category not found")
	ErrCategoryNameTaken    = NewError(KindConflict, "category with this name already exists")
	ErrCategoryHasItems     = NewError(KindConflict, "cannot delete category that has menu items")
	ErrMenuItemNotFound     = NewError(KindNotFound, "menu item not found")
	ErrMenuItemInOrders     = NewError(KindConflict, "cannot delete menu item that exists in orders, mark it as unavailable instead")
	ErrItemOptionNotFound   = NewError(KindNotFound, "item option not found")
	ErrInvalidImageFormat   = NewError(KindValidation, "invalid image format")
	ErrCategoryNameRequired = NewError(KindValidation, "category name is required")
)

type (
	CategoryRequest struct {
		Name        string `json:"name" validate:"required"`
		Description string `json:"description" validate:"omitempty"`
	}

	CategoryResponse struct {
		ID            string    `json:"id"`
		Name          string    `json:"name"`
		Description   string    `json:"description,omitempty"`
		MenuItemCount int64     `json:"menu_item_count"`
		CreatedAt     time.Time `json:"created_at"`
	}

	CreateMenuItemRequest struct {
		CategoryID  string  `json:"category_id" validate:"required,uuid"`
		Name        string  `json:"name" validate:"required"`
		Description string  `json:"description" validate:"omitempty"`
		BasePrice   float64 `json:"base_price" validate:"gte=0"`
		ImageURL    string  `json:"image_url" validate:"omitempty,url"`
		IsAvailable *bool   `json:"is_available"`
	}

	UpdateMenuItemRequest struct {
		CategoryID  string   `json:"category_id" validate:"omitempty,uuid"`
		Name        string   `json:"name" validate:"omitempty"`
		Description *string  `json:"description"`
		BasePrice   *float64 `json:"base_price" validate:"omitempty,gte=0"`
		ImageURL    string   `json:"image_url" validate:"omitempty,url"`
		IsAvailable *bool    `json:"is_available"`
	}

	UploadMenuImageRequest struct {
		Image *multipart.FileHeader `json:"image" form:"image" validate:"required"`
	}

	MenuItemResponse struct {
		ID          string               `json:"id"`
		CategoryID  string               `json:"category_id"`
		Category    string               `json:"category,omitempty"`
		Name        string               `json:"name"`
		Description string               `json:"description"`
		BasePrice   float64              `json:"base_price"`
		ImageURL    string               `json:"image_url,omitempty"`
		IsAvailable bool                 `json:"is_available"`
		Options     []ItemOptionResponse `json:"options"`
		CreatedAt   time.Time            `json:"created_at"`
	}

	ItemOptionRequest struct {
		MenuItemID string  `json:"menu_item_id" validate:"required,uuid"`
		Name       string  `json:"name" validate:"required"`
		ExtraPrice float64 `json:"extra_price" validate:"gte=0"`
	}

	UpdateItemOptionRequest struct {
		Name       string   `json:"name" validate:"omitempty"`
		ExtraPrice *float64 `json:"extra_price" validate:"omitempty,gte=0"`
	}

	ItemOptionResponse struct {
		ID         string  `json:"id"`
		MenuItemID string  `json:"menu_item_id"`
		Name       string  `json:"name"`
		ExtraPrice float64 `json:"extra_price"`
	}
)
