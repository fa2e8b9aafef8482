package catalog

import (
	"context"
	"errors"
	"mime/multipart"
	"spice-garden/domain"
	"spice-garden/entities"
	"spice-garden/internal/utils/storage"
	"strings"

	"github.com/gofiber/fiber/v2/log"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

const menuImageFolder = "menu-items"

type (
	CatalogService interface {
		GetCategories(ctx context.Context) ([]domain.CategoryResponse, error)
		GetCategory(ctx context.Context, id string) (domain.CategoryResponse, error)
		CreateCategory(ctx context.Context, req domain.CategoryRequest) (domain.CategoryResponse, error)
		UpdateCategory(ctx context.Context, id string, req domain.CategoryRequest) (domain.CategoryResponse, error)
		DeleteCategory(ctx context.Context, id string) error

		GetMenuItems(ctx context.Context, filter MenuItemFilter) ([]domain.MenuItemResponse, error)
		GetMenuItem(ctx context.Context, id string) (domain.MenuItemResponse, error)
		CreateMenuItem(ctx context.Context, req domain.CreateMenuItemRequest) (domain.MenuItemResponse, error)
		UpdateMenuItem(ctx context.Context, id string, req domain.UpdateMenuItemRequest) (domain.MenuItemResponse, error)
		DeleteMenuItem(ctx context.Context, id string) error
		UploadMenuItemImage(ctx context.Context, id string, file *multipart.FileHeader) (domain.MenuItemResponse, error)

		GetOptions(ctx context.Context, menuItemID string) ([]domain.ItemOptionResponse, error)
		CreateOption(ctx context.Context, req domain.ItemOptionRequest) (domain.ItemOptionResponse, error)
		UpdateOption(ctx context.Context, id string, req domain.UpdateItemOptionRequest) (domain.ItemOptionResponse, error)
		DeleteOption(ctx context.Context, id string) error
	}

	catalogService struct {
		catalogRepository CatalogRepository
		s3                storage.AwsS3
	}
)

func NewCatalogService(catalogRepository CatalogRepository, s3 storage.AwsS3) CatalogService {
	return &catalogService{
		catalogRepository: catalogRepository,
		s3:                s3,
	}
}

func ToMenuItemResponse(item *entities.MenuItem) domain.MenuItemResponse {
	res := domain.MenuItemResponse{
		ID:          item.ID.String(),
		CategoryID:  item.CategoryID.String(),
		Name:        item.Name,
		Description: item.Description,
		BasePrice:   item.BasePrice,
		ImageURL:    item.ImageURL,
		IsAvailable: item.IsAvailable,
		Options:     make([]domain.ItemOptionResponse, 0, len(item.Options)),
		CreatedAt:   item.CreatedAt,
	}
	if item.Category != nil {
		res.Category = item.Category.Name
	}
	for _, o := range item.Options {
		res.Options = append(res.Options, toOptionResponse(o))
	}
	return res
}

func toOptionResponse(o *entities.ItemOption) domain.ItemOptionResponse {
	return domain.ItemOptionResponse{
		ID:         o.ID.String(),
		MenuItemID: o.MenuItemID.String(),
		Name:       o.Name,
		ExtraPrice: o.ExtraPrice,
	}
}

func notFound(err error, target *domain.Error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return target
	}
	return err
}

// --- categories ---

func (s *catalogService) GetCategories(ctx context.Context) ([]domain.CategoryResponse, error) {
	categories, err := s.catalogRepository.GetCategories(ctx)
	if err != nil {
		return nil, err
	}

	res := make([]domain.CategoryResponse, 0, len(categories))
	for _, c := range categories {
		res = append(res, domain.CategoryResponse{
			ID:            c.ID.String(),
			Name:          c.Name,
			Description:   c.Description,
			MenuItemCount: c.MenuItemCount,
			CreatedAt:     c.CreatedAt,
		})
	}
	return res, nil
}

func (s *catalogService) getCategory(ctx context.Context, id string) (*entities.Category, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, domain.ErrCategoryNotFound
	}
	category, err := s.catalogRepository.GetCategoryByID(ctx, id)
	if err != nil {
		return nil, notFound(err, domain.ErrCategoryNotFound)
	}
	return category, nil
}

func (s *catalogService) GetCategory(ctx context.Context, id string) (domain.CategoryResponse, error) {
	category, err := s.getCategory(ctx, id)
	if err != nil {
		return domain.CategoryResponse{}, err
	}
	count, err := s.catalogRepository.CountMenuItemsInCategory(ctx, id)
	if err != nil {
		return domain.CategoryResponse{}, err
	}
	return domain.CategoryResponse{
		ID:            category.ID.String(),
		Name:          category.Name,
		Description:   category.Description,
		MenuItemCount: count,
		CreatedAt:     category.CreatedAt,
	}, nil
}

func (s *catalogService) checkCategoryName(ctx context.Context, name string, excludeID string) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", domain.ErrCategoryNameRequired
	}
	exists, err := s.catalogRepository.CategoryNameExists(ctx, name, excludeID)
	if err != nil {
		return "", err
	}
	if exists {
		return "", domain.ErrCategoryNameTaken
	}
	return name, nil
}

func (s *catalogService) CreateCategory(ctx context.Context, req domain.CategoryRequest) (domain.CategoryResponse, error) {
	name, err := s.checkCategoryName(ctx, req.Name, "")
	if err != nil {
		return domain.CategoryResponse{}, err
	}

	category := &entities.Category{
		ID:          uuid.New(),
		Name:        name,
		Description: strings.TrimSpace(req.Description),
	}
	if err := s.catalogRepository.CreateCategory(ctx, category); err != nil {
		return domain.CategoryResponse{}, err
	}

	return domain.CategoryResponse{
		ID:          category.ID.String(),
		Name:        category.Name,
		Description: category.Description,
		CreatedAt:   category.CreatedAt,
	}, nil
}

func (s *catalogService) UpdateCategory(ctx context.Context, id string, req domain.CategoryRequest) (domain.CategoryResponse, error) {
	category, err := s.getCategory(ctx, id)
	if err != nil {
		return domain.CategoryResponse{}, err
	}

	name, err := s.checkCategoryName(ctx, req.Name, id)
	if err != nil {
		return domain.CategoryResponse{}, err
	}
	category.Name = name
	category.Description = strings.TrimSpace(req.Description)

	if err := s.catalogRepository.UpdateCategory(ctx, category); err != nil {
		return domain.CategoryResponse{}, err
	}
	return s.GetCategory(ctx, id)
}

func (s *catalogService) DeleteCategory(ctx context.Context, id string) error {
	if _, err := s.getCategory(ctx, id); err != nil {
		return err
	}

	count, err := s.catalogRepository.CountMenuItemsInCategory(ctx, id)
	if err != nil {
		return err
	}
	if count > 0 {
		return domain.ErrCategoryHasItems
	}

	if err := s.catalogRepository.DeleteCategory(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrForeignKeyViolated) {
			return domain.ErrCategoryHasItems
		}
		return notFound(err, domain.ErrCategoryNotFound)
	}
	return nil
}

// --- menu items ---

func (s *catalogService) GetMenuItems(ctx context.Context, filter MenuItemFilter) ([]domain.MenuItemResponse, error) {
	if filter.CategoryID != "" {
		if _, err := uuid.Parse(filter.CategoryID); err != nil {
			return []domain.MenuItemResponse{}, nil
		}
	}

	items, err := s.catalogRepository.GetMenuItems(ctx, filter)
	if err != nil {
		return nil, err
	}

	res := make([]domain.MenuItemResponse, 0, len(items))
	for _, item := range items {
		res = append(res, ToMenuItemResponse(item))
	}
	return res, nil
}

func (s *catalogService) getMenuItem(ctx context.Context, id string) (*entities.MenuItem, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, domain.ErrMenuItemNotFound
	}
	item, err := s.catalogRepository.GetMenuItemByID(ctx, id)
	if err != nil {
		return nil, notFound(err, domain.ErrMenuItemNotFound)
	}
	return item, nil
}

func (s *catalogService) GetMenuItem(ctx context.Context, id string) (domain.MenuItemResponse, error) {
	item, err := s.getMenuItem(ctx, id)
	if err != nil {
		return domain.MenuItemResponse{}, err
	}
	return ToMenuItemResponse(item), nil
}

func (s *catalogService) CreateMenuItem(ctx context.Context, req domain.CreateMenuItemRequest) (domain.MenuItemResponse, error) {
	category, err := s.getCategory(ctx, req.CategoryID)
	if err != nil {
		return domain.MenuItemResponse{}, err
	}

	available := true
	if req.IsAvailable != nil {
		available = *req.IsAvailable
	}

	item := &entities.MenuItem{
		ID:          uuid.New(),
		CategoryID:  category.ID,
		Name:        strings.TrimSpace(req.Name),
		Description: req.Description,
		BasePrice:   req.BasePrice,
		ImageURL:    req.ImageURL,
		IsAvailable: available,
	}
	if err := s.catalogRepository.CreateMenuItem(ctx, item); err != nil {
		return domain.MenuItemResponse{}, err
	}

	item.Category = category
	return ToMenuItemResponse(item), nil
}

func (s *catalogService) UpdateMenuItem(ctx context.Context, id string, req domain.UpdateMenuItemRequest) (domain.MenuItemResponse, error) {
	item, err := s.getMenuItem(ctx, id)
	if err != nil {
		return domain.MenuItemResponse{}, err
	}

	if req.CategoryID != "" {
		category, err := s.getCategory(ctx, req.CategoryID)
		if err != nil {
			return domain.MenuItemResponse{}, err
		}
		item.CategoryID = category.ID
	}
	if name := strings.TrimSpace(req.Name); name != "" {
		item.Name = name
	}
	if req.Description != nil {
		item.Description = *req.Description
	}
	if req.BasePrice != nil {
		item.BasePrice = *req.BasePrice
	}
	if req.ImageURL != "" {
		item.ImageURL = req.ImageURL
	}
	if req.IsAvailable != nil {
		item.IsAvailable = *req.IsAvailable
	}

	if err := s.catalogRepository.UpdateMenuItem(ctx, item); err != nil {
		return domain.MenuItemResponse{}, err
	}
	return s.GetMenuItem(ctx, id)
}

func (s *catalogService) DeleteMenuItem(ctx context.Context, id string) error {
	item, err := s.getMenuItem(ctx, id)
	if err != nil {
		return err
	}

	count, err := s.catalogRepository.CountOrderItemsForMenuItem(ctx, id)
	if err != nil {
		return err
	}
	if count > 0 {
		return domain.ErrMenuItemInOrders
	}

	if err := s.catalogRepository.DeleteMenuItem(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrForeignKeyViolated) {
			return domain.ErrMenuItemInOrders
		}
		return notFound(err, domain.ErrMenuItemNotFound)
	}

	s.removeImage(ctx, item.ImageURL)
	return nil
}

func (s *catalogService) UploadMenuItemImage(ctx context.Context, id string, file *multipart.FileHeader) (domain.MenuItemResponse, error) {
	item, err := s.getMenuItem(ctx, id)
	if err != nil {
		return domain.MenuItemResponse{}, err
	}

	key, err := s.s3.UploadFile(ctx, uuid.NewString(), file, menuImageFolder, storage.AllowImage...)
	if err != nil {
		return domain.MenuItemResponse{}, err
	}

	previous := item.ImageURL
	item.ImageURL = s.s3.GetPublicLinkKey(key)
	if err := s.catalogRepository.UpdateMenuItem(ctx, item); err != nil {
		s.removeImage(ctx, item.ImageURL)
		return domain.MenuItemResponse{}, err
	}

	s.removeImage(ctx, previous)
	return ToMenuItemResponse(item), nil
}

// removeImage deletes an object we uploaded earlier. External image links
// are left alone.
func (s *catalogService) removeImage(ctx context.Context, link string) {
	if s.s3 == nil || link == "" {
		return
	}
	key := s.s3.GetObjectKeyFromLink(link)
	if key == "" {
		return
	}
	if err := s.s3.DeleteFile(ctx, key); err != nil {
		log.Warnf("failed to delete menu image %s: %v", key, err)
	}
}

// --- options ---

func (s *catalogService) GetOptions(ctx context.Context, menuItemID string) ([]domain.ItemOptionResponse, error) {
	if _, err := s.getMenuItem(ctx, menuItemID); err != nil {
		return nil, err
	}

	options, err := s.catalogRepository.GetOptions(ctx, menuItemID)
	if err != nil {
		return nil, err
	}

	res := make([]domain.ItemOptionResponse, 0, len(options))
	for _, o := range options {
		res = append(res, toOptionResponse(o))
	}
	return res, nil
}

func (s *catalogService) CreateOption(ctx context.Context, req domain.ItemOptionRequest) (domain.ItemOptionResponse, error) {
	item, err := s.getMenuItem(ctx, req.MenuItemID)
	if err != nil {
		return domain.ItemOptionResponse{}, err
	}

	option := &entities.ItemOption{
		ID:         uuid.New(),
		MenuItemID: item.ID,
		Name:       strings.TrimSpace(req.Name),
		ExtraPrice: req.ExtraPrice,
	}
	if err := s.catalogRepository.CreateOption(ctx, option); err != nil {
		return domain.ItemOptionResponse{}, err
	}
	return toOptionResponse(option), nil
}

func (s *catalogService) getOption(ctx context.Context, id string) (*entities.ItemOption, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, domain.ErrItemOptionNotFound
	}
	option, err := s.catalogRepository.GetOptionByID(ctx, id)
	if err != nil {
		return nil, notFound(err, domain.ErrItemOptionNotFound)
	}
	return option, nil
}

func (s *catalogService) UpdateOption(ctx context.Context, id string, req domain.UpdateItemOptionRequest) (domain.ItemOptionResponse, error) {
	option, err := s.getOption(ctx, id)
	if err != nil {
		return domain.ItemOptionResponse{}, err
	}

	if name := strings.TrimSpace(req.Name); name != "" {
		option.Name = name
	}
	if req.ExtraPrice != nil {
		option.ExtraPrice = *req.ExtraPrice
	}

	if err := s.catalogRepository.UpdateOption(ctx, option); err != nil {
		return domain.ItemOptionResponse{}, err
	}
	return toOptionResponse(option), nil
}

func (s *catalogService) DeleteOption(ctx context.Context, id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return domain.ErrItemOptionNotFound
	}
	if err := s.catalogRepository.DeleteOption(ctx, id); err != nil {
		return notFound(err, domain.ErrItemOptionNotFound)
	}
	return nil
}
