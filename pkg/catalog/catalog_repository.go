package catalog

import (
	"context"
	"spice-garden/entities"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	CatalogRepository interface {
		// Categories
		GetCategories(ctx context.Context) ([]*CategorySummary, error)
		GetCategoryByID(ctx context.Context, id string) (*entities.Category, error)
		CategoryNameExists(ctx context.Context, name string, excludeID string) (bool, error)
		CreateCategory(ctx context.Context, category *entities.Category) error
		UpdateCategory(ctx context.Context, category *entities.Category) error
		DeleteCategory(ctx context.Context, id string) error
		CountMenuItemsInCategory(ctx context.Context, categoryID string) (int64, error)

		// Menu items
		GetMenuItems(ctx context.Context, filter MenuItemFilter) ([]*entities.MenuItem, error)
		GetMenuItemByID(ctx context.Context, id string) (*entities.MenuItem, error)
		CreateMenuItem(ctx context.Context, item *entities.MenuItem) error
		UpdateMenuItem(ctx context.Context, item *entities.MenuItem) error
		DeleteMenuItem(ctx context.Context, id string) error
		CountOrderItemsForMenuItem(ctx context.Context, menuItemID string) (int64, error)

		// Options
		GetOptions(ctx context.Context, menuItemID string) ([]*entities.ItemOption, error)
		GetOptionByID(ctx context.Context, id string) (*entities.ItemOption, error)
		CreateOption(ctx context.Context, option *entities.ItemOption) error
		UpdateOption(ctx context.Context, option *entities.ItemOption) error
		DeleteOption(ctx context.Context, id string) error
	}

	CategorySummary struct {
		ID            uuid.UUID
		Name          string
		Description   string
		CreatedAt     time.Time
		MenuItemCount int64
	}

	MenuItemFilter struct {
		CategoryID    string
		AvailableOnly bool
	}

	catalogRepository struct {
		db *gorm.DB
	}
)

func NewCatalogRepository(db *gorm.DB) CatalogRepository {
	return &catalogRepository{db: db}
}

func (r *catalogRepository) GetCategories(ctx context.Context) ([]*CategorySummary, error) {
	var categories []*CategorySummary
	err := r.db.WithContext(ctx).Model(&entities.Category{}).
		Select("categories.id, categories.name, categories.description, categories.created_at, " +
			"(SELECT COUNT(*) FROM menu_items WHERE menu_items.category_id = categories.id) AS menu_item_count").
		Order("categories.name asc").
		Scan(&categories).Error
	return categories, err
}

func (r *catalogRepository) GetCategoryByID(ctx context.Context, id string) (*entities.Category, error) {
	var category entities.Category
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&category).Error; err != nil {
		return nil, err
	}
	return &category, nil
}

func (r *catalogRepository) CategoryNameExists(ctx context.Context, name string, excludeID string) (bool, error) {
	var count int64
	query := r.db.WithContext(ctx).Model(&entities.Category{}).Where("LOWER(TRIM(name)) = LOWER(?)", name)
	if excludeID != "" {
		query = query.Where("id <> ?", excludeID)
	}
	if err := query.Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *catalogRepository) CreateCategory(ctx context.Context, category *entities.Category) error {
	return r.db.WithContext(ctx).Create(category).Error
}

func (r *catalogRepository) UpdateCategory(ctx context.Context, category *entities.Category) error {
	return r.db.WithContext(ctx).Save(category).Error
}

func (r *catalogRepository) DeleteCategory(ctx context.Context, id string) error {
	res := r.db.WithContext(ctx).Where("id = ?", id).Delete(&entities.Category{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *catalogRepository) CountMenuItemsInCategory(ctx context.Context, categoryID string) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&entities.MenuItem{}).Where("category_id = ?", categoryID).Count(&count).Error
	return count, err
}

func (r *catalogRepository) GetMenuItems(ctx context.Context, filter MenuItemFilter) ([]*entities.MenuItem, error) {
	var items []*entities.MenuItem

	query := r.db.WithContext(ctx).Preload("Category").Preload("Options")
	if filter.CategoryID != "" {
		query = query.Where("category_id = ?", filter.CategoryID)
	}
	if filter.AvailableOnly {
		query = query.Where("is_available = ?", true)
	}

	err := query.Order("created_at desc").Find(&items).Error
	return items, err
}

func (r *catalogRepository) GetMenuItemByID(ctx context.Context, id string) (*entities.MenuItem, error) {
	var item entities.MenuItem
	if err := r.db.WithContext(ctx).Preload("Category").Preload("Options").Where("id = ?", id).First(&item).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *catalogRepository) CreateMenuItem(ctx context.Context, item *entities.MenuItem) error {
	return r.db.WithContext(ctx).Omit("Category", "Options").Create(item).Error
}

func (r *catalogRepository) UpdateMenuItem(ctx context.Context, item *entities.MenuItem) error {
	return r.db.WithContext(ctx).Omit("Category", "Options").Save(item).Error
}

func (r *catalogRepository) DeleteMenuItem(ctx context.Context, id string) error {
	res := r.db.WithContext(ctx).Where("id = ?", id).Delete(&entities.MenuItem{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *catalogRepository) CountOrderItemsForMenuItem(ctx context.Context, menuItemID string) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&entities.OrderItem{}).Where("menu_item_id = ?", menuItemID).Count(&count).Error
	return count, err
}

func (r *catalogRepository) GetOptions(ctx context.Context, menuItemID string) ([]*entities.ItemOption, error) {
	var options []*entities.ItemOption
	err := r.db.WithContext(ctx).Where("menu_item_id = ?", menuItemID).Order("created_at asc").Find(&options).Error
	return options, err
}

func (r *catalogRepository) GetOptionByID(ctx context.Context, id string) (*entities.ItemOption, error) {
	var option entities.ItemOption
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&option).Error; err != nil {
		return nil, err
	}
	return &option, nil
}

func (r *catalogRepository) CreateOption(ctx context.Context, option *entities.ItemOption) error {
	return r.db.WithContext(ctx).Create(option).Error
}

func (r *catalogRepository) UpdateOption(ctx context.Context, option *entities.ItemOption) error {
	return r.db.WithContext(ctx).Save(option).Error
}

func (r *catalogRepository) DeleteOption(ctx context.Context, id string) error {
	res := r.db.WithContext(ctx).Where("id = ?", id).Delete(&entities.ItemOption{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
