package catalog

import (
	"context"
	"mime/multipart"
	"spice-garden/domain"
	"spice-garden/entities"
	"spice-garden/internal/testdb"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type fakeS3 struct {
	uploaded []string
	deleted  []string
	err      error
}

func (f *fakeS3) UploadFile(ctx context.Context, fileName string, file *multipart.FileHeader, folder string, allowed ...string) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	key := folder + "/" + fileName + ".png"
	f.uploaded = append(f.uploaded, key)
	return key, nil
}

func (f *fakeS3) DeleteFile(ctx context.Context, key string) error {
	f.deleted = append(f.deleted, key)
	return nil
}

func (f *fakeS3) GetPublicLinkKey(key string) string {
	return "https://bucket.test/" + key
}

func (f *fakeS3) GetObjectKeyFromLink(link string) string {
	if !strings.HasPrefix(link, "https://bucket.test/") {
		return ""
	}
	return strings.TrimPrefix(link, "https://bucket.test/")
}

func newService(t *testing.T) (CatalogService, *gorm.DB, *fakeS3) {
	db := testdb.New(t)
	s3 := &fakeS3{}
	return NewCatalogService(NewCatalogRepository(db), s3), db, s3
}

func TestCategoryNameIsUniqueIgnoringCase(t *testing.T) {
	svc, _, _ := newService(t)
	ctx := context.Background()

	mains, err := svc.CreateCategory(ctx, domain.CategoryRequest{Name: " Mains "})
	require.NoError(t, err)
	assert.Equal(t, "Mains", mains.Name)

	_, err = svc.CreateCategory(ctx, domain.CategoryRequest{Name: "mains"})
	assert.ErrorIs(t, err, domain.ErrCategoryNameTaken)
	assert.Equal(t, domain.KindConflict, domain.KindOf(err))

	_, err = svc.CreateCategory(ctx, domain.CategoryRequest{Name: "   "})
	assert.ErrorIs(t, err, domain.ErrCategoryNameRequired)

	drinks, err := svc.CreateCategory(ctx, domain.CategoryRequest{Name: "Drinks"})
	require.NoError(t, err)

	_, err = svc.UpdateCategory(ctx, drinks.ID, domain.CategoryRequest{Name: "MAINS"})
	assert.ErrorIs(t, err, domain.ErrCategoryNameTaken)

	renamed, err := svc.UpdateCategory(ctx, mains.ID, domain.CategoryRequest{Name: "mains", Description: "big plates"})
	require.NoError(t, err)
	assert.Equal(t, "mains", renamed.Name)
}

func TestDeleteCategoryWithItemsIsRejected(t *testing.T) {
	svc, db, _ := newService(t)
	ctx := context.Background()
	category := testdb.CreateCategory(t, db, "Mains")
	item := testdb.CreateMenuItem(t, db, category, "Rendang", 500)

	err := svc.DeleteCategory(ctx, category.ID.String())
	assert.ErrorIs(t, err, domain.ErrCategoryHasItems)

	list, err := svc.GetCategories(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.EqualValues(t, 1, list[0].MenuItemCount)

	require.NoError(t, svc.DeleteMenuItem(ctx, item.ID.String()))
	require.NoError(t, svc.DeleteCategory(ctx, category.ID.String()))

	err = svc.DeleteCategory(ctx, category.ID.String())
	assert.ErrorIs(t, err, domain.ErrCategoryNotFound)
}

func TestDeleteMenuItemReferencedByOrderIsRejected(t *testing.T) {
	svc, db, _ := newService(t)
	ctx := context.Background()
	category := testdb.CreateCategory(t, db, "Mains")
	item := testdb.CreateMenuItem(t, db, category, "Rendang", 500)
	user := testdb.CreateCustomer(t, db, "a@example.com")

	order := &entities.Order{
		UserID:        user.ID,
		Address:       "12 Palm Rd",
		OrderStatus:   string(domain.OrderStatusPending),
		PaymentStatus: domain.PaymentStatusPending,
		Items:         []*entities.OrderItem{{MenuItemID: item.ID, Quantity: 1, Price: 500}},
	}
	require.NoError(t, db.Create(order).Error)

	err := svc.DeleteMenuItem(ctx, item.ID.String())
	assert.ErrorIs(t, err, domain.ErrMenuItemInOrders)
	assert.Equal(t, domain.KindConflict, domain.KindOf(err))

	_, err = svc.GetMenuItem(ctx, item.ID.String())
	assert.NoError(t, err)
}

func TestMenuItemLifecycle(t *testing.T) {
	svc, db, _ := newService(t)
	ctx := context.Background()
	category := testdb.CreateCategory(t, db, "Mains")

	_, err := svc.CreateMenuItem(ctx, domain.CreateMenuItemRequest{CategoryID: "00000000-0000-0000-0000-000000000001", Name: "Ghost"})
	assert.ErrorIs(t, err, domain.ErrCategoryNotFound)

	unavailable := false
	created, err := svc.CreateMenuItem(ctx, domain.CreateMenuItemRequest{
		CategoryID:  category.ID.String(),
		Name:        "Sate",
		BasePrice:   300,
		IsAvailable: &unavailable,
	})
	require.NoError(t, err)
	assert.False(t, created.IsAvailable)
	assert.Equal(t, "Mains", created.Category)

	available := true
	price := 0.0
	updated, err := svc.UpdateMenuItem(ctx, created.ID, domain.UpdateMenuItemRequest{IsAvailable: &available, BasePrice: &price})
	require.NoError(t, err)
	assert.True(t, updated.IsAvailable)
	assert.Zero(t, updated.BasePrice)
	assert.Equal(t, "Sate", updated.Name)

	option, err := svc.CreateOption(ctx, domain.ItemOptionRequest{MenuItemID: created.ID, Name: "Extra peanut", ExtraPrice: 50})
	require.NoError(t, err)

	options, err := svc.GetOptions(ctx, created.ID)
	require.NoError(t, err)
	require.Len(t, options, 1)
	assert.Equal(t, option.ID, options[0].ID)

	items, err := svc.GetMenuItems(ctx, MenuItemFilter{CategoryID: category.ID.String()})
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Len(t, items[0].Options, 1)

	items, err = svc.GetMenuItems(ctx, MenuItemFilter{CategoryID: "not-a-uuid"})
	require.NoError(t, err)
	assert.Empty(t, items)

	require.NoError(t, svc.DeleteOption(ctx, option.ID))
	assert.ErrorIs(t, svc.DeleteOption(ctx, option.ID), domain.ErrItemOptionNotFound)
}

func TestUploadMenuItemImageReplacesPreviousObject(t *testing.T) {
	svc, db, s3 := newService(t)
	ctx := context.Background()
	category := testdb.CreateCategory(t, db, "Mains")
	item := testdb.CreateMenuItem(t, db, category, "Rendang", 500)

	first, err := svc.UploadMenuItemImage(ctx, item.ID.String(), &multipart.FileHeader{})
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(first.ImageURL, "https://bucket.test/menu-items/"))

	second, err := svc.UploadMenuItemImage(ctx, item.ID.String(), &multipart.FileHeader{})
	require.NoError(t, err)
	assert.NotEqual(t, first.ImageURL, second.ImageURL)

	require.Len(t, s3.deleted, 1)
	assert.Equal(t, s3.uploaded[0], s3.deleted[0])

	s3.err = domain.ErrInvalidImageFormat
	_, err = svc.UploadMenuItemImage(ctx, item.ID.String(), &multipart.FileHeader{})
	assert.ErrorIs(t, err, domain.ErrInvalidImageFormat)
}
