package testdb

import (
	"spice-garden/domain"
	"spice-garden/entities"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func CreateUser(t *testing.T, db *gorm.DB, email string, role string) *entities.User {
	t.Helper()
	user := &entities.User{Name: "Test " + email, Email: email, Password: "x", Role: role}
	require.NoError(t, db.Create(user).Error)
	return user
}

func CreateCustomer(t *testing.T, db *gorm.DB, email string) *entities.User {
	return CreateUser(t, db, email, domain.RoleUser)
}

func CreateCategory(t *testing.T, db *gorm.DB, name string) *entities.Category {
	t.Helper()
	category := &entities.Category{Name: name}
	require.NoError(t, db.Create(category).Error)
	return category
}

func CreateMenuItem(t *testing.T, db *gorm.DB, category *entities.Category, name string, price float64) *entities.MenuItem {
	t.Helper()
	item := &entities.MenuItem{CategoryID: category.ID, Name: name, BasePrice: price, IsAvailable: true}
	require.NoError(t, db.Create(item).Error)
	return item
}
