package seed

import (
	"context"
	"errors"
	"spice-garden/domain"
	"spice-garden/entities"
	"spice-garden/internal/utils"
	"spice-garden/pkg/user"
	"strings"

	"github.com/gofiber/fiber/v2/log"
	"gorm.io/gorm"
)

// Admin makes sure an admin account exists for email. An existing account is
// promoted and keeps its password.
func Admin(ctx context.Context, db *gorm.DB, email string, password string) error {
	email = strings.TrimSpace(strings.ToLower(email))
	if email == "" || password == "" {
		return errors.New("ADMIN_EMAIL and ADMIN_PASSWORD must be set")
	}

	repo := user.NewUserRepository(db)
	existing, err := repo.GetUserByEmail(ctx, email)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}
	if err == nil {
		if existing.Role == domain.RoleAdmin {
			log.Infof("admin %s already present", email)
			return nil
		}
		log.Infof("promoting %s to admin", email)
		return repo.UpdateRole(ctx, existing.ID.String(), domain.RoleAdmin)
	}

	hashed, err := utils.HashPassword(password)
	if err != nil {
		return err
	}
	if err := repo.RegisterUser(ctx, &entities.User{
		Name:     "Administrator",
		Email:    email,
		Password: hashed,
		Role:     domain.RoleAdmin,
	}); err != nil {
		return err
	}

	log.Infof("admin %s created", email)
	return nil
}
