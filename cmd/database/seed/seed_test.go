package seed

import (
	"context"
	"spice-garden/domain"
	"spice-garden/internal/testdb"
	"spice-garden/internal/utils"
	"spice-garden/pkg/user"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAdminCreatesAccount(t *testing.T) {
	db := testdb.New(t)
	ctx := context.Background()

	require.NoError(t, Admin(ctx, db, " Chef@Spice.test ", "secret123"))

	u, err := user.NewUserRepository(db).GetUserByEmail(ctx, "chef@spice.test")
	require.NoError(t, err)
	assert.Equal(t, domain.RoleAdmin, u.Role)
	assert.True(t, utils.CheckPassword(u.Password, "secret123"))

	// second run is a no-op
	require.NoError(t, Admin(ctx, db, "chef@spice.test", "other"))
	u, err = user.NewUserRepository(db).GetUserByEmail(ctx, "chef@spice.test")
	require.NoError(t, err)
	assert.True(t, utils.CheckPassword(u.Password, "secret123"))
}

func TestAdminPromotesExistingUser(t *testing.T) {
	db := testdb.New(t)
	ctx := context.Background()
	existing := testdb.CreateCustomer(t, db, "owner@spice.test")

	require.NoError(t, Admin(ctx, db, "owner@spice.test", "ignored"))

	u, err := user.NewUserRepository(db).GetUserByID(ctx, existing.ID.String())
	require.NoError(t, err)
	assert.Equal(t, domain.RoleAdmin, u.Role)
}

func TestAdminRequiresCredentials(t *testing.T) {
	db := testdb.New(t)
	assert.Error(t, Admin(context.Background(), db, "", "x"))
	assert.Error(t, Admin(context.Background(), db, "a@b.c", ""))
}
