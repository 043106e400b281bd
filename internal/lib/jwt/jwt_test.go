package jwt

import (
	"testing"
	"time"

	"atelier/internal/domain/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret"

func testUser(role models.Role) models.User {
	return models.User{
		ID:       uuid.New(),
		Username: "marta",
		Role:     role,
	}
}

func TestNewTokenAndVerifyRole(t *testing.T) {
	token, err := NewToken(testUser(models.RoleAdmin), testSecret, time.Hour)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	role, err := VerifyRole(token, testSecret)
	require.NoError(t, err)
	assert.Equal(t, models.RoleAdmin, role)
}

func TestVerifyRole_WrongSecret(t *testing.T) {
	token, err := NewToken(testUser(models.RoleSuperAdmin), testSecret, time.Hour)
	require.NoError(t, err)

	role, err := VerifyRole(token, "other-secret")
	assert.ErrorIs(t, err, ErrInvalidToken)
	assert.Equal(t, models.RoleNone, role)
}

func TestVerifyRole_Expired(t *testing.T) {
	token, err := NewToken(testUser(models.RoleAgent), testSecret, -time.Minute)
	require.NoError(t, err)

	role, err := VerifyRole(token, testSecret)
	assert.ErrorIs(t, err, ErrInvalidToken)
	assert.Equal(t, models.RoleNone, role)
}

func TestVerifyRole_Garbage(t *testing.T) {
	role, err := VerifyRole("not-a-token", testSecret)
	assert.ErrorIs(t, err, ErrInvalidToken)
	assert.Equal(t, models.RoleNone, role)
}

func TestVerifyRole_UnknownRoleClaim(t *testing.T) {
	// A token signed with a role outside the known set must not grant
	// any access.
	token, err := NewToken(models.User{ID: uuid.New(), Username: "x", Role: models.Role("owner")}, testSecret, time.Hour)
	require.NoError(t, err)

	role, err := VerifyRole(token, testSecret)
	require.NoError(t, err)
	assert.Equal(t, models.RoleNone, role)
}
