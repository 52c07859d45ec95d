package service

import (
	"context"
	"testing"

	"rescueos-be/internal/dto"
	"rescueos-be/internal/entity"
	"rescueos-be/internal/pkg/apperr"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testJWTSecret = "test-secret"

func newAuthService(store *fakeStore) IAuthService {
	factory := newFakeFactory(store)
	authCtx := NewAuthContextService(factory, factory, nopLogger{})
	return NewAuthService(factory, authCtx, testJWTSecret, nopLogger{})
}

func TestSignupAndLoginRoundTrip(t *testing.T) {
	store := newFakeStore()
	svc := newAuthService(store)

	res, err := svc.Signup(context.Background(), &dto.SignupRequest{
		Email:       "  Casey@Example.COM ",
		Password:    "hunter2hunter2",
		DisplayName: "Casey",
	})
	require.NoError(t, err)
	assert.Equal(t, "casey@example.com", res.Email)
	assert.NotEmpty(t, res.Token)

	// The stored hash is not the plaintext.
	require.Len(t, store.profiles, 1)
	assert.NotEqual(t, "hunter2hunter2", store.profiles[0].PasswordHash)

	login, err := svc.Login(context.Background(), &dto.LoginRequest{
		Email:    "casey@example.com",
		Password: "hunter2hunter2",
	})
	require.NoError(t, err)
	assert.Equal(t, res.UserId, login.UserId)
}

func TestSignupRejectsDuplicateEmail(t *testing.T) {
	store := newFakeStore()
	svc := newAuthService(store)

	_, err := svc.Signup(context.Background(), &dto.SignupRequest{
		Email: "taken@example.com", Password: "longenough1", DisplayName: "First",
	})
	require.NoError(t, err)

	_, err = svc.Signup(context.Background(), &dto.SignupRequest{
		Email: "Taken@Example.com", Password: "longenough2", DisplayName: "Second",
	})
	assert.True(t, apperr.IsKind(err, apperr.KindValidation))
	assert.Len(t, store.profiles, 1)
}

func TestLoginWrongPassword(t *testing.T) {
	store := newFakeStore()
	svc := newAuthService(store)

	_, err := svc.Signup(context.Background(), &dto.SignupRequest{
		Email: "casey@example.com", Password: "correct-horse", DisplayName: "Casey",
	})
	require.NoError(t, err)

	_, err = svc.Login(context.Background(), &dto.LoginRequest{
		Email: "casey@example.com", Password: "battery-staple",
	})
	require.Error(t, err)
	assert.Equal(t, "invalid credentials", err.Error())

	// Unknown account reads the same as a bad password.
	_, err = svc.Login(context.Background(), &dto.LoginRequest{
		Email: "nobody@example.com", Password: "whatever123",
	})
	require.Error(t, err)
	assert.Equal(t, "invalid credentials", err.Error())
}

func TestIssuedTokenCarriesClaims(t *testing.T) {
	store := newFakeStore()
	svc := newAuthService(store)

	res, err := svc.Signup(context.Background(), &dto.SignupRequest{
		Email: "claims@example.com", Password: "longenough1", DisplayName: "Claims",
	})
	require.NoError(t, err)

	parsed, err := jwt.Parse(res.Token, func(token *jwt.Token) (interface{}, error) {
		return []byte(testJWTSecret), nil
	})
	require.NoError(t, err)
	claims, ok := parsed.Claims.(jwt.MapClaims)
	require.True(t, ok)
	assert.Equal(t, res.UserId.String(), claims["user_id"])
	assert.Equal(t, "claims@example.com", claims["email"])
	assert.NotNil(t, claims["exp"])
}

func TestSessionIncludesRescueContext(t *testing.T) {
	store := newFakeStore()
	rescue, _ := seedRescueWithAnimal(store)
	svc := newAuthService(store)

	res, err := svc.Signup(context.Background(), &dto.SignupRequest{
		Email: "member@example.com", Password: "longenough1", DisplayName: "Member",
	})
	require.NoError(t, err)

	// Before joining a rescue the session has no tenant block.
	session, err := svc.Session(context.Background(), res.UserId)
	require.NoError(t, err)
	assert.Nil(t, session.Rescue)
	assert.Empty(t, session.Role)

	store.memberships = append(store.memberships, &entity.Membership{
		RescueId: rescue.Id, UserId: res.UserId, Role: entity.RoleAdmin,
	})
	session, err = svc.Session(context.Background(), res.UserId)
	require.NoError(t, err)
	require.NotNil(t, session.Rescue)
	assert.Equal(t, rescue.Slug, session.Rescue.Slug)
	assert.Equal(t, "admin", session.Role)
}

func TestResolveAuthContext(t *testing.T) {
	store := newFakeStore()
	rescue, _ := seedRescueWithAnimal(store)
	factory := newFakeFactory(store)
	svc := NewAuthContextService(factory, factory, nopLogger{})

	// No membership resolves to an empty context, not an error.
	authCtx, err := svc.Resolve(context.Background(), uuid.New())
	require.NoError(t, err)
	assert.False(t, authCtx.HasRescue())

	userId := uuid.New()
	store.memberships = append(store.memberships, &entity.Membership{
		RescueId: rescue.Id, UserId: userId, Role: entity.RoleStaff,
	})
	authCtx, err = svc.Resolve(context.Background(), userId)
	require.NoError(t, err)
	require.True(t, authCtx.HasRescue())
	assert.Equal(t, rescue.Id, authCtx.Rescue.Id)
	assert.Equal(t, entity.RoleStaff, authCtx.Role)
}
