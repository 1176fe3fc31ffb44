package auth

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"accountease/internal/core/apperror"
	"accountease/internal/core/id"
)

type fakeUserRepo struct {
	byEmail map[string]*User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{byEmail: map[string]*User{}}
}

func (f *fakeUserRepo) Create(ctx context.Context, user *User) error {
	if _, ok := f.byEmail[user.Email]; ok {
		return apperror.NewDuplicate("user", "email", user.Email)
	}
	f.byEmail[user.Email] = user
	return nil
}

func (f *fakeUserRepo) GetByID(ctx context.Context, userID id.ID) (*User, error) {
	for _, u := range f.byEmail {
		if u.ID == userID {
			return u, nil
		}
	}
	return nil, apperror.NewNotFound("user", userID)
}

func (f *fakeUserRepo) GetByEmail(ctx context.Context, email string) (*User, error) {
	u, ok := f.byEmail[email]
	if !ok {
		return nil, apperror.NewNotFound("user", email)
	}
	return u, nil
}

func (f *fakeUserRepo) Update(ctx context.Context, user *User) error {
	f.byEmail[user.Email] = user
	return nil
}

func (f *fakeUserRepo) Exists(ctx context.Context, email string) (bool, error) {
	_, ok := f.byEmail[email]
	return ok, nil
}

func newTestService() (*Service, *fakeUserRepo) {
	repo := newFakeUserRepo()
	jwtSvc := NewJWTService(DefaultJWTConfig("test-secret"))
	return NewService(repo, jwtSvc, DefaultServiceConfig()), repo
}

func TestRegister_HashesPasswordAndLowercasesEmail(t *testing.T) {
	svc, _ := newTestService()

	user, err := svc.Register(context.Background(), RegisterRequest{
		Email:        "Owner@Example.COM",
		Password:     "correct-horse",
		BusinessName: "Corner Shop",
	})
	require.NoError(t, err)

	assert.Equal(t, "owner@example.com", user.Email)
	assert.NotEqual(t, "correct-horse", user.PasswordHash)
	assert.True(t, user.IsActive)
}

func TestRegister_RejectsShortPassword(t *testing.T) {
	svc, repo := newTestService()

	_, err := svc.Register(context.Background(), RegisterRequest{
		Email:    "owner@example.com",
		Password: "short",
	})
	assert.True(t, apperror.IsInvalidArgument(err))
	assert.Empty(t, repo.byEmail)
}

func TestRegister_DuplicateEmail(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	_, err := svc.Register(ctx, RegisterRequest{Email: "owner@example.com", Password: "correct-horse"})
	require.NoError(t, err)

	_, err = svc.Register(ctx, RegisterRequest{Email: "OWNER@example.com", Password: "correct-horse"})
	appErr, ok := apperror.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, apperror.CodeDuplicate, appErr.Code)
}

func TestLogin_RoundTrip(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	registered, err := svc.Register(ctx, RegisterRequest{Email: "owner@example.com", Password: "correct-horse"})
	require.NoError(t, err)

	session, user, err := svc.Login(ctx, Credentials{Email: "owner@example.com", Password: "correct-horse"})
	require.NoError(t, err)

	assert.Equal(t, registered.ID, user.ID)
	assert.Equal(t, "Bearer", session.TokenType)
	assert.True(t, session.ExpiresAt.After(time.Now()))
	assert.NotNil(t, user.LastLoginAt)

	// The issued token resolves back to the same account.
	uc, err := NewJWTService(DefaultJWTConfig("test-secret")).ValidateToken(session.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, registered.ID.String(), uc.UserID)
	assert.Equal(t, "owner@example.com", uc.Email)
}

func TestLogin_WrongPassword(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	_, err := svc.Register(ctx, RegisterRequest{Email: "owner@example.com", Password: "correct-horse"})
	require.NoError(t, err)

	_, _, err = svc.Login(ctx, Credentials{Email: "owner@example.com", Password: "wrong"})
	assert.True(t, apperror.IsNotAuthenticated(err))
}

func TestLogin_UnknownEmailUsesSameError(t *testing.T) {
	svc, _ := newTestService()

	_, _, err := svc.Login(context.Background(), Credentials{Email: "nobody@example.com", Password: "whatever"})
	appErr, ok := apperror.AsAppError(err)
	require.True(t, ok)
	// Unknown account and wrong password are indistinguishable to the caller.
	assert.Equal(t, "invalid credentials", appErr.Message)
}

func TestLogin_DisabledAccount(t *testing.T) {
	svc, repo := newTestService()
	ctx := context.Background()

	user, err := svc.Register(ctx, RegisterRequest{Email: "owner@example.com", Password: "correct-horse"})
	require.NoError(t, err)
	user.IsActive = false
	require.NoError(t, repo.Update(ctx, user))

	_, _, err = svc.Login(ctx, Credentials{Email: "owner@example.com", Password: "correct-horse"})
	assert.True(t, apperror.IsNotAuthenticated(err))
}

func TestValidateToken_RejectsWrongSecret(t *testing.T) {
	token, _, err := NewJWTService(DefaultJWTConfig("secret-a")).GenerateAccessToken("user-1", "a@b.c")
	require.NoError(t, err)

	_, err = NewJWTService(DefaultJWTConfig("secret-b")).ValidateToken(token)
	assert.Error(t, err)
}
