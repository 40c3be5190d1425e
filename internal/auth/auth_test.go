package auth

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/jsisencao/portal-juridico/internal/db"
)

// mockStore is a manual stub implementation of Store
type mockStore struct {
	userByEmailFunc func(ctx context.Context, email string) (*db.User, error)
	userByIDFunc    func(ctx context.Context, id uuid.UUID) (*db.User, error)
	createUserFunc  func(ctx context.Context, user *db.User) error
	hasRoleFunc     func(ctx context.Context, userID uuid.UUID, role string) (bool, error)
	assignRoleFunc  func(ctx context.Context, userID uuid.UUID, role string) error
}

func (m *mockStore) UserByEmail(ctx context.Context, email string) (*db.User, error) {
	if m.userByEmailFunc != nil {
		return m.userByEmailFunc(ctx, email)
	}
	return nil, nil
}

func (m *mockStore) UserByID(ctx context.Context, id uuid.UUID) (*db.User, error) {
	if m.userByIDFunc != nil {
		return m.userByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockStore) CreateUser(ctx context.Context, user *db.User) error {
	if m.createUserFunc != nil {
		return m.createUserFunc(ctx, user)
	}
	return nil
}

func (m *mockStore) HasRole(ctx context.Context, userID uuid.UUID, role string) (bool, error) {
	if m.hasRoleFunc != nil {
		return m.hasRoleFunc(ctx, userID, role)
	}
	return false, nil
}

func (m *mockStore) AssignRole(ctx context.Context, userID uuid.UUID, role string) error {
	if m.assignRoleFunc != nil {
		return m.assignRoleFunc(ctx, userID, role)
	}
	return nil
}

func storeWithUser(t *testing.T, email, password string) (*mockStore, uuid.UUID) {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)

	userID := uuid.New()
	store := &mockStore{
		userByEmailFunc: func(_ context.Context, e string) (*db.User, error) {
			if e != email {
				return nil, nil
			}
			return &db.User{ID: userID, Email: email, PasswordHash: string(hash)}, nil
		},
	}

	return store, userID
}

func TestSignIn_TokenRoundTrip(t *testing.T) {
	ctx := context.Background()
	store, userID := storeWithUser(t, "admin@portal.ao", "segredo123")
	service := NewService(store, "test-secret", time.Hour)

	token, err := service.SignIn(ctx, "admin@portal.ao", "segredo123")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	got, err := service.VerifyToken(token)
	require.NoError(t, err)
	assert.Equal(t, userID, got)
}

func TestSignIn_BadCredentials(t *testing.T) {
	ctx := context.Background()
	store, _ := storeWithUser(t, "admin@portal.ao", "segredo123")
	service := NewService(store, "test-secret", time.Hour)

	_, err := service.SignIn(ctx, "admin@portal.ao", "senha-errada")
	require.ErrorIs(t, err, ErrInvalidCredentials)

	// unknown email produces the same error as a wrong password
	_, err = service.SignIn(ctx, "quem@portal.ao", "segredo123")
	require.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestVerifyToken_Expired(t *testing.T) {
	ctx := context.Background()
	store, _ := storeWithUser(t, "admin@portal.ao", "segredo123")
	service := NewService(store, "test-secret", time.Hour)

	issued := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)
	service.now = func() time.Time { return issued }

	token, err := service.SignIn(ctx, "admin@portal.ao", "segredo123")
	require.NoError(t, err)

	service.now = func() time.Time { return issued.Add(2 * time.Hour) }
	_, err = service.VerifyToken(token)
	require.ErrorIs(t, err, ErrInvalidToken)
}

func TestVerifyToken_WrongSecret(t *testing.T) {
	ctx := context.Background()
	store, _ := storeWithUser(t, "admin@portal.ao", "segredo123")
	issuer := NewService(store, "secret-a", time.Hour)
	verifier := NewService(store, "secret-b", time.Hour)

	token, err := issuer.SignIn(ctx, "admin@portal.ao", "segredo123")
	require.NoError(t, err)

	_, err = verifier.VerifyToken(token)
	require.ErrorIs(t, err, ErrInvalidToken)
}

func TestVerifyToken_Garbage(t *testing.T) {
	service := NewService(&mockStore{}, "test-secret", time.Hour)

	_, err := service.VerifyToken("not-a-token")
	require.ErrorIs(t, err, ErrInvalidToken)
}

func TestIsAdmin(t *testing.T) {
	ctx := context.Background()
	adminID := uuid.New()
	store := &mockStore{
		hasRoleFunc: func(_ context.Context, userID uuid.UUID, role string) (bool, error) {
			return userID == adminID && role == RoleAdmin, nil
		},
	}
	service := NewService(store, "test-secret", time.Hour)

	isAdmin, err := service.IsAdmin(ctx, adminID)
	require.NoError(t, err)
	assert.True(t, isAdmin)

	isAdmin, err = service.IsAdmin(ctx, uuid.New())
	require.NoError(t, err)
	assert.False(t, isAdmin)
}

func TestEnsureAdmin_CreatesUserAndRole(t *testing.T) {
	ctx := context.Background()

	var createdUser *db.User
	var assignedRole string
	store := &mockStore{
		createUserFunc: func(_ context.Context, user *db.User) error {
			createdUser = user
			return nil
		},
		assignRoleFunc: func(_ context.Context, _ uuid.UUID, role string) error {
			assignedRole = role
			return nil
		},
	}
	service := NewService(store, "test-secret", time.Hour)

	user, created, err := service.EnsureAdmin(ctx, "novo@portal.ao", "segredo123")
	require.NoError(t, err)
	assert.True(t, created)
	require.NotNil(t, createdUser)
	assert.Equal(t, "novo@portal.ao", createdUser.Email)
	assert.Equal(t, RoleAdmin, assignedRole)

	err = bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("segredo123"))
	assert.NoError(t, err, "stored hash must match the password")
}

func TestEnsureAdmin_ExistingUserOnlyGetsRole(t *testing.T) {
	ctx := context.Background()
	store, userID := storeWithUser(t, "admin@portal.ao", "segredo123")

	created := false
	store.createUserFunc = func(context.Context, *db.User) error {
		created = true
		return nil
	}
	var assignedTo uuid.UUID
	store.assignRoleFunc = func(_ context.Context, id uuid.UUID, _ string) error {
		assignedTo = id
		return nil
	}

	service := NewService(store, "test-secret", time.Hour)
	user, wasCreated, err := service.EnsureAdmin(ctx, "admin@portal.ao", "ignorada")
	require.NoError(t, err)
	assert.False(t, wasCreated)
	assert.False(t, created, "existing user must not be recreated")
	assert.Equal(t, userID, user.ID)
	assert.Equal(t, userID, assignedTo)
}
