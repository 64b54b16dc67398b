package user

import (
	"context"
	"testing"

	"Resep-HPP/domain"
	"Resep-HPP/entities"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type mockUserRepository struct {
	users map[string]*entities.User
}

func (m *mockUserRepository) RegisterUser(ctx context.Context, user *entities.User) error {
	user.ID = uuid.New()
	m.users[user.Email] = user
	return nil
}

func (m *mockUserRepository) GetUserByEmail(ctx context.Context, email string) (*entities.User, error) {
	u, ok := m.users[email]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return u, nil
}

func (m *mockUserRepository) GetUserByID(ctx context.Context, id string) (*entities.User, error) {
	for _, u := range m.users {
		if u.ID.String() == id {
			return u, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockUserRepository) CheckUserByEmail(ctx context.Context, email string) (bool, error) {
	_, ok := m.users[email]
	return ok, nil
}

func (m *mockUserRepository) CountUsers(ctx context.Context) (int64, error) {
	return int64(len(m.users)), nil
}

type stubJWTService struct{}

func (stubJWTService) GenerateTokenUser(userId string, role string) (string, error) {
	return "token-" + userId + "-" + role, nil
}

func (stubJWTService) ValidateTokenUser(token string) (*jwt.Token, error) {
	return nil, domain.ErrTokenInvalid
}

func (stubJWTService) GetUserIDByToken(token string) (string, string, error) {
	return "", "", domain.ErrTokenInvalid
}

func TestRegister_FirstUserIsOwner(t *testing.T) {
	repo := &mockUserRepository{users: map[string]*entities.User{}}
	service := NewUserService(repo, stubJWTService{})

	owner, err := service.Register(context.Background(), domain.RegisterRequest{Name: "Sari", Email: "Sari@Dapur.id ", Password: "rahasia123"})
	require.NoError(t, err)
	assert.Equal(t, domain.RoleOwner, owner.Role)
	assert.Equal(t, "sari@dapur.id", owner.Email)
	assert.NotEqual(t, "rahasia123", repo.users["sari@dapur.id"].Password)

	staff, err := service.Register(context.Background(), domain.RegisterRequest{Name: "Budi", Email: "budi@dapur.id", Password: "rahasia123"})
	require.NoError(t, err)
	assert.Equal(t, domain.RoleStaff, staff.Role)

	_, err = service.Register(context.Background(), domain.RegisterRequest{Name: "Sari", Email: "sari@dapur.id", Password: "lainnya123"})
	assert.ErrorIs(t, err, domain.ErrEmailAlreadyExists)
}

func TestLogin(t *testing.T) {
	repo := &mockUserRepository{users: map[string]*entities.User{}}
	service := NewUserService(repo, stubJWTService{})

	registered, err := service.Register(context.Background(), domain.RegisterRequest{Name: "Sari", Email: "sari@dapur.id", Password: "rahasia123"})
	require.NoError(t, err)

	res, err := service.Login(context.Background(), domain.LoginRequest{Email: "sari@dapur.id", Password: "rahasia123"})
	require.NoError(t, err)
	assert.Equal(t, "token-"+registered.ID+"-owner", res.Token)

	_, err = service.Login(context.Background(), domain.LoginRequest{Email: "sari@dapur.id", Password: "salah"})
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)

	_, err = service.Login(context.Background(), domain.LoginRequest{Email: "nobody@dapur.id", Password: "rahasia123"})
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
}

func TestGetMe(t *testing.T) {
	repo := &mockUserRepository{users: map[string]*entities.User{}}
	service := NewUserService(repo, stubJWTService{})

	registered, err := service.Register(context.Background(), domain.RegisterRequest{Name: "Sari", Email: "sari@dapur.id", Password: "rahasia123"})
	require.NoError(t, err)

	me, err := service.GetMe(context.Background(), registered.ID)
	require.NoError(t, err)
	assert.Equal(t, "Sari", me.Name)

	_, err = service.GetMe(context.Background(), uuid.NewString())
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}
