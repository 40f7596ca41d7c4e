package testutil

import (
	"testing"

	"github.com/mvachon/userd/internal/domain"
	"github.com/mvachon/userd/internal/hashing"
	"gorm.io/gorm"
)

// UserBuilder creates test users with sensible defaults
type UserBuilder struct {
	name     string
	email    string
	password string
}

func NewUserBuilder() *UserBuilder {
	return &UserBuilder{
		name:     "testuser",
		email:    "testuser@example.com",
		password: "testpassword",
	}
}

func (b *UserBuilder) WithName(name string) *UserBuilder {
	b.name = name
	return b
}

func (b *UserBuilder) WithEmail(email string) *UserBuilder {
	b.email = email
	return b
}

func (b *UserBuilder) WithPassword(password string) *UserBuilder {
	b.password = password
	return b
}

// Build persists the user and returns it along with the raw password.
func (b *UserBuilder) Build(t *testing.T, db *gorm.DB) (*domain.User, string) {
	t.Helper()

	hash, err := hashing.Hash([]byte(b.password))
	if err != nil {
		t.Fatalf("failed to hash fixture password: %v", err)
	}

	user := &domain.User{
		Name:     b.name,
		Email:    b.email,
		Password: hash,
	}
	if err := db.Create(user).Error; err != nil {
		t.Fatalf("failed to create fixture user: %v", err)
	}

	return user, b.password
}
