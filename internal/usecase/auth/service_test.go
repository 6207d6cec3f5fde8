package auth

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"careerhub/internal/domain/user"
)

type memoryUserRepo struct {
	byID    map[uuid.UUID]user.User
	byEmail map[string]user.User
}

func newMemoryUserRepo() *memoryUserRepo {
	return &memoryUserRepo{
		byID:    make(map[uuid.UUID]user.User),
		byEmail: make(map[string]user.User),
	}
}

func (m *memoryUserRepo) Create(_ context.Context, u user.User) error {
	m.byID[u.ID] = u
	m.byEmail[u.Email] = u
	return nil
}

func (m *memoryUserRepo) GetByID(_ context.Context, id uuid.UUID) (user.User, error) {
	if u, ok := m.byID[id]; ok {
		return u, nil
	}
	return user.User{}, user.ErrNotFound
}

func (m *memoryUserRepo) GetByEmail(_ context.Context, email string) (user.User, error) {
	if u, ok := m.byEmail[email]; ok {
		return u, nil
	}
	return user.User{}, user.ErrNotFound
}

func (m *memoryUserRepo) ExistsByEmail(_ context.Context, email string) (bool, error) {
	_, ok := m.byEmail[email]
	return ok, nil
}

func (m *memoryUserRepo) List(context.Context, int, int) ([]user.User, int, error) {
	return nil, 0, nil
}
func (m *memoryUserRepo) Update(context.Context, user.User) error { return nil }
func (m *memoryUserRepo) Delete(context.Context, uuid.UUID) error { return nil }

func TestRegister_NormalizesEmailAndHashesPassword(t *testing.T) {
	repo := newMemoryUserRepo()
	svc := NewService(repo)

	u, err := svc.Register(context.Background(), RegisterInput{
		Email:    "  Dev@Example.COM ",
		Password: "supersecret",
		FullName: "Dev One",
	})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if u.Email != "dev@example.com" {
		t.Fatalf("expected normalized email, got %q", u.Email)
	}
	if u.Role != user.RoleCandidate {
		t.Fatalf("expected default CANDIDATE role, got %q", u.Role)
	}
	if u.PasswordHash != "" {
		t.Fatalf("expected sanitized user")
	}

	stored := repo.byEmail["dev@example.com"]
	if err := bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("supersecret")); err != nil {
		t.Fatalf("stored hash does not match password: %v", err)
	}
}

func TestRegister_RejectsDuplicateEmail(t *testing.T) {
	repo := newMemoryUserRepo()
	svc := NewService(repo)

	in := RegisterInput{Email: "dev@example.com", Password: "supersecret", FullName: "Dev"}
	if _, err := svc.Register(context.Background(), in); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if _, err := svc.Register(context.Background(), in); !errors.Is(err, ErrEmailAlreadyRegistered) {
		t.Fatalf("expected ErrEmailAlreadyRegistered, got %v", err)
	}
}

func TestRegister_RejectsAdminRole(t *testing.T) {
	svc := NewService(newMemoryUserRepo())

	_, err := svc.Register(context.Background(), RegisterInput{
		Email:    "dev@example.com",
		Password: "supersecret",
		FullName: "Dev",
		Role:     user.RoleAdmin,
	})
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestLogin_WrongPassword(t *testing.T) {
	repo := newMemoryUserRepo()
	svc := NewService(repo)

	if _, err := svc.Register(context.Background(), RegisterInput{
		Email:    "dev@example.com",
		Password: "supersecret",
		FullName: "Dev",
	}); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}

	if _, err := svc.Login(context.Background(), LoginInput{
		Email:    "dev@example.com",
		Password: "wrongpassword",
	}); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}

	u, err := svc.Login(context.Background(), LoginInput{
		Email:    "dev@example.com",
		Password: "supersecret",
	})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if u.PasswordHash != "" {
		t.Fatalf("expected sanitized user on login")
	}
}
