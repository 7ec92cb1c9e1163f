package auth

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/mmynk/restapis/internal/models"
)

// memoryUsers is a map-backed UserStorage for tests.
type memoryUsers struct {
	byName map[string]*models.User
}

func newMemoryUsers() *memoryUsers {
	return &memoryUsers{byName: make(map[string]*models.User)}
}

func (m *memoryUsers) CreateUser(ctx context.Context, user *models.User) error {
	user.ID = "id-" + user.UserName
	copied := *user
	m.byName[user.UserName] = &copied
	return nil
}

func (m *memoryUsers) GetUserByUserName(ctx context.Context, userName string) (*models.User, error) {
	return m.byName[userName], nil
}

func (m *memoryUsers) GetUserByID(ctx context.Context, id string) (*models.User, error) {
	for _, u := range m.byName {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, nil
}

func TestHashAndCheckPassword(t *testing.T) {
	hash, err := HashPassword("s3cret", bcrypt.MinCost)
	if err != nil {
		t.Fatalf("HashPassword failed: %v", err)
	}
	if hash == "s3cret" {
		t.Fatal("hash equals plaintext")
	}
	if !CheckPassword(hash, "s3cret") {
		t.Error("expected matching password to verify")
	}
	if CheckPassword(hash, "wrong") {
		t.Error("expected wrong password to fail")
	}

	other, _ := HashPassword("s3cret", bcrypt.MinCost)
	if other == hash {
		t.Error("expected salted hashes to differ")
	}
}

func TestPasswordAuthenticator(t *testing.T) {
	ctx := context.Background()
	users := newMemoryUsers()
	a := NewPasswordAuthenticator(users, bcrypt.MinCost)

	user, err := a.Register(ctx, "jdoe", "j@example.com", "hunter2")
	if err != nil {
		t.Fatalf("Register failed: %v", err)
	}
	if user.Password == "hunter2" || !strings.HasPrefix(user.Password, "$2") {
		t.Errorf("password not stored as bcrypt hash: %q", user.Password)
	}

	t.Run("duplicate user name", func(t *testing.T) {
		_, err := a.Register(ctx, "jdoe", "other@example.com", "pw")
		if !errors.Is(err, ErrUsernameInUse) {
			t.Errorf("got %v, want ErrUsernameInUse", err)
		}
		if len(users.byName) != 1 {
			t.Errorf("got %d users, want 1", len(users.byName))
		}
	})

	t.Run("correct password", func(t *testing.T) {
		got, err := a.Authenticate(ctx, "jdoe", "hunter2")
		if err != nil {
			t.Fatalf("Authenticate failed: %v", err)
		}
		if got.ID != user.ID {
			t.Errorf("got user %s, want %s", got.ID, user.ID)
		}
	})

	t.Run("wrong password and unknown user are indistinguishable", func(t *testing.T) {
		_, wrongPw := a.Authenticate(ctx, "jdoe", "nope")
		_, unknown := a.Authenticate(ctx, "ghost", "hunter2")
		if !errors.Is(wrongPw, ErrInvalidCredentials) || !errors.Is(unknown, ErrInvalidCredentials) {
			t.Fatalf("got (%v, %v), want ErrInvalidCredentials for both", wrongPw, unknown)
		}
		if wrongPw.Error() != unknown.Error() {
			t.Errorf("messages differ: %q vs %q", wrongPw, unknown)
		}
	})

	t.Run("credential rules", func(t *testing.T) {
		if err := a.ValidateCredential(""); !errors.Is(err, ErrEmptyPassword) {
			t.Errorf("empty: got %v", err)
		}
		if err := a.ValidateCredential(strings.Repeat("x", 73)); !errors.Is(err, ErrPasswordTooLong) {
			t.Errorf("too long: got %v", err)
		}
	})
}

func TestNewPasswordAuthenticatorCostFallback(t *testing.T) {
	a := NewPasswordAuthenticator(newMemoryUsers(), 99)
	if a.cost != DefaultCost {
		t.Errorf("got cost %d, want %d", a.cost, DefaultCost)
	}
}

func TestJWTManager(t *testing.T) {
	m := NewJWTManager("test-secret", "restapis", time.Hour)
	user := &models.User{ID: "u1", UserName: "jdoe"}

	token, err := m.Generate(user)
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}

	claims, err := m.Validate(token)
	if err != nil {
		t.Fatalf("Validate failed: %v", err)
	}
	if claims.UserID != "u1" || claims.UserName != "jdoe" {
		t.Errorf("unexpected claims: %+v", claims)
	}

	tests := []struct {
		name    string
		manager *JWTManager
		token   string
	}{
		{"wrong secret", NewJWTManager("other", "restapis", time.Hour), token},
		{"wrong issuer", NewJWTManager("test-secret", "someone-else", time.Hour), token},
		{"garbage", m, "not-a-token"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := tt.manager.Validate(tt.token); !errors.Is(err, ErrInvalidToken) {
				t.Errorf("got %v, want ErrInvalidToken", err)
			}
		})
	}

	t.Run("expired", func(t *testing.T) {
		expired := NewJWTManager("test-secret", "restapis", -time.Minute)
		tok, err := expired.Generate(user)
		if err != nil {
			t.Fatalf("Generate failed: %v", err)
		}
		if _, err := m.Validate(tok); !errors.Is(err, ErrInvalidToken) {
			t.Errorf("got %v, want ErrInvalidToken", err)
		}
	})
}

func TestRandomSecret(t *testing.T) {
	a, err := RandomSecret()
	if err != nil {
		t.Fatalf("RandomSecret failed: %v", err)
	}
	b, _ := RandomSecret()
	if len(a) != 64 || a == b {
		t.Errorf("unexpected secrets %q %q", a, b)
	}
}
