package users

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Role string

const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
)

// MockPassword is the only accepted password. Real identity is out of
// scope; this mirrors the demo's mocked login.
const MockPassword = "password"

var (
	ErrNotFound    = errors.New("user not found")
	ErrBadPassword = errors.New("wrong password")
)

type User struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	FullName  string    `json:"full_name"`
	Role      Role      `json:"role"`
	Verified  bool      `json:"is_verified"`
	CreatedAt time.Time `json:"created_at"`
}

type Repo struct{ DB *pgxpool.Pool }

// Register creates an unverified account. Verification itself is simulated,
// so the flag only flips for the seeded admin.
func (r *Repo) Register(ctx context.Context, fullName, email string, role Role) (User, error) {
	if role != RoleAdmin {
		role = RoleUser
	}
	u := User{
		ID:       uuid.NewString(),
		Email:    email,
		FullName: fullName,
		Role:     role,
	}
	err := r.DB.QueryRow(ctx, `
		INSERT INTO users(id, email, full_name, role, verified)
		VALUES ($1,$2,$3,$4,false)
		RETURNING created_at`,
		u.ID, u.Email, u.FullName, u.Role).Scan(&u.CreatedAt)
	if err != nil {
		return User{}, err
	}
	return u, nil
}

func (r *Repo) FindByEmail(ctx context.Context, email string) (User, error) {
	var u User
	err := r.DB.QueryRow(ctx, `SELECT id, email, full_name, role, verified, created_at
                             FROM users WHERE email=$1`, email).
		Scan(&u.ID, &u.Email, &u.FullName, &u.Role, &u.Verified, &u.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return User{}, ErrNotFound
	}
	if err != nil {
		return User{}, err
	}
	return u, nil
}

// Login checks the mocked credential and returns the account.
func (r *Repo) Login(ctx context.Context, email, password string) (User, error) {
	u, err := r.FindByEmail(ctx, email)
	if err != nil {
		return User{}, err
	}
	if password != MockPassword {
		return User{}, ErrBadPassword
	}
	return u, nil
}

// SeedAdmin inserts the default administrator account on first boot.
func (r *Repo) SeedAdmin(ctx context.Context) error {
	_, err := r.DB.Exec(ctx, `
		INSERT INTO users(id, email, full_name, role, verified)
		VALUES ('admin-1', 'admin@pizzacraft.com', 'System Admin', $1, true)
		ON CONFLICT (id) DO NOTHING`, RoleAdmin)
	return err
}
