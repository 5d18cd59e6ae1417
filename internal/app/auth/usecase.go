package auth

import (
	"context"
	"errors"
	"strings"
	"time"

	"villagrove/internal/app/ports"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

const (
	RoleUser = "USER"

	// New accounts start with enough Bells for a couple of furniture
	// pieces, matching the shop's entry prices.
	StartingPoints = 1000

	minPasswordLength = 6
)

var (
	ErrInvalidRequest     = errors.New("invalid auth request")
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrUsernameTaken      = errors.New("username is already taken")
)

type RegisterRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type UserView struct {
	Username string `json:"username"`
	Role     string `json:"role"`
}

type RegisterResponse struct {
	User UserView `json:"user"`
}

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type LoginResponse struct {
	Token string   `json:"token"`
	User  UserView `json:"user"`
}

type ProfileResponse struct {
	Username string `json:"username"`
	Role     string `json:"role"`
	Points   int    `json:"points"`
}

type RegisterUseCase struct {
	Users ports.UserRepository
	Now   func() time.Time
}

type LoginUseCase struct {
	Users  ports.UserRepository
	Tokens ports.TokenIssuer
}

type ProfileUseCase struct {
	Users ports.UserRepository
}

func (u RegisterUseCase) Execute(ctx context.Context, req RegisterRequest) (RegisterResponse, error) {
	req.Username = strings.TrimSpace(req.Username)
	if u.Users == nil || req.Username == "" || len(req.Password) < minPasswordLength {
		return RegisterResponse{}, ErrInvalidRequest
	}
	nowFn := u.Now
	if nowFn == nil {
		nowFn = time.Now
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return RegisterResponse{}, err
	}

	user := ports.UserRecord{
		ID:           uuid.NewString(),
		Username:     req.Username,
		PasswordHash: string(hash),
		Points:       StartingPoints,
		Role:         RoleUser,
		Version:      1,
		CreatedAt:    nowFn().UTC(),
	}
	if err := u.Users.Create(ctx, user); err != nil {
		if errors.Is(err, ports.ErrConflict) {
			return RegisterResponse{}, ErrUsernameTaken
		}
		return RegisterResponse{}, err
	}

	return RegisterResponse{User: UserView{Username: user.Username, Role: user.Role}}, nil
}

func (u LoginUseCase) Execute(ctx context.Context, req LoginRequest) (LoginResponse, error) {
	req.Username = strings.TrimSpace(req.Username)
	if u.Users == nil || u.Tokens == nil || req.Username == "" || req.Password == "" {
		return LoginResponse{}, ErrInvalidRequest
	}

	user, err := u.Users.GetByUsername(ctx, req.Username)
	if err != nil {
		if errors.Is(err, ports.ErrNotFound) {
			return LoginResponse{}, ErrInvalidCredentials
		}
		return LoginResponse{}, err
	}
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)) != nil {
		return LoginResponse{}, ErrInvalidCredentials
	}

	token, err := u.Tokens.Issue(user.ID, user.Username)
	if err != nil {
		return LoginResponse{}, err
	}

	return LoginResponse{
		Token: token,
		User:  UserView{Username: user.Username, Role: user.Role},
	}, nil
}

func (u ProfileUseCase) Execute(ctx context.Context, userID string) (ProfileResponse, error) {
	if u.Users == nil || userID == "" {
		return ProfileResponse{}, ErrInvalidRequest
	}
	user, err := u.Users.GetByID(ctx, userID)
	if err != nil {
		return ProfileResponse{}, err
	}
	return ProfileResponse{
		Username: user.Username,
		Role:     user.Role,
		Points:   user.Points,
	}, nil
}
