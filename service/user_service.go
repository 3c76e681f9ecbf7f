package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/mazikuben/construction-be/repository"
	"github.com/mazikuben/construction-be/types"
	"github.com/mazikuben/construction-be/utils"
)

type UserService interface {
	Register(ctx context.Context, req *types.RegisterRequest) (*types.User, error)
	CreateStaff(ctx context.Context, req *types.RegisterRequest) (*types.User, error)
	Login(ctx context.Context, username, password string) (string, error)
	GetUser(ctx context.Context, id string) (*types.User, error)
	GetUserByUsername(ctx context.Context, username string) (*types.User, error)
	ListUsers(ctx context.Context) ([]*types.User, error)
	UpdateUser(ctx context.Context, id string, req *types.UpdateUserRequest) (*types.User, error)
	DeleteUser(ctx context.Context, callerID, id string) error
}

type userService struct {
	repo   repository.UserRepo
	tokens *utils.TokenManager
}

func NewUserService(repo repository.UserRepo, tokens *utils.TokenManager) UserService {
	return &userService{
		repo:   repo,
		tokens: tokens,
	}
}

func (s *userService) Register(ctx context.Context, req *types.RegisterRequest) (*types.User, error) {
	return s.createUser(ctx, req, false)
}

// CreateStaff is registration restricted to manager/worker roles; client
// accounts only come in through open registration.
func (s *userService) CreateStaff(ctx context.Context, req *types.RegisterRequest) (*types.User, error) {
	return s.createUser(ctx, req, true)
}

func (s *userService) createUser(ctx context.Context, req *types.RegisterRequest, staffOnly bool) (*types.User, error) {
	if err := validateCredentials(req.Username, req.Password); err != nil {
		return nil, err
	}
	if !types.ValidRole(req.Role) {
		return nil, fmt.Errorf("%w: unknown role %q", types.ErrValidation, req.Role)
	}
	if staffOnly && req.Role == types.USER_ROLE_CLIENT {
		return nil, fmt.Errorf("%w: role must be manager or worker for staff accounts", types.ErrValidation)
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))

	if _, err := s.repo.GetUserByUsername(ctx, req.Username); err == nil {
		return nil, types.ErrDuplicateUsername
	} else if !errors.Is(err, types.ErrNotFound) {
		return nil, err
	}
	if _, err := s.repo.GetUserByEmail(ctx, email); err == nil {
		return nil, types.ErrDuplicateEmail
	} else if !errors.Is(err, types.ErrNotFound) {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &types.User{
		Username:       req.Username,
		Email:          email,
		Role:           req.Role,
		HashedPassword: string(hash),
		CreatedAt:      time.Now().Unix(),
	}
	if _, err := s.repo.CreateUser(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *userService) Login(ctx context.Context, username, password string) (string, error) {
	user, err := s.repo.GetUserByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, types.ErrNotFound) {
			return "", types.ErrInvalidCredentials
		}
		return "", err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.HashedPassword), []byte(password)); err != nil {
		return "", types.ErrInvalidCredentials
	}
	return s.tokens.Generate(user)
}

func (s *userService) GetUser(ctx context.Context, id string) (*types.User, error) {
	return s.repo.GetUser(ctx, id)
}

func (s *userService) GetUserByUsername(ctx context.Context, username string) (*types.User, error) {
	return s.repo.GetUserByUsername(ctx, username)
}

func (s *userService) ListUsers(ctx context.Context) ([]*types.User, error) {
	return s.repo.ListUsers(ctx)
}

func (s *userService) UpdateUser(ctx context.Context, id string, req *types.UpdateUserRequest) (*types.User, error) {
	user, err := s.repo.GetUser(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Email != "" {
		user.Email = strings.ToLower(strings.TrimSpace(req.Email))
	}
	if req.Role != "" {
		if !types.ValidRole(req.Role) {
			return nil, fmt.Errorf("%w: unknown role %q", types.ErrValidation, req.Role)
		}
		user.Role = req.Role
	}
	if req.Password != "" {
		if len(req.Password) < 6 {
			return nil, fmt.Errorf("%w: password must be at least 6 characters", types.ErrValidation)
		}
		hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}
		user.HashedPassword = string(hash)
	}

	if err := s.repo.UpdateUser(ctx, id, user); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *userService) DeleteUser(ctx context.Context, callerID, id string) error {
	if callerID == id {
		return fmt.Errorf("%w: cannot delete your own account", types.ErrInvalidOperation)
	}
	if _, err := s.repo.GetUser(ctx, id); err != nil {
		return err
	}
	return s.repo.DeleteUser(ctx, id)
}

func validateCredentials(username, password string) error {
	if !isAlphanumeric(username) {
		return fmt.Errorf("%w: username must be alphanumeric", types.ErrValidation)
	}
	if len(password) < 6 {
		return fmt.Errorf("%w: password must be at least 6 characters", types.ErrValidation)
	}
	return nil
}

func isAlphanumeric(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if (r < 'a' || r > 'z') && (r < 'A' || r > 'Z') && (r < '0' || r > '9') {
			return false
		}
	}
	return true
}
