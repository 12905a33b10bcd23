package user

import (
	"context"
	"sort"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/characterforge/characterforge/internal/entities"
	apperr "github.com/characterforge/characterforge/internal/errors"
	"github.com/characterforge/characterforge/internal/repositories/users"
	"github.com/characterforge/characterforge/internal/uuid"
)

const minPasswordLen = 6

type service struct {
	repository  users.Repository
	idGenerator uuid.Generator
}

// ServiceConfig holds configuration for the user service
type ServiceConfig struct {
	Repository  users.Repository
	IDGenerator uuid.Generator
}

// NewService creates a new user service
func NewService(cfg *ServiceConfig) Service {
	if cfg == nil {
		panic("user service config cannot be nil")
	}
	if cfg.Repository == nil {
		panic("user service requires a repository")
	}
	if cfg.IDGenerator == nil {
		panic("user service requires an ID generator")
	}
	return &service{
		repository:  cfg.Repository,
		idGenerator: cfg.IDGenerator,
	}
}

func hashPassword(password string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", apperr.Wrap(err, "failed to hash password")
	}
	return string(hashed), nil
}

func verifyPassword(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}

func validateCredentials(username, password string) error {
	if username == "" || password == "" {
		return apperr.InvalidArgument("username and password are required")
	}
	if len(password) < minPasswordLen {
		return apperr.InvalidArgumentf("password must be at least %d characters", minPasswordLen)
	}
	return nil
}

func (s *service) FirstLaunch(ctx context.Context) (bool, error) {
	count, err := s.repository.CountByRole(ctx, entities.RoleAdmin)
	if err != nil {
		return false, apperr.Wrap(err, "failed to count admins")
	}
	return count == 0, nil
}

func (s *service) SetupAdmin(ctx context.Context, username, password, displayName string) (*entities.User, error) {
	firstLaunch, err := s.FirstLaunch(ctx)
	if err != nil {
		return nil, err
	}
	if !firstLaunch {
		return nil, apperr.PermissionDenied("an admin account already exists")
	}

	return s.CreateUser(ctx, &CreateUserInput{
		Username:    username,
		Password:    password,
		Role:        entities.RoleAdmin,
		DisplayName: displayName,
	})
}

func (s *service) Authenticate(ctx context.Context, username, password string, roleHint entities.Role) (*entities.User, error) {
	if username == "" || password == "" {
		return nil, apperr.InvalidArgument("username and password are required")
	}

	user, err := s.repository.GetByUsername(ctx, username)
	if err != nil {
		if apperr.IsNotFound(err) {
			return nil, apperr.Unauthenticated("invalid credentials")
		}
		return nil, err
	}
	if !verifyPassword(password, user.PasswordHash) {
		return nil, apperr.Unauthenticated("invalid credentials")
	}

	if roleHint != "" && roleHint != user.Role {
		return nil, apperr.PermissionDenied("this account is not registered as " + string(roleHint))
	}

	return user, nil
}

func (s *service) CreateUser(ctx context.Context, input *CreateUserInput) (*entities.User, error) {
	if input == nil {
		return nil, apperr.InvalidArgument("input cannot be nil")
	}

	username := strings.TrimSpace(input.Username)
	password := strings.TrimSpace(input.Password)
	if err := validateCredentials(username, password); err != nil {
		return nil, err
	}

	role := input.Role
	if role == "" {
		role = entities.RolePlayer
	}
	if !role.Valid() {
		return nil, apperr.InvalidArgumentf("invalid role '%s'", role)
	}

	displayName := strings.TrimSpace(input.DisplayName)
	if displayName == "" {
		displayName = username
	}

	hash, err := hashPassword(password)
	if err != nil {
		return nil, err
	}

	user := &entities.User{
		ID:           s.idGenerator.New(),
		Username:     username,
		PasswordHash: hash,
		Role:         role,
		DisplayName:  displayName,
	}
	if err := s.repository.Create(ctx, user); err != nil {
		return nil, err
	}

	return user, nil
}

func (s *service) SetRole(ctx context.Context, userID string, role entities.Role) (*entities.User, error) {
	if !role.Valid() {
		return nil, apperr.InvalidArgumentf("invalid role '%s'", role)
	}

	user, err := s.repository.Get(ctx, userID)
	if err != nil {
		return nil, err
	}

	if user.Role == entities.RoleAdmin && role != entities.RoleAdmin {
		if err := s.guardLastAdmin(ctx, "cannot demote the last admin"); err != nil {
			return nil, err
		}
	}

	user.Role = role
	if err := s.repository.Update(ctx, user); err != nil {
		return nil, err
	}

	return user, nil
}

func (s *service) ResetPassword(ctx context.Context, userID, password string) error {
	password = strings.TrimSpace(password)
	if len(password) < minPasswordLen {
		return apperr.InvalidArgumentf("password must be at least %d characters", minPasswordLen)
	}

	user, err := s.repository.Get(ctx, userID)
	if err != nil {
		return err
	}

	hash, err := hashPassword(password)
	if err != nil {
		return err
	}

	user.PasswordHash = hash
	return s.repository.Update(ctx, user)
}

func (s *service) DeleteUser(ctx context.Context, actorID, userID string) error {
	if actorID == userID {
		return apperr.PermissionDenied("you cannot delete yourself")
	}

	user, err := s.repository.Get(ctx, userID)
	if err != nil {
		return err
	}

	if user.Role == entities.RoleAdmin {
		if err := s.guardLastAdmin(ctx, "cannot delete the last admin"); err != nil {
			return err
		}
	}

	return s.repository.Delete(ctx, userID)
}

func (s *service) guardLastAdmin(ctx context.Context, message string) error {
	count, err := s.repository.CountByRole(ctx, entities.RoleAdmin)
	if err != nil {
		return apperr.Wrap(err, "failed to count admins")
	}
	if count <= 1 {
		return apperr.PermissionDenied(message)
	}
	return nil
}

func (s *service) Get(ctx context.Context, id string) (*entities.User, error) {
	return s.repository.Get(ctx, id)
}

func (s *service) List(ctx context.Context) ([]*entities.User, error) {
	list, err := s.repository.List(ctx)
	if err != nil {
		return nil, err
	}

	sort.Slice(list, func(i, j int) bool {
		if list[i].Role != list[j].Role {
			return list[i].Role < list[j].Role
		}
		return list[i].Username < list[j].Username
	})

	return list, nil
}
