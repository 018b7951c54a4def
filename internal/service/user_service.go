package service

import (
	"context"
	"errors"

	"github.com/njprem/ProjectBoard_APP_BackEnd/internal/domain"
	"github.com/njprem/ProjectBoard_APP_BackEnd/internal/repository/ports"
	"github.com/njprem/ProjectBoard_APP_BackEnd/internal/util"
)

var ErrInvalidCredentials = errors.New("invalid name or password")

type UserService struct {
	users ports.UserRepository
}

func NewUserService(users ports.UserRepository) *UserService {
	return &UserService{users: users}
}

func (s *UserService) Create(ctx context.Context, id int64, name, password string) (*domain.User, error) {
	if !domain.IsUserValid(id, name, password) {
		return nil, domain.NewValidationError("user requires a non-negative id, a name and a password")
	}

	hash, salt, err := util.DerivePassword(password)
	if err != nil {
		return nil, err
	}
	res, err := s.users.Insert(ctx, &domain.User{ID: id, Name: name, PasswordHash: hash, PasswordSalt: salt})
	if err := checkInsert("insert user", res, err); err != nil {
		return nil, err
	}
	return s.Get(ctx, id)
}

func (s *UserService) Get(ctx context.Context, id int64) (*domain.User, error) {
	return findOne(ctx, "find user", id, s.users.FindByID)
}

func (s *UserService) List(ctx context.Context) ([]domain.User, error) {
	users, err := s.users.List(ctx)
	if err != nil {
		return nil, storageFailure("list users", err)
	}
	return users, nil
}

func (s *UserService) Update(ctx context.Context, id int64, newName, newPassword string) (*domain.User, error) {
	if !domain.IsUserValid(id, newName, newPassword) {
		return nil, domain.NewValidationError("user update requires a non-negative id, a new name and a new password")
	}

	hash, salt, err := util.DerivePassword(newPassword)
	if err != nil {
		return nil, err
	}
	res, err := s.users.Update(ctx, id, newName, hash, salt)
	if err := checkUpdate("update user", res, err); err != nil {
		return nil, err
	}
	return s.Get(ctx, id)
}

// Delete removes the user and returns the record as it was before deletion.
func (s *UserService) Delete(ctx context.Context, id int64) (*domain.User, error) {
	existing, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	res, err := s.users.Delete(ctx, id)
	if err := checkDelete("delete user", res, err); err != nil {
		return nil, err
	}
	return existing, nil
}

func (s *UserService) Authenticate(ctx context.Context, name, password string) (*domain.User, error) {
	if name == "" || password == "" {
		return nil, ErrInvalidCredentials
	}
	user, err := s.users.FindByName(ctx, name)
	if err != nil {
		if isNotFound(err) {
			return nil, ErrInvalidCredentials
		}
		return nil, storageFailure("find user", err)
	}
	if !util.VerifyPassword(password, user.PasswordSalt, user.PasswordHash) {
		return nil, ErrInvalidCredentials
	}
	return user, nil
}
