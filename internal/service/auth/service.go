package auth

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/dougladias/vida-plena-api/internal/model"
	"github.com/dougladias/vida-plena-api/internal/repository"
	"github.com/dougladias/vida-plena-api/pkg/auth"
	apperrors "github.com/dougladias/vida-plena-api/pkg/errors"
)

const bcryptCost = 10

type AuthService interface {
	Register(ctx context.Context, req *model.CreateUserRequest) (*model.User, error)
	Login(ctx context.Context, email, password string) (*model.SessionResponse, error)
	GetUserDetail(ctx context.Context, id uuid.UUID) (*model.UserDetail, error)
}

type Service struct {
	userRepo repository.UserRepository
	jwtSvc   auth.JWTService
}

func NewService(userRepo repository.UserRepository, jwtSvc auth.JWTService) *Service {
	return &Service{userRepo: userRepo, jwtSvc: jwtSvc}
}

func (s *Service) Register(ctx context.Context, req *model.CreateUserRequest) (*model.User, error) {
	fields := []struct {
		name  string
		value string
	}{
		{"name", req.Name},
		{"email", req.Email},
		{"password", req.Password},
	}
	for _, f := range fields {
		if strings.TrimSpace(f.value) == "" {
			return nil, apperrors.Validation(f.name)
		}
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcryptCost)
	if err != nil {
		return nil, apperrors.Internal(err)
	}

	role := req.Role
	if role == "" {
		role = model.UserRoleSecretary
	}

	user := &model.User{
		Base:         model.Base{ID: uuid.New()},
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: string(hashed),
		Role:         role,
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		if errors.Is(err, repository.ErrDuplicateUniqueField) {
			return nil, apperrors.ValidationMsg("E-mail já cadastrado")
		}
		return nil, apperrors.Internal(err)
	}

	return user, nil
}

func (s *Service) Login(ctx context.Context, email, password string) (*model.SessionResponse, error) {
	if strings.TrimSpace(email) == "" {
		return nil, apperrors.Validation("email")
	}
	if strings.TrimSpace(password) == "" {
		return nil, apperrors.Validation("password")
	}

	user, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		// Same message whether the email is unknown or the password wrong.
		return nil, apperrors.ValidationMsg("E-mail ou senha incorretos")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, apperrors.ValidationMsg("E-mail ou senha incorretos")
	}

	token, err := s.jwtSvc.GenerateToken(user.ID, user.Email)
	if err != nil {
		return nil, apperrors.Internal(err)
	}

	return &model.SessionResponse{
		Token: token,
		User: &model.UserDetail{
			ID:    user.ID.String(),
			Name:  user.Name,
			Email: user.Email,
		},
	}, nil
}

func (s *Service) GetUserDetail(ctx context.Context, id uuid.UUID) (*model.UserDetail, error) {
	user, err := s.userRepo.Get(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apperrors.NotFound("Usuário", err)
		}
		return nil, apperrors.Internal(err)
	}

	return &model.UserDetail{
		ID:    user.ID.String(),
		Name:  user.Name,
		Email: user.Email,
	}, nil
}
