package services

import (
	"propulse-backend/identity"
	"propulse-backend/models"

	"github.com/google/uuid"
)

// AuthService delegates registration and sign-in to the identity manager.
// It performs no hashing, token issuance, or lockout handling itself.
type AuthService interface {
	Register(req models.RegisterRequest) (*models.User, []identity.Error)
	Login(req models.LoginRequest) (*models.AuthResponse, error)
	GetUserByID(id uuid.UUID) (*models.User, error)
}

type authService struct {
	manager *identity.Manager
}

func NewAuthService(manager *identity.Manager) AuthService {
	return &authService{manager: manager}
}

func (s *authService) Register(req models.RegisterRequest) (*models.User, []identity.Error) {
	return s.manager.CreateUser(req.Email, req.Password)
}

func (s *authService) Login(req models.LoginRequest) (*models.AuthResponse, error) {
	token, user, err := s.manager.SignIn(req.Email, req.Password)
	if err != nil {
		return nil, err
	}

	return &models.AuthResponse{
		Token: token,
		User:  *user,
	}, nil
}

func (s *authService) GetUserByID(id uuid.UUID) (*models.User, error) {
	return s.manager.GetUser(id)
}
