package identity

import (
	"errors"
	"fmt"
	"unicode"

	"propulse-backend/models"
	"propulse-backend/repositories"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gopkg.in/go-playground/validator.v9"
	"gorm.io/gorm"
)

const minPasswordLength = 6

// Manager owns credential policy, password hashing, and session token
// issuance. Services delegate to it and implement none of that themselves.
type Manager struct {
	users    repositories.UserRepository
	tokens   *TokenManager
	validate *validator.Validate
}

func NewManager(users repositories.UserRepository, tokens *TokenManager) *Manager {
	return &Manager{
		users:    users,
		tokens:   tokens,
		validate: validator.New(),
	}
}

// CreateUser registers a new identity with the email doubling as the
// username. On failure it returns the full list of policy violations, not
// just the first one. Success means exactly one new user row.
func (m *Manager) CreateUser(email, password string) (*models.User, []Error) {
	var identityErrors []Error

	if err := m.validate.Var(email, "required,email"); err != nil {
		identityErrors = append(identityErrors, Error{
			Code:        CodeInvalidEmail,
			Description: fmt.Sprintf("Email '%s' is invalid.", email),
		})
	}

	identityErrors = append(identityErrors, validatePassword(password)...)

	if _, err := m.users.GetByEmail(email); err == nil {
		identityErrors = append(identityErrors, Error{
			Code:        CodeDuplicateEmail,
			Description: fmt.Sprintf("Email '%s' is already taken.", email),
		})
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		identityErrors = append(identityErrors, Error{
			Code:        "StoreFailure",
			Description: "Could not check existing users.",
		})
	}

	if len(identityErrors) > 0 {
		return nil, identityErrors
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, []Error{{Code: "HashFailure", Description: "Could not hash password."}}
	}

	user := &models.User{
		Username:     email,
		Email:        email,
		PasswordHash: string(hash),
	}

	if err := m.users.Create(user); err != nil {
		return nil, []Error{{Code: "StoreFailure", Description: "Could not persist user."}}
	}

	if role, err := m.users.EnsureRole(models.RoleContributor); err == nil {
		if err := m.users.AddToRole(user, role); err == nil {
			user.Roles = append(user.Roles, *role)
		}
	}

	return user, nil
}

// SignIn verifies credentials and issues a session token. Remember-me and
// lockout are both disabled. Every failure path returns ErrInvalidLogin so
// the response never reveals whether the account exists.
func (m *Manager) SignIn(email, password string) (string, *models.User, error) {
	user, err := m.users.GetByEmail(email)
	if err != nil {
		return "", nil, ErrInvalidLogin
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return "", nil, ErrInvalidLogin
	}

	token, err := m.tokens.Issue(user)
	if err != nil {
		return "", nil, err
	}

	return token, user, nil
}

func (m *Manager) GetUser(id uuid.UUID) (*models.User, error) {
	return m.users.GetByID(id)
}

// validatePassword enforces the default credential policy: minimum length
// plus at least one digit, lowercase, uppercase, and non-alphanumeric rune.
func validatePassword(password string) []Error {
	var identityErrors []Error

	if len(password) < minPasswordLength {
		identityErrors = append(identityErrors, Error{
			Code:        CodePasswordTooShort,
			Description: fmt.Sprintf("Passwords must be at least %d characters.", minPasswordLength),
		})
	}

	var hasDigit, hasLower, hasUpper, hasNonAlnum bool
	for _, r := range password {
		switch {
		case unicode.IsDigit(r):
			hasDigit = true
		case unicode.IsLower(r):
			hasLower = true
		case unicode.IsUpper(r):
			hasUpper = true
		default:
			hasNonAlnum = true
		}
	}

	if !hasDigit {
		identityErrors = append(identityErrors, Error{
			Code:        CodePasswordRequiresDigit,
			Description: "Passwords must have at least one digit ('0'-'9').",
		})
	}
	if !hasLower {
		identityErrors = append(identityErrors, Error{
			Code:        CodePasswordRequiresLower,
			Description: "Passwords must have at least one lowercase ('a'-'z').",
		})
	}
	if !hasUpper {
		identityErrors = append(identityErrors, Error{
			Code:        CodePasswordRequiresUpper,
			Description: "Passwords must have at least one uppercase ('A'-'Z').",
		})
	}
	if !hasNonAlnum {
		identityErrors = append(identityErrors, Error{
			Code:        CodePasswordRequiresNonAlnum,
			Description: "Passwords must have at least one non alphanumeric character.",
		})
	}

	return identityErrors
}
