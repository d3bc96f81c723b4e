package repositories

import (
	"propulse-backend/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type UserRepository interface {
	Create(user *models.User) error
	GetByEmail(email string) (*models.User, error)
	GetByID(id uuid.UUID) (*models.User, error)
	EnsureRole(name string) (*models.Role, error)
	AddToRole(user *models.User, role *models.Role) error
}

type userRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) Create(user *models.User) error {
	return r.db.Create(user).Error
}

func (r *userRepository) GetByEmail(email string) (*models.User, error) {
	var user models.User
	err := r.db.Preload("Roles").Where("email = ?", email).First(&user).Error
	return &user, err
}

func (r *userRepository) GetByID(id uuid.UUID) (*models.User, error) {
	var user models.User
	err := r.db.Preload("Roles").First(&user, "id = ?", id).Error
	return &user, err
}

func (r *userRepository) EnsureRole(name string) (*models.Role, error) {
	var role models.Role
	err := r.db.Where(models.Role{Name: name}).FirstOrCreate(&role).Error
	return &role, err
}

func (r *userRepository) AddToRole(user *models.User, role *models.Role) error {
	return r.db.Model(user).Association("Roles").Append(role)
}
