package mysql

import (
	"context"
	"errors"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/wyfcoding/groceryplatform/internal/user/domain"
)

// CustomerModel is the persistence shape of a customer account.
type CustomerModel struct {
	gorm.Model
	Username     string `gorm:"column:username;type:varchar(100);uniqueIndex;not null"`
	PasswordHash string `gorm:"column:password_hash;type:varchar(255);not null"`
	Email        string `gorm:"column:email;type:varchar(255)"`
}

func (CustomerModel) TableName() string { return "customers" }

type credentialRepository struct{ db *gorm.DB }

func NewCredentialRepository(db *gorm.DB) domain.CredentialRepository {
	return &credentialRepository{db: db}
}

func (r *credentialRepository) UserExists(ctx context.Context, username string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&CustomerModel{}).Where("username = ?", username).Count(&count).Error
	return count > 0, err
}

func (r *credentialRepository) Authenticate(ctx context.Context, username, password string) (*domain.Customer, error) {
	var m CustomerModel
	err := r.db.WithContext(ctx).Where("username = ?", username).First(&m).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, domain.ErrInvalidCredentials
	}
	if err != nil {
		return nil, err
	}
	if bcrypt.CompareHashAndPassword([]byte(m.PasswordHash), []byte(password)) != nil {
		return nil, domain.ErrInvalidCredentials
	}
	return &domain.Customer{Username: m.Username, Email: m.Email}, nil
}

func (r *credentialRepository) Register(ctx context.Context, username, password, email string) error {
	exists, err := r.UserExists(ctx, username)
	if err != nil {
		return err
	}
	if exists {
		return domain.ErrUsernameTaken
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	m := CustomerModel{Username: username, PasswordHash: string(hash), Email: email}
	return r.db.WithContext(ctx).Create(&m).Error
}
