package model

import "carrental/internal/domain/entity"

// UserModel mirrors the 'users' table. The username carries a unique
// constraint; hash and salt are stored base64-encoded.
type UserModel struct {
	ID           int64  `gorm:"primaryKey;autoIncrement"`
	Username     string `gorm:"type:varchar(100);uniqueIndex;not null"`
	Email        string `gorm:"type:varchar(255);not null"`
	PasswordHash string `gorm:"type:varchar(255);not null"`
	Salt         string `gorm:"type:varchar(255);not null"`
	Role         string `gorm:"type:varchar(32);not null"`
	IsActive     bool   `gorm:"not null;default:true"`
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "users"
}

// ToUserDomain converts a UserModel to a domain User entity.
func ToUserDomain(data *UserModel) *entity.User {
	if data == nil {
		return nil
	}

	email, err := entity.NewEmail(data.Email)
	if err != nil {
		email = entity.Email{}
	}

	return &entity.User{
		ID:           data.ID,
		Username:     data.Username,
		Email:        email,
		PasswordHash: data.PasswordHash,
		Salt:         data.Salt,
		Role:         entity.Role(data.Role),
		IsActive:     data.IsActive,
	}
}

// FromUserDomain converts a domain User entity to a UserModel.
func FromUserDomain(data *entity.User) *UserModel {
	if data == nil {
		return nil
	}

	return &UserModel{
		ID:           data.ID,
		Username:     data.Username,
		Email:        data.Email.String(),
		PasswordHash: data.PasswordHash,
		Salt:         data.Salt,
		Role:         data.Role.String(),
		IsActive:     data.IsActive,
	}
}
