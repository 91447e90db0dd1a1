package model

import "carrental/internal/domain/entity"

// CustomerModel mirrors the 'customers' table.
type CustomerModel struct {
	ID       int64  `gorm:"primaryKey;autoIncrement"`
	Name     string `gorm:"type:varchar(100);not null"`
	Email    string `gorm:"type:varchar(255);not null"`
	IsActive bool   `gorm:"not null;default:true"`
}

// TableName explicitly sets the table name for GORM.
func (CustomerModel) TableName() string {
	return "customers"
}

// ToCustomerDomain converts a CustomerModel to a domain Customer entity.
// Stored emails were validated on the way in; one that fails revalidation
// (manual database edits) rehydrates as the zero value instead of dropping
// the row.
func ToCustomerDomain(data *CustomerModel) *entity.Customer {
	if data == nil {
		return nil
	}

	email, err := entity.NewEmail(data.Email)
	if err != nil {
		email = entity.Email{}
	}

	return &entity.Customer{
		ID:       data.ID,
		Name:     data.Name,
		Email:    email,
		IsActive: data.IsActive,
	}
}

// FromCustomerDomain converts a domain Customer entity to a CustomerModel.
func FromCustomerDomain(data *entity.Customer) *CustomerModel {
	if data == nil {
		return nil
	}

	return &CustomerModel{
		ID:       data.ID,
		Name:     data.Name,
		Email:    data.Email.String(),
		IsActive: data.IsActive,
	}
}
