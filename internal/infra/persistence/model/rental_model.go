package model

import (
	"time"

	"carrental/internal/domain/entity"
)

// RentalModel mirrors the 'rentals' table. ReturnDate is NULL while the
// rental is active; the partial unique index ux_rentals_active_car (created
// in the sqlite package's migration) enforces at most one open rental per
// car at the storage level.
type RentalModel struct {
	ID         int64      `gorm:"primaryKey;autoIncrement"`
	CustomerID int64      `gorm:"not null;index"`
	CarID      int64      `gorm:"not null;index"`
	RentDate   time.Time  `gorm:"not null;index"`
	ReturnDate *time.Time `gorm:""`
}

// TableName explicitly sets the table name for GORM.
func (RentalModel) TableName() string {
	return "rentals"
}

// ToRentalDomain converts a RentalModel to a domain Rental entity.
func ToRentalDomain(data *RentalModel) *entity.Rental {
	if data == nil {
		return nil
	}

	return &entity.Rental{
		ID:         data.ID,
		CustomerID: data.CustomerID,
		CarID:      data.CarID,
		RentDate:   data.RentDate,
		ReturnDate: data.ReturnDate,
	}
}

// FromRentalDomain converts a domain Rental entity to a RentalModel.
func FromRentalDomain(data *entity.Rental) *RentalModel {
	if data == nil {
		return nil
	}

	return &RentalModel{
		ID:         data.ID,
		CustomerID: data.CustomerID,
		CarID:      data.CarID,
		RentDate:   data.RentDate,
		ReturnDate: data.ReturnDate,
	}
}
