// Package model contains the GORM persistence models mirroring the database
// tables, plus the mappers between models and domain entities. Models never
// leak outside the persistence layer.
package model

import "carrental/internal/domain/entity"

// CarModel mirrors the 'cars' table. SQLite assigns the rowid-backed primary
// key on insert.
type CarModel struct {
	ID       int64  `gorm:"primaryKey;autoIncrement"`
	Brand    string `gorm:"type:varchar(100);not null"`
	Model    string `gorm:"type:varchar(100);not null"`
	Year     int    `gorm:"not null"`
	VIN      string `gorm:"column:vin;type:varchar(64);not null"`
	IsActive bool   `gorm:"not null;default:true"`
}

// TableName explicitly sets the table name for GORM.
func (CarModel) TableName() string {
	return "cars"
}

// ToCarDomain converts a CarModel to a domain Car entity.
func ToCarDomain(data *CarModel) *entity.Car {
	if data == nil {
		return nil
	}

	return &entity.Car{
		ID:       data.ID,
		Brand:    data.Brand,
		Model:    data.Model,
		Year:     data.Year,
		VIN:      data.VIN,
		IsActive: data.IsActive,
	}
}

// FromCarDomain converts a domain Car entity to a CarModel for persistence.
func FromCarDomain(data *entity.Car) *CarModel {
	if data == nil {
		return nil
	}

	return &CarModel{
		ID:       data.ID,
		Brand:    data.Brand,
		Model:    data.Model,
		Year:     data.Year,
		VIN:      data.VIN,
		IsActive: data.IsActive,
	}
}
