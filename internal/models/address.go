package models

import "time"

type Address struct {
	ID uint `gorm:"primaryKey" json:"id"`

	EstablishmentID uint          `gorm:"not null" json:"-"`
	Establishment   Establishment `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"estabelecimento"`

	CEP          string `gorm:"size:9;not null" json:"cep"`
	State        string `gorm:"size:2" json:"estado"`
	City         string `gorm:"size:50" json:"cidade"`
	Neighborhood string `gorm:"size:50" json:"bairro"`
	Street       string `gorm:"size:200" json:"rua"`
	Complement   string `gorm:"size:50" json:"complemento"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
