package models

import "time"

type Appointment struct {
	ID uint `gorm:"primaryKey" json:"id"`

	ProviderID uint     `gorm:"not null" json:"-"`
	Provider   Provider `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"prestador"`

	EstablishmentID uint          `gorm:"not null" json:"-"`
	Establishment   Establishment `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"estabelecimento"`

	ServiceID uint    `gorm:"not null" json:"-"`
	Service   Service `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"servico"`

	StartsAt time.Time `gorm:"not null" json:"data_horario"`

	ClientName  string `gorm:"size:200;not null" json:"nome_cliente"`
	ClientEmail string `gorm:"size:254;not null" json:"email_cliente"`
	ClientPhone string `gorm:"size:20;not null" json:"telefone_cliente"`

	State string `gorm:"size:4;default:'UNCO'" json:"states"`

	// Canceled é o soft delete: a linha permanece, mas sai de todo
	// cálculo de disponibilidade e conflito. Nunca volta a false.
	Canceled bool `gorm:"default:false" json:"cancelado"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
