package models

import "time"

// Employee autoriza um prestador a executar um serviço em um estabelecimento.
// A tripla (prestador, estabelecimento, serviço) é única.
type Employee struct {
	ID uint `gorm:"primaryKey" json:"id"`

	ProviderID uint     `gorm:"uniqueIndex:idx_employee_triple;not null" json:"-"`
	Provider   Provider `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"prestador"`

	EstablishmentID uint          `gorm:"uniqueIndex:idx_employee_triple;not null" json:"-"`
	Establishment   Establishment `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"estabelecimento"`

	ServiceID uint    `gorm:"uniqueIndex:idx_employee_triple;not null" json:"-"`
	Service   Service `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"servico"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
