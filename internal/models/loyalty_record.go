package models

import "time"

// LoyaltyRecord conta as visitas de um cliente a um prestador.
// Level começa em 0 e é incrementado a cada novo agendamento criado.
type LoyaltyRecord struct {
	ID uint `gorm:"primaryKey" json:"id"`

	ClientName string `gorm:"size:200;uniqueIndex:idx_loyalty_unique;not null" json:"nome_cliente"`

	ProviderID uint     `gorm:"uniqueIndex:idx_loyalty_unique;not null" json:"-"`
	Provider   Provider `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"prestador"`

	Level int `gorm:"default:0;uniqueIndex:idx_loyalty_unique" json:"nivel_fidelidade"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
