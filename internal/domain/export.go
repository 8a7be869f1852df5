package domain

import "time"

// ExportDocument é o documento JSON baixado pelo usuário e aceito de volta
// pelo import. Checksum é opcional na entrada; quando presente é verificado.
type ExportDocument struct {
	Products   []Product       `json:"products" validate:"required,dive"`
	Categories []Category      `json:"categories" validate:"required,dive"`
	Movements  []StockMovement `json:"movements" validate:"required,dive"`
	ExportedAt time.Time       `json:"exportedAt"`
	Checksum   string          `json:"checksum,omitempty"`
}
