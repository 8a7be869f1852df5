package domain

import "time"

// MovementType classifica a direção de uma movimentação de estoque.
type MovementType string

const (
	MovementIn         MovementType = "in"
	MovementOut        MovementType = "out"
	MovementAdjustment MovementType = "adjustment"
)

// Valid informa se o tipo pertence ao conjunto fechado de valores aceitos.
func (t MovementType) Valid() bool {
	switch t {
	case MovementIn, MovementOut, MovementAdjustment:
		return true
	}
	return false
}

// SystemActor é o autor registrado nas movimentações geradas pelo próprio Store.
const SystemActor = "System"

// StockMovement é uma entrada do log de movimentações (append-only).
// ProductID é uma referência fraca: a existência do produto não é verificada.
type StockMovement struct {
	ID        string       `json:"id" validate:"required"`
	ProductID string       `json:"productId" validate:"required"`
	Type      MovementType `json:"type" validate:"required,oneof=in out adjustment"`
	Quantity  int          `json:"quantity" validate:"gte=0"`
	Reason    string       `json:"reason"`
	Notes     string       `json:"notes,omitempty"`
	CreatedAt time.Time    `json:"createdAt"`
	CreatedBy string       `json:"createdBy"`
}

// MovementInput é o payload para registrar uma movimentação manual.
type MovementInput struct {
	ProductID string       `json:"productId" validate:"required"`
	Type      MovementType `json:"type" validate:"required,oneof=in out adjustment"`
	Quantity  int          `json:"quantity" validate:"gte=0"`
	Reason    string       `json:"reason" validate:"required,max=200"`
	Notes     string       `json:"notes,omitempty" validate:"max=500"`
	CreatedBy string       `json:"createdBy" validate:"max=100"`
}

// StockUpdateRequest é o payload esperado para definir o estoque absoluto de um produto.
type StockUpdateRequest struct {
	Quantity *int   `json:"quantity" validate:"required,gte=0"`
	Reason   string `json:"reason" validate:"required,max=200"`
}
