package domain

import (
	"time"
)

// Category agrupa produtos. Produtos a referenciam pelo ID.
type Category struct {
	ID          string    `json:"id" validate:"required"`
	Name        string    `json:"name" validate:"required,max=50"`
	Description string    `json:"description" validate:"max=200"`
	Color       string    `json:"color" validate:"omitempty,hexcolor"` // Hex, ex: "#3B82F6"
	CreatedAt   time.Time `json:"createdAt"`
}

// CategoryInput é o payload de criação de categoria.
type CategoryInput struct {
	Name        string `json:"name" validate:"required,max=50"`
	Description string `json:"description" validate:"max=200"`
	Color       string `json:"color" validate:"required,hexcolor"`
}

// CategoryPatch permite renomear ou recolorir uma categoria sem quebrar
// a ligação com os produtos.
type CategoryPatch struct {
	Name        *string `json:"name,omitempty" validate:"omitempty,min=1,max=50"`
	Description *string `json:"description,omitempty" validate:"omitempty,max=200"`
	Color       *string `json:"color,omitempty" validate:"omitempty,hexcolor"`
}

// Apply devolve uma cópia da categoria com os campos do patch mesclados.
func (p CategoryPatch) Apply(category Category) Category {
	if p.Name != nil {
		category.Name = *p.Name
	}
	if p.Description != nil {
		category.Description = *p.Description
	}
	if p.Color != nil {
		category.Color = *p.Color
	}
	return category
}

// CategoryIndex é a tabela de lookup ID -> Categoria usada nas buscas.
type CategoryIndex map[string]Category

// IndexCategories monta o lookup a partir da lista ordenada.
func IndexCategories(categories []Category) CategoryIndex {
	index := make(CategoryIndex, len(categories))
	for _, c := range categories {
		index[c.ID] = c
	}
	return index
}

// NameOf retorna o nome da categoria ou string vazia se o ID não existir.
func (idx CategoryIndex) NameOf(id string) string {
	return idx[id].Name
}
