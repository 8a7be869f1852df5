package domain

import (
	"time"
)

// ProductStatus indica se o produto está disponível no catálogo.
type ProductStatus string

const (
	StatusActive   ProductStatus = "active"
	StatusInactive ProductStatus = "inactive"
)

// Valid informa se o status pertence ao conjunto fechado de valores aceitos.
func (s ProductStatus) Valid() bool {
	return s == StatusActive || s == StatusInactive
}

// Product representa o item principal do inventário (a Entidade).
// A categoria é referenciada por ID (chave estrangeira), não pelo nome.
type Product struct {
	ID          string        `json:"id" validate:"required"`
	Name        string        `json:"name" validate:"required,max=100"`
	Description string        `json:"description" validate:"max=500"`
	CategoryID  string        `json:"categoryId" validate:"required"`
	Price       float64       `json:"price" validate:"gte=0"`
	Stock       int           `json:"stock" validate:"gte=0"`
	MinStock    int           `json:"minStock" validate:"gte=0"`
	SKU         string        `json:"sku" validate:"max=50"` // Stock Keeping Unit (código do produto, único por convenção)
	Barcode     string        `json:"barcode,omitempty"`
	Image       string        `json:"image,omitempty"`
	Status      ProductStatus `json:"status" validate:"required,oneof=active inactive"`
	CreatedAt   time.Time     `json:"createdAt"`
	UpdatedAt   time.Time     `json:"updatedAt"`
}

// Value retorna o valor total em estoque do produto (preço x quantidade).
func (p Product) Value() float64 {
	return p.Price * float64(p.Stock)
}

// ProductInput é o payload de criação de produto.
// ID e timestamps são atribuídos pelo Store.
type ProductInput struct {
	Name        string        `json:"name" validate:"required,max=100"`
	Description string        `json:"description" validate:"required,max=500"`
	CategoryID  string        `json:"categoryId" validate:"required"`
	Price       float64       `json:"price" validate:"gte=0"`
	Stock       int           `json:"stock" validate:"gte=0"`
	MinStock    int           `json:"minStock" validate:"gte=0"`
	SKU         string        `json:"sku" validate:"max=50"`
	Barcode     string        `json:"barcode,omitempty" validate:"max=64"`
	Image       string        `json:"image,omitempty"`
	Status      ProductStatus `json:"status" validate:"required,oneof=active inactive"`
}

// ProductPatch carrega uma atualização parcial. Campos nil não são alterados.
type ProductPatch struct {
	Name        *string        `json:"name,omitempty" validate:"omitempty,min=1,max=100"`
	Description *string        `json:"description,omitempty" validate:"omitempty,min=1,max=500"`
	CategoryID  *string        `json:"categoryId,omitempty" validate:"omitempty,min=1"`
	Price       *float64       `json:"price,omitempty" validate:"omitempty,gte=0"`
	Stock       *int           `json:"stock,omitempty" validate:"omitempty,gte=0"`
	MinStock    *int           `json:"minStock,omitempty" validate:"omitempty,gte=0"`
	SKU         *string        `json:"sku,omitempty" validate:"omitempty,min=1,max=50"`
	Barcode     *string        `json:"barcode,omitempty" validate:"omitempty,max=64"`
	Image       *string        `json:"image,omitempty"`
	Status      *ProductStatus `json:"status,omitempty" validate:"omitempty,oneof=active inactive"`
}

// Apply devolve uma cópia do produto com os campos do patch mesclados.
// UpdatedAt não é tocado aqui; é responsabilidade de quem aplica.
func (p ProductPatch) Apply(product Product) Product {
	if p.Name != nil {
		product.Name = *p.Name
	}
	if p.Description != nil {
		product.Description = *p.Description
	}
	if p.CategoryID != nil {
		product.CategoryID = *p.CategoryID
	}
	if p.Price != nil {
		product.Price = *p.Price
	}
	if p.Stock != nil {
		product.Stock = *p.Stock
	}
	if p.MinStock != nil {
		product.MinStock = *p.MinStock
	}
	if p.SKU != nil {
		product.SKU = *p.SKU
	}
	if p.Barcode != nil {
		product.Barcode = *p.Barcode
	}
	if p.Image != nil {
		product.Image = *p.Image
	}
	if p.Status != nil {
		product.Status = *p.Status
	}
	return product
}
