package domain

// Cada dimensão de filtro é uma variante fechada: o conjunto de valores
// aceitos é fixo e verificado por Valid().

// StatusFilter seleciona produtos pelo status.
type StatusFilter string

const (
	StatusFilterAll      StatusFilter = "all"
	StatusFilterActive   StatusFilter = "active"
	StatusFilterInactive StatusFilter = "inactive"
)

func (f StatusFilter) Valid() bool {
	switch f {
	case StatusFilterAll, StatusFilterActive, StatusFilterInactive:
		return true
	}
	return false
}

// StockLevel é o bucket de nível de estoque de um produto.
type StockLevel string

const (
	StockLevelAll        StockLevel = "all"
	StockLevelInStock    StockLevel = "in-stock"
	StockLevelLowStock   StockLevel = "low-stock"
	StockLevelOutOfStock StockLevel = "out-of-stock"
)

func (l StockLevel) Valid() bool {
	switch l {
	case StockLevelAll, StockLevelInStock, StockLevelLowStock, StockLevelOutOfStock:
		return true
	}
	return false
}

// LevelOf classifica o produto em exatamente um bucket:
// out-of-stock se stock == 0, low-stock se 0 < stock <= minStock,
// in-stock se stock > minStock.
func LevelOf(p Product) StockLevel {
	switch {
	case p.Stock == 0:
		return StockLevelOutOfStock
	case p.Stock <= p.MinStock:
		return StockLevelLowStock
	default:
		return StockLevelInStock
	}
}

// SortKey é o campo usado na ordenação.
type SortKey string

const (
	SortByName      SortKey = "name"
	SortByPrice     SortKey = "price"
	SortByStock     SortKey = "stock"
	SortByCreatedAt SortKey = "createdAt"
)

func (k SortKey) Valid() bool {
	switch k {
	case SortByName, SortByPrice, SortByStock, SortByCreatedAt:
		return true
	}
	return false
}

// SortOrder é a direção da ordenação.
type SortOrder string

const (
	SortAsc  SortOrder = "asc"
	SortDesc SortOrder = "desc"
)

func (o SortOrder) Valid() bool {
	return o == SortAsc || o == SortDesc
}

// CategorySelector é "all" ou o ID de uma categoria.
type CategorySelector string

// AllCategories não impõe restrição de categoria.
const AllCategories CategorySelector = "all"

// OnlyCategory restringe a busca a uma categoria.
func OnlyCategory(id string) CategorySelector {
	return CategorySelector(id)
}

// IsAll informa se o seletor não restringe categoria.
func (c CategorySelector) IsAll() bool {
	return c == AllCategories || c == ""
}

// Matches informa se o ID de categoria do produto satisfaz o seletor.
func (c CategorySelector) Matches(categoryID string) bool {
	return c.IsAll() || string(c) == categoryID
}

// SearchFilters é o estado transitório de busca, filtro e ordenação.
// Pertence exclusivamente ao Store e não é persistido.
type SearchFilters struct {
	Query      string           `json:"query"`
	Category   CategorySelector `json:"category"`
	Status     StatusFilter     `json:"status"`
	StockLevel StockLevel       `json:"stockLevel"`
	SortBy     SortKey          `json:"sortBy"`
	SortOrder  SortOrder        `json:"sortOrder"`
}

// DefaultFilters retorna os filtros iniciais (e após limpar).
func DefaultFilters() SearchFilters {
	return SearchFilters{
		Query:      "",
		Category:   AllCategories,
		Status:     StatusFilterAll,
		StockLevel: StockLevelAll,
		SortBy:     SortByName,
		SortOrder:  SortAsc,
	}
}

// FiltersPatch é o merge raso aplicado por SetFilters.
type FiltersPatch struct {
	Query      *string           `json:"query,omitempty"`
	Category   *CategorySelector `json:"category,omitempty"`
	Status     *StatusFilter     `json:"status,omitempty"`
	StockLevel *StockLevel       `json:"stockLevel,omitempty"`
	SortBy     *SortKey          `json:"sortBy,omitempty"`
	SortOrder  *SortOrder        `json:"sortOrder,omitempty"`
}

// Invalid retorna o nome do primeiro campo com valor fora do conjunto aceito,
// ou string vazia se o patch for válido.
func (p FiltersPatch) Invalid() string {
	switch {
	case p.Status != nil && !p.Status.Valid():
		return "status"
	case p.StockLevel != nil && !p.StockLevel.Valid():
		return "stockLevel"
	case p.SortBy != nil && !p.SortBy.Valid():
		return "sortBy"
	case p.SortOrder != nil && !p.SortOrder.Valid():
		return "sortOrder"
	}
	return ""
}

// Apply mescla o patch sobre os filtros atuais.
func (p FiltersPatch) Apply(f SearchFilters) SearchFilters {
	if p.Query != nil {
		f.Query = *p.Query
	}
	if p.Category != nil {
		f.Category = *p.Category
		if f.Category == "" {
			f.Category = AllCategories
		}
	}
	if p.Status != nil {
		f.Status = *p.Status
	}
	if p.StockLevel != nil {
		f.StockLevel = *p.StockLevel
	}
	if p.SortBy != nil {
		f.SortBy = *p.SortBy
	}
	if p.SortOrder != nil {
		f.SortOrder = *p.SortOrder
	}
	return f
}
