package domain

// InventoryState é a raiz agregada mantida pelo Store.
type InventoryState struct {
	Products        []Product       `json:"products"`
	Categories      []Category      `json:"categories"`
	Movements       []StockMovement `json:"movements"`
	Filters         SearchFilters   `json:"filters"`
	SelectedProduct string          `json:"selectedProduct,omitempty"` // referência fraca por ID
	IsLoading       bool            `json:"isLoading"`
	Error           string          `json:"error,omitempty"`
}

// InitialState é o estado antes do primeiro LoadData.
func InitialState() InventoryState {
	return InventoryState{
		Products:   []Product{},
		Categories: []Category{},
		Movements:  []StockMovement{},
		Filters:    DefaultFilters(),
	}
}

// Clone devolve uma cópia profunda das coleções, para que leitores
// não possam mutar o estado do Store.
func (s InventoryState) Clone() InventoryState {
	out := s
	out.Products = append([]Product(nil), s.Products...)
	out.Categories = append([]Category(nil), s.Categories...)
	out.Movements = append([]StockMovement(nil), s.Movements...)
	if out.Products == nil {
		out.Products = []Product{}
	}
	if out.Categories == nil {
		out.Categories = []Category{}
	}
	if out.Movements == nil {
		out.Movements = []StockMovement{}
	}
	return out
}

// InventoryStats são os agregados exibidos no dashboard.
type InventoryStats struct {
	TotalProducts   int     `json:"totalProducts"`
	TotalValue      float64 `json:"totalValue"`
	LowStockCount   int     `json:"lowStockCount"`
	OutOfStockCount int     `json:"outOfStockCount"`
	TotalCategories int     `json:"totalCategories"`
	RecentMovements int     `json:"recentMovements"`
}
