package inventoryservice

import "goinventory/internal/domain"

// Action é o conjunto fechado de transições aceitas por Reduce.
type Action interface {
	isAction()
}

type (
	SetLoading      struct{ Loading bool }
	SetError        struct{ Message string }
	SetProducts     struct{ Products []domain.Product }
	AddProduct      struct{ Product domain.Product }
	UpdateProduct   struct{ Product domain.Product }
	DeleteProduct   struct{ ID string }
	SetCategories   struct{ Categories []domain.Category }
	AddCategory     struct{ Category domain.Category }
	UpdateCategory  struct{ Category domain.Category }
	DeleteCategory  struct{ ID string }
	SetMovements    struct{ Movements []domain.StockMovement }
	AddMovement     struct{ Movement domain.StockMovement }
	SetFilters      struct{ Patch domain.FiltersPatch }
	ResetFilters    struct{}
	SelectProduct   struct{ ID string }
	UpdateStock     struct {
		Product  domain.Product
		Movement domain.StockMovement
	}
)

func (SetLoading) isAction()     {}
func (SetError) isAction()       {}
func (SetProducts) isAction()    {}
func (AddProduct) isAction()     {}
func (UpdateProduct) isAction()  {}
func (DeleteProduct) isAction()  {}
func (SetCategories) isAction()  {}
func (AddCategory) isAction()    {}
func (UpdateCategory) isAction() {}
func (DeleteCategory) isAction() {}
func (SetMovements) isAction()   {}
func (AddMovement) isAction()    {}
func (SetFilters) isAction()     {}
func (ResetFilters) isAction()   {}
func (SelectProduct) isAction()  {}
func (UpdateStock) isAction()    {}

// Reduce devolve o próximo estado. Não faz I/O e não muta as coleções
// do estado recebido: toda alteração gera uma fatia nova.
func Reduce(state domain.InventoryState, action Action) domain.InventoryState {
	switch a := action.(type) {
	case SetLoading:
		state.IsLoading = a.Loading
	case SetError:
		state.Error = a.Message
	case SetProducts:
		state.Products = append([]domain.Product{}, a.Products...)
	case AddProduct:
		state.Products = append(append([]domain.Product{}, state.Products...), a.Product)
	case UpdateProduct:
		state.Products = replaceProduct(state.Products, a.Product)
	case DeleteProduct:
		state.Products = removeProduct(state.Products, a.ID)
		if state.SelectedProduct == a.ID {
			state.SelectedProduct = ""
		}
	case SetCategories:
		state.Categories = append([]domain.Category{}, a.Categories...)
	case AddCategory:
		state.Categories = append(append([]domain.Category{}, state.Categories...), a.Category)
	case UpdateCategory:
		out := make([]domain.Category, len(state.Categories))
		for i, c := range state.Categories {
			if c.ID == a.Category.ID {
				c = a.Category
			}
			out[i] = c
		}
		state.Categories = out
	case DeleteCategory:
		out := make([]domain.Category, 0, len(state.Categories))
		for _, c := range state.Categories {
			if c.ID != a.ID {
				out = append(out, c)
			}
		}
		state.Categories = out
	case SetMovements:
		state.Movements = append([]domain.StockMovement{}, a.Movements...)
	case AddMovement:
		state.Movements = append(append([]domain.StockMovement{}, state.Movements...), a.Movement)
	case SetFilters:
		state.Filters = a.Patch.Apply(state.Filters)
	case ResetFilters:
		state.Filters = domain.DefaultFilters()
	case SelectProduct:
		state.SelectedProduct = a.ID
	case UpdateStock:
		state.Products = replaceProduct(state.Products, a.Product)
		state.Movements = append(append([]domain.StockMovement{}, state.Movements...), a.Movement)
	}
	return state
}

func replaceProduct(products []domain.Product, updated domain.Product) []domain.Product {
	out := make([]domain.Product, len(products))
	for i, p := range products {
		if p.ID == updated.ID {
			p = updated
		}
		out[i] = p
	}
	return out
}

func removeProduct(products []domain.Product, id string) []domain.Product {
	out := make([]domain.Product, 0, len(products))
	for _, p := range products {
		if p.ID != id {
			out = append(out, p)
		}
	}
	return out
}
