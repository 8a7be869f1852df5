// Package inventoryservice mantém o estado canônico do inventário e
// sincroniza cada ação com a camada de persistência.
package inventoryservice

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"
	"unicode"

	"github.com/google/uuid"
	"golang.org/x/text/language"

	"goinventory/internal/domain"
	apperror "goinventory/internal/errors"
	"goinventory/internal/pkg/logger"
	"goinventory/internal/query"
)

// ProductRepository define o contrato que o Store espera para produtos.
type ProductRepository interface {
	Load(ctx context.Context) ([]domain.Product, error)
	Save(ctx context.Context, products []domain.Product) error
}

// CategoryRepository define o contrato que o Store espera para categorias.
type CategoryRepository interface {
	Load(ctx context.Context) ([]domain.Category, error)
	Save(ctx context.Context, categories []domain.Category) error
}

// MovementRepository define o contrato que o Store espera para movimentações.
type MovementRepository interface {
	Load(ctx context.Context) ([]domain.StockMovement, error)
	Save(ctx context.Context, movements []domain.StockMovement) error
}

// SnapshotRepository grava várias coleções de forma atômica.
type SnapshotRepository interface {
	ReplaceAll(ctx context.Context, products []domain.Product, categories []domain.Category, movements []domain.StockMovement) error
	SaveProductsAndMovements(ctx context.Context, products []domain.Product, movements []domain.StockMovement) error
}

// Repositories agrupa as dependências de persistência do Store.
type Repositories struct {
	Products   ProductRepository
	Categories CategoryRepository
	Movements  MovementRepository
	Snapshot   SnapshotRepository
}

// Options ajusta o comportamento do Store. Campos zerados usam o padrão.
type Options struct {
	Locale language.Tag     // ordenação por nome; padrão query.DefaultLocale
	Clock  func() time.Time // padrão time.Now
	NewID  func() string    // padrão uuid v4
}

// Store é o dono exclusivo do InventoryState. Todas as ações passam pelo
// mutex, que fica retido durante a escrita e a redução.
type Store struct {
	repos  Repositories
	logger logger.Logger
	locale language.Tag
	now    func() time.Time
	newID  func() string

	mu          sync.Mutex
	state       domain.InventoryState
	changed     bool
	nextSubID   int
	subscribers map[int]func(domain.InventoryState)
}

// NewStore cria um Store com o estado inicial. LoadData deve ser chamado
// antes de servir requisições.
func NewStore(repos Repositories, log logger.Logger, opts Options) *Store {
	s := &Store{
		repos:       repos,
		logger:      log,
		locale:      opts.Locale,
		now:         opts.Clock,
		newID:       opts.NewID,
		state:       domain.InitialState(),
		subscribers: make(map[int]func(domain.InventoryState)),
	}
	if s.locale == language.Und {
		s.locale = query.DefaultLocale
	}
	if s.now == nil {
		s.now = time.Now
	}
	if s.newID == nil {
		s.newID = func() string { return uuid.New().String() }
	}
	return s
}

// Subscribe registra fn para receber o estado após cada alteração.
// A função devolvida cancela a inscrição.
func (s *Store) Subscribe(fn func(domain.InventoryState)) func() {
	s.mu.Lock()
	defer s.mu.Unlock()
	id := s.nextSubID
	s.nextSubID++
	s.subscribers[id] = fn
	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		delete(s.subscribers, id)
	}
}

// lock adquire o mutex; o par unlock notifica os inscritos fora da seção
// crítica para que possam ler o Store sem deadlock.
func (s *Store) lock() {
	s.mu.Lock()
}

func (s *Store) unlock() {
	if !s.changed {
		s.mu.Unlock()
		return
	}
	s.changed = false
	snapshot := s.state.Clone()
	subs := make([]func(domain.InventoryState), 0, len(s.subscribers))
	for _, fn := range s.subscribers {
		subs = append(subs, fn)
	}
	s.mu.Unlock()

	for _, fn := range subs {
		fn(snapshot)
	}
}

func (s *Store) dispatch(a Action) {
	s.state = Reduce(s.state, a)
	s.changed = true
}

// fail registra o erro no flag do estado, exceto para not-found e validação,
// que são devolvidos sem marcar o flag.
func (s *Store) fail(op string, err error) error {
	if appErr, ok := apperror.As(err); ok {
		switch appErr.(type) {
		case *apperror.NotFoundError, *apperror.ValidationError:
			s.logger.Warn("Ação rejeitada.", map[string]interface{}{"op": op, "error": err.Error()})
			return err
		}
	}
	s.logger.Error(fmt.Sprintf("Falha em %s.", op), err)
	s.dispatch(SetError{Message: err.Error()})
	return err
}

// --- Carga ---

// LoadData recarrega as três coleções do armazenamento.
func (s *Store) LoadData(ctx context.Context) error {
	s.lock()
	defer s.unlock()
	return s.loadLocked(ctx)
}

func (s *Store) loadLocked(ctx context.Context) error {
	s.dispatch(SetLoading{Loading: true})
	defer s.dispatch(SetLoading{Loading: false})

	products, err := s.repos.Products.Load(ctx)
	if err != nil {
		return s.fail("loadData", err)
	}
	categories, err := s.repos.Categories.Load(ctx)
	if err != nil {
		return s.fail("loadData", err)
	}
	movements, err := s.repos.Movements.Load(ctx)
	if err != nil {
		return s.fail("loadData", err)
	}

	s.dispatch(SetProducts{Products: products})
	s.dispatch(SetCategories{Categories: categories})
	s.dispatch(SetMovements{Movements: movements})
	s.dispatch(SetError{Message: ""})

	s.logger.Info("Inventário carregado.", map[string]interface{}{
		"products":   len(products),
		"categories": len(categories),
		"movements":  len(movements),
	})
	return nil
}

// --- Produtos ---

// AddProduct cria o produto, atribuindo ID e timestamps. SKU em branco é
// gerado a partir do nome da categoria.
func (s *Store) AddProduct(ctx context.Context, input domain.ProductInput) (domain.Product, error) {
	s.lock()
	defer s.unlock()

	now := s.now()
	p := domain.Product{
		ID:          s.newID(),
		Name:        input.Name,
		Description: input.Description,
		CategoryID:  input.CategoryID,
		Price:       input.Price,
		Stock:       input.Stock,
		MinStock:    input.MinStock,
		SKU:         strings.TrimSpace(input.SKU),
		Barcode:     input.Barcode,
		Image:       input.Image,
		Status:      input.Status,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if p.SKU == "" {
		p.SKU = s.generateSKU(p.CategoryID, now)
	}

	next := append(append([]domain.Product{}, s.state.Products...), p)
	if err := s.repos.Products.Save(ctx, next); err != nil {
		return domain.Product{}, s.fail("addProduct", err)
	}
	s.dispatch(AddProduct{Product: p})
	s.logger.Info("Produto criado.", map[string]interface{}{"id": p.ID, "sku": p.SKU})
	return p, nil
}

// generateSKU monta "CAT-123456": três primeiras letras do nome da
// categoria em maiúsculas e os seis últimos dígitos do relógio em ms.
func (s *Store) generateSKU(categoryID string, now time.Time) string {
	name := domain.IndexCategories(s.state.Categories).NameOf(categoryID)
	if name == "" {
		name = categoryID
	}
	prefix := []rune(strings.ToUpper(name))
	if len(prefix) > 3 {
		prefix = prefix[:3]
	}
	for i, r := range prefix {
		if unicode.IsSpace(r) {
			prefix[i] = 'X'
		}
	}
	return fmt.Sprintf("%s-%06d", string(prefix), now.UnixMilli()%1_000_000)
}

// UpdateProduct mescla o patch no produto e atualiza UpdatedAt.
func (s *Store) UpdateProduct(ctx context.Context, id string, patch domain.ProductPatch) (domain.Product, error) {
	s.lock()
	defer s.unlock()

	current, ok := s.findProduct(id)
	if !ok {
		return domain.Product{}, s.fail("updateProduct", productNotFound(id))
	}
	updated := patch.Apply(current)
	updated.ID = current.ID
	updated.CreatedAt = current.CreatedAt
	updated.UpdatedAt = s.now()

	next := make([]domain.Product, len(s.state.Products))
	for i, p := range s.state.Products {
		if p.ID == id {
			p = updated
		}
		next[i] = p
	}
	if err := s.repos.Products.Save(ctx, next); err != nil {
		return domain.Product{}, s.fail("updateProduct", err)
	}
	s.dispatch(UpdateProduct{Product: updated})
	return updated, nil
}

// DeleteProduct remove o produto e limpa a seleção se apontava para ele.
// As movimentações do produto permanecem no log.
func (s *Store) DeleteProduct(ctx context.Context, id string) error {
	s.lock()
	defer s.unlock()

	if _, ok := s.findProduct(id); !ok {
		return s.fail("deleteProduct", productNotFound(id))
	}
	next := make([]domain.Product, 0, len(s.state.Products))
	for _, p := range s.state.Products {
		if p.ID != id {
			next = append(next, p)
		}
	}
	if err := s.repos.Products.Save(ctx, next); err != nil {
		return s.fail("deleteProduct", err)
	}
	s.dispatch(DeleteProduct{ID: id})
	s.logger.Info("Produto removido.", map[string]interface{}{"id": id})
	return nil
}

func (s *Store) findProduct(id string) (domain.Product, bool) {
	for _, p := range s.state.Products {
		if p.ID == id {
			return p, true
		}
	}
	return domain.Product{}, false
}

func productNotFound(id string) error {
	return apperror.NewNotFoundError(fmt.Sprintf("Produto com ID %s não foi encontrado.", id))
}

// Product devolve o produto pelo ID.
func (s *Store) Product(id string) (domain.Product, error) {
	s.lock()
	defer s.unlock()
	p, ok := s.findProduct(id)
	if !ok {
		return domain.Product{}, productNotFound(id)
	}
	return p, nil
}

// --- Categorias ---

// AddCategory cria a categoria com ID e CreatedAt atribuídos.
func (s *Store) AddCategory(ctx context.Context, input domain.CategoryInput) (domain.Category, error) {
	s.lock()
	defer s.unlock()

	c := domain.Category{
		ID:          s.newID(),
		Name:        input.Name,
		Description: input.Description,
		Color:       input.Color,
		CreatedAt:   s.now(),
	}
	next := append(append([]domain.Category{}, s.state.Categories...), c)
	if err := s.repos.Categories.Save(ctx, next); err != nil {
		return domain.Category{}, s.fail("addCategory", err)
	}
	s.dispatch(AddCategory{Category: c})
	s.logger.Info("Categoria criada.", map[string]interface{}{"id": c.ID, "name": c.Name})
	return c, nil
}

// UpdateCategory renomeia ou recolore a categoria. Os produtos continuam
// ligados pelo ID.
func (s *Store) UpdateCategory(ctx context.Context, id string, patch domain.CategoryPatch) (domain.Category, error) {
	s.lock()
	defer s.unlock()

	idx := s.categoryIndex(id)
	if idx < 0 {
		return domain.Category{}, s.fail("updateCategory", categoryNotFound(id))
	}
	updated := patch.Apply(s.state.Categories[idx])

	next := append([]domain.Category{}, s.state.Categories...)
	next[idx] = updated
	if err := s.repos.Categories.Save(ctx, next); err != nil {
		return domain.Category{}, s.fail("updateCategory", err)
	}
	s.dispatch(UpdateCategory{Category: updated})
	return updated, nil
}

// DeleteCategory remove a categoria. Não verifica produtos que a
// referenciam; essa regra pertence a categoryservice.
func (s *Store) DeleteCategory(ctx context.Context, id string) error {
	s.lock()
	defer s.unlock()

	idx := s.categoryIndex(id)
	if idx < 0 {
		return s.fail("deleteCategory", categoryNotFound(id))
	}
	next := make([]domain.Category, 0, len(s.state.Categories))
	next = append(next, s.state.Categories[:idx]...)
	next = append(next, s.state.Categories[idx+1:]...)
	if err := s.repos.Categories.Save(ctx, next); err != nil {
		return s.fail("deleteCategory", err)
	}
	s.dispatch(DeleteCategory{ID: id})
	s.logger.Info("Categoria removida.", map[string]interface{}{"id": id})
	return nil
}

func (s *Store) categoryIndex(id string) int {
	for i, c := range s.state.Categories {
		if c.ID == id {
			return i
		}
	}
	return -1
}

func categoryNotFound(id string) error {
	return apperror.NewNotFoundError(fmt.Sprintf("Categoria com ID %s não foi encontrada.", id))
}

// Categories devolve uma cópia das categorias.
func (s *Store) Categories() []domain.Category {
	s.lock()
	defer s.unlock()
	return append([]domain.Category{}, s.state.Categories...)
}

// --- Movimentações ---

// AddStockMovement registra uma movimentação manual. ProductID é uma
// referência fraca e não é verificado. O estoque do produto não muda.
func (s *Store) AddStockMovement(ctx context.Context, input domain.MovementInput) (domain.StockMovement, error) {
	s.lock()
	defer s.unlock()

	if !input.Type.Valid() {
		return domain.StockMovement{}, s.fail("addStockMovement", apperror.NewValidationError(fmt.Sprintf("Tipo de movimentação inválido: %q.", input.Type)))
	}
	if input.Quantity < 0 {
		return domain.StockMovement{}, s.fail("addStockMovement", apperror.NewValidationError("A quantidade não pode ser negativa."))
	}

	m := domain.StockMovement{
		ID:        s.newID(),
		ProductID: input.ProductID,
		Type:      input.Type,
		Quantity:  input.Quantity,
		Reason:    input.Reason,
		Notes:     input.Notes,
		CreatedAt: s.now(),
		CreatedBy: input.CreatedBy,
	}
	if m.CreatedBy == "" {
		m.CreatedBy = domain.SystemActor
	}

	next := append(append([]domain.StockMovement{}, s.state.Movements...), m)
	if err := s.repos.Movements.Save(ctx, next); err != nil {
		return domain.StockMovement{}, s.fail("addStockMovement", err)
	}
	s.dispatch(AddMovement{Movement: m})
	return m, nil
}

// UpdateStock define o estoque absoluto do produto e registra exatamente
// uma movimentação: tipo "in" se o novo valor >= anterior, senão "out",
// com quantidade igual à diferença absoluta. Produto e log são gravados
// numa única escrita.
func (s *Store) UpdateStock(ctx context.Context, productID string, newQty int, reason string) (domain.StockMovement, error) {
	s.lock()
	defer s.unlock()

	if newQty < 0 {
		return domain.StockMovement{}, s.fail("updateStock", apperror.NewValidationError("O estoque não pode ser negativo."))
	}
	current, ok := s.findProduct(productID)
	if !ok {
		return domain.StockMovement{}, s.fail("updateStock", productNotFound(productID))
	}

	now := s.now()
	delta := newQty - current.Stock
	movementType := domain.MovementIn
	if delta < 0 {
		movementType = domain.MovementOut
		delta = -delta
	}
	m := domain.StockMovement{
		ID:        s.newID(),
		ProductID: productID,
		Type:      movementType,
		Quantity:  delta,
		Reason:    reason,
		CreatedAt: now,
		CreatedBy: domain.SystemActor,
	}
	updated := current
	updated.Stock = newQty
	updated.UpdatedAt = now

	products := make([]domain.Product, len(s.state.Products))
	for i, p := range s.state.Products {
		if p.ID == productID {
			p = updated
		}
		products[i] = p
	}
	movements := append(append([]domain.StockMovement{}, s.state.Movements...), m)

	if err := s.repos.Snapshot.SaveProductsAndMovements(ctx, products, movements); err != nil {
		return domain.StockMovement{}, s.fail("updateStock", err)
	}
	s.dispatch(UpdateStock{Product: updated, Movement: m})
	s.logger.Info("Estoque atualizado.", map[string]interface{}{
		"product_id": productID,
		"from":       current.Stock,
		"to":         newQty,
		"type":       string(movementType),
	})
	return m, nil
}

// Movements devolve o log, opcionalmente restrito a um produto.
func (s *Store) Movements(productID string) []domain.StockMovement {
	s.lock()
	defer s.unlock()
	out := make([]domain.StockMovement, 0, len(s.state.Movements))
	for _, m := range s.state.Movements {
		if productID == "" || m.ProductID == productID {
			out = append(out, m)
		}
	}
	return out
}

// --- Filtros e seleção ---

// SetFilters aplica um merge raso nos filtros atuais.
func (s *Store) SetFilters(patch domain.FiltersPatch) (domain.SearchFilters, error) {
	s.lock()
	defer s.unlock()

	if field := patch.Invalid(); field != "" {
		return s.state.Filters, s.fail("setFilters", apperror.NewValidationError(fmt.Sprintf("Valor inválido para o filtro %s.", field)))
	}
	s.dispatch(SetFilters{Patch: patch})
	return s.state.Filters, nil
}

// ResetFilters restaura os filtros padrão.
func (s *Store) ResetFilters() domain.SearchFilters {
	s.lock()
	defer s.unlock()
	s.dispatch(ResetFilters{})
	return s.state.Filters
}

// Filters devolve os filtros atuais.
func (s *Store) Filters() domain.SearchFilters {
	s.lock()
	defer s.unlock()
	return s.state.Filters
}

// SelectProduct substitui a seleção. ID vazio limpa.
func (s *Store) SelectProduct(id string) {
	s.lock()
	defer s.unlock()
	s.dispatch(SelectProduct{ID: id})
}

// Selected devolve o produto selecionado. ok == false quando não há seleção
// ou o produto não existe mais.
func (s *Store) Selected() (domain.Product, bool) {
	s.lock()
	defer s.unlock()
	if s.state.SelectedProduct == "" {
		return domain.Product{}, false
	}
	return s.findProduct(s.state.SelectedProduct)
}

// --- Leituras derivadas ---

// GetFilteredProducts executa busca, filtro e ordenação com os filtros
// atuais. Recalculado a cada chamada.
func (s *Store) GetFilteredProducts() []domain.Product {
	s.lock()
	defer s.unlock()
	return query.Apply(s.state.Products, s.state.Categories, s.state.Filters, s.locale)
}

// State devolve uma cópia do estado.
func (s *Store) State() domain.InventoryState {
	s.lock()
	defer s.unlock()
	return s.state.Clone()
}

// Stats calcula os agregados do dashboard em relação a now.
func (s *Store) Stats(now time.Time) domain.InventoryStats {
	s.lock()
	defer s.unlock()
	return query.Stats(s.state.Products, s.state.Categories, s.state.Movements, now)
}

// Now expõe o relógio do Store para quem precisa de datas coerentes
// com as gravadas (exportação, estatísticas).
func (s *Store) Now() time.Time {
	return s.now()
}
