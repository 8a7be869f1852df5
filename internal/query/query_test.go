package query_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"

	"goinventory/internal/domain"
	"goinventory/internal/query"
)

var (
	electronics = domain.Category{ID: "c1", Name: "Electrónicos"}
	office      = domain.Category{ID: "c2", Name: "Oficina"}
)

func product(id, name string, categoryID string, price float64, stock, minStock int) domain.Product {
	return domain.Product{
		ID: id, Name: name, CategoryID: categoryID, Price: price,
		Stock: stock, MinStock: minStock, SKU: "SKU-" + id, Status: domain.StatusActive,
	}
}

func idsOf(products []domain.Product) []string {
	out := make([]string, 0, len(products))
	for _, p := range products {
		out = append(out, p.ID)
	}
	return out
}

func catalog() []domain.Product {
	p1 := product("1", "Laptop HP", "c1", 1000, 15, 5)
	p1.Description = "Procesador Intel"
	p2 := product("2", "Mouse", "c2", 50, 3, 10)
	p3 := product("3", "Monitor", "c1", 300, 0, 3)
	p3.Status = domain.StatusInactive
	p4 := product("4", "Teclado", "c2", 80, 5, 5)
	return []domain.Product{p1, p2, p3, p4}
}

// --- Search ---

func TestSearch_BlankQueryIsIdentity(t *testing.T) {
	products := catalog()
	index := domain.IndexCategories([]domain.Category{electronics, office})

	for _, q := range []string{"", "   ", "\t\n"} {
		got := query.Search(products, q, index)
		assert.Equal(t, products, got)
	}
}

func TestSearch_CaseInsensitiveSubstring(t *testing.T) {
	index := domain.IndexCategories([]domain.Category{electronics, office})
	products := catalog()

	tests := []struct {
		name  string
		query string
		want  []string
	}{
		{"nome parcial", "LAP", []string{"1"}},
		{"descrição", "intel", []string{"1"}},
		{"sku", "sku-4", []string{"4"}},
		{"nome da categoria", "oficina", []string{"2", "4"}},
		{"meio de palavra", "oni", []string{"3"}},
		{"sem resultado", "impresora", []string{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, idsOf(query.Search(products, tt.query, index)))
		})
	}
}

func TestSearch_UnknownCategoryDoesNotMatchByName(t *testing.T) {
	products := []domain.Product{product("x", "Cabo", "missing", 1, 1, 0)}

	got := query.Search(products, "oficina", domain.IndexCategories(nil))

	assert.Empty(t, got)
}

// --- Filter ---

func TestFilter_StockLevelBucketsPartition(t *testing.T) {
	products := []domain.Product{
		product("a", "A", "c1", 1, 0, 0),
		product("b", "B", "c1", 1, 0, 5),
		product("c", "C", "c1", 1, 1, 5),
		product("d", "D", "c1", 1, 5, 5),
		product("e", "E", "c1", 1, 6, 5),
		product("f", "F", "c1", 1, 1, 0),
	}
	filters := domain.DefaultFilters()

	seen := map[string]int{}
	for _, level := range []domain.StockLevel{domain.StockLevelInStock, domain.StockLevelLowStock, domain.StockLevelOutOfStock} {
		filters.StockLevel = level
		for _, p := range query.Filter(products, filters) {
			seen[p.ID]++
		}
	}

	assert.Len(t, seen, len(products), "nenhum produto omitido")
	for id, n := range seen {
		assert.Equal(t, 1, n, "produto %s em mais de um bucket", id)
	}

	filters.StockLevel = domain.StockLevelOutOfStock
	assert.Equal(t, []string{"a", "b"}, idsOf(query.Filter(products, filters)))
	filters.StockLevel = domain.StockLevelLowStock
	assert.Equal(t, []string{"c", "d"}, idsOf(query.Filter(products, filters)))
	filters.StockLevel = domain.StockLevelInStock
	assert.Equal(t, []string{"e", "f"}, idsOf(query.Filter(products, filters)))
}

func TestFilter_Conjunction(t *testing.T) {
	products := catalog()
	filters := domain.DefaultFilters()

	assert.Equal(t, []string{"1", "2", "3", "4"}, idsOf(query.Filter(products, filters)))

	filters.Category = domain.OnlyCategory("c1")
	assert.Equal(t, []string{"1", "3"}, idsOf(query.Filter(products, filters)))

	filters.Status = domain.StatusFilterActive
	assert.Equal(t, []string{"1"}, idsOf(query.Filter(products, filters)))

	filters.Category = domain.AllCategories
	filters.Status = domain.StatusFilterInactive
	assert.Equal(t, []string{"3"}, idsOf(query.Filter(products, filters)))
}

// --- Sort ---

func TestSort_StableForEqualKeys(t *testing.T) {
	products := []domain.Product{
		product("1", "B", "c1", 10, 1, 0),
		product("2", "A", "c1", 5, 1, 0),
		product("3", "C", "c1", 10, 1, 0),
		product("4", "D", "c1", 5, 1, 0),
	}

	asc := query.Sort(products, domain.SortByPrice, domain.SortAsc, language.Spanish)
	assert.Equal(t, []string{"2", "4", "1", "3"}, idsOf(asc))

	desc := query.Sort(products, domain.SortByPrice, domain.SortDesc, language.Spanish)
	assert.Equal(t, []string{"1", "3", "2", "4"}, idsOf(desc))

	assert.Equal(t, []string{"1", "2", "3", "4"}, idsOf(products), "entrada não pode ser mutada")
}

func TestSort_DescReversesAscForUniqueKeys(t *testing.T) {
	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	products := catalog()
	for i := range products {
		products[i].CreatedAt = base.Add(time.Duration(len(products)-i) * time.Hour)
	}

	for _, key := range []domain.SortKey{domain.SortByName, domain.SortByPrice, domain.SortByCreatedAt} {
		t.Run(string(key), func(t *testing.T) {
			asc := query.Sort(products, key, domain.SortAsc, language.Spanish)
			desc := query.Sort(asc, key, domain.SortDesc, language.Spanish)

			want := idsOf(asc)
			for i, j := 0, len(want)-1; i < j; i, j = i+1, j-1 {
				want[i], want[j] = want[j], want[i]
			}
			assert.Equal(t, want, idsOf(desc))
		})
	}
}

func TestSort_NameUsesLocaleCollation(t *testing.T) {
	products := []domain.Product{
		product("1", "Zapato", "c1", 1, 1, 0),
		product("2", "árbol", "c1", 1, 1, 0),
		product("3", "Banco", "c1", 1, 1, 0),
	}

	got := query.Sort(products, domain.SortByName, domain.SortAsc, language.Spanish)

	assert.Equal(t, []string{"2", "3", "1"}, idsOf(got), "acentos e caixa não devem jogar o nome para o fim")
}

func TestApply_Pipeline(t *testing.T) {
	filters := domain.DefaultFilters()
	filters.Query = "o"
	filters.Category = domain.OnlyCategory("c2")
	filters.SortBy = domain.SortByStock
	filters.SortOrder = domain.SortDesc

	got := query.Apply(catalog(), []domain.Category{electronics, office}, filters, language.Spanish)

	assert.Equal(t, []string{"4", "2"}, idsOf(got))
}

// --- Stats ---

func TestStats_ThreeProductExample(t *testing.T) {
	products := []domain.Product{
		product("1", "A", "c1", 100, 0, 5),
		product("2", "B", "c1", 20, 3, 5),
		product("3", "C", "c1", 7.5, 10, 5),
	}

	stats := query.Stats(products, []domain.Category{electronics}, nil, time.Now())

	assert.Equal(t, 3, stats.TotalProducts)
	assert.Equal(t, 1, stats.OutOfStockCount)
	assert.Equal(t, 1, stats.LowStockCount)
	assert.InDelta(t, 135.0, stats.TotalValue, 1e-9)
	assert.Equal(t, 1, stats.TotalCategories)
}

func TestStats_RecentMovementsWindow(t *testing.T) {
	now := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)
	movements := []domain.StockMovement{
		{ID: "old", CreatedAt: now.Add(-48 * time.Hour)},
		{ID: "edge", CreatedAt: now.Add(-24 * time.Hour)},
		{ID: "recent", CreatedAt: now.Add(-time.Hour)},
		{ID: "now", CreatedAt: now},
	}

	stats := query.Stats(nil, nil, movements, now)

	assert.Equal(t, 2, stats.RecentMovements)
	assert.Zero(t, stats.TotalProducts)
}

// --- Dashboard ---

func TestAlerts(t *testing.T) {
	alerts := query.Alerts(catalog())

	assert.Equal(t, []string{"2", "4"}, idsOf(alerts.LowStock))
	assert.Equal(t, []string{"3"}, idsOf(alerts.OutOfStock))
}

func TestCategoryBreakdown(t *testing.T) {
	software := domain.Category{ID: "c3", Name: "Software"}

	rows := query.CategoryBreakdown(catalog(), []domain.Category{electronics, office, software})

	require.Len(t, rows, 3)
	assert.Equal(t, query.CategorySummary{CategoryID: "c1", Name: "Electrónicos", Products: 2, Value: 15000, Stock: 15}, rows[0])
	assert.Equal(t, query.CategorySummary{CategoryID: "c2", Name: "Oficina", Products: 2, Value: 550, Stock: 8}, rows[1])
	assert.Equal(t, 0, rows[2].Products)
}

func TestStockDistribution(t *testing.T) {
	d := query.StockDistribution(catalog())

	assert.Equal(t, query.Distribution{InStock: 1, LowStock: 2, OutOfStock: 1}, d)
}

func TestTopByValue(t *testing.T) {
	top := query.TopByValue(catalog(), 2)

	require.Len(t, top, 2)
	assert.Equal(t, "1", top[0].ProductID)
	assert.Equal(t, "4", top[1].ProductID)
	assert.InDelta(t, 400.0, top[1].Value, 1e-9)

	assert.Len(t, query.TopByValue(catalog(), query.DefaultTopN), 4)
}

func TestDailyActivity(t *testing.T) {
	now := time.Date(2025, 3, 10, 15, 0, 0, 0, time.UTC)
	movements := []domain.StockMovement{
		{Type: domain.MovementIn, Quantity: 5, CreatedAt: time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)},
		{Type: domain.MovementOut, Quantity: 2, CreatedAt: time.Date(2025, 3, 10, 10, 0, 0, 0, time.UTC)},
		{Type: domain.MovementAdjustment, Quantity: 1, CreatedAt: time.Date(2025, 3, 4, 0, 0, 0, 0, time.UTC)},
		{Type: domain.MovementIn, Quantity: 9, CreatedAt: time.Date(2025, 3, 3, 23, 59, 0, 0, time.UTC)},
	}

	days := query.DailyActivity(movements, now, query.DefaultActivityDays)

	require.Len(t, days, 7)
	assert.Equal(t, "2025-03-04", days[0].Date)
	assert.Equal(t, query.DayActivity{Date: "2025-03-04", Movements: 1}, days[0])
	assert.Equal(t, query.DayActivity{Date: "2025-03-10", Movements: 2, In: 5, Out: 2}, days[6])
	assert.Equal(t, 0, days[3].Movements)
}
