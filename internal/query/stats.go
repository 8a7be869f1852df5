package query

import (
	"sort"
	"time"

	"goinventory/internal/domain"
)

// RecentWindow é a janela de "movimentações recentes" das estatísticas.
const RecentWindow = 24 * time.Hour

// Stats calcula os agregados do dashboard em relação a now.
func Stats(products []domain.Product, categories []domain.Category, movements []domain.StockMovement, now time.Time) domain.InventoryStats {
	stats := domain.InventoryStats{
		TotalProducts:   len(products),
		TotalCategories: len(categories),
	}
	for _, p := range products {
		stats.TotalValue += p.Value()
		switch domain.LevelOf(p) {
		case domain.StockLevelLowStock:
			stats.LowStockCount++
		case domain.StockLevelOutOfStock:
			stats.OutOfStockCount++
		}
	}

	since := now.Add(-RecentWindow)
	for _, m := range movements {
		if m.CreatedAt.After(since) {
			stats.RecentMovements++
		}
	}
	return stats
}

// StockAlerts separa os produtos que precisam de reposição.
type StockAlerts struct {
	LowStock   []domain.Product `json:"lowStock"`
	OutOfStock []domain.Product `json:"outOfStock"`
}

// Alerts lista produtos com estoque baixo e sem estoque, na ordem de entrada.
func Alerts(products []domain.Product) StockAlerts {
	alerts := StockAlerts{LowStock: []domain.Product{}, OutOfStock: []domain.Product{}}
	for _, p := range products {
		switch domain.LevelOf(p) {
		case domain.StockLevelLowStock:
			alerts.LowStock = append(alerts.LowStock, p)
		case domain.StockLevelOutOfStock:
			alerts.OutOfStock = append(alerts.OutOfStock, p)
		}
	}
	return alerts
}

// CategorySummary agrega os produtos de uma categoria.
type CategorySummary struct {
	CategoryID string  `json:"categoryId"`
	Name       string  `json:"name"`
	Color      string  `json:"color"`
	Products   int     `json:"products"`
	Value      float64 `json:"value"`
	Stock      int     `json:"stock"`
}

// CategoryBreakdown devolve uma linha por categoria, na ordem das categorias.
func CategoryBreakdown(products []domain.Product, categories []domain.Category) []CategorySummary {
	out := make([]CategorySummary, 0, len(categories))
	pos := make(map[string]int, len(categories))
	for i, c := range categories {
		pos[c.ID] = i
		out = append(out, CategorySummary{CategoryID: c.ID, Name: c.Name, Color: c.Color})
	}
	for _, p := range products {
		i, ok := pos[p.CategoryID]
		if !ok {
			continue
		}
		out[i].Products++
		out[i].Value += p.Value()
		out[i].Stock += p.Stock
	}
	return out
}

// Distribution conta produtos por nível de estoque.
type Distribution struct {
	InStock    int `json:"inStock"`
	LowStock   int `json:"lowStock"`
	OutOfStock int `json:"outOfStock"`
}

// StockDistribution classifica cada produto em exatamente um nível.
func StockDistribution(products []domain.Product) Distribution {
	var d Distribution
	for _, p := range products {
		switch domain.LevelOf(p) {
		case domain.StockLevelInStock:
			d.InStock++
		case domain.StockLevelLowStock:
			d.LowStock++
		default:
			d.OutOfStock++
		}
	}
	return d
}

// ProductValue é uma linha do ranking por valor em estoque.
type ProductValue struct {
	ProductID string  `json:"productId"`
	Name      string  `json:"name"`
	Value     float64 `json:"value"`
	Stock     int     `json:"stock"`
}

// DefaultTopN é o tamanho do ranking exibido no dashboard.
const DefaultTopN = 8

// TopByValue devolve os n produtos de maior preço x estoque.
func TopByValue(products []domain.Product, n int) []ProductValue {
	out := make([]ProductValue, 0, len(products))
	for _, p := range products {
		out = append(out, ProductValue{ProductID: p.ID, Name: p.Name, Value: p.Value(), Stock: p.Stock})
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Value > out[j].Value })
	if n >= 0 && len(out) > n {
		out = out[:n]
	}
	return out
}

// DayActivity soma as movimentações de um dia (UTC).
type DayActivity struct {
	Date      string `json:"date"` // YYYY-MM-DD
	Movements int    `json:"movements"`
	In        int    `json:"in"`
	Out       int    `json:"out"`
}

// DefaultActivityDays é a janela do gráfico de atividade.
const DefaultActivityDays = 7

// DailyActivity agrega as movimentações dos últimos days dias, incluindo hoje,
// do mais antigo para o mais recente. Dias sem movimento aparecem zerados.
func DailyActivity(movements []domain.StockMovement, now time.Time, days int) []DayActivity {
	if days <= 0 {
		return []DayActivity{}
	}
	now = now.UTC()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	first := today.AddDate(0, 0, -(days - 1))

	out := make([]DayActivity, days)
	for i := range out {
		out[i].Date = first.AddDate(0, 0, i).Format("2006-01-02")
	}
	for _, m := range movements {
		at := m.CreatedAt.UTC()
		if at.Before(first) || !at.Before(today.AddDate(0, 0, 1)) {
			continue
		}
		i := int(at.Sub(first) / (24 * time.Hour))
		out[i].Movements++
		switch m.Type {
		case domain.MovementIn:
			out[i].In += m.Quantity
		case domain.MovementOut:
			out[i].Out += m.Quantity
		}
	}
	return out
}
