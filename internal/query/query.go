// Package query reúne as funções puras de busca, filtro, ordenação e
// agregação sobre as coleções do inventário. Nenhuma função muta a
// entrada.
package query

import (
	"sort"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"goinventory/internal/domain"
)

// DefaultLocale é o idioma usado para ordenar nomes quando nenhum é configurado.
var DefaultLocale = language.Spanish

// Search devolve os produtos cujo nome, descrição, SKU ou nome de categoria
// contém query (sem diferenciar maiúsculas). Query em branco devolve a
// entrada sem alteração.
func Search(products []domain.Product, query string, categories domain.CategoryIndex) []domain.Product {
	if strings.TrimSpace(query) == "" {
		return products
	}
	needle := strings.ToLower(query)

	out := make([]domain.Product, 0, len(products))
	for _, p := range products {
		if containsFold(p.Name, needle) ||
			containsFold(p.Description, needle) ||
			containsFold(p.SKU, needle) ||
			containsFold(categories.NameOf(p.CategoryID), needle) {
			out = append(out, p)
		}
	}
	return out
}

func containsFold(s, lowerNeedle string) bool {
	return strings.Contains(strings.ToLower(s), lowerNeedle)
}

// Filter aplica a conjunção de categoria, status e nível de estoque.
// Query e ordenação são ignoradas aqui.
func Filter(products []domain.Product, f domain.SearchFilters) []domain.Product {
	out := make([]domain.Product, 0, len(products))
	for _, p := range products {
		if !f.Category.Matches(p.CategoryID) {
			continue
		}
		if f.Status != domain.StatusFilterAll && f.Status != "" && string(p.Status) != string(f.Status) {
			continue
		}
		if f.StockLevel != domain.StockLevelAll && f.StockLevel != "" && domain.LevelOf(p) != f.StockLevel {
			continue
		}
		out = append(out, p)
	}
	return out
}

// Sort devolve uma cópia ordenada de forma estável. Em ordem desc o
// comparador é invertido, então empates mantêm a ordem de entrada.
func Sort(products []domain.Product, key domain.SortKey, order domain.SortOrder, locale language.Tag) []domain.Product {
	out := append([]domain.Product(nil), products...)
	if out == nil {
		out = []domain.Product{}
	}

	less := comparator(key, locale)
	if order == domain.SortDesc {
		sort.SliceStable(out, func(i, j int) bool { return less(out[j], out[i]) })
	} else {
		sort.SliceStable(out, func(i, j int) bool { return less(out[i], out[j]) })
	}
	return out
}

func comparator(key domain.SortKey, locale language.Tag) func(a, b domain.Product) bool {
	switch key {
	case domain.SortByPrice:
		return func(a, b domain.Product) bool { return a.Price < b.Price }
	case domain.SortByStock:
		return func(a, b domain.Product) bool { return a.Stock < b.Stock }
	case domain.SortByCreatedAt:
		return func(a, b domain.Product) bool { return a.CreatedAt.Before(b.CreatedAt) }
	default:
		// Collator não é seguro para uso concorrente: um por chamada.
		c := collate.New(locale, collate.IgnoreCase)
		return func(a, b domain.Product) bool { return c.CompareString(a.Name, b.Name) < 0 }
	}
}

// Apply executa o pipeline completo: busca, filtro e ordenação.
func Apply(products []domain.Product, categories []domain.Category, f domain.SearchFilters, locale language.Tag) []domain.Product {
	result := Search(products, f.Query, domain.IndexCategories(categories))
	result = Filter(result, f)
	return Sort(result, f.SortBy, f.SortOrder, locale)
}
