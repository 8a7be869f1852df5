package inventoryservice

import (
	"context"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"time"

	"golang.org/x/crypto/blake2b"

	"goinventory/internal/domain"
	apperror "goinventory/internal/errors"
	"goinventory/internal/pkg/validation"
)

// ExportFileName devolve o nome do arquivo de exportação para a data de now.
func ExportFileName(now time.Time) string {
	return fmt.Sprintf("inventory_export_%s.json", now.Format("2006-01-02"))
}

// ExportData monta o documento de exportação com as coleções atuais.
func (s *Store) ExportData(now time.Time) (domain.ExportDocument, error) {
	s.lock()
	defer s.unlock()

	doc := domain.ExportDocument{
		Products:   append([]domain.Product{}, s.state.Products...),
		Categories: append([]domain.Category{}, s.state.Categories...),
		Movements:  append([]domain.StockMovement{}, s.state.Movements...),
		ExportedAt: now,
	}
	sum, err := Checksum(doc)
	if err != nil {
		return domain.ExportDocument{}, err
	}
	doc.Checksum = sum
	return doc, nil
}

// WriteExport grava o documento com indentação de dois espaços.
func WriteExport(w io.Writer, doc domain.ExportDocument) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(doc)
}

// Checksum é o BLAKE2b-256 (hex) do JSON das três coleções.
// ExportedAt e o próprio checksum ficam de fora.
func Checksum(doc domain.ExportDocument) (string, error) {
	payload := struct {
		Products   []domain.Product       `json:"products"`
		Categories []domain.Category      `json:"categories"`
		Movements  []domain.StockMovement `json:"movements"`
	}{doc.Products, doc.Categories, doc.Movements}

	raw, err := json.Marshal(payload)
	if err != nil {
		return "", apperror.NewInternalError("falha ao serializar documento de exportação", err)
	}
	sum := blake2b.Sum256(raw)
	return hex.EncodeToString(sum[:]), nil
}

// importProduct aceita o formato antigo, em que o produto referenciava a
// categoria pelo nome no campo "category".
type importProduct struct {
	domain.Product
	Category string `json:"category,omitempty"`
}

type importDocument struct {
	Products   []importProduct        `json:"products"`
	Categories []domain.Category      `json:"categories"`
	Movements  []domain.StockMovement `json:"movements"`
	ExportedAt time.Time              `json:"exportedAt"`
	Checksum   string                 `json:"checksum"`
}

// ImportData valida o documento por completo antes de qualquer escrita,
// substitui as três coleções numa única operação e recarrega o estado.
func (s *Store) ImportData(ctx context.Context, r io.Reader) error {
	s.lock()
	defer s.unlock()

	doc, err := decodeImport(r)
	if err != nil {
		return s.fail("importData", err)
	}
	if err := s.repos.Snapshot.ReplaceAll(ctx, doc.Products, doc.Categories, doc.Movements); err != nil {
		return s.fail("importData", err)
	}
	s.logger.Info("Documento importado.", map[string]interface{}{
		"products":   len(doc.Products),
		"categories": len(doc.Categories),
		"movements":  len(doc.Movements),
	})
	return s.loadLocked(ctx)
}

// decodeImport decodifica e valida o documento. Qualquer falha é um ImportError.
func decodeImport(r io.Reader) (domain.ExportDocument, error) {
	var raw importDocument
	if err := json.NewDecoder(r).Decode(&raw); err != nil {
		return domain.ExportDocument{}, apperror.NewImportError("JSON malformado", err)
	}

	doc := domain.ExportDocument{
		Categories: raw.Categories,
		Movements:  raw.Movements,
		ExportedAt: raw.ExportedAt,
		Checksum:   raw.Checksum,
	}
	if raw.Products != nil {
		byName := make(map[string]string, len(raw.Categories))
		for _, c := range raw.Categories {
			byName[c.Name] = c.ID
		}
		doc.Products = make([]domain.Product, 0, len(raw.Products))
		for i, p := range raw.Products {
			product := p.Product
			if product.CategoryID == "" && p.Category != "" {
				id, ok := byName[p.Category]
				if !ok {
					return domain.ExportDocument{}, apperror.NewImportError(
						fmt.Sprintf("produto %d referencia a categoria inexistente %q", i, p.Category), nil)
				}
				product.CategoryID = id
			}
			doc.Products = append(doc.Products, product)
		}
	}

	if err := validation.Struct(doc); err != nil {
		return domain.ExportDocument{}, apperror.NewImportError("documento inválido", err)
	}
	if err := checkReferences(doc); err != nil {
		return domain.ExportDocument{}, err
	}

	if doc.Checksum != "" {
		sum, err := Checksum(doc)
		if err != nil {
			return domain.ExportDocument{}, err
		}
		if sum != doc.Checksum {
			return domain.ExportDocument{}, apperror.NewImportError("checksum não confere", nil)
		}
	}
	return doc, nil
}

// checkReferences garante IDs únicos por coleção e que todo produto aponte
// para uma categoria do próprio documento. Movimentações não são
// verificadas contra produtos.
func checkReferences(doc domain.ExportDocument) error {
	categories := make(map[string]struct{}, len(doc.Categories))
	for _, c := range doc.Categories {
		if _, dup := categories[c.ID]; dup {
			return apperror.NewImportError(fmt.Sprintf("categoria duplicada: %s", c.ID), nil)
		}
		categories[c.ID] = struct{}{}
	}

	products := make(map[string]struct{}, len(doc.Products))
	for _, p := range doc.Products {
		if _, dup := products[p.ID]; dup {
			return apperror.NewImportError(fmt.Sprintf("produto duplicado: %s", p.ID), nil)
		}
		products[p.ID] = struct{}{}
		if _, ok := categories[p.CategoryID]; !ok {
			return apperror.NewImportError(fmt.Sprintf("produto %s referencia a categoria inexistente %s", p.ID, p.CategoryID), nil)
		}
	}

	movements := make(map[string]struct{}, len(doc.Movements))
	for _, m := range doc.Movements {
		if _, dup := movements[m.ID]; dup {
			return apperror.NewImportError(fmt.Sprintf("movimentação duplicada: %s", m.ID), nil)
		}
		movements[m.ID] = struct{}{}
	}
	return nil
}
