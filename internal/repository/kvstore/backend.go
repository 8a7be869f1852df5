// Package kvstore é o armazenamento durável chave-valor do inventário.
// Cada coleção é gravada como um documento JSON sob uma chave fixa.
package kvstore

import (
	"context"
	"errors"
)

// Chaves fixas das três coleções persistidas.
const (
	KeyProducts   = "inventory_products"
	KeyCategories = "inventory_categories"
	KeyMovements  = "inventory_movements"
)

// ErrUnavailable indica que o backend não pode ser alcançado
// (arquivo inacessível, banco fora do ar, Redis desconectado).
var ErrUnavailable = errors.New("kvstore: backend indisponível")

// Backend define o contrato que os repositórios esperam do armazenamento.
type Backend interface {
	// Get retorna o valor da chave. found == false quando a chave não existe.
	Get(ctx context.Context, key string) (value string, found bool, err error)
	// Set grava uma única chave.
	Set(ctx context.Context, key, value string) error
	// SetMany grava todas as chaves ou nenhuma.
	SetMany(ctx context.Context, values map[string]string) error
	// Ping verifica se o backend está acessível.
	Ping(ctx context.Context) error
	Close() error
}
