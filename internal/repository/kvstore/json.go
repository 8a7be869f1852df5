package kvstore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	apperror "goinventory/internal/errors"
)

// LoadJSON lê a chave e decodifica o documento em dst.
// found == false quando a chave ainda não foi gravada.
func LoadJSON(ctx context.Context, b Backend, key string, dst interface{}) (bool, error) {
	raw, found, err := b.Get(ctx, key)
	if err != nil {
		return false, Translate(fmt.Sprintf("falha ao ler %s", key), err)
	}
	if !found {
		return false, nil
	}
	if err := json.Unmarshal([]byte(raw), dst); err != nil {
		return true, apperror.NewInternalError(fmt.Sprintf("documento corrompido em %s", key), err)
	}
	return true, nil
}

// SaveJSON codifica v e grava sob a chave.
func SaveJSON(ctx context.Context, b Backend, key string, v interface{}) error {
	raw, err := Encode(v)
	if err != nil {
		return err
	}
	if err := b.Set(ctx, key, raw); err != nil {
		return Translate(fmt.Sprintf("falha ao gravar %s", key), err)
	}
	return nil
}

// Encode serializa v no formato persistido (JSON compacto, datas RFC 3339).
func Encode(v interface{}) (string, error) {
	raw, err := json.Marshal(v)
	if err != nil {
		return "", apperror.NewInternalError("falha ao serializar documento", err)
	}
	return string(raw), nil
}

// Translate converte erros do backend na taxonomia da aplicação.
func Translate(msg string, err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, ErrUnavailable) {
		return apperror.NewStorageUnavailableError(msg, err)
	}
	return apperror.NewDBError(msg, err)
}
