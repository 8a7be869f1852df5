package errors

import (
	stderrors "errors"
	"fmt"
	"net/http"
)

// AppError é a interface central para todos os erros customizados do inventário.
// Ela permite que o código externo (Handler, Store) acesse a Categoria e a Mensagem do erro.
type AppError interface {
	Error() string    // Implementa a interface error padrão do Go
	Category() string // Categoria do erro (e.g., "VALIDATION_ERROR", "NOT_FOUND", "INTERNAL_ERROR")
	HTTPStatus() int  // Código HTTP sugerido para o Handler
	Unwrap() error    // Permite encapsular erros subjacentes (original error)
}

// --- Tipos de Erro Específicos (Erros de Domínio) ---

// ValidationError representa falhas de validação de dados de entrada.
type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string    { return fmt.Sprintf("Erro de Validação: %s", e.Msg) }
func (e *ValidationError) Category() string { return "VALIDATION_ERROR" }
func (e *ValidationError) HTTPStatus() int  { return http.StatusBadRequest } // 400
func (e *ValidationError) Unwrap() error    { return nil }                   // Não encapsula erro subjacente

// NewValidationError cria um novo erro de validação.
func NewValidationError(msg string) AppError {
	return &ValidationError{Msg: msg}
}

// NotFoundError representa a ausência de um recurso solicitado.
// O Store devolve este erro sem marcar o flag de erro do estado.
type NotFoundError struct {
	Msg string
}

func (e *NotFoundError) Error() string    { return fmt.Sprintf("Recurso não encontrado: %s", e.Msg) }
func (e *NotFoundError) Category() string { return "NOT_FOUND" }
func (e *NotFoundError) HTTPStatus() int  { return http.StatusNotFound } // 404
func (e *NotFoundError) Unwrap() error    { return nil }

// NewNotFoundError cria um novo erro de recurso não encontrado.
func NewNotFoundError(msg string) AppError {
	return &NotFoundError{Msg: msg}
}

// ConflictError representa um conflito na regra de negócio (e.g., categoria ainda em uso).
type ConflictError struct {
	Msg string
}

func (e *ConflictError) Error() string    { return fmt.Sprintf("Conflito de estado: %s", e.Msg) }
func (e *ConflictError) Category() string { return "CONFLICT" }
func (e *ConflictError) HTTPStatus() int  { return http.StatusConflict } // 409
func (e *ConflictError) Unwrap() error    { return nil }

// NewConflictError cria um novo erro de conflito.
func NewConflictError(msg string) AppError {
	return &ConflictError{Msg: msg}
}

// ImportError representa um documento de importação malformado ou inválido.
// Nenhuma escrita é feita quando este erro é retornado.
type ImportError struct {
	Msg string
	Err error
}

func (e *ImportError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("Importação rejeitada: %s: %v", e.Msg, e.Err)
	}
	return fmt.Sprintf("Importação rejeitada: %s", e.Msg)
}
func (e *ImportError) Category() string { return "IMPORT_ERROR" }
func (e *ImportError) HTTPStatus() int  { return http.StatusUnprocessableEntity } // 422
func (e *ImportError) Unwrap() error    { return e.Err }

// NewImportError cria um erro de documento de importação inválido.
func NewImportError(msg string, err error) AppError {
	return &ImportError{Msg: msg, Err: err}
}

// --- Tipos de Erro de Infraestrutura (Encapsulamento) ---

// StorageUnavailableError indica que o armazenamento durável não está acessível.
type StorageUnavailableError struct {
	Msg string
	Err error
}

func (e *StorageUnavailableError) Error() string {
	return fmt.Sprintf("Armazenamento indisponível: %s", e.Msg)
}
func (e *StorageUnavailableError) Category() string { return "STORAGE_UNAVAILABLE" }
func (e *StorageUnavailableError) HTTPStatus() int  { return http.StatusServiceUnavailable } // 503
func (e *StorageUnavailableError) Unwrap() error    { return e.Err }

// NewStorageUnavailableError cria um erro de armazenamento indisponível.
func NewStorageUnavailableError(msg string, err error) AppError {
	return &StorageUnavailableError{Msg: msg, Err: err}
}

// InternalError representa falhas inesperadas no servidor, serviço ou repositório.
type InternalError struct {
	Msg string
	Err error // Erro original subjacente (e.g., erro do driver SQL)
}

func (e *InternalError) Error() string    { return fmt.Sprintf("Erro Interno: %s", e.Msg) }
func (e *InternalError) Category() string { return "INTERNAL_ERROR" }
func (e *InternalError) HTTPStatus() int  { return http.StatusInternalServerError } // 500
func (e *InternalError) Unwrap() error    { return e.Err }

// NewInternalError cria um erro de servidor (para falhas de lógica ou código não esperado).
func NewInternalError(msg string, err error) AppError {
	return &InternalError{Msg: msg, Err: err}
}

// NewDBError é um atalho para criar um InternalError específico de falhas no armazenamento.
func NewDBError(msg string, err error) AppError {
	return NewInternalError(fmt.Sprintf("%s (DB): %s", msg, err.Error()), err)
}

// --- Helpers ---

// As extrai o primeiro AppError da cadeia de erros.
func As(err error) (AppError, bool) {
	var appErr AppError
	if stderrors.As(err, &appErr) {
		return appErr, true
	}
	return nil, false
}

// IsNotFound informa se algum erro da cadeia é um NotFoundError.
func IsNotFound(err error) bool {
	var nf *NotFoundError
	return stderrors.As(err, &nf)
}

// IsValidation informa se algum erro da cadeia é um ValidationError.
func IsValidation(err error) bool {
	var ve *ValidationError
	return stderrors.As(err, &ve)
}

// MapToHTTPStatus recebe um erro e o traduz para o código HTTP e corpo de resposta.
func MapToHTTPStatus(err error) (int, string, string) {
	if appErr, ok := As(err); ok {
		// O erro é tipado (ValidationError, NotFoundError, etc.), mesmo que embrulhado com %w.
		return appErr.HTTPStatus(), appErr.Category(), appErr.Error()
	}

	// Erro não tipado: tratado como erro interno genérico.
	return http.StatusInternalServerError, "UNKNOWN_ERROR", "Ocorreu um erro inesperado."
}
