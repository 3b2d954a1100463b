package domain

import "errors"

// Erros de domínio (sem dependências externas). As mensagens são as mesmas
// expostas pela API, em português.
var (
	ErrUsuarioNaoEncontrado = errors.New("Usuário não encontrado")
	ErrPlanoNaoEncontrado   = errors.New("Plano não encontrado")
	ErrVendaNaoEncontrada   = errors.New("Venda não encontrada")
	ErrFaturaNaoEncontrada  = errors.New("Fatura não encontrada")
	ErrEmailJaCadastrado    = errors.New("Email já cadastrado")
	ErrCredenciaisInvalidas = errors.New("Email ou senha inválidos")
)

// ValidationError indica a primeira restrição de campo violada na criação
// ou edição de uma entidade. Mapeia para HTTP 400 na camada de interface.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// NewValidationError constrói um erro de validação para o campo informado.
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}

// IsNotFound informa se o erro é um dos sentinelas de recurso inexistente.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrUsuarioNaoEncontrado) ||
		errors.Is(err, ErrPlanoNaoEncontrado) ||
		errors.Is(err, ErrVendaNaoEncontrada) ||
		errors.Is(err, ErrFaturaNaoEncontrada)
}
