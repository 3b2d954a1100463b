package dto

// ErrorResponse corpo de erro HTTP: {"erro": mensagem}.
type ErrorResponse struct {
	Erro string `json:"erro"`
}

// MessageResponse corpo usado quando falta um parâmetro de busca.
type MessageResponse struct {
	Mensagem string `json:"mensagem"`
}

// StatusResponse corpo de sucesso simples: {"status": mensagem}.
type StatusResponse struct {
	Status string `json:"status"`
}
