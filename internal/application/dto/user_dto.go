package dto

// CreateUserRequest corpo de POST /usuarios.
type CreateUserRequest struct {
	Nome     string `json:"nome"`
	Email    string `json:"email"`
	Senha    string `json:"senha"`
	Telefone string `json:"telefone"`
	Role     string `json:"role"`
}

// UpdateUserRequest corpo de PUT /usuarios/:email. Campos nil não são
// alterados; campos presentes passam pela revalidação dos setters.
type UpdateUserRequest struct {
	Nome     *string `json:"nome"`
	Telefone *string `json:"telefone"`
	Senha    *string `json:"senha"`
	Role     *string `json:"role"`
}

// UserResponse projeção de usuário sem a senha.
type UserResponse struct {
	ID       string `json:"id"`
	Nome     string `json:"nome"`
	Email    string `json:"email"`
	Telefone string `json:"telefone"`
	Role     string `json:"role"`
}

// StudentResponse projeção de aluno (sem role, usada em /usuarios/alunos).
type StudentResponse struct {
	ID       string `json:"id"`
	Nome     string `json:"nome"`
	Email    string `json:"email"`
	Telefone string `json:"telefone"`
}

// CreateUserResponse corpo de sucesso da criação.
type CreateUserResponse struct {
	Status string `json:"status"`
	ID     string `json:"id"`
	Nome   string `json:"nome"`
	Email  string `json:"email"`
	Role   string `json:"role"`
}

// UpdateUserResponse corpo de sucesso da edição.
type UpdateUserResponse struct {
	Status string       `json:"status"`
	Dados  UserResponse `json:"dados"`
}

// LoginRequest corpo de POST /usuarios/autenticacao.
type LoginRequest struct {
	Email string `json:"email"`
	Senha string `json:"senha"`
}

// LoginResponse corpo de sucesso da autenticação. Token é aditivo em
// relação à API original, que devolvia apenas o usuário.
type LoginResponse struct {
	Status string       `json:"status"`
	Token  string       `json:"token,omitempty"`
	Dados  UserResponse `json:"dados"`
}
