package domain

import "errors"

// Erros de domínio (sem dependências externas).
var (
	ErrNotFound           = errors.New("recurso não encontrado")
	ErrUserNotFound       = errors.New("usuário não encontrado")
	ErrShopNotFound       = errors.New("loja não encontrada")
	ErrProductNotFound    = errors.New("produto não encontrado")
	ErrOrderNotFound      = errors.New("pedido não encontrado")
	ErrUnauthorized       = errors.New("não autenticado")
	ErrForbidden          = errors.New("acesso negado")
	ErrInvalidInput       = errors.New("entrada inválida")
	ErrEmailAlreadyExists = errors.New("o email já está cadastrado")
	ErrCpfAlreadyExists   = errors.New("o CPF já está cadastrado")
	ErrCnpjAlreadyExists  = errors.New("o CNPJ já está cadastrado")
	ErrInvalidCnpj        = errors.New("CNPJ inválido")
	ErrShopAlreadyExists  = errors.New("o usuário já possui uma loja")
	ErrInvalidStatus      = errors.New("status de pedido inválido")
	ErrInvalidQuantity    = errors.New("a quantidade deve ser positiva")
	ErrInvalidPrice       = errors.New("o preço deve ser positivo")
	ErrInvalidStock       = errors.New("o estoque deve ser positivo")
)
