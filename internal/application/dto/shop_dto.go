package dto

import "time"

// ShopCreateRequest payload de criação/atualização de loja.
type ShopCreateRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Cnpj        string `json:"cnpj"`
}

// ShopResponse representação pública da loja.
type ShopResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Cnpj        string    `json:"cnpj"`
	OwnerID     string    `json:"owner_id"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// ShopListResponse página de lojas.
type ShopListResponse struct {
	Items []ShopResponse `json:"items"`
	Page  PageResponse   `json:"page"`
}
