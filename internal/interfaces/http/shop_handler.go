package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/oktech/boasaude-api/internal/application/dto"
	"github.com/oktech/boasaude-api/internal/application/usecase"
)

// ShopHandler maneja as operações de loja.
type ShopHandler struct {
	uc *usecase.ShopUseCase
}

// NewShopHandler constrói o handler.
func NewShopHandler(uc *usecase.ShopUseCase) *ShopHandler {
	return &ShopHandler{uc: uc}
}

// Create godoc
// @Summary      Criar loja (promove o dono a PRODUCTOR)
// @Tags         shops
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.ShopCreateRequest  true  "Dados da loja"
// @Success      201   {object}  dto.ShopResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /v1/shops/create [post]
func (h *ShopHandler) Create(c *fiber.Ctx) error {
	user := CurrentUser(c)
	var in dto.ShopCreateRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	if in.Name == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "name é requerido"})
	}
	out, err := h.uc.Create(user, in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetMine godoc
// @Summary      Loja do usuário autenticado
// @Tags         shops
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.ShopResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /v1/shops [get]
func (h *ShopHandler) GetMine(c *fiber.Ctx) error {
	out, err := h.uc.GetByUser(CurrentUser(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Obter loja por ID (público)
// @Tags         shops
// @Produce      json
// @Param        id   path  string  true  "ID da loja"
// @Success      200  {object}  dto.ShopResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /v1/shops/get/{id} [get]
func (h *ShopHandler) GetByID(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "id inválido"})
	}
	out, err := h.uc.GetByID(id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Listar lojas (público)
// @Tags         shops
// @Produce      json
// @Param        name    query  string  false  "Busca por nome"
// @Param        limit   query  int     false  "Limite"   default(10)
// @Param        offset  query  int     false  "Offset"   default(0)
// @Success      200     {object}  dto.ShopListResponse
// @Router       /v1/shops/all [get]
func (h *ShopHandler) List(c *fiber.Ctx) error {
	page := dto.PageRequest{Limit: c.QueryInt("limit", 0), Offset: c.QueryInt("offset", 0)}
	page.DefaultPage()
	out, err := h.uc.List(c.Query("name"), page.Limit, page.Offset)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Atualizar a própria loja
// @Tags         shops
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID da loja"
// @Param        body  body  dto.ShopCreateRequest  true  "Dados a atualizar"
// @Success      200   {object}  dto.ShopResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /v1/shops/{id} [put]
func (h *ShopHandler) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "id inválido"})
	}
	var in dto.ShopCreateRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	out, err := h.uc.Update(id, in, CurrentUser(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Excluir a própria loja
// @Tags         shops
// @Security     Bearer
// @Param        id  path  string  true  "ID da loja"
// @Success      204
// @Failure      403  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /v1/shops/{id} [delete]
func (h *ShopHandler) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "id inválido"})
	}
	if err := h.uc.Delete(id, CurrentUser(c)); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
