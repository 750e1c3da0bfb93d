package handler

import (
	"net/http"

	"gestao/internal/dto"
	"gestao/internal/service"

	"github.com/gin-gonic/gin"
)

type ClientesHandler struct{ svc service.ClienteService }

func NewClientesHandler(svc service.ClienteService) *ClientesHandler {
	return &ClientesHandler{svc: svc}
}

// Criar POST /clientes
func (h *ClientesHandler) Criar(c *gin.Context) {
	var req dto.CriarClienteRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Criar(c.Request.Context(), req)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// Listar GET /clientes?skip=&limit=
func (h *ClientesHandler) Listar(c *gin.Context) {
	skip, limit := skipLimitQuery(c)
	resp, err := h.svc.Listar(c.Request.Context(), skip, limit)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// ObterPorID GET /clientes/:id
func (h *ClientesHandler) ObterPorID(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	resp, err := h.svc.ObterPorID(c.Request.Context(), id)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// ObterPorCPF GET /clientes/cpf/:cpf
func (h *ClientesHandler) ObterPorCPF(c *gin.Context) {
	resp, err := h.svc.ObterPorCPF(c.Request.Context(), c.Param("cpf"))
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Atualizar PUT /clientes/:id
func (h *ClientesHandler) Atualizar(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	var req dto.AtualizarClienteRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Atualizar(c.Request.Context(), id, req)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// AtualizarEmail PATCH /clientes/:id/email
func (h *ClientesHandler) AtualizarEmail(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	var req dto.AtualizarEmailRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.AtualizarEmail(c.Request.Context(), id, req.Email)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Deletar DELETE /clientes/:id
func (h *ClientesHandler) Deletar(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	if err := h.svc.Deletar(c.Request.Context(), id); err != nil {
		writeServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// ListarPedidos GET /clientes/:id/pedidos
func (h *ClientesHandler) ListarPedidos(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	resp, err := h.svc.ListarPedidos(c.Request.Context(), id)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// BuscarPorNome GET /clientes/buscar/nome?nome=
func (h *ClientesHandler) BuscarPorNome(c *gin.Context) {
	resp, err := h.svc.BuscarPorNome(c.Request.Context(), c.Query("nome"))
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Contar GET /clientes/estatisticas/total
func (h *ClientesHandler) Contar(c *gin.Context) {
	total, err := h.svc.Contar(c.Request.Context())
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.TotalClientesResponse{TotalClientes: total})
}
