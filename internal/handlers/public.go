package handlers

import (
	"errors"
	"fmt"
	"log"
	"net/http"
	"strconv"

	"litoral-prime/internal/listing"

	"github.com/gin-gonic/gin"
)

// PublicHandler serves the visitor-facing pages.
type PublicHandler struct {
	svc *listing.Service
}

// NewPublicHandler creates a new public handler
func NewPublicHandler(svc *listing.Service) *PublicHandler {
	return &PublicHandler{svc: svc}
}

// Home renders the property list and hero banner.
func (h *PublicHandler) Home(c *gin.Context) {
	imoveis, err := h.svc.ListImoveis()
	if err != nil {
		serverError(c, "Home: list imoveis", err)
		return
	}
	hero, err := h.svc.GetHero()
	if err != nil {
		serverError(c, "Home: get hero", err)
		return
	}

	c.HTML(http.StatusOK, "index.html", gin.H{
		"imoveis": imoveis,
		"hero":    hero,
	})
}

// Lugares renders the neighborhood guide list.
func (h *PublicHandler) Lugares(c *gin.Context) {
	lugares, err := h.svc.ListLugares()
	if err != nil {
		serverError(c, "Lugares: list", err)
		return
	}

	c.HTML(http.StatusOK, "local.html", gin.H{
		"lugares": lugares,
	})
}

// Detalhes renders one property page; missing ids answer 404.
func (h *PublicHandler) Detalhes(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		c.String(http.StatusNotFound, "Imóvel não encontrado")
		return
	}

	imovel, err := h.svc.GetImovel(id)
	if errors.Is(err, listing.ErrNotFound) {
		c.String(http.StatusNotFound, "Imóvel não encontrado")
		return
	}
	if err != nil {
		serverError(c, "Detalhes: get imovel", err)
		return
	}

	var lugarGuia *listing.LugarView
	if imovel.LugarID != nil {
		if lugar, err := h.svc.GetLugar(*imovel.LugarID); err == nil {
			lugarGuia = lugar
		}
	}

	c.HTML(http.StatusOK, "detalhes.html", gin.H{
		"imovel":    imovel,
		"lugarGuia": lugarGuia,
		"enviado":   c.Query("enviado") == "1",
	})
}

// contatoForm is the public inquiry form. Every field is required; a
// missing one is a schema-level 400, not a domain error.
type contatoForm struct {
	ImovelID uint   `form:"imovel_id" binding:"required"`
	Nome     string `form:"nome" binding:"required"`
	Email    string `form:"email" binding:"required"`
	Telefone string `form:"telefone" binding:"required"`
	Mensagem string `form:"mensagem" binding:"required"`
}

// ContatoEnviar stores a visitor inquiry and bounces back to the property
// page with a success flag in the query string.
func (h *PublicHandler) ContatoEnviar(c *gin.Context) {
	var form contatoForm
	if err := c.ShouldBind(&form); err != nil {
		c.String(http.StatusBadRequest, "Dados do formulário inválidos")
		return
	}

	if _, err := h.svc.SubmitContato(form.ImovelID, form.Nome, form.Email, form.Telefone, form.Mensagem); err != nil {
		serverError(c, "ContatoEnviar: submit", err)
		return
	}

	c.Redirect(http.StatusSeeOther, fmt.Sprintf("/imovel/%d?enviado=1", form.ImovelID))
}

func parseID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return 0, false
	}
	return uint(id), true
}

func serverError(c *gin.Context, op string, err error) {
	log.Printf("%s: %v", op, err)
	c.String(http.StatusInternalServerError, "Erro interno do servidor")
}
