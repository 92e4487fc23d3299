package handlers

import (
	"errors"
	"fmt"
	"mime/multipart"
	"net/http"
	"strconv"

	"litoral-prime/internal/auth"
	"litoral-prime/internal/listing"

	"github.com/gin-gonic/gin"
)

// naoEncontrado is the uniform not-found signal for admin mutations: the
// route redirects back to the dashboard with this query flag instead of
// failing. The same convention applies to imoveis, lugares and mensagens.
const naoEncontrado = "/admin?nao_encontrado=1"

// AdminHandler owns the authenticated management routes.
type AdminHandler struct {
	svc *listing.Service
}

// NewAdminHandler creates a new admin handler
func NewAdminHandler(svc *listing.Service) *AdminHandler {
	return &AdminHandler{svc: svc}
}

// Panel renders the dashboard: listings, guides, messages newest first and
// the hero banner.
func (h *AdminHandler) Panel(c *gin.Context) {
	imoveis, err := h.svc.ListImoveis()
	if err != nil {
		serverError(c, "Panel: list imoveis", err)
		return
	}
	lugares, err := h.svc.ListLugares()
	if err != nil {
		serverError(c, "Panel: list lugares", err)
		return
	}
	contatos, err := h.svc.ListContatos()
	if err != nil {
		serverError(c, "Panel: list contatos", err)
		return
	}
	hero, err := h.svc.GetHero()
	if err != nil {
		serverError(c, "Panel: get hero", err)
		return
	}

	c.HTML(http.StatusOK, "admin.html", gin.H{
		"imoveis":       imoveis,
		"lugares":       lugares,
		"contatos":      contatos,
		"hero":          hero,
		"user":          c.GetString(auth.UsernameKey),
		"naoEncontrado": c.Query("nao_encontrado") == "1",
		"resposta":      c.Query("resposta"),
	})
}

// HeroUpdate upserts the homepage banner, optionally replacing the cover
// image.
func (h *AdminHandler) HeroUpdate(c *gin.Context) {
	titulo := c.PostForm("titulo")
	subtitulo := c.PostForm("subtitulo")
	if titulo == "" || subtitulo == "" {
		c.String(http.StatusBadRequest, "Dados do formulário inválidos")
		return
	}

	capa, _ := c.FormFile("file_capa")
	if _, err := h.svc.UpdateHero(titulo, subtitulo, capa); err != nil {
		serverError(c, "HeroUpdate", err)
		return
	}
	c.Redirect(http.StatusSeeOther, "/admin")
}

// --- Lugares ---

func lugarInput(c *gin.Context) (listing.LugarInput, bool) {
	input := listing.LugarInput{
		Nome:              c.PostForm("nome"),
		Descricao:         c.PostForm("descricao"),
		BaresRestaurantes: c.PostForm("bares_restaurantes"),
		PontosInteresse:   c.PostForm("pontos_interesse"),
	}
	return input, input.Nome != ""
}

// LugarAdd creates a neighborhood guide.
func (h *AdminHandler) LugarAdd(c *gin.Context) {
	input, ok := lugarInput(c)
	if !ok {
		c.String(http.StatusBadRequest, "Dados do formulário inválidos")
		return
	}

	imagem, _ := c.FormFile("file_imagem")
	if _, err := h.svc.CreateLugar(input, imagem); err != nil {
		serverError(c, "LugarAdd", err)
		return
	}
	c.Redirect(http.StatusSeeOther, "/admin")
}

// LugarEdit overwrites a guide, optionally replacing its image.
func (h *AdminHandler) LugarEdit(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		c.Redirect(http.StatusSeeOther, naoEncontrado)
		return
	}
	input, ok := lugarInput(c)
	if !ok {
		c.String(http.StatusBadRequest, "Dados do formulário inválidos")
		return
	}

	imagem, _ := c.FormFile("file_imagem")
	err := h.svc.EditLugar(id, input, imagem)
	if errors.Is(err, listing.ErrNotFound) {
		c.Redirect(http.StatusSeeOther, naoEncontrado)
		return
	}
	if err != nil {
		serverError(c, "LugarEdit", err)
		return
	}
	c.Redirect(http.StatusSeeOther, "/admin")
}

// LugarDelete removes a guide; listings that referenced it are detached.
func (h *AdminHandler) LugarDelete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		c.Redirect(http.StatusSeeOther, naoEncontrado)
		return
	}

	err := h.svc.DeleteLugar(id)
	if errors.Is(err, listing.ErrNotFound) {
		c.Redirect(http.StatusSeeOther, naoEncontrado)
		return
	}
	if err != nil {
		serverError(c, "LugarDelete", err)
		return
	}
	c.Redirect(http.StatusSeeOther, "/admin")
}

// --- Imoveis ---

func imovelInput(c *gin.Context) (listing.ImovelInput, bool) {
	input := listing.ImovelInput{
		Titulo:    c.PostForm("titulo"),
		Descricao: c.PostForm("descricao"),
		Preco:     c.PostForm("preco"),
		Whatsapp:  c.PostForm("whatsapp"),
		Tipo:      c.PostForm("tipo"),
	}
	if input.Titulo == "" {
		return input, false
	}

	// Preco, whatsapp and tipo stay free-form; only the numeric
	// fields are parsed.
	input.Quartos, _ = strconv.Atoi(c.PostForm("quartos"))
	input.Banheiros, _ = strconv.Atoi(c.PostForm("banheiros"))
	input.Area, _ = strconv.Atoi(c.PostForm("area"))

	if raw := c.PostForm("lugar_id"); raw != "" {
		if id, err := strconv.ParseUint(raw, 10, 32); err == nil && id > 0 {
			lugarID := uint(id)
			input.LugarID = &lugarID
		}
	}
	return input, true
}

// ImovelAdd creates a listing from scalar fields plus up to seven
// categorized photo batches.
func (h *AdminHandler) ImovelAdd(c *gin.Context) {
	input, ok := imovelInput(c)
	if !ok {
		c.String(http.StatusBadRequest, "Dados do formulário inválidos")
		return
	}

	var batches map[string][]*multipart.FileHeader
	if form, err := c.MultipartForm(); err == nil && form != nil {
		batches = form.File
	}

	if _, err := h.svc.CreateImovel(input, batches); err != nil {
		serverError(c, "ImovelAdd", err)
		return
	}
	c.Redirect(http.StatusSeeOther, "/admin")
}

// ImovelEditForm renders the edit page for one listing.
func (h *AdminHandler) ImovelEditForm(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		c.Redirect(http.StatusSeeOther, naoEncontrado)
		return
	}

	imovel, err := h.svc.GetImovel(id)
	if errors.Is(err, listing.ErrNotFound) {
		c.Redirect(http.StatusSeeOther, naoEncontrado)
		return
	}
	if err != nil {
		serverError(c, "ImovelEditForm", err)
		return
	}

	lugares, err := h.svc.ListLugares()
	if err != nil {
		serverError(c, "ImovelEditForm: list lugares", err)
		return
	}

	c.HTML(http.StatusOK, "admin_imovel_editar.html", gin.H{
		"imovel":  imovel,
		"lugares": lugares,
		"user":    c.GetString(auth.UsernameKey),
	})
}

// ImovelEditSubmit overwrites the scalar fields of a listing. Photos are
// managed exclusively through RemoveFoto.
func (h *AdminHandler) ImovelEditSubmit(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		c.Redirect(http.StatusSeeOther, naoEncontrado)
		return
	}
	input, ok := imovelInput(c)
	if !ok {
		c.String(http.StatusBadRequest, "Dados do formulário inválidos")
		return
	}

	err := h.svc.EditImovel(id, input)
	if errors.Is(err, listing.ErrNotFound) {
		c.Redirect(http.StatusSeeOther, naoEncontrado)
		return
	}
	if err != nil {
		serverError(c, "ImovelEditSubmit", err)
		return
	}
	c.Redirect(http.StatusSeeOther, "/admin")
}

// ImovelDelete removes a listing row, leaving photo files on disk.
func (h *AdminHandler) ImovelDelete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		c.Redirect(http.StatusSeeOther, naoEncontrado)
		return
	}

	err := h.svc.DeleteImovel(id)
	if errors.Is(err, listing.ErrNotFound) {
		c.Redirect(http.StatusSeeOther, naoEncontrado)
		return
	}
	if err != nil {
		serverError(c, "ImovelDelete", err)
		return
	}
	c.Redirect(http.StatusSeeOther, "/admin")
}

// RemoveFoto drops one photo reference from a listing and bounces back to
// its edit page.
func (h *AdminHandler) RemoveFoto(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		c.Redirect(http.StatusSeeOther, naoEncontrado)
		return
	}
	caminho := c.Query("caminho")

	err := h.svc.RemoveFoto(id, caminho)
	if errors.Is(err, listing.ErrNotFound) {
		c.Redirect(http.StatusSeeOther, naoEncontrado)
		return
	}
	if err != nil {
		serverError(c, "RemoveFoto", err)
		return
	}
	c.Redirect(http.StatusSeeOther, fmt.Sprintf("/admin/imovel/editar/%d", id))
}

// --- Mensagens ---

// MensagemDelete removes one inquiry.
func (h *AdminHandler) MensagemDelete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		c.Redirect(http.StatusSeeOther, naoEncontrado)
		return
	}

	err := h.svc.DeleteContato(id)
	if errors.Is(err, listing.ErrNotFound) {
		c.Redirect(http.StatusSeeOther, naoEncontrado)
		return
	}
	if err != nil {
		serverError(c, "MensagemDelete", err)
		return
	}
	c.Redirect(http.StatusSeeOther, "/admin")
}

// ContatoResponder mails an answer to the inquiry sender. The send result
// is reported through a query flag; a delivery failure never becomes a
// server error.
func (h *AdminHandler) ContatoResponder(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		c.Redirect(http.StatusSeeOther, naoEncontrado)
		return
	}
	resposta := c.PostForm("resposta")
	if resposta == "" {
		c.String(http.StatusBadRequest, "Dados do formulário inválidos")
		return
	}

	err := h.svc.ReplyContato(id, resposta)
	switch {
	case errors.Is(err, listing.ErrNotFound):
		c.Redirect(http.StatusSeeOther, naoEncontrado)
	case err != nil:
		c.Redirect(http.StatusSeeOther, "/admin?resposta=erro")
	default:
		c.Redirect(http.StatusSeeOther, "/admin?resposta=ok")
	}
}
