package listing

import (
	"net/url"
	"strings"

	"litoral-prime/internal/models"
)

// LugarNaoDefinido is the display label for listings without a linked
// lugar, including listings orphaned by a lugar deletion.
const LugarNaoDefinido = "Local não definido"

// ImovelView is the display projection of a listing.
type ImovelView struct {
	ID           uint     `json:"id"`
	Titulo       string   `json:"titulo"`
	Descricao    string   `json:"descricao"`
	Preco        string   `json:"preco"`
	Bairro       string   `json:"bairro"`
	LugarID      *uint    `json:"lugar_id"`
	Quartos      int      `json:"quartos"`
	Banheiros    int      `json:"banheiros"`
	Area         int      `json:"area"`
	Whatsapp     string   `json:"whatsapp"`
	Tipo         string   `json:"tipo"`
	ListaFotos   []string `json:"lista_fotos"`
	FotoCapa     string   `json:"foto_capa"`
	WhatsAppLink string   `json:"whatsapp_link"`
}

// LugarView is the display projection of a neighborhood guide.
type LugarView struct {
	ID                uint   `json:"id"`
	Nome              string `json:"nome"`
	Descricao         string `json:"descricao"`
	BaresRestaurantes string `json:"bares_restaurantes"`
	PontosInteresse   string `json:"pontos_interesse"`
	ImagemPrincipal   string `json:"imagem_principal"`
}

// WhatsAppLink builds the wa.me deep link for a listing from the raw digits
// of the stored number. Returns "" when the number carries no digits.
func WhatsAppLink(numero, titulo string) string {
	var digits strings.Builder
	for _, r := range numero {
		if r >= '0' && r <= '9' {
			digits.WriteRune(r)
		}
	}
	if digits.Len() == 0 {
		return ""
	}
	greeting := "Olá! Tenho interesse no imóvel: " + titulo
	return "https://wa.me/" + digits.String() + "?text=" + url.QueryEscape(greeting)
}

// buildImovelView assembles the projection for one listing. lugarNome is ""
// when no lugar is linked (or the link is stale). normalize rewrites legacy
// path prefixes.
func buildImovelView(im *models.Imovel, lugarNome string, normalize func(string) string, placeholder string) ImovelView {
	bairro := lugarNome
	if bairro == "" {
		bairro = LugarNaoDefinido
	}

	fotos := DecodeFotos(im.Fotos)
	for i := range fotos {
		fotos[i] = normalize(fotos[i])
	}
	if len(fotos) == 0 {
		fotos = []string{placeholder}
	}

	return ImovelView{
		ID:           im.ID,
		Titulo:       im.Titulo,
		Descricao:    im.Descricao,
		Preco:        im.Preco,
		Bairro:       bairro,
		LugarID:      im.LugarID,
		Quartos:      im.Quartos,
		Banheiros:    im.Banheiros,
		Area:         im.Area,
		Whatsapp:     im.Whatsapp,
		Tipo:         im.Tipo,
		ListaFotos:   fotos,
		FotoCapa:     fotos[0],
		WhatsAppLink: WhatsAppLink(im.Whatsapp, im.Titulo),
	}
}

func buildLugarView(l *models.Lugar, normalize func(string) string) LugarView {
	return LugarView{
		ID:                l.ID,
		Nome:              l.Nome,
		Descricao:         l.Descricao,
		BaresRestaurantes: l.BaresRestaurantes,
		PontosInteresse:   l.PontosInteresse,
		ImagemPrincipal:   normalize(l.ImagemPrincipal),
	}
}
