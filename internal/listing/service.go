// Package listing is the directory of properties, neighborhood guides, the
// hero banner and contact inquiries. All CRUD and workflow rules live here;
// handlers only parse forms and render results.
package listing

import (
	"errors"
	"log"
	"mime/multipart"
	"strings"

	"litoral-prime/internal/database"
	"litoral-prime/internal/mailer"
	"litoral-prime/internal/media"
	"litoral-prime/internal/models"

	"gorm.io/gorm"
)

// ErrNotFound reports that a referenced imovel, lugar or contato id does
// not exist.
var ErrNotFound = errors.New("not found")

// FotoCategorias is the fixed category order for photo uploads. Batches are
// concatenated in exactly this order, so the facade batch supplies the
// cover photo when present.
var FotoCategorias = []string{
	"fotos_fachada",
	"fotos_sala",
	"fotos_cozinha",
	"fotos_quartos",
	"fotos_banheiros",
	"fotos_lazer",
	"fotos_outros",
}

// ImovelInput carries the scalar listing fields accepted by create and
// edit. Preco and Tipo are free-form strings on purpose.
type ImovelInput struct {
	Titulo    string
	Descricao string
	Preco     string
	LugarID   *uint
	Quartos   int
	Banheiros int
	Area      int
	Whatsapp  string
	Tipo      string
}

// LugarInput carries the scalar fields of a neighborhood guide.
type LugarInput struct {
	Nome              string
	Descricao         string
	BaresRestaurantes string
	PontosInteresse   string
}

// Service implements the listing directory over the storage component.
type Service struct {
	db       *database.GormDB
	media    *media.Store
	mail     mailer.Sender
	notifyTo string
}

// NewService creates the directory service. mail may be a no-op sender;
// notifyTo is the operator copy address for new inquiries ("" disables it).
func NewService(db *database.GormDB, store *media.Store, mail mailer.Sender, notifyTo string) *Service {
	return &Service{
		db:       db,
		media:    store,
		mail:     mail,
		notifyTo: notifyTo,
	}
}

// Media exposes the media store for static route wiring.
func (s *Service) Media() *media.Store {
	return s.media
}

// --- Imoveis ---

// ListImoveis returns the display projection of every listing. Lugar names
// are resolved through one explicit lookup, never association loading.
func (s *Service) ListImoveis() ([]ImovelView, error) {
	imoveis, err := s.db.GetAllImoveis()
	if err != nil {
		return nil, err
	}
	names, err := s.db.GetLugarNames()
	if err != nil {
		return nil, err
	}

	views := make([]ImovelView, 0, len(imoveis))
	for i := range imoveis {
		views = append(views, s.projectImovel(&imoveis[i], names))
	}
	return views, nil
}

// GetImovel returns the display projection of one listing.
func (s *Service) GetImovel(id uint) (*ImovelView, error) {
	imovel, err := s.db.GetImovelByID(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	var lugarNome string
	if imovel.LugarID != nil {
		if lugar, err := s.db.GetLugarByID(*imovel.LugarID); err == nil {
			lugarNome = lugar.Nome
		}
	}

	view := buildImovelView(imovel, lugarNome, s.media.Normalize, s.media.Placeholder())
	return &view, nil
}

// CreateImovel stores the uploads of every category batch in the fixed
// category order, then persists the listing. Zero uploaded files persist
// the single placeholder reference, never an empty CSV. A file write
// failure aborts before anything is committed.
func (s *Service) CreateImovel(input ImovelInput, batches map[string][]*multipart.FileHeader) (*models.Imovel, error) {
	var fotos []string
	for _, categoria := range FotoCategorias {
		refs, err := s.media.SaveAll(batches[categoria])
		if err != nil {
			return nil, err
		}
		fotos = append(fotos, refs...)
	}
	if len(fotos) == 0 {
		fotos = []string{s.media.Placeholder()}
	}

	imovel := &models.Imovel{
		Titulo:    input.Titulo,
		Descricao: input.Descricao,
		Preco:     input.Preco,
		LugarID:   input.LugarID,
		Bairro:    "",
		Quartos:   input.Quartos,
		Banheiros: input.Banheiros,
		Area:      input.Area,
		Fotos:     EncodeFotos(fotos),
		Whatsapp:  input.Whatsapp,
		Tipo:      input.Tipo,
	}
	if err := s.db.CreateImovel(imovel); err != nil {
		return nil, err
	}
	return imovel, nil
}

// EditImovel overwrites the scalar fields of a listing. Photos are never
// touched here.
func (s *Service) EditImovel(id uint, input ImovelInput) error {
	imovel := &models.Imovel{
		ID:        id,
		Titulo:    input.Titulo,
		Descricao: input.Descricao,
		Preco:     input.Preco,
		LugarID:   input.LugarID,
		Quartos:   input.Quartos,
		Banheiros: input.Banheiros,
		Area:      input.Area,
		Whatsapp:  input.Whatsapp,
		Tipo:      input.Tipo,
	}
	err := s.db.UpdateImovelScalars(imovel)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return err
}

// DeleteImovel removes a listing row. Photo files stay on disk.
func (s *Service) DeleteImovel(id uint) error {
	deleted, err := s.db.DeleteImovel(id)
	if err != nil {
		return err
	}
	if deleted == 0 {
		return ErrNotFound
	}
	return nil
}

// RemoveFoto drops one reference from a listing's ordered photo list by
// exact trimmed match. When the reference is present, the physical file is
// deleted best-effort (failures are logged and swallowed, the database
// update still commits). When it is absent the whole call is a no-op.
func (s *Service) RemoveFoto(id uint, caminho string) error {
	imovel, err := s.db.GetImovelByID(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	if err != nil {
		return err
	}

	caminho = strings.TrimSpace(caminho)
	fotos := DecodeFotos(imovel.Fotos)
	restantes := make([]string, 0, len(fotos))
	removed := false
	for _, foto := range fotos {
		if foto == caminho {
			removed = true
			continue
		}
		restantes = append(restantes, foto)
	}
	if !removed {
		return nil
	}

	if err := s.media.Remove(caminho); err != nil {
		log.Printf("RemoveFoto: could not delete file %q: %v", caminho, err)
	}
	return s.db.UpdateImovelFotos(id, EncodeFotos(restantes))
}

func (s *Service) projectImovel(im *models.Imovel, lugarNames map[uint]string) ImovelView {
	var lugarNome string
	if im.LugarID != nil {
		lugarNome = lugarNames[*im.LugarID]
	}
	return buildImovelView(im, lugarNome, s.media.Normalize, s.media.Placeholder())
}

// --- Lugares ---

// ListLugares returns the display projection of every neighborhood guide.
func (s *Service) ListLugares() ([]LugarView, error) {
	lugares, err := s.db.GetAllLugares()
	if err != nil {
		return nil, err
	}
	views := make([]LugarView, 0, len(lugares))
	for i := range lugares {
		views = append(views, buildLugarView(&lugares[i], s.media.Normalize))
	}
	return views, nil
}

// GetLugar returns one neighborhood guide projection.
func (s *Service) GetLugar(id uint) (*LugarView, error) {
	lugar, err := s.db.GetLugarByID(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	view := buildLugarView(lugar, s.media.Normalize)
	return &view, nil
}

// CreateLugar persists a new guide, storing the main image first when one
// was uploaded.
func (s *Service) CreateLugar(input LugarInput, imagem *multipart.FileHeader) (*models.Lugar, error) {
	var imagemRef string
	if imagem != nil && imagem.Filename != "" {
		ref, err := s.media.SaveUpload(imagem)
		if err != nil {
			return nil, err
		}
		imagemRef = ref
	}

	lugar := &models.Lugar{
		Nome:              input.Nome,
		Descricao:         input.Descricao,
		BaresRestaurantes: input.BaresRestaurantes,
		PontosInteresse:   input.PontosInteresse,
		ImagemPrincipal:   imagemRef,
	}
	if err := s.db.CreateLugar(lugar); err != nil {
		return nil, err
	}
	return lugar, nil
}

// EditLugar overwrites a guide's fields, replacing the main image only when
// a new upload is present.
func (s *Service) EditLugar(id uint, input LugarInput, imagem *multipart.FileHeader) error {
	lugar, err := s.db.GetLugarByID(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	if err != nil {
		return err
	}

	lugar.Nome = input.Nome
	lugar.Descricao = input.Descricao
	lugar.BaresRestaurantes = input.BaresRestaurantes
	lugar.PontosInteresse = input.PontosInteresse

	if imagem != nil && imagem.Filename != "" {
		ref, err := s.media.SaveUpload(imagem)
		if err != nil {
			return err
		}
		lugar.ImagemPrincipal = ref
	}

	return s.db.UpdateLugar(lugar)
}

// DeleteLugar removes a guide, detaching any listings that reference it.
func (s *Service) DeleteLugar(id uint) error {
	deleted, err := s.db.DeleteLugar(id)
	if err != nil {
		return err
	}
	if deleted == 0 {
		return ErrNotFound
	}
	return nil
}

// --- Hero ---

// GetHero returns the banner singleton (or the unsaved default) with its
// image reference normalized.
func (s *Service) GetHero() (*models.Hero, error) {
	hero, err := s.db.GetHero()
	if err != nil {
		return nil, err
	}
	hero.ImagemCapa = s.media.Normalize(hero.ImagemCapa)
	return hero, nil
}

// UpdateHero upserts the banner. The cover image is replaced only when an
// upload is present and declares an image content type; anything else keeps
// the stored reference untouched.
func (s *Service) UpdateHero(titulo, subtitulo string, capa *multipart.FileHeader) (*models.Hero, error) {
	var imagemRef string
	if capa != nil && capa.Filename != "" &&
		strings.HasPrefix(capa.Header.Get("Content-Type"), "image/") {
		ref, err := s.media.SaveUpload(capa)
		if err != nil {
			return nil, err
		}
		imagemRef = ref
	}

	hero, err := s.db.UpsertHero(titulo, subtitulo, imagemRef)
	if err != nil {
		return nil, err
	}
	hero.ImagemCapa = s.media.Normalize(hero.ImagemCapa)
	return hero, nil
}

// --- Contatos ---

// SubmitContato persists a visitor inquiry. The listing id is only used to
// snapshot its title; a stale or bogus id still produces a stored message
// with the fallback title. Notifications go out after the commit and are
// best-effort: a mail failure is logged, never surfaced.
func (s *Service) SubmitContato(imovelID uint, nome, email, telefone, mensagem string) (*models.Contato, error) {
	titulo := models.TituloDesconhecido
	if imovel, err := s.db.GetImovelByID(imovelID); err == nil {
		titulo = imovel.Titulo
	}

	contato := &models.Contato{
		ImovelID:     imovelID,
		ImovelTitulo: titulo,
		Nome:         nome,
		Email:        email,
		Telefone:     telefone,
		Mensagem:     mensagem,
	}
	if err := s.db.CreateContato(contato); err != nil {
		return nil, err
	}

	if s.notifyTo != "" {
		if err := s.mail.Send(s.notifyTo, mailer.NotificationSubject(contato), mailer.NotificationBody(contato)); err != nil {
			log.Printf("SubmitContato: operator notification failed: %v", err)
		}
	}
	if err := s.mail.Send(contato.Email, mailer.ConfirmationSubject(contato), mailer.ConfirmationBody(contato)); err != nil {
		log.Printf("SubmitContato: confirmation to %s failed: %v", contato.Email, err)
	}

	return contato, nil
}

// ListContatos returns every inquiry, newest first.
func (s *Service) ListContatos() ([]models.Contato, error) {
	return s.db.GetAllContatos()
}

// DeleteContato removes one inquiry; unknown ids report ErrNotFound
// instead of failing hard.
func (s *Service) DeleteContato(id uint) error {
	deleted, err := s.db.DeleteContato(id)
	if err != nil {
		return err
	}
	if deleted == 0 {
		return ErrNotFound
	}
	return nil
}

// ReplyContato sends an answer to the original sender, quoting their
// message. Nothing is persisted; the send result is reported to the caller.
func (s *Service) ReplyContato(id uint, resposta string) error {
	contato, err := s.db.GetContatoByID(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	if err != nil {
		return err
	}
	return s.mail.Send(contato.Email, mailer.ReplySubject(contato), mailer.ReplyBody(contato, resposta))
}
