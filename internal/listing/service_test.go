package listing

import (
	"os"
	"path/filepath"
	"testing"

	"litoral-prime/internal/config"
	"litoral-prime/internal/database"
	"litoral-prime/internal/media"
	"litoral-prime/internal/models"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type sentMail struct {
	to, subject, body string
}

type recordingSender struct {
	sent []sentMail
	err  error
}

func (r *recordingSender) Send(to, subject, body string) error {
	if r.err != nil {
		return r.err
	}
	r.sent = append(r.sent, sentMail{to, subject, body})
	return nil
}

func newTestService(t *testing.T) (*Service, *database.GormDB, string, *recordingSender) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	gdb := database.NewGormDBFromDB(db)
	require.NoError(t, gdb.InitSchema())

	dir := t.TempDir()
	store, err := media.NewStore(config.UploadsConfig{
		Dir:          dir,
		PublicPrefix: "/static/uploads",
		LegacyPrefix: "/static/uploads",
	})
	require.NoError(t, err)

	sender := &recordingSender{}
	svc := NewService(gdb, store, sender, "corretor@litoralprime.com.br")
	return svc, gdb, dir, sender
}

func TestCreateImovelWithoutUploadsGetsPlaceholder(t *testing.T) {
	svc, _, _, _ := newTestService(t)

	imovel, err := svc.CreateImovel(ImovelInput{Titulo: "Casa na Praia", Preco: "Consulte"}, nil)
	require.NoError(t, err)
	assert.Equal(t, "/static/uploads/placeholder.png", imovel.Fotos)
	assert.Equal(t, "", imovel.Bairro)

	view, err := svc.GetImovel(imovel.ID)
	require.NoError(t, err)
	assert.Equal(t, "/static/uploads/placeholder.png", view.FotoCapa)
}

func TestEditImovelKeepsFotos(t *testing.T) {
	svc, gdb, _, _ := newTestService(t)

	imovel := &models.Imovel{Titulo: "Apartamento", Fotos: "/static/uploads/a.jpg,/static/uploads/b.jpg"}
	require.NoError(t, gdb.CreateImovel(imovel))

	err := svc.EditImovel(imovel.ID, ImovelInput{Titulo: "Apartamento reformado", Preco: "R$ 800.000"})
	require.NoError(t, err)

	stored, err := gdb.GetImovelByID(imovel.ID)
	require.NoError(t, err)
	assert.Equal(t, "Apartamento reformado", stored.Titulo)
	assert.Equal(t, "/static/uploads/a.jpg,/static/uploads/b.jpg", stored.Fotos)
	assert.Equal(t, "", stored.Bairro)
}

func TestEditImovelUnknownID(t *testing.T) {
	svc, _, _, _ := newTestService(t)
	assert.ErrorIs(t, svc.EditImovel(999, ImovelInput{Titulo: "x"}), ErrNotFound)
}

func TestRemoveFotoAbsentReferenceIsNoop(t *testing.T) {
	svc, gdb, dir, _ := newTestService(t)

	keep := filepath.Join(dir, "a.jpg")
	require.NoError(t, os.WriteFile(keep, []byte("jpg"), 0o644))

	imovel := &models.Imovel{Titulo: "Casa", Fotos: "/static/uploads/a.jpg"}
	require.NoError(t, gdb.CreateImovel(imovel))

	require.NoError(t, svc.RemoveFoto(imovel.ID, "/static/uploads/missing.jpg"))

	stored, err := gdb.GetImovelByID(imovel.ID)
	require.NoError(t, err)
	assert.Equal(t, "/static/uploads/a.jpg", stored.Fotos)
	_, err = os.Stat(keep)
	assert.NoError(t, err, "file system must be untouched")
}

func TestRemoveFotoDeletesFileAndRewritesCSV(t *testing.T) {
	svc, gdb, dir, _ := newTestService(t)

	gone := filepath.Join(dir, "b.jpg")
	require.NoError(t, os.WriteFile(gone, []byte("jpg"), 0o644))

	imovel := &models.Imovel{Titulo: "Casa", Fotos: "/static/uploads/a.jpg,/static/uploads/b.jpg"}
	require.NoError(t, gdb.CreateImovel(imovel))

	require.NoError(t, svc.RemoveFoto(imovel.ID, "/static/uploads/b.jpg"))

	stored, err := gdb.GetImovelByID(imovel.ID)
	require.NoError(t, err)
	assert.Equal(t, "/static/uploads/a.jpg", stored.Fotos)
	_, err = os.Stat(gone)
	assert.True(t, os.IsNotExist(err), "physical file should be deleted")
}

func TestRemoveFotoSurvivesMissingFile(t *testing.T) {
	svc, gdb, _, _ := newTestService(t)

	imovel := &models.Imovel{Titulo: "Casa", Fotos: "/static/uploads/orfa.jpg"}
	require.NoError(t, gdb.CreateImovel(imovel))

	// The file never existed; the delete is swallowed and the database
	// update still commits.
	require.NoError(t, svc.RemoveFoto(imovel.ID, "/static/uploads/orfa.jpg"))

	stored, err := gdb.GetImovelByID(imovel.ID)
	require.NoError(t, err)
	assert.Equal(t, "", stored.Fotos)
}

func TestDeleteLugarDetachesImoveis(t *testing.T) {
	svc, gdb, _, _ := newTestService(t)

	lugar, err := svc.CreateLugar(LugarInput{Nome: "Centro"}, nil)
	require.NoError(t, err)

	imovel := &models.Imovel{Titulo: "Loja", LugarID: &lugar.ID}
	require.NoError(t, gdb.CreateImovel(imovel))

	require.NoError(t, svc.DeleteLugar(lugar.ID))

	view, err := svc.GetImovel(imovel.ID)
	require.NoError(t, err)
	assert.Equal(t, LugarNaoDefinido, view.Bairro)
}

func TestDeleteLugarUnknownID(t *testing.T) {
	svc, _, _, _ := newTestService(t)
	assert.ErrorIs(t, svc.DeleteLugar(42), ErrNotFound)
}

func TestSubmitContatoSnapshotsTitle(t *testing.T) {
	svc, gdb, _, sender := newTestService(t)

	imovel := &models.Imovel{Titulo: "Casa na Praia"}
	require.NoError(t, gdb.CreateImovel(imovel))

	contato, err := svc.SubmitContato(imovel.ID, "Ana", "a@x.com", "+55 12 91234-5678", "Interessada")
	require.NoError(t, err)
	assert.Equal(t, "Casa na Praia", contato.ImovelTitulo)
	assert.False(t, contato.DataEnvio.IsZero())

	// Operator copy plus submitter confirmation.
	require.Len(t, sender.sent, 2)
	assert.Equal(t, "corretor@litoralprime.com.br", sender.sent[0].to)
	assert.Equal(t, "a@x.com", sender.sent[1].to)
}

func TestSubmitContatoForMissingImovel(t *testing.T) {
	svc, gdb, _, _ := newTestService(t)

	contato, err := svc.SubmitContato(999, "Ana", "a@x.com", "11 99999-0000", "Ainda disponível?")
	require.NoError(t, err)
	assert.Equal(t, models.TituloDesconhecido, contato.ImovelTitulo)

	stored, err := gdb.GetAllContatos()
	require.NoError(t, err)
	require.Len(t, stored, 1)
	assert.Equal(t, uint(999), stored[0].ImovelID)
}

func TestSubmitContatoSurvivesMailFailure(t *testing.T) {
	svc, gdb, _, sender := newTestService(t)
	sender.err = assert.AnError

	_, err := svc.SubmitContato(1, "Ana", "a@x.com", "11 99999-0000", "Olá")
	require.NoError(t, err, "mail failure must not fail the submission")

	stored, err := gdb.GetAllContatos()
	require.NoError(t, err)
	assert.Len(t, stored, 1)
}

func TestListContatosNewestFirst(t *testing.T) {
	svc, _, _, _ := newTestService(t)

	_, err := svc.SubmitContato(1, "Primeiro", "p@x.com", "1", "a")
	require.NoError(t, err)
	_, err = svc.SubmitContato(1, "Segundo", "s@x.com", "2", "b")
	require.NoError(t, err)

	contatos, err := svc.ListContatos()
	require.NoError(t, err)
	require.Len(t, contatos, 2)
	assert.Equal(t, "Segundo", contatos[0].Nome)
}

func TestDeleteContatoUnknownID(t *testing.T) {
	svc, _, _, _ := newTestService(t)
	assert.ErrorIs(t, svc.DeleteContato(5), ErrNotFound)
}

func TestReplyContato(t *testing.T) {
	svc, _, _, sender := newTestService(t)

	contato, err := svc.SubmitContato(1, "Ana", "a@x.com", "1", "Tem garagem?")
	require.NoError(t, err)
	sender.sent = nil

	require.NoError(t, svc.ReplyContato(contato.ID, "Tem sim, para dois carros."))
	require.Len(t, sender.sent, 1)
	assert.Equal(t, "a@x.com", sender.sent[0].to)
	assert.Contains(t, sender.sent[0].body, "Tem sim, para dois carros.")
	assert.Contains(t, sender.sent[0].body, "Tem garagem?")
}

func TestReplyContatoUnknownID(t *testing.T) {
	svc, _, _, _ := newTestService(t)
	assert.ErrorIs(t, svc.ReplyContato(123, "resposta"), ErrNotFound)
}

func TestHeroReadNeverPersists(t *testing.T) {
	svc, gdb, _, _ := newTestService(t)

	hero, err := svc.GetHero()
	require.NoError(t, err)
	assert.Equal(t, models.DefaultHeroTitulo, hero.TituloCapa)

	var count int64
	require.NoError(t, gdb.DB().Model(&models.Hero{}).Count(&count).Error)
	assert.Zero(t, count, "pure read path must not create the row")
}

func TestHeroUpdateLastWriterWins(t *testing.T) {
	svc, _, _, _ := newTestService(t)

	first, err := svc.UpdateHero("Primeiro título", "sub", nil)
	require.NoError(t, err)
	imagemAntes := first.ImagemCapa

	second, err := svc.UpdateHero("Segundo título", "sub2", nil)
	require.NoError(t, err)

	assert.Equal(t, "Segundo título", second.TituloCapa)
	assert.Equal(t, imagemAntes, second.ImagemCapa, "no upload means the image reference stays")
}
