package handlers

import (
	"embed"
	"html/template"
	"net/http"
	"time"

	"litoral-prime/internal/auth"
	"litoral-prime/internal/config"
	"litoral-prime/internal/database"
	"litoral-prime/internal/listing"
	"litoral-prime/internal/ratelimit"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

//go:embed templates/*.html
var templatesFS embed.FS

// NewRouter wires every route of the site onto a gin engine. Templates are
// embedded so the binary is self-contained; uploaded media is served from
// the configured directory under the public prefix.
func NewRouter(cfg *config.Config, db *database.GormDB, svc *listing.Service, tokens *auth.TokenManager) *gin.Engine {
	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST"},
		AllowHeaders:     []string{"Origin", "Content-Type"},
		AllowCredentials: false,
	}))

	funcs := template.FuncMap{
		"deref": func(p *uint) uint {
			if p == nil {
				return 0
			}
			return *p
		},
	}
	r.SetHTMLTemplate(template.Must(template.New("").Funcs(funcs).ParseFS(templatesFS, "templates/*.html")))
	r.Static(svc.Media().PublicPrefix(), cfg.Uploads.Dir)

	public := NewPublicHandler(svc)
	authH := NewAuthHandler(db, tokens, int(cfg.Auth.SessionTTL().Seconds()))
	admin := NewAdminHandler(svc)

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "time": time.Now()})
	})

	r.GET("/", public.Home)
	r.GET("/lugar", public.Lugares)
	r.GET("/imovel/:id", public.Detalhes)

	// The inquiry form is the only unauthenticated write, so it carries a
	// per-client throttle.
	throttle := ratelimit.NewLimiter(5, 20)
	r.POST("/contato/enviar", contatoThrottle(throttle), public.ContatoEnviar)

	r.GET("/login", authH.LoginPage)
	r.POST("/login", authH.LoginSubmit)
	r.GET("/logout", authH.Logout)

	adm := r.Group("/admin", auth.RequireAdmin(tokens))
	{
		adm.GET("", admin.Panel)
		adm.POST("/hero", admin.HeroUpdate)

		adm.POST("/lugar/adicionar", admin.LugarAdd)
		adm.POST("/lugar/editar/:id", admin.LugarEdit)
		adm.GET("/lugar/deletar/:id", admin.LugarDelete)

		adm.POST("/adicionar", admin.ImovelAdd)
		adm.GET("/imovel/editar/:id", admin.ImovelEditForm)
		adm.POST("/imovel/editar/:id", admin.ImovelEditSubmit)
		adm.GET("/imovel/remover_foto/:id", admin.RemoveFoto)
		adm.GET("/deletar/:id", admin.ImovelDelete)

		adm.GET("/apagar_mensagem/:id", admin.MensagemDelete)
		adm.POST("/contato/responder/:id", admin.ContatoResponder)
	}

	return r
}

func contatoThrottle(l *ratelimit.Limiter) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !l.Allow(c.ClientIP()) {
			c.String(http.StatusTooManyRequests, "Muitas tentativas. Aguarde um instante.")
			c.Abort()
			return
		}
		c.Next()
	}
}
