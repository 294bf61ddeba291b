package web

import (
	"net/http"
	"path"
	"time"

	"portal/auth"
	"portal/handlers"
	"portal/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/gzip"
	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
)

const (
	sessionCookieName     = "session"
	sessionExpirationTime = 30 * 86400 // 30 days
)

type Options struct {
	Debug   bool
	Origins []string // CORS origins allowed to call the JSON endpoints, empty for same-origin only
}

// NewRouter wires the middleware stack and every route of the portal
func NewRouter(h *handlers.Handlers, store sessions.Store, opts Options) *gin.Engine {
	router := gin.New()
	_ = router.SetTrustedProxies(nil)
	router.Use(gin.Recovery(), utils.RequestLogger(h.Log))
	if opts.Debug {
		router.Use(utils.ErrorLogMiddleware(h.Log))
	} else {
		router.Use(gzip.Gzip(gzip.DefaultCompression, gzip.WithExcludedExtensions([]string{".zip", ".mp4", ".pdf"})))
	}
	if len(opts.Origins) > 0 {
		router.Use(cors.New(cors.Config{
			AllowOrigins:     opts.Origins,
			AllowMethods:     []string{"GET", "POST"},
			AllowHeaders:     []string{"Origin", "Content-Type"},
			ExposeHeaders:    []string{"Content-Length"},
			AllowCredentials: true,
			MaxAge:           12 * time.Hour,
		}))
	}

	store.Options(sessions.Options{Path: "/", MaxAge: sessionExpirationTime, HttpOnly: true, SameSite: http.SameSiteLaxMode})
	router.Use(sessions.Sessions(sessionCookieName, store))
	router.Use((&utils.CacheRouter{CacheTime: utils.CacheNoCache}).Handler())

	// Public
	router.GET("/", h.Index)
	router.GET("/healthz", h.Healthz)
	router.GET("/register", h.RegisterView)
	router.POST("/register", h.Register)
	router.GET("/login", h.LoginView)
	router.POST("/login", h.Login)

	authRouter := &auth.Router{Base: router, DB: h.DB}
	// Clients
	authRouter.GET("/logout", h.Logout, auth.GateAuthenticated)
	authRouter.GET("/panel", h.Panel, auth.GateAuthenticated)
	authRouter.GET("/panel/archivo/:field", h.PanelDownload, auth.GateAuthenticated)
	authRouter.POST("/guardar_seleccion", h.SaveSelection, auth.GateAuthenticated)
	// Admin
	authRouter.GET("/admin", h.AdminList, auth.GateAdmin)
	authRouter.POST("/admin/notificar/:id", h.AdminNotify, auth.GateAdmin)
	authRouter.GET("/admin/editar/:id", h.AdminEditView, auth.GateAdmin)
	authRouter.POST("/admin/editar/:id", h.AdminEdit, auth.GateAdmin)
	authRouter.GET("/admin/archivo/:name", h.AdminFile, auth.GateAdmin)

	// Preselection images only, uploads stay behind the gated routes above
	if h.Preselection.Root != "" {
		router.Static(path.Join("/static", h.Preselection.Clients), h.Preselection.ClientsDir())
	}

	router.GET("/robots.txt", func(c *gin.Context) {
		c.String(http.StatusOK, "User-agent: *\nDisallow: /\n")
	})
	return router
}
