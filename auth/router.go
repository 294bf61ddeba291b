package auth

import (
	"net/http"

	"portal/models"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// HandlerFunc runs after the gate passed, with the session and its account
type HandlerFunc func(c *gin.Context, session *Session, account *models.Account)

type Gate uint8

const (
	GateAuthenticated Gate = iota
	GateAdmin
)

const LoginPath = "/login"

// Router is a wrapper that adds the access gates + account pre-loading
type Router struct {
	Base *gin.Engine
	DB   *gorm.DB
}

func (r *Router) baseExec(c *gin.Context, handler HandlerFunc, gate Gate) {
	session := LoadSession(c)
	account := session.Account(r.DB)
	if account.ID == 0 {
		c.Redirect(http.StatusFound, LoginPath)
		c.Abort()
		return
	}
	if gate == GateAdmin && !account.IsAdmin {
		c.String(http.StatusForbidden, "Acceso denegado. Solo el administrador puede ver esta página.")
		c.Abort()
		return
	}
	handler(c, session, &account)
}

func (r *Router) Handle(method, path string, handler HandlerFunc, gate Gate) {
	r.Base.Handle(method, path, func(c *gin.Context) {
		r.baseExec(c, handler, gate)
	})
}

func (r *Router) GET(path string, handler HandlerFunc, gate Gate) {
	r.Handle(http.MethodGet, path, handler, gate)
}

func (r *Router) POST(path string, handler HandlerFunc, gate Gate) {
	r.Handle(http.MethodPost, path, handler, gate)
}
