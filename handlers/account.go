package handlers

import (
	"errors"
	"net/http"

	"portal/auth"
	"portal/models"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
)

type RegisterRequest struct {
	Name     string `form:"nombre" binding:"required"`
	Email    string `form:"email" binding:"required"`
	Password string `form:"password" binding:"required"`
}

type LoginRequest struct {
	Email    string `form:"email" binding:"required"`
	Password string `form:"password" binding:"required"`
}

func (h *Handlers) Index(c *gin.Context) {
	session := auth.LoadSession(c)
	c.JSON(http.StatusOK, gin.H{"studio": "Estudio Bello", "flashes": session.Flashes()})
}

func (h *Handlers) RegisterView(c *gin.Context) {
	session := auth.LoadSession(c)
	c.JSON(http.StatusOK, gin.H{"page": "register", "flashes": session.Flashes()})
}

func (h *Handlers) Register(c *gin.Context) {
	session := auth.LoadSession(c)
	postReq := RegisterRequest{}
	if err := c.ShouldBindWith(&postReq, binding.Form); err != nil {
		session.Flash(auth.FlashError, "Completa todos los campos.")
		c.Redirect(http.StatusFound, "/register")
		return
	}
	account, err := models.AccountCreate(h.DB, postReq.Name, postReq.Email, postReq.Password)
	if errors.Is(err, models.ErrDuplicateEmail) {
		session.Flash(auth.FlashError, "Ese correo ya está registrado.")
		c.Redirect(http.StatusFound, "/register")
		return
	} else if err != nil {
		h.Log.Errorw("register", "email", postReq.Email, "error", err)
		c.JSON(http.StatusInternalServerError, DBErrorResponse)
		return
	}
	h.Log.Infow("account registered", "id", account.ID)
	session.Flash(auth.FlashSuccess, "Cuenta creada exitosamente. Inicia sesión.")
	c.Redirect(http.StatusFound, auth.LoginPath)
}

func (h *Handlers) LoginView(c *gin.Context) {
	session := auth.LoadSession(c)
	c.JSON(http.StatusOK, gin.H{"page": "login", "flashes": session.Flashes()})
}

func (h *Handlers) Login(c *gin.Context) {
	session := auth.LoadSession(c)
	postReq := LoginRequest{}
	if err := c.ShouldBindWith(&postReq, binding.Form); err != nil {
		c.JSON(http.StatusUnauthorized, Response{"Correo o contraseña incorrectos"})
		return
	}
	account, err := models.AccountLogin(h.DB, postReq.Email, postReq.Password)
	if errors.Is(err, models.ErrInvalidCredentials) {
		c.JSON(http.StatusUnauthorized, Response{"Correo o contraseña incorrectos"})
		return
	} else if err != nil {
		h.Log.Errorw("login", "error", err)
		c.JSON(http.StatusInternalServerError, DBErrorResponse)
		return
	}
	if err = session.Login(&account); err != nil {
		h.Log.Errorw("session save", "error", err)
		c.JSON(http.StatusInternalServerError, DBErrorResponse)
		return
	}
	session.Flash(auth.FlashSuccess, "Inicio de sesión exitoso")
	if account.IsAdmin {
		c.Redirect(http.StatusFound, "/admin")
	} else {
		c.Redirect(http.StatusFound, "/panel")
	}
}

func (h *Handlers) Logout(c *gin.Context, session *auth.Session, account *models.Account) {
	if err := session.LogoutAccount(); err != nil {
		h.Log.Warnw("logout", "account", account.ID, "error", err)
	}
	c.Redirect(http.StatusFound, auth.LoginPath)
}
