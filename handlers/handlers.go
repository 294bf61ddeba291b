package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"portal/assets"
	"portal/mail"
	"portal/models"
	"portal/panel"
	"portal/storage"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type Response struct {
	Error string `json:"error"`
}

var (
	// Predefined errors
	DBErrorResponse      = Response{"DB error"}
	StorageErrorResponse = Response{"storage error"}
	MailErrorResponse    = Response{"mail relay failure"}
	NotFoundResponse     = Response{"not found"}
	BadRequestResponse   = Response{"bad request"}
)

// Handlers carries everything the request handlers need. Built once in main.
type Handlers struct {
	DB        *gorm.DB
	Storage   storage.StorageAPI
	Assets    *assets.Manager
	Mailer    mail.Mailer
	Log       *zap.SugaredLogger
	PortalURL string

	// Preselection locates the per-client folders counted on the dashboard
	Preselection panel.Layout
}

// accountFromParam loads the account in the :id path param, writing the error response itself
func (h *Handlers) accountFromParam(c *gin.Context) (models.Account, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusNotFound, NotFoundResponse)
		return models.Account{}, false
	}
	account, err := models.AccountByID(h.DB, id)
	if errors.Is(err, models.ErrNotFound) {
		c.JSON(http.StatusNotFound, NotFoundResponse)
		return account, false
	} else if err != nil {
		h.Log.Errorw("load account", "id", id, "error", err)
		c.JSON(http.StatusInternalServerError, DBErrorResponse)
		return account, false
	}
	return account, true
}

func (h *Handlers) Healthz(c *gin.Context) {
	sqlDB, err := h.DB.DB()
	if err == nil {
		err = sqlDB.PingContext(c.Request.Context())
	}
	if err != nil {
		h.Log.Errorw("health check", "error", err)
		c.JSON(http.StatusServiceUnavailable, DBErrorResponse)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
