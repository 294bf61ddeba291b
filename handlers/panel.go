package handlers

import (
	"net/http"

	"portal/assets"
	"portal/auth"
	"portal/models"

	"github.com/gin-gonic/gin"
	"github.com/tidwall/gjson"
)

func (h *Handlers) Panel(c *gin.Context, session *auth.Session, account *models.Account) {
	c.JSON(http.StatusOK, gin.H{
		"panel":   h.Preselection.Compute(account),
		"flashes": session.Flashes(),
	})
}

// PanelDownload serves one of the caller's own assets
func (h *Handlers) PanelDownload(c *gin.Context, session *auth.Session, account *models.Account) {
	field, ok := assets.ParseField(c.Param("field"))
	if !ok {
		c.JSON(http.StatusNotFound, NotFoundResponse)
		return
	}
	name := *field.Target(account)
	if name == "" || !h.Storage.Exists(name) {
		c.JSON(http.StatusNotFound, NotFoundResponse)
		return
	}
	c.Header("Content-Disposition", `attachment; filename="`+name+`"`)
	if err := h.Storage.Serve(name, c.Request, c.Writer); err != nil {
		h.Log.Errorw("serve asset", "account", account.ID, "name", name, "error", err)
		c.JSON(http.StatusInternalServerError, StorageErrorResponse)
	}
}

// SaveSelection stores {"seleccion": [...]} as the caller's selection, replacing the previous one
func (h *Handlers) SaveSelection(c *gin.Context, session *auth.Session, account *models.Account) {
	body, err := c.GetRawData()
	if err != nil || !gjson.ValidBytes(body) || !gjson.ParseBytes(body).IsObject() {
		c.JSON(http.StatusBadRequest, BadRequestResponse)
		return
	}
	selection := gjson.GetBytes(body, "seleccion")
	if selection.Exists() && !selection.IsArray() {
		c.JSON(http.StatusBadRequest, BadRequestResponse)
		return
	}
	ids := []string{}
	selection.ForEach(func(_, value gjson.Result) bool {
		ids = append(ids, value.String())
		return true
	})
	if err = account.SaveSelection(h.DB, ids); err != nil {
		h.Log.Errorw("save selection", "account", account.ID, "error", err)
		c.JSON(http.StatusInternalServerError, DBErrorResponse)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
