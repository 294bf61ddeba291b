package handlers

import (
	"net/http"

	"portal/assets"
	"portal/auth"
	"portal/mail"
	"portal/models"

	"github.com/gin-gonic/gin"
)

func (h *Handlers) AdminList(c *gin.Context, session *auth.Session, admin *models.Account) {
	accounts, err := models.AccountList(h.DB)
	if err != nil {
		h.Log.Errorw("list accounts", "error", err)
		c.JSON(http.StatusInternalServerError, DBErrorResponse)
		return
	}
	c.JSON(http.StatusOK, gin.H{"accounts": accounts, "flashes": session.Flashes()})
}

func (h *Handlers) AdminNotify(c *gin.Context, session *auth.Session, admin *models.Account) {
	account, ok := h.accountFromParam(c)
	if !ok {
		return
	}
	subject, body, err := mail.ReadyNotice(&account, h.PortalURL)
	if err == nil {
		err = h.Mailer.Send(account.Email, subject, body)
	}
	if err != nil {
		h.Log.Errorw("notify", "account", account.ID, "error", err)
		c.JSON(http.StatusInternalServerError, MailErrorResponse)
		return
	}
	h.Log.Infow("notification sent", "account", account.ID, "by", admin.ID)
	session.Flash(auth.FlashSuccess, "Notificación enviada a "+account.Email)
	c.Redirect(http.StatusFound, "/admin")
}

func (h *Handlers) AdminEditView(c *gin.Context, session *auth.Session, admin *models.Account) {
	account, ok := h.accountFromParam(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"account":  account,
		"packages": []string{models.PackageEssential, models.PackageIdeal, models.PackagePremium},
		"fields":   assets.Fields,
	})
}

// AdminEdit updates the package and stores any uploaded contract/photos/video
func (h *Handlers) AdminEdit(c *gin.Context, session *auth.Session, admin *models.Account) {
	account, ok := h.accountFromParam(c)
	if !ok {
		return
	}
	pkg, ok := c.GetPostForm("paquete")
	if !ok {
		c.JSON(http.StatusBadRequest, BadRequestResponse)
		return
	}
	account.Package = pkg
	replaced := []string{}
	for _, field := range assets.Fields {
		file, err := c.FormFile(string(field))
		if err != nil {
			// missing file or not a multipart post
			continue
		}
		previous := *field.Target(&account)
		stored, err := h.Assets.Upload(&account, field, file)
		if err != nil {
			h.Log.Errorw("upload", "account", account.ID, "field", field, "error", err)
			c.JSON(http.StatusInternalServerError, StorageErrorResponse)
			return
		}
		if stored && previous != "" && previous != *field.Target(&account) {
			replaced = append(replaced, previous)
		}
	}
	if err := account.SaveAssets(h.DB); err != nil {
		h.Log.Errorw("save account", "account", account.ID, "error", err)
		c.JSON(http.StatusInternalServerError, DBErrorResponse)
		return
	}
	h.releaseUploads(replaced)
	c.Redirect(http.StatusFound, "/admin")
}

// releaseUploads deletes replaced files no account refers to any more.
// Failures only leave an orphan file behind.
func (h *Handlers) releaseUploads(names []string) {
	for _, name := range names {
		inUse, err := models.AssetInUse(h.DB, name)
		if err != nil || inUse {
			continue
		}
		if err = h.Storage.Delete(name); err != nil {
			h.Log.Warnw("delete replaced upload", "name", name, "error", err)
			continue
		}
		h.Log.Infow("replaced upload deleted", "name", name)
	}
}

// AdminFile serves a stored upload by its (already sanitized) name
func (h *Handlers) AdminFile(c *gin.Context, session *auth.Session, admin *models.Account) {
	name := c.Param("name")
	if assets.SecureFilename(name) != name || !h.Storage.Exists(name) {
		c.JSON(http.StatusNotFound, NotFoundResponse)
		return
	}
	if err := h.Storage.Serve(name, c.Request, c.Writer); err != nil {
		h.Log.Errorw("serve upload", "name", name, "error", err)
		c.JSON(http.StatusInternalServerError, StorageErrorResponse)
	}
}
