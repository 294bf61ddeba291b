package auth

import (
	"portal/models"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

const accountIDKey = "id"

const (
	FlashSuccess = "success"
	FlashError   = "error"
	FlashInfo    = "info"
)

type Flash struct {
	Kind    string `json:"kind"`
	Message string `json:"message"`
}

type Session struct {
	sessions.Session
}

func LoadSession(c *gin.Context) *Session {
	return &Session{
		Session: sessions.Default(c),
	}
}

func (s *Session) Login(account *models.Account) error {
	s.Clear()
	s.Set(accountIDKey, account.ID)
	return s.Save()
}

func (s *Session) LogoutAccount() error {
	s.Delete(accountIDKey)
	s.Clear()
	s.Options(sessions.Options{Path: "/", MaxAge: -1})
	return s.Save()
}

// Account loads the account bound to the session, ID is 0 when there is none
func (s *Session) Account(db *gorm.DB) (account models.Account) {
	id, ok := s.Get(accountIDKey).(uint64)
	if !ok || id == 0 {
		return
	}
	account, err := models.AccountByID(db, id)
	if err != nil {
		return models.Account{}
	}
	return
}

func flashKey(kind string) string {
	return "flash_" + kind
}

// Flash queues a message for the next rendered view
func (s *Session) Flash(kind, message string) {
	queued, _ := s.Get(flashKey(kind)).([]string)
	s.Set(flashKey(kind), append(queued, message))
	_ = s.Save()
}

// Flashes pops all the queued messages
func (s *Session) Flashes() []Flash {
	result := []Flash{}
	changed := false
	for _, kind := range []string{FlashSuccess, FlashInfo, FlashError} {
		queued, _ := s.Get(flashKey(kind)).([]string)
		if len(queued) == 0 {
			continue
		}
		for _, msg := range queued {
			result = append(result, Flash{Kind: kind, Message: msg})
		}
		s.Delete(flashKey(kind))
		changed = true
	}
	if changed {
		_ = s.Save()
	}
	return result
}
