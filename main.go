package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"portal/assets"
	"portal/config"
	"portal/db"
	"portal/handlers"
	"portal/mail"
	"portal/models"
	"portal/panel"
	"portal/storage"
	"portal/web"

	gormsessions "github.com/gin-contrib/sessions/gorm"
	"github.com/gin-gonic/autotls"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func main() {
	promote := flag.String("promote", "", "grant admin rights to the account with this email and exit")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(1)
	}
	var logger *zap.Logger
	if cfg.DebugMode {
		logger, err = zap.NewDevelopment()
	} else {
		logger, err = zap.NewProduction()
		gin.SetMode(gin.ReleaseMode)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()
	log := logger.Sugar()

	database, err := db.Open(cfg.DatabaseURL, cfg.SQLiteFile, cfg.DebugMode)
	if err != nil {
		log.Fatalw("open database", "error", err)
	}
	if err = models.Init(database); err != nil {
		log.Fatalw("migrate", "error", err)
	}

	if *promote != "" {
		if err = models.AccountPromote(database, *promote); err != nil {
			log.Fatalw("promote", "email", *promote, "error", err)
		}
		log.Infow("account promoted to admin", "email", *promote)
		return
	}

	store, err := storage.New(&cfg)
	if err != nil {
		log.Fatalw("storage", "error", err)
	}
	h := &handlers.Handlers{
		DB:        database,
		Storage:   store,
		Assets:    &assets.Manager{Storage: store, Log: log},
		Mailer:    mail.NewSMTPMailer(&cfg),
		Log:       log,
		PortalURL: cfg.PortalURL,
		Preselection: panel.Layout{
			Root:         cfg.StaticDir,
			Clients:      cfg.PreselectionClients,
			Preselection: cfg.PreselectionDir,
		},
	}
	sessionStore := gormsessions.NewStore(database, true, []byte(cfg.SessionSecret))
	router := web.NewRouter(h, sessionStore, web.Options{Debug: cfg.DebugMode, Origins: cfg.CORSOrigins})

	if domains := cfg.TLSDomainList(); len(domains) > 0 {
		log.Infow("serving with autotls", "domains", strings.Join(domains, ","))
		err = autotls.Run(router, domains...)
	} else {
		log.Infow("serving", "address", cfg.BindAddress)
		err = router.Run(cfg.BindAddress)
	}
	log.Fatalw("server stopped", "error", err)
}
