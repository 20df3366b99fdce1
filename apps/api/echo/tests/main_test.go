package tests

import (
	"context"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	. "github.com/dineshpandey3618-web/Rank1/apps/api/echo"
	"github.com/dineshpandey3618-web/Rank1/core"
	"github.com/dineshpandey3618-web/Rank1/core/appconfig"
	"github.com/dineshpandey3618-web/Rank1/core/catalog"
	"github.com/dineshpandey3618-web/Rank1/core/news"
	"github.com/dineshpandey3618-web/Rank1/core/session"
	"github.com/dineshpandey3618-web/Rank1/core/user"
	emailsvc "github.com/dineshpandey3618-web/Rank1/services/email"
	logsvc "github.com/dineshpandey3618-web/Rank1/services/logger"
	"github.com/dineshpandey3618-web/Rank1/storage/database/inmem"
)

var (
	conf    *core.Config
	app     Server
	usrRepo user.Repository
	catRepo catalog.Repository
	cfgRepo appconfig.Repository

	errMissingToken = httpErr{Error: "missing or malformed jwt"}
)

func TestMain(m *testing.M) {
	conf = core.NewConfig()
	conf.Debug = false
	conf.TestMode = true
	conf.AutoLoginAfterSignup = true

	logger := logsvc.NewConsoleLogger(log.New(io.Discard, "", 0))

	// a canned feed so the news endpoint has something to chew on
	feedSrv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		items := ""
		for i := 1; i <= 6; i++ {
			items += fmt.Sprintf(
				"<item><title>Headline %d</title><link>https://example.com/news/%d</link></item>", i, i)
		}
		_, _ = w.Write([]byte(`<?xml version="1.0" encoding="UTF-8"?>` +
			`<rss version="2.0"><channel><title>Education News</title>` + items + `</channel></rss>`))
	}))
	defer feedSrv.Close()
	conf.NewsFeedURL = feedSrv.URL

	// set up DB & repos
	db := inmem.Open()
	usrRepo = inmem.NewUserRepository(db)
	catRepo = inmem.NewCatalogRepository(db)
	cfgRepo = inmem.NewAppConfigRepository(db)

	// set up services
	mailSvc := emailsvc.NewConsoleServiceMock(conf)
	usrSvc := user.NewService(usrRepo, mailSvc, conf)
	catalogSvc := catalog.NewService(catRepo)
	configSvc := appconfig.NewService(cfgRepo, logger)
	newsSvc := news.NewService(conf, logger)

	if err := configSvc.SeedDefaults(context.Background()); err != nil {
		fmt.Printf("SeedDefaults(): %v", err)
		os.Exit(1)
	}

	// set up server
	app = NewServer(
		ServerDeps{
			Conf:       conf,
			Logger:     logger,
			UserSvc:    usrSvc,
			CatalogSvc: catalogSvc,
			ConfigSvc:  configSvc,
			NewsSvc:    newsSvc,
			Sessions:   session.NewManager(),
		},
	)

	os.Exit(m.Run())
}
