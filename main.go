package main

import (
	"html/template"
	"log"
	"strings"
	"time"

	"github.com/sumkai16/E1PersonalRecord/config"
	"github.com/sumkai16/E1PersonalRecord/db"
	"github.com/sumkai16/E1PersonalRecord/handlers"
	"github.com/sumkai16/E1PersonalRecord/models"
	"github.com/sumkai16/E1PersonalRecord/storage"
	"github.com/sumkai16/E1PersonalRecord/utils"
	"github.com/sumkai16/E1PersonalRecord/web"

	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/gzip"
	"github.com/gin-contrib/sessions"
	gormsessions "github.com/gin-contrib/sessions/gorm"
	"github.com/gin-gonic/autotls"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

const (
	sessionCookieName     = "e1session"
	sessionExpirationTime = 86400 // flash messages only, one day is plenty
)

func init() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found or error loading .env file:", err)
	}
}

func main() {
	dbh, err := db.Connect()
	if err != nil {
		log.Fatalf("Database connection failed: %v", err)
	}
	if err := models.Init(dbh); err != nil {
		log.Fatalf("Migration failed: %v", err)
	}
	store, err := storage.Init(dbh)
	if err != nil {
		log.Fatalf("Storage init failed: %v", err)
	}

	if !config.DEBUG_MODE {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.Default()
	router.HandleMethodNotAllowed = true // GET on the submit endpoints answers 405, not 404
	_ = router.SetTrustedProxies([]string{})
	if config.DEBUG_MODE {
		router.Use(utils.ErrorLogMiddleware)
	}
	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST"},
		AllowHeaders:     []string{"Origin", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// HTML templates
	router.SetFuncMap(template.FuncMap{
		"str": func(p *string) string {
			if p == nil {
				return ""
			}
			return *p
		},
		"add": func(a, b int) int {
			return a + b
		},
		"fmtdate": func(unix int64) string {
			if unix == 0 {
				return ""
			}
			return time.Unix(unix, 0).Format("2 Jan 2006 15:04")
		},
	})
	router.LoadHTMLGlob("templates/*.tmpl")

	cookieStore := gormsessions.NewStore(dbh, true, []byte(config.SESSION_KEY))
	cookieStore.Options(sessions.Options{Path: "/", MaxAge: sessionExpirationTime})
	router.Use(sessions.Sessions(sessionCookieName, cookieStore))
	if !config.DEBUG_MODE {
		router.Use(gzip.Gzip(gzip.DefaultCompression, gzip.WithExcludedPaths([]string{"/uploads"})))
	}
	router.Use((&utils.CacheRouter{CacheTime: utils.CacheNoCache}).Handler()) // No cache by default

	h := web.NewHandler(dbh, store)
	api := handlers.NewPersonAPI(dbh)

	// Form pages
	router.GET("/", h.FormView)
	router.POST("/submit", h.Submit)
	router.GET("/persons", h.PersonList)
	router.GET("/persons/:id/edit", h.EditForm)
	router.POST("/persons/update", h.Update)
	router.POST("/persons/delete", h.Delete)
	// Stored signature files
	router.GET("/uploads/:name", h.ServeUpload)
	// Read-only JSON API
	router.GET("/api/persons", api.List)
	router.GET("/api/persons/:id", api.Get)

	if config.TLS_DOMAINS != "" {
		err = autotls.Run(router, strings.Split(config.TLS_DOMAINS, ",")...)
	} else {
		err = router.Run(config.BIND_ADDRESS)
	}
	log.Fatalf("Server stopped: %v", err)
}
