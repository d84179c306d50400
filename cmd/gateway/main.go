package main

import (
	"context"
	"log"
	"net/http"
	"time"

	api "github.com/gradetrack/gradetrack/internal/api/http"
	auth "github.com/gradetrack/gradetrack/internal/auth/middleware"
	"github.com/gradetrack/gradetrack/internal/config"
	"github.com/gradetrack/gradetrack/internal/db"
	"github.com/gradetrack/gradetrack/internal/journal"
	"github.com/gradetrack/gradetrack/internal/track"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

func main() {
	cfg := config.FromEnv()

	// --- DB ---
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	dbh, err := db.Open(ctx, db.Driver(cfg.DBDriver), cfg.DBDSN)
	if err != nil {
		log.Fatalf("db open failed: %v", err)
	}
	jrepo := journal.NewRepo(dbh)
	store := track.NewSQLStore(dbh, cfg.DBDriver, jrepo)

	// --- Auth (local JWT, single user) ---
	authSvc := auth.NewAuthService(cfg.AuthSecret, cfg.User, cfg.PassHash)

	// --- Router ---
	r := chi.NewRouter()
	r.Use(middleware.RequestID, middleware.RealIP, middleware.Logger, middleware.Recoverer)
	r.Use(middleware.Timeout(30 * time.Second))

	origins := cfg.CORSOriginsOffline
	if cfg.Mode == config.ModeOnline {
		origins = cfg.CORSOriginsOnline
	}
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   origins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Authorization", "Content-Type"},
		ExposedHeaders:   []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	r.Post("/auth/login", auth.LoginHandler(authSvc))

	// Protected API
	r.Group(func(pr chi.Router) {
		pr.Use(auth.JWTMiddleware(authSvc))

		pr.Post("/classes", api.PutClassHandler(store))
		pr.Get("/classes", api.ListClassesHandler(store))
		pr.Get("/classes/{classID}", api.GetClassHandler(store))
		pr.Delete("/classes/{classID}", api.DeleteClassHandler(store))
		pr.Get("/classes/{classID}/overview", api.ClassOverviewHandler(store))

		pr.Post("/classes/{classID}/categories", api.PutCategoryHandler(store))
		pr.Get("/classes/{classID}/categories", api.ListCategoriesHandler(store))
		pr.Delete("/categories/{categoryID}", api.DeleteCategoryHandler(store))

		pr.Post("/classes/{classID}/items", api.PutItemHandler(store))
		pr.Get("/classes/{classID}/items", api.ListItemsHandler(store))
		pr.Post("/items/{itemID}/score", api.ScoreItemHandler(store))
		pr.Delete("/items/{itemID}", api.DeleteItemHandler(store))

		pr.Get("/gpa", api.GPAHandler(store))
		pr.Post("/gpa/whatif", api.WhatIfGPAHandler(store))
		pr.Get("/report", api.ReportHandler(store))
		pr.Get("/activity", api.ActivityHandler(jrepo))

		pr.Post("/sessions", api.AddSessionHandler(store))
		pr.Get("/sessions", api.ListSessionsHandler(store))
		pr.Post("/expenses", api.AddExpenseHandler(store))
		pr.Get("/expenses", api.ListExpensesHandler(store))
		pr.Post("/moods", api.AddMoodHandler(store))
		pr.Get("/moods", api.ListMoodsHandler(store))
	})

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(200) })
	r.Get("/readyz", func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(200) })

	log.Printf("listening on %s (mode=%s, db=%s)", cfg.HTTPAddr, cfg.Mode, cfg.DBDriver)
	log.Fatal(http.ListenAndServe(cfg.HTTPAddr, r))
}
