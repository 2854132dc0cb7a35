package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/cors"
	"github.com/spf13/pflag"

	"taskflow-backend/internal/ai"
	"taskflow-backend/internal/analytics"
	"taskflow-backend/internal/auth"
	"taskflow-backend/internal/config"
	"taskflow-backend/internal/seed"
	"taskflow-backend/internal/tasks"
	"taskflow-backend/internal/users"
)

func main() {
	cfg := config.Load()

	flags := pflag.NewFlagSet("taskflow-api", pflag.ContinueOnError)
	cfg.BindFlags(flags)
	if err := flags.Parse(os.Args[1:]); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return
		}
		log.Fatalf("flags: %v", err)
	}

	if cfg.UsesDevSecret() {
		log.Printf("[WARN] JWT_SECRET not set, using development secret")
	}

	roster, err := users.FromSeed(seed.Default())
	if err != nil {
		log.Fatalf("roster: %v", err)
	}
	store, err := tasks.NewStore()
	if err != nil {
		log.Fatalf("task store: %v", err)
	}

	llm := ai.New(cfg.OpenAIKey, cfg.OpenAIModel, cfg.OpenAIBaseURL)
	if !llm.Configured() {
		log.Printf("[WARN] OPENAI_API_KEY not set, insights are disabled")
	}
	insights := ai.NewInsights(llm)

	secret := []byte(cfg.JWTSecret)
	authMW := auth.New(secret, roster)

	mux := http.NewServeMux()

	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("OK"))
	})

	// ----- AUTH -----
	mux.HandleFunc("GET /users", auth.UsersHandler(roster))
	mux.HandleFunc("POST /auth/login", auth.LoginHandler(roster, secret))
	mux.HandleFunc("GET /auth/me", authMW.Wrap(auth.MeHandler()))
	mux.HandleFunc("POST /auth/logout", authMW.Wrap(auth.LogoutHandler()))

	// ----- TASKS -----
	mux.HandleFunc("GET /tasks", authMW.Wrap(tasks.GetTasksHandler(store)))
	mux.HandleFunc("GET /board", authMW.Wrap(tasks.GetBoardHandler(store)))
	mux.HandleFunc("POST /tasks", authMW.Wrap(tasks.CreateTaskHandler(store)))
	mux.HandleFunc("PUT /tasks/{id}", authMW.Wrap(tasks.UpdateTaskHandler(store)))
	mux.HandleFunc("PUT /tasks/{id}/status", authMW.Wrap(tasks.SetTaskStatusHandler(store)))
	mux.HandleFunc("DELETE /tasks/{id}", authMW.WrapScrumMaster(tasks.DeleteTaskHandler(store)))
	mux.HandleFunc("POST /admin/reset", authMW.WrapScrumMaster(tasks.ResetHandler(store)))

	// ----- ANALYTICS -----
	mux.HandleFunc("GET /analytics", authMW.WrapScrumMaster(analytics.DashboardHandler(store, roster)))
	mux.HandleFunc("POST /analytics/insights", authMW.WrapScrumMaster(ai.InsightsHandler(insights, store, roster)))

	c := cors.New(cors.Options{
		AllowedOrigins:   cfg.CORSOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Content-Type", "Authorization"},
		AllowCredentials: true,
	})

	srv := &http.Server{
		Addr:              cfg.Addr,
		Handler:           c.Handler(mux),
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		<-ctx.Done()
		log.Println("Shutting down...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			log.Printf("[WARN] shutdown: %v", err)
		}
	}()

	log.Printf("API server is running on %s", cfg.Addr)
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Fatalf("server: %v", err)
	}
}
