package main

import (
	"net/http"

	"github.com/sirupsen/logrus"
	"github.com/supabase-community/supabase-go"

	"fintrack/internal/charts"
	"fintrack/internal/config"
	"fintrack/internal/repository"
	"fintrack/internal/server"
	"fintrack/internal/service"
)

func main() {
	config.Init()

	cfg, err := config.Load()
	if err != nil {
		logrus.Fatal(err)
	}

	client, err := supabase.NewClient(cfg.SupabaseURL, cfg.SupabaseKey, &supabase.ClientOptions{})
	if err != nil {
		logrus.Fatal(err)
	}

	repo := repository.NewSupabaseRepository(client)
	tracker := service.NewTracker(repo)
	authService := service.NewAuthService(repository.NewGoTrueAuth(client.Auth), tracker)

	router := server.NewRouter(
		server.NewAuthHandler(authService),
		server.NewDashboardHandler(authService, tracker, charts.NewGenerator()),
	)

	logrus.WithField("port", cfg.Port).Info("starting server")
	if err := http.ListenAndServe(":"+cfg.Port, router); err != nil {
		logrus.Fatal(err)
	}
}
