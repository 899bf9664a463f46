// Command articleflow runs the article production engine and its
// operator HTTP API.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"articleflow"
	"articleflow/config"
	"articleflow/export"
	"articleflow/imagegen"
	"articleflow/llm"
	"articleflow/notify"
	"articleflow/server"
	"articleflow/store"
)

func main() {
	configPath := flag.String("config", "", "path to the YAML config file")
	listen := flag.String("listen", "", "HTTP listen address (overrides config)")
	debug := flag.Bool("debug", false, "enable debug logs")
	flag.Parse()

	if err := run(*configPath, *listen, *debug); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(configPath, listen string, debug bool) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	if listen != "" {
		cfg.Listen = listen
	}

	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)

	st, err := store.OpenSQLite(cfg.DatabasePath)
	if err != nil {
		return fmt.Errorf("open database: %w", err)
	}
	defer st.Close()

	textClient, err := llm.NewOpenAI(cfg.LLM.APIKey, cfg.LLM.BaseURL)
	if err != nil {
		return fmt.Errorf("text provider: %w", err)
	}
	imageClient, err := imagegen.NewDALLE(cfg.Images.APIKey, cfg.Images.BaseURL)
	if err != nil {
		return fmt.Errorf("image provider: %w", err)
	}
	saver := &imagegen.Saver{Root: cfg.AssetsDir, BaseURL: cfg.AssetsBaseURL}

	notifier := buildNotifier(cfg, logger)

	coord := articleflow.NewCoordinator(st, textClient, &articleflow.CoordinatorOptions{
		Model:    cfg.LLM.Model,
		Provider: cfg.LLM.Provider,
		Notifier: notifier,
		Logger:   logger,
	})
	batch := articleflow.NewImageBatch(st, imageClient, saver, &articleflow.ImageBatchOptions{
		Size:     cfg.Images.Size,
		Quality:  cfg.Images.Quality,
		Notifier: notifier,
		Logger:   logger,
	})

	opts := &server.Options{
		Notifier:      notifier,
		AssetsDir:     cfg.AssetsDir,
		AssetsBaseURL: cfg.AssetsBaseURL,
		Logger:        logger,
	}
	if cfg.WordPress.BaseURL != "" {
		opts.WordPress = &export.WordPress{
			BaseURL:     cfg.WordPress.BaseURL,
			Username:    cfg.WordPress.Username,
			AppPassword: cfg.WordPress.AppPassword,
			Status:      cfg.WordPress.Status,
		}
	}
	srv, err := server.New(st, coord, batch, opts)
	if err != nil {
		return err
	}

	logger.Info("starting",
		"listen", cfg.Listen,
		"database", cfg.DatabasePath,
		"model", cfg.LLM.Model)
	return http.ListenAndServe(cfg.Listen, srv.Routes())
}

func buildNotifier(cfg config.Config, logger *slog.Logger) notify.Notifier {
	notifiers := []notify.Notifier{notify.NewLogNotifier(logger)}
	if cfg.Webhook.URL != "" {
		var headers map[string]string
		if cfg.Webhook.Token != "" {
			headers = map[string]string{"Authorization": "Bearer " + cfg.Webhook.Token}
		}
		notifiers = append(notifiers, notify.NewWebhookNotifier(cfg.Webhook.URL, headers))
	}
	if len(notifiers) == 1 {
		return notifiers[0]
	}
	return notify.NewMultiNotifier(notifiers...)
}
