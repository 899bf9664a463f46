package server

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"articleflow"
	"articleflow/export"
	"articleflow/notify"
	"articleflow/store"
)

// Server is the operator-facing HTTP surface. It holds no state of its
// own; every mutation goes through the engine and its store.
type Server struct {
	store     store.Store
	coord     *articleflow.Coordinator
	images    *articleflow.ImageBatch
	wordpress *export.WordPress
	notifier  notify.Notifier
	assetsDir string
	assetsURL string
	logger    *slog.Logger
}

// Options tune a Server. Zero values get defaults.
type Options struct {
	// WordPress enables the WordPress export endpoint. Nil disables it.
	WordPress *export.WordPress

	// Notifier receives validation and export events. Nil disables
	// notifications.
	Notifier notify.Notifier

	// AssetsDir and AssetsBaseURL serve generated images statically.
	// Both must be set to enable the route.
	AssetsDir     string
	AssetsBaseURL string

	Logger *slog.Logger
}

// New wires the HTTP surface over the engine components.
func New(st store.Store, coord *articleflow.Coordinator, images *articleflow.ImageBatch, opts *Options) (*Server, error) {
	if st == nil || coord == nil || images == nil {
		return nil, errors.New("server: store, coordinator and image batch required")
	}
	if opts == nil {
		opts = &Options{}
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &Server{
		store:     st,
		coord:     coord,
		images:    images,
		wordpress: opts.WordPress,
		notifier:  opts.Notifier,
		assetsDir: opts.AssetsDir,
		assetsURL: strings.TrimRight(opts.AssetsBaseURL, "/"),
		logger:    logger,
	}, nil
}

func (s *Server) notify(ctx context.Context, event notify.Event) {
	if s.notifier == nil {
		return
	}
	event.Timestamp = time.Now()
	if err := s.notifier.Notify(ctx, event); err != nil {
		s.logger.Warn("notification failed", "type", event.Type, "error", err)
	}
}

// Routes builds the route table.
func (s *Server) Routes() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /api/steps", s.handleStepDefinitions)

	mux.HandleFunc("POST /api/clients", s.handleClientCreate)
	mux.HandleFunc("GET /api/clients", s.handleClientList)
	mux.HandleFunc("GET /api/clients/{id}", s.handleClientGet)
	mux.HandleFunc("PUT /api/clients/{id}", s.handleClientUpdate)
	mux.HandleFunc("DELETE /api/clients/{id}", s.handleClientDelete)

	mux.HandleFunc("POST /api/projects", s.handleProjectCreate)
	mux.HandleFunc("GET /api/projects", s.handleProjectList)
	mux.HandleFunc("GET /api/projects/{id}", s.handleProjectGet)
	mux.HandleFunc("DELETE /api/projects/{id}", s.handleProjectDelete)
	mux.HandleFunc("POST /api/projects/{id}/cancel", s.handleProjectCancel)

	mux.HandleFunc("GET /api/projects/{id}/steps", s.handleStepList)
	mux.HandleFunc("GET /api/projects/{id}/steps/{step}", s.handleStepGet)
	mux.HandleFunc("PUT /api/projects/{id}/steps/{step}", s.handleStepUpdate)
	mux.HandleFunc("POST /api/projects/{id}/steps/{step}/generate", s.handleStepGenerate)
	mux.HandleFunc("POST /api/projects/{id}/steps/{step}/validate", s.handleStepValidate)

	mux.HandleFunc("GET /api/projects/{id}/images", s.handleImagesList)
	mux.HandleFunc("POST /api/projects/{id}/images/seed", s.handleImagesSeed)
	mux.HandleFunc("POST /api/projects/{id}/images/generate", s.handleImagesGenerateAll)
	mux.HandleFunc("POST /api/projects/{id}/images/{imageID}/generate", s.handleImageGenerateOne)

	mux.HandleFunc("GET /api/prompts", s.handlePromptList)
	mux.HandleFunc("GET /api/prompts/{step}", s.handlePromptGet)
	mux.HandleFunc("PUT /api/prompts/{step}", s.handlePromptSave)
	mux.HandleFunc("DELETE /api/prompts/{step}", s.handlePromptDelete)

	mux.HandleFunc("GET /api/usage/report", s.handleUsageReport)

	mux.HandleFunc("GET /api/projects/{id}/article", s.handleArticleGet)
	mux.HandleFunc("GET /api/projects/{id}/export/markdown", s.handleExportMarkdown)
	mux.HandleFunc("GET /api/projects/{id}/export/html", s.handleExportHTML)
	mux.HandleFunc("POST /api/projects/{id}/export/wordpress", s.handleExportWordPress)

	if s.assetsDir != "" && s.assetsURL != "" {
		mux.Handle("GET "+s.assetsURL+"/",
			http.StripPrefix(s.assetsURL+"/", http.FileServer(http.Dir(s.assetsDir))))
	}

	return s.logMiddleware(mux)
}

// ===== Helpers =====

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

type errResp struct {
	Error string `json:"error"`
}

// writeError maps engine and store errors to HTTP statuses: missing
// records to 404, slug and validation conflicts to 409, non-generable
// steps and empty prompt output to 422, everything else to 500.
func (s *Server) writeError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	switch {
	case store.IsNotFound(err) || errors.Is(err, articleflow.ErrStepNotFound):
		status = http.StatusNotFound
	case errors.Is(err, store.ErrSlugTaken) || articleflow.IsConflict(err):
		status = http.StatusConflict
	case errors.Is(err, articleflow.ErrStepNotGenerable) || errors.Is(err, articleflow.ErrNoImagePrompts):
		status = http.StatusUnprocessableEntity
	}
	if status == http.StatusInternalServerError {
		s.logger.Error("request failed", "error", err)
	}
	writeJSON(w, status, errResp{Error: err.Error()})
}

func badRequest(w http.ResponseWriter, msg string) {
	writeJSON(w, http.StatusBadRequest, errResp{Error: msg})
}

func stepNumber(r *http.Request) (int, error) {
	return strconv.Atoi(r.PathValue("step"))
}

// decodeBody decodes a JSON request body into v. An empty body leaves
// v untouched, so endpoints with all-optional inputs accept bare POSTs.
func decodeBody(r *http.Request, v any) error {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	return nil
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}

// Flush passes through so the event stream endpoint keeps working
// behind the middleware.
func (r *statusRecorder) Flush() {
	if f, ok := r.ResponseWriter.(http.Flusher); ok {
		f.Flush()
	}
}

func (s *Server) logMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)
		s.logger.Info("request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", rec.status,
			"duration", time.Since(start))
	})
}
