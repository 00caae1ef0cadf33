// Command payflow-server is a demo server: it bootstraps a flow from a
// container HTML file and serves rendered steps over HTTP, which is handy for
// eyeballing template fragments and flow schema documents during development.
package main

import (
	"context"
	"errors"
	"flag"
	"html"
	"net/http"
	"net/url"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/charmbracelet/log"

	"github.com/goliatone/go-payflow/pkg/bootstrap"
	"github.com/goliatone/go-payflow/pkg/flow"
)

func main() {
	addr := flag.String("addr", ":8080", "listen address")
	container := flag.String("container", "container.html", "HTML file holding the wizard container element")
	templates := flag.String("templates", "", "directory holding template fragments")
	schemas := flag.String("schemas", "", "directory holding flow schema documents")
	flag.Parse()

	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "payflow",
	})

	file, err := os.Open(*container)
	if err != nil {
		logger.Fatal("open container", "path", *container, "error", err)
	}

	cfg, err := bootstrap.FromReader(file)
	_ = file.Close()
	if err != nil {
		logger.Fatal("read container configuration", "error", err)
	}

	var options []flow.Option
	if *templates != "" {
		options = append(options, flow.WithTemplateFS(os.DirFS(*templates)))
	}
	if *schemas != "" {
		options = append(options, flow.WithSchemaFS(os.DirFS(*schemas)))
	}

	wizard, err := flow.New(cfg, options...)
	if err != nil {
		logger.Fatal("build flow", "error", err)
	}
	logger.Info("flow ready", "steps", wizard.Steps(), "current", wizard.CurrentStep())

	mux := http.NewServeMux()
	mux.HandleFunc("GET /steps/{name}", func(w http.ResponseWriter, r *http.Request) {
		name := r.PathValue("name")
		rendererName := r.URL.Query().Get("renderer")

		rendered, err := wizard.RenderStep(r.Context(), name, rendererName)
		if err != nil {
			logger.Warn("render step", "step", name, "error", err)
			http.Error(w, err.Error(), http.StatusNotFound)
			return
		}

		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		_, _ = w.Write(rendered)
	})
	mux.HandleFunc("GET /", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		_, _ = w.Write([]byte("<ul>"))
		for _, name := range wizard.Steps() {
			escaped := html.EscapeString(name)
			_, _ = w.Write([]byte(`<li><a href="/steps/` + url.PathEscape(name) + `">` + escaped + `</a></li>`))
		}
		_, _ = w.Write([]byte("</ul>"))
	})

	server := &http.Server{
		Addr:              *addr,
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = server.Shutdown(shutdownCtx)
	}()

	logger.Info("listening", "addr", *addr)
	if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.Fatal("server stopped", "error", err)
	}
}
