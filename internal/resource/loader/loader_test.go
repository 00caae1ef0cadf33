package loader_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"testing/fstest"

	"github.com/goliatone/go-payflow/internal/resource/loader"
	"github.com/goliatone/go-payflow/pkg/resource"
)

func TestLoad_File(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "intro.html")
	if err := os.WriteFile(path, []byte("<p>{{ introTitle }}</p>"), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	l := loader.New(resource.LoaderOptions{})

	frag, err := l.Load(context.Background(), resource.SourceFromFile(path))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if frag.Text() != "<p>{{ introTitle }}</p>" {
		t.Fatalf("unexpected fragment: %q", frag.Text())
	}
}

func TestLoad_FS(t *testing.T) {
	fsys := fstest.MapFS{
		"steps/payment.html": {Data: []byte("<form></form>")},
	}

	l := loader.New(resource.LoaderOptions{FileSystem: fsys})

	frag, err := l.Load(context.Background(), resource.SourceFromFS("steps/payment.html"))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if frag.Text() != "<form></form>" {
		t.Fatalf("unexpected fragment: %q", frag.Text())
	}
}

func TestLoad_HTTP(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("remote"))
	}))
	defer server.Close()

	l := loader.New(resource.LoaderOptions{AllowHTTPFallback: true})

	frag, err := l.Load(context.Background(), resource.SourceFromURL(server.URL))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if frag.Text() != "remote" {
		t.Fatalf("unexpected fragment: %q", frag.Text())
	}
}

func TestLoad_HTTPDisabled(t *testing.T) {
	l := loader.New(resource.LoaderOptions{})

	if _, err := l.Load(context.Background(), resource.SourceFromURL("http://example.com/tpl")); err == nil {
		t.Fatalf("expected an error when http support is disabled")
	}
}

func TestLoad_HTTPBadStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "nope", http.StatusNotFound)
	}))
	defer server.Close()

	l := loader.New(resource.LoaderOptions{AllowHTTPFallback: true})

	if _, err := l.Load(context.Background(), resource.SourceFromURL(server.URL)); err == nil {
		t.Fatalf("expected an error for a non-success status")
	}
}

func TestLoad_NilSource(t *testing.T) {
	l := loader.New(resource.LoaderOptions{})

	if _, err := l.Load(context.Background(), nil); err == nil {
		t.Fatalf("expected an error for a nil source")
	}
}
