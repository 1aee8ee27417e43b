package loader_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"testing/fstest"

	"github.com/goliatone/go-mailgen/internal/content/loader"
	"github.com/goliatone/go-mailgen/pkg/content"
)

func TestLoad_File(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "data.json")
	if err := os.WriteFile(path, []byte(`{"company":{}}`), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	l := loader.New(content.NewLoaderOptions())
	doc, err := l.Load(context.Background(), content.SourceFromFile(path))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if string(doc.Raw()) != `{"company":{}}` {
		t.Fatalf("unexpected payload: %s", doc.Raw())
	}
}

func TestLoad_FileNotFound(t *testing.T) {
	l := loader.New(content.NewLoaderOptions())
	_, err := l.Load(context.Background(),
		content.SourceFromFile(filepath.Join(t.TempDir(), "missing.json")))
	if !errors.Is(err, content.ErrNotFound) {
		t.Fatalf("want ErrNotFound, got %v", err)
	}
}

func TestLoad_FS(t *testing.T) {
	options := content.NewLoaderOptions()
	options.FileSystem = fstest.MapFS{
		"data.json": &fstest.MapFile{Data: []byte(`{}`)},
	}

	l := loader.New(options)
	doc, err := l.Load(context.Background(), content.SourceFromFS("data.json"))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if string(doc.Raw()) != `{}` {
		t.Fatalf("unexpected payload: %s", doc.Raw())
	}
}

func TestLoad_HTTPDisabledByDefault(t *testing.T) {
	l := loader.New(content.NewLoaderOptions())
	_, err := l.Load(context.Background(), content.SourceFromURL("http://example.com/data.json"))
	if err == nil {
		t.Fatal("expected error when http support is disabled")
	}
}

func TestLoad_HTTP(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"company":{"name":"Acme"}}`))
	}))
	defer server.Close()

	options := content.NewLoaderOptions()
	options.AllowHTTPFallback = true

	l := loader.New(options)
	doc, err := l.Load(context.Background(), content.SourceFromURL(server.URL+"/data.json"))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if string(doc.Raw()) != `{"company":{"name":"Acme"}}` {
		t.Fatalf("unexpected payload: %s", doc.Raw())
	}
}

func TestLoad_HTTPNotFound(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}))
	defer server.Close()

	options := content.NewLoaderOptions()
	options.AllowHTTPFallback = true

	l := loader.New(options)
	_, err := l.Load(context.Background(), content.SourceFromURL(server.URL+"/missing.json"))
	if !errors.Is(err, content.ErrNotFound) {
		t.Fatalf("want ErrNotFound, got %v", err)
	}
}
