package mailgen_test

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	mailgen "github.com/goliatone/go-mailgen"
	"github.com/goliatone/go-mailgen/pkg/content"
	"github.com/goliatone/go-mailgen/pkg/orchestrator"
)

func fixedClock(year int) content.Clock {
	return func() time.Time {
		return time.Date(year, time.June, 1, 0, 0, 0, 0, time.UTC)
	}
}

func TestRenderHTML(t *testing.T) {
	dir := t.TempDir()
	dataPath := filepath.Join(dir, "email-data.json")
	payload := `{
  "company": {"name": "Acme"},
  "newsletter": {"greeting": "Hello there"},
  "articles": [{"title": "Scaling tips", "description": "keep it simple"}]
}`
	if err := os.WriteFile(dataPath, []byte(payload), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}
	profilePath := filepath.Join(dir, "user.json")
	if err := os.WriteFile(profilePath, []byte(`{"name":"Sam"}`), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	out, err := mailgen.RenderHTML(context.Background(),
		content.SourceFromFile(dataPath),
		content.SourceFromFile(profilePath),
		orchestrator.WithClock(fixedClock(2024)),
	)
	if err != nil {
		t.Fatalf("render: %v", err)
	}

	html := string(out)
	for _, want := range []string{
		"Hello Sam, welcome back to Acme",
		"Scaling tips",
		"&copy; 2024 Acme.",
	} {
		if !strings.Contains(html, want) {
			t.Fatalf("output missing %q:\n%s", want, html)
		}
	}
}

func TestRenderDataset_TextRenderer(t *testing.T) {
	dataset := mailgen.Dataset{
		"company":    map[string]any{"name": "Acme"},
		"newsletter": map[string]any{"greeting": "Hello there"},
		"articles": []any{
			map[string]any{"title": "Scaling tips", "description": "keep it simple"},
		},
	}
	profile := mailgen.Profile{"name": "Sam"}

	out, err := mailgen.RenderDataset(context.Background(), dataset, profile, "text",
		orchestrator.WithClock(fixedClock(2024)))
	if err != nil {
		t.Fatalf("render: %v", err)
	}

	plain := string(out)
	if !strings.Contains(plain, "Hello Sam, welcome back to Acme") {
		t.Fatalf("greeting missing:\n%s", plain)
	}
	if !strings.Contains(plain, "(c) 2024 Acme") {
		t.Fatalf("footer missing:\n%s", plain)
	}
}
