package text_test

import (
	"context"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/goliatone/go-mailgen/pkg/content"
	"github.com/goliatone/go-mailgen/pkg/render"
	"github.com/goliatone/go-mailgen/pkg/renderers/text"
)

func sampleDataset() content.Dataset {
	return content.Dataset{
		"company": map[string]any{"name": "Acme"},
		"newsletter": map[string]any{
			"greeting": "Hello Sam, welcome back to Acme",
		},
		"articles": []any{
			map[string]any{"title": "Scaling tips", "description": "keep it simple"},
		},
		"current_year": 2024,
	}
}

func TestRenderer_Identity(t *testing.T) {
	renderer, err := text.New()
	if err != nil {
		t.Fatalf("new renderer: %v", err)
	}
	if renderer.Name() != "text" {
		t.Fatalf("unexpected name: %s", renderer.Name())
	}
	if renderer.ContentType() != "text/plain; charset=utf-8" {
		t.Fatalf("unexpected content type: %s", renderer.ContentType())
	}
}

func TestRenderer_DefaultNewsletterTemplate(t *testing.T) {
	renderer, err := text.New()
	if err != nil {
		t.Fatalf("new renderer: %v", err)
	}

	out, err := renderer.Render(context.Background(), sampleDataset(), render.RenderOptions{})
	if err != nil {
		t.Fatalf("render: %v", err)
	}

	plain := string(out)
	for _, want := range []string{
		"Hello Sam, welcome back to Acme",
		"* Scaling tips",
		"(c) 2024 Acme",
	} {
		if !strings.Contains(plain, want) {
			t.Fatalf("output missing %q:\n%s", want, plain)
		}
	}
	if strings.Contains(plain, "<") {
		t.Fatalf("plaintext output must not contain markup:\n%s", plain)
	}
}

func TestRenderer_GreetingTemplate(t *testing.T) {
	renderer, err := text.New()
	if err != nil {
		t.Fatalf("new renderer: %v", err)
	}

	dataset := sampleDataset()
	dataset["user"] = map[string]any{"name": "Sam", "plan": "pro"}

	out, err := renderer.Render(context.Background(), dataset, render.RenderOptions{
		Template: "templates/greeting.tpl",
	})
	if err != nil {
		t.Fatalf("render: %v", err)
	}

	plain := string(out)
	for _, want := range []string{"Hello Sam,", "Welcome to Acme.", "Your pro plan is active."} {
		if !strings.Contains(plain, want) {
			t.Fatalf("output missing %q:\n%s", want, plain)
		}
	}
}

func TestRenderer_CustomTemplates(t *testing.T) {
	files := fstest.MapFS{
		"banner.tpl": &fstest.MapFile{Data: []byte("== {{ company.name }} ==")},
	}
	renderer, err := text.New(text.WithTemplatesFS(files), text.WithDefaultTemplate("banner.tpl"))
	if err != nil {
		t.Fatalf("new renderer: %v", err)
	}

	out, err := renderer.Render(context.Background(), sampleDataset(), render.RenderOptions{})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if got := string(out); got != "== Acme ==" {
		t.Fatalf("unexpected output: %q", got)
	}
}
