package render_test

import (
	"context"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-mailgen/pkg/content"
	"github.com/goliatone/go-mailgen/pkg/render"
)

type stubRenderer struct {
	name string
}

func (s stubRenderer) Name() string        { return s.name }
func (s stubRenderer) ContentType() string { return "text/plain" }
func (s stubRenderer) Render(context.Context, content.Dataset, render.RenderOptions) ([]byte, error) {
	return nil, nil
}

func TestRegistry_RegisterAndGet(t *testing.T) {
	registry := render.NewRegistry()
	if err := registry.Register(stubRenderer{name: "email"}); err != nil {
		t.Fatalf("register: %v", err)
	}

	renderer, err := registry.Get("email")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if renderer.Name() != "email" {
		t.Fatalf("unexpected renderer: %s", renderer.Name())
	}
}

func TestRegistry_DuplicateNameRejected(t *testing.T) {
	registry := render.NewRegistry()
	if err := registry.Register(stubRenderer{name: "email"}); err != nil {
		t.Fatalf("register: %v", err)
	}
	if err := registry.Register(stubRenderer{name: "email"}); err == nil {
		t.Fatal("expected duplicate registration to fail")
	}
}

func TestRegistry_ListSorted(t *testing.T) {
	registry := render.NewRegistry()
	registry.MustRegister(stubRenderer{name: "text"})
	registry.MustRegister(stubRenderer{name: "email"})

	if diff := cmp.Diff([]string{"email", "text"}, registry.List()); diff != "" {
		t.Fatalf("list (-want +got):\n%s", diff)
	}
	if !registry.Has("text") {
		t.Fatal("expected Has(text) to be true")
	}
}

func TestRegistry_GetUnknown(t *testing.T) {
	registry := render.NewRegistry()
	if _, err := registry.Get("nope"); err == nil {
		t.Fatal("expected error for unknown renderer")
	}
}
