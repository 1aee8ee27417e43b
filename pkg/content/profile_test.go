package content_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"

	internalloader "github.com/goliatone/go-mailgen/internal/content/loader"
	"github.com/goliatone/go-mailgen/pkg/content"
)

func TestProfileInterests(t *testing.T) {
	cases := []struct {
		name    string
		profile content.Profile
		want    []string
	}{
		{
			name:    "decoded json shape",
			profile: content.Profile{"interests": []any{"go", "scaling"}},
			want:    []string{"go", "scaling"},
		},
		{
			name:    "string slice shape",
			profile: content.Profile{"interests": []string{"go"}},
			want:    []string{"go"},
		},
		{
			name:    "absent",
			profile: content.Profile{},
			want:    nil,
		},
		{
			name:    "wrong type",
			profile: content.Profile{"interests": "go"},
			want:    nil,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if diff := cmp.Diff(tc.want, tc.profile.Interests()); diff != "" {
				t.Fatalf("interests (-want +got):\n%s", diff)
			}
		})
	}
}

func TestLoadProfile_Valid(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "user.json")
	if err := os.WriteFile(path, []byte(`{"name":"Sam","plan":"pro"}`), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	loader := internalloader.New(content.NewLoaderOptions())
	result := content.LoadProfile(context.Background(), loader, content.SourceFromFile(path))

	if result.Diagnostic != "" {
		t.Fatalf("unexpected diagnostic: %q", result.Diagnostic)
	}
	if got := result.Profile.Name(); got != "Sam" {
		t.Fatalf("name: want Sam, got %q", got)
	}
}

func TestLoadProfile_MissingFileDegradesToEmpty(t *testing.T) {
	loader := internalloader.New(content.NewLoaderOptions())
	result := content.LoadProfile(context.Background(), loader,
		content.SourceFromFile(filepath.Join(t.TempDir(), "nope.json")))

	if len(result.Profile) != 0 {
		t.Fatalf("want empty profile, got %v", result.Profile)
	}
	if result.Diagnostic == "" {
		t.Fatal("missing profile must carry a diagnostic")
	}
}

func TestLoadProfile_MalformedDegradesToEmpty(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "user.json")
	if err := os.WriteFile(path, []byte(`{not json`), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	loader := internalloader.New(content.NewLoaderOptions())
	result := content.LoadProfile(context.Background(), loader, content.SourceFromFile(path))

	if len(result.Profile) != 0 {
		t.Fatalf("want empty profile, got %v", result.Profile)
	}
	if result.Diagnostic == "" {
		t.Fatal("malformed profile must carry a diagnostic")
	}
}
