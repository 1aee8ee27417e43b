package content_test

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-mailgen/pkg/content"
)

func fixedClock(year int) content.Clock {
	return func() time.Time {
		return time.Date(year, time.June, 1, 0, 0, 0, 0, time.UTC)
	}
}

func TestDecodeDataset_JSON(t *testing.T) {
	doc := content.MustNewDocument(
		content.SourceFromFile("email-data.json"),
		[]byte(`{"company":{"name":"Acme"},"current_year":2024}`),
	)

	dataset, err := content.DecodeDataset(doc, fixedClock(2030))
	if err != nil {
		t.Fatalf("decode: %v", err)
	}

	if got := dataset.CompanyName(); got != "Acme" {
		t.Fatalf("company name: want Acme, got %q", got)
	}
	if got := dataset["current_year"]; got != float64(2024) {
		t.Fatalf("explicit current_year must win over the clock, got %v", got)
	}
}

func TestDecodeDataset_DefaultsCurrentYearFromClock(t *testing.T) {
	doc := content.MustNewDocument(
		content.SourceFromFile("email-data.json"),
		[]byte(`{"company":{"name":"Acme"}}`),
	)

	dataset, err := content.DecodeDataset(doc, fixedClock(2024))
	if err != nil {
		t.Fatalf("decode: %v", err)
	}

	if got := dataset["current_year"]; got != 2024 {
		t.Fatalf("current_year: want 2024, got %v", got)
	}
}

func TestDecodeDataset_YAMLEquivalentToJSON(t *testing.T) {
	jsonDoc := content.MustNewDocument(
		content.SourceFromFile("data.json"),
		[]byte(`{"company":{"name":"Acme"},"articles":[{"title":"One","description":"first"}]}`),
	)
	yamlDoc := content.MustNewDocument(
		content.SourceFromFile("data.yaml"),
		[]byte("company:\n  name: Acme\narticles:\n  - title: One\n    description: first\n"),
	)

	clock := fixedClock(2024)
	fromJSON, err := content.DecodeDataset(jsonDoc, clock)
	if err != nil {
		t.Fatalf("decode json: %v", err)
	}
	fromYAML, err := content.DecodeDataset(yamlDoc, clock)
	if err != nil {
		t.Fatalf("decode yaml: %v", err)
	}

	if diff := cmp.Diff(fromJSON.CompanyName(), fromYAML.CompanyName()); diff != "" {
		t.Fatalf("company name mismatch (-json +yaml):\n%s", diff)
	}
	jsonArticles := fromJSON.Articles()
	yamlArticles := fromYAML.Articles()
	if len(jsonArticles) != 1 || len(yamlArticles) != 1 {
		t.Fatalf("article counts: json=%d yaml=%d", len(jsonArticles), len(yamlArticles))
	}
	jsonTitle := jsonArticles[0].(map[string]any)["title"]
	yamlTitle := yamlArticles[0].(map[string]any)["title"]
	if jsonTitle != yamlTitle {
		t.Fatalf("article title mismatch: json=%v yaml=%v", jsonTitle, yamlTitle)
	}
}

func TestDecodeDataset_InvalidFormat(t *testing.T) {
	doc := content.MustNewDocument(
		content.SourceFromFile("broken.json"),
		[]byte(`{"company":`),
	)

	_, err := content.DecodeDataset(doc, fixedClock(2024))
	if !errors.Is(err, content.ErrInvalidFormat) {
		t.Fatalf("want ErrInvalidFormat, got %v", err)
	}
	if got := err.Error(); !strings.Contains(got, "broken.json") {
		t.Fatalf("error must name the offending location, got %q", got)
	}
}

func TestDatasetClone_IsShallowCopy(t *testing.T) {
	base := content.Dataset{"a": 1}
	clone := base.Clone()
	clone["b"] = 2

	if _, ok := base["b"]; ok {
		t.Fatal("mutating the clone must not touch the original")
	}
}
