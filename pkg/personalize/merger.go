// Package personalize combines a base content dataset with per-recipient
// profile data, producing the final dataset handed to the template engine.
package personalize

import (
	"fmt"
	"strings"

	"github.com/goliatone/go-mailgen/pkg/content"
)

const defaultCompanyName = "TechFlow Solutions"

// Option customises merger behaviour.
type Option func(*Merger)

// WithFallbackCompany overrides the company name used in greetings when the
// dataset carries no company.name value.
func WithFallbackCompany(name string) Option {
	return func(m *Merger) {
		trimmed := strings.TrimSpace(name)
		if trimmed != "" {
			m.fallbackCompany = trimmed
		}
	}
}

// Merger produces a merged dataset from base content and an optional profile.
// Merging never fails; absent profile fields simply skip the corresponding
// personalization step.
type Merger struct {
	fallbackCompany string
}

// New constructs a Merger applying any provided options.
func New(options ...Option) *Merger {
	m := &Merger{
		fallbackCompany: defaultCompanyName,
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(m)
	}
	return m
}

// Merge returns a copy of base enriched with the profile: the profile itself
// under the user key, a rewritten newsletter greeting when the profile names
// the recipient, and articles reordered by interest match. The caller's base
// dataset is never mutated; sub-maps are copied before editing so base can be
// reused across merges.
func (m *Merger) Merge(base content.Dataset, profile content.Profile) content.Dataset {
	merged := base.Clone()
	if merged == nil {
		merged = content.Dataset{}
	}
	if len(profile) == 0 {
		return merged
	}

	merged["user"] = map[string]any(profile)

	if name := profile.Name(); name != "" {
		m.rewriteGreeting(merged, name)
	}

	if interests := profile.Interests(); len(interests) > 0 {
		reorderArticles(merged, interests)
	}

	return merged
}

// rewriteGreeting copies the newsletter sub-map before editing so the
// caller's original mapping stays untouched.
func (m *Merger) rewriteGreeting(merged content.Dataset, name string) {
	company := merged.CompanyName()
	if company == "" {
		company = m.fallbackCompany
	}

	newsletter := map[string]any{}
	if existing, ok := merged["newsletter"].(map[string]any); ok {
		newsletter = make(map[string]any, len(existing)+1)
		for key, value := range existing {
			newsletter[key] = value
		}
	}
	newsletter["greeting"] = fmt.Sprintf("Hello %s, welcome back to %s", name, company)
	merged["newsletter"] = newsletter
}

// reorderArticles partitions articles into interest matches followed by the
// rest, preserving relative order within each partition. Matching is a naive
// case-insensitive substring test against title and description.
func reorderArticles(merged content.Dataset, interests []string) {
	articles := merged.Articles()
	if len(articles) == 0 {
		return
	}

	lowered := make([]string, 0, len(interests))
	for _, interest := range interests {
		if interest = strings.ToLower(strings.TrimSpace(interest)); interest != "" {
			lowered = append(lowered, interest)
		}
	}
	if len(lowered) == 0 {
		return
	}

	prioritized := make([]any, 0, len(articles))
	remaining := make([]any, 0, len(articles))
	for _, article := range articles {
		if matchesInterests(article, lowered) {
			prioritized = append(prioritized, article)
		} else {
			remaining = append(remaining, article)
		}
	}

	merged["articles"] = append(prioritized, remaining...)
}

func matchesInterests(article any, interests []string) bool {
	record, ok := article.(map[string]any)
	if !ok {
		return false
	}
	title, _ := record["title"].(string)
	description, _ := record["description"].(string)
	title = strings.ToLower(title)
	description = strings.ToLower(description)

	for _, interest := range interests {
		if strings.Contains(title, interest) || strings.Contains(description, interest) {
			return true
		}
	}
	return false
}
