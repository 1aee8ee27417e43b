package content

import (
	"context"
	"fmt"
)

// Profile carries per-recipient personalization data. All keys are optional;
// templates and the merger only ever read name, email, interests, and plan.
type Profile map[string]any

// Name returns the recipient name when present.
func (p Profile) Name() string {
	if p == nil {
		return ""
	}
	name, _ := p["name"].(string)
	return name
}

// Interests returns the interest keywords when present. Both []any payloads
// (decoded JSON/YAML) and []string values are accepted.
func (p Profile) Interests() []string {
	if p == nil {
		return nil
	}
	switch values := p["interests"].(type) {
	case []string:
		return values
	case []any:
		out := make([]string, 0, len(values))
		for _, value := range values {
			if s, ok := value.(string); ok && s != "" {
				out = append(out, s)
			}
		}
		return out
	default:
		return nil
	}
}

// ProfileResult collapses a fallible profile load into an always-succeeding
// value. When the source was missing or malformed, Profile is empty and
// Diagnostic explains why, so the caller can surface a warning and proceed.
type ProfileResult struct {
	Profile    Profile
	Diagnostic string
}

// DecodeProfile parses a loaded document into a Profile, using the same
// format detection rules as DecodeDataset.
func DecodeProfile(doc Document) (Profile, error) {
	var data map[string]any
	if err := decodePayload(doc, &data); err != nil {
		return nil, err
	}
	return Profile(data), nil
}

// LoadProfile fetches and decodes a personalization profile. Unlike dataset
// loading, failures degrade to an empty profile with a diagnostic instead of
// an error: a render call never fails because personalization is unavailable.
func LoadProfile(ctx context.Context, loader Loader, src Source) ProfileResult {
	if loader == nil || src == nil {
		return ProfileResult{Profile: Profile{}}
	}

	doc, err := loader.Load(ctx, src)
	if err != nil {
		return ProfileResult{
			Profile:    Profile{},
			Diagnostic: fmt.Sprintf("user data %s unavailable: %v; using defaults", src.Location(), err),
		}
	}

	profile, err := DecodeProfile(doc)
	if err != nil {
		return ProfileResult{
			Profile:    Profile{},
			Diagnostic: fmt.Sprintf("user data %s malformed: %v; using defaults", src.Location(), err),
		}
	}

	return ProfileResult{Profile: profile}
}
