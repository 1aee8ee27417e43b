package content

import (
	"encoding/json"
	"errors"
	"fmt"
	"path"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Sentinel errors callers branch on when a render request cannot proceed.
var (
	// ErrNotFound indicates the base data source does not exist.
	ErrNotFound = errors.New("content: data source not found")
	// ErrInvalidFormat indicates the payload could not be decoded.
	ErrInvalidFormat = errors.New("content: invalid data format")
)

// Clock supplies the current time to decode steps that default calendar
// values, keeping them deterministic under test.
type Clock func() time.Time

// Dataset is the base, non-personalized data handed to the template engine.
// Recognized top-level keys are company, newsletter, articles, feature,
// promo, and current_year; none are enforced beyond what templates reference.
type Dataset map[string]any

// Articles returns the articles sequence when present, nil otherwise.
func (d Dataset) Articles() []any {
	if d == nil {
		return nil
	}
	articles, _ := d["articles"].([]any)
	return articles
}

// CompanyName returns company.name when present, or the empty string.
func (d Dataset) CompanyName() string {
	if d == nil {
		return ""
	}
	company, _ := d["company"].(map[string]any)
	name, _ := company["name"].(string)
	return name
}

// Clone returns a shallow copy of the dataset.
func (d Dataset) Clone() Dataset {
	if d == nil {
		return nil
	}
	out := make(Dataset, len(d))
	for key, value := range d {
		out[key] = value
	}
	return out
}

// DecodeDataset parses a loaded document into a Dataset. The payload format
// is selected from the source extension (.yaml/.yml decode as YAML, anything
// else as JSON). When the payload omits current_year, the clock supplies it.
func DecodeDataset(doc Document, clock Clock) (Dataset, error) {
	var data map[string]any
	if err := decodePayload(doc, &data); err != nil {
		return nil, err
	}

	if clock == nil {
		clock = time.Now
	}
	if _, ok := data["current_year"]; !ok {
		data["current_year"] = clock().Year()
	}

	return Dataset(data), nil
}

func decodePayload(doc Document, out *map[string]any) error {
	raw := doc.Raw()
	if len(raw) == 0 {
		return fmt.Errorf("%w: %s: empty payload", ErrInvalidFormat, doc.Location())
	}

	var err error
	if isYAMLLocation(doc.Location()) {
		err = yaml.Unmarshal(raw, out)
	} else {
		err = json.Unmarshal(raw, out)
	}
	if err != nil {
		return fmt.Errorf("%w: %s: %v", ErrInvalidFormat, doc.Location(), err)
	}
	if *out == nil {
		*out = map[string]any{}
	}
	return nil
}

func isYAMLLocation(location string) bool {
	switch strings.ToLower(path.Ext(location)) {
	case ".yaml", ".yml":
		return true
	default:
		return false
	}
}
