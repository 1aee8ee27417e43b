package gotemplate

import (
	"strings"
	"time"

	"github.com/flosch/pongo2/v6"
)

const defaultTruncateLimit = 20

// FormatDate renders a date string in a human-readable form. Mode month_year
// expects YYYY-MM, mode full_date expects YYYY-MM-DD. Parse failures and
// unknown modes return the input unchanged rather than failing the render.
func FormatDate(value, mode string) string {
	switch mode {
	case "month_year":
		parsed, err := time.Parse("2006-01", value)
		if err != nil {
			return value
		}
		return parsed.Format("January 2006")
	case "full_date":
		parsed, err := time.Parse("2006-01-02", value)
		if err != nil {
			return value
		}
		return parsed.Format("January 2, 2006")
	default:
		return value
	}
}

// TruncateWords returns text unchanged when its word count is within limit;
// otherwise it joins the first limit words and appends an ellipsis marker.
// Non-positive limits disable truncation entirely.
func TruncateWords(text string, limit int) string {
	if limit <= 0 {
		return text
	}
	words := strings.Fields(text)
	if len(words) <= limit {
		return text
	}
	return strings.Join(words[:limit], " ") + " ..."
}

func registerDefaultFilters() {
	if !pongo2.FilterExists("format_date") {
		_ = pongo2.RegisterFilter("format_date", filterFormatDate)
	}
	if !pongo2.FilterExists("truncate_words") {
		_ = pongo2.RegisterFilter("truncate_words", filterTruncateWords)
	}
}

func filterFormatDate(in *pongo2.Value, param *pongo2.Value) (*pongo2.Value, *pongo2.Error) {
	mode := "month_year"
	if param != nil && !param.IsNil() {
		if s := strings.TrimSpace(param.String()); s != "" {
			mode = s
		}
	}
	return pongo2.AsValue(FormatDate(in.String(), mode)), nil
}

// Missing or non-positive filter params fall back to the default limit.
func filterTruncateWords(in *pongo2.Value, param *pongo2.Value) (*pongo2.Value, *pongo2.Error) {
	limit := defaultTruncateLimit
	if param != nil && !param.IsNil() {
		if n := param.Integer(); n > 0 {
			limit = n
		}
	}
	return pongo2.AsValue(TruncateWords(in.String(), limit)), nil
}
