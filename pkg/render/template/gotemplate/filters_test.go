package gotemplate

import (
	"testing"

	"github.com/flosch/pongo2/v6"
)

func TestFormatDate(t *testing.T) {
	cases := []struct {
		name  string
		value string
		mode  string
		want  string
	}{
		{name: "month year", value: "2024-03", mode: "month_year", want: "March 2024"},
		{name: "full date", value: "2024-03-15", mode: "full_date", want: "March 15, 2024"},
		{name: "unparseable falls through", value: "not-a-date", mode: "month_year", want: "not-a-date"},
		{name: "wrong layout falls through", value: "2024-03-15", mode: "month_year", want: "2024-03-15"},
		{name: "unknown mode falls through", value: "2024-03", mode: "epoch", want: "2024-03"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := FormatDate(tc.value, tc.mode); got != tc.want {
				t.Fatalf("FormatDate(%q, %q): want %q, got %q", tc.value, tc.mode, tc.want, got)
			}
		})
	}
}

func TestTruncateWords(t *testing.T) {
	cases := []struct {
		name  string
		text  string
		limit int
		want  string
	}{
		{name: "over limit", text: "a b c d e", limit: 3, want: "a b c ..."},
		{name: "under limit unchanged", text: "a b", limit: 5, want: "a b"},
		{name: "at limit unchanged", text: "a b c", limit: 3, want: "a b c"},
		{name: "collapses whitespace when truncating", text: "a  b\tc d", limit: 2, want: "a b ..."},
		{name: "zero limit unchanged", text: "a b c", limit: 0, want: "a b c"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := TruncateWords(tc.text, tc.limit); got != tc.want {
				t.Fatalf("TruncateWords(%q, %d): want %q, got %q", tc.text, tc.limit, tc.want, got)
			}
		})
	}
}

func TestTruncateWordsFilter_NonPositiveParamUsesDefaultLimit(t *testing.T) {
	long := "w w w w w w w w w w w w w w w w w w w w w w"

	out, ferr := filterTruncateWords(pongo2.AsValue(long), pongo2.AsValue(0))
	if ferr != nil {
		t.Fatalf("filter: %v", ferr)
	}
	if got, want := out.String(), TruncateWords(long, defaultTruncateLimit); got != want {
		t.Fatalf("zero param must fall back to the default limit:\nwant %q\ngot  %q", want, got)
	}

	out, ferr = filterTruncateWords(pongo2.AsValue(long), nil)
	if ferr != nil {
		t.Fatalf("filter: %v", ferr)
	}
	if got, want := out.String(), TruncateWords(long, defaultTruncateLimit); got != want {
		t.Fatalf("missing param must fall back to the default limit:\nwant %q\ngot  %q", want, got)
	}
}
