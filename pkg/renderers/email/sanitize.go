package email

import (
	"sync"

	"github.com/microcosm-cc/bluemonday"
)

var (
	emailPolicyOnce sync.Once
	emailPolicyInst *bluemonday.Policy
)

// emailPolicy allows the structural markup email clients understand on top of
// the UGC baseline, so sanitized output still renders as a styled newsletter.
func emailPolicy() *bluemonday.Policy {
	emailPolicyOnce.Do(func() {
		policy := bluemonday.UGCPolicy()
		policy.AllowElements(
			"html", "head", "title", "meta", "style", "body",
			"table", "thead", "tbody", "tfoot", "tr", "td", "th",
			"center", "footer", "header", "section",
		)
		policy.AllowAttrs("style", "class", "align", "valign", "width", "height").Globally()
		policy.AllowAttrs(
			"border", "cellpadding", "cellspacing", "bgcolor", "role",
		).OnElements("table", "td", "th", "tr")
		policy.AllowAttrs("charset", "name", "content", "http-equiv").OnElements("meta")
		policy.AllowStandardURLs()

		emailPolicyInst = policy
	})
	return emailPolicyInst
}
