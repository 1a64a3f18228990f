package dto

import "github.com/microcosm-cc/bluemonday"

// renderPolicy only shapes HTML handed to clients; stored text is never passed through it.
var renderPolicy = bluemonday.UGCPolicy()

// safeHTML renders user-authored text as markup that is safe to inject into a page.
func safeHTML(value string) string {
	if value == "" {
		return ""
	}
	return renderPolicy.Sanitize(value)
}
