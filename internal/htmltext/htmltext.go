// Package htmltext extracts the visible text of an HTML page, stripping
// scripts, styles, and navigation boilerplate. The result is compact enough
// to hand to an agent as page context.
package htmltext

import (
	"regexp"
	"strings"

	"golang.org/x/net/html"
)

// MaxChars is the default extraction length cap. Long pages are truncated
// so agent prompts stay inside model context limits.
const MaxChars = 12000

// skipTags subtrees contribute no visible prose.
var skipTags = map[string]bool{
	"script":   true,
	"style":    true,
	"nav":      true,
	"footer":   true,
	"head":     true,
	"header":   true,
	"noscript": true,
}

// Runs of three or more whitespace characters mark paragraph-level gaps.
var whitespaceRuns = regexp.MustCompile(`\s{3,}`)

// ExtractDefault extracts visible text with the default length cap.
func ExtractDefault(source string) string {
	return Extract(source, MaxChars)
}

// Extract returns the visible text of an HTML document, truncated to
// maxChars characters. Text inside skip-tag subtrees is dropped, remaining
// fragments are joined with single spaces, and interior whitespace runs are
// collapsed to paragraph breaks. Malformed HTML never fails: the tokenizer
// recovers and extraction keeps whatever was collected.
func Extract(source string, maxChars int) string {
	z := html.NewTokenizer(strings.NewReader(source))

	var texts []string
	depth := 0

	for {
		switch z.Next() {
		case html.ErrorToken:
			// EOF or unrecoverable input; either way, emit what we have.
			return finish(texts, maxChars)

		case html.StartTagToken:
			name, _ := z.TagName()
			if skipTags[string(name)] {
				depth++
			}

		case html.EndTagToken:
			name, _ := z.TagName()
			if skipTags[string(name)] && depth > 0 {
				depth--
			}

		case html.SelfClosingTagToken:
			// A self-closed skip tag opens and closes in one token, so the
			// depth is unchanged.

		case html.TextToken:
			if depth > 0 {
				continue
			}
			if text := strings.TrimSpace(string(z.Text())); text != "" {
				texts = append(texts, text)
			}
		}
	}
}

func finish(texts []string, maxChars int) string {
	out := whitespaceRuns.ReplaceAllString(strings.Join(texts, " "), "\n\n")
	if maxChars <= 0 {
		return out
	}
	runes := []rune(out)
	if len(runes) <= maxChars {
		return out
	}
	return string(runes[:maxChars])
}
