package lesson

import "strings"

const (
	openFence  = "```json"
	closeFence = "```"
)

// StripFences removes a single pair of markdown code-fence markers that
// some models wrap around JSON output. The opening fence must lead the
// response and the closing fence must trail it; anything else is left
// untouched. Responses without fences pass through unchanged.
func StripFences(text string) string {
	text = strings.TrimSpace(text)

	if strings.HasPrefix(text, openFence) {
		text = strings.TrimSpace(text[len(openFence):])
	} else if strings.HasPrefix(text, closeFence) {
		text = strings.TrimSpace(text[len(closeFence):])
	}
	if strings.HasSuffix(text, closeFence) {
		text = strings.TrimSpace(text[:len(text)-len(closeFence)])
	}
	return text
}
