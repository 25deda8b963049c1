package stream

import "strings"

// minParagraphSegments is the paragraph count below which the text is
// cut into roughly equal thirds instead.
const minParagraphSegments = 3

// Split segments a rendered reply for timed replay: paragraph breaks
// when they yield enough segments, otherwise thirds.
func Split(text string) []string {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil
	}

	var paragraphs []string
	for _, p := range strings.Split(text, "\n\n") {
		if p = strings.TrimSpace(p); p != "" {
			paragraphs = append(paragraphs, p)
		}
	}
	if len(paragraphs) >= minParagraphSegments {
		return paragraphs
	}
	return thirds(text)
}

// thirds cuts the text into up to three spans, breaking at the nearest
// space past each third so words stay intact.
func thirds(text string) []string {
	runes := []rune(text)
	target := len(runes) / 3
	if target == 0 {
		return []string{text}
	}

	var segments []string
	start := 0
	for len(segments) < 2 && start < len(runes) {
		cut := start + target
		if cut >= len(runes) {
			break
		}
		for cut < len(runes) && runes[cut] != ' ' && runes[cut] != '\n' {
			cut++
		}
		seg := strings.TrimSpace(string(runes[start:cut]))
		if seg != "" {
			segments = append(segments, seg)
		}
		start = cut
	}
	if rest := strings.TrimSpace(string(runes[start:])); rest != "" {
		segments = append(segments, rest)
	}
	return segments
}

// spans cuts live provider text into fixed-size rune spans.
func spans(text string, size int) []string {
	if size <= 0 {
		return []string{text}
	}
	runes := []rune(text)
	var out []string
	for start := 0; start < len(runes); start += size {
		end := start + size
		if end > len(runes) {
			end = len(runes)
		}
		out = append(out, string(runes[start:end]))
	}
	return out
}

// Sanitize strips forbidden markers from an outgoing segment: carriage
// returns and any verbatim echo of the originating user message.
func Sanitize(segment, userMessage string) string {
	segment = strings.ReplaceAll(segment, "\r", "")
	marker := strings.TrimSpace(userMessage)
	if len(marker) >= 4 {
		segment = strings.ReplaceAll(segment, marker, "")
	}
	return segment
}
