package area

import (
	"regexp"
	"strings"

	"diistore/lib/textutil"
)

// Filter keeps the records where at least one field contains query, ignoring
// case. An empty query returns data itself. Order is preserved.
func Filter(data Dataset, query string) Dataset {
	if query == "" {
		return data
	}
	lower := strings.ToLower(query)

	filtered := Dataset{}
	for _, r := range data {
		if textutil.ContainsAny(lower, r.Province, r.Regency, r.AreaLabel) {
			filtered = append(filtered, r)
		}
	}
	return filtered
}

// Segment is a piece of highlighted text.
type Segment struct {
	Text  string `json:"text"`
	Match bool   `json:"match"`
}

// Highlight splits text around every case-insensitive occurrence of query.
// The query is matched literally; characters like "(" or "*" carry no
// pattern meaning. Empty segments are omitted.
func Highlight(text, query string) []Segment {
	if query == "" {
		return []Segment{{Text: text}}
	}

	re := regexp.MustCompile("(?i)" + regexp.QuoteMeta(query))
	matches := re.FindAllStringIndex(text, -1)
	if len(matches) == 0 {
		return []Segment{{Text: text}}
	}

	segments := make([]Segment, 0, len(matches)*2+1)
	last := 0
	for _, m := range matches {
		if m[0] > last {
			segments = append(segments, Segment{Text: text[last:m[0]]})
		}
		segments = append(segments, Segment{Text: text[m[0]:m[1]], Match: true})
		last = m[1]
	}
	if last < len(text) {
		segments = append(segments, Segment{Text: text[last:]})
	}
	return segments
}
