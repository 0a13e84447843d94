package audit

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var separators = strings.NewReplacer("_", " ", "-", " ")

// Titleize turns an attribute name or key path into a display label.
// Underscores and dashes become spaces, "." separates path segments, and
// every word in a segment gets an upper-case first letter with the rest
// lower-cased: "metadata: owner_email.domain" -> "Metadata: Owner Email.Domain".
func Titleize(s string) string {
	// cases.Caser keeps state, so one per call.
	caser := cases.Title(language.English)

	segments := strings.Split(separators.Replace(s), ".")
	for i, seg := range segments {
		words := strings.Fields(seg)
		for j, w := range words {
			words[j] = caser.String(w)
		}
		segments[i] = strings.Join(words, " ")
	}
	return strings.Join(segments, ".")
}

// FormatValue renders a raw attribute value for an EventChange. nil stays
// nil; maps and slices are rendered as JSON with sorted keys.
func FormatValue(v any) *string {
	if v == nil {
		return nil
	}
	s := formatString(v)
	return &s
}

// formatOrEmpty renders v, mapping nil to "".
func formatOrEmpty(v any) *string {
	if v == nil {
		s := ""
		return &s
	}
	return FormatValue(v)
}

func formatString(v any) string {
	switch x := v.(type) {
	case string:
		return x
	case *string:
		if x == nil {
			return ""
		}
		return *x
	case []byte:
		return string(x)
	case json.RawMessage:
		return string(x)
	case bool:
		return strconv.FormatBool(x)
	case int:
		return strconv.Itoa(x)
	case int64:
		return strconv.FormatInt(x, 10)
	case float64:
		return strconv.FormatFloat(x, 'f', -1, 64)
	case fmt.Stringer:
		return x.String()
	case map[string]any, map[string]string, []any, []string:
		b, err := json.Marshal(x)
		if err != nil {
			return fmt.Sprint(x)
		}
		return string(b)
	default:
		return fmt.Sprint(x)
	}
}
