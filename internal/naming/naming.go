package naming

import (
	"strings"
	"unicode"
)

// CamelToSnake converts a CamelCase string to snake_case.
// Consecutive uppercase letters (acronyms) are kept together:
// "ID" → "id", "UserID" → "user_id", "HTTPServer" → "http_server".
func CamelToSnake(s string) string {
	runes := []rune(s)
	var b strings.Builder
	for i, r := range runes {
		if !unicode.IsUpper(r) {
			b.WriteRune(r)
			continue
		}
		if i > 0 {
			prev := runes[i-1]
			next := rune(0)
			if i+1 < len(runes) {
				next = runes[i+1]
			}
			if unicode.IsLower(prev) || unicode.IsDigit(prev) || (unicode.IsUpper(prev) && unicode.IsLower(next)) {
				b.WriteByte('_')
			}
		}
		b.WriteRune(unicode.ToLower(r))
	}
	return b.String()
}

// BaseName strips any package or namespace qualifier from a type
// identifier: "blog.Post", "github.com/x/blog.Post" and `App\Models\Post`
// all become "Post".
func BaseName(identifier string) string {
	if i := strings.LastIndexAny(identifier, `./\`); i >= 0 {
		return identifier[i+1:]
	}
	return identifier
}

// ForeignKey returns the conventional foreign key column for a type
// identifier: "blog.Post" → "post_id", "UserProfile" → "user_profile_id".
func ForeignKey(identifier string) string {
	return CamelToSnake(BaseName(identifier)) + "_id"
}
