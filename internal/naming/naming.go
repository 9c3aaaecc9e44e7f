package naming

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/1ean267/nexustack-sub001/oaserrors"
)

// RenameRule is a case convention applied to field and variant names.
type RenameRule int

const (
	// None keeps names unchanged.
	None RenameRule = iota
	// LowerCase joins the words in lowercase: "createdat".
	LowerCase
	// UpperCase joins the words in uppercase: "CREATEDAT".
	UpperCase
	// PascalCase capitalizes every word: "CreatedAt".
	PascalCase
	// CamelCase is PascalCase with a lowercase first word: "createdAt".
	CamelCase
	// SnakeCase joins lowercase words with underscores: "created_at".
	SnakeCase
	// ScreamingSnakeCase joins uppercase words with underscores: "CREATED_AT".
	ScreamingSnakeCase
	// KebabCase joins lowercase words with hyphens: "created-at".
	KebabCase
	// ScreamingKebabCase joins uppercase words with hyphens: "CREATED-AT".
	ScreamingKebabCase
)

var ruleNames = []struct {
	name string
	rule RenameRule
}{
	{"lowercase", LowerCase},
	{"UPPERCASE", UpperCase},
	{"PascalCase", PascalCase},
	{"camelCase", CamelCase},
	{"snake_case", SnakeCase},
	{"SCREAMING_SNAKE_CASE", ScreamingSnakeCase},
	{"kebab-case", KebabCase},
	{"SCREAMING-KEBAB-CASE", ScreamingKebabCase},
}

// Casers are stateful and must not be shared between goroutines.
func lower(s string) string { return cases.Lower(language.Und).String(s) }
func upper(s string) string { return cases.Upper(language.Und).String(s) }
func title(s string) string { return cases.Title(language.Und, cases.NoLower).String(s) }

// Rules returns the spellings accepted by ParseRenameRule.
func Rules() []string {
	out := make([]string, 0, len(ruleNames))
	for _, r := range ruleNames {
		out = append(out, r.name)
	}
	return out
}

// ParseRenameRule parses the conventional spelling of a rule. The empty
// string and "none" select None.
func ParseRenameRule(s string) (RenameRule, error) {
	if s == "" || s == "none" {
		return None, nil
	}
	for _, r := range ruleNames {
		if r.name == s {
			return r.rule, nil
		}
	}
	return None, &oaserrors.ConfigError{
		Option:  "rename",
		Value:   s,
		Message: "expected one of " + strings.Join(Rules(), ", "),
	}
}

// String returns the conventional spelling of r.
func (r RenameRule) String() string {
	for _, n := range ruleNames {
		if n.rule == r {
			return n.name
		}
	}
	return "none"
}

// Apply converts name according to r.
func (r RenameRule) Apply(name string) string {
	if r == None || name == "" {
		return name
	}
	words := Words(name)
	if len(words) == 0 {
		return name
	}
	switch r {
	case LowerCase:
		return lower(strings.Join(words, ""))
	case UpperCase:
		return upper(strings.Join(words, ""))
	case PascalCase:
		return join(words, "", title)
	case CamelCase:
		return lower(words[0]) + join(words[1:], "", title)
	case SnakeCase:
		return join(words, "_", lower)
	case ScreamingSnakeCase:
		return join(words, "_", upper)
	case KebabCase:
		return join(words, "-", lower)
	case ScreamingKebabCase:
		return join(words, "-", upper)
	default:
		return name
	}
}

func join(words []string, sep string, f func(string) string) string {
	out := make([]string, len(words))
	for i, w := range words {
		out[i] = f(w)
	}
	return strings.Join(out, sep)
}

// Words splits an identifier into words. Underscores, hyphens, dots,
// slashes and spaces separate words, as does a change from lower to upper
// case. A run of capitals is one word, except for its last letter when a
// lowercase letter follows: "HTTPServer" is "HTTP" and "Server". Digits stay
// with the preceding word.
func Words(s string) []string {
	runes := []rune(s)
	var (
		words []string
		cur   []rune
	)
	flush := func() {
		if len(cur) > 0 {
			words = append(words, string(cur))
			cur = cur[:0]
		}
	}
	for i, r := range runes {
		switch {
		case r == '_' || r == '-' || r == '.' || r == '/' || unicode.IsSpace(r):
			flush()
			continue
		case unicode.IsUpper(r) && len(cur) > 0:
			prev := cur[len(cur)-1]
			nextLower := i+1 < len(runes) && unicode.IsLower(runes[i+1])
			if unicode.IsLower(prev) || unicode.IsDigit(prev) || (unicode.IsUpper(prev) && nextLower) {
				flush()
			}
		}
		cur = append(cur, r)
	}
	flush()
	return words
}
