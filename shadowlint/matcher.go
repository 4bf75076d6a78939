package shadowlint

import (
	"regexp"
	"strings"
)

// matcherSpecialChar flags text that is itself ant-style glob syntax rather
// than a plain path literal.
var matcherSpecialChar = regexp.MustCompile(`[?*{]`)

// regexpMetaChar is the set of regexp metacharacters that may appear in a
// pattern and must be escaped before wildcard substitution.
var regexpMetaChar = regexp.MustCompile(`[.(){}+|^$\[\]\\]`)

// wildcardToken matches one wildcard of the escaped pattern. "**" comes first
// in the alternation so it is never read as two single stars, which removes
// the need for a placeholder token that could collide with pattern content.
var wildcardToken = regexp.MustCompile(`\*\*|[*?]`)

// MatchRule is a compiled ant-style URL pattern. It tests whether a literal
// path is covered by the pattern, using the same wildcard semantics as Spring
// Security request matchers:
//
//	?   matches exactly one character, except "/"
//	*   matches zero or more characters, except "/"
//	**  matches zero or more characters, including "/"
//
// A pattern containing a path variable such as "{id:[0-9]+}" is not a glob and
// never matches, and a candidate text that itself contains glob syntax is
// treated as incomparable. Both cases err toward "no match".
type MatchRule struct {
	pattern         string
	hasPathVariable bool
	expression      string
	re              *regexp.Regexp
}

// Compile builds a MatchRule for the given ant-style pattern. It never fails:
// a pattern that cannot be translated yields a rule that matches nothing
// beyond the exact-equality and trailing-"**" prefix cases.
func Compile(pattern string) MatchRule {
	r := MatchRule{
		pattern:         pattern,
		hasPathVariable: strings.Contains(pattern, "{"),
	}
	if pattern == "" || r.hasPathVariable {
		return r
	}
	r.expression = antPatternToRegexp(pattern)
	// the translation escapes every metacharacter it does not insert itself,
	// so compilation only fails on pathological input; treat that as "matches
	// nothing" rather than surfacing an error
	r.re, _ = regexp.Compile(`\A(?:` + r.expression + `)\z`)
	return r
}

// Pattern returns the source pattern string this rule was compiled from.
func (r MatchRule) Pattern() string {
	return r.pattern
}

// Expression returns the derived regular expression, or "" when the pattern
// was not translatable (empty or containing a path variable).
func (r MatchRule) Expression() string {
	return r.expression
}

// Matches reports whether text is covered by the rule's pattern. Only exact
// equality may match before the incomparability checks: a text that is itself
// glob syntax must stay incomparable even against a trailing-"**" prefix.
func (r MatchRule) Matches(text string) bool {
	if r.pattern == text {
		return true
	}
	if r.pattern == "" || r.hasPathVariable || matcherSpecialChar.MatchString(text) {
		return false
	}
	// "/foo/**" covers "/foo/" and everything below it
	if strings.HasSuffix(r.pattern, "**") && strings.HasPrefix(text, r.pattern[:len(r.pattern)-2]) {
		return true
	}
	return r.re != nil && r.re.MatchString(text)
}

// antPatternToRegexp translates an ant-style pattern into an equivalent
// regular expression over the full text. Escaping runs first, so every "*" and
// "?" left in the escaped pattern is a wildcard; rewriting them in one pass
// never re-reads escaped user text as freshly inserted wildcard syntax.
func antPatternToRegexp(pattern string) string {
	return wildcardToken.ReplaceAllStringFunc(escapeRegexpChars(pattern), func(token string) string {
		switch token {
		case "**":
			return ".*"
		case "*":
			return "[^/]*"
		default:
			return "[^/]"
		}
	})
}

func escapeRegexpChars(pattern string) string {
	return regexpMetaChar.ReplaceAllString(pattern, `\$0`)
}
