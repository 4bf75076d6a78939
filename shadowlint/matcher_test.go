package shadowlint

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_MatchRule_Matches(t *testing.T) {
	tests := []struct {
		name    string
		pattern string
		text    string
		want    bool
	}{
		{
			name:    "identical literal pattern and text match",
			pattern: "/admin",
			text:    "/admin",
			want:    true,
		},
		{
			name:    "empty pattern matches empty text by equality",
			pattern: "",
			text:    "",
			want:    true,
		},
		{
			name:    "empty pattern matches nothing else",
			pattern: "",
			text:    "/admin",
			want:    false,
		},
		{
			name:    "trailing double star covers nested paths",
			pattern: "/admin/**",
			text:    "/admin/users/disable",
			want:    true,
		},
		{
			name:    "trailing double star covers the bare prefix",
			pattern: "/admin**",
			text:    "/admin",
			want:    true,
		},
		{
			name:    "trailing double star with slash does not cover the parent path",
			pattern: "/admin/**",
			text:    "/admin",
			want:    false,
		},
		{
			name:    "trailing double star with non-matching prefix",
			pattern: "/admin/**",
			text:    "/public/index",
			want:    false,
		},
		{
			name:    "single star matches within one segment",
			pattern: "/a*",
			text:    "/axyz",
			want:    true,
		},
		{
			name:    "single star does not cross the separator",
			pattern: "/a*",
			text:    "/a/b",
			want:    false,
		},
		{
			name:    "star in the middle of a segment",
			pattern: "/res*.png",
			text:    "/resource.png",
			want:    true,
		},
		{
			name:    "question mark matches exactly one character",
			pattern: "/a?c",
			text:    "/abc",
			want:    true,
		},
		{
			name:    "question mark does not match the separator",
			pattern: "/a?c",
			text:    "/a/c",
			want:    false,
		},
		{
			name:    "question mark does not match two characters",
			pattern: "/a?c",
			text:    "/abbc",
			want:    false,
		},
		{
			name:    "double star in the middle crosses separators",
			pattern: "/a/**/b",
			text:    "/a/x/y/b",
			want:    true,
		},
		{
			name:    "path variable syntax is not glob matched",
			pattern: "/user/{id:[0-9]+}",
			text:    "/user/123",
			want:    false,
		},
		{
			name:    "text containing glob syntax is incomparable",
			pattern: "/admin/**",
			text:    "/admin/*",
			want:    false,
		},
		{
			name:    "text containing a path variable is incomparable",
			pattern: "/user/**",
			text:    "/user/{id}",
			want:    false,
		},
		{
			name:    "regexp metacharacters in the pattern are literal",
			pattern: "/a.b*",
			text:    "/a.bc",
			want:    true,
		},
		{
			name:    "escaped dot does not match arbitrary characters",
			pattern: "/a.b*",
			text:    "/aXbc",
			want:    false,
		},
		{
			name:    "plus sign in the pattern is literal",
			pattern: "/c++/*",
			text:    "/c++/intro",
			want:    true,
		},
		{
			name:    "prefix match alone is not enough without wildcards",
			pattern: "/admin",
			text:    "/admin/users",
			want:    false,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			rule := Compile(tc.pattern)
			assert.Equal(t, tc.want, rule.Matches(tc.text),
				"Compile(%q).Matches(%q)", tc.pattern, tc.text)
		})
	}
}

func Test_antPatternToRegexp(t *testing.T) {
	tests := []struct {
		pattern string
		want    string
	}{
		{pattern: "/admin", want: "/admin"},
		{pattern: "/a?c", want: "/a[^/]c"},
		{pattern: "/a*", want: "/a[^/]*"},
		{pattern: "/a/**", want: "/a/.*"},
		{pattern: "/a/**/b/*", want: "/a/.*/b/[^/]*"},
		{pattern: "/a.b+c", want: `/a\.b\+c`},
		{pattern: "/a$b", want: `/a\$b`},
		{pattern: "/a$**", want: `/a\$.*`},
		{pattern: "/a\x00*", want: "/a\x00[^/]*"},
		{pattern: "/a\x00**", want: "/a\x00.*"},
		{pattern: `/a\b`, want: `/a\\b`},
	}

	for _, tc := range tests {
		t.Run(tc.pattern, func(t *testing.T) {
			assert.Equal(t, tc.want, antPatternToRegexp(tc.pattern))
		})
	}
}

func Test_escapeRegexpChars(t *testing.T) {
	assert.Equal(t, `/a\.b\(c\)\[d\]\^e\$f\|g\+h`, escapeRegexpChars("/a.b(c)[d]^e$f|g+h"))
	assert.Equal(t, "/plain/path", escapeRegexpChars("/plain/path"))
}

func Test_MatchRule_Expression(t *testing.T) {
	assert.Equal(t, "/a/.*", Compile("/a/**").Expression())
	assert.Empty(t, Compile("").Expression())
	assert.Empty(t, Compile("/user/{id:[0-9]+}").Expression())
}

func Test_MatchRule_Pattern(t *testing.T) {
	assert.Equal(t, "/a/**", Compile("/a/**").Pattern())
}
