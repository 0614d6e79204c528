package shortcode

import (
	"strconv"
	"strings"
)

// ParseValue parses the inside of a bracketed directive ("type:params")
// into structured parameters. It returns ok=false when the value does not
// match the grammar; callers treat such spans as literal text rather than
// errors, so previously authored content never breaks on typos.
func ParseValue(value string) (Params, bool) {
	kind, rest, found := strings.Cut(value, ":")
	if !found {
		return Params{}, false
	}

	t := Type(kind)
	if !t.Known() {
		return Params{}, false
	}

	parts := strings.Split(rest, ",")
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}

	switch t {
	case TypeProduct:
		p := Params{Type: t, Slug: parts[0], Variant: VariantDefault}
		if len(parts) > 1 && parts[1] != "" {
			p.Variant = parts[1]
		}
		return p, true

	case TypeProducts:
		p := Params{Type: t, CategorySlug: parts[0], Limit: DefaultProductsLimit}
		if len(parts) > 1 && parts[1] != "" {
			// A limit that does not parse falls back to the default
			// rather than poisoning the render downstream.
			if n, err := strconv.Atoi(parts[1]); err == nil {
				p.Limit = n
			}
		}
		return p, true

	case TypeComparison:
		slugs := make([]string, len(parts))
		copy(slugs, parts)
		return Params{Type: t, Slugs: slugs}, true
	}

	return Params{}, false
}

// FindAll scans content once, left to right, and returns every span that
// parses as a shortcode. Bracketed text that does not match the grammar is
// skipped and stays literal.
func FindAll(content string) []Token {
	var tokens []Token

	for i := 0; i < len(content); {
		open := strings.IndexByte(content[i:], '[')
		if open < 0 {
			break
		}
		open += i

		close := strings.IndexByte(content[open:], ']')
		if close < 0 {
			break
		}
		close += open

		params, ok := ParseValue(content[open+1 : close])
		if !ok {
			// Resume just past the opening bracket so a stray '['
			// cannot swallow a real shortcode that follows it.
			i = open + 1
			continue
		}

		tokens = append(tokens, Token{
			Params: params,
			Start:  open,
			End:    close + 1,
		})
		i = close + 1
	}

	return tokens
}
