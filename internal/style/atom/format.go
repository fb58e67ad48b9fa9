package atom

import (
	"strings"
	"unicode"
)

// FormatValue renders value as a class-name fragment: whitespace around list
// and measure separators (',' and '/') is dropped, and every remaining
// whitespace run becomes a single '_'. Literal '_' and '\' are
// backslash-prefixed so distinct values never share a fragment.
func FormatValue(value string) string {
	fields := strings.Fields(normalizeSeparators(value))
	for i, f := range fields {
		fields[i] = escapeFragment(f)
	}
	return strings.Join(fields, "_")
}

var fragmentEscaper = strings.NewReplacer(`\`, `\\`, "_", `\_`)

func escapeFragment(s string) string {
	return fragmentEscaper.Replace(s)
}

// NormalizeValue trims value and collapses whitespace runs to one space. It
// is the form written into the stylesheet rule.
func NormalizeValue(value string) string {
	return strings.Join(strings.Fields(value), " ")
}

func normalizeSeparators(value string) string {
	var b strings.Builder
	b.Grow(len(value))
	runes := []rune(strings.TrimSpace(value))
	for i := 0; i < len(runes); i++ {
		r := runes[i]
		if r == ',' || r == '/' {
			out := b.String()
			b.Reset()
			b.WriteString(strings.TrimRightFunc(out, unicode.IsSpace))
			b.WriteRune(r)
			for i+1 < len(runes) && unicode.IsSpace(runes[i+1]) {
				i++
			}
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

// EscapeClass escapes characters that carry meaning in a CSS class selector,
// including ( ) . % / , | and quotes, with a backslash.
func EscapeClass(class string) string {
	var b strings.Builder
	b.Grow(len(class) + 8)
	for _, r := range class {
		if needsEscape(r) {
			b.WriteByte('\\')
		}
		b.WriteRune(r)
	}
	return b.String()
}

func needsEscape(r rune) bool {
	if r > unicode.MaxASCII {
		return false
	}
	switch {
	case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
		return false
	case r == '-' || r == '_':
		return false
	}
	return true
}
