package sink

import "strings"

// Quote escapes s for embedding as a string literal in generated code
// (§6, "Generated text quoting"): non-printable bytes become octal
// escapes, matching the teacher's own String()-method escaping convention
// for literal AST nodes rather than a Go-specific quoting scheme.
func Quote(s string) string {
	var b strings.Builder
	b.WriteByte('"')
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch c {
		case '"':
			b.WriteString(`\"`)
		case '\\':
			b.WriteString(`\\`)
		case '\n':
			b.WriteString(`\n`)
		case '\t':
			b.WriteString(`\t`)
		default:
			if c < 0x20 || c >= 0x7f {
				b.WriteString(`\`)
				b.WriteByte('0' + (c>>6)&07)
				b.WriteByte('0' + (c>>3)&07)
				b.WriteByte('0' + c&07)
			} else {
				b.WriteByte(c)
			}
		}
	}
	b.WriteByte('"')
	return b.String()
}
