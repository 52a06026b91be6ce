package multipart

import "strings"

// Escape percent-escapes the three characters that cannot appear inside a
// quoted Content-Disposition parameter: CR becomes %0D, LF becomes %0A and
// the double quote becomes %22. Every other byte passes through unchanged,
// and when nothing needs escaping the input string is returned as-is
// without allocating. This is the percent-escaping convention browsers use
// for multipart field and file names, not RFC 2616 quoted-string
// backslash-escaping; the caller supplies the surrounding quotes.
func Escape(s string) string {
	i := strings.IndexAny(s, "\"\r\n")
	if i < 0 {
		return s
	}

	var b strings.Builder
	b.Grow(len(s) + 8)
	b.WriteString(s[:i])
	for ; i < len(s); i++ {
		switch c := s[i]; c {
		case '"':
			b.WriteString("%22")
		case '\r':
			b.WriteString("%0D")
		case '\n':
			b.WriteString("%0A")
		default:
			b.WriteByte(c)
		}
	}
	return b.String()
}
