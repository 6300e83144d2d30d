package runtime

import "strings"

// uriSafe holds the bytes that generic URI encoding leaves verbatim:
// unreserved characters plus the reserved set that is meaningful inside a
// URI. This matches whole-URI escaping, not component escaping, so "/" and
// ":" in an identifier survive unescaped.
var uriSafe = func() [256]bool {
	var safe [256]bool
	for c := 'A'; c <= 'Z'; c++ {
		safe[c] = true
	}
	for c := 'a'; c <= 'z'; c++ {
		safe[c] = true
	}
	for c := '0'; c <= '9'; c++ {
		safe[c] = true
	}
	for _, c := range []byte("-_.!~*'();/?:@&=+$,#") {
		safe[c] = true
	}
	return safe
}()

const upperhex = "0123456789ABCDEF"

// escapeURI percent-encodes every byte outside the URI-safe set. Multi-byte
// runes are encoded byte by byte.
func escapeURI(s string) string {
	var b strings.Builder
	for i := 0; i < len(s); i++ {
		c := s[i]
		if uriSafe[c] {
			b.WriteByte(c)
			continue
		}
		b.WriteByte('%')
		b.WriteByte(upperhex[c>>4])
		b.WriteByte(upperhex[c&0x0f])
	}
	return b.String()
}
