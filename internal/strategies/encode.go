package strategies

import "strings"

const upperhex = "0123456789ABCDEF"

// Encode interleaves literal segments with percent-encoded values:
// literals[0] + enc(values[0]) + literals[1] + ... + enc(values[n-1]) + literals[n].
// Literals are copied untouched. Missing trailing literals are treated as
// empty and surplus literals are appended in order.
func Encode(literals []string, values ...string) string {
	var sb strings.Builder

	for i, value := range values {
		if i < len(literals) {
			sb.WriteString(literals[i])
		}
		sb.WriteString(EncodeComponent(value))
	}
	for i := len(values); i < len(literals); i++ {
		sb.WriteString(literals[i])
	}

	return sb.String()
}

// EncodeComponent percent-encodes every byte outside the URI unreserved
// set A-Z a-z 0-9 - _ . ! ~ * ' ( ), using uppercase hex. Spaces become %20.
func EncodeComponent(value string) string {
	n := 0
	for i := 0; i < len(value); i++ {
		if !isUnreserved(value[i]) {
			n++
		}
	}
	if n == 0 {
		return value
	}

	buf := make([]byte, 0, len(value)+2*n)
	for i := 0; i < len(value); i++ {
		c := value[i]
		if isUnreserved(c) {
			buf = append(buf, c)
			continue
		}
		buf = append(buf, '%', upperhex[c>>4], upperhex[c&15])
	}
	return string(buf)
}

func isUnreserved(c byte) bool {
	switch {
	case 'a' <= c && c <= 'z', 'A' <= c && c <= 'Z', '0' <= c && c <= '9':
		return true
	}
	switch c {
	case '-', '_', '.', '!', '~', '*', '\'', '(', ')':
		return true
	}
	return false
}
