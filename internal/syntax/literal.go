package syntax

import (
	"fmt"
	"strings"
)

// StringValue decodes the raw text of a string literal, quotes included,
// into its bytes.
func StringValue(raw string) ([]byte, error) {
	if len(raw) < 2 || raw[0] != '"' || raw[len(raw)-1] != '"' {
		return nil, fmt.Errorf("malformed string literal %s", raw)
	}
	return unescape(raw[1:len(raw)-1], '"')
}

// RuneValue decodes the raw text of a rune literal, backticks included,
// into its single payload byte.
func RuneValue(raw string) (byte, error) {
	if len(raw) < 3 || raw[0] != '`' || raw[len(raw)-1] != '`' {
		return 0, fmt.Errorf("malformed rune literal %s", raw)
	}
	b, err := unescape(raw[1:len(raw)-1], '`')
	if err != nil {
		return 0, err
	}
	return b[0], nil
}

func unescape(s string, quote byte) ([]byte, error) {
	if !strings.Contains(s, `\`) {
		return []byte(s), nil
	}

	out := make([]byte, 0, len(s))
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c != '\\' {
			out = append(out, c)
			continue
		}
		i++
		if i >= len(s) {
			return nil, fmt.Errorf("dangling escape")
		}
		switch s[i] {
		case 'n':
			out = append(out, '\n')
		case 't':
			out = append(out, '\t')
		case 'r':
			out = append(out, '\r')
		case '\\':
			out = append(out, '\\')
		case '0':
			out = append(out, 0)
		case quote:
			out = append(out, quote)
		case 'x':
			if i+2 >= len(s) || !isHexDigit(rune(s[i+1])) || !isHexDigit(rune(s[i+2])) {
				return nil, fmt.Errorf("invalid hex escape")
			}
			out = append(out, byte(hexValue(s[i+1])<<4|hexValue(s[i+2])))
			i += 2
		default:
			return nil, fmt.Errorf("unknown escape sequence: \\%c", s[i])
		}
	}
	return out, nil
}

func hexValue(c byte) byte {
	switch {
	case '0' <= c && c <= '9':
		return c - '0'
	case 'a' <= c|0x20 && c|0x20 <= 'f':
		return (c | 0x20) - 'a' + 10
	}
	return 0
}
