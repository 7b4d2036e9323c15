package legacy

import (
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"
)

// unescape interpreta las secuencias de escape de un string JS (sin comillas).
func unescape(s string) (string, error) {
	if !strings.Contains(s, `\`) {
		return s, nil
	}
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c != '\\' {
			b.WriteByte(c)
			continue
		}
		i++
		if i >= len(s) {
			return "", fmt.Errorf("escape incompleto al final del string")
		}
		switch s[i] {
		case 'n':
			b.WriteByte('\n')
		case 't':
			b.WriteByte('\t')
		case 'r':
			b.WriteByte('\r')
		case 'b':
			b.WriteByte('\b')
		case 'f':
			b.WriteByte('\f')
		case 'v':
			b.WriteByte('\v')
		case '0':
			b.WriteByte(0)
		case '\n':
			// continuación de línea
		case '\r':
			if i+1 < len(s) && s[i+1] == '\n' {
				i++
			}
		case 'x':
			if i+2 >= len(s) {
				return "", fmt.Errorf("escape \\x incompleto")
			}
			r, err := strconv.ParseUint(s[i+1:i+3], 16, 8)
			if err != nil {
				return "", fmt.Errorf("escape \\x inválido: %q", s[i+1:i+3])
			}
			b.WriteRune(rune(r))
			i += 2
		case 'u':
			r, n, err := unicodeEscape(s[i+1:])
			if err != nil {
				return "", err
			}
			b.WriteRune(r)
			i += n
		default:
			// \' \" \\ \` y cualquier otro carácter se toman literalmente
			r, size := utf8.DecodeRuneInString(s[i:])
			b.WriteRune(r)
			i += size - 1
		}
	}
	return b.String(), nil
}

// unicodeEscape interpreta XXXX o {X...} tras \u; devuelve los bytes consumidos.
// Un par sustituto (\uD83D\uDE00) se combina en una sola runa.
func unicodeEscape(s string) (rune, int, error) {
	if strings.HasPrefix(s, "{") {
		end := strings.IndexByte(s, '}')
		if end < 2 {
			return 0, 0, fmt.Errorf("escape \\u{...} inválido")
		}
		v, err := strconv.ParseUint(s[1:end], 16, 32)
		if err != nil || v > utf8.MaxRune {
			return 0, 0, fmt.Errorf("escape \\u{%s} inválido", s[1:end])
		}
		return rune(v), end + 1, nil
	}
	if len(s) < 4 {
		return 0, 0, fmt.Errorf("escape \\u incompleto")
	}
	v, err := strconv.ParseUint(s[:4], 16, 16)
	if err != nil {
		return 0, 0, fmt.Errorf("escape \\u inválido: %q", s[:4])
	}
	r := rune(v)
	if r >= 0xD800 && r <= 0xDBFF && len(s) >= 10 && s[4:6] == `\u` {
		lo, err := strconv.ParseUint(s[6:10], 16, 16)
		if err == nil && lo >= 0xDC00 && lo <= 0xDFFF {
			return (r-0xD800)<<10 + (rune(lo) - 0xDC00) + 0x10000, 10, nil
		}
	}
	return r, 4, nil
}
