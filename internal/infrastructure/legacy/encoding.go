package legacy

import (
	"fmt"
	"strings"

	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// Encoding codificación del archivo fuente.
type Encoding string

const (
	EncodingUTF8   Encoding = "utf-8"
	EncodingLatin1 Encoding = "latin1" // ISO-8859-1
)

// ParseEncoding acepta utf-8/utf8 y latin1/iso-8859-1 (sin distinguir mayúsculas).
func ParseEncoding(s string) (Encoding, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "utf-8", "utf8":
		return EncodingUTF8, nil
	case "latin1", "iso-8859-1", "iso8859-1":
		return EncodingLatin1, nil
	default:
		return "", fmt.Errorf("codificación no soportada: %q", s)
	}
}

// toUTF8 convierte el contenido a UTF-8. Un BOM inicial manda sobre la codificación indicada
// y se descarta.
func toUTF8(raw []byte, enc Encoding) ([]byte, error) {
	var fallback transform.Transformer = transform.Nop
	if enc == EncodingLatin1 {
		fallback = charmap.ISO8859_1.NewDecoder()
	}
	out, _, err := transform.Bytes(unicode.BOMOverride(fallback), raw)
	if err != nil {
		return nil, fmt.Errorf("decodificar %s: %w", enc, err)
	}
	return out, nil
}
