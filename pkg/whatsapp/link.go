// Package whatsapp construye enlaces wa.me con texto precargado. Es un canal de salida sin
// respuesta: el sitio solo entrega el enlace.
package whatsapp

import (
	"fmt"
	"net/url"
	"strings"
	"unicode"

	"github.com/shopspring/decimal"
)

const baseURL = "https://wa.me/"

// GeneralMessage texto del botón flotante de contacto.
const GeneralMessage = "Hello! I would like to know more about your services."

// Link devuelve https://wa.me/<dígitos>?text=<texto codificado>. Los caracteres que no son
// dígitos del teléfono se descartan; los espacios del texto se codifican como %20.
func Link(phone, text string) string {
	digits := strings.Map(func(r rune) rune {
		if unicode.IsDigit(r) {
			return r
		}
		return -1
	}, phone)
	if text == "" {
		return baseURL + digits
	}
	return baseURL + digits + "?text=" + encodeComponent(text)
}

// ProductMessage texto de consulta por un producto.
func ProductMessage(title string, price decimal.Decimal) string {
	return fmt.Sprintf("Hello, I am interested in %s. Price: ₹%s. Please share more details.", title, price.String())
}

// Contact genera los enlaces para un número fijo.
type Contact struct {
	phone string
}

// NewContact construye el generador para phone.
func NewContact(phone string) *Contact {
	return &Contact{phone: phone}
}

// General enlace de contacto general.
func (c *Contact) General() string {
	return Link(c.phone, GeneralMessage)
}

// ProductInquiry enlace de consulta por un producto.
func (c *Contact) ProductInquiry(title string, price decimal.Decimal) string {
	return Link(c.phone, ProductMessage(title, price))
}

// componentUnescaper deja sin escapar lo que encodeURIComponent no escapa y pasa + a %20.
var componentUnescaper = strings.NewReplacer(
	"+", "%20",
	"%21", "!",
	"%27", "'",
	"%28", "(",
	"%29", ")",
	"%2A", "*",
)

// encodeComponent codifica el texto para la query igual que encodeURIComponent.
func encodeComponent(s string) string {
	return componentUnescaper.Replace(url.QueryEscape(s))
}
