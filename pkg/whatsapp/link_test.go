package whatsapp_test

import (
	"net/url"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/printshop-catalog/pkg/whatsapp"
)

func TestLink_CodificaTextoConEspaciosPorcentuales(t *testing.T) {
	got := whatsapp.Link("+91 99999-99999", "Hola & adiós 100%")

	assert.Equal(t, "https://wa.me/919999999999?text=Hola%20%26%20adi%C3%B3s%20100%25", got)
}

func TestLink_SinTexto(t *testing.T) {
	assert.Equal(t, "https://wa.me/919999999999", whatsapp.Link("919999999999", ""))
}

func TestContact_ProductInquiry(t *testing.T) {
	c := whatsapp.NewContact("919999999999")

	link := c.ProductInquiry("Photo Frame Deluxe", decimal.NewFromInt(1500))
	u, err := url.Parse(link)
	require.NoError(t, err)

	assert.Equal(t, "wa.me", u.Host)
	assert.Equal(t, "/919999999999", u.Path)
	assert.Equal(t, "Hello, I am interested in Photo Frame Deluxe. Price: ₹1500. Please share more details.", u.Query().Get("text"))
}

func TestContact_General(t *testing.T) {
	u, err := url.Parse(whatsapp.NewContact("919999999999").General())
	require.NoError(t, err)

	assert.Equal(t, whatsapp.GeneralMessage, u.Query().Get("text"))
}

func TestLink_NoEscapaCaracteresReservadosPermitidos(t *testing.T) {
	got := whatsapp.Link("919999999999", "Hi! It's (very) *nice* ~ok-_.")

	assert.Equal(t, "https://wa.me/919999999999?text=Hi!%20It's%20(very)%20*nice*%20~ok-_.", got)
}

func TestContact_GeneralTextoCodificado(t *testing.T) {
	got := whatsapp.NewContact("919999999999").General()

	assert.Equal(t, "https://wa.me/919999999999?text=Hello!%20I%20would%20like%20to%20know%20more%20about%20your%20services.", got)
}
