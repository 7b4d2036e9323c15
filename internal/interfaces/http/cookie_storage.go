package http

import (
	"net/url"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/printshop-catalog/internal/domain/catalog"
)

// recentlyViewedTTL vigencia de la cookie; la lista no caduca por sí misma.
const recentlyViewedTTL = 365 * 24 * time.Hour

var _ catalog.ViewStorage = (*CookieViewStorage)(nil)

// CookieViewStorage persiste la lista de vistos en la cookie recentlyViewed del cliente
// (arreglo JSON con escape de URL). Vive lo que dura un request.
type CookieViewStorage struct {
	c       *fiber.Ctx
	written []string
	dirty   bool
}

// NewCookieViewStorage construye el storage sobre el request actual.
func NewCookieViewStorage(c *fiber.Ctx) *CookieViewStorage {
	return &CookieViewStorage{c: c}
}

// Read devuelve lo escrito en este request o, si no hubo escritura, la cookie recibida.
func (s *CookieViewStorage) Read() ([]string, error) {
	if s.dirty {
		return s.written, nil
	}
	raw := s.c.Cookies(catalog.RecentlyViewedKey)
	if raw == "" {
		return nil, nil
	}
	decoded, err := url.QueryUnescape(raw)
	if err != nil {
		return nil, err
	}
	return catalog.DecodeIDs(decoded)
}

func (s *CookieViewStorage) Write(ids []string) error {
	raw, err := catalog.EncodeIDs(ids)
	if err != nil {
		return err
	}
	s.c.Cookie(&fiber.Cookie{
		Name:     catalog.RecentlyViewedKey,
		Value:    url.QueryEscape(raw),
		Path:     "/",
		Expires:  time.Now().Add(recentlyViewedTTL),
		SameSite: fiber.CookieSameSiteLaxMode,
	})
	s.written, s.dirty = ids, true
	return nil
}

func (s *CookieViewStorage) Clear() error {
	s.c.Cookie(&fiber.Cookie{
		Name:     catalog.RecentlyViewedKey,
		Path:     "/",
		Expires:  time.Now().Add(-time.Hour),
		SameSite: fiber.CookieSameSiteLaxMode,
	})
	s.written, s.dirty = nil, true
	return nil
}
