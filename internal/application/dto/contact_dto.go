package dto

// ContactResponse enlace de contacto general.
type ContactResponse struct {
	URL string `json:"url"`
}
