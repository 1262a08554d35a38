package dto

// CreateAlertRequest entrada para crear una alerta manual. Type es texto
// libre; estas alertas no participan de la reconciliación automática.
type CreateAlertRequest struct {
	Type    string  `json:"type" validate:"required"`
	Title   string  `json:"title" validate:"required"`
	Message string  `json:"message"`
	ItemID  *string `json:"item_id"`
}

// AlertResponse salida de una alerta.
type AlertResponse struct {
	ID      string  `json:"id"`
	Type    string  `json:"type"`
	Title   string  `json:"title"`
	Message string  `json:"message"`
	ItemID  *string `json:"item_id"`
}
