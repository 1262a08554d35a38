package entity

// Tipos de alerta automática. Las alertas creadas manualmente pueden llevar
// cualquier texto libre en Type y quedan fuera de la reconciliación.
const (
	AlertTypeLowStock = "Low Stock"
	AlertTypeExpiry   = "Expiry"
)

// Alert representa una notificación derivada del estado de un item, o una
// alerta manual. Para los dos tipos automáticos existe a lo sumo una alerta
// por item y tipo, y su existencia es función pura del estado actual del item.
type Alert struct {
	ID      string
	Type    string
	Title   string
	Message string
	ItemID  *string
}
