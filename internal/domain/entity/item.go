package entity

import "time"

// Item representa un producto almacenado en inventario.
// Quantity puede volverse negativa: las ventas no validan piso de stock.
type Item struct {
	ID                string
	ItemName          string
	Category          string
	Quantity          int
	Unit              string
	LastRestocked     *time.Time // fecha, opcional
	ExpiryDate        *time.Time // fecha, opcional; dispara alertas de vencimiento
	LowStockThreshold int
	SupplierID        *string
}
