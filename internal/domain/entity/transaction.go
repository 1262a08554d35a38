package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tipos de transacción que afectan el stock. Cualquier otro valor se persiste
// pero no modifica la cantidad del item (comparación case-insensitive).
const (
	TransactionTypePurchase = "purchase" // suma Quantity al item
	TransactionTypeSale     = "sale"     // resta Quantity al item
)

// Transaction representa un movimiento de stock, inmutable una vez creado.
// ItemID es opcional: sin item referenciado la transacción se guarda igual,
// solo que sin efecto sobre el inventario.
type Transaction struct {
	ID          string
	Date        time.Time
	Description string
	Amount      decimal.Decimal // monto monetario
	Quantity    int
	Type        string
	Category    string
	Status      string
	ItemID      *string
}
