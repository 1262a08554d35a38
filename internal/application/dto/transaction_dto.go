package dto

import "github.com/shopspring/decimal"

// CreateTransactionRequest entrada para registrar un movimiento de stock.
// item_id es opcional; sin él la transacción se guarda sin efecto de stock.
type CreateTransactionRequest struct {
	Date        string          `json:"date" validate:"required"`
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount"`
	Quantity    int             `json:"quantity"`
	Type        string          `json:"type" validate:"required"`
	Category    string          `json:"category"`
	Status      string          `json:"status"`
	ItemID      *string         `json:"item_id"`
}

// TransactionResponse salida de una transacción.
type TransactionResponse struct {
	ID          string          `json:"id"`
	Date        string          `json:"date"`
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount"`
	Quantity    int             `json:"quantity"`
	Type        string          `json:"type"`
	Category    string          `json:"category"`
	Status      string          `json:"status"`
	ItemID      *string         `json:"item_id"`
}
