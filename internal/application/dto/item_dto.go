package dto

// CreateItemRequest entrada para crear un item de inventario.
// Las fechas viajan como YYYY-MM-DD.
type CreateItemRequest struct {
	ItemName          string  `json:"itemName" validate:"required,min=1,max=200"`
	Category          string  `json:"category"`
	Quantity          int     `json:"quantity"`
	Unit              string  `json:"unit"`
	LastRestocked     *string `json:"lastRestocked"`
	ExpiryDate        *string `json:"expiryDate"`
	LowStockThreshold int     `json:"lowStockThreshold"`
	SupplierID        *string `json:"supplier_id"`
}

// UpdateItemRequest entrada para actualizar un item: solo los campos
// presentes se aplican.
type UpdateItemRequest struct {
	ItemName          *string `json:"itemName" validate:"omitempty,min=1,max=200"`
	Category          *string `json:"category"`
	Quantity          *int    `json:"quantity"`
	Unit              *string `json:"unit"`
	LastRestocked     *string `json:"lastRestocked"`
	ExpiryDate        *string `json:"expiryDate"`
	LowStockThreshold *int    `json:"lowStockThreshold"`
	SupplierID        *string `json:"supplier_id"`
}

// ItemResponse salida de un item.
type ItemResponse struct {
	ID                string  `json:"id"`
	ItemName          string  `json:"itemName"`
	Category          string  `json:"category"`
	Quantity          int     `json:"quantity"`
	Unit              string  `json:"unit"`
	LastRestocked     *string `json:"lastRestocked"`
	ExpiryDate        *string `json:"expiryDate"`
	LowStockThreshold int     `json:"lowStockThreshold"`
	SupplierID        *string `json:"supplier_id"`
}
