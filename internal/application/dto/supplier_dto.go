package dto

// CreateSupplierRequest entrada para registrar un proveedor.
type CreateSupplierRequest struct {
	SupplierName  string `json:"supplierName" validate:"required,min=1,max=200"`
	ContactPerson string `json:"contactPerson"`
	Email         string `json:"email"`
	PhoneNumber   string `json:"phoneNumber"`
	Address       string `json:"address"`
	ItemsProvided string `json:"itemsProvided"`
	Status        string `json:"status"`
}

// UpdateSupplierRequest entrada para actualizar un proveedor (parcial).
type UpdateSupplierRequest struct {
	SupplierName  *string `json:"supplierName"`
	ContactPerson *string `json:"contactPerson"`
	Email         *string `json:"email"`
	PhoneNumber   *string `json:"phoneNumber"`
	Address       *string `json:"address"`
	ItemsProvided *string `json:"itemsProvided"`
	Status        *string `json:"status"`
}

// SupplierResponse salida de un proveedor.
type SupplierResponse struct {
	ID            string `json:"id"`
	SupplierName  string `json:"supplierName"`
	ContactPerson string `json:"contactPerson"`
	Email         string `json:"email"`
	PhoneNumber   string `json:"phoneNumber"`
	Address       string `json:"address"`
	ItemsProvided string `json:"itemsProvided"`
	Status        string `json:"status"`
}
