package entity

// Supplier representa un proveedor de items.
type Supplier struct {
	ID            string
	SupplierName  string
	ContactPerson string
	Email         string
	PhoneNumber   string
	Address       string
	ItemsProvided string
	Status        string // Active, Inactive
}
