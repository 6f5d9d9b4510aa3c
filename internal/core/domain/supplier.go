package domain

// Supplier is an entry in the supplier directory.
type Supplier struct {
	SupplierID string  `json:"supplierID"` // Primary key (UUID)
	Name       string  `json:"name"`       // Unique, trimmed
	Phone      *string `json:"phone,omitempty"`
	AuditFields
}
