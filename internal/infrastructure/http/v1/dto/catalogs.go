package dto

// CreateDepartmentRequest creates a department.
type CreateDepartmentRequest struct {
	Code        string  `json:"code"`
	Name        string  `json:"name" binding:"required"`
	NameEN      *string `json:"nameEn,omitempty"`
	Description *string `json:"description,omitempty"`
}

// UpdateDepartmentRequest updates a department.
type UpdateDepartmentRequest struct {
	Name        string  `json:"name" binding:"required"`
	NameEN      *string `json:"nameEn,omitempty"`
	Description *string `json:"description,omitempty"`
	Version     int     `json:"version" binding:"min=0"`
}

// CreateProductTypeRequest creates a product classification.
type CreateProductTypeRequest struct {
	Code     string  `json:"code"`
	Name     string  `json:"name" binding:"required"`
	Level    int     `json:"level" binding:"required"`
	ParentID *string `json:"parentId,omitempty"`
}

// UpdateProductTypeRequest updates a product classification.
type UpdateProductTypeRequest struct {
	Name     string  `json:"name" binding:"required"`
	ParentID *string `json:"parentId,omitempty"`
	Version  int     `json:"version" binding:"min=0"`
}

// CreateSupplierRequest creates a supplier.
type CreateSupplierRequest struct {
	Code          string  `json:"code"`
	Name          string  `json:"name" binding:"required"`
	TaxCode       *string `json:"taxCode,omitempty"`
	ContactEmail  *string `json:"contactEmail,omitempty"`
	ContactPhone  *string `json:"contactPhone,omitempty"`
	PaymentTerms  *string `json:"paymentTerms,omitempty"`
	DeliveryTerms *string `json:"deliveryTerms,omitempty"`
}

// UpdateSupplierRequest updates a supplier.
type UpdateSupplierRequest struct {
	Name          string  `json:"name" binding:"required"`
	TaxCode       *string `json:"taxCode,omitempty"`
	ContactEmail  *string `json:"contactEmail,omitempty"`
	ContactPhone  *string `json:"contactPhone,omitempty"`
	PaymentTerms  *string `json:"paymentTerms,omitempty"`
	DeliveryTerms *string `json:"deliveryTerms,omitempty"`
	Version       int     `json:"version" binding:"min=0"`
}

// CreateGroupRequest creates a requisition group.
type CreateGroupRequest struct {
	Code        string  `json:"code"`
	Name        string  `json:"name" binding:"required"`
	Currency    *string `json:"currency,omitempty"`
	Description *string `json:"description,omitempty"`
}

// UpdateGroupRequest updates a requisition group.
type UpdateGroupRequest struct {
	Name        string  `json:"name" binding:"required"`
	Currency    *string `json:"currency,omitempty"`
	Description *string `json:"description,omitempty"`
	Version     int     `json:"version" binding:"min=0"`
}
