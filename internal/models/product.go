package models

import (
	"bytes"
	"encoding/json"
	"time"
)

// Product is a catalog entry.
type Product struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Name        string    `gorm:"size:255;not null" json:"name"`
	Price       float64   `gorm:"not null;default:0" json:"price"`
	Description string    `gorm:"size:255" json:"description"`
	Stock       int       `gorm:"not null;default:0" json:"stock"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

// CreateProductRequest is the payload for creating a product. Every field
// is required; pointers let a literal 0 or "" through.
type CreateProductRequest struct {
	Name        string   `json:"name" binding:"required,max=255"`
	Price       *float64 `json:"price" binding:"required,gte=0"`
	Description *string  `json:"description" binding:"required,max=255"`
	Stock       *int     `json:"stock" binding:"required,gte=0"`
}

// Product builds the row to insert. Call after binding has succeeded.
func (r CreateProductRequest) Product() *Product {
	p := &Product{Name: r.Name}
	if r.Price != nil {
		p.Price = *r.Price
	}
	if r.Description != nil {
		p.Description = *r.Description
	}
	if r.Stock != nil {
		p.Stock = *r.Stock
	}
	return p
}

// UpdateProductRequest is a partial update; absent fields are left
// unchanged. Fields sent as an explicit null are recorded in NullFields.
type UpdateProductRequest struct {
	Name        *string  `json:"name" binding:"omitempty,min=1,max=255"`
	Price       *float64 `json:"price" binding:"omitempty,gte=0"`
	Description *string  `json:"description" binding:"omitempty,max=255"`
	Stock       *int     `json:"stock" binding:"omitempty,gte=0"`

	nullFields []string
}

var updatableFields = []string{"name", "price", "description", "stock"}

func (r *UpdateProductRequest) UnmarshalJSON(data []byte) error {
	type plain UpdateProductRequest
	var p plain
	if err := json.Unmarshal(data, &p); err != nil {
		return err
	}
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	*r = UpdateProductRequest(p)
	r.nullFields = nil
	for _, key := range updatableFields {
		if v, ok := raw[key]; ok && bytes.Equal(bytes.TrimSpace(v), []byte("null")) {
			r.nullFields = append(r.nullFields, key)
		}
	}
	return nil
}

// NullFields lists the fields the client explicitly set to null.
func (r UpdateProductRequest) NullFields() []string {
	return r.nullFields
}

// Updates returns the column map for the fields present in the request.
func (r UpdateProductRequest) Updates() map[string]interface{} {
	updates := make(map[string]interface{})
	if r.Name != nil {
		updates["name"] = *r.Name
	}
	if r.Price != nil {
		updates["price"] = *r.Price
	}
	if r.Description != nil {
		updates["description"] = *r.Description
	}
	if r.Stock != nil {
		updates["stock"] = *r.Stock
	}
	return updates
}
