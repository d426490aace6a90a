package response

import (
	"time"

	"oficina_os/internal/domain/entities"
)

type LineItemResponse struct {
	ID           string  `json:"id"`
	OrderID      string  `json:"order_id"`
	Kind         string  `json:"kind"`
	ProductID    string  `json:"product_id,omitempty"`
	Description  string  `json:"description"`
	Quantity     int     `json:"quantity"`
	UnitPrice    float64 `json:"unit_price"`
	MinPrice     float64 `json:"min_price,omitempty"`
	Discount     float64 `json:"discount,omitempty"`
	WarrantyDays int     `json:"warranty_days,omitempty"`
	SupplierID   string  `json:"supplier_id,omitempty"`
	Total        float64 `json:"total"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func FromLineItem(i entities.LineItem) LineItemResponse {
	return LineItemResponse{
		ID:           i.ID,
		OrderID:      i.OrderID,
		Kind:         string(i.Kind),
		ProductID:    i.ProductID,
		Description:  i.Description,
		Quantity:     i.Quantity,
		UnitPrice:    i.UnitPrice,
		MinPrice:     i.MinPrice,
		Discount:     i.Discount,
		WarrantyDays: i.WarrantyDays,
		SupplierID:   i.SupplierID,
		Total:        i.Total,
		CreatedAt:    i.CreatedAt,
		UpdatedAt:    i.UpdatedAt,
	}
}

func FromLineItems(items []entities.LineItem) []LineItemResponse {
	out := make([]LineItemResponse, 0, len(items))
	for _, i := range items {
		out = append(out, FromLineItem(i))
	}
	return out
}
