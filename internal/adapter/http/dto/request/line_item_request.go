package request

import (
	"strings"

	"oficina_os/internal/domain/entities"
)

// LineItemRequest adds or replaces one order line (part, service or labor).
type LineItemRequest struct {
	Kind         string  `json:"kind" binding:"required"`
	ProductID    string  `json:"product_id"`
	Description  string  `json:"description" binding:"required"`
	Quantity     int     `json:"quantity" binding:"required"`
	UnitPrice    float64 `json:"unit_price"`
	MinPrice     float64 `json:"min_price"`
	Discount     float64 `json:"discount"`
	WarrantyDays int     `json:"warranty_days"`
	SupplierID   string  `json:"supplier_id"`
}

func (r LineItemRequest) ToSpec() entities.ItemSpec {
	return entities.ItemSpec{
		Kind:         entities.ItemKind(strings.ToLower(strings.TrimSpace(r.Kind))),
		ProductID:    strings.TrimSpace(r.ProductID),
		Description:  r.Description,
		Quantity:     r.Quantity,
		UnitPrice:    r.UnitPrice,
		MinPrice:     r.MinPrice,
		Discount:     r.Discount,
		WarrantyDays: r.WarrantyDays,
		SupplierID:   r.SupplierID,
	}
}
