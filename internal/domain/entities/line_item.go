package entities

import "time"

// ItemKind classifies a line item. Only part-kind items may reference a
// catalog product and therefore touch stock.

type ItemKind string

const (
	ItemKindPart    ItemKind = "part"
	ItemKindService ItemKind = "service"
	ItemKindLabor   ItemKind = "labor"
)

func (k ItemKind) Valid() bool {
	switch k {
	case ItemKindPart, ItemKindService, ItemKindLabor:
		return true
	}
	return false
}

// LineItem is one priced part/service/labor entry on a service order.
//
// Storage model (DynamoDB):
//   - PK: order_id, SK: id
//
// A part-kind item with an empty ProductID is a free-text part not tracked
// in inventory; it never touches stock. MinPrice is an advisory floor and
// is not enforced.

type LineItem struct {
	ID           string   `json:"id"`
	OrderID      string   `json:"order_id"`
	Kind         ItemKind `json:"kind"`
	ProductID    string   `json:"product_id,omitempty"`
	Description  string   `json:"description"`
	Quantity     int      `json:"quantity"`
	UnitPrice    float64  `json:"unit_price"`
	MinPrice     float64  `json:"min_price"`
	Discount     float64  `json:"discount"`
	WarrantyDays int      `json:"warranty_days"`
	SupplierID   string   `json:"supplier_id,omitempty"`
	Total        float64  `json:"total"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TracksStock reports whether mutations of this item must go through the
// stock ledger.
func (i LineItem) TracksStock() bool {
	return i.Kind == ItemKindPart && i.ProductID != ""
}

// ItemSpec is the command payload for adding or editing a line item.
type ItemSpec struct {
	Kind         ItemKind `json:"kind"`
	ProductID    string   `json:"product_id"`
	Description  string   `json:"description"`
	Quantity     int      `json:"quantity"`
	UnitPrice    float64  `json:"unit_price"`
	MinPrice     float64  `json:"min_price"`
	Discount     float64  `json:"discount"`
	WarrantyDays int      `json:"warranty_days"`
	SupplierID   string   `json:"supplier_id"`
}

// LineTotal is quantity * unit price minus the line discount.
func (s ItemSpec) LineTotal() float64 {
	return float64(s.Quantity)*s.UnitPrice - s.Discount
}
