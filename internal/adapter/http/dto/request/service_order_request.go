package request

import "strings"

// CreateOrderRequest opens a new service order for a customer device.
type CreateOrderRequest struct {
	CustomerID     string  `json:"customer_id"`
	CustomerName   string  `json:"customer_name" binding:"required"`
	CustomerPhone  string  `json:"customer_phone"`
	DeviceBrand    string  `json:"device_brand"`
	DeviceModel    string  `json:"device_model"`
	DeviceSerial   string  `json:"device_serial"`
	Problem        string  `json:"problem"`
	BudgetAmount   float64 `json:"budget_amount"`
	BudgetApproved float64 `json:"budget_approved"`
}

// ChangeStatusRequest moves an order to another configured status label.
type ChangeStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

func (r ChangeStatusRequest) ResolveStatus() string {
	return strings.ToLower(strings.TrimSpace(r.Status))
}
