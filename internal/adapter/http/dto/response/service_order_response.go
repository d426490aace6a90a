package response

import (
	"time"

	"oficina_os/internal/domain/entities"
)

type ServiceOrderResponse struct {
	ID            string `json:"id"`
	Number        int64  `json:"number"`
	Status        string `json:"status"`
	CustomerID    string `json:"customer_id,omitempty"`
	CustomerName  string `json:"customer_name"`
	CustomerPhone string `json:"customer_phone,omitempty"`
	DeviceBrand   string `json:"device_brand,omitempty"`
	DeviceModel   string `json:"device_model,omitempty"`
	DeviceSerial  string `json:"device_serial,omitempty"`
	Problem       string `json:"problem,omitempty"`

	Total          float64 `json:"total"`
	PaidTotal      float64 `json:"paid_total"`
	Balance        float64 `json:"balance"`
	BudgetAmount   float64 `json:"budget_amount,omitempty"`
	BudgetApproved float64 `json:"budget_approved,omitempty"`

	EntryChecklist *entities.ChecklistResult `json:"entry_checklist,omitempty"`
	ExitChecklist  *entities.ChecklistResult `json:"exit_checklist,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func FromServiceOrder(o entities.ServiceOrder) ServiceOrderResponse {
	return ServiceOrderResponse{
		ID:             o.ID,
		Number:         o.Number,
		Status:         string(o.Status),
		CustomerID:     o.CustomerID,
		CustomerName:   o.CustomerName,
		CustomerPhone:  o.CustomerPhone,
		DeviceBrand:    o.DeviceBrand,
		DeviceModel:    o.DeviceModel,
		DeviceSerial:   o.DeviceSerial,
		Problem:        o.Problem,
		Total:          o.Total,
		PaidTotal:      o.PaidTotal,
		Balance:        o.Balance(),
		BudgetAmount:   o.BudgetAmount,
		BudgetApproved: o.BudgetApproved,
		EntryChecklist: o.EntryChecklist,
		ExitChecklist:  o.ExitChecklist,
		CreatedAt:      o.CreatedAt,
		UpdatedAt:      o.UpdatedAt,
	}
}
