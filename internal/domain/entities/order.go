package entities

import (
	"strconv"
	"strings"
	"time"
)

// OrderStatus is one of the configured service-order status labels.
//
// The label set is configuration-driven (StatusConfig); the state machine
// only hard-codes one structural distinction: labels containing the
// terminal marker (default "finalizada") close the order and require a
// decided exit checklist.

type OrderStatus string

const (
	OrderStatusAberta          OrderStatus = "aberta"
	OrderStatusEmAndamento     OrderStatus = "em_andamento"
	OrderStatusAguardandoPecas OrderStatus = "aguardando_pecas"
	OrderStatusPronta          OrderStatus = "pronta"
	OrderStatusFinalizada      OrderStatus = "finalizada"
	OrderStatusOrcamento       OrderStatus = "orcamento"
	OrderStatusCancelada       OrderStatus = "cancelada"
)

// ServiceOrder is one repair job tracked end-to-end.
//
// Storage model (DynamoDB):
//   - PK: id
//   - number comes from an atomic counter (counters table)
//   - total and paid_total are stored as numbers so repositories can use
//     SET/ADD update expressions on them
//   - entry_checklist / exit_checklist are stored as JSON documents and
//     overwritten in place (current recorded state, not a history)
//
// PaidTotal may exceed Total: deposits before items are added are legal.

type ServiceOrder struct {
	ID            string      `json:"id"`
	Number        int64       `json:"number"`
	Status        OrderStatus `json:"status"`
	CustomerID    string      `json:"customer_id"`
	CustomerName  string      `json:"customer_name"`
	CustomerPhone string      `json:"customer_phone"`
	DeviceBrand   string      `json:"device_brand"`
	DeviceModel   string      `json:"device_model"`
	DeviceSerial  string      `json:"device_serial"`
	Problem       string      `json:"problem"`

	Total          float64 `json:"total"`
	PaidTotal      float64 `json:"paid_total"`
	BudgetAmount   float64 `json:"budget_amount"`
	BudgetApproved float64 `json:"budget_approved"`

	EntryChecklist *ChecklistResult `json:"entry_checklist,omitempty"`
	ExitChecklist  *ChecklistResult `json:"exit_checklist,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Balance is always recomputable; it may be negative on overpayment.
func (o ServiceOrder) Balance() float64 {
	return o.Total - o.PaidTotal
}

// NotificationTemplate is the outbound message configured for one status.
// Tokens: {cliente}, {numero}, {status}, {marca}, {modelo}, {link_os}.
type NotificationTemplate struct {
	Enabled bool   `json:"enabled"`
	Message string `json:"message"`
}

// Render substitutes the template tokens with order data. The token set is
// fixed by the messaging configuration, so plain replacement is enough.
func (t NotificationTemplate) Render(o ServiceOrder, status OrderStatus, orderLink string) string {
	r := strings.NewReplacer(
		"{cliente}", o.CustomerName,
		"{numero}", formatOrderNumber(o.Number),
		"{status}", string(status),
		"{marca}", o.DeviceBrand,
		"{modelo}", o.DeviceModel,
		"{link_os}", orderLink,
	)
	return r.Replace(t.Message)
}

// StatusConfig is the injected status label set plus per-status notification
// templates. It is built once at startup and passed into the order usecase.
type StatusConfig struct {
	Labels         []OrderStatus
	TerminalMarker string
	Notifications  map[OrderStatus]NotificationTemplate
	OrderLinkBase  string
}

func (c StatusConfig) Knows(s OrderStatus) bool {
	for _, l := range c.Labels {
		if l == s {
			return true
		}
	}
	return false
}

// IsTerminal reports whether s closes the order. Matching is by naming
// convention: any label containing the terminal marker counts.
func (c StatusConfig) IsTerminal(s OrderStatus) bool {
	marker := c.TerminalMarker
	if marker == "" {
		marker = "finalizada"
	}
	return strings.Contains(strings.ToLower(string(s)), marker)
}

func (c StatusConfig) OrderLink(o ServiceOrder) string {
	if c.OrderLinkBase == "" {
		return ""
	}
	return strings.TrimRight(c.OrderLinkBase, "/") + "/" + formatOrderNumber(o.Number)
}

// DefaultStatusConfig mirrors the shop's stock configuration.
func DefaultStatusConfig() StatusConfig {
	return StatusConfig{
		Labels: []OrderStatus{
			OrderStatusAberta,
			OrderStatusEmAndamento,
			OrderStatusAguardandoPecas,
			OrderStatusPronta,
			OrderStatusFinalizada,
			OrderStatusOrcamento,
			OrderStatusCancelada,
		},
		TerminalMarker: "finalizada",
		Notifications: map[OrderStatus]NotificationTemplate{
			OrderStatusPronta: {
				Enabled: true,
				Message: "Ola {cliente}, sua OS #{numero} ({marca} {modelo}) esta pronta para retirada. Acompanhe em {link_os}",
			},
			OrderStatusAguardandoPecas: {
				Enabled: true,
				Message: "Ola {cliente}, sua OS #{numero} esta aguardando pecas. Status: {status}",
			},
		},
	}
}

func formatOrderNumber(n int64) string {
	return strconv.FormatInt(n, 10)
}
