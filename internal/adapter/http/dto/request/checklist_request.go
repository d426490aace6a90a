package request

import "strings"

// EntryChecklistRequest records the device inspection done at intake.
type EntryChecklistRequest struct {
	MarkedItems []string `json:"marked_items"`
	Notes       string   `json:"notes"`
}

// ExitChecklistRequest records the delivery inspection and drives the
// terminal transition. Approved stays nil until the technician decides;
// status defaults to "finalizada" when omitted.
type ExitChecklistRequest struct {
	MarkedItems []string `json:"marked_items"`
	Notes       string   `json:"notes"`
	Approved    *bool    `json:"approved"`
	Status      string   `json:"status"`
}

func (r ExitChecklistRequest) ResolveStatus() string {
	if v := strings.ToLower(strings.TrimSpace(r.Status)); v != "" {
		return v
	}
	return "finalizada"
}
