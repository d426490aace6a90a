package entities

import "time"

// ChecklistPhase identifies which of the two order inspections a result
// belongs to.

type ChecklistPhase string

const (
	ChecklistPhaseEntry ChecklistPhase = "entrada"
	ChecklistPhaseExit  ChecklistPhase = "saida"
)

// ChecklistCategory groups inspection items.
type ChecklistCategory string

const (
	ChecklistCategoryPhysicalDefect ChecklistCategory = "physical-defect"
	ChecklistCategoryFunctionalOK   ChecklistCategory = "functional-ok"
)

// ChecklistItem is one configurable inspection item.
type ChecklistItem struct {
	ID       string            `json:"id"`
	Label    string            `json:"label"`
	Category ChecklistCategory `json:"category"`
}

// ChecklistResult is the current recorded inspection state for one phase of
// one order. Re-completing a checklist overwrites the previous result in
// place; it is not a history.
//
// Approved is only meaningful for the exit phase and stays nil until the
// technician decides; a terminal status transition requires it decided.

type ChecklistResult struct {
	Phase       ChecklistPhase `json:"phase"`
	MarkedItems []string       `json:"marked_items"`
	Notes       string         `json:"notes,omitempty"`
	Approved    *bool          `json:"approved,omitempty"`
	ActorID     string         `json:"actor_id"`
	ActorName   string         `json:"actor_name"`
	CompletedAt time.Time      `json:"completed_at"`
}

func (r ChecklistResult) Decided() bool {
	return r.Approved != nil
}

// ChecklistConfig is the injected item catalog per phase.
type ChecklistConfig struct {
	Items map[ChecklistPhase][]ChecklistItem
}

// Knows reports whether itemID is a configured item for the phase.
func (c ChecklistConfig) Knows(phase ChecklistPhase, itemID string) bool {
	for _, it := range c.Items[phase] {
		if it.ID == itemID {
			return true
		}
	}
	return false
}

// DefaultChecklistConfig mirrors the shop's stock inspection sheet.
func DefaultChecklistConfig() ChecklistConfig {
	entry := []ChecklistItem{
		{ID: "carcaca_riscada", Label: "Carcaca riscada", Category: ChecklistCategoryPhysicalDefect},
		{ID: "tela_trincada", Label: "Tela trincada", Category: ChecklistCategoryPhysicalDefect},
		{ID: "liga", Label: "Liga", Category: ChecklistCategoryFunctionalOK},
		{ID: "carrega", Label: "Carrega", Category: ChecklistCategoryFunctionalOK},
		{ID: "audio_ok", Label: "Audio funcionando", Category: ChecklistCategoryFunctionalOK},
	}
	exit := []ChecklistItem{
		{ID: "reparo_testado", Label: "Reparo testado", Category: ChecklistCategoryFunctionalOK},
		{ID: "limpeza_feita", Label: "Limpeza feita", Category: ChecklistCategoryFunctionalOK},
		{ID: "avarias_registradas", Label: "Avarias registradas", Category: ChecklistCategoryPhysicalDefect},
	}
	return ChecklistConfig{Items: map[ChecklistPhase][]ChecklistItem{
		ChecklistPhaseEntry: entry,
		ChecklistPhaseExit:  exit,
	}}
}
