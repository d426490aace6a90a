package request

// StockAdjustRequest is a manual inventory correction. Delta may be
// negative as long as it does not take the counter below zero.
type StockAdjustRequest struct {
	Delta int `json:"delta" binding:"required"`
}
