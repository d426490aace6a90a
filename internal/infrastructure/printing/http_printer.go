package printing

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"time"

	"oficina_os/internal/domain/entities"
	"oficina_os/internal/usecase/interfaces"

	"github.com/rs/zerolog/log"
)

// HTTPPrintService sends the order sheet and the entry-checklist snapshot
// to the shop's print bridge. Without PRINT_SERVICE_URL configured it drops
// jobs with a log line; the checklist flow treats printing as best effort
// either way.
type HTTPPrintService struct {
	serviceURL string
	client     *http.Client
}

var _ interfaces.IPrintService = (*HTTPPrintService)(nil)

func NewHTTPPrintService() *HTTPPrintService {
	return &HTTPPrintService{
		serviceURL: os.Getenv("PRINT_SERVICE_URL"),
		client:     &http.Client{Timeout: 15 * time.Second},
	}
}

func (s *HTTPPrintService) GenerateAndPrint(ctx context.Context, order entities.ServiceOrder, checklist entities.ChecklistResult, copies int) error {
	if s.serviceURL == "" {
		log.Debug().Str("order_id", order.ID).Msg("print bridge not configured, job dropped")
		return nil
	}

	body, err := json.Marshal(map[string]any{
		"order":     order,
		"checklist": checklist,
		"copies":    copies,
	})
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.serviceURL, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusMultipleChoices {
		return fmt.Errorf("print bridge returned status %d", resp.StatusCode)
	}

	log.Debug().Str("order_id", order.ID).Int("copies", copies).Msg("print job accepted")
	return nil
}
