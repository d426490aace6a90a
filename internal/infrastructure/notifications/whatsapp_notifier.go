package notifications

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"time"

	"oficina_os/internal/usecase/interfaces"

	"github.com/rs/zerolog/log"
)

// WhatsAppNotifier delivers rendered status messages through the WhatsApp
// HTTP bridge. With no WHATSAPP_API_URL configured it is disabled and every
// send is a logged no-op, which keeps notifications optional per deployment.
type WhatsAppNotifier struct {
	apiURL string
	token  string
	client *http.Client
}

var _ interfaces.INotifier = (*WhatsAppNotifier)(nil)

func NewWhatsAppNotifier() *WhatsAppNotifier {
	return &WhatsAppNotifier{
		apiURL: os.Getenv("WHATSAPP_API_URL"),
		token:  os.Getenv("WHATSAPP_API_TOKEN"),
		client: &http.Client{Timeout: 10 * time.Second},
	}
}

func (n *WhatsAppNotifier) Send(ctx context.Context, phoneNumber, message string) error {
	if n.apiURL == "" {
		log.Debug().Str("phone", phoneNumber).Msg("whatsapp bridge not configured, message dropped")
		return nil
	}

	body, err := json.Marshal(map[string]string{
		"phone":   phoneNumber,
		"message": message,
	})
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, n.apiURL, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	if n.token != "" {
		req.Header.Set("Authorization", "Bearer "+n.token)
	}

	resp, err := n.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusMultipleChoices {
		return fmt.Errorf("whatsapp bridge returned status %d", resp.StatusCode)
	}

	log.Debug().Str("phone", phoneNumber).Msg("whatsapp message delivered")
	return nil
}
