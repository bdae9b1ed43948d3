package services

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/xyzrestro/food-billing-app/config"
	"github.com/xyzrestro/food-billing-app/models"
	"github.com/xyzrestro/food-billing-app/utils"
)

const twilioAPIBase = "https://api.twilio.com/2010-04-01"

// WhatsAppChannel delivers the bill link over WhatsApp through the Twilio
// Messages API.
type WhatsAppChannel struct {
	cfg        *config.AppConfig
	httpClient *http.Client
	apiBase    string
}

func NewWhatsAppChannel(cfg *config.AppConfig) *WhatsAppChannel {
	return &WhatsAppChannel{
		cfg: cfg,
		httpClient: &http.Client{
			Timeout: 15 * time.Second,
		},
		apiBase: twilioAPIBase,
	}
}

func (w *WhatsAppChannel) Name() string { return "whatsapp" }

func (w *WhatsAppChannel) Configured() bool { return w.cfg.WhatsAppConfigured() }

func (w *WhatsAppChannel) Send(ctx context.Context, bill *models.Bill, link, _ string) error {
	// Stored numbers without a '+' get the default country code prepended.
	to := utils.NormalizePhone(bill.Customer.Mobile, w.cfg.DefaultCountryCode)
	from := strings.TrimPrefix(w.cfg.TwilioWhatsAppFrom, "whatsapp:")

	form := url.Values{}
	form.Set("From", "whatsapp:"+from)
	form.Set("To", "whatsapp:"+to)
	form.Set("Body", fmt.Sprintf("Hello %s, your bill is ready! Click here: %s", bill.Customer.Name, link))

	endpoint := fmt.Sprintf("%s/Accounts/%s/Messages.json", w.apiBase, w.cfg.TwilioAccountSID)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return fmt.Errorf("build twilio request: %w", err)
	}
	req.SetBasicAuth(w.cfg.TwilioAccountSID, w.cfg.TwilioAuthToken)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := w.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("twilio request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("twilio returned %d: %s", resp.StatusCode, string(snippet))
	}
	return nil
}
