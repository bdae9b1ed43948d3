package services

import (
	"context"
	"fmt"

	"gopkg.in/gomail.v2"

	"github.com/xyzrestro/food-billing-app/config"
	"github.com/xyzrestro/food-billing-app/models"
)

// EmailChannel delivers the bill link by SMTP email.
type EmailChannel struct {
	cfg *config.AppConfig
}

func NewEmailChannel(cfg *config.AppConfig) *EmailChannel {
	return &EmailChannel{cfg: cfg}
}

func (e *EmailChannel) Name() string { return "email" }

func (e *EmailChannel) Configured() bool { return e.cfg.EmailConfigured() }

func (e *EmailChannel) Send(_ context.Context, bill *models.Bill, link, body string) error {
	m := gomail.NewMessage()
	m.SetAddressHeader("From", e.cfg.SMTPUser, e.cfg.RestaurantName)
	m.SetHeader("To", bill.Customer.Email)
	m.SetHeader("Subject", "Your Bill from "+e.cfg.RestaurantName)
	m.SetBody("text/plain", fmt.Sprintf(
		"Hello %s,\n\nYour bill is ready. View it here: %s\n\n%s\n\nThank you!",
		bill.Customer.Name, link, body))

	d := gomail.NewDialer(e.cfg.SMTPHost, e.cfg.SMTPPort, e.cfg.SMTPUser, e.cfg.SMTPPass)
	if err := d.DialAndSend(m); err != nil {
		return fmt.Errorf("smtp send: %w", err)
	}
	return nil
}
