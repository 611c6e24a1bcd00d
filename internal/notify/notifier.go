package notify

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/mithramani/vivaha-backend/config"
	"github.com/mithramani/vivaha-backend/pkg/logger"
)

// InquiryNotification is the snapshot handed to the notification
// collaborator after an inquiry has been durably written.
type InquiryNotification struct {
	InquiryID     string
	CustomerName  string
	CustomerPhone string
	VendorName    string
	VendorSlug    string
	SubmittedAt   time.Time
}

// Notifier delivers an inquiry notification. Implementations must never be
// load-bearing for the write path: the caller treats any error as
// non-fatal.
type Notifier interface {
	Notify(ctx context.Context, n InquiryNotification) error
}

// EmailNotifier renders the admin notification email. The transport is
// log-only: the message is fully formatted and then written to the log
// instead of an SMTP connection, matching the current deployment.
type EmailNotifier struct {
	adminEmail string
	fromEmail  string
}

func NewEmailNotifier(cfg config.NotifyConfig) *EmailNotifier {
	return &EmailNotifier{
		adminEmail: cfg.AdminEmail,
		fromEmail:  cfg.FromEmail,
	}
}

func (e *EmailNotifier) Notify(ctx context.Context, n InquiryNotification) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	subject := fmt.Sprintf("New Contact Inquiry for %s", n.VendorName)
	body := e.renderBody(n)

	logger.Info("Inquiry notification email (transport disabled, logging only)", map[string]interface{}{
		"to":         e.adminEmail,
		"from":       e.fromEmail,
		"subject":    subject,
		"inquiry_id": n.InquiryID,
		"body":       body,
	})
	return nil
}

func (e *EmailNotifier) renderBody(n InquiryNotification) string {
	var b strings.Builder
	b.WriteString("New Contact Inquiry Received\n\n")
	b.WriteString("Customer Details:\n")
	fmt.Fprintf(&b, "- Name: %s\n", n.CustomerName)
	fmt.Fprintf(&b, "- Phone: %s\n\n", n.CustomerPhone)
	fmt.Fprintf(&b, "Vendor: %s\n", n.VendorName)
	fmt.Fprintf(&b, "Vendor Slug: %s\n", n.VendorSlug)
	fmt.Fprintf(&b, "Inquiry ID: %s\n", n.InquiryID)
	fmt.Fprintf(&b, "Submitted At: %s\n\n", n.SubmittedAt.Format(time.RFC1123))
	b.WriteString("Please contact the customer at your earliest convenience.\n")
	return b.String()
}
