package email

import (
	"context"
	"fmt"
	"net/smtp"
	"strings"

	portssvc "github.com/signordemola/belize-app/internal/core/ports/services"
	"github.com/signordemola/belize-app/internal/dto"
	"github.com/signordemola/belize-app/internal/platform/config"
)

// SMTPSender delivers transaction receipt emails over plain SMTP. When no
// host is configured every send is a no-op, so development environments work
// without a mail server.
type SMTPSender struct {
	host string
	port string
	user string
	pass string
	from string
}

// NewSMTPSender creates an email sender from the SMTP config section.
func NewSMTPSender(cfg *config.Config) *SMTPSender {
	return &SMTPSender{
		host: cfg.SMTPHost,
		port: cfg.SMTPPort,
		user: cfg.SMTPUser,
		pass: cfg.SMTPPass,
		from: cfg.SMTPFrom,
	}
}

var _ portssvc.EmailSender = (*SMTPSender)(nil)

// SendTransactionReceipt sends a plain-text receipt for a committed balance
// adjustment. Callers treat failures as non-fatal.
func (s *SMTPSender) SendTransactionReceipt(ctx context.Context, to string, receipt dto.TransactionReceipt) error {
	if s.host == "" {
		return nil
	}
	if to == "" {
		return fmt.Errorf("recipient email is empty")
	}

	subject := fmt.Sprintf("Transaction receipt %s", receipt.Reference)
	var body strings.Builder
	fmt.Fprintf(&body, "A %s of $%s has been applied to your account.\r\n\r\n", strings.ToLower(receipt.Type), receipt.Amount.StringFixed(2))
	fmt.Fprintf(&body, "Reference: %s\r\n", receipt.Reference)
	fmt.Fprintf(&body, "Date: %s\r\n", receipt.Date.Format("Jan 2, 2006 15:04 MST"))
	fmt.Fprintf(&body, "Notes: %s\r\n", receipt.Notes)
	fmt.Fprintf(&body, "New balance: $%s\r\n", receipt.NewBalance.StringFixed(2))

	msg := fmt.Sprintf("From: %s\r\nTo: %s\r\nSubject: %s\r\n\r\n%s", s.from, to, subject, body.String())

	var auth smtp.Auth
	if s.user != "" {
		auth = smtp.PlainAuth("", s.user, s.pass, s.host)
	}

	done := make(chan error, 1)
	go func() {
		done <- smtp.SendMail(s.host+":"+s.port, auth, s.from, []string{to}, []byte(msg))
	}()

	select {
	case err := <-done:
		if err != nil {
			return fmt.Errorf("failed to send receipt email: %w", err)
		}
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
