// Package mail sends submission notifications over SMTP.
package mail

import (
	"bytes"
	"context"
	"fmt"
	"text/template"
	"time"

	"frontdesk"

	"github.com/wneessen/go-mail"
)

// Config is the required properties to reach the mail transport.
type Config struct {
	Host     string
	Port     int
	Username string
	Password string
	Sender   string
	Admin    string
	Timeout  time.Duration
}

// Notifier implements frontdesk.Notifier over an SMTP client. Sends are
// bounded by the configured timeout so a stalled provider cannot hang the
// request path.
type Notifier struct {
	client *mail.Client
	cfg    Config
}

func NewNotifier(cfg Config) (*Notifier, error) {
	client, err := mail.NewClient(cfg.Host,
		mail.WithPort(cfg.Port),
		mail.WithSMTPAuth(mail.SMTPAuthPlain),
		mail.WithUsername(cfg.Username),
		mail.WithPassword(cfg.Password),
		mail.WithTLSPolicy(mail.TLSOpportunistic),
		mail.WithTimeout(cfg.Timeout),
	)
	if err != nil {
		return nil, fmt.Errorf("creating smtp client: %w", err)
	}

	return &Notifier{
		client: client,
		cfg:    cfg,
	}, nil
}

// LeadCreated emails a confirmation to the submitter and an alert to the
// administrator for a contact-form submission.
func (n *Notifier) LeadCreated(ctx context.Context, lead frontdesk.Lead) error {
	return n.send(ctx, lead, nil)
}

// BookingCreated does the same for a booking submission; both bodies carry
// the requested booking date.
func (n *Notifier) BookingCreated(ctx context.Context, lead frontdesk.Lead, booking frontdesk.Booking) error {
	return n.send(ctx, lead, &booking)
}

func (n *Notifier) send(ctx context.Context, lead frontdesk.Lead, booking *frontdesk.Booking) error {
	confirmation, err := n.message(lead.Email, submitterSubject(booking), submitterBody(lead, booking))
	if err != nil {
		return err
	}

	alert, err := n.message(n.cfg.Admin, adminSubject(booking), adminBody(lead, booking))
	if err != nil {
		return err
	}

	return n.client.DialAndSendWithContext(ctx, confirmation, alert)
}

func (n *Notifier) message(to, subject, body string) (*mail.Msg, error) {
	msg := mail.NewMsg()
	if err := msg.From(n.cfg.Sender); err != nil {
		return nil, fmt.Errorf("invalid sender %q: %w", n.cfg.Sender, err)
	}
	if err := msg.To(to); err != nil {
		return nil, fmt.Errorf("invalid recipient %q: %w", to, err)
	}
	msg.Subject(subject)
	msg.SetBodyString(mail.TypeTextPlain, body)
	return msg, nil
}

// templateData carries pre-formatted fields so the templates stay flat.
type templateData struct {
	Name        string
	Email       string
	Message     string
	SubmittedAt string
	BookingDate string
}

func newTemplateData(lead frontdesk.Lead, booking *frontdesk.Booking) templateData {
	data := templateData{
		Name:        lead.Name,
		Email:       lead.Email,
		Message:     lead.Message,
		SubmittedAt: lead.CreatedAt.Format("2006-01-02 15:04:05 MST"),
	}
	if booking != nil {
		data.BookingDate = booking.BookingDate.Format("2006-01-02 15:04:05 MST")
	}
	return data
}

var (
	submitterContactTmpl = template.Must(template.New("submitter-contact").Parse(
		`Hi {{.Name}},

Thanks for reaching out. We received your message and will get back to you
as soon as possible.
`))

	submitterBookingTmpl = template.Must(template.New("submitter-booking").Parse(
		`Hi {{.Name}},

Thanks for your booking request for {{.BookingDate}}. We will confirm your
appointment as soon as possible.
`))

	adminContactTmpl = template.Must(template.New("admin-contact").Parse(
		`New contact form submission:

Name: {{.Name}}
Email: {{.Email}}
Message: {{.Message}}

Submitted at: {{.SubmittedAt}}
`))

	adminBookingTmpl = template.Must(template.New("admin-booking").Parse(
		`New booking request:

Name: {{.Name}}
Email: {{.Email}}
Message: {{.Message}}
Requested date: {{.BookingDate}}

Submitted at: {{.SubmittedAt}}
`))
)

func submitterSubject(booking *frontdesk.Booking) string {
	if booking != nil {
		return "We received your booking request"
	}
	return "We received your message"
}

func adminSubject(booking *frontdesk.Booking) string {
	if booking != nil {
		return "New Booking Request"
	}
	return "New Contact Form Submission"
}

func submitterBody(lead frontdesk.Lead, booking *frontdesk.Booking) string {
	tmpl := submitterContactTmpl
	if booking != nil {
		tmpl = submitterBookingTmpl
	}
	return render(tmpl, newTemplateData(lead, booking))
}

func adminBody(lead frontdesk.Lead, booking *frontdesk.Booking) string {
	tmpl := adminContactTmpl
	if booking != nil {
		tmpl = adminBookingTmpl
	}
	return render(tmpl, newTemplateData(lead, booking))
}

func render(tmpl *template.Template, data templateData) string {
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		// The templates are fixed and the data is a flat struct, so an
		// execution failure is a programming error.
		panic("mail-template-render:" + err.Error())
	}
	return buf.String()
}
