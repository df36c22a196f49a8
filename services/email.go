package services

import (
	"bytes"
	"fmt"
	"log"
	"strings"
	"text/template"

	"law_site_go/config"

	"github.com/resend/resend-go/v2"
)

// Email represents an email message
type Email struct {
	To       []string
	Subject  string
	HTMLBody string
	TextBody string
}

// SendEmail sends an email using Resend API
func SendEmail(cfg *config.Config, email *Email) error {
	// In development mode, log the email instead of sending
	if cfg.EmailTestMode {
		logEmailToConsole(email)
		return nil
	}

	if cfg.ResendAPIKey == "" {
		return fmt.Errorf("RESEND_API_KEY not configured")
	}
	if email.HTMLBody == "" && email.TextBody == "" {
		return fmt.Errorf("email must have either HTMLBody or TextBody")
	}

	client := resend.NewClient(cfg.ResendAPIKey)

	params := &resend.SendEmailRequest{
		From:    fmt.Sprintf("%s <%s>", cfg.EmailFromName, cfg.EmailFrom),
		To:      email.To,
		Subject: email.Subject,
	}
	if email.HTMLBody != "" {
		params.Html = email.HTMLBody
	}
	if email.TextBody != "" {
		params.Text = email.TextBody
	}

	sent, err := client.Emails.Send(params)
	if err != nil {
		return fmt.Errorf("failed to send email via Resend: %v", err)
	}

	log.Printf("Email sent via Resend (ID: %s) to: %v", sent.Id, email.To)
	return nil
}

// logEmailToConsole logs email details to console in development mode
func logEmailToConsole(email *Email) {
	separator := strings.Repeat("=", 80)
	log.Printf("\n%s\nEMAIL (Development Mode - Not Actually Sent)\n%s", separator, separator)
	log.Printf("To: %v", email.To)
	log.Printf("Subject: %s", email.Subject)
	log.Printf("\n--- TEXT BODY ---\n%s", email.TextBody)
	log.Printf("%s\n", separator)
}

func renderTemplate(tmpl string, data interface{}) string {
	t, err := template.New("email").Parse(tmpl)
	if err != nil {
		log.Printf("Error parsing email template: %v", err)
		return ""
	}
	var buf bytes.Buffer
	if err := t.Execute(&buf, data); err != nil {
		log.Printf("Error rendering email template: %v", err)
		return ""
	}
	return buf.String()
}

// ContactNotificationData fills the firm-inbox notification for a contact
// form submission.
type ContactNotificationData struct {
	Name    string
	Email   string
	Phone   string
	Service string
	Message string
}

const contactNotificationText = `New contact form submission

Name: {{.Name}}
Email: {{.Email}}
Phone: {{.Phone}}
Service: {{.Service}}

Message:
{{.Message}}
`

// BuildContactNotificationEmail builds the internal notification sent to the
// firm inbox when the contact form is submitted.
func BuildContactNotificationEmail(to string, data ContactNotificationData) *Email {
	return &Email{
		To:       []string{to},
		Subject:  fmt.Sprintf("New contact form submission from %s", data.Name),
		TextBody: renderTemplate(contactNotificationText, data),
	}
}

// AppointmentEmailData fills both appointment emails.
type AppointmentEmailData struct {
	Name    string
	Email   string
	Phone   string
	Service string
	Date    string
	Time    string
}

const appointmentConfirmationTextEN = `Dear {{.Name}},

Your consultation request has been received.

Service: {{.Service}}
Date: {{.Date}}
Time: {{.Time}}

Our team will contact you shortly to confirm the appointment.
`

const appointmentConfirmationTextAR = `عزيزي {{.Name}}،

تم استلام طلب الاستشارة الخاص بك.

الخدمة: {{.Service}}
التاريخ: {{.Date}}
الوقت: {{.Time}}

سيتواصل معك فريقنا قريباً لتأكيد الموعد.
`

const appointmentNotificationText = `New consultation booking

Name: {{.Name}}
Email: {{.Email}}
Phone: {{.Phone}}
Service: {{.Service}}
Date: {{.Date}}
Time: {{.Time}}
`

// BuildAppointmentConfirmationEmail builds the client-facing confirmation in
// the client's language ("en" or "ar").
func BuildAppointmentConfirmationEmail(to string, data AppointmentEmailData, lang string) *Email {
	tmpl := appointmentConfirmationTextEN
	subject := "Your consultation request"
	if lang == "ar" {
		tmpl = appointmentConfirmationTextAR
		subject = "طلب الاستشارة الخاص بك"
	}
	return &Email{
		To:       []string{to},
		Subject:  subject,
		TextBody: renderTemplate(tmpl, data),
	}
}

// BuildAppointmentNotificationEmail builds the internal notification sent to
// the firm inbox for a new booking.
func BuildAppointmentNotificationEmail(to string, data AppointmentEmailData) *Email {
	return &Email{
		To:       []string{to},
		Subject:  fmt.Sprintf("New consultation booking from %s", data.Name),
		TextBody: renderTemplate(appointmentNotificationText, data),
	}
}
