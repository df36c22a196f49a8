package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"regexp"
	"strings"

	"law_site_go/config"
	"law_site_go/models"
	"law_site_go/services/cms"
)

// ErrAlreadySubscribed signals the duplicate-email pre-check fired; this is
// a recoverable user-facing condition, not a system error.
var ErrAlreadySubscribed = errors.New("email is already subscribed")

// ValidationError is raised client-side, before any network call.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// IsValidationError reports whether err is a pre-network validation failure.
func IsValidationError(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

var emailPattern = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

func validateEmail(email string) error {
	if email == "" {
		return &ValidationError{Field: "email", Message: "email is required"}
	}
	if !emailPattern.MatchString(email) {
		return &ValidationError{Field: "email", Message: "invalid email address"}
	}
	return nil
}

// LeadService handles the three write flows: newsletter subscription,
// contact submission and appointment booking. No idempotency key is used; a
// double-submit can create duplicate contact/appointment records, which is
// accepted for this class of system.
type LeadService struct {
	cms *cms.Client
	cfg *config.Config
}

// NewLeadService creates a new lead service instance
func NewLeadService(client *cms.Client, cfg *config.Config) *LeadService {
	return &LeadService{cms: client, cfg: cfg}
}

// Subscribe validates the email, pre-checks uniqueness and creates the
// subscriber. A duplicate returns ErrAlreadySubscribed without issuing a
// create call.
func (s *LeadService) Subscribe(ctx context.Context, email string) (*models.Subscriber, error) {
	email = strings.TrimSpace(strings.ToLower(email))
	if err := validateEmail(email); err != nil {
		return nil, err
	}

	exists, err := s.cms.SubscriberExists(ctx, email)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrAlreadySubscribed
	}

	return s.cms.CreateSubscriber(ctx, email)
}

// ContactForm is the user-submitted contact payload.
type ContactForm struct {
	Name    string `json:"name" form:"name"`
	Email   string `json:"email" form:"email"`
	Phone   string `json:"phone" form:"phone"`
	Service string `json:"service" form:"service"`
	Message string `json:"message" form:"message"`
}

func (f *ContactForm) validate() error {
	if strings.TrimSpace(f.Name) == "" {
		return &ValidationError{Field: "name", Message: "name is required"}
	}
	if err := validateEmail(strings.TrimSpace(f.Email)); err != nil {
		return err
	}
	if strings.TrimSpace(f.Message) == "" {
		return &ValidationError{Field: "message", Message: "message is required"}
	}
	return nil
}

// SubmitContact validates and records a contact submission, then notifies
// the firm inbox asynchronously. Email failure never fails the submission.
func (s *LeadService) SubmitContact(ctx context.Context, form ContactForm) error {
	if err := form.validate(); err != nil {
		return err
	}

	err := s.cms.CreateContactSubmission(ctx, cms.ContactSubmission{
		Name:    strings.TrimSpace(form.Name),
		Email:   strings.TrimSpace(form.Email),
		Phone:   strings.TrimSpace(form.Phone),
		Service: form.Service,
		Message: strings.TrimSpace(form.Message),
	})
	if err != nil {
		return err
	}

	go func() {
		email := BuildContactNotificationEmail(s.cfg.ContactInbox, ContactNotificationData{
			Name:    form.Name,
			Email:   form.Email,
			Phone:   form.Phone,
			Service: form.Service,
			Message: form.Message,
		})
		if err := SendEmail(s.cfg, email); err != nil {
			log.Printf("Failed to send contact notification: %v", err)
		}
	}()

	return nil
}

// AppointmentForm is the user-submitted booking payload.
type AppointmentForm struct {
	Name    string `json:"name" form:"name"`
	Email   string `json:"email" form:"email"`
	Phone   string `json:"phone" form:"phone"`
	Service string `json:"service" form:"service"`
	Date    string `json:"date" form:"date"` // 2006-01-02
	Time    string `json:"time" form:"time"` // 15:04
	Message string `json:"message" form:"message"`
}

func (f *AppointmentForm) validate() error {
	if strings.TrimSpace(f.Name) == "" {
		return &ValidationError{Field: "name", Message: "name is required"}
	}
	if err := validateEmail(strings.TrimSpace(f.Email)); err != nil {
		return err
	}
	if f.Service == "" {
		return &ValidationError{Field: "service", Message: "service is required"}
	}
	if f.Date == "" {
		return &ValidationError{Field: "date", Message: "date is required"}
	}
	if _, err := ParseDate(f.Date); err != nil {
		return &ValidationError{Field: "date", Message: err.Error()}
	}
	if f.Time == "" {
		return &ValidationError{Field: "time", Message: "time is required"}
	}
	return nil
}

// BookAppointment validates and records a consultation request, then sends
// a confirmation to the client and a notification to the firm inbox.
func (s *LeadService) BookAppointment(ctx context.Context, form AppointmentForm, lang string) error {
	if err := form.validate(); err != nil {
		return err
	}

	err := s.cms.CreateAppointment(ctx, cms.AppointmentRequest{
		Name:    strings.TrimSpace(form.Name),
		Email:   strings.TrimSpace(form.Email),
		Phone:   strings.TrimSpace(form.Phone),
		Service: form.Service,
		Date:    form.Date,
		Time:    form.Time,
		Message: strings.TrimSpace(form.Message),
	})
	if err != nil {
		return err
	}

	go func() {
		data := AppointmentEmailData{
			Name:    form.Name,
			Email:   form.Email,
			Phone:   form.Phone,
			Service: form.Service,
			Date:    form.Date,
			Time:    form.Time,
		}
		if err := SendEmail(s.cfg, BuildAppointmentConfirmationEmail(form.Email, data, lang)); err != nil {
			log.Printf("Failed to send appointment confirmation: %v", err)
		}
		if err := SendEmail(s.cfg, BuildAppointmentNotificationEmail(s.cfg.ContactInbox, data)); err != nil {
			log.Printf("Failed to send appointment notification: %v", err)
		}
	}()

	return nil
}
