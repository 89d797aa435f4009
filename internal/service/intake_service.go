package service

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/TimKirathe/wonderland-api/internal/mailer"
	"github.com/TimKirathe/wonderland-api/internal/models"
	"github.com/TimKirathe/wonderland-api/internal/repository"
	"github.com/TimKirathe/wonderland-api/internal/validate"
)

const notifyTimeout = 15 * time.Second

// IntakeService turns validated form submissions into persisted records and
// fires the notification emails. Email dispatch is detached: a submission
// succeeds the moment its record is stored.
type IntakeService struct {
	contacts   *repository.ContactRepo
	inquiries  *repository.InquiryRepo
	mail       mailer.Sender
	staffEmail string

	timeProvider func() time.Time
}

// IntakeOpts carries optional overrides, mainly for tests.
type IntakeOpts struct {
	TimeProvider func() time.Time
}

func NewIntakeService(
	contacts *repository.ContactRepo,
	inquiries *repository.InquiryRepo,
	mail mailer.Sender,
	staffEmail string,
	opts *IntakeOpts,
) *IntakeService {
	s := &IntakeService{
		contacts:     contacts,
		inquiries:    inquiries,
		mail:         mail,
		staffEmail:   staffEmail,
		timeProvider: time.Now,
	}
	if opts != nil && opts.TimeProvider != nil {
		s.timeProvider = opts.TimeProvider
	}
	return s
}

// IntakeResult is what a successful submission reports back to the browser.
type IntakeResult struct {
	ReferenceID string
	Message     string
}

// SubmitContact validates and stores an information request. A non-empty
// FieldError slice means the input was rejected; err reports store failures.
func (s *IntakeService) SubmitContact(ctx context.Context, fields map[string]string) (*IntakeResult, []validate.FieldError, error) {
	if errs := validate.Contact(fields); len(errs) > 0 {
		return nil, errs, nil
	}

	now := s.timeProvider()
	req := &models.ContactRequest{
		ID:          uuid.NewString(),
		ReferenceID: fmt.Sprintf("REQ-%d", now.UnixMilli()),
		ParentName:  strings.TrimSpace(fields["parentName"]),
		Email:       strings.TrimSpace(fields["email"]),
		Phone:       strings.TrimSpace(fields["phone"]),
		ChildAge:    strings.TrimSpace(fields["childAge"]),
		Message:     optional(fields, "message"),
		Status:      models.StatusNew,
		CreatedAt:   now.UTC().Format(time.RFC3339),
	}

	if err := s.contacts.Create(ctx, req); err != nil {
		return nil, nil, err
	}

	go s.notifyContact(req)

	return &IntakeResult{
		ReferenceID: req.ReferenceID,
		Message:     "Thank you! We have received your request and will be in touch shortly.",
	}, nil, nil
}

// SubmitInquiry validates and stores an enrollment inquiry.
func (s *IntakeService) SubmitInquiry(ctx context.Context, fields map[string]string) (*IntakeResult, []validate.FieldError, error) {
	if errs := validate.Inquiry(fields); len(errs) > 0 {
		return nil, errs, nil
	}

	now := s.timeProvider()
	inq := &models.EnrollmentInquiry{
		ID:                 uuid.NewString(),
		ReferenceID:        fmt.Sprintf("INQ-%d", now.UnixMilli()),
		ParentName:         strings.TrimSpace(fields["parentName"]),
		Email:              strings.TrimSpace(fields["email"]),
		Phone:              strings.TrimSpace(fields["phone"]),
		Relationship:       strings.TrimSpace(fields["relationship"]),
		ChildName:          strings.TrimSpace(fields["childName"]),
		DateOfBirth:        strings.TrimSpace(fields["dateOfBirth"]),
		Program:            strings.TrimSpace(fields["program"]),
		SpecialNeeds:       optional(fields, "specialNeeds"),
		PreviousSchool:     optional(fields, "previousSchool"),
		PreferredStartDate: optional(fields, "preferredStartDate"),
		HowHeard:           optional(fields, "howHeard"),
		Message:            optional(fields, "message"),
		Status:             models.StatusNew,
		CreatedAt:          now.UTC().Format(time.RFC3339),
	}

	if err := s.inquiries.Create(ctx, inq); err != nil {
		return nil, nil, err
	}

	go s.notifyInquiry(inq)

	return &IntakeResult{
		ReferenceID: inq.ReferenceID,
		Message:     "Thank you! Your enrollment inquiry has been received. Check your email for a confirmation.",
	}, nil, nil
}

// notifyContact runs detached from the request; failures are logged and
// never reach the submitter.
func (s *IntakeService) notifyContact(req *models.ContactRequest) {
	ctx, cancel := context.WithTimeout(context.Background(), notifyTimeout)
	defer cancel()

	if s.staffEmail == "" {
		return
	}
	subject, html, err := mailer.ContactNotification(req)
	if err != nil {
		log.Printf("Warning: render notification for %s: %v", req.ReferenceID, err)
		return
	}
	if err := s.mail.Send(ctx, s.staffEmail, subject, html); err != nil {
		log.Printf("Warning: staff notification for %s failed: %v", req.ReferenceID, err)
	}
}

func (s *IntakeService) notifyInquiry(inq *models.EnrollmentInquiry) {
	ctx, cancel := context.WithTimeout(context.Background(), notifyTimeout)
	defer cancel()

	subject, html, err := mailer.InquiryConfirmation(inq)
	if err != nil {
		log.Printf("Warning: render confirmation for %s: %v", inq.ReferenceID, err)
	} else if err := s.mail.Send(ctx, inq.Email, subject, html); err != nil {
		log.Printf("Warning: confirmation for %s failed: %v", inq.ReferenceID, err)
	}

	if s.staffEmail == "" {
		return
	}
	subject, html, err = mailer.InquiryNotification(inq)
	if err != nil {
		log.Printf("Warning: render notification for %s: %v", inq.ReferenceID, err)
		return
	}
	if err := s.mail.Send(ctx, s.staffEmail, subject, html); err != nil {
		log.Printf("Warning: staff notification for %s failed: %v", inq.ReferenceID, err)
	}
}

func optional(fields map[string]string, key string) *string {
	v := strings.TrimSpace(fields[key])
	if v == "" {
		return nil
	}
	return &v
}
