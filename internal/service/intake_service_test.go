package service

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/TimKirathe/wonderland-api/internal/repository"
	"github.com/TimKirathe/wonderland-api/internal/store"
)

// fakeBackend plays the record store, capturing every inserted record.
type fakeBackend struct {
	mu      sync.Mutex
	inserts map[string][]map[string]any // collection -> records
	status  int
	body    string
}

func newFakeBackend() *fakeBackend {
	return &fakeBackend{inserts: make(map[string][]map[string]any), status: http.StatusCreated}
}

func (b *fakeBackend) handler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodPost {
			collection := r.URL.Path[len("/rest/v1/"):]
			body, _ := io.ReadAll(r.Body)
			var record map[string]any
			_ = json.Unmarshal(body, &record)
			b.mu.Lock()
			b.inserts[collection] = append(b.inserts[collection], record)
			b.mu.Unlock()
		}
		w.WriteHeader(b.status)
		if b.body != "" {
			_, _ = w.Write([]byte(b.body))
		}
	})
}

func (b *fakeBackend) inserted(collection string) []map[string]any {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.inserts[collection]
}

// recordingSender captures detached email sends on a channel.
type recordingSender struct {
	sends chan sentEmail
	fail  bool
}

type sentEmail struct {
	to      string
	subject string
	html    string
}

func (s *recordingSender) Send(_ context.Context, to, subject, html string) error {
	s.sends <- sentEmail{to: to, subject: subject, html: html}
	if s.fail {
		return fmt.Errorf("provider rejected message")
	}
	return nil
}

func newTestIntake(t *testing.T, backend *fakeBackend, now time.Time) (*IntakeService, *recordingSender) {
	t.Helper()
	ts := httptest.NewServer(backend.handler())
	t.Cleanup(ts.Close)

	client := store.New(ts.URL, "test-key")
	sender := &recordingSender{sends: make(chan sentEmail, 8)}
	svc := NewIntakeService(
		repository.NewContactRepo(client),
		repository.NewInquiryRepo(client),
		sender,
		"staff@wonderland.sc.ke",
		&IntakeOpts{TimeProvider: func() time.Time { return now }},
	)
	return svc, sender
}

func contactFields() map[string]string {
	return map[string]string{
		"parentName": "Jane Doe",
		"email":      "jane@example.com",
		"phone":      "+254722546993",
		"childAge":   "3 years",
	}
}

func inquiryFields() map[string]string {
	return map[string]string{
		"parentName":   "Jane Doe",
		"email":        "jane@example.com",
		"phone":        "+254722546993",
		"relationship": "Mother",
		"childName":    "Amani Doe",
		"dateOfBirth":  "2023-02-10",
		"program":      "Playgroup",
		"message":      "We would love a tour first.",
	}
}

func waitForEmail(t *testing.T, sender *recordingSender) sentEmail {
	t.Helper()
	select {
	case e := <-sender.sends:
		return e
	case <-time.After(2 * time.Second):
		t.Fatal("no email dispatched")
		return sentEmail{}
	}
}

func TestSubmitContactPersistsRecord(t *testing.T) {
	backend := newFakeBackend()
	now := time.Date(2026, 1, 15, 9, 30, 0, 0, time.UTC)
	svc, sender := newTestIntake(t, backend, now)

	result, fieldErrs, err := svc.SubmitContact(context.Background(), contactFields())
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	if len(fieldErrs) != 0 {
		t.Fatalf("unexpected field errors: %v", fieldErrs)
	}

	wantRef := fmt.Sprintf("REQ-%d", now.UnixMilli())
	if result.ReferenceID != wantRef {
		t.Fatalf("referenceID = %q, want %q", result.ReferenceID, wantRef)
	}

	records := backend.inserted("contact_requests")
	if len(records) != 1 {
		t.Fatalf("inserted %d records, want 1", len(records))
	}
	rec := records[0]
	if rec["status"] != "new" {
		t.Fatalf("status = %v, want new", rec["status"])
	}
	if rec["reference_id"] != wantRef {
		t.Fatalf("reference_id = %v", rec["reference_id"])
	}
	if id, _ := rec["id"].(string); id == "" {
		t.Fatal("record id missing")
	}
	if _, ok := rec["message"]; ok {
		t.Fatal("absent optional field should not be persisted")
	}

	email := waitForEmail(t, sender)
	if email.to != "staff@wonderland.sc.ke" {
		t.Fatalf("notification to = %q", email.to)
	}
}

func TestSubmitContactRejectsInvalidWithoutPersisting(t *testing.T) {
	backend := newFakeBackend()
	svc, _ := newTestIntake(t, backend, time.Now())

	fields := contactFields()
	fields["email"] = "not-an-email"
	result, fieldErrs, err := svc.SubmitContact(context.Background(), fields)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result != nil {
		t.Fatal("expected no result")
	}
	if len(fieldErrs) == 0 || fieldErrs[0].Field != "email" {
		t.Fatalf("field errors = %v", fieldErrs)
	}
	if len(backend.inserted("contact_requests")) != 0 {
		t.Fatal("invalid submission must not be persisted")
	}
}

func TestSubmitContactSurfacesStoreConflict(t *testing.T) {
	backend := newFakeBackend()
	backend.status = http.StatusConflict
	backend.body = `{"message":"duplicate key value violates unique constraint","code":"23505"}`
	svc, _ := newTestIntake(t, backend, time.Now())

	_, _, err := svc.SubmitContact(context.Background(), contactFields())
	if err == nil {
		t.Fatal("expected error")
	}
	if store.KindOf(err) != store.KindConflict {
		t.Fatalf("kind = %v, want KindConflict", store.KindOf(err))
	}
}

func TestSubmitInquirySendsConfirmationAndNotification(t *testing.T) {
	backend := newFakeBackend()
	now := time.Date(2026, 1, 15, 9, 30, 0, 0, time.UTC)
	svc, sender := newTestIntake(t, backend, now)

	result, fieldErrs, err := svc.SubmitInquiry(context.Background(), inquiryFields())
	if err != nil || len(fieldErrs) != 0 {
		t.Fatalf("submit: err=%v fieldErrs=%v", err, fieldErrs)
	}
	wantRef := fmt.Sprintf("INQ-%d", now.UnixMilli())
	if result.ReferenceID != wantRef {
		t.Fatalf("referenceID = %q, want %q", result.ReferenceID, wantRef)
	}

	first := waitForEmail(t, sender)
	second := waitForEmail(t, sender)
	if first.to != "jane@example.com" {
		t.Fatalf("confirmation to = %q", first.to)
	}
	if second.to != "staff@wonderland.sc.ke" {
		t.Fatalf("notification to = %q", second.to)
	}

	records := backend.inserted("enrollment_inquiries")
	if len(records) != 1 {
		t.Fatalf("inserted %d records, want 1", len(records))
	}
	if records[0]["child_name"] != "Amani Doe" {
		t.Fatalf("child_name = %v", records[0]["child_name"])
	}
}

func TestEmailFailureDoesNotFailSubmission(t *testing.T) {
	backend := newFakeBackend()
	svc, sender := newTestIntake(t, backend, time.Now())
	sender.fail = true

	result, fieldErrs, err := svc.SubmitContact(context.Background(), contactFields())
	if err != nil || len(fieldErrs) != 0 || result == nil {
		t.Fatalf("submission should succeed: result=%v errs=%v err=%v", result, fieldErrs, err)
	}
	waitForEmail(t, sender) // the send was attempted and failed, silently
}

// TestReferenceIDCollision demonstrates the documented weakness of
// timestamp-based references: two submissions on the same millisecond share
// one reference. The persisted records stay distinct because each carries
// its own UUID primary key.
func TestReferenceIDCollision(t *testing.T) {
	backend := newFakeBackend()
	now := time.Date(2026, 1, 15, 9, 30, 0, 0, time.UTC)
	svc, _ := newTestIntake(t, backend, now)

	r1, _, err := svc.SubmitContact(context.Background(), contactFields())
	if err != nil {
		t.Fatalf("first submit: %v", err)
	}
	r2, _, err := svc.SubmitContact(context.Background(), contactFields())
	if err != nil {
		t.Fatalf("second submit: %v", err)
	}

	if r1.ReferenceID != r2.ReferenceID {
		t.Fatalf("expected colliding references under a frozen clock, got %q and %q", r1.ReferenceID, r2.ReferenceID)
	}

	records := backend.inserted("contact_requests")
	if len(records) != 2 {
		t.Fatalf("inserted %d records, want 2", len(records))
	}
	if records[0]["id"] == records[1]["id"] {
		t.Fatal("record ids must stay unique even when references collide")
	}
}
