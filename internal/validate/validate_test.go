package validate

import (
	"testing"
	"time"
)

var testNow = time.Date(2026, 8, 31, 12, 0, 0, 0, time.UTC)

func validContact() map[string]string {
	return map[string]string{
		"parentName": "Jane Doe",
		"email":      "jane@example.com",
		"phone":      "+254 722 546 993",
		"childAge":   "3 years",
	}
}

func validInquiry() map[string]string {
	return map[string]string{
		"parentName":   "Jane Doe",
		"email":        "jane@example.com",
		"phone":        "+254722546993",
		"relationship": "Mother",
		"childName":    "Amani Doe",
		"dateOfBirth":  "2022-03-15",
		"program":      "PP1",
	}
}

func TestContactValid(t *testing.T) {
	if errs := run(contactRules, validContact(), testNow); len(errs) != 0 {
		t.Fatalf("expected valid, got %v", errs)
	}
}

func TestContactRequiredFields(t *testing.T) {
	for _, field := range []string{"parentName", "email", "phone", "childAge"} {
		fields := validContact()
		delete(fields, field)
		errs := run(contactRules, fields, testNow)
		if len(errs) != 1 {
			t.Fatalf("%s missing: got %d errors, want 1", field, len(errs))
		}
		if errs[0].Field != field {
			t.Fatalf("%s missing: reported field %q", field, errs[0].Field)
		}
	}
}

func TestWhitespaceOnlyIsMissing(t *testing.T) {
	fields := validContact()
	fields["parentName"] = "   "
	errs := run(contactRules, fields, testNow)
	if len(errs) != 1 || errs[0].Field != "parentName" {
		t.Fatalf("got %v", errs)
	}
}

func TestFirstFailingFieldWins(t *testing.T) {
	fields := validContact()
	delete(fields, "parentName")
	fields["email"] = "not-an-email"
	errs := run(contactRules, fields, testNow)
	if len(errs) != 2 {
		t.Fatalf("got %d errors, want 2", len(errs))
	}
	if errs[0].Field != "parentName" {
		t.Fatalf("first error = %q, want parentName", errs[0].Field)
	}
}

func TestEmailFormat(t *testing.T) {
	cases := []struct {
		email string
		ok    bool
	}{
		{"jane@example.com", true},
		{"j.doe+tag@mail.co.ke", true},
		{"a@b.c", true},
		{"plainaddress", false},
		{"missing@tld", false},
		{"spaces in@example.com", false},
		{"@example.com", false},
		{"jane@", false},
	}
	for _, c := range cases {
		fields := validContact()
		fields["email"] = c.email
		errs := run(contactRules, fields, testNow)
		if c.ok && len(errs) != 0 {
			t.Errorf("%q: expected valid, got %v", c.email, errs)
		}
		if !c.ok && (len(errs) == 0 || errs[0].Field != "email") {
			t.Errorf("%q: expected email error, got %v", c.email, errs)
		}
	}
}

func TestPhoneFormat(t *testing.T) {
	cases := []struct {
		phone string
		ok    bool
	}{
		{"+254 722 546 993", true},
		{"+254722546993", true},
		{"(0722) 546-993", true},
		{"0722546993", true},
		{"12345", false},      // too few digits
		{"07x2546993", false}, // invalid character
		{"+254 722 ABC 993", false},
	}
	for _, c := range cases {
		fields := validContact()
		fields["phone"] = c.phone
		errs := run(contactRules, fields, testNow)
		if c.ok && len(errs) != 0 {
			t.Errorf("%q: expected valid, got %v", c.phone, errs)
		}
		if !c.ok && (len(errs) == 0 || errs[0].Field != "phone") {
			t.Errorf("%q: expected phone error, got %v", c.phone, errs)
		}
	}
}

func TestDateOfBirth(t *testing.T) {
	cases := []struct {
		name string
		dob  string
		ok   bool
	}{
		{"exactly 2 today", "2024-08-31", true},
		{"exactly 6 today", "2020-08-31", true},
		{"middle of range", "2022-03-15", true},
		{"turns 2 tomorrow", "2024-09-01", false},
		{"already 7", "2019-08-31", false},
		{"in the future", "2027-01-01", false},
		{"not a date", "yesterday", false},
	}
	for _, c := range cases {
		fields := validInquiry()
		fields["dateOfBirth"] = c.dob
		errs := run(inquiryRules, fields, testNow)
		if c.ok && len(errs) != 0 {
			t.Errorf("%s (%s): expected valid, got %v", c.name, c.dob, errs)
		}
		if !c.ok && (len(errs) == 0 || errs[0].Field != "dateOfBirth") {
			t.Errorf("%s (%s): expected dateOfBirth error, got %v", c.name, c.dob, errs)
		}
	}
}

func TestChoiceVocabularies(t *testing.T) {
	fields := validInquiry()
	fields["program"] = "Robotics"
	errs := run(inquiryRules, fields, testNow)
	if len(errs) == 0 || errs[0].Field != "program" {
		t.Fatalf("out-of-vocabulary program: got %v", errs)
	}

	fields = validInquiry()
	fields["relationship"] = "Neighbour"
	errs = run(inquiryRules, fields, testNow)
	if len(errs) == 0 || errs[0].Field != "relationship" {
		t.Fatalf("out-of-vocabulary relationship: got %v", errs)
	}

	cFields := validContact()
	cFields["childAge"] = "14 years"
	errs = run(contactRules, cFields, testNow)
	if len(errs) == 0 || errs[0].Field != "childAge" {
		t.Fatalf("out-of-vocabulary age bracket: got %v", errs)
	}
}

func TestInquiryStepAssignment(t *testing.T) {
	fields := validInquiry()
	delete(fields, "childName")
	errs := run(inquiryRules, fields, testNow)
	if len(errs) != 1 {
		t.Fatalf("got %d errors, want 1", len(errs))
	}
	if errs[0].Step != 2 {
		t.Fatalf("childName step = %d, want 2", errs[0].Step)
	}
}

func TestStepThreeHasNoRequiredFields(t *testing.T) {
	// A minimal valid inquiry omits every step-3 field.
	if errs := run(inquiryRules, validInquiry(), testNow); len(errs) != 0 {
		t.Fatalf("expected valid, got %v", errs)
	}
}

func TestAgeAt(t *testing.T) {
	dob := time.Date(2022, 9, 1, 0, 0, 0, 0, time.UTC)
	if got := ageAt(dob, time.Date(2026, 8, 31, 0, 0, 0, 0, time.UTC)); got != 3 {
		t.Fatalf("day before birthday: age = %d, want 3", got)
	}
	if got := ageAt(dob, time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)); got != 4 {
		t.Fatalf("on birthday: age = %d, want 4", got)
	}
}
