// Package validate holds the one rule table both lead forms share. The site
// widgets read the same vocabularies and rules, so client and server cannot
// drift apart.
package validate

import (
	"regexp"
	"strings"
	"time"
)

var (
	emailRe = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	phoneRe = regexp.MustCompile(`^[+]?[\d\s()-]+$`)
	digitRe = regexp.MustCompile(`\D`)
)

// Allowed vocabularies for the restricted-choice fields.
var (
	AgeBrackets   = []string{"2 years", "3 years", "4 years", "5 years", "6 years"}
	Programs      = []string{"Playgroup", "PP1", "PP2", "Daycare"}
	Relationships = []string{"Mother", "Father", "Guardian", "Other"}
)

// Age limits for enrollment, inclusive.
const (
	MinAge = 2
	MaxAge = 6
)

// FieldError names the field that failed and which form step it lives on,
// so the multi-step form can jump back to the first failing step.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
	Step    int    `json:"step"`
}

type rule struct {
	field    string
	label    string
	step     int
	required bool
	check    func(value string, now time.Time) string
}

// The contact form is single-step; every rule sits on step 1.
var contactRules = []rule{
	{field: "parentName", label: "Parent name", step: 1, required: true},
	{field: "email", label: "Email", step: 1, required: true, check: checkEmail},
	{field: "phone", label: "Phone", step: 1, required: true, check: checkPhone},
	{field: "childAge", label: "Child age", step: 1, required: true, check: oneOf(AgeBrackets, "child age")},
	{field: "message", label: "Message", step: 1},
}

// Enrollment steps: 1 guardian, 2 child, 3 free-form extras (nothing
// required on step 3).
var inquiryRules = []rule{
	{field: "parentName", label: "Parent name", step: 1, required: true},
	{field: "email", label: "Email", step: 1, required: true, check: checkEmail},
	{field: "phone", label: "Phone", step: 1, required: true, check: checkPhone},
	{field: "relationship", label: "Relationship", step: 1, required: true, check: oneOf(Relationships, "relationship")},
	{field: "childName", label: "Child name", step: 2, required: true},
	{field: "dateOfBirth", label: "Date of birth", step: 2, required: true, check: checkDateOfBirth},
	{field: "program", label: "Program", step: 2, required: true, check: oneOf(Programs, "program")},
	{field: "specialNeeds", label: "Special needs", step: 3},
	{field: "previousSchool", label: "Previous school", step: 3},
	{field: "preferredStartDate", label: "Preferred start date", step: 3},
	{field: "howHeard", label: "How you heard about us", step: 3},
	{field: "message", label: "Message", step: 3},
}

// Contact validates an information-request submission. The returned slice
// follows rule-table order, so the first element is the first failing field.
func Contact(fields map[string]string) []FieldError {
	return run(contactRules, fields, time.Now())
}

// Inquiry validates an enrollment-inquiry submission.
func Inquiry(fields map[string]string) []FieldError {
	return run(inquiryRules, fields, time.Now())
}

func run(rules []rule, fields map[string]string, now time.Time) []FieldError {
	var errs []FieldError
	for _, r := range rules {
		value := strings.TrimSpace(fields[r.field])
		if value == "" {
			if r.required {
				errs = append(errs, FieldError{Field: r.field, Message: r.label + " is required", Step: r.step})
			}
			continue
		}
		if r.check != nil {
			if msg := r.check(value, now); msg != "" {
				errs = append(errs, FieldError{Field: r.field, Message: msg, Step: r.step})
			}
		}
	}
	return errs
}

func checkEmail(value string, _ time.Time) string {
	if !emailRe.MatchString(value) {
		return "Please enter a valid email address"
	}
	return ""
}

func checkPhone(value string, _ time.Time) string {
	if !phoneRe.MatchString(value) {
		return "Please enter a valid phone number"
	}
	if len(digitRe.ReplaceAllString(value, "")) < 10 {
		return "Phone number must have at least 10 digits"
	}
	return ""
}

func checkDateOfBirth(value string, now time.Time) string {
	dob, err := time.Parse("2006-01-02", value)
	if err != nil {
		return "Please enter a valid date of birth"
	}
	if dob.After(now) {
		return "Date of birth cannot be in the future"
	}
	age := ageAt(dob, now)
	if age < MinAge || age > MaxAge {
		return "Child must be between 2 and 6 years old"
	}
	return ""
}

// ageAt computes whole years, not counting a birthday that has not yet
// arrived this year.
func ageAt(dob, now time.Time) int {
	years := now.Year() - dob.Year()
	anniversary := dob.AddDate(years, 0, 0)
	if anniversary.After(now) {
		years--
	}
	return years
}

func oneOf(allowed []string, name string) func(string, time.Time) string {
	return func(value string, _ time.Time) string {
		for _, a := range allowed {
			if value == a {
				return ""
			}
		}
		return "Please select a valid " + name
	}
}
