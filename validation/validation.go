// Package validation implements the field rules applied to visitor submitted
// forms. Each rule is independent of the others; a form is accepted only when
// every field passes.
package validation

import (
	"strings"
	"unicode"
	"unicode/utf8"

	apperrors "github.com/diljithmon170/GK-Group/errors"
	"github.com/diljithmon170/GK-Group/pkg/sanitize"
	"github.com/diljithmon170/GK-Group/types"
	"github.com/go-playground/validator/v10"
)

// Rejection reasons surfaced to visitors.
const (
	ReasonTooShort           = "too short"
	ReasonTooLong            = "too long"
	ReasonInvalidCharacters  = "invalid characters"
	ReasonInvalidEmailFormat = "invalid email format"
	ReasonInvalidChoice      = "invalid choice"
)

// Field length limits, counted in Unicode code points.
const (
	NameMinLen    = 2
	NameMaxLen    = 100
	PhoneMinLen   = 6
	SubjectMinLen = 2
	SubjectMaxLen = 200
	MessageMinLen = 10
	MessageMaxLen = 2000
	EmailMaxLen   = 254
)

const interestAreaTag = "interest_area"

// Rules applies the form rules. The zero value is not usable; use New.
type Rules struct {
	strictEmail bool
	validate    *validator.Validate
}

// New returns Rules. When strictEmail is set, addresses must also pass the
// RFC 5322 check of the validator library on top of the basic shape rule.
func New(strictEmail bool) *Rules {
	v := validator.New()
	// Registration only fails for an empty tag or nil func.
	_ = v.RegisterValidation(interestAreaTag, func(fl validator.FieldLevel) bool {
		return types.InterestArea(fl.Field().String()).IsValid()
	})
	return &Rules{strictEmail: strictEmail, validate: v}
}

// Name strips markup, collapses whitespace and checks length and characters.
func Name(raw string) (string, []string) {
	name := sanitize.Line(raw)
	reasons := checkLength(name, NameMinLen, NameMaxLen)
	for _, r := range name {
		if !unicode.IsLetter(r) && r != ' ' && r != '.' {
			reasons = append(reasons, ReasonInvalidCharacters)
			break
		}
	}
	return name, reasons
}

// Phone validates an optional phone number. An empty value is accepted.
// Length and characters are checked on the text as typed; whitespace is only
// collapsed in the returned value.
func Phone(raw string) (string, []string) {
	phone := sanitize.StripTags(raw)
	if phone == "" {
		return "", nil
	}

	var reasons []string
	if utf8.RuneCountInString(phone) < PhoneMinLen {
		reasons = append(reasons, ReasonTooShort)
	}
	for _, r := range phone {
		if !isPhoneRune(r) {
			reasons = append(reasons, ReasonInvalidCharacters)
			break
		}
	}
	return sanitize.CollapseSpace(phone), reasons
}

func isPhoneRune(r rune) bool {
	switch {
	case r >= '0' && r <= '9':
		return true
	case r == '+', r == '-', r == ' ', r == '(', r == ')':
		return true
	}
	return false
}

// Subject strips markup and checks length.
func Subject(raw string) (string, []string) {
	subject := sanitize.Line(raw)
	return subject, checkLength(subject, SubjectMinLen, SubjectMaxLen)
}

// Message strips markup and checks length. Line breaks inside the message
// are kept.
func Message(raw string) (string, []string) {
	message := sanitize.Text(raw)
	return message, checkLength(message, MessageMinLen, MessageMaxLen)
}

// Email trims and lowercases an address and checks its format.
func (v *Rules) Email(raw string) (string, []string) {
	email := strings.ToLower(strings.TrimSpace(raw))
	if !strings.Contains(email, "@") || !strings.Contains(email, ".") ||
		utf8.RuneCountInString(email) > EmailMaxLen {
		return email, []string{ReasonInvalidEmailFormat}
	}
	if v.strictEmail {
		if err := v.validate.Var(email, "email"); err != nil {
			return email, []string{ReasonInvalidEmailFormat}
		}
	}
	return email, nil
}

// InterestArea resolves an interest area. Empty input selects the general area.
func (v *Rules) InterestArea(raw string) (types.InterestArea, []string) {
	area := strings.ToLower(strings.TrimSpace(raw))
	if area == "" {
		return types.InterestGeneral, nil
	}
	if err := v.validate.Var(area, interestAreaTag); err != nil {
		return types.InterestArea(area), []string{ReasonInvalidChoice}
	}
	return types.InterestArea(area), nil
}

// Contact validates a whole contact form. On success it returns the
// normalized message and nil; otherwise the returned FieldErrors names every
// failing field and the message must not be stored.
func (v *Rules) Contact(sub types.ContactSubmission) (*types.ContactMessage, apperrors.FieldErrors) {
	fieldErrs := apperrors.FieldErrors{}
	msg := &types.ContactMessage{}

	var reasons []string
	msg.Name, reasons = Name(sub.Name)
	addAll(fieldErrs, "name", reasons)

	msg.Email, reasons = v.Email(sub.Email)
	addAll(fieldErrs, "email", reasons)

	msg.Phone, reasons = Phone(sub.Phone)
	addAll(fieldErrs, "phone", reasons)

	msg.Subject, reasons = Subject(sub.Subject)
	addAll(fieldErrs, "subject", reasons)

	msg.InterestArea, reasons = v.InterestArea(sub.InterestArea)
	addAll(fieldErrs, "interest_area", reasons)

	msg.Message, reasons = Message(sub.Message)
	addAll(fieldErrs, "message", reasons)

	if len(fieldErrs) > 0 {
		return nil, fieldErrs
	}
	return msg, nil
}

// NewsletterEmail validates a newsletter signup address.
func (v *Rules) NewsletterEmail(raw string) (string, apperrors.FieldErrors) {
	email, reasons := v.Email(raw)
	if len(reasons) > 0 {
		fieldErrs := apperrors.FieldErrors{}
		addAll(fieldErrs, "email", reasons)
		return "", fieldErrs
	}
	return email, nil
}

func checkLength(s string, minLen, maxLen int) []string {
	n := utf8.RuneCountInString(s)
	switch {
	case n < minLen:
		return []string{ReasonTooShort}
	case n > maxLen:
		return []string{ReasonTooLong}
	}
	return nil
}

func addAll(fe apperrors.FieldErrors, field string, reasons []string) {
	for _, r := range reasons {
		fe.Add(field, r)
	}
}
