package service

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/nyaruka/phonenumbers"
	"golang.org/x/net/idna"
)

var (
	emailPattern = regexp.MustCompile(`^[a-zA-Z0-9._%+\-']+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)
	idnaProfile  = idna.Lookup
)

// ValidateEmail checks the address shape and that the domain is a valid
// hostname under IDNA lookup rules.
func ValidateEmail(email string) error {
	email = strings.TrimSpace(email)
	if email == "" {
		return fmt.Errorf("email is required")
	}
	if !emailPattern.MatchString(email) {
		return fmt.Errorf("email is malformed")
	}

	at := strings.LastIndex(email, "@")
	domain := email[at+1:]
	if _, err := idnaProfile.ToASCII(domain); err != nil {
		return fmt.Errorf("email domain is invalid: %w", err)
	}
	return nil
}

// NormalizePhone parses the number against the configured default region
// and returns it in E.164. Unparseable input is returned verbatim with
// ok=false; lead capture favors keeping what the visitor typed over
// rejecting the form.
func NormalizePhone(raw, region string) (string, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", false
	}

	parsed, err := phonenumbers.Parse(raw, region)
	if err != nil || !phonenumbers.IsValidNumber(parsed) {
		return raw, false
	}
	return phonenumbers.Format(parsed, phonenumbers.E164), true
}
