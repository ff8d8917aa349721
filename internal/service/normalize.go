package service

import (
	"strings"

	"github.com/nyaruka/phonenumbers"
	"golang.org/x/net/idna"
)

var idnaProfile = idna.Lookup

// NormalizePhone formats a raw phone number to E.164 when it parses cleanly
// for the given region. Anything else is returned trimmed but otherwise
// untouched: the data layer stores free text and never rejects a phone.
func NormalizePhone(raw, region string) string {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return ""
	}

	number, err := phonenumbers.Parse(trimmed, region)
	if err != nil {
		return trimmed
	}
	if !phonenumbers.IsPossibleNumber(number) || !phonenumbers.IsValidNumber(number) {
		return trimmed
	}
	return phonenumbers.Format(number, phonenumbers.E164)
}

// NormalizeEmail lowercases the address and converts an internationalised
// domain to its ASCII form. Invalid shapes come back trimmed and lowercased;
// email is an optional attribute and never blocks a mutation.
func NormalizeEmail(raw string) string {
	trimmed := strings.ToLower(strings.TrimSpace(raw))
	at := strings.LastIndex(trimmed, "@")
	if at <= 0 || at == len(trimmed)-1 {
		return trimmed
	}

	domain, err := idnaProfile.ToASCII(trimmed[at+1:])
	if err != nil {
		return trimmed
	}
	return trimmed[:at+1] + domain
}
