package validators

import "strings"

// IsEmailShaped is a cheap structural check. Deliverability is the
// mail provider's problem; this only rejects obvious garbage before
// a row is written.
func IsEmailShaped(email string) bool {
	at := strings.LastIndex(email, "@")
	if at <= 0 || at == len(email)-1 {
		return false
	}
	domain := email[at+1:]
	return strings.Contains(domain, ".") && !strings.ContainsAny(email, " \t\n")
}
