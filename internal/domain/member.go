package domain

import "strings"

// Member is a person in the global directory. A member exists once
// across events; attendance rows reference it per event.
type Member struct {
	ID        string `json:"id"`
	Email     string `json:"email,omitempty"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Phone     string `json:"phone,omitempty"`
	Company   string `json:"company,omitempty"`
	Tags      string `json:"tags,omitempty"`
	Notes     string `json:"notes,omitempty"`
	CreatedOn string `json:"created_on,omitempty"`
	UpdatedOn string `json:"updated_on,omitempty"`
}

// FullName joins first and last name for display and matching.
func (m *Member) FullName() string {
	if m.LastName == "" {
		return m.FirstName
	}
	return m.FirstName + " " + m.LastName
}

// NormalizeEmail lowercases and trims an email for identity matching.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// NormalizeName lowercases a name and collapses interior whitespace.
func NormalizeName(name string) string {
	return strings.Join(strings.Fields(strings.ToLower(name)), " ")
}

// NormalizePhone strips everything but digits so formatting variants
// of the same number compare equal.
func NormalizePhone(phone string) string {
	var b strings.Builder
	for _, r := range phone {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// IdentityKey derives the dedup key for a person: normalized email
// when present, otherwise normalized name plus phone. Two records with
// the same non-empty key plausibly represent the same person.
func IdentityKey(email, name, phone string) string {
	if e := NormalizeEmail(email); e != "" {
		return "email:" + e
	}
	n := NormalizeName(name)
	if n == "" {
		return ""
	}
	return "name:" + n + "|" + NormalizePhone(phone)
}

// SplitName breaks a single display name into first/last on the first
// space, matching how imported rows are stored.
func SplitName(name string) (first, last string) {
	name = strings.TrimSpace(name)
	if i := strings.IndexByte(name, ' '); i >= 0 {
		return name[:i], strings.TrimSpace(name[i+1:])
	}
	return name, ""
}
