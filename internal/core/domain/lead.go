package domain

import (
	"regexp"
	"time"
)

// Lead is a contact-form submission from the public site: a name and a
// phone number awaiting staff follow-up.
type Lead struct {
	ID        string    `json:"id" bson:"_id,omitempty"`
	Name      string    `json:"name" bson:"name"`
	Phone     string    `json:"phone" bson:"phone"`
	CreatedAt time.Time `json:"created_at" bson:"created_at"`
}

// phoneRe is the exact format the intake form produces. Anything that
// deviates from it, including bare digits, is rejected.
var phoneRe = regexp.MustCompile(`^\+7 \(\d{3}\) \d{3} \d{2} \d{2}$`)

// ValidPhone reports whether s matches the +7 (XXX) XXX XX XX format.
func ValidPhone(s string) bool {
	return phoneRe.MatchString(s)
}

