package entities

import (
	"encoding/json"
	"strings"
)

// Lead is a contact or lead-form submission in the shape the CRM inbound
// webhook expects. The comma-joined tag string is always derived from Tags.
type Lead struct {
	FirstName    string   `json:"firstName" validate:"required"`
	LastName     string   `json:"lastName"`
	Email        string   `json:"email" validate:"required,email"`
	Phone        string   `json:"phone"`
	BusinessType string   `json:"businessType,omitempty"`
	SelectedPlan string   `json:"selectedPlan,omitempty"`
	SourcePage   string   `json:"sourcePage,omitempty"`
	Message      string   `json:"message,omitempty"`
	Tags         []string `json:"tags"`
	ConsentEmail bool     `json:"consentEmail"`
	ConsentSMS   bool     `json:"consentSMS"`
}

func (l Lead) TagsJoined() string {
	return strings.Join(l.Tags, ", ")
}

// MarshalJSON adds the derived tags_str field used for CRM text-field mapping.
func (l Lead) MarshalJSON() ([]byte, error) {
	type plain Lead
	p := plain(l)
	if p.Tags == nil {
		p.Tags = []string{}
	}
	return json.Marshal(struct {
		plain
		TagsStr string `json:"tags_str"`
	}{plain: p, TagsStr: l.TagsJoined()})
}

// SplitFullName splits "Jane van Doe" into "Jane" and "van Doe".
func SplitFullName(name string) (first, last string) {
	fields := strings.Fields(name)
	if len(fields) == 0 {
		return "", ""
	}
	return fields[0], strings.Join(fields[1:], " ")
}
