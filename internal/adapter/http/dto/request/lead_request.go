package request

import (
	"openaria_tracking/internal/domain/entities"
)

// LeadRequest is the lead form payload, keyed the way the CRM workflow maps it.
type LeadRequest struct {
	FirstName    string   `json:"firstName" binding:"required"`
	LastName     string   `json:"lastName"`
	Email        string   `json:"email" binding:"required,email"`
	Phone        string   `json:"phone"`
	BusinessType string   `json:"businessType"`
	SelectedPlan string   `json:"selectedPlan"`
	SourcePage   string   `json:"sourcePage"`
	Message      string   `json:"message"`
	Tags         []string `json:"tags"`
	ConsentEmail bool     `json:"consentEmail"`
	ConsentSMS   bool     `json:"consentSMS"`
}

func (r LeadRequest) ToEntity() entities.Lead {
	return entities.Lead{
		FirstName:    r.FirstName,
		LastName:     r.LastName,
		Email:        r.Email,
		Phone:        r.Phone,
		BusinessType: r.BusinessType,
		SelectedPlan: r.SelectedPlan,
		SourcePage:   r.SourcePage,
		Message:      r.Message,
		Tags:         append([]string(nil), r.Tags...),
		ConsentEmail: r.ConsentEmail,
		ConsentSMS:   r.ConsentSMS,
	}
}

// ContactRequest is the contact page form.
type ContactRequest struct {
	Name    string `json:"name" binding:"required"`
	Email   string `json:"email" binding:"required,email"`
	Subject string `json:"subject"`
	Message string `json:"message" binding:"required"`
}
