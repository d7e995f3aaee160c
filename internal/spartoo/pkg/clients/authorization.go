package clients

import "net/url"

// AuthEngine adds the partner credentials to a request.
type AuthEngine interface {
	GetPartner() string
	Apply(params url.Values)
}

// PartnerAuth sends the static partner token as the "partenaire" form field.
type PartnerAuth struct {
	partner string
}

func (a *PartnerAuth) GetPartner() string {
	return a.partner
}

func (a *PartnerAuth) Apply(params url.Values) {
	params.Set("partenaire", a.partner)
}

func NewPartnerAuth(partner string) *PartnerAuth {
	if partner == "" {
		return nil
	}
	return &PartnerAuth{partner: partner}
}
