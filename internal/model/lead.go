package model

import "time"

// Lead is a contact request captured by the site.  Leads are insert-only:
// the site never reads them back.
type Lead struct {
	ID        string    // leads.id (uuid generated by the site)
	Name      string    // leads.name
	Phone     string    // leads.phone, digits only
	Specialty string    // leads.specialty
	Source    string    // leads.source, page the form was submitted from (optional)
	CreatedAt time.Time // leads.created_at
}
