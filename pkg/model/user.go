package model

// UserProfile describes the user owning the session
type UserProfile struct {
	ID                    string `json:"id" yaml:"id"`
	Email                 string `json:"email" yaml:"email"`
	FirstName             string `json:"firstName" yaml:"firstName"`
	LastName              string `json:"lastName" yaml:"lastName"`
	PreferredOrganization string `json:"preferredOrganization" yaml:"preferredOrganization"`
	_                     struct{}
}

// Organization is the context a session is bound to
type Organization struct {
	ID   string `json:"id" yaml:"id"`
	Name string `json:"name" yaml:"name"`
	_    struct{}
}
