// internal/domain/models/sitesettings.go
package models

import "time"

// SiteSettings holds platform-wide configuration editable by platform
// admins. There is a single settings record for the process.
type SiteSettings struct {
	SiteName   string `json:"site_name"`
	SupportURL string `json:"support_url,omitempty"`
	FooterHTML string `json:"footer_html,omitempty"`

	UpdatedAt     *time.Time `json:"updated_at,omitempty"`
	UpdatedByID   string     `json:"updated_by_id,omitempty"`
	UpdatedByName string     `json:"updated_by_name,omitempty"`
}

// DefaultSiteName is the default site name used when settings don't exist.
const DefaultSiteName = "TrainingHub"
