// internal/domain/models/certificate.go
package models

import "time"

// Certificate is an immutable record of a user completing every topic in
// every module of a course. Once issued it is never mutated; reissuing for
// the same (UserID, CourseID) pair is suppressed by the completion
// evaluator.
type Certificate struct {
	ID           string `json:"id"`
	UserID       string `json:"user_id"`
	CourseID     string `json:"course_id"`
	CourseName   string `json:"course_name"`
	UserName     string `json:"user_name"`
	CustomerName string `json:"customer_name"`

	IssueDate  time.Time  `json:"issue_date"`
	ExpiryDate *time.Time `json:"expiry_date,omitempty"`

	CertificateNumber string `json:"certificate_number"`
	Grade             string `json:"grade,omitempty"`

	Signatures []Signature `json:"signatures,omitempty"`
}

// Signature is one signatory block printed on a certificate.
type Signature struct {
	Name      string `json:"name"`
	Title     string `json:"title"`
	Signature string `json:"signature"` // image URL
}

// Expired reports whether the certificate has an expiry date in the past.
func (c *Certificate) Expired(now time.Time) bool {
	return c.ExpiryDate != nil && c.ExpiryDate.Before(now)
}
