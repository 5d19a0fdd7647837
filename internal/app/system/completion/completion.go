// Package completion decides when a user has finished a course and issues
// the certificate for it.
//
// The decision is pure: the same course state always yields the same
// verdict. Issuance is idempotent per (user, course) pair; the certificate
// store's uniqueness guard backs the check so concurrent submissions of the
// final topic cannot double-issue.
package completion

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"strings"
	"time"
	"unicode"

	certificatestore "github.com/dalemusser/traininghub/internal/app/store/certificates"
	customerstore "github.com/dalemusser/traininghub/internal/app/store/customers"
	userstore "github.com/dalemusser/traininghub/internal/app/store/users"
	"github.com/dalemusser/traininghub/internal/domain/models"
)

const certificateGrade = "Distinction"

// Signatories are the fixed signature blocks stamped on every issued
// certificate.
var Signatories = []models.Signature{
	{Name: "Dr. James Wilson", Title: "Course Director", Signature: "https://example.com/signatures/jwilson.png"},
	{Name: "Dr. Emma Thompson", Title: "Medical Director", Signature: "https://example.com/signatures/ethompson.png"},
}

// Evaluator issues certificates when a course is fully completed.
//
// Rand and Now are swappable for deterministic tests; New sets real
// defaults.
type Evaluator struct {
	certificates *certificatestore.Store
	users        *userstore.Store
	customers    *customerstore.Store

	Rand func(n int) int
	Now  func() time.Time
}

func New(certificates *certificatestore.Store, users *userstore.Store, customers *customerstore.Store) *Evaluator {
	return &Evaluator{
		certificates: certificates,
		users:        users,
		customers:    customers,
		Rand:         rand.Intn,
		Now:          time.Now,
	}
}

// CourseComplete reports whether every topic in every module of the course
// is completed. A course with no modules, or any module with no topics,
// is never complete.
func CourseComplete(c models.Course) bool {
	if len(c.Modules) == 0 {
		return false
	}
	for _, m := range c.Modules {
		if len(m.Topics) == 0 {
			return false
		}
		for _, t := range m.Topics {
			if !t.Completed {
				return false
			}
		}
	}
	return true
}

// EvaluateAndIssue checks whether the course is now fully completed and, if
// so, issues exactly one certificate to the user. It returns the
// certificate and true when a new certificate was issued on this call;
// repeat calls for an already-certified (user, course) pair return false
// with no error.
func (e *Evaluator) EvaluateAndIssue(ctx context.Context, course models.Course, userID string) (models.Certificate, bool, error) {
	if !CourseComplete(course) {
		return models.Certificate{}, false, nil
	}

	exists, err := e.certificates.ExistsForUserCourse(ctx, userID, course.ID)
	if err != nil {
		return models.Certificate{}, false, fmt.Errorf("check existing certificate: %w", err)
	}
	if exists {
		return models.Certificate{}, false, nil
	}

	user, err := e.users.GetByID(ctx, userID)
	if err != nil {
		return models.Certificate{}, false, fmt.Errorf("load user for certificate: %w", err)
	}

	customerName := ""
	if user.CustomerID != "" {
		customer, err := e.customers.GetByID(ctx, user.CustomerID)
		if err == nil {
			customerName = customer.Name
		}
	}

	now := e.Now().UTC()
	expiry := now.AddDate(1, 0, 0)

	cert := models.Certificate{
		UserID:            userID,
		CourseID:          course.ID,
		CourseName:        course.Title,
		UserName:          user.FullName(),
		CustomerName:      customerName,
		IssueDate:         now,
		ExpiryDate:        &expiry,
		CertificateNumber: e.certificateNumber(course.Title, now),
		Grade:             certificateGrade,
		Signatures:        Signatories,
	}

	issued, err := e.certificates.Create(ctx, cert)
	if err != nil {
		if errors.Is(err, certificatestore.ErrAlreadyIssued) {
			// Lost the race to a concurrent submission; not an error.
			return models.Certificate{}, false, nil
		}
		return models.Certificate{}, false, fmt.Errorf("issue certificate: %w", err)
	}
	return issued, true, nil
}

// certificateNumber builds "PREF-YYYY-NNN" from the first four letters of
// the course title, the issue year, and a zero-padded random serial.
func (e *Evaluator) certificateNumber(title string, issued time.Time) string {
	prefix := titlePrefix(title)
	return fmt.Sprintf("%s-%d-%03d", prefix, issued.Year(), e.Rand(1000))
}

func titlePrefix(title string) string {
	var b strings.Builder
	n := 0
	for _, r := range title {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(unicode.ToUpper(r))
			if n++; n >= 4 {
				break
			}
		}
	}
	if n == 0 {
		return "CERT"
	}
	return b.String()
}
