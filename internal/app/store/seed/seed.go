// internal/app/store/seed/seed.go

// Package seed loads the demo dataset into the in-memory stores at
// startup. The records are stable: ids, names, and timestamps are fixed
// so screens and tests see the same data on every boot.
package seed

import (
	"context"
	"fmt"
	"time"

	certificatestore "github.com/dalemusser/traininghub/internal/app/store/certificates"
	coursestore "github.com/dalemusser/traininghub/internal/app/store/courses"
	customerstore "github.com/dalemusser/traininghub/internal/app/store/customers"
	groupstore "github.com/dalemusser/traininghub/internal/app/store/groups"
	userstore "github.com/dalemusser/traininghub/internal/app/store/users"
	"github.com/dalemusser/traininghub/internal/domain/models"
)

// Load replaces the contents of every store with the demo dataset.
func Load(
	ctx context.Context,
	customers *customerstore.Store,
	users *userstore.Store,
	groups *groupstore.Store,
	courses *coursestore.Store,
	certificates *certificatestore.Store,
) error {
	if err := customers.ReplaceAll(ctx, Customers()); err != nil {
		return fmt.Errorf("seed customers: %w", err)
	}
	if err := users.ReplaceAll(ctx, Users()); err != nil {
		return fmt.Errorf("seed users: %w", err)
	}
	if err := groups.ReplaceAll(ctx, Groups()); err != nil {
		return fmt.Errorf("seed groups: %w", err)
	}
	if err := courses.ReplaceAll(ctx, Courses()); err != nil {
		return fmt.Errorf("seed courses: %w", err)
	}
	if err := certificates.ReplaceAll(ctx, Certificates()); err != nil {
		return fmt.Errorf("seed certificates: %w", err)
	}
	return nil
}

func ts(s string) time.Time {
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		panic("seed: bad timestamp " + s)
	}
	return t
}

func tsp(s string) *time.Time {
	t := ts(s)
	return &t
}

// Customers returns the demo customer records.
func Customers() []models.Customer {
	return []models.Customer{
		{
			ID:               "1",
			Name:             "Belfast Trust",
			Industry:         "NHS Trust",
			Email:            "training@belfasttrust.hscni.net",
			Status:           models.StatusActive,
			SubscriptionType: models.SubscriptionEnterprise,
			TotalUsers:       450,
			ActiveCourses:    15,
			CompletionRate:   78,
			LastActive:       ts("2024-03-10T14:30:00Z"),
			CreatedAt:        ts("2024-01-15T10:00:00Z"),
			UpdatedAt:        ts("2024-03-10T14:30:00Z"),
		},
		{
			ID:               "2",
			Name:             "Regional Medical Center",
			Industry:         "Primary Care Organisation",
			Email:            "education@regionalmed.com",
			Status:           models.StatusActive,
			SubscriptionType: models.SubscriptionPremium,
			TotalUsers:       0,
			ActiveCourses:    8,
			CompletionRate:   92,
			LastActive:       ts("2024-03-11T09:15:00Z"),
			CreatedAt:        ts("2024-01-20T10:00:00Z"),
			UpdatedAt:        ts("2024-03-11T09:15:00Z"),
		},
		{
			ID:               "3",
			Name:             "Community Health Network",
			Industry:         "Care Home",
			Email:            "training@communityhealth.org",
			Status:           models.StatusPending,
			SubscriptionType: models.SubscriptionBasic,
			TotalUsers:       0,
			ActiveCourses:    6,
			CompletionRate:   65,
			LastActive:       ts("2024-03-09T16:45:00Z"),
			CreatedAt:        ts("2024-02-01T10:00:00Z"),
			UpdatedAt:        ts("2024-03-09T16:45:00Z"),
		},
	}
}

// Users returns the demo user accounts: the three sign-in personas plus
// the Belfast Trust staff.
func Users() []models.UserAccount {
	return []models.UserAccount{
		{
			ID:        "admin1",
			FirstName: "Admin",
			LastName:  "User",
			Email:     "admin@traininghub.com",
			Role:      models.RolePlatformAdmin,
			Status:    models.StatusActive,
			CreatedAt: ts("2024-01-01T09:00:00Z"),
		},
		{
			ID:         "customer1",
			FirstName:  "Customer",
			LastName:   "Admin",
			Email:      "customer@belfasttrust.hscni.net",
			Role:       models.RoleCustomerAdmin,
			Status:     models.StatusActive,
			CustomerID: "1",
			CreatedAt:  ts("2024-01-01T09:00:00Z"),
		},
		{
			ID:         "user1",
			FirstName:  "Regular",
			LastName:   "User",
			Email:      "user@belfasttrust.hscni.net",
			Role:       models.RoleUser,
			Status:     models.StatusActive,
			CustomerID: "1",
			CreatedAt:  ts("2024-01-01T09:00:00Z"),
		},
		{
			ID: "u1", FirstName: "Sarah", LastName: "O'Connor",
			Email: "s.oconnor@belfasttrust.hscni.net", Role: models.RoleCustomerAdmin,
			Status: models.StatusActive, CustomerID: "1", GroupID: "g1",
			CreatedAt: ts("2024-01-15T10:00:00Z"), LastLogin: tsp("2024-03-10T14:30:00Z"),
		},
		{
			ID: "u2", FirstName: "James", LastName: "Murphy",
			Email: "j.murphy@belfasttrust.hscni.net", Role: models.RoleUser,
			Status: models.StatusActive, CustomerID: "1", GroupID: "g1",
			CreatedAt: ts("2024-01-16T09:00:00Z"), LastLogin: tsp("2024-03-11T11:20:00Z"),
		},
		{
			ID: "u3", FirstName: "Emma", LastName: "Wilson",
			Email: "e.wilson@belfasttrust.hscni.net", Role: models.RoleUser,
			Status: models.StatusActive, CustomerID: "1", GroupID: "g1",
			CreatedAt: ts("2024-01-17T11:30:00Z"), LastLogin: tsp("2024-03-12T09:45:00Z"),
		},
		{
			ID: "u4", FirstName: "David", LastName: "Campbell",
			Email: "d.campbell@belfasttrust.hscni.net", Role: models.RoleCustomerAdmin,
			Status: models.StatusActive, CustomerID: "1", GroupID: "g2",
			CreatedAt: ts("2024-01-18T14:00:00Z"), LastLogin: tsp("2024-03-10T16:15:00Z"),
		},
		{
			ID: "u5", FirstName: "Laura", LastName: "Kelly",
			Email: "l.kelly@belfasttrust.hscni.net", Role: models.RoleUser,
			Status: models.StatusActive, CustomerID: "1", GroupID: "g2",
			CreatedAt: ts("2024-01-19T10:30:00Z"), LastLogin: tsp("2024-03-11T13:40:00Z"),
		},
		{
			ID: "u6", FirstName: "Michael", LastName: "Walsh",
			Email: "m.walsh@belfasttrust.hscni.net", Role: models.RoleUser,
			Status: models.StatusActive, CustomerID: "1", GroupID: "g2",
			CreatedAt: ts("2024-01-20T09:15:00Z"), LastLogin: tsp("2024-03-12T10:25:00Z"),
		},
		{
			ID: "u7", FirstName: "Claire", LastName: "Donnelly",
			Email: "c.donnelly@belfasttrust.hscni.net", Role: models.RoleCustomerAdmin,
			Status: models.StatusActive, CustomerID: "1", GroupID: "g3",
			CreatedAt: ts("2024-01-21T13:45:00Z"), LastLogin: tsp("2024-03-10T15:30:00Z"),
		},
		{
			ID: "u8", FirstName: "Paul", LastName: "McGuinness",
			Email: "p.mcguinness@belfasttrust.hscni.net", Role: models.RoleUser,
			Status: models.StatusActive, CustomerID: "1", GroupID: "g3",
			CreatedAt: ts("2024-01-22T11:20:00Z"), LastLogin: tsp("2024-03-11T14:15:00Z"),
		},
		{
			ID: "u9", FirstName: "Siobhan", LastName: "O'Neill",
			Email: "s.oneill@belfasttrust.hscni.net", Role: models.RoleUser,
			Status: models.StatusActive, CustomerID: "1", GroupID: "g3",
			CreatedAt: ts("2024-01-23T10:00:00Z"), LastLogin: tsp("2024-03-12T11:50:00Z"),
		},
	}
}

// Groups returns the demo groups for Belfast Trust.
func Groups() []models.Group {
	return []models.Group{
		{
			ID: "g1", Name: "Royal Victoria Hospital", Type: models.GroupTypeLocation,
			Description: "Royal Victoria Hospital staff and practitioners",
			Members:     []string{"u1", "u2", "u3"}, CustomerID: "1",
			CreatedAt: ts("2024-03-01T00:00:00Z"), UpdatedAt: ts("2024-03-12T00:00:00Z"),
		},
		{
			ID: "g2", Name: "City Hospital", Type: models.GroupTypeLocation,
			Description: "City Hospital staff and practitioners",
			Members:     []string{"u4", "u5", "u6"}, CustomerID: "1",
			CreatedAt: ts("2024-03-05T00:00:00Z"), UpdatedAt: ts("2024-03-12T00:00:00Z"),
		},
		{
			ID: "g3", Name: "Mater Hospital", Type: models.GroupTypeLocation,
			Description: "Mater Hospital staff and practitioners",
			Members:     []string{"u7", "u8", "u9"}, CustomerID: "1",
			CreatedAt: ts("2024-03-10T00:00:00Z"), UpdatedAt: ts("2024-03-12T00:00:00Z"),
		},
	}
}

// Courses returns the demo courses: the complete ACLS course and a draft
// infection-control course.
func Courses() []models.Course {
	return []models.Course{
		{
			ID:          "1",
			Title:       "Advanced Cardiac Life Support (ACLS)",
			Description: "Comprehensive training in advanced cardiovascular life support for healthcare professionals.",
			Status:      models.CoursePublished,
			CustomerID:  "1",
			CreatedAt:   ts("2024-02-01T00:00:00Z"),
			UpdatedAt:   ts("2024-03-12T00:00:00Z"),
			Modules: []models.Module{
				{
					ID:          "m1",
					Title:       "Cardiac Arrest Recognition and Management",
					Description: "Learn to identify and respond to cardiac emergencies effectively",
					Order:       1,
					Topics: []models.Topic{
						{
							ID:          "t1",
							Title:       "Recognition of Cardiac Arrest",
							Description: "Learn to quickly identify signs of cardiac arrest and initiate immediate response",
							Duration:    30,
							VideoURL:    "https://example.com/video1.mp4",
							Order:       1,
							Completed:   true,
							CompletedAt: tsp("2024-03-10T14:30:00Z"),
							Ratings: []models.Rating{
								{UserID: "u1", Rating: 5, Comment: "Excellent explanation of the signs and symptoms", CreatedAt: ts("2024-03-10T15:00:00Z")},
								{UserID: "u2", Rating: 4, Comment: "Very clear and practical", CreatedAt: ts("2024-03-11T10:00:00Z")},
							},
						},
						{
							ID:          "t2",
							Title:       "Initial Assessment and Response",
							Description: "Master the systematic approach to initial patient assessment and emergency response",
							Duration:    25,
							VideoURL:    "https://example.com/video2.mp4",
							Order:       2,
							Completed:   true,
							CompletedAt: tsp("2024-03-11T10:15:00Z"),
							Ratings: []models.Rating{
								{UserID: "u3", Rating: 5, Comment: "The step-by-step approach was very helpful", CreatedAt: ts("2024-03-11T11:00:00Z")},
							},
						},
						{
							ID:          "t3",
							Title:       "High-Quality CPR Techniques",
							Description: "Advanced techniques for performing effective chest compressions and ventilation",
							Duration:    35,
							VideoURL:    "https://example.com/video3.mp4",
							Order:       3,
						},
						{
							ID:          "t4",
							Title:       "Team Dynamics in Resuscitation",
							Description: "Effective team coordination and communication during cardiac emergencies",
							Duration:    40,
							VideoURL:    "https://example.com/video4.mp4",
							Order:       4,
						},
					},
				},
				{
					ID:          "m2",
					Title:       "Advanced Cardiac Rhythms and Interventions",
					Description: "Comprehensive study of cardiac rhythms and appropriate therapeutic interventions",
					Order:       2,
					Topics: []models.Topic{
						{
							ID:          "t5",
							Title:       "ECG Rhythm Recognition",
							Description: "Advanced interpretation of cardiac rhythms and arrhythmias",
							Duration:    45,
							VideoURL:    "https://example.com/video5.mp4",
							Order:       1,
						},
						{
							ID:          "t6",
							Title:       "Pharmacological Interventions",
							Description: "Understanding and implementing appropriate medication protocols in cardiac emergencies",
							Duration:    50,
							VideoURL:    "https://example.com/video6.mp4",
							Order:       2,
						},
						{
							ID:          "t7",
							Title:       "Defibrillation and Cardioversion",
							Description: "Proper use of defibrillators and timing of cardioversion in different scenarios",
							Duration:    40,
							VideoURL:    "https://example.com/video7.mp4",
							Order:       3,
						},
					},
				},
				{
					ID:          "m3",
					Title:       "Special Resuscitation Situations",
					Description: "Managing cardiac emergencies in specific patient populations and circumstances",
					Order:       3,
					Topics: []models.Topic{
						{
							ID:          "t8",
							Title:       "Pregnancy and Cardiac Arrest",
							Description: "Special considerations and modifications for managing cardiac arrest in pregnant patients",
							Duration:    35,
							VideoURL:    "https://example.com/video8.mp4",
							Order:       1,
						},
						{
							ID:          "t9",
							Title:       "Pediatric Advanced Life Support",
							Description: "Specialized techniques and considerations for pediatric resuscitation",
							Duration:    45,
							VideoURL:    "https://example.com/video9.mp4",
							Order:       2,
						},
						{
							ID:          "t10",
							Title:       "Environmental Emergencies",
							Description: "Managing cardiac arrest in drowning, electrocution, and other environmental conditions",
							Duration:    40,
							VideoURL:    "https://example.com/video10.mp4",
							Order:       3,
						},
					},
				},
				{
					ID:          "m4",
					Title:       "Post-Resuscitation Care",
					Description: "Comprehensive management of patients following return of spontaneous circulation",
					Order:       4,
					Topics: []models.Topic{
						{
							ID:          "t11",
							Title:       "Immediate Post-Cardiac Arrest Care",
							Description: "Stabilization and monitoring procedures immediately following resuscitation",
							Duration:    35,
							VideoURL:    "https://example.com/video11.mp4",
							Order:       1,
						},
						{
							ID:          "t12",
							Title:       "Advanced Monitoring Techniques",
							Description: "Implementation of advanced hemodynamic and neurological monitoring",
							Duration:    40,
							VideoURL:    "https://example.com/video12.mp4",
							Order:       2,
						},
						{
							ID:          "t13",
							Title:       "Long-term Care Planning",
							Description: "Developing comprehensive care plans for post-cardiac arrest patients",
							Duration:    35,
							VideoURL:    "https://example.com/video13.mp4",
							Order:       3,
						},
					},
				},
			},
		},
		{
			ID:          "2",
			Title:       "Infection Prevention and Control",
			Description: "Essential training in modern infection control practices for healthcare settings.",
			Status:      models.CourseDraft,
			CustomerID:  "1",
			CreatedAt:   ts("2024-02-15T00:00:00Z"),
			UpdatedAt:   ts("2024-03-10T00:00:00Z"),
			Modules: []models.Module{
				{
					ID:          "m1",
					Title:       "Standard Precautions",
					Description: "Comprehensive overview of standard infection prevention measures",
					Order:       1,
					Topics: []models.Topic{
						{
							ID:          "t1",
							Title:       "Hand Hygiene Protocols",
							Description: "Evidence-based hand hygiene practices and compliance monitoring",
							Duration:    18,
							VideoURL:    "https://example.com/video4.mp4",
							Order:       1,
						},
					},
				},
			},
		},
	}
}

// DefaultSignatures are the signatory blocks stamped on every issued
// certificate.
func DefaultSignatures() []models.Signature {
	return []models.Signature{
		{Name: "Dr. James Wilson", Title: "Course Director", Signature: "https://example.com/signatures/jwilson.png"},
		{Name: "Dr. Emma Thompson", Title: "Medical Director", Signature: "https://example.com/signatures/ethompson.png"},
	}
}

// Certificates returns the demo certificates.
func Certificates() []models.Certificate {
	return []models.Certificate{
		{
			ID:                "cert1",
			UserID:            "user1",
			CourseID:          "1",
			CourseName:        "Advanced Cardiac Life Support (ACLS)",
			UserName:          "Regular User",
			CustomerName:      "Belfast Trust",
			IssueDate:         ts("2024-03-12T00:00:00Z"),
			ExpiryDate:        tsp("2025-03-12T00:00:00Z"),
			CertificateNumber: "ACLS-2024-001",
			Grade:             "Distinction",
			Signatures:        DefaultSignatures(),
		},
		{
			ID:                "cert2",
			UserID:            "user1",
			CourseID:          "2",
			CourseName:        "Infection Prevention and Control",
			UserName:          "Regular User",
			CustomerName:      "Belfast Trust",
			IssueDate:         ts("2024-03-10T00:00:00Z"),
			ExpiryDate:        tsp("2025-03-10T00:00:00Z"),
			CertificateNumber: "IPC-2024-002",
			Grade:             "Merit",
			Signatures:        DefaultSignatures(),
		},
		{
			ID:                "cert3",
			UserID:            "u1",
			CourseID:          "1",
			CourseName:        "Advanced Cardiac Life Support (ACLS)",
			UserName:          "Sarah O'Connor",
			CustomerName:      "Belfast Trust",
			IssueDate:         ts("2024-03-12T00:00:00Z"),
			ExpiryDate:        tsp("2025-03-12T00:00:00Z"),
			CertificateNumber: "ACLS-2024-003",
			Grade:             "Distinction",
			Signatures:        DefaultSignatures(),
		},
	}
}
