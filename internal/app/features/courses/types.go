// internal/app/features/courses/types.go
package courses

import (
	"html/template"

	"github.com/dalemusser/traininghub/internal/app/system/formutil"
	"github.com/dalemusser/traininghub/internal/app/system/viewdata"
	"github.com/dalemusser/traininghub/internal/domain/models"
)

// listItem is one row in the course catalog.
type listItem struct {
	ID           string
	Title        string
	Status       string
	CustomerName string
	Shared       bool
	ModuleCount  int
	Duration     int
	Difficulty   string
	Progress     int
	AvgRating    float64
	HasRating    bool
}

// listData feeds the course_list template.
type listData struct {
	viewdata.BaseVM
	Q             string
	ShowCustomers bool
	CanManage     bool
	Items         []listItem
}

// topicVM is one topic line on the course view page.
type topicVM struct {
	models.Topic
	DescriptionHTML template.HTML
	AvgRating       float64
	HasRating       bool
	MyRating        int
}

// moduleVM is one module section on the course view page.
type moduleVM struct {
	models.Module
	Progress int
	Duration int
	Topics   []topicVM
}

// viewPageData feeds the course_view template.
type viewPageData struct {
	viewdata.BaseVM
	Course          models.Course
	DescriptionHTML template.HTML
	CustomerName    string
	Progress        int
	Duration        int
	Difficulty      string
	AvgRating       float64
	HasRating       bool
	Modules         []moduleVM
	CanManage       bool
	CanShare        bool
}

// formFields holds the echoed values of the course form.
type formFields struct {
	Title       string
	Description string
	Status      string
	CustomerID  string
}

// newData feeds the course_new template.
type newData struct {
	formutil.Base
	formFields
	Statuses  []string
	Customers []models.Customer
}

// editData feeds the course_edit template.
type editData struct {
	formutil.Base
	formFields
	ID        string
	Statuses  []string
	Customers []models.Customer
}

// shareRow is one customer line on the sharing screen.
type shareRow struct {
	ID     string
	Name   string
	Owner  bool
	Shared bool
}

// shareData feeds the course_share template.
type shareData struct {
	viewdata.BaseVM
	Course    models.Course
	Customers []shareRow
}
