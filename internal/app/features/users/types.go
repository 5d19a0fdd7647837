// internal/app/features/users/types.go
package users

import (
	"github.com/dalemusser/traininghub/internal/app/system/formutil"
	"github.com/dalemusser/traininghub/internal/app/system/paging"
	"github.com/dalemusser/traininghub/internal/app/system/viewdata"
	"github.com/dalemusser/traininghub/internal/domain/models"
)

// listItem is a single row in the users list.
type listItem struct {
	ID           string
	FullName     string
	Email        string
	Role         string
	Status       string
	CustomerName string
	GroupName    string
}

// listData is the view model for the users list page.
type listData struct {
	viewdata.BaseVM

	Q              string
	CustomerFilter string
	Customers      []models.Customer // platform-admin filter dropdown
	Items          []listItem
	Paging         paging.Result
}

// formFields carries the user form values echoed back on errors.
type formFields struct {
	FirstName string
	LastName  string
	Email     string
	Role      string
	Status    string
	CustomerID string
	GroupID   string
}

// newData is the view model for the "Add User" page.
type newData struct {
	formutil.Base
	formFields

	Customers         []models.Customer
	Groups            []models.Group
	CanChooseCustomer bool
	Roles             []string
}

// editData is the view model for the "Edit User" page.
type editData struct {
	formutil.Base
	formFields

	ID                string
	Customers         []models.Customer
	Groups            []models.Group
	CanChooseCustomer bool
	CanChangeRole     bool
	Roles             []string
}

// viewPageData is the view model for the user detail page.
type viewPageData struct {
	viewdata.BaseVM

	User         models.UserAccount
	CustomerName string
	GroupName    string
	CanEdit      bool
	CanDelete    bool
}
