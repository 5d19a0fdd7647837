// internal/app/features/customers/types.go
package customers

import (
	"github.com/dalemusser/traininghub/internal/app/system/formutil"
	"github.com/dalemusser/traininghub/internal/app/system/viewdata"
	"github.com/dalemusser/traininghub/internal/domain/models"
)

// listItem is a single row in the customers list.
type listItem struct {
	ID               string
	Name             string
	Industry         string
	Status           string
	SubscriptionType string
	UsersCount       int
}

// listData is the view model for the customers list page.
type listData struct {
	viewdata.BaseVM

	Q     string
	Items []listItem
}

// newData is the view model for the "New Customer" page.
type newData struct {
	formutil.Base

	Name             string
	Industry         string
	Email            string
	Phone            string
	Website          string
	Status           string
	SubscriptionType string
}

// viewPageData is the view model for the "View Customer" page.
type viewPageData struct {
	viewdata.BaseVM

	Customer   models.Customer
	UsersCount int
	CanEdit    bool
}

// editData is the view model for the "Edit Customer" page.
type editData struct {
	formutil.Base

	ID               string
	Name             string
	Industry         string
	Email            string
	Phone            string
	Website          string
	Status           string
	SubscriptionType string

	// Only platform admins may change status and subscription tier.
	CanManagePlan bool
}
