// internal/app/features/groups/types.go
package groups

import (
	"github.com/dalemusser/traininghub/internal/app/system/formutil"
	"github.com/dalemusser/traininghub/internal/app/system/viewdata"
	"github.com/dalemusser/traininghub/internal/domain/models"
)

// listItem is one row in the group list.
type listItem struct {
	ID           string
	Name         string
	Type         string
	Description  string
	CustomerName string
	MembersCount int
}

// listData feeds the group_list template.
type listData struct {
	viewdata.BaseVM
	Q             string
	ShowCustomers bool
	Items         []listItem
}

// formFields holds the echoed values of the group form.
type formFields struct {
	Name        string
	Type        string
	Description string
}

// newData feeds the group_new template.
type newData struct {
	formutil.Base
	formFields
	Types []string
}

// editData feeds the group_edit template.
type editData struct {
	formutil.Base
	formFields
	ID    string
	Types []string
}

// memberRow is one member line on the group view page.
type memberRow struct {
	ID    string
	Name  string
	Email string
	Role  string
}

// viewPageData feeds the group_view template.
type viewPageData struct {
	viewdata.BaseVM
	Group        models.Group
	CustomerName string
	Members      []memberRow
	Candidates   []models.UserAccount
	CanManage    bool
}
