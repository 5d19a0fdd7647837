// internal/app/features/customers/edit.go
package customers

import (
	"errors"
	"net/http"
	"strings"

	uierrors "github.com/dalemusser/traininghub/internal/app/features/errors"
	customerstore "github.com/dalemusser/traininghub/internal/app/store/customers"
	"github.com/dalemusser/traininghub/internal/app/policy/permissions"
	"github.com/dalemusser/traininghub/internal/app/system/authz"
	"github.com/dalemusser/traininghub/internal/app/system/flash"
	"github.com/dalemusser/traininghub/internal/app/system/formutil"
	"github.com/dalemusser/traininghub/internal/app/system/inputval"
	"github.com/dalemusser/traininghub/internal/app/system/navigation"
	"github.com/dalemusser/traininghub/internal/app/system/normalize"
	"github.com/dalemusser/waffle/pantry/templates"
	"github.com/go-chi/chi/v5"
)

// canEditCustomer gates edit access via the permission table: platform
// admins edit any customer, customer admins only their own organization.
func canEditCustomer(r *http.Request, customerID string) bool {
	return permissions.Has(authz.Actor(r), permissions.Check{
		Action:   permissions.ActionUpdate,
		Resource: permissions.ResourceCustomer,
		TargetID: customerID,
	})
}

// ServeEdit renders the Edit Customer page.
func (h *Handler) ServeEdit(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	customer, err := h.Customers.GetByID(r.Context(), id)
	if err != nil {
		uierrors.RenderNotFound(w, r, "Customer not found.", "/customers")
		return
	}

	if !canEditCustomer(r, customer.ID) {
		uierrors.RenderForbidden(w, r, "You can only edit your own organization.", "/dashboard")
		return
	}

	data := editData{
		ID:               customer.ID,
		Name:             customer.Name,
		Industry:         customer.Industry,
		Email:            customer.Email,
		Phone:            customer.Phone,
		Website:          customer.Website,
		Status:           customer.Status,
		SubscriptionType: customer.SubscriptionType,
		CanManagePlan:    authz.IsPlatformAdmin(r),
	}
	formutil.SetBase(&data.Base, w, r, "Edit Customer", "/customers")

	templates.Render(w, r, "customer_edit", data)
}

// HandleEdit processes the Edit Customer form POST.
func (h *Handler) HandleEdit(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.ErrLog.LogBadRequest(w, r, "parse form failed", err, "Invalid form submission.", "/customers")
		return
	}

	id := chi.URLParam(r, "id")

	customer, err := h.Customers.GetByID(r.Context(), id)
	if err != nil {
		uierrors.RenderNotFound(w, r, "Customer not found.", "/customers")
		return
	}

	if !canEditCustomer(r, customer.ID) {
		uierrors.RenderForbidden(w, r, "You can only edit your own organization.", "/dashboard")
		return
	}

	name := normalize.Name(r.FormValue("name"))
	industry := strings.TrimSpace(r.FormValue("industry"))
	email := normalize.Email(r.FormValue("email"))
	phone := strings.TrimSpace(r.FormValue("phone"))
	website := strings.TrimSpace(r.FormValue("website"))

	renderWithError := func(msg string) {
		data := editData{
			ID:               customer.ID,
			Name:             name,
			Industry:         industry,
			Email:            email,
			Phone:            phone,
			Website:          website,
			Status:           customer.Status,
			SubscriptionType: customer.SubscriptionType,
			CanManagePlan:    authz.IsPlatformAdmin(r),
		}
		formutil.SetBase(&data.Base, w, r, "Edit Customer", "/customers")
		data.SetError(msg)
		templates.Render(w, r, "customer_edit", data)
	}

	if name == "" {
		renderWithError("Customer name is required.")
		return
	}
	if email != "" && !inputval.IsValidEmail(email) {
		renderWithError("Please enter a valid email address.")
		return
	}
	if website != "" && !inputval.IsValidHTTPURL(website) {
		renderWithError("Please enter a valid website URL.")
		return
	}

	customer.Name = name
	customer.Industry = industry
	customer.Email = email
	customer.Phone = phone
	customer.Website = website

	// Status and subscription tier are platform-managed.
	if authz.IsPlatformAdmin(r) {
		if status := normalize.Status(r.FormValue("status")); status != "" {
			customer.Status = status
		}
		if sub := strings.TrimSpace(r.FormValue("subscription_type")); sub != "" {
			if !inputval.IsValidSubscription(sub) {
				renderWithError("Please choose a valid subscription tier.")
				return
			}
			customer.SubscriptionType = sub
		}
	}

	if err := h.Customers.Update(r.Context(), customer); err != nil {
		msg := "Unable to save customer."
		if errors.Is(err, customerstore.ErrDuplicateCustomer) {
			msg = "A customer with that name already exists."
		}
		renderWithError(msg)
		return
	}

	flash.Success(w, r, "Customer saved successfully")

	fallback := "/customers"
	if !authz.IsPlatformAdmin(r) {
		fallback = "/dashboard"
	}
	ret := navigation.SafeBackURL(r, navigation.BackURLOptions{
		AllowedPrefix:    "/customers",
		ExcludedSubpaths: []string{"/edit", "/delete", "/new"},
		Fallback:         fallback,
	})
	http.Redirect(w, r, ret, http.StatusSeeOther)
}
