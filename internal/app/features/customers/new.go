// internal/app/features/customers/new.go
package customers

import (
	"errors"
	"net/http"
	"strings"

	customerstore "github.com/dalemusser/traininghub/internal/app/store/customers"
	"github.com/dalemusser/traininghub/internal/app/system/flash"
	"github.com/dalemusser/traininghub/internal/app/system/formutil"
	"github.com/dalemusser/traininghub/internal/app/system/inputval"
	"github.com/dalemusser/traininghub/internal/app/system/navigation"
	"github.com/dalemusser/traininghub/internal/app/system/normalize"
	"github.com/dalemusser/traininghub/internal/domain/models"
	"github.com/dalemusser/waffle/pantry/templates"
)

// ServeNew renders the "New Customer" form.
// Authorization: RequireRole("platform_admin") middleware in routes.go.
func (h *Handler) ServeNew(w http.ResponseWriter, r *http.Request) {
	data := newData{
		Status:           models.StatusActive,
		SubscriptionType: models.SubscriptionBasic,
	}
	formutil.SetBase(&data.Base, w, r, "New Customer", "/customers")

	templates.Render(w, r, "customer_new", data)
}

// HandleCreate processes the New Customer form submission.
// Authorization: RequireRole("platform_admin") middleware in routes.go.
func (h *Handler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.ErrLog.LogBadRequest(w, r, "parse form failed", err, "Invalid form submission.", "/customers")
		return
	}

	name := normalize.Name(r.FormValue("name"))
	industry := strings.TrimSpace(r.FormValue("industry"))
	email := normalize.Email(r.FormValue("email"))
	phone := strings.TrimSpace(r.FormValue("phone"))
	website := strings.TrimSpace(r.FormValue("website"))
	status := normalize.Status(r.FormValue("status"))
	subscription := strings.TrimSpace(r.FormValue("subscription_type"))

	renderWithError := func(msg string) {
		data := newData{
			Name:             name,
			Industry:         industry,
			Email:            email,
			Phone:            phone,
			Website:          website,
			Status:           status,
			SubscriptionType: subscription,
		}
		formutil.SetBase(&data.Base, w, r, "New Customer", "/customers")
		data.SetError(msg)
		templates.Render(w, r, "customer_new", data)
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
	if subscription != "" && !inputval.IsValidSubscription(subscription) {
		renderWithError("Please choose a valid subscription tier.")
		return
	}

	customer := models.Customer{
		Name:             name,
		Industry:         industry,
		Email:            email,
		Phone:            phone,
		Website:          website,
		Status:           status,
		SubscriptionType: subscription,
	}

	if _, err := h.Customers.Create(r.Context(), customer); err != nil {
		msg := "Unable to create customer."
		if errors.Is(err, customerstore.ErrDuplicateCustomer) {
			msg = "A customer with that name already exists."
		}
		renderWithError(msg)
		return
	}

	flash.Success(w, r, "Customer created successfully")

	ret := navigation.SafeBackURL(r, navigation.CustomersBackURL)
	http.Redirect(w, r, ret, http.StatusSeeOther)
}
