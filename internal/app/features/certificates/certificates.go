// internal/app/features/certificates/certificates.go
package certificates

import (
	"net/http"
	"time"

	uierrors "github.com/dalemusser/traininghub/internal/app/features/errors"
	"github.com/dalemusser/traininghub/internal/app/system/authz"
	"github.com/dalemusser/traininghub/internal/app/system/viewdata"
	"github.com/dalemusser/traininghub/internal/domain/models"
	"github.com/dalemusser/waffle/pantry/templates"
	"github.com/go-chi/chi/v5"
)

// certRow is one certificate line in the list.
type certRow struct {
	models.Certificate
	Expired bool
}

// listData feeds the certificate_list template.
type listData struct {
	viewdata.BaseVM
	Items []certRow
}

// viewPageData feeds the certificate_view template.
type viewPageData struct {
	viewdata.BaseVM
	Certificate models.Certificate
	Expired     bool
}

// ServeList renders the signed-in user's certificates, newest first.
func (h *Handler) ServeList(w http.ResponseWriter, r *http.Request) {
	_, _, userID, ok := authz.UserCtx(r)
	if !ok {
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}

	certs, err := h.Certificates.ListByUser(r.Context(), userID)
	if err != nil {
		h.ErrLog.LogServerError(w, r, "list certificates failed", err, "Unable to load certificates.", "/dashboard")
		return
	}

	now := time.Now().UTC()
	items := make([]certRow, 0, len(certs))
	for _, c := range certs {
		items = append(items, certRow{Certificate: c, Expired: c.Expired(now)})
	}

	data := listData{
		BaseVM: viewdata.NewBaseVM(w, r, "My Certificates", "/dashboard"),
		Items:  items,
	}

	templates.Render(w, r, "certificate_list", data)
}

// ServeView renders one certificate. Certificates are personal; a user
// can only open their own.
func (h *Handler) ServeView(w http.ResponseWriter, r *http.Request) {
	cert, ok := h.loadOwn(w, r)
	if !ok {
		return
	}

	data := viewPageData{
		BaseVM:      viewdata.NewBaseVM(w, r, cert.CourseName, "/certificates"),
		Certificate: cert,
		Expired:     cert.Expired(time.Now().UTC()),
	}

	templates.Render(w, r, "certificate_view", data)
}

// loadOwn fetches the requested certificate and enforces ownership. When
// it returns ok=false the response has already been written.
func (h *Handler) loadOwn(w http.ResponseWriter, r *http.Request) (models.Certificate, bool) {
	id := chi.URLParam(r, "id")

	cert, err := h.Certificates.GetByID(r.Context(), id)
	if err != nil {
		uierrors.RenderNotFound(w, r, "Certificate not found.", "/certificates")
		return models.Certificate{}, false
	}

	_, _, userID, ok := authz.UserCtx(r)
	if !ok || cert.UserID != userID {
		uierrors.RenderForbidden(w, r, "That certificate belongs to someone else.", "/certificates")
		return models.Certificate{}, false
	}
	return cert, true
}
