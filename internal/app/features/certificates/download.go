// internal/app/features/certificates/download.go
package certificates

import (
	"net/http"
	"strconv"

	"github.com/dalemusser/traininghub/internal/app/system/certpdf"
	"github.com/dalemusser/traininghub/internal/app/system/viewdata"
)

// ServeDownload streams the certificate as a generated PDF.
func (h *Handler) ServeDownload(w http.ResponseWriter, r *http.Request) {
	cert, ok := h.loadOwn(w, r)
	if !ok {
		return
	}

	pdf, err := certpdf.Render(cert, viewdata.GetSiteName(r.Context()))
	if err != nil {
		h.ErrLog.LogServerError(w, r, "render certificate pdf failed", err, "Unable to generate the PDF.", "/certificates")
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", `attachment; filename="certificate-`+cert.CertificateNumber+`.pdf"`)
	w.Header().Set("Content-Length", strconv.Itoa(len(pdf)))
	_, _ = w.Write(pdf)
}
