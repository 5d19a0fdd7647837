// Package certpdf renders issued certificates as downloadable PDFs.
//
// Landscape A4 layout:
//
//	┌──────────────────────────────────────────────────────────────┐
//	│                   CERTIFICATE OF COMPLETION                  │
//	│                        <site name>                           │
//	│  ──────────────────────────────────────────────────────────  │
//	│             This certifies that <user name>                  │
//	│        has successfully completed <course name>              │
//	│            Grade: Distinction  ·  <customer name>            │
//	│  ──────────────────────────────────────────────────────────  │
//	│  Certificate No. | Issued | Expires                          │
//	│  <signature>  Course Director   <signature>  Medical Director│
//	└──────────────────────────────────────────────────────────────┘
package certpdf

import (
	"fmt"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/orientation"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/dalemusser/traininghub/internal/domain/models"
)

var (
	colorPrimary = &props.Color{Red: 13, Green: 71, Blue: 161}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

const dateLayout = "2 January 2006"

// Render produces the PDF bytes for an issued certificate. siteName is the
// platform name printed under the heading.
func Render(cert models.Certificate, siteName string) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithOrientation(orientation.Horizontal).
		WithLeftMargin(20).WithRightMargin(20).
		WithTopMargin(15).WithBottomMargin(15).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 11}).
		WithTitle("Certificate "+cert.CertificateNumber, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headingRows(siteName)...)
	m.AddRows(line.NewRow(2, props.Line{Color: colorPrimary, Thickness: 0.6}))
	m.AddRows(bodyRows(cert)...)
	m.AddRows(line.NewRow(2, props.Line{Color: colorPrimary, Thickness: 0.6}))
	m.AddRows(detailRow(cert))
	m.AddRows(line.NewRow(6))
	m.AddRows(signatureRow(cert.Signatures))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("certpdf: generate document: %w", err)
	}
	return doc.GetBytes(), nil
}

func headingRows(siteName string) []core.Row {
	return []core.Row{
		row.New(14).Add(col.New(12).Add(
			text.New("CERTIFICATE OF COMPLETION", props.Text{
				Style: fontstyle.Bold, Size: 24, Align: align.Center,
				Color: colorPrimary, Top: 2,
			}),
		)),
		row.New(8).Add(col.New(12).Add(
			text.New(siteName, props.Text{
				Size: 12, Align: align.Center, Color: colorGray, Top: 1,
			}),
		)),
	}
}

func bodyRows(cert models.Certificate) []core.Row {
	rows := []core.Row{
		row.New(10).Add(col.New(12).Add(
			text.New("This is to certify that", props.Text{
				Size: 11, Align: align.Center, Color: colorGray, Top: 3,
			}),
		)),
		row.New(12).Add(col.New(12).Add(
			text.New(cert.UserName, props.Text{
				Style: fontstyle.Bold, Size: 20, Align: align.Center, Top: 1,
			}),
		)),
		row.New(9).Add(col.New(12).Add(
			text.New("has successfully completed", props.Text{
				Size: 11, Align: align.Center, Color: colorGray, Top: 2,
			}),
		)),
		row.New(11).Add(col.New(12).Add(
			text.New(cert.CourseName, props.Text{
				Style: fontstyle.Bold, Size: 16, Align: align.Center,
				Color: colorPrimary, Top: 1,
			}),
		)),
	}

	subtitle := ""
	if cert.Grade != "" {
		subtitle = "Grade: " + cert.Grade
	}
	if cert.CustomerName != "" {
		if subtitle != "" {
			subtitle += "   ·   "
		}
		subtitle += cert.CustomerName
	}
	if subtitle != "" {
		rows = append(rows, row.New(8).Add(col.New(12).Add(
			text.New(subtitle, props.Text{
				Size: 11, Align: align.Center, Top: 2,
			}),
		)))
	}
	return rows
}

func detailRow(cert models.Certificate) core.Row {
	cell := func(label, value string) core.Col {
		return col.New(4).Add(
			text.New(label, props.Text{
				Style: fontstyle.Bold, Size: 8, Align: align.Center,
				Color: colorGray, Top: 1,
			}),
			text.New(value, props.Text{Size: 10, Align: align.Center, Top: 6}),
		)
	}

	expiry := "—"
	if cert.ExpiryDate != nil {
		expiry = cert.ExpiryDate.Format(dateLayout)
	}

	return row.New(13).Add(
		cell("CERTIFICATE NO.", cert.CertificateNumber),
		cell("ISSUED", cert.IssueDate.Format(dateLayout)),
		cell("EXPIRES", expiry),
	)
}

func signatureRow(signatures []models.Signature) core.Row {
	if len(signatures) == 0 {
		return row.New(2)
	}

	// Spread the signatories across the page.
	width := 12 / len(signatures)
	if width < 1 {
		width = 1
	}

	cols := make([]core.Col, 0, len(signatures))
	for _, s := range signatures {
		cols = append(cols, col.New(width).Add(
			text.New(s.Name, props.Text{
				Style: fontstyle.Bold, Size: 11, Align: align.Center, Top: 2,
			}),
			text.New(s.Title, props.Text{
				Size: 9, Align: align.Center, Color: colorGray, Top: 8,
			}),
		))
	}
	return row.New(16).Add(cols...)
}
