// Package pdf renders the employee list as a printable roster. Rows are laid
// out in a single table that continues across pages, with the header bar and
// column titles repeated on each page.
package pdf

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/go-pdf/fpdf"

	"github.com/csg33k/employee-register/internal/domain"
)

type column struct {
	title string
	width float64 // fraction of the content width
	value func(e *domain.Employee) string
}

var columns = []column{
	{"ID", 0.06, func(e *domain.Employee) string { return fmt.Sprint(e.EmpID) }},
	{"Name", 0.18, func(e *domain.Employee) string { return e.Name }},
	{"Email", 0.20, func(e *domain.Employee) string { return e.EmailID }},
	{"Contact", 0.12, func(e *domain.Employee) string { return e.ContactNo }},
	{"Address", 0.24, func(e *domain.Employee) string { return e.Address }},
	{"City / State", 0.12, func(e *domain.Employee) string { return strings.TrimPrefix(cityLine(e.City, e.State), ", ") }},
	{"Pin Code", 0.08, func(e *domain.Employee) string { return e.PinCode }},
}

// GeneratePDF writes the roster for list to w.
func GeneratePDF(list []domain.Employee, w io.Writer) error {
	pdf := fpdf.New("L", "mm", "Letter", "")
	pdf.SetMargins(14, 14, 14)
	pdf.SetAutoPageBreak(false, 14)
	pdf.AliasNbPages("{nb}")
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	generated := time.Now().Format("Jan 02, 2006 15:04")
	_, pageH := pdf.GetPageSize()
	_, _, _, marginB := pdf.GetMargins()
	rowH := 6.5

	y := newPage(pdf, len(list), generated)
	if len(list) == 0 {
		marginL, _, _, _ := pdf.GetMargins()
		pdf.SetFont("Helvetica", "I", 9)
		pdf.SetXY(marginL, y+2)
		pdf.CellFormat(0, 6, "No employees on record.", "", 1, "L", false, 0, "")
	}
	for i := range list {
		if y+rowH > pageH-marginB-8 {
			y = newPage(pdf, len(list), generated)
		}
		drawRow(pdf, tr, &list[i], i, y, rowH)
		y += rowH
	}

	return pdf.Output(w)
}

// newPage starts a page, draws the header bar and column titles, and returns
// the y position of the first row.
func newPage(pdf *fpdf.Fpdf, total int, generated string) float64 {
	pdf.AddPage()
	pageW, pageH := pdf.GetPageSize()
	marginL, marginT, marginR, marginB := pdf.GetMargins()
	contentW := pageW - marginL - marginR

	// ── Header bar ───────────────────────────────────────────────────────────
	pdf.SetFillColor(30, 30, 30)
	pdf.Rect(marginL, marginT, contentW, 10, "F")
	pdf.SetTextColor(255, 255, 255)
	pdf.SetFont("Helvetica", "B", 11)
	pdf.SetXY(marginL+2, marginT+1.5)
	pdf.CellFormat(contentW/2, 7, "EMPLOYEE REGISTER", "", 0, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 9)
	pdf.CellFormat(contentW/2-4, 7, "Page "+fmt.Sprint(pdf.PageNo())+" of {nb}", "", 1, "R", false, 0, "")
	pdf.SetTextColor(0, 0, 0)

	y := marginT + 14

	// ── Column titles ────────────────────────────────────────────────────────
	pdf.SetFillColor(240, 240, 240)
	pdf.SetFont("Helvetica", "B", 8.5)
	pdf.SetXY(marginL, y)
	for _, c := range columns {
		pdf.CellFormat(contentW*c.width, 7, c.title, "1", 0, "L", true, 0, "")
	}
	y += 7

	// ── Footer ───────────────────────────────────────────────────────────────
	pdf.SetXY(marginL, pageH-marginB-6)
	pdf.SetFont("Helvetica", "I", 7.5)
	pdf.SetTextColor(130, 130, 130)
	pdf.CellFormat(contentW/2, 5, "Generated "+generated, "", 0, "L", false, 0, "")
	pdf.CellFormat(contentW/2, 5, fmt.Sprintf("%d employee(s)", total), "", 0, "R", false, 0, "")
	pdf.SetTextColor(0, 0, 0)

	return y
}

func drawRow(pdf *fpdf.Fpdf, tr func(string) string, e *domain.Employee, i int, y, rowH float64) {
	pageW, _ := pdf.GetPageSize()
	marginL, _, marginR, _ := pdf.GetMargins()
	contentW := pageW - marginL - marginR

	if i%2 == 0 {
		pdf.SetFillColor(250, 250, 250)
	} else {
		pdf.SetFillColor(255, 255, 255)
	}
	pdf.SetFont("Helvetica", "", 8.5)
	pdf.SetXY(marginL, y)
	for _, c := range columns {
		w := contentW * c.width
		pdf.CellFormat(w, rowH, fit(pdf, tr, c.value(e), w-2), "1", 0, "L", true, 0, "")
	}
}

// fit truncates the UTF-8 string s with "..." so it fits within width at the
// current font, and returns it translated for the core font encoding.
func fit(pdf *fpdf.Fpdf, tr func(string) string, s string, width float64) string {
	if pdf.GetStringWidth(tr(s)) <= width {
		return tr(s)
	}
	r := []rune(s)
	for len(r) > 0 && pdf.GetStringWidth(tr(string(r)+"...")) > width {
		r = r[:len(r)-1]
	}
	return tr(string(r) + "...")
}

// cityLine returns ", City, ST" or "".
func cityLine(city, state string) string {
	s := ""
	if city != "" {
		s += ", " + city
	}
	if state != "" {
		s += ", " + state
	}
	return s
}
