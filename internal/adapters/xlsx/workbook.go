// Package xlsx moves the employee list in and out of Excel workbooks.
package xlsx

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/csg33k/employee-register/internal/domain"
)

const sheetName = "Employees"

var headers = []string{"Emp ID", "Name", "City", "State", "Email", "Contact No", "Address", "Pin Code"}

// ErrNoHeader is returned by Import when the first row lacks the Name and
// Pin Code columns.
var ErrNoHeader = errors.New("workbook has no Name / Pin Code header row")

// Export writes list as a single-sheet workbook, in list order.
func Export(list []domain.Employee, w io.Writer) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", sheetName); err != nil {
		return err
	}
	if err := f.SetSheetRow(sheetName, "A1", &headers); err != nil {
		return err
	}
	style, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"#E8E0CC"}, Pattern: 1},
	})
	if err != nil {
		return err
	}
	if err := f.SetCellStyle(sheetName, "A1", "H1", style); err != nil {
		return err
	}
	if err := f.SetColWidth(sheetName, "B", "G", 22); err != nil {
		return err
	}

	for i, e := range list {
		cell, _ := excelize.CoordinatesToCellName(1, i+2)
		row := []interface{}{e.EmpID, e.Name, e.City, e.State, e.EmailID, e.ContactNo, e.Address, e.PinCode}
		if err := f.SetSheetRow(sheetName, cell, &row); err != nil {
			return fmt.Errorf("row %d: %w", i+2, err)
		}
	}
	return f.Write(w)
}

// Import reads employees from the first sheet of the workbook in r. Columns
// are matched by header text, case and spacing ignored; an Emp ID column is
// ignored since callers assign fresh identifiers on save. Blank rows are
// skipped, and each returned row keeps its 1-based sheet row number.
func Import(r io.Reader) ([]domain.ImportRow, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("open workbook: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, ErrNoHeader
	}
	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", sheets[0], err)
	}
	if len(rows) == 0 {
		return nil, ErrNoHeader
	}

	cols := map[string]int{}
	for i, h := range rows[0] {
		if key := headerKey(h); key != "" {
			cols[key] = i
		}
	}
	if _, ok := cols["name"]; !ok {
		return nil, ErrNoHeader
	}
	if _, ok := cols["pinCode"]; !ok {
		return nil, ErrNoHeader
	}

	var list []domain.ImportRow
	for i, row := range rows {
		if i == 0 {
			continue
		}
		get := func(key string) string {
			i, ok := cols[key]
			if !ok || i >= len(row) {
				return ""
			}
			return strings.TrimSpace(row[i])
		}
		e := domain.Employee{
			Name:      get("name"),
			City:      get("city"),
			State:     get("state"),
			EmailID:   get("emailId"),
			ContactNo: get("contactNo"),
			Address:   get("address"),
			PinCode:   get("pinCode"),
		}
		if e == (domain.Employee{}) {
			continue
		}
		list = append(list, domain.ImportRow{Row: i + 1, Employee: e})
	}
	return list, nil
}

// headerKey maps a header cell to the Employee JSON field it holds.
func headerKey(h string) string {
	norm := strings.ToLower(strings.NewReplacer(" ", "", "_", "", "-", "").Replace(h))
	switch norm {
	case "name":
		return "name"
	case "city":
		return "city"
	case "state":
		return "state"
	case "email", "emailid":
		return "emailId"
	case "contact", "contactno", "phone":
		return "contactNo"
	case "address":
		return "address"
	case "pincode", "postalcode", "zip":
		return "pinCode"
	}
	return ""
}
