package domain

import (
	"errors"
	"sort"
	"strings"
	"unicode/utf8"
)

// DefaultStoreKey is the blob key the employee list is persisted under.
const DefaultStoreKey = "EmpData"

// MinPinCodeLen is the shortest accepted postal code.
const MinPinCodeLen = 6

var (
	ErrNotFound   = errors.New("employee not found")
	ErrValidation = errors.New("validation failed")
)

// Employee is one record of the register. The JSON keys are the persisted
// blob format and must not change.
type Employee struct {
	EmpID     int64  `json:"empId"`
	Name      string `json:"name"`
	City      string `json:"city"`
	State     string `json:"state"`
	EmailID   string `json:"emailId"`
	ContactNo string `json:"contactNo"`
	Address   string `json:"address"`
	PinCode   string `json:"pinCode"`
}

// ApplyFrom copies every mutable field of src onto e. EmpID is left alone.
func (e *Employee) ApplyFrom(src Employee) {
	e.Name = src.Name
	e.City = src.City
	e.State = src.State
	e.EmailID = src.EmailID
	e.ContactNo = src.ContactNo
	e.Address = src.Address
	e.PinCode = src.PinCode
}

// Validate enforces the two declared field constraints: name is required and
// pinCode is required with at least MinPinCodeLen characters. Both fields are
// judged with surrounding whitespace removed.
func (e Employee) Validate() error {
	errs := ValidationErrors{}
	if strings.TrimSpace(e.Name) == "" {
		errs["name"] = "Name is required"
	}
	switch n := utf8.RuneCountInString(strings.TrimSpace(e.PinCode)); {
	case n == 0:
		errs["pinCode"] = "Pin code is required"
	case n < MinPinCodeLen:
		errs["pinCode"] = "Pin code must be at least 6 characters"
	}
	if len(errs) == 0 {
		return nil
	}
	return errs
}

// ValidationErrors maps a field's JSON name to a human readable message.
type ValidationErrors map[string]string

func (v ValidationErrors) Error() string {
	fields := make([]string, 0, len(v))
	for f := range v {
		fields = append(fields, f)
	}
	sort.Strings(fields)
	parts := make([]string, 0, len(fields))
	for _, f := range fields {
		parts = append(parts, f+": "+v[f])
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

func (v ValidationErrors) Is(target error) bool { return target == ErrValidation }

// Form is the transient state behind the entry form: a value copy of the
// bound employee plus any field errors from the last submit.
type Form struct {
	Employee
	Errors ValidationErrors
}

// NewForm binds a form to a copy of e.
func NewForm(e Employee) Form {
	return Form{Employee: e}
}

// Editing reports whether the form is bound to an already saved record.
func (f Form) Editing() bool { return f.EmpID != 0 }

// Err returns the message for field, or "".
func (f Form) Err(field string) string {
	if f.Errors == nil {
		return ""
	}
	return f.Errors[field]
}

// BlobEntry is one key/value pair written by a BlobStore.Put.
type BlobEntry struct {
	Key   string
	Value string
}

// ImportResult summarises a spreadsheet import.
type ImportResult struct {
	Saved  int
	Failed []RowError
}

// RowError ties a validation failure to its 1-based spreadsheet row.
type RowError struct {
	Row int
	Err error
}

// ImportRow is an employee read from a spreadsheet, with the 1-based sheet
// row it came from.
type ImportRow struct {
	Row int
	Employee
}
