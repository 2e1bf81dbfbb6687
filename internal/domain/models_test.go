package domain_test

import (
	"errors"
	"testing"

	"github.com/csg33k/employee-register/internal/domain"
)

func TestEmployeeValidate(t *testing.T) {
	cases := []struct {
		name       string
		emp        domain.Employee
		wantFields []string
	}{
		{"valid", domain.Employee{Name: "Alice", PinCode: "123456"}, nil},
		{"valid long pin", domain.Employee{Name: "Alice", PinCode: "1234567890"}, nil},
		{"missing name", domain.Employee{PinCode: "123456"}, []string{"name"}},
		{"blank name", domain.Employee{Name: "   ", PinCode: "123456"}, []string{"name"}},
		{"short pin", domain.Employee{Name: "Alice", PinCode: "12345"}, []string{"pinCode"}},
		{"missing pin", domain.Employee{Name: "Alice"}, []string{"pinCode"}},
		{"blank pin", domain.Employee{Name: "Alice", PinCode: "      "}, []string{"pinCode"}},
		{"padded short pin", domain.Employee{Name: "Alice", PinCode: "  1234  "}, []string{"pinCode"}},
		{"both", domain.Employee{}, []string{"name", "pinCode"}},
		{"multibyte pin counts characters", domain.Employee{Name: "A", PinCode: "ääääää"}, nil},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.emp.Validate()
			if len(tc.wantFields) == 0 {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}
			if !errors.Is(err, domain.ErrValidation) {
				t.Fatalf("want ErrValidation, got %v", err)
			}
			var verr domain.ValidationErrors
			if !errors.As(err, &verr) {
				t.Fatalf("want ValidationErrors, got %T", err)
			}
			if len(verr) != len(tc.wantFields) {
				t.Fatalf("got fields %v, want %v", verr, tc.wantFields)
			}
			for _, f := range tc.wantFields {
				if verr[f] == "" {
					t.Errorf("missing error for %q", f)
				}
			}
		})
	}
}

func TestApplyFromKeepsID(t *testing.T) {
	e := domain.Employee{EmpID: 7, Name: "Old"}
	e.ApplyFrom(domain.Employee{EmpID: 99, Name: "New", City: "Pune", PinCode: "411001"})
	if e.EmpID != 7 {
		t.Fatalf("EmpID changed to %d", e.EmpID)
	}
	if e.Name != "New" || e.City != "Pune" || e.PinCode != "411001" {
		t.Fatalf("fields not applied: %+v", e)
	}
}

func TestFormEditing(t *testing.T) {
	if domain.NewForm(domain.Employee{}).Editing() {
		t.Error("blank form should be in create mode")
	}
	if !domain.NewForm(domain.Employee{EmpID: 3}).Editing() {
		t.Error("bound form should be in edit mode")
	}
}
