package pdf_test

import (
	"bytes"
	"fmt"
	"testing"

	"github.com/csg33k/employee-register/internal/adapters/pdf"
	"github.com/csg33k/employee-register/internal/domain"
)

func TestGeneratePDF(t *testing.T) {
	cases := map[string]int{"empty": 0, "one page": 3, "many pages": 120}
	for name, n := range cases {
		t.Run(name, func(t *testing.T) {
			list := make([]domain.Employee, n)
			for i := range list {
				list[i] = domain.Employee{
					EmpID:   int64(n - i),
					Name:    fmt.Sprintf("Employee %d", n-i),
					City:    "Pune",
					State:   "MH",
					EmailID: "someone@example.com",
					Address: "A rather long street address that will not fit in its column at all",
					PinCode: "411001",
				}
			}
			var buf bytes.Buffer
			if err := pdf.GeneratePDF(list, &buf); err != nil {
				t.Fatalf("GeneratePDF: %v", err)
			}
			if !bytes.HasPrefix(buf.Bytes(), []byte("%PDF-")) {
				t.Fatalf("output is not a PDF: %q", buf.Bytes()[:min(16, buf.Len())])
			}
		})
	}
}
