package controller_test

import (
	"bytes"
	"context"
	"errors"
	"io"
	"log/slog"
	"reflect"
	"testing"

	"github.com/xuri/excelize/v2"

	"github.com/csg33k/employee-register/internal/adapters/memory"
	"github.com/csg33k/employee-register/internal/adapters/xlsx"
	"github.com/csg33k/employee-register/internal/controller"
	"github.com/csg33k/employee-register/internal/domain"
	"github.com/csg33k/employee-register/internal/employees"
	"github.com/csg33k/employee-register/internal/ports"
)

var quiet = slog.New(slog.NewTextHandler(io.Discard, nil))

func newController(t *testing.T) (*controller.Controller, *memory.BlobStore) {
	t.Helper()
	blobs := memory.New()
	store, err := employees.Open(context.Background(), blobs, "", quiet)
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	return controller.New(store, quiet), blobs
}

func save(t *testing.T, c *controller.Controller, e domain.Employee) {
	t.Helper()
	if _, err := c.Save(context.Background(), domain.NewForm(e)); err != nil {
		t.Fatalf("save %s: %v", e.Name, err)
	}
}

func list(t *testing.T, c *controller.Controller) []domain.Employee {
	t.Helper()
	l, err := c.List(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	return l
}

func TestSaveScenarios(t *testing.T) {
	c, _ := newController(t)

	f, err := c.Save(context.Background(), domain.NewForm(domain.Employee{Name: "Alice", PinCode: "123456"}))
	if err != nil {
		t.Fatalf("save: %v", err)
	}
	if f.Employee != (domain.Employee{}) || f.Errors != nil {
		t.Fatalf("form not reset after save: %+v", f)
	}
	want := []domain.Employee{{EmpID: 1, Name: "Alice", PinCode: "123456"}}
	if got := list(t, c); !reflect.DeepEqual(got, want) {
		t.Fatalf("got %+v, want %+v", got, want)
	}

	save(t, c, domain.Employee{Name: "Bob", PinCode: "654321"})
	want = []domain.Employee{
		{EmpID: 2, Name: "Bob", PinCode: "654321"},
		{EmpID: 1, Name: "Alice", PinCode: "123456"},
	}
	if got := list(t, c); !reflect.DeepEqual(got, want) {
		t.Fatalf("got %+v, want %+v", got, want)
	}
}

func TestSaveIgnoresFormID(t *testing.T) {
	c, _ := newController(t)
	save(t, c, domain.Employee{EmpID: 77, Name: "Alice", PinCode: "123456"})
	if got := list(t, c)[0].EmpID; got != 1 {
		t.Fatalf("EmpID = %d, want 1", got)
	}
}

func TestSaveRejectsInvalid(t *testing.T) {
	for _, tc := range []struct {
		name  string
		emp   domain.Employee
		field string
	}{
		{"empty name", domain.Employee{PinCode: "123456"}, "name"},
		{"short pin", domain.Employee{Name: "Alice", PinCode: "123"}, "pinCode"},
	} {
		t.Run(tc.name, func(t *testing.T) {
			c, blobs := newController(t)
			f, err := c.Save(context.Background(), domain.NewForm(tc.emp))
			if !errors.Is(err, domain.ErrValidation) {
				t.Fatalf("want ErrValidation, got %v", err)
			}
			if f.Err(tc.field) == "" {
				t.Fatalf("form has no error for %s: %+v", tc.field, f.Errors)
			}
			if f.Employee != tc.emp {
				t.Fatalf("form values lost: %+v", f.Employee)
			}
			if got := list(t, c); len(got) != 0 {
				t.Fatalf("list mutated: %+v", got)
			}
			if _, ok, _ := blobs.Get(context.Background(), domain.DefaultStoreKey); ok {
				t.Fatal("blob written on invalid save")
			}
		})
	}
}

func TestBeginEditReturnsCopy(t *testing.T) {
	c, _ := newController(t)
	save(t, c, domain.Employee{Name: "Alice", PinCode: "123456"})

	f, err := c.BeginEdit(context.Background(), 1)
	if err != nil {
		t.Fatal(err)
	}
	if !f.Editing() || f.Name != "Alice" {
		t.Fatalf("form = %+v", f)
	}
	f.Name = "Changed but not committed"
	if got := list(t, c)[0].Name; got != "Alice" {
		t.Fatalf("edit leaked into list before update: %q", got)
	}

	if _, err := c.BeginEdit(context.Background(), 9); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("want ErrNotFound, got %v", err)
	}
}

func TestUpdateScenario(t *testing.T) {
	c, _ := newController(t)
	save(t, c, domain.Employee{Name: "Alice", PinCode: "123456"})
	save(t, c, domain.Employee{Name: "Bob", City: "Delhi", PinCode: "654321"})
	before := list(t, c)

	f, _ := c.BeginEdit(context.Background(), 1)
	f.City = "Pune"
	f, err := c.Update(context.Background(), f)
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if f.Editing() {
		t.Fatal("form not reset after update")
	}

	after := list(t, c)
	if after[1].City != "Pune" || after[1].Name != "Alice" {
		t.Fatalf("alice = %+v", after[1])
	}
	if after[0] != before[0] {
		t.Fatalf("bob changed: %+v", after[0])
	}
}

func TestUpdateUnknownIDIsNoop(t *testing.T) {
	c, _ := newController(t)
	save(t, c, domain.Employee{Name: "Alice", PinCode: "123456"})
	before := list(t, c)

	f, err := c.Update(context.Background(), domain.NewForm(domain.Employee{EmpID: 5, Name: "Ghost", PinCode: "000000"}))
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if f.Editing() {
		t.Fatal("form not reset")
	}
	if got := list(t, c); !reflect.DeepEqual(got, before) {
		t.Fatalf("list changed: %+v", got)
	}
}

func TestUpdateRejectsInvalid(t *testing.T) {
	c, _ := newController(t)
	save(t, c, domain.Employee{Name: "Alice", PinCode: "123456"})
	f, _ := c.BeginEdit(context.Background(), 1)
	f.PinCode = "1"
	if _, err := c.Update(context.Background(), f); !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("want ErrValidation, got %v", err)
	}
	if got := list(t, c)[0].PinCode; got != "123456" {
		t.Fatalf("pin changed to %q", got)
	}
}

func TestDelete(t *testing.T) {
	c, _ := newController(t)
	save(t, c, domain.Employee{Name: "Alice", PinCode: "123456"})
	save(t, c, domain.Employee{Name: "Bob", PinCode: "654321"})

	deleted, err := c.Delete(context.Background(), 2, controller.Never)
	if err != nil || deleted {
		t.Fatalf("declined delete: deleted=%v err=%v", deleted, err)
	}
	if got := list(t, c); len(got) != 2 {
		t.Fatalf("declined delete changed list: %+v", got)
	}

	var prompt string
	confirm := ports.ConfirmFunc(func(_ context.Context, p string) (bool, error) {
		prompt = p
		return true, nil
	})
	deleted, err = c.Delete(context.Background(), 2, confirm)
	if err != nil || !deleted {
		t.Fatalf("confirmed delete: deleted=%v err=%v", deleted, err)
	}
	if prompt != controller.DeletePrompt {
		t.Fatalf("prompt = %q", prompt)
	}
	want := []domain.Employee{{EmpID: 1, Name: "Alice", PinCode: "123456"}}
	if got := list(t, c); !reflect.DeepEqual(got, want) {
		t.Fatalf("got %+v, want %+v", got, want)
	}

	deleted, err = c.Delete(context.Background(), 2, controller.Always)
	if err != nil || deleted {
		t.Fatalf("unknown id: deleted=%v err=%v", deleted, err)
	}
	if got := list(t, c); !reflect.DeepEqual(got, want) {
		t.Fatalf("unknown id changed list: %+v", got)
	}
}

func TestDeleteConfirmError(t *testing.T) {
	c, _ := newController(t)
	save(t, c, domain.Employee{Name: "Alice", PinCode: "123456"})
	broken := ports.ConfirmFunc(func(context.Context, string) (bool, error) {
		return false, io.ErrUnexpectedEOF
	})
	if _, err := c.Delete(context.Background(), 1, broken); !errors.Is(err, io.ErrUnexpectedEOF) {
		t.Fatalf("want wrapped EOF, got %v", err)
	}
	if got := list(t, c); len(got) != 1 {
		t.Fatal("record removed despite confirm error")
	}
}

func TestImport(t *testing.T) {
	c, _ := newController(t)
	res, err := c.Import(context.Background(), []domain.ImportRow{
		{Row: 2, Employee: domain.Employee{Name: "Alice", PinCode: "123456"}},
		{Row: 3, Employee: domain.Employee{Name: "", PinCode: "123456"}},
		{Row: 5, Employee: domain.Employee{Name: "Bob", PinCode: "654321"}},
		{Row: 6, Employee: domain.Employee{Name: "Carol", PinCode: "12"}},
	})
	if err != nil {
		t.Fatal(err)
	}
	if res.Saved != 2 {
		t.Fatalf("saved = %d, want 2", res.Saved)
	}
	if len(res.Failed) != 2 || res.Failed[0].Row != 3 || res.Failed[1].Row != 6 {
		t.Fatalf("failed = %+v", res.Failed)
	}
	got := list(t, c)
	if len(got) != 2 || got[0].Name != "Alice" || got[1].Name != "Bob" {
		t.Fatalf("list = %+v", got)
	}
}

func TestImportReportsSheetRows(t *testing.T) {
	f := excelize.NewFile()
	defer f.Close()
	f.SetSheetRow("Sheet1", "A1", &[]string{"Name", "Pin Code"})
	f.SetSheetRow("Sheet1", "A2", &[]string{"Meera", "400001"})
	f.SetSheetRow("Sheet1", "A4", &[]string{"Short Pin", "12"})
	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		t.Fatal(err)
	}
	rows, err := xlsx.Import(&buf)
	if err != nil {
		t.Fatalf("read sheet: %v", err)
	}

	c, _ := newController(t)
	res, err := c.Import(context.Background(), rows)
	if err != nil {
		t.Fatal(err)
	}
	if res.Saved != 1 || len(res.Failed) != 1 {
		t.Fatalf("result = %+v", res)
	}
	if res.Failed[0].Row != 4 {
		t.Fatalf("failed row = %d, want 4", res.Failed[0].Row)
	}
}
