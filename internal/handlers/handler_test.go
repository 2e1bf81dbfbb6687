package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/url"
	"reflect"
	"strings"
	"testing"

	"github.com/csg33k/employee-register/internal/adapters/memory"
	"github.com/csg33k/employee-register/internal/adapters/xlsx"
	"github.com/csg33k/employee-register/internal/controller"
	"github.com/csg33k/employee-register/internal/domain"
	"github.com/csg33k/employee-register/internal/employees"
	"github.com/csg33k/employee-register/internal/handlers"
)

var quiet = slog.New(slog.NewTextHandler(io.Discard, nil))

type fixture struct {
	srv   *httptest.Server
	blobs *memory.BlobStore
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	blobs := memory.New()
	store, err := employees.Open(context.Background(), blobs, "", quiet)
	if err != nil {
		t.Fatal(err)
	}
	h := handlers.New(controller.New(store, quiet), quiet)
	srv := httptest.NewServer(h.Routes())
	t.Cleanup(srv.Close)
	return &fixture{srv: srv, blobs: blobs}
}

func (f *fixture) do(t *testing.T, method, path string, form url.Values) (*http.Response, string) {
	t.Helper()
	var body io.Reader
	if form != nil {
		body = strings.NewReader(form.Encode())
	}
	req, err := http.NewRequest(method, f.srv.URL+path, body)
	if err != nil {
		t.Fatal(err)
	}
	if form != nil {
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()
	b, _ := io.ReadAll(resp.Body)
	return resp, string(b)
}

func (f *fixture) list(t *testing.T) []domain.Employee {
	t.Helper()
	resp, body := f.do(t, http.MethodGet, "/employees.json", nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("list status %d", resp.StatusCode)
	}
	var list []domain.Employee
	if err := json.Unmarshal([]byte(body), &list); err != nil {
		t.Fatalf("decode list: %v (%s)", err, body)
	}
	return list
}

func (f *fixture) save(t *testing.T, name, pin string) {
	t.Helper()
	resp, body := f.do(t, http.MethodPost, "/employees", url.Values{"name": {name}, "pinCode": {pin}})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("save %s: status %d: %s", name, resp.StatusCode, body)
	}
}

func TestIndex(t *testing.T) {
	f := newFixture(t)
	resp, body := f.do(t, http.MethodGet, "/", nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status %d", resp.StatusCode)
	}
	if !strings.Contains(body, `id="employee-form"`) || !strings.Contains(body, "No employees yet") {
		t.Fatalf("unexpected page:\n%s", body)
	}
}

func TestSaveAndList(t *testing.T) {
	f := newFixture(t)
	f.save(t, "Alice", "123456")
	f.save(t, "Bob", "654321")

	want := []domain.Employee{
		{EmpID: 2, Name: "Bob", PinCode: "654321"},
		{EmpID: 1, Name: "Alice", PinCode: "123456"},
	}
	if got := f.list(t); !reflect.DeepEqual(got, want) {
		t.Fatalf("got %+v, want %+v", got, want)
	}

	raw, ok, _ := f.blobs.Get(context.Background(), domain.DefaultStoreKey)
	if !ok {
		t.Fatal("blob not written")
	}
	var persisted []domain.Employee
	json.Unmarshal([]byte(raw), &persisted)
	if !reflect.DeepEqual(persisted, want) {
		t.Fatalf("blob %+v, want %+v", persisted, want)
	}
}

func TestSaveValidationFailure(t *testing.T) {
	f := newFixture(t)
	resp, body := f.do(t, http.MethodPost, "/employees", url.Values{"name": {"Alice"}, "pinCode": {"12"}})
	if resp.StatusCode != http.StatusUnprocessableEntity {
		t.Fatalf("status %d, want 422", resp.StatusCode)
	}
	if !strings.Contains(body, "Pin code must be at least 6 characters") || !strings.Contains(body, `value="Alice"`) {
		t.Fatalf("form not re-rendered with error:\n%s", body)
	}
	if got := f.list(t); len(got) != 0 {
		t.Fatalf("list mutated: %+v", got)
	}
}

func TestEditAndUpdate(t *testing.T) {
	f := newFixture(t)
	f.save(t, "Alice", "123456")
	f.save(t, "Bob", "654321")

	resp, body := f.do(t, http.MethodGet, "/employees/1/edit", nil)
	if resp.StatusCode != http.StatusOK || !strings.Contains(body, `hx-put="/employees/1"`) {
		t.Fatalf("edit form: %d\n%s", resp.StatusCode, body)
	}

	resp, _ = f.do(t, http.MethodPut, "/employees/1", url.Values{
		"empId": {"2"}, "name": {"Alice"}, "city": {"Pune"}, "pinCode": {"123456"},
	})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("update status %d", resp.StatusCode)
	}
	got := f.list(t)
	if got[1].City != "Pune" || got[1].EmpID != 1 {
		t.Fatalf("alice = %+v", got[1])
	}
	if got[0] != (domain.Employee{EmpID: 2, Name: "Bob", PinCode: "654321"}) {
		t.Fatalf("bob changed: %+v", got[0])
	}
}

func TestEditUnknown(t *testing.T) {
	f := newFixture(t)
	if resp, _ := f.do(t, http.MethodGet, "/employees/9/edit", nil); resp.StatusCode != http.StatusNotFound {
		t.Fatalf("status %d, want 404", resp.StatusCode)
	}
	if resp, _ := f.do(t, http.MethodGet, "/employees/abc/edit", nil); resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("status %d, want 400", resp.StatusCode)
	}
}

func TestDeleteRequiresConfirmation(t *testing.T) {
	f := newFixture(t)
	f.save(t, "Alice", "123456")
	f.save(t, "Bob", "654321")

	if resp, _ := f.do(t, http.MethodDelete, "/employees/2", nil); resp.StatusCode != http.StatusOK {
		t.Fatalf("status %d", resp.StatusCode)
	}
	if got := f.list(t); len(got) != 2 {
		t.Fatalf("unconfirmed delete removed a record: %+v", got)
	}

	resp, body := f.do(t, http.MethodDelete, "/employees/2?confirm=yes", nil)
	if resp.StatusCode != http.StatusOK || !strings.Contains(body, "Employees (1)") {
		t.Fatalf("delete: %d\n%s", resp.StatusCode, body)
	}
	want := []domain.Employee{{EmpID: 1, Name: "Alice", PinCode: "123456"}}
	if got := f.list(t); !reflect.DeepEqual(got, want) {
		t.Fatalf("got %+v", got)
	}
}

func TestResetForm(t *testing.T) {
	f := newFixture(t)
	resp, body := f.do(t, http.MethodGet, "/form", nil)
	if resp.StatusCode != http.StatusOK || !strings.Contains(body, `hx-post="/employees"`) {
		t.Fatalf("reset: %d\n%s", resp.StatusCode, body)
	}
}

func TestDownloads(t *testing.T) {
	f := newFixture(t)
	f.save(t, "Alice", "123456")

	resp, body := f.do(t, http.MethodGet, "/employees/report.pdf", nil)
	if resp.StatusCode != http.StatusOK || !strings.HasPrefix(body, "%PDF-") {
		t.Fatalf("pdf: %d", resp.StatusCode)
	}

	resp, body = f.do(t, http.MethodGet, "/employees/export.xlsx", nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("xlsx: %d", resp.StatusCode)
	}
	rows, err := xlsx.Import(strings.NewReader(body))
	if err != nil || len(rows) != 1 || rows[0].Name != "Alice" {
		t.Fatalf("xlsx rows %+v err %v", rows, err)
	}
}

func TestImport(t *testing.T) {
	f := newFixture(t)

	var sheet bytes.Buffer
	if err := xlsx.Export([]domain.Employee{
		{Name: "Alice", PinCode: "123456"},
		{Name: "", PinCode: "654321"},
	}, &sheet); err != nil {
		t.Fatal(err)
	}
	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	part, _ := mw.CreateFormFile("file", "employees.xlsx")
	part.Write(sheet.Bytes())
	mw.Close()

	resp, err := http.Post(f.srv.URL+"/employees/import", mw.FormDataContentType(), &body)
	if err != nil {
		t.Fatal(err)
	}
	out, _ := io.ReadAll(resp.Body)
	resp.Body.Close()
	if resp.StatusCode != http.StatusOK || !strings.Contains(string(out), "1 employee(s) saved, 1 row(s) rejected.") {
		t.Fatalf("import: %d\n%s", resp.StatusCode, out)
	}
	if !strings.Contains(string(out), `<td class="mono">3</td>`) {
		t.Fatalf("rejected row not reported as sheet row 3:\n%s", out)
	}
	if got := f.list(t); len(got) != 1 || got[0].Name != "Alice" {
		t.Fatalf("list = %+v", got)
	}
}
