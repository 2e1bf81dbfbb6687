package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/a-h/templ"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/csg33k/employee-register/internal/adapters/pdf"
	"github.com/csg33k/employee-register/internal/adapters/xlsx"
	"github.com/csg33k/employee-register/internal/controller"
	"github.com/csg33k/employee-register/internal/domain"
	"github.com/csg33k/employee-register/internal/ports"
	"github.com/csg33k/employee-register/internal/templates"
)

const maxUploadBytes = 10 << 20

type Handler struct {
	ctrl *controller.Controller
	log  *slog.Logger
}

func New(ctrl *controller.Controller, logger *slog.Logger) *Handler {
	if logger == nil {
		logger = slog.Default()
	}
	return &Handler{ctrl: ctrl, log: logger.With("component", "http")}
}

func (h *Handler) Routes() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RequestLogger(&middleware.DefaultLogFormatter{
		Logger:  slog.NewLogLogger(h.log.Handler(), slog.LevelInfo),
		NoColor: true,
	}))
	r.Use(middleware.Recoverer)

	r.Get("/", h.index)
	r.Get("/health", h.health)
	r.Get("/form", h.resetForm)
	r.Get("/employees.json", h.listJSON)
	r.Post("/employees", h.saveEmployee)
	r.Get("/employees/export.xlsx", h.exportXLSX)
	r.Get("/employees/report.pdf", h.reportPDF)
	r.Post("/employees/import", h.importXLSX)
	r.Get("/employees/{id}/edit", h.editForm)
	r.Put("/employees/{id}", h.updateEmployee)
	r.Delete("/employees/{id}", h.deleteEmployee)
	return r
}

func (h *Handler) index(w http.ResponseWriter, r *http.Request) {
	list, err := h.ctrl.List(r.Context())
	if err != nil {
		h.fail(w, r, err)
		return
	}
	render(w, r, http.StatusOK, templates.Page(h.ctrl.Reset(), list))
}

func (h *Handler) health(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.Write([]byte(`{"status":"ok"}`))
}

// resetForm renders a blank form fragment.
func (h *Handler) resetForm(w http.ResponseWriter, r *http.Request) {
	render(w, r, http.StatusOK, templates.EmployeeForm(h.ctrl.Reset()))
}

// listJSON serves the list in the persisted blob format.
func (h *Handler) listJSON(w http.ResponseWriter, r *http.Request) {
	list, err := h.ctrl.List(r.Context())
	if err != nil {
		h.fail(w, r, err)
		return
	}
	data, err := json.Marshal(list)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.Write(data)
}

func (h *Handler) saveEmployee(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	form, err := h.ctrl.Save(r.Context(), domain.NewForm(parseEmployeeForm(r)))
	h.renderApp(w, r, form, err)
}

// editForm binds the form to a copy of the selected employee.
func (h *Handler) editForm(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}
	form, err := h.ctrl.BeginEdit(r.Context(), id)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	render(w, r, http.StatusOK, templates.EmployeeForm(form))
}

// updateEmployee handles PUT /employees/{id}; the path id wins over the
// hidden empId field.
func (h *Handler) updateEmployee(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}
	if err := r.ParseForm(); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	e := parseEmployeeForm(r)
	e.EmpID = id
	form, err := h.ctrl.Update(r.Context(), domain.NewForm(e))
	h.renderApp(w, r, form, err)
}

// deleteEmployee requires ?confirm=yes, which the page only sends after the
// browser's hx-confirm dialog is accepted. Without it nothing is removed.
func (h *Handler) deleteEmployee(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}
	if _, err := h.ctrl.Delete(r.Context(), id, confirmFromQuery(r)); err != nil {
		h.fail(w, r, err)
		return
	}
	list, err := h.ctrl.List(r.Context())
	if err != nil {
		h.fail(w, r, err)
		return
	}
	render(w, r, http.StatusOK, templates.EmployeeTable(list))
}

func (h *Handler) exportXLSX(w http.ResponseWriter, r *http.Request) {
	list, err := h.ctrl.List(r.Context())
	if err != nil {
		h.fail(w, r, err)
		return
	}
	var buf bytes.Buffer
	if err := xlsx.Export(list, &buf); err != nil {
		h.fail(w, r, err)
		return
	}
	filename := fmt.Sprintf("employees_%s.xlsx", time.Now().Format("20060102"))
	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
	w.Write(buf.Bytes())
}

func (h *Handler) reportPDF(w http.ResponseWriter, r *http.Request) {
	list, err := h.ctrl.List(r.Context())
	if err != nil {
		h.fail(w, r, err)
		return
	}
	var buf bytes.Buffer
	if err := pdf.GeneratePDF(list, &buf); err != nil {
		h.fail(w, r, err)
		return
	}
	filename := fmt.Sprintf("employees_%s_roster.pdf", time.Now().Format("20060102"))
	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
	w.Write(buf.Bytes())
}

func (h *Handler) importXLSX(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxUploadBytes)
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	file, _, err := r.FormFile("file")
	if err != nil {
		http.Error(w, "missing file", http.StatusBadRequest)
		return
	}
	defer file.Close()

	rows, err := xlsx.Import(file)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	res, err := h.ctrl.Import(r.Context(), rows)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	render(w, r, http.StatusOK, templates.ImportSummary(res))
}

// renderApp re-renders the form and list after a save or update. A
// validation failure keeps the submitted values and answers 422.
func (h *Handler) renderApp(w http.ResponseWriter, r *http.Request, form domain.Form, err error) {
	status := http.StatusOK
	switch {
	case errors.Is(err, domain.ErrValidation):
		status = http.StatusUnprocessableEntity
	case err != nil:
		h.fail(w, r, err)
		return
	}
	list, err := h.ctrl.List(r.Context())
	if err != nil {
		h.fail(w, r, err)
		return
	}
	render(w, r, status, templates.App(form, list))
}

func (h *Handler) fail(w http.ResponseWriter, r *http.Request, err error) {
	if errors.Is(err, domain.ErrNotFound) {
		http.Error(w, err.Error(), http.StatusNotFound)
		return
	}
	h.log.Error("request failed", "method", r.Method, "path", r.URL.Path,
		"request_id", middleware.GetReqID(r.Context()), "err", err)
	http.Error(w, err.Error(), http.StatusInternalServerError)
}

// parseEmployeeForm reads the employee fields from a parsed form. The field
// names match the persisted JSON keys. EmpID is filled in by the caller.
func parseEmployeeForm(r *http.Request) domain.Employee {
	v := func(name string) string { return strings.TrimSpace(r.FormValue(name)) }
	return domain.Employee{
		Name:      v("name"),
		City:      v("city"),
		State:     v("state"),
		EmailID:   v("emailId"),
		ContactNo: v("contactNo"),
		Address:   v("address"),
		PinCode:   v("pinCode"),
	}
}

func confirmFromQuery(r *http.Request) ports.Confirmer {
	return ports.ConfirmFunc(func(context.Context, string) (bool, error) {
		return r.URL.Query().Get("confirm") == "yes", nil
	})
}

// render writes a templ component to the response with the given status.
func render(w http.ResponseWriter, r *http.Request, status int, c templ.Component) {
	var buf bytes.Buffer
	if err := c.Render(r.Context(), &buf); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	io.Copy(w, &buf)
}

func pathID(r *http.Request, key string) (int64, error) {
	return strconv.ParseInt(chi.URLParam(r, key), 10, 64)
}
