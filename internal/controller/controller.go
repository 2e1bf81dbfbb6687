// Package controller mediates between UI actions (reset, save, edit, update,
// delete) and the employee repository. Forms are always value copies; only
// Save and Update write back to the repository.
package controller

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"

	"github.com/csg33k/employee-register/internal/domain"
	"github.com/csg33k/employee-register/internal/ports"
)

// DeletePrompt is shown to the user before a record is removed.
const DeletePrompt = "Are you sure you want to delete this item?"

type Controller struct {
	repo ports.EmployeeRepository
	log  *slog.Logger
}

func New(repo ports.EmployeeRepository, logger *slog.Logger) *Controller {
	if logger == nil {
		logger = slog.Default()
	}
	return &Controller{repo: repo, log: logger.With("component", "controller")}
}

// Reset returns a form bound to a new empty record.
func (c *Controller) Reset() domain.Form {
	return domain.NewForm(domain.Employee{})
}

func (c *Controller) List(ctx context.Context) ([]domain.Employee, error) {
	return c.repo.List(ctx)
}

// BeginEdit binds a form to a copy of the record with id.
func (c *Controller) BeginEdit(ctx context.Context, id int64) (domain.Form, error) {
	e, err := c.repo.Get(ctx, id)
	if err != nil {
		return domain.Form{}, err
	}
	return domain.NewForm(e), nil
}

// Save inserts the form's values as a new record. On a validation failure the
// form comes back with its Errors set alongside a domain.ValidationErrors.
func (c *Controller) Save(ctx context.Context, f domain.Form) (domain.Form, error) {
	if failed, err := validate(f); err != nil {
		return failed, err
	}
	e := f.Employee
	e.EmpID = 0
	if err := c.repo.Insert(ctx, &e); err != nil {
		return f, fmt.Errorf("save employee: %w", err)
	}
	return c.Reset(), nil
}

// Update commits the form's values to the record with the same id. A form
// whose id matches nothing is reset without changing the list.
func (c *Controller) Update(ctx context.Context, f domain.Form) (domain.Form, error) {
	if failed, err := validate(f); err != nil {
		return failed, err
	}
	err := c.repo.Update(ctx, f.Employee)
	switch {
	case errors.Is(err, domain.ErrNotFound):
		c.log.Info("update target not found", "empId", f.EmpID)
	case err != nil:
		return f, fmt.Errorf("update employee %d: %w", f.EmpID, err)
	}
	return c.Reset(), nil
}

// Delete removes the record with id once confirm approves. It reports
// whether a record was removed; declining or an unknown id is not an error.
func (c *Controller) Delete(ctx context.Context, id int64, confirm ports.Confirmer) (bool, error) {
	ok, err := confirm.Confirm(ctx, DeletePrompt)
	if err != nil {
		return false, fmt.Errorf("confirm delete: %w", err)
	}
	if !ok {
		c.log.Debug("delete cancelled", "empId", id)
		return false, nil
	}
	err = c.repo.Delete(ctx, id)
	switch {
	case errors.Is(err, domain.ErrNotFound):
		c.log.Info("delete target not found", "empId", id)
		return false, nil
	case err != nil:
		return false, fmt.Errorf("delete employee %d: %w", id, err)
	}
	return true, nil
}

// Import saves each row through the same validation as Save. Rows are saved
// from the last to the first so that, with every save prepending, the list
// ends up in sheet order. Invalid rows are collected under their sheet row
// number rather than aborting.
func (c *Controller) Import(ctx context.Context, rows []domain.ImportRow) (domain.ImportResult, error) {
	var res domain.ImportResult
	for i := len(rows) - 1; i >= 0; i-- {
		_, err := c.Save(ctx, domain.NewForm(rows[i].Employee))
		if errors.Is(err, domain.ErrValidation) {
			res.Failed = append(res.Failed, domain.RowError{Row: rows[i].Row, Err: err})
			continue
		}
		if err != nil {
			return res, err
		}
		res.Saved++
	}
	slices.Reverse(res.Failed)
	c.log.Info("import finished", "saved", res.Saved, "failed", len(res.Failed))
	return res, nil
}

func validate(f domain.Form) (domain.Form, error) {
	err := f.Validate()
	if err == nil {
		return f, nil
	}
	var verr domain.ValidationErrors
	if errors.As(err, &verr) {
		f.Errors = verr
	}
	return f, err
}

// Always is a Confirmer that approves everything.
var Always ports.Confirmer = ports.ConfirmFunc(func(context.Context, string) (bool, error) {
	return true, nil
})

// Never is a Confirmer that declines everything.
var Never ports.Confirmer = ports.ConfirmFunc(func(context.Context, string) (bool, error) {
	return false, nil
})
