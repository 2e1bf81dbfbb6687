package ports

import (
	"context"

	"github.com/csg33k/employee-register/internal/domain"
)

// BlobStore is a string key-value store. It stands in for browser local
// storage: whole values are read and overwritten, never patched.
type BlobStore interface {
	// Get returns the value under key and whether it exists.
	Get(ctx context.Context, key string) (string, bool, error)
	// Put writes all entries atomically.
	Put(ctx context.Context, entries ...domain.BlobEntry) error
	Close() error
}

// EmployeeRepository defines persistence operations on the employee list.
type EmployeeRepository interface {
	List(ctx context.Context) ([]domain.Employee, error)
	Get(ctx context.Context, id int64) (domain.Employee, error)
	// Insert assigns e.EmpID and prepends e to the list.
	Insert(ctx context.Context, e *domain.Employee) error
	Update(ctx context.Context, e domain.Employee) error
	Delete(ctx context.Context, id int64) error
}

// Confirmer asks the user to approve a destructive action.
type Confirmer interface {
	Confirm(ctx context.Context, prompt string) (bool, error)
}

// ConfirmFunc adapts a plain function to Confirmer.
type ConfirmFunc func(ctx context.Context, prompt string) (bool, error)

func (f ConfirmFunc) Confirm(ctx context.Context, prompt string) (bool, error) {
	return f(ctx, prompt)
}
