// Package employees owns the in-process employee list and mirrors it to a
// single blob in a ports.BlobStore after every mutation.
//
// The list is kept newest first. Identifiers come from a monotonically
// increasing sequence persisted next to the list, so deleting records never
// causes an identifier to be issued twice.
package employees

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strconv"
	"sync"

	"github.com/csg33k/employee-register/internal/domain"
	"github.com/csg33k/employee-register/internal/ports"
)

var _ ports.EmployeeRepository = (*Store)(nil)

type Store struct {
	mu     sync.Mutex
	blobs  ports.BlobStore
	key    string
	seqKey string
	log    *slog.Logger

	list []domain.Employee
	seq  int64
}

// Open creates a Store over blobs and loads whatever is persisted under key.
// An empty key selects domain.DefaultStoreKey.
func Open(ctx context.Context, blobs ports.BlobStore, key string, logger *slog.Logger) (*Store, error) {
	if key == "" {
		key = domain.DefaultStoreKey
	}
	if logger == nil {
		logger = slog.Default()
	}
	s := &Store{
		blobs:  blobs,
		key:    key,
		seqKey: key + ".seq",
		log:    logger.With("component", "employees", "key", key),
	}
	if err := s.Reload(ctx); err != nil {
		return nil, err
	}
	return s, nil
}

// Reload replaces the in-memory list with the persisted one. A malformed
// blob is logged and treated as an empty list.
func (s *Store) Reload(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	raw, ok, err := s.blobs.Get(ctx, s.key)
	if err != nil {
		return fmt.Errorf("read %s: %w", s.key, err)
	}
	list := []domain.Employee{}
	if ok {
		if err := json.Unmarshal([]byte(raw), &list); err != nil {
			s.log.Warn("stored employee list is malformed; starting empty", "err", err)
			list = []domain.Employee{}
		}
		if list == nil {
			list = []domain.Employee{}
		}
	}

	var seq int64
	rawSeq, ok, err := s.blobs.Get(ctx, s.seqKey)
	if err != nil {
		return fmt.Errorf("read %s: %w", s.seqKey, err)
	}
	if ok {
		seq, err = strconv.ParseInt(rawSeq, 10, 64)
		if err != nil {
			s.log.Warn("stored id sequence is malformed; deriving from list", "err", err)
			seq = 0
		}
	}

	s.list = list
	s.seq = max(seq, maxID(list))
	s.log.Debug("loaded employees", "count", len(list), "seq", s.seq)
	return nil
}

// List returns a copy of the list, newest first.
func (s *Store) List(_ context.Context) ([]domain.Employee, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]domain.Employee, len(s.list))
	copy(out, s.list)
	return out, nil
}

// Get returns a value copy of the record with id.
func (s *Store) Get(_ context.Context, id int64) (domain.Employee, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	i := s.indexOf(id)
	if i < 0 {
		return domain.Employee{}, domain.ErrNotFound
	}
	return s.list[i], nil
}

// Insert assigns the next identifier to e and puts it at the front.
func (s *Store) Insert(ctx context.Context, e *domain.Employee) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	prevList, prevSeq := s.list, s.seq
	next := max(s.seq, maxID(s.list)) + 1
	rec := *e
	rec.EmpID = next

	list := make([]domain.Employee, 0, len(s.list)+1)
	list = append(list, rec)
	list = append(list, s.list...)
	s.list, s.seq = list, next

	if err := s.persist(ctx); err != nil {
		s.list, s.seq = prevList, prevSeq
		return err
	}
	e.EmpID = next
	s.log.Info("employee saved", "empId", next)
	return nil
}

// Update overwrites the mutable fields of the record whose id matches e.
func (s *Store) Update(ctx context.Context, e domain.Employee) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(e.EmpID)
	if i < 0 {
		return domain.ErrNotFound
	}
	prev := s.list[i]
	s.list[i].ApplyFrom(e)
	if err := s.persist(ctx); err != nil {
		s.list[i] = prev
		return err
	}
	s.log.Info("employee updated", "empId", e.EmpID)
	return nil
}

// Delete removes the first record with id.
func (s *Store) Delete(ctx context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(id)
	if i < 0 {
		return domain.ErrNotFound
	}
	prevList := s.list
	list := make([]domain.Employee, 0, len(s.list)-1)
	list = append(list, s.list[:i]...)
	list = append(list, s.list[i+1:]...)
	s.list = list

	if err := s.persist(ctx); err != nil {
		s.list = prevList
		return err
	}
	s.log.Info("employee deleted", "empId", id)
	return nil
}

// persist rewrites the whole blob and the sequence. Callers hold s.mu.
func (s *Store) persist(ctx context.Context) error {
	data, err := json.Marshal(s.list)
	if err != nil {
		return fmt.Errorf("encode employees: %w", err)
	}
	if err := s.blobs.Put(ctx,
		domain.BlobEntry{Key: s.key, Value: string(data)},
		domain.BlobEntry{Key: s.seqKey, Value: strconv.FormatInt(s.seq, 10)},
	); err != nil {
		return fmt.Errorf("write %s: %w", s.key, err)
	}
	return nil
}

func (s *Store) indexOf(id int64) int {
	for i := range s.list {
		if s.list[i].EmpID == id {
			return i
		}
	}
	return -1
}

func maxID(list []domain.Employee) int64 {
	var m int64
	for _, e := range list {
		m = max(m, e.EmpID)
	}
	return m
}
