package employees_test

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"reflect"
	"testing"

	"github.com/csg33k/employee-register/internal/adapters/memory"
	"github.com/csg33k/employee-register/internal/domain"
	"github.com/csg33k/employee-register/internal/employees"
)

var quiet = slog.New(slog.NewTextHandler(io.Discard, nil))

func openStore(t *testing.T, blobs *memory.BlobStore) *employees.Store {
	t.Helper()
	s, err := employees.Open(context.Background(), blobs, "", quiet)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	return s
}

func insert(t *testing.T, s *employees.Store, e domain.Employee) domain.Employee {
	t.Helper()
	if err := s.Insert(context.Background(), &e); err != nil {
		t.Fatalf("insert %s: %v", e.Name, err)
	}
	return e
}

func stored(t *testing.T, blobs *memory.BlobStore) []domain.Employee {
	t.Helper()
	raw, ok, _ := blobs.Get(context.Background(), domain.DefaultStoreKey)
	if !ok {
		t.Fatal("nothing persisted")
	}
	var list []domain.Employee
	if err := json.Unmarshal([]byte(raw), &list); err != nil {
		t.Fatalf("decode blob: %v", err)
	}
	return list
}

func TestOpenEmpty(t *testing.T) {
	s := openStore(t, memory.New())
	list, _ := s.List(context.Background())
	if len(list) != 0 {
		t.Fatalf("want empty list, got %v", list)
	}
}

func TestOpenMalformedBlobIsEmpty(t *testing.T) {
	blobs := memory.New()
	blobs.Put(context.Background(), domain.BlobEntry{Key: domain.DefaultStoreKey, Value: "{not json"})
	s := openStore(t, blobs)
	list, _ := s.List(context.Background())
	if len(list) != 0 {
		t.Fatalf("want empty list, got %v", list)
	}
	e := insert(t, s, domain.Employee{Name: "Alice", PinCode: "123456"})
	if e.EmpID != 1 {
		t.Fatalf("EmpID = %d, want 1", e.EmpID)
	}
}

func TestOpenExistingBlob(t *testing.T) {
	blobs := memory.New()
	blobs.Put(context.Background(), domain.BlobEntry{
		Key:   domain.DefaultStoreKey,
		Value: `[{"empId":1,"name":"Alice","city":"","state":"","emailId":"","contactNo":"","address":"","pinCode":"123456"}]`,
	})
	s := openStore(t, blobs)
	bob := insert(t, s, domain.Employee{Name: "Bob", PinCode: "654321"})
	if bob.EmpID != 2 {
		t.Fatalf("EmpID = %d, want 2", bob.EmpID)
	}
}

func TestInsertScenario(t *testing.T) {
	blobs := memory.New()
	s := openStore(t, blobs)

	insert(t, s, domain.Employee{Name: "Alice", PinCode: "123456"})
	want := []domain.Employee{{EmpID: 1, Name: "Alice", PinCode: "123456"}}
	got, _ := s.List(context.Background())
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("after Alice: got %+v, want %+v", got, want)
	}

	insert(t, s, domain.Employee{Name: "Bob", PinCode: "654321"})
	want = []domain.Employee{
		{EmpID: 2, Name: "Bob", PinCode: "654321"},
		{EmpID: 1, Name: "Alice", PinCode: "123456"},
	}
	got, _ = s.List(context.Background())
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("after Bob: got %+v, want %+v", got, want)
	}
	if persisted := stored(t, blobs); !reflect.DeepEqual(persisted, got) {
		t.Fatalf("blob %+v does not match list %+v", persisted, got)
	}
}

func TestUpdateTouchesOnlyTarget(t *testing.T) {
	blobs := memory.New()
	s := openStore(t, blobs)
	alice := insert(t, s, domain.Employee{Name: "Alice", PinCode: "123456"})
	bob := insert(t, s, domain.Employee{Name: "Bob", City: "Delhi", PinCode: "654321"})

	edit := alice
	edit.City = "Pune"
	if err := s.Update(context.Background(), edit); err != nil {
		t.Fatalf("update: %v", err)
	}

	got, _ := s.Get(context.Background(), alice.EmpID)
	if got.City != "Pune" || got.Name != "Alice" {
		t.Fatalf("alice = %+v", got)
	}
	gotBob, _ := s.Get(context.Background(), bob.EmpID)
	if gotBob != bob {
		t.Fatalf("bob changed: %+v, want %+v", gotBob, bob)
	}
	list, _ := s.List(context.Background())
	if !reflect.DeepEqual(stored(t, blobs), list) {
		t.Fatal("blob out of sync with list")
	}
}

func TestUpdateMissing(t *testing.T) {
	s := openStore(t, memory.New())
	insert(t, s, domain.Employee{Name: "Alice", PinCode: "123456"})
	err := s.Update(context.Background(), domain.Employee{EmpID: 42, Name: "X", PinCode: "123456"})
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("want ErrNotFound, got %v", err)
	}
}

func TestDelete(t *testing.T) {
	blobs := memory.New()
	s := openStore(t, blobs)
	alice := insert(t, s, domain.Employee{Name: "Alice", PinCode: "123456"})
	bob := insert(t, s, domain.Employee{Name: "Bob", PinCode: "654321"})

	if err := s.Delete(context.Background(), bob.EmpID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	got, _ := s.List(context.Background())
	if !reflect.DeepEqual(got, []domain.Employee{alice}) {
		t.Fatalf("got %+v", got)
	}
	if !reflect.DeepEqual(stored(t, blobs), got) {
		t.Fatal("blob out of sync with list")
	}

	if err := s.Delete(context.Background(), 99); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("want ErrNotFound, got %v", err)
	}
	got, _ = s.List(context.Background())
	if len(got) != 1 {
		t.Fatalf("missing delete changed the list: %+v", got)
	}
}

func TestIDsNotReusedAfterDelete(t *testing.T) {
	blobs := memory.New()
	s := openStore(t, blobs)
	insert(t, s, domain.Employee{Name: "A", PinCode: "111111"})
	insert(t, s, domain.Employee{Name: "B", PinCode: "222222"})
	c := insert(t, s, domain.Employee{Name: "C", PinCode: "333333"})
	if err := s.Delete(context.Background(), c.EmpID); err != nil {
		t.Fatal(err)
	}

	d := insert(t, s, domain.Employee{Name: "D", PinCode: "444444"})
	if d.EmpID != 4 {
		t.Fatalf("EmpID = %d, want 4", d.EmpID)
	}

	// The sequence survives a reopen.
	s = openStore(t, blobs)
	if err := s.Delete(context.Background(), d.EmpID); err != nil {
		t.Fatal(err)
	}
	e := insert(t, s, domain.Employee{Name: "E", PinCode: "555555"})
	if e.EmpID != 5 {
		t.Fatalf("EmpID = %d, want 5", e.EmpID)
	}
}

func TestListReturnsCopy(t *testing.T) {
	s := openStore(t, memory.New())
	insert(t, s, domain.Employee{Name: "Alice", PinCode: "123456"})
	list, _ := s.List(context.Background())
	list[0].Name = "Mallory"
	got, _ := s.Get(context.Background(), 1)
	if got.Name != "Alice" {
		t.Fatalf("caller mutation leaked into store: %+v", got)
	}
}

type failingBlobs struct {
	*memory.BlobStore
	fail bool
}

func (f *failingBlobs) Put(ctx context.Context, entries ...domain.BlobEntry) error {
	if f.fail {
		return errors.New("disk full")
	}
	return f.BlobStore.Put(ctx, entries...)
}

func TestWriteFailureRollsBack(t *testing.T) {
	ctx := context.Background()
	blobs := &failingBlobs{BlobStore: memory.New()}
	s, err := employees.Open(ctx, blobs, "", quiet)
	if err != nil {
		t.Fatal(err)
	}
	alice := domain.Employee{Name: "Alice", PinCode: "123456"}
	if err := s.Insert(ctx, &alice); err != nil {
		t.Fatal(err)
	}

	blobs.fail = true
	bob := domain.Employee{Name: "Bob", PinCode: "654321"}
	if err := s.Insert(ctx, &bob); err == nil {
		t.Fatal("want insert error")
	}
	edit := alice
	edit.City = "Pune"
	if err := s.Update(ctx, edit); err == nil {
		t.Fatal("want update error")
	}
	if err := s.Delete(ctx, alice.EmpID); err == nil {
		t.Fatal("want delete error")
	}

	list, _ := s.List(ctx)
	if !reflect.DeepEqual(list, []domain.Employee{alice}) {
		t.Fatalf("list not rolled back: %+v", list)
	}

	blobs.fail = false
	if err := s.Insert(ctx, &bob); err != nil {
		t.Fatal(err)
	}
	if bob.EmpID != 2 {
		t.Fatalf("EmpID = %d, want 2 after failed insert", bob.EmpID)
	}
}
