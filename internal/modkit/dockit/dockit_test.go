package dockit

import (
	"context"
	"testing"

	perr "sensutv/internal/platform/errors"
)

// memDocs is an in-memory doc store for binder and codec tests
type memDocs struct {
	data map[string][]byte
}

func newMemDocs() *memDocs { return &memDocs{data: map[string][]byte{}} }

func (m *memDocs) Get(_ context.Context, key string) ([]byte, error) {
	b, ok := m.data[key]
	if !ok {
		return nil, perr.NotFoundf("no document at %s", key)
	}
	return b, nil
}

func (m *memDocs) Put(_ context.Context, key string, data []byte, _ string) error {
	m.data[key] = append([]byte(nil), data...)
	return nil
}

var _ Docs = (*memDocs)(nil)

func mustPanic(t *testing.T, name string, fn func()) {
	t.Helper()
	defer func() {
		if r := recover(); r == nil {
			t.Fatalf("%s: expected panic, got none", name)
		}
	}()
	fn()
}

func TestBindFunc_BindCallsFunc(t *testing.T) {
	t.Parallel()

	var d Docs // nil is fine; BindFunc doesn't use it
	b := BindFunc[string](func(_ Docs) string {
		return "ok"
	})

	got := b.Bind(d)
	if got != "ok" {
		t.Fatalf("BindFunc.Bind = %q, want %q", got, "ok")
	}
}

func TestRequireDocs_PanicsOnNil(t *testing.T) {
	t.Parallel()

	var d Docs
	mustPanic(t, "RequireDocs(nil)", func() {
		_ = RequireDocs(d)
	})
}

func TestMustBind_PanicsOnNilDocs(t *testing.T) {
	t.Parallel()

	var d Docs
	b := BindFunc[int](func(_ Docs) int { return 42 })

	mustPanic(t, "MustBind(nil Docs)", func() {
		_ = MustBind[int](b, d)
	})
}

func TestRequireDocs_ReturnsSame(t *testing.T) {
	t.Parallel()

	var in Docs = newMemDocs()
	out := RequireDocs(in)
	if out != in {
		t.Fatalf("RequireDocs did not return the same instance")
	}
}
