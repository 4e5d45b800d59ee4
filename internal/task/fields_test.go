package task_test

import (
	"reflect"
	"testing"

	"taskboard-api/internal/task"
)

func TestFieldsOrder(t *testing.T) {
	f := task.NewFields().
		Set(task.FieldID, int64(1)).
		Set(task.FieldTitle, "a").
		Set(task.FieldScore, 3)

	f.Set(task.FieldTitle, "b")
	if want := []string{"id", "title", "score"}; !reflect.DeepEqual(f.Keys(), want) {
		t.Errorf("expected %v, got %v", want, f.Keys())
	}
	if s, _ := f.String(task.FieldTitle); s != "b" {
		t.Errorf("expected overwritten title b, got %q", s)
	}

	f.Delete(task.FieldTitle)
	if f.Has(task.FieldTitle) || f.Len() != 2 {
		t.Errorf("delete failed: %v", f.Keys())
	}
	f.Delete("missing")
	if f.Len() != 2 {
		t.Error("deleting a missing key must be a no-op")
	}
}

func TestFieldsTypedGetters(t *testing.T) {
	f := task.NewFields().Set("a", 5).Set("b", int64(6)).Set("c", "x")

	if v, ok := f.Int64("a"); !ok || v != 5 {
		t.Errorf("Int64 widen: got %d %v", v, ok)
	}
	if v, ok := f.Int("b"); !ok || v != 6 {
		t.Errorf("Int narrow: got %d %v", v, ok)
	}
	if _, ok := f.Int64("c"); ok {
		t.Error("string must not read as int64")
	}
	if _, ok := f.String("missing"); ok {
		t.Error("missing key must not read as string")
	}

	m := f.Map()
	m["a"] = 100
	if v, _ := f.Int("a"); v != 5 {
		t.Error("Map must return a copy")
	}
}

func TestValidationErrorMessage(t *testing.T) {
	err := &task.ValidationError{Errors: map[string][]string{"title": {"required"}, "id": {"required"}}}
	if got := err.Error(); got != "validation failed: id, title" {
		t.Errorf("unexpected message: %s", got)
	}
}
