package tui

import "testing"

func TestFormFocusCycle(t *testing.T) {
	f := newForm(
		fieldSpec{label: "A"},
		fieldSpec{label: "B"},
		fieldSpec{label: "C"},
	)
	if f.focus != 0 {
		t.Fatalf("initial focus = %d", f.focus)
	}
	f.Next()
	f.Next()
	if f.focus != 2 {
		t.Fatalf("focus = %d, want 2", f.focus)
	}
	f.Next()
	if f.focus != 0 {
		t.Fatalf("focus did not wrap, got %d", f.focus)
	}
	f.Prev()
	if f.focus != 2 {
		t.Fatalf("Prev did not wrap, got %d", f.focus)
	}
}

func TestFormEmptyIsInert(t *testing.T) {
	f := newForm()
	f.Next()
	f.Prev()
	if cmd := f.Update(nil); cmd != nil {
		t.Fatal("empty form produced a command")
	}
}

func TestFormValueTrims(t *testing.T) {
	f := newForm(fieldSpec{label: "Name"})
	f.inputs[0].SetValue("  padded  ")
	if got := f.Value(0); got != "padded" {
		t.Fatalf("Value = %q", got)
	}
}

func TestPickerCycles(t *testing.T) {
	p := picker{options: []string{"a", "b"}}
	if p.Value() != "a" {
		t.Fatalf("Value = %q", p.Value())
	}
	p.Next()
	if p.Value() != "b" {
		t.Fatalf("Value = %q", p.Value())
	}
	p.Next()
	if p.Value() != "a" {
		t.Fatalf("picker did not wrap, got %q", p.Value())
	}
}
