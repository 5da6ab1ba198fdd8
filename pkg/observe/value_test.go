package observe

import (
	"errors"
	"testing"
)

func TestValueRoundTrip(t *testing.T) {
	reg, _ := newTestRegistry()

	i1 := NewValue(reg, nil, "i1", 0)
	i1.Set(42)
	if got := i1.Get(); got != 42 {
		t.Errorf("expected 42, got %d", got)
	}

	d1 := NewValue(reg, nil, "d1", 0.0)
	d1.Set(6.555)
	if got := d1.Get(); got != 6.555 {
		t.Errorf("expected 6.555, got %v", got)
	}

	s := NewValue(reg, nil, "s", "")
	s.Set("hello")
	if got := s.Get(); got != "hello" {
		t.Errorf("expected %q, got %q", "hello", got)
	}
}

func TestValueSetNotifiesOnce(t *testing.T) {
	reg, rec := newTestRegistry()
	i1 := NewValue[uint16](reg, nil, "i1", 0)

	i1.Set(42)
	if rec.count() != 1 {
		t.Fatalf("expected 1 notification, got %d", rec.count())
	}
	if got := rec.last(); got.path != "i1" || got.value != "42" {
		t.Errorf("expected (i1, 42), got (%s, %s)", got.path, got.value)
	}
}

func TestValueSetSameValueStillNotifies(t *testing.T) {
	reg, rec := newTestRegistry()
	i1 := NewValue(reg, nil, "i1", 5)

	i1.Set(5)
	i1.Set(5)
	if rec.count() != 2 {
		t.Errorf("every assignment must notify, got %d notifications", rec.count())
	}
}

func TestValueFloatSerialization(t *testing.T) {
	reg, rec := newTestRegistry()

	d1 := NewValue(reg, nil, "d1", 0.0)
	d1.Set(6.555)
	if got := rec.last().value; got != "6.555" {
		t.Errorf("expected %q, got %q", "6.555", got)
	}

	f1 := NewValue[float32](reg, nil, "f1", 0)
	f1.Set(0.33)
	if got := rec.last().value; got != "0.33" {
		t.Errorf("expected %q, got %q", "0.33", got)
	}
}

func TestValueConstructionDoesNotNotify(t *testing.T) {
	reg, rec := newTestRegistry()
	NewValue(reg, nil, "d1", 1.0)
	if rec.count() != 0 {
		t.Errorf("construction must be silent, got %d notifications", rec.count())
	}
}

func TestValueReadNeverNotifies(t *testing.T) {
	reg, rec := newTestRegistry()
	i1 := NewValue(reg, nil, "i1", 7)

	for i := 0; i < 1000; i++ {
		_ = i1.Get()
	}
	if rec.count() != 0 {
		t.Errorf("expected 0 notifications after reads, got %d", rec.count())
	}
}

func TestValueApplyString(t *testing.T) {
	reg, rec := newTestRegistry()
	i1 := NewValue(reg, nil, "i1", 0)

	if err := i1.ApplyString("45"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := i1.Get(); got != 45 {
		t.Errorf("expected 45, got %d", got)
	}
	if rec.count() != 0 {
		t.Errorf("ApplyString must not notify, got %d notifications", rec.count())
	}
}

func TestValueApplyStringMalformed(t *testing.T) {
	reg, _ := newTestRegistry()
	i1 := NewValue(reg, nil, "i1", 13)

	err := i1.ApplyString("not-a-number")
	if !errors.Is(err, ErrMalformedValue) {
		t.Fatalf("expected ErrMalformedValue, got %v", err)
	}
	if got := i1.Get(); got != 13 {
		t.Errorf("malformed input must leave prior value, got %d", got)
	}
}

func TestValueNamedType(t *testing.T) {
	type color int
	const blue color = 1

	reg, rec := newTestRegistry()
	e2 := NewValue(reg, nil, "e2", color(0))

	e2.Set(blue)
	if got := rec.last().value; got != "1" {
		t.Errorf("expected %q, got %q", "1", got)
	}
	if err := e2.ApplyString("4"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if e2.Get() != color(4) {
		t.Errorf("expected 4, got %d", e2.Get())
	}
}
