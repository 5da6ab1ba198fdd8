package observe

import (
	"errors"
	"testing"
)

func TestFormatScalar(t *testing.T) {
	if got := formatScalar(-56); got != "-56" {
		t.Errorf("expected %q, got %q", "-56", got)
	}
	if got := formatScalar(uint16(42)); got != "42" {
		t.Errorf("expected %q, got %q", "42", got)
	}
	if got := formatScalar(6.555); got != "6.555" {
		t.Errorf("expected %q, got %q", "6.555", got)
	}
	if got := formatScalar(float32(0.33)); got != "0.33" {
		t.Errorf("expected %q, got %q", "0.33", got)
	}
	if got := formatScalar(true); got != "true" {
		t.Errorf("expected %q, got %q", "true", got)
	}
	if got := formatScalar("plain"); got != "plain" {
		t.Errorf("expected %q, got %q", "plain", got)
	}
}

func TestParseScalarInverse(t *testing.T) {
	if v, err := parseScalar[int32]("-56"); err != nil || v != -56 {
		t.Errorf("expected -56, got %d (err %v)", v, err)
	}
	if v, err := parseScalar[float64]("5.5"); err != nil || v != 5.5 {
		t.Errorf("expected 5.5, got %v (err %v)", v, err)
	}
	if v, err := parseScalar[bool]("true"); err != nil || !v {
		t.Errorf("expected true, got %v (err %v)", v, err)
	}
	if v, err := parseScalar[string]("as-is"); err != nil || v != "as-is" {
		t.Errorf("expected %q, got %q (err %v)", "as-is", v, err)
	}
}

func TestParseScalarRejectsOverflowAndGarbage(t *testing.T) {
	if _, err := parseScalar[uint8]("300"); !errors.Is(err, ErrMalformedValue) {
		t.Errorf("expected ErrMalformedValue for overflow, got %v", err)
	}
	if _, err := parseScalar[uint32]("-1"); !errors.Is(err, ErrMalformedValue) {
		t.Errorf("expected ErrMalformedValue for negative uint, got %v", err)
	}
	if _, err := parseScalar[float64]("5.5.5"); !errors.Is(err, ErrMalformedValue) {
		t.Errorf("expected ErrMalformedValue for garbage float, got %v", err)
	}
}

func TestParseScalarNamedType(t *testing.T) {
	type level uint8
	if v, err := parseScalar[level]("3"); err != nil || v != level(3) {
		t.Errorf("expected 3, got %d (err %v)", v, err)
	}
}
