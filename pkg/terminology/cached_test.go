package terminology

import (
	"context"
	"errors"
	"testing"
)

func TestCachedProvider(t *testing.T) {
	var codeCalls, setCalls int
	fail := true
	inner := &mockProvider{
		validateCodeFn: func(_ context.Context, system, code string) (bool, error) {
			codeCalls++
			if fail {
				return false, errors.New("server unavailable")
			}
			return code == "385055001", nil
		},
		validateCodeInValueSetFn: func(context.Context, string, string, string) (bool, bool, error) {
			setCalls++
			return false, false, nil
		},
	}
	p := NewCachedProvider(inner, 8)
	ctx := context.Background()
	tablet := Code{System: SystemSNOMED, Code: "385055001"}

	if _, err := Resolve(ctx, p, MedicationFormCodes, tablet); err == nil {
		t.Fatal("expected provider error")
	}
	fail = false
	for range 3 {
		got, err := Resolve(ctx, p, MedicationFormCodes, tablet)
		if err != nil || got != Member {
			t.Fatalf("Resolve() = %v, %v; want member", got, err)
		}
	}

	// The failed call is retried once, then answers come from the cache.
	if codeCalls != 2 {
		t.Errorf("ValidateCode calls = %d, want 2", codeCalls)
	}
	if setCalls != 1 {
		t.Errorf("ValidateCodeInValueSet calls = %d, want 1", setCalls)
	}
	codes, sets := p.Stats()
	if codes.Size != 1 || sets.Size != 1 || sets.Hits != 3 {
		t.Errorf("Stats() = %+v, %+v", codes, sets)
	}
}
