package tree

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/shopspring/decimal"
)

func TestParseJSONKeepsOrder(t *testing.T) {
	obj, err := ParseObject([]byte(`{"resourceType":"Claim","status":"active","use":"claim","id":"x1"}`))
	if err != nil {
		t.Fatalf("ParseObject() error = %v", err)
	}
	want := []string{"resourceType", "status", "use", "id"}
	if diff := cmp.Diff(want, obj.Keys()); diff != "" {
		t.Errorf("key order mismatch (-want +got):\n%s", diff)
	}
}

func TestParseJSONLeaves(t *testing.T) {
	v, err := ParseJSON([]byte(`{"s":"a\"bé","n":1.50,"i":-3,"b":true,"z":null,"a":[1,"x",{}],"e":[]}`))
	if err != nil {
		t.Fatalf("ParseJSON() error = %v", err)
	}
	obj := v.(*Object)

	if s, _ := obj.GetString("s"); s != "a\"bé" {
		t.Errorf("string = %q", s)
	}
	n, _ := obj.Get("n")
	if FormatNumber(n.(decimal.Decimal)) != "1.50" {
		t.Errorf("number scale lost: %v", n)
	}
	if b, _ := obj.Get("b"); b != true {
		t.Errorf("bool = %v", b)
	}
	if z, ok := obj.Get("z"); !ok || z != nil {
		t.Errorf("null = %v, %v", z, ok)
	}
	a, _ := obj.Get("a")
	if arr := a.([]any); len(arr) != 3 || Kind(arr[2]) != "object" {
		t.Errorf("array = %v", arr)
	}
	e, _ := obj.Get("e")
	if arr, ok := e.([]any); !ok || arr == nil || len(arr) != 0 {
		t.Errorf("empty array should be a non-nil empty slice, got %#v", e)
	}
}

func TestParseJSONInvalid(t *testing.T) {
	tests := []string{`{"a":`, `not json`, `{"a":1,}`}
	for _, in := range tests {
		t.Run(in, func(t *testing.T) {
			if _, err := ParseJSON([]byte(in)); !errors.Is(err, ErrInvalidJSON) {
				t.Errorf("ParseJSON(%q) error = %v, want ErrInvalidJSON", in, err)
			}
		})
	}
	if _, err := ParseObject([]byte(`[1]`)); !errors.Is(err, ErrInvalidJSON) {
		t.Errorf("ParseObject(array) error = %v", err)
	}
}

func TestMarshalRoundTrip(t *testing.T) {
	in := `{"resourceType":"Claim","text":{"div":"<div>a & b</div>"},"total":{"value":12.30},"item":[{"sequence":1},{"sequence":2}],"empty":[],"flag":false,"nothing":null}`
	v, err := ParseJSON([]byte(in))
	if err != nil {
		t.Fatal(err)
	}
	out, err := MarshalJSON(v)
	if err != nil {
		t.Fatal(err)
	}
	if string(out) != in {
		t.Errorf("MarshalJSON()\n got %s\nwant %s", out, in)
	}
}

func TestMarshalIndent(t *testing.T) {
	obj := NewObject()
	obj.Set("a", decimal.NewFromInt(1))
	out, err := MarshalIndent(obj, "", "  ")
	if err != nil {
		t.Fatal(err)
	}
	if string(out) != "{\n  \"a\": 1\n}" {
		t.Errorf("MarshalIndent() = %q", out)
	}
}

func TestObjectOps(t *testing.T) {
	obj := NewObject()
	obj.Set("a", "1")
	obj.Set("b", "2")
	obj.Set("a", "3")
	if diff := cmp.Diff([]string{"a", "b"}, obj.Keys()); diff != "" {
		t.Errorf("re-set moved key:\n%s", diff)
	}
	obj.Delete("a")
	obj.Delete("missing")
	if obj.Len() != 1 {
		t.Errorf("Len() = %d", obj.Len())
	}

	var visited []string
	obj.Set("c", "4")
	obj.Range(func(k string, _ any) bool {
		visited = append(visited, k)
		return false
	})
	if len(visited) != 1 {
		t.Errorf("Range should stop early, visited %v", visited)
	}
}

func TestEqual(t *testing.T) {
	a, _ := ParseJSON([]byte(`{"x":[1,2],"y":{"z":"s"}}`))
	b, _ := ParseJSON([]byte(`{"y":{"z":"s"},"x":[1,2]}`))
	c, _ := ParseJSON([]byte(`{"x":[2,1],"y":{"z":"s"}}`))
	d, _ := ParseJSON([]byte(`{"x":[1.0,2],"y":{"z":"s"}}`))

	tests := []struct {
		name string
		l, r any
		want bool
	}{
		{"key order ignored", a, b, true},
		{"array order matters", a, c, false},
		{"precision matters", a, d, false},
		{"clone equal", a, Clone(a), true},
		{"nil vs empty", []any{}, nil, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Equal(tt.l, tt.r); got != tt.want {
				t.Errorf("Equal() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestCloneIsDeep(t *testing.T) {
	orig := NewObject()
	inner := NewObject()
	inner.Set("k", "v")
	orig.Set("inner", inner)

	cp := orig.Clone()
	inner.Set("k", "changed")

	got, _ := cp.Get("inner")
	if s, _ := got.(*Object).GetString("k"); s != "v" {
		t.Errorf("clone shares nested object, got %q", s)
	}
}
