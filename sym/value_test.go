package sym

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"gopkg.in/yaml.v3"
)

type register uint16

func widthOf[T Scalar](name string) int {
	return NewVariable[T](name).(Variable[T]).Width
}

func TestVariable_Width(t *testing.T) {
	tests := []struct {
		got, want int
	}{
		{widthOf[uint8]("a"), 8},
		{widthOf[int8]("a"), 8},
		{widthOf[uint16]("a"), 16},
		{widthOf[int32]("a"), 32},
		{widthOf[uint64]("a"), 64},
		{widthOf[int64]("a"), 64},
		{widthOf[register]("a"), 16},
	}
	for i, tt := range tests {
		if tt.got != tt.want {
			t.Errorf("case %d: got %v; want %v", i, tt.got, tt.want)
		}
	}
}

func TestSigned(t *testing.T) {
	if !Signed[int8]() || !Signed[int64]() {
		t.Error("signed types reported unsigned")
	}
	if Signed[uint8]() || Signed[uint64]() || Signed[register]() {
		t.Error("unsigned types reported signed")
	}
}

func TestBits(t *testing.T) {
	if got := Bits[int8](-1); got != 0xff {
		t.Errorf("got %#x; want 0xff", got)
	}
	if got := Bits[int16](-2); got != 0xfffe {
		t.Errorf("got %#x; want 0xfffe", got)
	}
	if got := Bits[int64](-1); got != ^uint64(0) {
		t.Errorf("got %#x; want all ones", got)
	}
	if got := Bits[uint32](42); got != 42 {
		t.Errorf("got %v; want 42", got)
	}
}

func TestRender_Deterministic(t *testing.T) {
	x := NewVariable[int16]("x")
	tree := Or(And(x, NewConcrete[int16](-3)), Sub(NewVariable[int16]("y"), x))
	first := Render(tree)
	second := Render(tree)
	if first != second {
		t.Errorf("render is not deterministic: %q vs %q", first, second)
	}
	want := "(OR (AND <x:16> -3) (SUB <y:16> <x:16>))"
	if first != want {
		t.Errorf("got %v; want %v", first, want)
	}
}

func TestRender_NamedScalar(t *testing.T) {
	got := Render(Add(NewVariable[register]("pc"), NewConcrete[register](4)))
	want := "(ADD <pc:16> 4)"
	if got != want {
		t.Errorf("got %v; want %v", got, want)
	}
}

func TestDepth(t *testing.T) {
	x := NewVariable[uint8]("x")
	tests := []struct {
		v    Value[uint8]
		want int
	}{
		{NewConcrete[uint8](1), 0},
		{x, 0},
		{Add(x, x), 1},
		{Mul(Add(x, x), NewConcrete[uint8](2)), 2},
		{Xor(Add(x, x), Sub(Mul(x, x), x)), 3},
	}
	for _, tt := range tests {
		if got := Depth(tt.v); got != tt.want {
			t.Errorf("Depth(%s) = %v; want %v", tt.v, got, tt.want)
		}
	}
}

func TestVariables_FirstAppearance(t *testing.T) {
	x := NewVariable[uint8]("x")
	y := NewVariable[uint8]("y")
	z := NewVariable[uint8]("z")
	tree := Add(Mul(y, x), Xor(x, Or(z, y)))
	got := Variables(tree)
	want := []Variable[uint8]{{"y", 8}, {"x", 8}, {"z", 8}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
	if got := Variables(NewConcrete[uint8](3)); len(got) != 0 {
		t.Errorf("got %v; want no variables", got)
	}
}

func TestOperation_Tags(t *testing.T) {
	want := []string{"ADD", "SUB", "MUL", "DIV", "AND", "OR", "XOR"}
	for i, op := range Operations() {
		if op.String() != want[i] {
			t.Errorf("got %v; want %v", op, want[i])
		}
		if op.Arity() != 2 {
			t.Errorf("%s: got arity %d", op, op.Arity())
		}
		parsed, err := ParseOperation(want[i])
		if err != nil {
			t.Errorf("unexpected error: %s", err)
		}
		if parsed != op {
			t.Errorf("ParseOperation(%s) = %v", want[i], parsed)
		}
	}
	if _, err := ParseOperation("MOD"); err == nil {
		t.Error("expected error for unknown tag")
	}
	if got := Operation(42).String(); got != "Operation(42)" {
		t.Errorf("got %v", got)
	}
}

func TestToYAML(t *testing.T) {
	tree := Add(NewConcrete[uint8](10), NewVariable[uint8]("x"))
	got, err := ToYAML(tree)
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	var doc map[string]interface{}
	if err := yaml.Unmarshal([]byte(got), &doc); err != nil {
		t.Fatalf("output is not yaml: %s", err)
	}
	want := map[string]interface{}{
		"equation": map[string]interface{}{
			"op": "ADD",
			"operands": []interface{}{
				map[string]interface{}{"concrete": 10},
				map[string]interface{}{"variable": map[string]interface{}{"name": "x", "width": 8}},
			},
		},
	}
	if diff := cmp.Diff(want, doc); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
}

func TestToYAML_ZeroConcrete(t *testing.T) {
	got, err := ToYAML(NewConcrete[int32](0))
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if got != "concrete: 0\n" {
		t.Errorf("got %q", got)
	}
}
