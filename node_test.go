package genval

import "testing"

func TestConstructorKinds(t *testing.T) {
	tests := []struct {
		name string
		node *Node
		want Kind
	}{
		{"string", String(), KindString},
		{"number", Number(), KindNumber},
		{"int", Int(), KindNumber},
		{"bool", Bool(), KindBoolean},
		{"array", Array(String()), KindArray},
		{"object", Object(), KindObject},
		{"enum", Enum("a", "b"), KindEnum},
		{"literal", Literal("a"), KindLiteral},
		{"union", Union(String(), Number()), KindUnion},
		{"discriminated union", DiscriminatedUnion("type", Object()), KindDiscriminated},
		{"null", Null(), KindNull},
		{"lazy", Lazy(func() *Node { return String() }), KindLazy},
		{"bigint", BigInt(), KindBigInt},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.node.Kind != tt.want {
				t.Fatalf("got kind %q, want %q", tt.node.Kind, tt.want)
			}
		})
	}
}

func TestIntIsIntegerNumber(t *testing.T) {
	if !Int().Integer {
		t.Fatal("Int() must mark the number as integer-only")
	}
	if Number().Integer {
		t.Fatal("Number() must not mark the number as integer-only")
	}
}

func TestObjectFieldOrder(t *testing.T) {
	obj := Object().
		Field("a", String()).
		Field("b", Optional(Number())).
		Field("c", Bool())

	want := []string{"a", "b", "c"}
	if len(obj.Fields) != len(want) {
		t.Fatalf("got %d fields, want %d", len(obj.Fields), len(want))
	}
	for i, f := range obj.Fields {
		if f.Name != want[i] {
			t.Errorf("field %d: got %q, want %q", i, f.Name, want[i])
		}
	}
}

func TestOptionalNullableIndependent(t *testing.T) {
	a := Optional(Nullable(String()))
	b := Nullable(Optional(String()))

	for name, n := range map[string]*Node{"optional(nullable)": a, "nullable(optional)": b} {
		if !n.Optional || !n.Nullable {
			t.Errorf("%s: got optional=%v nullable=%v, want both true", name, n.Optional, n.Nullable)
		}
	}

	if n := Optional(String()); n.Nullable {
		t.Error("Optional must not imply Nullable")
	}
	if n := Nullable(String()); n.Optional {
		t.Error("Nullable must not imply Optional")
	}
}

func TestArrayLength(t *testing.T) {
	n := Array(String()).Length(3)
	if n.MinItems == nil || *n.MinItems != 3 {
		t.Errorf("got MinItems %v, want 3", n.MinItems)
	}
	if n.MaxItems == nil || *n.MaxItems != 3 {
		t.Errorf("got MaxItems %v, want 3", n.MaxItems)
	}
}

func TestStringChecks(t *testing.T) {
	tests := []struct {
		name string
		node *Node
		want []CheckKind
	}{
		{"date", String().Date(), []CheckKind{CheckDate}},
		{"date-time", String().DateTime(), []CheckKind{CheckDateTime}},
		{"regex", String().Regex(`^[a-z]+$`), []CheckKind{CheckRegex}},
		{"email", String().Email(), []CheckKind{CheckEmail}},
		{"lengths", String().MinLen(1).MaxLen(5), []CheckKind{CheckMinLength, CheckMaxLength}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if len(tt.node.Checks) != len(tt.want) {
				t.Fatalf("got %d checks, want %d", len(tt.node.Checks), len(tt.want))
			}
			for i, c := range tt.node.Checks {
				if c.Kind != tt.want[i] {
					t.Errorf("check %d: got %q, want %q", i, c.Kind, tt.want[i])
				}
			}
		})
	}
}

func TestMinMaxLenDispatchOnKind(t *testing.T) {
	arr := Array(Number()).MinLen(1).MaxLen(4)
	if arr.MinItems == nil || *arr.MinItems != 1 || arr.MaxItems == nil || *arr.MaxItems != 4 {
		t.Errorf("array bounds: got %v..%v, want 1..4", arr.MinItems, arr.MaxItems)
	}
	if len(arr.Checks) != 0 {
		t.Errorf("array must not collect string checks, got %v", arr.Checks)
	}

	str := String().MinLen(1).MaxLen(4)
	if str.MinItems != nil || str.MaxItems != nil {
		t.Error("string must not set array bounds")
	}
	if len(str.Checks) != 2 {
		t.Errorf("got %d string checks, want 2", len(str.Checks))
	}
}

func TestEnumPreservesOrder(t *testing.T) {
	n := Enum("c", "a", "b")
	want := []string{"c", "a", "b"}
	for i, v := range n.Values {
		if v != want[i] {
			t.Errorf("value %d: got %q, want %q", i, v, want[i])
		}
	}
}

func TestDescSetsDescription(t *testing.T) {
	n := String().Desc("a name")
	if n.Description != "a name" {
		t.Fatalf("got %q, want %q", n.Description, "a name")
	}
}
