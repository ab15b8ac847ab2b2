package core

import (
	"io"
	"reflect"
	"testing"
)

type myInt int

func TestTypeListEqual(t *testing.T) {
	tests := []struct {
		name string
		a, b TypeList
		want bool
	}{
		{
			name: "identical lists",
			a:    TypeList{reflect.TypeOf((*int)(nil)).Elem(), reflect.TypeOf((*string)(nil)).Elem()},
			b:    TypeList{reflect.TypeOf((*int)(nil)).Elem(), reflect.TypeOf((*string)(nil)).Elem()},
			want: true,
		},
		{
			name: "order matters",
			a:    TypeList{reflect.TypeOf((*int)(nil)).Elem(), reflect.TypeOf((*string)(nil)).Elem()},
			b:    TypeList{reflect.TypeOf((*string)(nil)).Elem(), reflect.TypeOf((*int)(nil)).Elem()},
			want: false,
		},
		{
			name: "length matters",
			a:    TypeList{reflect.TypeOf((*int)(nil)).Elem()},
			b:    TypeList{reflect.TypeOf((*int)(nil)).Elem(), reflect.TypeOf((*int)(nil)).Elem()},
			want: false,
		},
		{
			name: "named type is not its underlying type",
			a:    TypeList{reflect.TypeOf((*myInt)(nil)).Elem()},
			b:    TypeList{reflect.TypeOf((*int)(nil)).Elem()},
			want: false,
		},
		{
			name: "empty lists",
			a:    TypeList{},
			b:    nil,
			want: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.a.Equal(tt.b); got != tt.want {
				t.Errorf("Equal() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestTypesOf(t *testing.T) {
	types := TypesOf(1, "x", nil)
	if len(types) != 3 {
		t.Fatalf("expected 3 tokens, got %d", len(types))
	}
	if types[0] != reflect.TypeOf((*int)(nil)).Elem() {
		t.Errorf("token 0 = %v, want int", types[0])
	}
	if types[2] != nil {
		t.Errorf("nil value should produce a nil token, got %v", types[2])
	}
}

func TestAssignableTo(t *testing.T) {
	tests := []struct {
		name string
		got  reflect.Type
		want reflect.Type
		ok   bool
	}{
		{"exact concrete match", reflect.TypeOf((*int)(nil)).Elem(), reflect.TypeOf((*int)(nil)).Elem(), true},
		{"concrete mismatch", reflect.TypeOf((*int32)(nil)).Elem(), reflect.TypeOf((*int)(nil)).Elem(), false},
		{"named vs underlying rejected", reflect.TypeOf((*myInt)(nil)).Elem(), reflect.TypeOf((*int)(nil)).Elem(), false},
		{"implementation into interface", reflect.TypeOf((**reflect.Value)(nil)).Elem(), reflect.TypeOf((*any)(nil)).Elem(), true},
		{"reader into io.Reader", reflect.TypeOf((**testReader)(nil)).Elem(), reflect.TypeOf((*io.Reader)(nil)).Elem(), true},
		{"non-implementation rejected", reflect.TypeOf((*int)(nil)).Elem(), reflect.TypeOf((*io.Reader)(nil)).Elem(), false},
		{"nil into pointer", nil, reflect.TypeOf((**int)(nil)).Elem(), true},
		{"nil into interface", nil, reflect.TypeOf((*io.Reader)(nil)).Elem(), true},
		{"nil into int rejected", nil, reflect.TypeOf((*int)(nil)).Elem(), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := assignableTo(tt.got, tt.want); got != tt.ok {
				t.Errorf("assignableTo(%v, %v) = %v, want %v", tt.got, tt.want, got, tt.ok)
			}
		})
	}
}

type testReader struct{}

func (*testReader) Read([]byte) (int, error) { return 0, io.EOF }

func TestCoerceNil(t *testing.T) {
	v := coerce(nil, reflect.TypeOf((**int)(nil)).Elem())
	if v == nil {
		t.Fatal("coerce should wrap nil into a typed zero value")
	}
	if p, ok := v.(*int); !ok || p != nil {
		t.Errorf("expected typed nil *int, got %T", v)
	}
}
