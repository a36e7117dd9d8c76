package youtrack

import (
	"encoding/json"
	"testing"
)

func TestOptStates(t *testing.T) {
	var unset Opt[string]
	if !unset.IsZero() || unset.IsSet() || unset.IsNull() {
		t.Errorf("zero Opt: IsZero=%v IsSet=%v IsNull=%v, want true false false",
			unset.IsZero(), unset.IsSet(), unset.IsNull())
	}

	null := Null[string]()
	if null.IsZero() || null.IsSet() || !null.IsNull() {
		t.Errorf("null Opt: IsZero=%v IsSet=%v IsNull=%v, want false false true",
			null.IsZero(), null.IsSet(), null.IsNull())
	}

	set := Set("hello")
	if set.IsZero() || !set.IsSet() || set.IsNull() {
		t.Errorf("set Opt: IsZero=%v IsSet=%v IsNull=%v, want false true false",
			set.IsZero(), set.IsSet(), set.IsNull())
	}
	if v, ok := set.Value(); !ok || v != "hello" {
		t.Errorf("set.Value() = %q, %v, want hello, true", v, ok)
	}
	if got := null.Or("fallback"); got != "fallback" {
		t.Errorf("null.Or(fallback) = %q, want fallback", got)
	}
}

func TestOptEncode(t *testing.T) {
	type doc struct {
		A Opt[string] `json:"a,omitzero"`
		B Opt[int]    `json:"b,omitzero"`
		C Opt[bool]   `json:"c,omitzero"`
	}

	tests := []struct {
		name string
		in   doc
		want string
	}{
		{
			name: "unset attributes are omitted",
			in:   doc{},
			want: `{}`,
		},
		{
			name: "null attributes are emitted as null",
			in:   doc{A: Null[string](), B: Set(7)},
			want: `{"a":null,"b":7}`,
		},
		{
			name: "set zero values survive",
			in:   doc{A: Set(""), C: Set(false)},
			want: `{"a":"","c":false}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := json.Marshal(tt.in)
			if err != nil {
				t.Fatalf("Marshal() error = %v", err)
			}
			if string(got) != tt.want {
				t.Errorf("Marshal() = %s, want %s", got, tt.want)
			}
		})
	}
}

func TestOptDecode(t *testing.T) {
	type doc struct {
		A Opt[string] `json:"a,omitzero"`
	}

	var absent doc
	if err := json.Unmarshal([]byte(`{}`), &absent); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}
	if !absent.A.IsZero() {
		t.Errorf("absent key decoded as non-unset")
	}

	var null doc
	if err := json.Unmarshal([]byte(`{"a":null}`), &null); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}
	if !null.A.IsNull() {
		t.Errorf("null value decoded as non-null")
	}

	var set doc
	if err := json.Unmarshal([]byte(`{"a":"x"}`), &set); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}
	if v, ok := set.A.Value(); !ok || v != "x" {
		t.Errorf("set.A = %q, %v, want x, true", v, ok)
	}
}
