package youtrack

import (
	"encoding/json"
	"errors"
	"testing"
)

func TestUnmarshalBundleElementDispatch(t *testing.T) {
	tests := []struct {
		name     string
		payload  string
		wantType string
	}{
		{
			name:     "state",
			payload:  `{"$type":"StateBundleElement","name":"Fixed","isResolved":true}`,
			wantType: TypeStateBundleElement,
		},
		{
			name:     "enum",
			payload:  `{"$type":"EnumBundleElement","name":"Critical"}`,
			wantType: TypeEnumBundleElement,
		},
		{
			name:     "build",
			payload:  `{"$type":"BuildBundleElement","name":"2024.1.1000"}`,
			wantType: TypeBuildBundleElement,
		},
		{
			name:     "version",
			payload:  `{"$type":"VersionBundleElement","name":"2024.1"}`,
			wantType: TypeVersionBundleElement,
		},
		{
			name:     "owned",
			payload:  `{"$type":"OwnedBundleElement","name":"Backend"}`,
			wantType: TypeOwnedBundleElement,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			el, err := UnmarshalBundleElement([]byte(tt.payload))
			if err != nil {
				t.Fatalf("UnmarshalBundleElement() error = %v", err)
			}
			if el.TypeName() != tt.wantType {
				t.Errorf("TypeName() = %q, want %q", el.TypeName(), tt.wantType)
			}
		})
	}
}

func TestStateBundleElementResolved(t *testing.T) {
	el, err := UnmarshalBundleElement([]byte(`{"$type":"StateBundleElement","name":"Fixed","isResolved":true}`))
	if err != nil {
		t.Fatalf("UnmarshalBundleElement() error = %v", err)
	}
	state := el.(*StateBundleElement)
	if resolved, ok := state.IsResolved.Value(); !ok || !resolved {
		t.Errorf("IsResolved = %v, %v, want true, true", resolved, ok)
	}
}

func TestBundleElementsHeterogeneous(t *testing.T) {
	payload := []byte(`[
		{"$type":"EnumBundleElement","name":"Major"},
		{"$type":"StateBundleElement","name":"Open","isResolved":false}
	]`)

	var els BundleElements
	if err := json.Unmarshal(payload, &els); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}
	if len(els) != 2 {
		t.Fatalf("decoded %d elements, want 2", len(els))
	}
	if _, ok := els[0].(*EnumBundleElement); !ok {
		t.Errorf("els[0] is %T, want *EnumBundleElement", els[0])
	}
	if _, ok := els[1].(*StateBundleElement); !ok {
		t.Errorf("els[1] is %T, want *StateBundleElement", els[1])
	}
}

func TestUnmarshalBundleElementUnknown(t *testing.T) {
	_, err := UnmarshalBundleElement([]byte(`{"$type":"ColorBundleElement","name":"Red"}`))

	var unknown *UnknownVariantError
	if !errors.As(err, &unknown) {
		t.Fatalf("error = %v, want UnknownVariantError", err)
	}
	if unknown.Discriminator != "ColorBundleElement" {
		t.Errorf("Discriminator = %q, want ColorBundleElement", unknown.Discriminator)
	}
}

func TestBundleElementDiscriminatorMismatch(t *testing.T) {
	var el EnumBundleElement
	err := json.Unmarshal([]byte(`{"$type":"StateBundleElement","name":"Open"}`), &el)

	var mismatch *TypeMismatchError
	if !errors.As(err, &mismatch) {
		t.Fatalf("error = %v, want TypeMismatchError", err)
	}
}
