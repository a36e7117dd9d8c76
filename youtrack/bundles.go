package youtrack

import "encoding/json"

// Bundle element discriminators.
const (
	TypeBuildBundleElement   = "BuildBundleElement"
	TypeVersionBundleElement = "VersionBundleElement"
	TypeOwnedBundleElement   = "OwnedBundleElement"
	TypeEnumBundleElement    = "EnumBundleElement"
	TypeStateBundleElement   = "StateBundleElement"
)

// BundleElement is a value drawn from a predefined value set (a workflow
// state, an enum option, a build, a version, an owned value) referenced by a
// custom field. Concrete variants are selected by the $type discriminator.
type BundleElement interface {
	// TypeName returns the variant's wire discriminator.
	TypeName() string

	isBundleElement()
}

// BuildBundleElement is a selectable build value.
type BuildBundleElement struct {
	ID   Opt[string] `json:"id,omitzero"`
	Name Opt[string] `json:"name,omitzero"`
}

// VersionBundleElement is a selectable version value.
type VersionBundleElement struct {
	ID   Opt[string] `json:"id,omitzero"`
	Name Opt[string] `json:"name,omitzero"`
}

// OwnedBundleElement is a selectable value with an owner, such as a
// subsystem.
type OwnedBundleElement struct {
	ID   Opt[string] `json:"id,omitzero"`
	Name Opt[string] `json:"name,omitzero"`
}

// EnumBundleElement is a selectable enumeration value.
type EnumBundleElement struct {
	ID   Opt[string] `json:"id,omitzero"`
	Name Opt[string] `json:"name,omitzero"`
}

// StateBundleElement is a workflow state value.
type StateBundleElement struct {
	ID         Opt[string] `json:"id,omitzero"`
	Name       Opt[string] `json:"name,omitzero"`
	IsResolved Opt[bool]   `json:"isResolved,omitzero"`
}

func (BuildBundleElement) TypeName() string   { return TypeBuildBundleElement }
func (VersionBundleElement) TypeName() string { return TypeVersionBundleElement }
func (OwnedBundleElement) TypeName() string   { return TypeOwnedBundleElement }
func (EnumBundleElement) TypeName() string    { return TypeEnumBundleElement }
func (StateBundleElement) TypeName() string   { return TypeStateBundleElement }

func (BuildBundleElement) isBundleElement()   {}
func (VersionBundleElement) isBundleElement() {}
func (OwnedBundleElement) isBundleElement()   {}
func (EnumBundleElement) isBundleElement()    {}
func (StateBundleElement) isBundleElement()   {}

func (e BuildBundleElement) MarshalJSON() ([]byte, error) {
	type alias BuildBundleElement
	return marshalTyped(TypeBuildBundleElement, alias(e))
}

func (e VersionBundleElement) MarshalJSON() ([]byte, error) {
	type alias VersionBundleElement
	return marshalTyped(TypeVersionBundleElement, alias(e))
}

func (e OwnedBundleElement) MarshalJSON() ([]byte, error) {
	type alias OwnedBundleElement
	return marshalTyped(TypeOwnedBundleElement, alias(e))
}

func (e EnumBundleElement) MarshalJSON() ([]byte, error) {
	type alias EnumBundleElement
	return marshalTyped(TypeEnumBundleElement, alias(e))
}

func (e StateBundleElement) MarshalJSON() ([]byte, error) {
	type alias StateBundleElement
	return marshalTyped(TypeStateBundleElement, alias(e))
}

var bundleElementTypes = map[string]func() BundleElement{
	TypeBuildBundleElement:   func() BundleElement { return &BuildBundleElement{} },
	TypeVersionBundleElement: func() BundleElement { return &VersionBundleElement{} },
	TypeOwnedBundleElement:   func() BundleElement { return &OwnedBundleElement{} },
	TypeEnumBundleElement:    func() BundleElement { return &EnumBundleElement{} },
	TypeStateBundleElement:   func() BundleElement { return &StateBundleElement{} },
}

// UnmarshalBundleElement decodes a single bundle element payload, dispatching
// on its $type discriminator.
func UnmarshalBundleElement(data []byte) (BundleElement, error) {
	return decodeVariant(data, "bundle element", bundleElementTypes)
}

// BundleElements decodes a JSON array of heterogeneous bundle elements.
type BundleElements []BundleElement

func (s *BundleElements) UnmarshalJSON(data []byte) error {
	out, err := decodeVariantList(data, "bundle element", bundleElementTypes)
	if err != nil {
		return err
	}
	*s = out
	return nil
}

// checkDiscriminator rejects payloads whose $type names a different variant
// than the field's declared type. Payloads without a discriminator pass; the
// enclosing field supplies the variant.
func checkDiscriminator(data []byte, want ...string) error {
	disc, err := peekType(data)
	if err != nil {
		return err
	}
	if disc == "" {
		return nil
	}
	for _, w := range want {
		if disc == w {
			return nil
		}
	}
	return &TypeMismatchError{Field: "$type", Want: want[0], Got: disc}
}

func (e *BuildBundleElement) UnmarshalJSON(data []byte) error {
	if err := checkDiscriminator(data, TypeBuildBundleElement); err != nil {
		return err
	}
	type alias BuildBundleElement
	var a alias
	if err := json.Unmarshal(data, &a); err != nil {
		return codecError(err)
	}
	*e = BuildBundleElement(a)
	return nil
}

func (e *VersionBundleElement) UnmarshalJSON(data []byte) error {
	if err := checkDiscriminator(data, TypeVersionBundleElement); err != nil {
		return err
	}
	type alias VersionBundleElement
	var a alias
	if err := json.Unmarshal(data, &a); err != nil {
		return codecError(err)
	}
	*e = VersionBundleElement(a)
	return nil
}

func (e *OwnedBundleElement) UnmarshalJSON(data []byte) error {
	if err := checkDiscriminator(data, TypeOwnedBundleElement); err != nil {
		return err
	}
	type alias OwnedBundleElement
	var a alias
	if err := json.Unmarshal(data, &a); err != nil {
		return codecError(err)
	}
	*e = OwnedBundleElement(a)
	return nil
}

func (e *EnumBundleElement) UnmarshalJSON(data []byte) error {
	if err := checkDiscriminator(data, TypeEnumBundleElement); err != nil {
		return err
	}
	type alias EnumBundleElement
	var a alias
	if err := json.Unmarshal(data, &a); err != nil {
		return codecError(err)
	}
	*e = EnumBundleElement(a)
	return nil
}

func (e *StateBundleElement) UnmarshalJSON(data []byte) error {
	if err := checkDiscriminator(data, TypeStateBundleElement); err != nil {
		return err
	}
	type alias StateBundleElement
	var a alias
	if err := json.Unmarshal(data, &a); err != nil {
		return codecError(err)
	}
	*e = StateBundleElement(a)
	return nil
}
