package youtrack

import "encoding/json"

// Project custom field discriminators.
const (
	TypeGroupProjectCustomField   = "GroupProjectCustomField"
	TypeBundleProjectCustomField  = "BundleProjectCustomField"
	TypeBuildProjectCustomField   = "BuildProjectCustomField"
	TypeEnumProjectCustomField    = "EnumProjectCustomField"
	TypeOwnedProjectCustomField   = "OwnedProjectCustomField"
	TypeStateProjectCustomField   = "StateProjectCustomField"
	TypeUserProjectCustomField    = "UserProjectCustomField"
	TypeVersionProjectCustomField = "VersionProjectCustomField"
	TypeSimpleProjectCustomField  = "SimpleProjectCustomField"
	TypeTextProjectCustomField    = "TextProjectCustomField"
	TypePeriodProjectCustomField  = "PeriodProjectCustomField"
)

// ProjectCustomField describes how a custom field is attached to a project:
// the field definition plus per-project settings such as whether the field
// may be left empty.
type ProjectCustomField interface {
	// TypeName returns the variant's wire discriminator.
	TypeName() string
	// FieldInfo returns the attached field definition, when set.
	FieldInfo() (CustomField, bool)

	isProjectCustomField()
}

// GroupProjectCustomField attaches a group-valued field to a project.
type GroupProjectCustomField struct {
	ID             Opt[string]      `json:"id,omitzero"`
	Field          Opt[CustomField] `json:"field,omitzero"`
	CanBeEmpty     Opt[bool]        `json:"canBeEmpty,omitzero"`
	EmptyFieldText Opt[string]      `json:"emptyFieldText,omitzero"`
}

// BundleProjectCustomField attaches a bundle-valued field to a project.
type BundleProjectCustomField struct {
	ID             Opt[string]      `json:"id,omitzero"`
	Field          Opt[CustomField] `json:"field,omitzero"`
	CanBeEmpty     Opt[bool]        `json:"canBeEmpty,omitzero"`
	EmptyFieldText Opt[string]      `json:"emptyFieldText,omitzero"`
}

// BuildProjectCustomField attaches a build-valued field to a project.
type BuildProjectCustomField struct {
	ID             Opt[string]      `json:"id,omitzero"`
	Field          Opt[CustomField] `json:"field,omitzero"`
	CanBeEmpty     Opt[bool]        `json:"canBeEmpty,omitzero"`
	EmptyFieldText Opt[string]      `json:"emptyFieldText,omitzero"`
}

// EnumProjectCustomField attaches an enum-valued field to a project.
type EnumProjectCustomField struct {
	ID             Opt[string]      `json:"id,omitzero"`
	Field          Opt[CustomField] `json:"field,omitzero"`
	CanBeEmpty     Opt[bool]        `json:"canBeEmpty,omitzero"`
	EmptyFieldText Opt[string]      `json:"emptyFieldText,omitzero"`
}

// OwnedProjectCustomField attaches an owned-valued field to a project.
type OwnedProjectCustomField struct {
	ID             Opt[string]      `json:"id,omitzero"`
	Field          Opt[CustomField] `json:"field,omitzero"`
	CanBeEmpty     Opt[bool]        `json:"canBeEmpty,omitzero"`
	EmptyFieldText Opt[string]      `json:"emptyFieldText,omitzero"`
}

// StateProjectCustomField attaches a state-valued field to a project.
type StateProjectCustomField struct {
	ID             Opt[string]      `json:"id,omitzero"`
	Field          Opt[CustomField] `json:"field,omitzero"`
	CanBeEmpty     Opt[bool]        `json:"canBeEmpty,omitzero"`
	EmptyFieldText Opt[string]      `json:"emptyFieldText,omitzero"`
}

// UserProjectCustomField attaches a user-valued field to a project.
type UserProjectCustomField struct {
	ID             Opt[string]      `json:"id,omitzero"`
	Field          Opt[CustomField] `json:"field,omitzero"`
	CanBeEmpty     Opt[bool]        `json:"canBeEmpty,omitzero"`
	EmptyFieldText Opt[string]      `json:"emptyFieldText,omitzero"`
}

// VersionProjectCustomField attaches a version-valued field to a project.
type VersionProjectCustomField struct {
	ID             Opt[string]      `json:"id,omitzero"`
	Field          Opt[CustomField] `json:"field,omitzero"`
	CanBeEmpty     Opt[bool]        `json:"canBeEmpty,omitzero"`
	EmptyFieldText Opt[string]      `json:"emptyFieldText,omitzero"`
}

// SimpleProjectCustomField attaches a scalar-valued field to a project. Its
// field definition decides how Simple issue field values are interpreted.
type SimpleProjectCustomField struct {
	ID             Opt[string]      `json:"id,omitzero"`
	Field          Opt[CustomField] `json:"field,omitzero"`
	CanBeEmpty     Opt[bool]        `json:"canBeEmpty,omitzero"`
	EmptyFieldText Opt[string]      `json:"emptyFieldText,omitzero"`
}

// TextProjectCustomField attaches a text-valued field to a project.
type TextProjectCustomField struct {
	ID             Opt[string]      `json:"id,omitzero"`
	Field          Opt[CustomField] `json:"field,omitzero"`
	CanBeEmpty     Opt[bool]        `json:"canBeEmpty,omitzero"`
	EmptyFieldText Opt[string]      `json:"emptyFieldText,omitzero"`
}

// PeriodProjectCustomField attaches a period-valued field to a project.
type PeriodProjectCustomField struct {
	ID             Opt[string]      `json:"id,omitzero"`
	Field          Opt[CustomField] `json:"field,omitzero"`
	CanBeEmpty     Opt[bool]        `json:"canBeEmpty,omitzero"`
	EmptyFieldText Opt[string]      `json:"emptyFieldText,omitzero"`
}

func (GroupProjectCustomField) TypeName() string   { return TypeGroupProjectCustomField }
func (BundleProjectCustomField) TypeName() string  { return TypeBundleProjectCustomField }
func (BuildProjectCustomField) TypeName() string   { return TypeBuildProjectCustomField }
func (EnumProjectCustomField) TypeName() string    { return TypeEnumProjectCustomField }
func (OwnedProjectCustomField) TypeName() string   { return TypeOwnedProjectCustomField }
func (StateProjectCustomField) TypeName() string   { return TypeStateProjectCustomField }
func (UserProjectCustomField) TypeName() string    { return TypeUserProjectCustomField }
func (VersionProjectCustomField) TypeName() string { return TypeVersionProjectCustomField }
func (SimpleProjectCustomField) TypeName() string  { return TypeSimpleProjectCustomField }
func (TextProjectCustomField) TypeName() string    { return TypeTextProjectCustomField }
func (PeriodProjectCustomField) TypeName() string  { return TypePeriodProjectCustomField }

func (f GroupProjectCustomField) FieldInfo() (CustomField, bool)   { return f.Field.Value() }
func (f BundleProjectCustomField) FieldInfo() (CustomField, bool)  { return f.Field.Value() }
func (f BuildProjectCustomField) FieldInfo() (CustomField, bool)   { return f.Field.Value() }
func (f EnumProjectCustomField) FieldInfo() (CustomField, bool)    { return f.Field.Value() }
func (f OwnedProjectCustomField) FieldInfo() (CustomField, bool)   { return f.Field.Value() }
func (f StateProjectCustomField) FieldInfo() (CustomField, bool)   { return f.Field.Value() }
func (f UserProjectCustomField) FieldInfo() (CustomField, bool)    { return f.Field.Value() }
func (f VersionProjectCustomField) FieldInfo() (CustomField, bool) { return f.Field.Value() }
func (f SimpleProjectCustomField) FieldInfo() (CustomField, bool)  { return f.Field.Value() }
func (f TextProjectCustomField) FieldInfo() (CustomField, bool)    { return f.Field.Value() }
func (f PeriodProjectCustomField) FieldInfo() (CustomField, bool)  { return f.Field.Value() }

func (GroupProjectCustomField) isProjectCustomField()   {}
func (BundleProjectCustomField) isProjectCustomField()  {}
func (BuildProjectCustomField) isProjectCustomField()   {}
func (EnumProjectCustomField) isProjectCustomField()    {}
func (OwnedProjectCustomField) isProjectCustomField()   {}
func (StateProjectCustomField) isProjectCustomField()   {}
func (UserProjectCustomField) isProjectCustomField()    {}
func (VersionProjectCustomField) isProjectCustomField() {}
func (SimpleProjectCustomField) isProjectCustomField()  {}
func (TextProjectCustomField) isProjectCustomField()    {}
func (PeriodProjectCustomField) isProjectCustomField()  {}

func (f GroupProjectCustomField) MarshalJSON() ([]byte, error) {
	type alias GroupProjectCustomField
	return marshalTyped(TypeGroupProjectCustomField, alias(f))
}

func (f BundleProjectCustomField) MarshalJSON() ([]byte, error) {
	type alias BundleProjectCustomField
	return marshalTyped(TypeBundleProjectCustomField, alias(f))
}

func (f BuildProjectCustomField) MarshalJSON() ([]byte, error) {
	type alias BuildProjectCustomField
	return marshalTyped(TypeBuildProjectCustomField, alias(f))
}

func (f EnumProjectCustomField) MarshalJSON() ([]byte, error) {
	type alias EnumProjectCustomField
	return marshalTyped(TypeEnumProjectCustomField, alias(f))
}

func (f OwnedProjectCustomField) MarshalJSON() ([]byte, error) {
	type alias OwnedProjectCustomField
	return marshalTyped(TypeOwnedProjectCustomField, alias(f))
}

func (f StateProjectCustomField) MarshalJSON() ([]byte, error) {
	type alias StateProjectCustomField
	return marshalTyped(TypeStateProjectCustomField, alias(f))
}

func (f UserProjectCustomField) MarshalJSON() ([]byte, error) {
	type alias UserProjectCustomField
	return marshalTyped(TypeUserProjectCustomField, alias(f))
}

func (f VersionProjectCustomField) MarshalJSON() ([]byte, error) {
	type alias VersionProjectCustomField
	return marshalTyped(TypeVersionProjectCustomField, alias(f))
}

func (f SimpleProjectCustomField) MarshalJSON() ([]byte, error) {
	type alias SimpleProjectCustomField
	return marshalTyped(TypeSimpleProjectCustomField, alias(f))
}

func (f TextProjectCustomField) MarshalJSON() ([]byte, error) {
	type alias TextProjectCustomField
	return marshalTyped(TypeTextProjectCustomField, alias(f))
}

func (f PeriodProjectCustomField) MarshalJSON() ([]byte, error) {
	type alias PeriodProjectCustomField
	return marshalTyped(TypePeriodProjectCustomField, alias(f))
}

var projectCustomFieldTypes = map[string]func() ProjectCustomField{
	TypeGroupProjectCustomField:   func() ProjectCustomField { return &GroupProjectCustomField{} },
	TypeBundleProjectCustomField:  func() ProjectCustomField { return &BundleProjectCustomField{} },
	TypeBuildProjectCustomField:   func() ProjectCustomField { return &BuildProjectCustomField{} },
	TypeEnumProjectCustomField:    func() ProjectCustomField { return &EnumProjectCustomField{} },
	TypeOwnedProjectCustomField:   func() ProjectCustomField { return &OwnedProjectCustomField{} },
	TypeStateProjectCustomField:   func() ProjectCustomField { return &StateProjectCustomField{} },
	TypeUserProjectCustomField:    func() ProjectCustomField { return &UserProjectCustomField{} },
	TypeVersionProjectCustomField: func() ProjectCustomField { return &VersionProjectCustomField{} },
	TypeSimpleProjectCustomField:  func() ProjectCustomField { return &SimpleProjectCustomField{} },
	TypeTextProjectCustomField:    func() ProjectCustomField { return &TextProjectCustomField{} },
	TypePeriodProjectCustomField:  func() ProjectCustomField { return &PeriodProjectCustomField{} },
}

// UnmarshalProjectCustomField decodes a single project custom field payload,
// dispatching on its $type discriminator.
func UnmarshalProjectCustomField(data []byte) (ProjectCustomField, error) {
	return decodeVariant(data, "project custom field", projectCustomFieldTypes)
}

// ProjectCustomFields decodes a JSON array of heterogeneous project custom
// fields, preserving source order.
type ProjectCustomFields []ProjectCustomField

func (s *ProjectCustomFields) UnmarshalJSON(data []byte) error {
	out, err := decodeVariantList(data, "project custom field", projectCustomFieldTypes)
	if err != nil {
		return err
	}
	*s = out
	return nil
}

// projectFieldTypeID returns the FieldType id of the field definition behind
// a project custom field, or "" when any link in the chain is unset.
func projectFieldTypeID(pcf ProjectCustomField) string {
	info, ok := pcf.FieldInfo()
	if !ok {
		return ""
	}
	ft, ok := info.FieldType.Value()
	if !ok {
		return ""
	}
	return ft.ID.Or("")
}

// OptProjectCustomField is a tri-state box around the ProjectCustomField
// union. The generic Opt cannot decode into an interface, so the single
// interface-typed field position carries its own wrapper.
type OptProjectCustomField struct {
	state optState
	value ProjectCustomField
}

// SetProjectCustomField returns a present OptProjectCustomField.
func SetProjectCustomField(v ProjectCustomField) OptProjectCustomField {
	return OptProjectCustomField{state: optSet, value: v}
}

// NullProjectCustomField returns an explicit-null OptProjectCustomField.
func NullProjectCustomField() OptProjectCustomField {
	return OptProjectCustomField{state: optNull}
}

// IsSet reports whether a value is present.
func (o OptProjectCustomField) IsSet() bool { return o.state == optSet }

// IsNull reports whether the value is an explicit null.
func (o OptProjectCustomField) IsNull() bool { return o.state == optNull }

// IsZero reports whether the value is unset, so that omitzero drops it.
func (o OptProjectCustomField) IsZero() bool { return o.state == optUnset }

// Value returns the boxed field and whether one is present.
func (o OptProjectCustomField) Value() (ProjectCustomField, bool) {
	return o.value, o.state == optSet
}

func (o OptProjectCustomField) MarshalJSON() ([]byte, error) {
	if o.state != optSet {
		return []byte("null"), nil
	}
	return json.Marshal(o.value)
}

func (o *OptProjectCustomField) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*o = NullProjectCustomField()
		return nil
	}
	v, err := decodeVariant(data, "project custom field", projectCustomFieldTypes)
	if err != nil {
		return err
	}
	*o = SetProjectCustomField(v)
	return nil
}
