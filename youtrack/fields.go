package youtrack

import (
	"encoding/json"
	"strconv"
	"strings"
	"time"
)

// Issue custom field discriminators.
const (
	TypeTextIssueCustomField          = "TextIssueCustomField"
	TypeSimpleIssueCustomField        = "SimpleIssueCustomField"
	TypeDateIssueCustomField          = "DateIssueCustomField"
	TypePeriodIssueCustomField        = "PeriodIssueCustomField"
	TypeMultiBuildIssueCustomField    = "MultiBuildIssueCustomField"
	TypeMultiEnumIssueCustomField     = "MultiEnumIssueCustomField"
	TypeMultiGroupIssueCustomField    = "MultiGroupIssueCustomField"
	TypeMultiOwnedIssueCustomField    = "MultiOwnedIssueCustomField"
	TypeMultiUserIssueCustomField     = "MultiUserIssueCustomField"
	TypeMultiVersionIssueCustomField  = "MultiVersionIssueCustomField"
	TypeSingleBuildIssueCustomField   = "SingleBuildIssueCustomField"
	TypeSingleEnumIssueCustomField    = "SingleEnumIssueCustomField"
	TypeSingleGroupIssueCustomField   = "SingleGroupIssueCustomField"
	TypeSingleOwnedIssueCustomField   = "SingleOwnedIssueCustomField"
	TypeSingleUserIssueCustomField    = "SingleUserIssueCustomField"
	TypeSingleVersionIssueCustomField = "SingleVersionIssueCustomField"
	TypeStateIssueCustomField         = "StateIssueCustomField"
)

// IssueCustomField is a named, typed attribute of an issue. The value's shape
// depends on the variant, which the $type discriminator selects on the wire.
type IssueCustomField interface {
	// TypeName returns the variant's wire discriminator.
	TypeName() string
	// CustomFieldID returns the field instance id, when set.
	CustomFieldID() (string, bool)
	// CustomFieldName returns the field name, when set.
	CustomFieldName() (string, bool)

	isIssueCustomField()
}

// TextIssueCustomField holds a rendered text value.
type TextIssueCustomField struct {
	ID    Opt[string]         `json:"id,omitzero"`
	Name  Opt[string]         `json:"name,omitzero"`
	Value Opt[TextFieldValue] `json:"value,omitzero"`
}

// SimpleIssueCustomField holds a bare scalar: a string, an integer, a float,
// or an instant when the project declares the field as "date and time".
type SimpleIssueCustomField struct {
	ID                 Opt[string]           `json:"id,omitzero"`
	Name               Opt[string]           `json:"name,omitzero"`
	ProjectCustomField OptProjectCustomField `json:"projectCustomField,omitzero"`
	Value              Opt[SimpleValue]      `json:"value,omitzero"`
}

// DateIssueCustomField holds a calendar date.
type DateIssueCustomField struct {
	ID                 Opt[string]           `json:"id,omitzero"`
	Name               Opt[string]           `json:"name,omitzero"`
	ProjectCustomField OptProjectCustomField `json:"projectCustomField,omitzero"`
	Value              Opt[Date]             `json:"value,omitzero"`
}

// PeriodIssueCustomField holds a duration value.
type PeriodIssueCustomField struct {
	ID    Opt[string]      `json:"id,omitzero"`
	Name  Opt[string]      `json:"name,omitzero"`
	Value Opt[PeriodValue] `json:"value,omitzero"`
}

// MultiBuildIssueCustomField holds an ordered set of build values.
type MultiBuildIssueCustomField struct {
	ID    Opt[string]               `json:"id,omitzero"`
	Name  Opt[string]               `json:"name,omitzero"`
	Value Opt[[]BuildBundleElement] `json:"value,omitzero"`
}

// MultiEnumIssueCustomField holds an ordered set of enum values.
type MultiEnumIssueCustomField struct {
	ID    Opt[string]              `json:"id,omitzero"`
	Name  Opt[string]              `json:"name,omitzero"`
	Value Opt[[]EnumBundleElement] `json:"value,omitzero"`
}

// MultiGroupIssueCustomField holds an ordered set of user groups.
type MultiGroupIssueCustomField struct {
	ID    Opt[string]      `json:"id,omitzero"`
	Name  Opt[string]      `json:"name,omitzero"`
	Value Opt[[]UserGroup] `json:"value,omitzero"`
}

// MultiOwnedIssueCustomField holds an ordered set of owned values.
type MultiOwnedIssueCustomField struct {
	ID    Opt[string]               `json:"id,omitzero"`
	Name  Opt[string]               `json:"name,omitzero"`
	Value Opt[[]OwnedBundleElement] `json:"value,omitzero"`
}

// MultiUserIssueCustomField holds an ordered set of users.
type MultiUserIssueCustomField struct {
	ID    Opt[string] `json:"id,omitzero"`
	Name  Opt[string] `json:"name,omitzero"`
	Value Opt[[]User] `json:"value,omitzero"`
}

// MultiVersionIssueCustomField holds an ordered set of version values.
type MultiVersionIssueCustomField struct {
	ID    Opt[string]                 `json:"id,omitzero"`
	Name  Opt[string]                 `json:"name,omitzero"`
	Value Opt[[]VersionBundleElement] `json:"value,omitzero"`
}

// SingleBuildIssueCustomField holds one build value.
type SingleBuildIssueCustomField struct {
	ID    Opt[string]             `json:"id,omitzero"`
	Name  Opt[string]             `json:"name,omitzero"`
	Value Opt[BuildBundleElement] `json:"value,omitzero"`
}

// SingleEnumIssueCustomField holds one enum value.
type SingleEnumIssueCustomField struct {
	ID    Opt[string]            `json:"id,omitzero"`
	Name  Opt[string]            `json:"name,omitzero"`
	Value Opt[EnumBundleElement] `json:"value,omitzero"`
}

// SingleGroupIssueCustomField holds one user group.
type SingleGroupIssueCustomField struct {
	ID    Opt[string]    `json:"id,omitzero"`
	Name  Opt[string]    `json:"name,omitzero"`
	Value Opt[UserGroup] `json:"value,omitzero"`
}

// SingleOwnedIssueCustomField holds one owned value.
type SingleOwnedIssueCustomField struct {
	ID    Opt[string]             `json:"id,omitzero"`
	Name  Opt[string]             `json:"name,omitzero"`
	Value Opt[OwnedBundleElement] `json:"value,omitzero"`
}

// SingleUserIssueCustomField holds one user (e.g. Assignee).
type SingleUserIssueCustomField struct {
	ID    Opt[string] `json:"id,omitzero"`
	Name  Opt[string] `json:"name,omitzero"`
	Value Opt[User]   `json:"value,omitzero"`
}

// SingleVersionIssueCustomField holds one version value.
type SingleVersionIssueCustomField struct {
	ID    Opt[string]               `json:"id,omitzero"`
	Name  Opt[string]               `json:"name,omitzero"`
	Value Opt[VersionBundleElement] `json:"value,omitzero"`
}

// StateIssueCustomField holds one workflow state value.
type StateIssueCustomField struct {
	ID    Opt[string]             `json:"id,omitzero"`
	Name  Opt[string]             `json:"name,omitzero"`
	Value Opt[StateBundleElement] `json:"value,omitzero"`
}

func (TextIssueCustomField) TypeName() string          { return TypeTextIssueCustomField }
func (SimpleIssueCustomField) TypeName() string        { return TypeSimpleIssueCustomField }
func (DateIssueCustomField) TypeName() string          { return TypeDateIssueCustomField }
func (PeriodIssueCustomField) TypeName() string        { return TypePeriodIssueCustomField }
func (MultiBuildIssueCustomField) TypeName() string    { return TypeMultiBuildIssueCustomField }
func (MultiEnumIssueCustomField) TypeName() string     { return TypeMultiEnumIssueCustomField }
func (MultiGroupIssueCustomField) TypeName() string    { return TypeMultiGroupIssueCustomField }
func (MultiOwnedIssueCustomField) TypeName() string    { return TypeMultiOwnedIssueCustomField }
func (MultiUserIssueCustomField) TypeName() string     { return TypeMultiUserIssueCustomField }
func (MultiVersionIssueCustomField) TypeName() string  { return TypeMultiVersionIssueCustomField }
func (SingleBuildIssueCustomField) TypeName() string   { return TypeSingleBuildIssueCustomField }
func (SingleEnumIssueCustomField) TypeName() string    { return TypeSingleEnumIssueCustomField }
func (SingleGroupIssueCustomField) TypeName() string   { return TypeSingleGroupIssueCustomField }
func (SingleOwnedIssueCustomField) TypeName() string   { return TypeSingleOwnedIssueCustomField }
func (SingleUserIssueCustomField) TypeName() string    { return TypeSingleUserIssueCustomField }
func (SingleVersionIssueCustomField) TypeName() string { return TypeSingleVersionIssueCustomField }
func (StateIssueCustomField) TypeName() string         { return TypeStateIssueCustomField }

func (f TextIssueCustomField) CustomFieldID() (string, bool)          { return f.ID.Value() }
func (f SimpleIssueCustomField) CustomFieldID() (string, bool)        { return f.ID.Value() }
func (f DateIssueCustomField) CustomFieldID() (string, bool)          { return f.ID.Value() }
func (f PeriodIssueCustomField) CustomFieldID() (string, bool)        { return f.ID.Value() }
func (f MultiBuildIssueCustomField) CustomFieldID() (string, bool)    { return f.ID.Value() }
func (f MultiEnumIssueCustomField) CustomFieldID() (string, bool)     { return f.ID.Value() }
func (f MultiGroupIssueCustomField) CustomFieldID() (string, bool)    { return f.ID.Value() }
func (f MultiOwnedIssueCustomField) CustomFieldID() (string, bool)    { return f.ID.Value() }
func (f MultiUserIssueCustomField) CustomFieldID() (string, bool)     { return f.ID.Value() }
func (f MultiVersionIssueCustomField) CustomFieldID() (string, bool)  { return f.ID.Value() }
func (f SingleBuildIssueCustomField) CustomFieldID() (string, bool)   { return f.ID.Value() }
func (f SingleEnumIssueCustomField) CustomFieldID() (string, bool)    { return f.ID.Value() }
func (f SingleGroupIssueCustomField) CustomFieldID() (string, bool)   { return f.ID.Value() }
func (f SingleOwnedIssueCustomField) CustomFieldID() (string, bool)   { return f.ID.Value() }
func (f SingleUserIssueCustomField) CustomFieldID() (string, bool)    { return f.ID.Value() }
func (f SingleVersionIssueCustomField) CustomFieldID() (string, bool) { return f.ID.Value() }
func (f StateIssueCustomField) CustomFieldID() (string, bool)         { return f.ID.Value() }

func (f TextIssueCustomField) CustomFieldName() (string, bool)          { return f.Name.Value() }
func (f SimpleIssueCustomField) CustomFieldName() (string, bool)        { return f.Name.Value() }
func (f DateIssueCustomField) CustomFieldName() (string, bool)          { return f.Name.Value() }
func (f PeriodIssueCustomField) CustomFieldName() (string, bool)        { return f.Name.Value() }
func (f MultiBuildIssueCustomField) CustomFieldName() (string, bool)    { return f.Name.Value() }
func (f MultiEnumIssueCustomField) CustomFieldName() (string, bool)     { return f.Name.Value() }
func (f MultiGroupIssueCustomField) CustomFieldName() (string, bool)    { return f.Name.Value() }
func (f MultiOwnedIssueCustomField) CustomFieldName() (string, bool)    { return f.Name.Value() }
func (f MultiUserIssueCustomField) CustomFieldName() (string, bool)     { return f.Name.Value() }
func (f MultiVersionIssueCustomField) CustomFieldName() (string, bool)  { return f.Name.Value() }
func (f SingleBuildIssueCustomField) CustomFieldName() (string, bool)   { return f.Name.Value() }
func (f SingleEnumIssueCustomField) CustomFieldName() (string, bool)    { return f.Name.Value() }
func (f SingleGroupIssueCustomField) CustomFieldName() (string, bool)   { return f.Name.Value() }
func (f SingleOwnedIssueCustomField) CustomFieldName() (string, bool)   { return f.Name.Value() }
func (f SingleUserIssueCustomField) CustomFieldName() (string, bool)    { return f.Name.Value() }
func (f SingleVersionIssueCustomField) CustomFieldName() (string, bool) { return f.Name.Value() }
func (f StateIssueCustomField) CustomFieldName() (string, bool)         { return f.Name.Value() }

func (TextIssueCustomField) isIssueCustomField()          {}
func (SimpleIssueCustomField) isIssueCustomField()        {}
func (DateIssueCustomField) isIssueCustomField()          {}
func (PeriodIssueCustomField) isIssueCustomField()        {}
func (MultiBuildIssueCustomField) isIssueCustomField()    {}
func (MultiEnumIssueCustomField) isIssueCustomField()     {}
func (MultiGroupIssueCustomField) isIssueCustomField()    {}
func (MultiOwnedIssueCustomField) isIssueCustomField()    {}
func (MultiUserIssueCustomField) isIssueCustomField()     {}
func (MultiVersionIssueCustomField) isIssueCustomField()  {}
func (SingleBuildIssueCustomField) isIssueCustomField()   {}
func (SingleEnumIssueCustomField) isIssueCustomField()    {}
func (SingleGroupIssueCustomField) isIssueCustomField()   {}
func (SingleOwnedIssueCustomField) isIssueCustomField()   {}
func (SingleUserIssueCustomField) isIssueCustomField()    {}
func (SingleVersionIssueCustomField) isIssueCustomField() {}
func (StateIssueCustomField) isIssueCustomField()         {}

func (f TextIssueCustomField) MarshalJSON() ([]byte, error) {
	type alias TextIssueCustomField
	return marshalTyped(TypeTextIssueCustomField, alias(f))
}

func (f SimpleIssueCustomField) MarshalJSON() ([]byte, error) {
	type alias SimpleIssueCustomField
	return marshalTyped(TypeSimpleIssueCustomField, alias(f))
}

func (f DateIssueCustomField) MarshalJSON() ([]byte, error) {
	type alias DateIssueCustomField
	return marshalTyped(TypeDateIssueCustomField, alias(f))
}

func (f PeriodIssueCustomField) MarshalJSON() ([]byte, error) {
	type alias PeriodIssueCustomField
	return marshalTyped(TypePeriodIssueCustomField, alias(f))
}

func (f MultiBuildIssueCustomField) MarshalJSON() ([]byte, error) {
	type alias MultiBuildIssueCustomField
	return marshalTyped(TypeMultiBuildIssueCustomField, alias(f))
}

func (f MultiEnumIssueCustomField) MarshalJSON() ([]byte, error) {
	type alias MultiEnumIssueCustomField
	return marshalTyped(TypeMultiEnumIssueCustomField, alias(f))
}

func (f MultiGroupIssueCustomField) MarshalJSON() ([]byte, error) {
	type alias MultiGroupIssueCustomField
	return marshalTyped(TypeMultiGroupIssueCustomField, alias(f))
}

func (f MultiOwnedIssueCustomField) MarshalJSON() ([]byte, error) {
	type alias MultiOwnedIssueCustomField
	return marshalTyped(TypeMultiOwnedIssueCustomField, alias(f))
}

func (f MultiUserIssueCustomField) MarshalJSON() ([]byte, error) {
	type alias MultiUserIssueCustomField
	return marshalTyped(TypeMultiUserIssueCustomField, alias(f))
}

func (f MultiVersionIssueCustomField) MarshalJSON() ([]byte, error) {
	type alias MultiVersionIssueCustomField
	return marshalTyped(TypeMultiVersionIssueCustomField, alias(f))
}

func (f SingleBuildIssueCustomField) MarshalJSON() ([]byte, error) {
	type alias SingleBuildIssueCustomField
	return marshalTyped(TypeSingleBuildIssueCustomField, alias(f))
}

func (f SingleEnumIssueCustomField) MarshalJSON() ([]byte, error) {
	type alias SingleEnumIssueCustomField
	return marshalTyped(TypeSingleEnumIssueCustomField, alias(f))
}

func (f SingleGroupIssueCustomField) MarshalJSON() ([]byte, error) {
	type alias SingleGroupIssueCustomField
	return marshalTyped(TypeSingleGroupIssueCustomField, alias(f))
}

func (f SingleOwnedIssueCustomField) MarshalJSON() ([]byte, error) {
	type alias SingleOwnedIssueCustomField
	return marshalTyped(TypeSingleOwnedIssueCustomField, alias(f))
}

func (f SingleUserIssueCustomField) MarshalJSON() ([]byte, error) {
	type alias SingleUserIssueCustomField
	return marshalTyped(TypeSingleUserIssueCustomField, alias(f))
}

func (f SingleVersionIssueCustomField) MarshalJSON() ([]byte, error) {
	type alias SingleVersionIssueCustomField
	return marshalTyped(TypeSingleVersionIssueCustomField, alias(f))
}

func (f StateIssueCustomField) MarshalJSON() ([]byte, error) {
	type alias StateIssueCustomField
	return marshalTyped(TypeStateIssueCustomField, alias(f))
}

// fieldTypeDateAndTime is the FieldType id the server assigns to timestamp
// fields; it promotes Simple integer values to instants on decode.
const fieldTypeDateAndTime = "date and time"

func (f *SimpleIssueCustomField) UnmarshalJSON(data []byte) error {
	if err := checkDiscriminator(data, TypeSimpleIssueCustomField); err != nil {
		return err
	}
	type alias SimpleIssueCustomField
	var a alias
	if err := json.Unmarshal(data, &a); err != nil {
		return codecError(err)
	}
	out := SimpleIssueCustomField(a)

	if pcf, ok := out.ProjectCustomField.Value(); ok && projectFieldTypeID(pcf) == fieldTypeDateAndTime {
		if v, ok := out.Value.Value(); ok {
			if ms, isInt := v.Int(); isInt {
				out.Value = Set(SimpleDateTime(DateTime{time.UnixMilli(ms).UTC()}))
			}
		}
	}

	*f = out
	return nil
}

var issueCustomFieldTypes = map[string]func() IssueCustomField{
	TypeTextIssueCustomField:          func() IssueCustomField { return &TextIssueCustomField{} },
	TypeSimpleIssueCustomField:        func() IssueCustomField { return &SimpleIssueCustomField{} },
	TypeDateIssueCustomField:          func() IssueCustomField { return &DateIssueCustomField{} },
	TypePeriodIssueCustomField:        func() IssueCustomField { return &PeriodIssueCustomField{} },
	TypeMultiBuildIssueCustomField:    func() IssueCustomField { return &MultiBuildIssueCustomField{} },
	TypeMultiEnumIssueCustomField:     func() IssueCustomField { return &MultiEnumIssueCustomField{} },
	TypeMultiGroupIssueCustomField:    func() IssueCustomField { return &MultiGroupIssueCustomField{} },
	TypeMultiOwnedIssueCustomField:    func() IssueCustomField { return &MultiOwnedIssueCustomField{} },
	TypeMultiUserIssueCustomField:     func() IssueCustomField { return &MultiUserIssueCustomField{} },
	TypeMultiVersionIssueCustomField:  func() IssueCustomField { return &MultiVersionIssueCustomField{} },
	TypeSingleBuildIssueCustomField:   func() IssueCustomField { return &SingleBuildIssueCustomField{} },
	TypeSingleEnumIssueCustomField:    func() IssueCustomField { return &SingleEnumIssueCustomField{} },
	TypeSingleGroupIssueCustomField:   func() IssueCustomField { return &SingleGroupIssueCustomField{} },
	TypeSingleOwnedIssueCustomField:   func() IssueCustomField { return &SingleOwnedIssueCustomField{} },
	TypeSingleUserIssueCustomField:    func() IssueCustomField { return &SingleUserIssueCustomField{} },
	TypeSingleVersionIssueCustomField: func() IssueCustomField { return &SingleVersionIssueCustomField{} },
	TypeStateIssueCustomField:         func() IssueCustomField { return &StateIssueCustomField{} },
}

// UnmarshalIssueCustomField decodes a single issue custom field payload,
// dispatching on its $type discriminator.
func UnmarshalIssueCustomField(data []byte) (IssueCustomField, error) {
	return decodeVariant(data, "issue custom field", issueCustomFieldTypes)
}

// IssueCustomFields decodes a JSON array of heterogeneous issue custom
// fields, preserving source order.
type IssueCustomFields []IssueCustomField

func (s *IssueCustomFields) UnmarshalJSON(data []byte) error {
	out, err := decodeVariantList(data, "issue custom field", issueCustomFieldTypes)
	if err != nil {
		return err
	}
	*s = out
	return nil
}

type simpleKind uint8

const (
	simpleString simpleKind = iota
	simpleInt
	simpleFloat
	simpleDateTime
)

// SimpleValue is the scalar value of a SimpleIssueCustomField: exactly one of
// a string, an int64, a float64, or a DateTime.
type SimpleValue struct {
	kind simpleKind
	str  string
	num  int64
	flt  float64
	ts   DateTime
}

// SimpleString returns a string-valued SimpleValue.
func SimpleString(s string) SimpleValue { return SimpleValue{kind: simpleString, str: s} }

// SimpleInt returns an integer-valued SimpleValue.
func SimpleInt(n int64) SimpleValue { return SimpleValue{kind: simpleInt, num: n} }

// SimpleFloat returns a float-valued SimpleValue.
func SimpleFloat(f float64) SimpleValue { return SimpleValue{kind: simpleFloat, flt: f} }

// SimpleDateTime returns an instant-valued SimpleValue.
func SimpleDateTime(t DateTime) SimpleValue { return SimpleValue{kind: simpleDateTime, ts: t} }

// String returns the string value, if this is a string.
func (v SimpleValue) String() (string, bool) { return v.str, v.kind == simpleString }

// Int returns the integer value, if this is an integer.
func (v SimpleValue) Int() (int64, bool) { return v.num, v.kind == simpleInt }

// Float returns the float value, if this is a float.
func (v SimpleValue) Float() (float64, bool) { return v.flt, v.kind == simpleFloat }

// DateTime returns the instant value, if this is an instant.
func (v SimpleValue) DateTime() (DateTime, bool) { return v.ts, v.kind == simpleDateTime }

func (v SimpleValue) MarshalJSON() ([]byte, error) {
	switch v.kind {
	case simpleInt:
		return strconv.AppendInt(nil, v.num, 10), nil
	case simpleFloat:
		return json.Marshal(v.flt)
	case simpleDateTime:
		return v.ts.MarshalJSON()
	default:
		return json.Marshal(v.str)
	}
}

func (v *SimpleValue) UnmarshalJSON(data []byte) error {
	if len(data) == 0 {
		return &MalformedPayloadError{Detail: "empty simple value"}
	}
	switch data[0] {
	case '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return codecError(err)
		}
		*v = SimpleString(s)
		return nil
	case '{', '[', 't', 'f', 'n':
		return &TypeMismatchError{Want: "string or number", Got: string(data)}
	}
	if strings.ContainsAny(string(data), ".eE") {
		f, err := strconv.ParseFloat(string(data), 64)
		if err != nil {
			return &TypeMismatchError{Want: "number", Got: string(data)}
		}
		*v = SimpleFloat(f)
		return nil
	}
	n, err := strconv.ParseInt(string(data), 10, 64)
	if err != nil {
		return &TypeMismatchError{Want: "number", Got: string(data)}
	}
	*v = SimpleInt(n)
	return nil
}
