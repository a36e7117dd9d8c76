package youtrack

import "encoding/json"

// Wire discriminators for plain (single-variant) entities.
const (
	TypeUser           = "User"
	TypeMe             = "Me"
	TypeUserGroup      = "UserGroup"
	TypeTextFieldValue = "TextFieldValue"
	TypePeriodValue    = "PeriodValue"
	TypeDurationValue  = "DurationValue"
	TypeFieldType      = "FieldType"
	TypeCustomField    = "CustomField"
	TypeProject        = "Project"
	TypeTag            = "Tag"
	TypeIssue          = "Issue"
	TypeIssueAttach    = "IssueAttachment"
	TypeIssueComment   = "IssueComment"
	TypeIssueLinkType  = "IssueLinkType"
	TypeWorkItemType   = "WorkItemType"
	TypeIssueWorkItem  = "IssueWorkItem"
	TypeAgile          = "Agile"
	TypeSprint         = "Sprint"
)

// UserKind discriminates the two user payload variants the server emits.
type UserKind string

const (
	UserKindUser UserKind = UserKind(TypeUser)
	UserKindMe   UserKind = UserKind(TypeMe)
)

// User is a YouTrack account. It appears both as a standalone entity and as
// the value of user-typed custom fields.
type User struct {
	Kind   UserKind    `json:"$type,omitzero"`
	ID     Opt[string] `json:"id,omitzero"`
	Name   Opt[string] `json:"name,omitzero"`
	RingID Opt[string] `json:"ringId,omitzero"`
	Login  Opt[string] `json:"login,omitzero"`
	Email  Opt[string] `json:"email,omitzero"`
}

func (u User) MarshalJSON() ([]byte, error) {
	kind := u.Kind
	if kind == "" {
		kind = UserKindUser
	}
	type alias User
	a := alias(u)
	a.Kind = "" // reinserted by marshalTyped
	return marshalTyped(string(kind), a)
}

func (u *User) UnmarshalJSON(data []byte) error {
	if err := checkDiscriminator(data, TypeUser, TypeMe); err != nil {
		return err
	}
	type alias User
	var a alias
	if err := json.Unmarshal(data, &a); err != nil {
		return codecError(err)
	}
	*u = User(a)
	return nil
}

// UserGroup is a group of users, selectable as a group-typed field value.
type UserGroup struct {
	ID     Opt[string] `json:"id,omitzero"`
	Name   Opt[string] `json:"name,omitzero"`
	RingID Opt[string] `json:"ringId,omitzero"`
}

func (g UserGroup) MarshalJSON() ([]byte, error) {
	type alias UserGroup
	return marshalTyped(TypeUserGroup, alias(g))
}

func (g *UserGroup) UnmarshalJSON(data []byte) error {
	if err := checkDiscriminator(data, TypeUserGroup); err != nil {
		return err
	}
	type alias UserGroup
	var a alias
	if err := json.Unmarshal(data, &a); err != nil {
		return codecError(err)
	}
	*g = UserGroup(a)
	return nil
}

// TextFieldValue is the value of a text custom field.
type TextFieldValue struct {
	ID           Opt[string] `json:"id,omitzero"`
	Text         Opt[string] `json:"text,omitzero"`
	MarkdownText Opt[string] `json:"markdownText,omitzero"`
}

func (v TextFieldValue) MarshalJSON() ([]byte, error) {
	type alias TextFieldValue
	return marshalTyped(TypeTextFieldValue, alias(v))
}

func (v *TextFieldValue) UnmarshalJSON(data []byte) error {
	if err := checkDiscriminator(data, TypeTextFieldValue); err != nil {
		return err
	}
	type alias TextFieldValue
	var a alias
	if err := json.Unmarshal(data, &a); err != nil {
		return codecError(err)
	}
	*v = TextFieldValue(a)
	return nil
}

// PeriodValue is the value of a period custom field, a duration in minutes
// with the server's human-readable presentation.
type PeriodValue struct {
	ID           Opt[string] `json:"id,omitzero"`
	Minutes      Opt[int]    `json:"minutes,omitzero"`
	Presentation Opt[string] `json:"presentation,omitzero"`
}

func (v PeriodValue) MarshalJSON() ([]byte, error) {
	type alias PeriodValue
	return marshalTyped(TypePeriodValue, alias(v))
}

func (v *PeriodValue) UnmarshalJSON(data []byte) error {
	if err := checkDiscriminator(data, TypePeriodValue); err != nil {
		return err
	}
	type alias PeriodValue
	var a alias
	if err := json.Unmarshal(data, &a); err != nil {
		return codecError(err)
	}
	*v = PeriodValue(a)
	return nil
}

// DurationValue is a spent-time duration on a work item.
type DurationValue struct {
	ID           Opt[string] `json:"id,omitzero"`
	Minutes      Opt[int]    `json:"minutes,omitzero"`
	Presentation Opt[string] `json:"presentation,omitzero"`
}

func (v DurationValue) MarshalJSON() ([]byte, error) {
	type alias DurationValue
	return marshalTyped(TypeDurationValue, alias(v))
}

// FieldType identifies a custom field's value type (e.g. "enum[1]",
// "date and time").
type FieldType struct {
	ID Opt[string] `json:"id,omitzero"`
}

func (t FieldType) MarshalJSON() ([]byte, error) {
	type alias FieldType
	return marshalTyped(TypeFieldType, alias(t))
}

// CustomField is a field definition shared across projects.
type CustomField struct {
	Name      Opt[string]    `json:"name,omitzero"`
	FieldType Opt[FieldType] `json:"fieldType,omitzero"`
}

func (f CustomField) MarshalJSON() ([]byte, error) {
	type alias CustomField
	return marshalTyped(TypeCustomField, alias(f))
}

// Project groups issues and defines which custom fields they carry.
type Project struct {
	ID        Opt[string] `json:"id,omitzero"`
	Name      Opt[string] `json:"name,omitzero"`
	ShortName Opt[string] `json:"shortName,omitzero"`
}

func (p Project) MarshalJSON() ([]byte, error) {
	type alias Project
	return marshalTyped(TypeProject, alias(p))
}

// Tag is a user-defined label attached to issues.
type Tag struct {
	ID   Opt[string] `json:"id,omitzero"`
	Name Opt[string] `json:"name,omitzero"`
}

func (t Tag) MarshalJSON() ([]byte, error) {
	type alias Tag
	return marshalTyped(TypeTag, alias(t))
}

// Issue is a tracked work item. Tags and custom fields preserve the order the
// server returned them in.
type Issue struct {
	ID                  Opt[string]             `json:"id,omitzero"`
	IDReadable          Opt[string]             `json:"idReadable,omitzero"`
	Created             Opt[DateTime]           `json:"created,omitzero"`
	Updated             Opt[DateTime]           `json:"updated,omitzero"`
	Resolved            Opt[DateTime]           `json:"resolved,omitzero"`
	Project             Opt[Project]            `json:"project,omitzero"`
	Reporter            Opt[User]               `json:"reporter,omitzero"`
	Updater             Opt[User]               `json:"updater,omitzero"`
	Summary             Opt[string]             `json:"summary,omitzero"`
	Description         Opt[string]             `json:"description,omitzero"`
	WikifiedDescription Opt[string]             `json:"wikifiedDescription,omitzero"`
	CommentsCount       Opt[int]                `json:"commentsCount,omitzero"`
	Tags                Opt[[]Tag]              `json:"tags,omitzero"`
	CustomFields        Opt[IssueCustomFields]  `json:"customFields,omitzero"`
}

func (i Issue) MarshalJSON() ([]byte, error) {
	type alias Issue
	return marshalTyped(TypeIssue, alias(i))
}

// URL returns the issue's path on the YouTrack instance.
func (i Issue) URL() string {
	return "/issue/" + i.IDReadable.Or("")
}

// CustomFieldByName returns the issue custom field with the given name.
func (i Issue) CustomFieldByName(name string) (IssueCustomField, bool) {
	fields, _ := i.CustomFields.Value()
	for _, f := range fields {
		if n, ok := f.CustomFieldName(); ok && n == name {
			return f, true
		}
	}
	return nil, false
}

// IssueAttachment is a file attached to an issue or comment.
type IssueAttachment struct {
	ID       Opt[string]   `json:"id,omitzero"`
	Name     Opt[string]   `json:"name,omitzero"`
	Author   Opt[User]     `json:"author,omitzero"`
	Created  Opt[DateTime] `json:"created,omitzero"`
	Updated  Opt[DateTime] `json:"updated,omitzero"`
	MimeType Opt[string]   `json:"mimeType,omitzero"`
	URL      Opt[string]   `json:"url,omitzero"`
}

func (a IssueAttachment) MarshalJSON() ([]byte, error) {
	type alias IssueAttachment
	return marshalTyped(TypeIssueAttach, alias(a))
}

// IssueComment is a comment on an issue. Setting Deleted to true hides the
// comment; the server keeps it recoverable.
type IssueComment struct {
	ID          Opt[string]            `json:"id,omitzero"`
	Text        Opt[string]            `json:"text,omitzero"`
	TextPreview Opt[string]            `json:"textPreview,omitzero"`
	Created     Opt[DateTime]          `json:"created,omitzero"`
	Updated     Opt[DateTime]          `json:"updated,omitzero"`
	Author      Opt[User]              `json:"author,omitzero"`
	Attachments Opt[[]IssueAttachment] `json:"attachments,omitzero"`
	Deleted     Opt[bool]              `json:"deleted,omitzero"`
}

func (c IssueComment) MarshalJSON() ([]byte, error) {
	type alias IssueComment
	return marshalTyped(TypeIssueComment, alias(c))
}

// IssueLinkType describes a link relation (e.g. "Subtask", "Duplicate") and
// its directed names.
type IssueLinkType struct {
	ID                      Opt[string] `json:"id,omitzero"`
	Name                    Opt[string] `json:"name,omitzero"`
	LocalizedName           Opt[string] `json:"localizedName,omitzero"`
	SourceToTarget          Opt[string] `json:"sourceToTarget,omitzero"`
	LocalizedSourceToTarget Opt[string] `json:"localizedSourceToTarget,omitzero"`
	TargetToSource          Opt[string] `json:"targetToSource,omitzero"`
	LocalizedTargetToSource Opt[string] `json:"localizedTargetToSource,omitzero"`
	Directed                Opt[bool]   `json:"directed,omitzero"`
	Aggregation             Opt[bool]   `json:"aggregation,omitzero"`
	ReadOnly                Opt[bool]   `json:"readOnly,omitzero"`
}

func (t IssueLinkType) MarshalJSON() ([]byte, error) {
	type alias IssueLinkType
	return marshalTyped(TypeIssueLinkType, alias(t))
}

// LinkDirection is the direction of an issue link relative to the issue it
// was read from.
type LinkDirection string

const (
	LinkOutward LinkDirection = "OUTWARD"
	LinkInward  LinkDirection = "INWARD"
	LinkBoth    LinkDirection = "BOTH"
)

// IssueLink is one link relation of an issue together with the issues on the
// other side. It carries no $type discriminator on the wire.
type IssueLink struct {
	ID            Opt[string]        `json:"id,omitzero"`
	Direction     Opt[LinkDirection] `json:"direction,omitzero"`
	LinkType      Opt[IssueLinkType] `json:"linkType,omitzero"`
	Issues        Opt[[]Issue]       `json:"issues,omitzero"`
	TrimmedIssues Opt[[]Issue]       `json:"trimmedIssues,omitzero"`
}

// WorkItemType categorizes spent time (e.g. "Development", "Testing").
type WorkItemType struct {
	ID   Opt[string] `json:"id,omitzero"`
	Name Opt[string] `json:"name,omitzero"`
}

func (t WorkItemType) MarshalJSON() ([]byte, error) {
	type alias WorkItemType
	return marshalTyped(TypeWorkItemType, alias(t))
}

// IssueWorkItem is one spent-time record on an issue. The work item's
// category travels under the "type" key; "$type" stays the entity
// discriminator.
type IssueWorkItem struct {
	ID           Opt[string]        `json:"id,omitzero"`
	Author       Opt[User]          `json:"author,omitzero"`
	Creator      Opt[User]          `json:"creator,omitzero"`
	Text         Opt[string]        `json:"text,omitzero"`
	TextPreview  Opt[string]        `json:"textPreview,omitzero"`
	WorkItemType Opt[WorkItemType]  `json:"type,omitzero"`
	Created      Opt[DateTime]      `json:"created,omitzero"`
	Updated      Opt[DateTime]      `json:"updated,omitzero"`
	Duration     Opt[DurationValue] `json:"duration,omitzero"`
	Date         Opt[DateTime]      `json:"date,omitzero"`
}

func (w IssueWorkItem) MarshalJSON() ([]byte, error) {
	type alias IssueWorkItem
	return marshalTyped(TypeIssueWorkItem, alias(w))
}

// AgileRef is a reference to an agile board.
type AgileRef struct {
	ID   Opt[string] `json:"id,omitzero"`
	Name Opt[string] `json:"name,omitzero"`
}

func (a AgileRef) MarshalJSON() ([]byte, error) {
	type alias AgileRef
	return marshalTyped(TypeAgile, alias(a))
}

// Agile is an agile board configuration.
type Agile struct {
	ID            Opt[string]      `json:"id,omitzero"`
	Name          Opt[string]      `json:"name,omitzero"`
	Owner         Opt[User]        `json:"owner,omitzero"`
	VisibleFor    Opt[UserGroup]   `json:"visibleFor,omitzero"`
	Projects      Opt[[]Project]   `json:"projects,omitzero"`
	Sprints       Opt[[]SprintRef] `json:"sprints,omitzero"`
	CurrentSprint Opt[SprintRef]   `json:"currentSprint,omitzero"`
}

func (a Agile) MarshalJSON() ([]byte, error) {
	type alias Agile
	return marshalTyped(TypeAgile, alias(a))
}

// SprintRef is a reference to a sprint.
type SprintRef struct {
	ID   Opt[string] `json:"id,omitzero"`
	Name Opt[string] `json:"name,omitzero"`
}

func (s SprintRef) MarshalJSON() ([]byte, error) {
	type alias SprintRef
	return marshalTyped(TypeSprint, alias(s))
}

// Sprint is one iteration of an agile board.
type Sprint struct {
	ID                    Opt[string]    `json:"id,omitzero"`
	Name                  Opt[string]    `json:"name,omitzero"`
	Agile                 Opt[AgileRef]  `json:"agile,omitzero"`
	Goal                  Opt[string]    `json:"goal,omitzero"`
	Start                 Opt[DateTime]  `json:"start,omitzero"`
	Finish                Opt[DateTime]  `json:"finish,omitzero"`
	Archived              Opt[bool]      `json:"archived,omitzero"`
	IsDefault             Opt[bool]      `json:"isDefault,omitzero"`
	Issues                Opt[[]Issue]   `json:"issues,omitzero"`
	UnresolvedIssuesCount Opt[int]       `json:"unresolvedIssuesCount,omitzero"`
	PreviousSprint        Opt[SprintRef] `json:"previousSprint,omitzero"`
}

func (s Sprint) MarshalJSON() ([]byte, error) {
	type alias Sprint
	return marshalTyped(TypeSprint, alias(s))
}
