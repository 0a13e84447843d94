package domain

// EntityType identifies the kind of audited entity.
type EntityType string

const (
	EntityTypeResult EntityType = "Result"
)

func (e EntityType) String() string { return string(e) }

func (e EntityType) IsValid() bool {
	switch e {
	case EntityTypeResult:
		return true
	}
	return false
}

// EventAction is the kind of save an Event records.
type EventAction string

const (
	EventActionCreated EventAction = "Created"
	EventActionUpdated EventAction = "Updated"
)

func (a EventAction) String() string { return string(a) }

func (a EventAction) IsValid() bool {
	switch a {
	case EventActionCreated, EventActionUpdated:
		return true
	}
	return false
}

// FieldKind is how the audit engine treats an attribute.
type FieldKind int

const (
	KindScalar FieldKind = iota
	KindReference
	KindStructured
)

func (k FieldKind) String() string {
	switch k {
	case KindReference:
		return "reference"
	case KindStructured:
		return "structured"
	default:
		return "scalar"
	}
}
