package domain

import (
	"fmt"
	"regexp"
)

var identRe = regexp.MustCompile(`^[a-z_][a-z0-9_]*$`)

// ReferenceTarget names the entity a reference field points at and how to
// look up its display label.
type ReferenceTarget struct {
	Type        string // entity class name, stored as EventChange.ValueClass
	Table       string
	KeyColumn   string
	LabelColumn string
}

// Validate reports whether the target can be looked up.
func (t ReferenceTarget) Validate() error {
	if t.Type == "" {
		return fmt.Errorf("reference target: empty type: %w", ErrMisconfigured)
	}
	for _, ident := range []string{t.Table, t.KeyColumn, t.LabelColumn} {
		if !identRe.MatchString(ident) {
			return fmt.Errorf("reference target %s: invalid identifier %q: %w", t.Type, ident, ErrMisconfigured)
		}
	}
	return nil
}

// ReferenceField declares an attribute holding the key of another entity.
type ReferenceField struct {
	Field  string // attribute name, e.g. "status_id"
	Label  string // human name of the relation, e.g. "Status"
	Target ReferenceTarget
}

// SchemaMetadata is the static audit description of one entity type.
type SchemaMetadata struct {
	EntityType EntityType
	References []ReferenceField
	Structured []string
}

// Validate checks that every declared field is well formed and that no
// attribute is declared twice.
func (s SchemaMetadata) Validate() error {
	if s.EntityType == "" {
		return fmt.Errorf("schema: empty entity type: %w", ErrMisconfigured)
	}

	seen := make(map[string]struct{}, len(s.References)+len(s.Structured))
	for _, ref := range s.References {
		if ref.Field == "" || ref.Label == "" {
			return fmt.Errorf("schema %s: reference field needs a name and a label: %w", s.EntityType, ErrMisconfigured)
		}
		if _, dup := seen[ref.Field]; dup {
			return fmt.Errorf("schema %s: field %s declared twice: %w", s.EntityType, ref.Field, ErrMisconfigured)
		}
		seen[ref.Field] = struct{}{}
		if err := ref.Target.Validate(); err != nil {
			return fmt.Errorf("schema %s: field %s: %w", s.EntityType, ref.Field, err)
		}
	}
	for _, name := range s.Structured {
		if name == "" {
			return fmt.Errorf("schema %s: empty structured field: %w", s.EntityType, ErrMisconfigured)
		}
		if _, dup := seen[name]; dup {
			return fmt.Errorf("schema %s: field %s declared twice: %w", s.EntityType, name, ErrMisconfigured)
		}
		seen[name] = struct{}{}
	}
	return nil
}
