// Package audit turns an entity's before/after attribute state into Event
// records with one line item per changed field.
package audit

import (
	"fmt"

	"github.com/heartmarshall/result-tracker/internal/domain"
)

// Classification is the outcome of Classifier.Classify.
type Classification struct {
	Kind      domain.FieldKind
	Reference domain.ReferenceField // set when Kind is KindReference
}

type entityFields struct {
	references map[string]domain.ReferenceField
	structured map[string]struct{}
}

// Classifier decides how each attribute of an entity type is audited.
// It is immutable after construction and safe for concurrent use.
type Classifier struct {
	entities map[domain.EntityType]entityFields
}

// NewClassifier indexes the given schemas. Malformed metadata is rejected
// here so that configuration bugs surface at startup.
func NewClassifier(schemas ...domain.SchemaMetadata) (*Classifier, error) {
	c := &Classifier{entities: make(map[domain.EntityType]entityFields, len(schemas))}

	for _, s := range schemas {
		if err := s.Validate(); err != nil {
			return nil, err
		}
		if _, dup := c.entities[s.EntityType]; dup {
			return nil, fmt.Errorf("schema %s registered twice: %w", s.EntityType, domain.ErrMisconfigured)
		}

		fields := entityFields{
			references: make(map[string]domain.ReferenceField, len(s.References)),
			structured: make(map[string]struct{}, len(s.Structured)),
		}
		for _, ref := range s.References {
			fields.references[ref.Field] = ref
		}
		for _, name := range s.Structured {
			fields.structured[name] = struct{}{}
		}
		c.entities[s.EntityType] = fields
	}

	return c, nil
}

// Classify returns how field of entityType is audited. Anything not declared
// in the schema, including unknown entity types, is scalar.
func (c *Classifier) Classify(entityType domain.EntityType, field string) Classification {
	fields, ok := c.entities[entityType]
	if !ok {
		return Classification{Kind: domain.KindScalar}
	}
	if ref, ok := fields.references[field]; ok {
		return Classification{Kind: domain.KindReference, Reference: ref}
	}
	if _, ok := fields.structured[field]; ok {
		return Classification{Kind: domain.KindStructured}
	}
	return Classification{Kind: domain.KindScalar}
}
