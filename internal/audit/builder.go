package audit

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/result-tracker/internal/domain"
)

// Builder produces the Event for one save operation. It performs no writes;
// the caller persists the Event in the same transaction as the entity.
type Builder struct {
	classifier *Classifier
	resolver   *Resolver
	log        *slog.Logger
}

// NewBuilder creates a Builder.
func NewBuilder(log *slog.Logger, classifier *Classifier, resolver *Resolver) *Builder {
	return &Builder{
		classifier: classifier,
		resolver:   resolver,
		log:        log.With("component", "audit"),
	}
}

// Build turns changes into an Event. Line items follow the change set order;
// a structured field contributes a summary item followed by one item per
// nested difference. An empty change set yields an Event with no items.
//
// Errors are configuration bugs (unknown action, unresolvable reference
// target) or failures of the reference lookup itself.
func (b *Builder) Build(
	ctx context.Context,
	entityType domain.EntityType,
	action domain.EventAction,
	actorID *uuid.UUID,
	changes *domain.ChangeSet,
) (domain.Event, error) {
	if !action.IsValid() {
		return domain.Event{}, fmt.Errorf("build %s event: unknown action %q: %w", entityType, action, domain.ErrMisconfigured)
	}

	event := domain.Event{
		EntityType: entityType,
		Action:     action,
		UserID:     actorID,
		Changes:    make([]domain.EventChange, 0, changes.Len()),
	}

	err := changes.Each(func(field string, values domain.ValuePair) error {
		cls := b.classifier.Classify(entityType, field)

		switch cls.Kind {
		case domain.KindReference:
			change, err := b.referenceChange(ctx, cls.Reference, values)
			if err != nil {
				return fmt.Errorf("field %s: %w", field, err)
			}
			event.Changes = append(event.Changes, change)
		case domain.KindStructured:
			event.Changes = append(event.Changes, b.structuredChanges(ctx, field, values)...)
		default:
			event.Changes = append(event.Changes, scalarChange(field, values))
		}
		return nil
	})
	if err != nil {
		return domain.Event{}, fmt.Errorf("build %s event: %w", entityType, err)
	}

	b.log.DebugContext(ctx, "audit event built",
		slog.String("entity_type", entityType.String()),
		slog.String("action", action.String()),
		slog.Int("fields", changes.Len()),
		slog.Int("changes", len(event.Changes)),
	)

	return event, nil
}

func (b *Builder) referenceChange(ctx context.Context, ref domain.ReferenceField, values domain.ValuePair) (domain.EventChange, error) {
	oldLabel, newLabel, err := b.resolver.Resolve(ctx, ref.Target, values.Old, values.New)
	if err != nil {
		return domain.EventChange{}, err
	}

	valueClass := ref.Target.Type
	change := domain.EventChange{
		Field:      ref.Label,
		OldValue:   &oldLabel,
		NewValue:   &newLabel,
		ValueClass: &valueClass,
	}
	if key, ok := KeyString(values.Old); ok {
		change.OldValueKey = &key
	}
	if key, ok := KeyString(values.New); ok {
		change.NewValueKey = &key
	}
	return change, nil
}

func (b *Builder) structuredChanges(ctx context.Context, field string, values domain.ValuePair) []domain.EventChange {
	changes := []domain.EventChange{{
		Field:    field,
		OldValue: formatOrEmpty(values.Old),
		NewValue: formatOrEmpty(values.New),
	}}

	oldMap, ok := AsMap(values.Old)
	if !ok {
		b.log.WarnContext(ctx, "structured value is not a map, diffing as empty",
			slog.String("field", field), slog.String("side", "old"))
	}
	newMap, ok := AsMap(values.New)
	if !ok {
		b.log.WarnContext(ctx, "structured value is not a map, diffing as empty",
			slog.String("field", field), slog.String("side", "new"))
	}

	for _, d := range Diff(oldMap, newMap) {
		change := domain.EventChange{Field: Titleize(field + ": " + d.Path)}
		switch d.Kind {
		case DiffAdded:
			change.NewValue = formatOrEmpty(d.New)
		case DiffRemoved:
			change.OldValue = formatOrEmpty(d.Old)
		case DiffChanged:
			change.OldValue = formatOrEmpty(d.Old)
			change.NewValue = formatOrEmpty(d.New)
		}
		changes = append(changes, change)
	}
	return changes
}

func scalarChange(field string, values domain.ValuePair) domain.EventChange {
	return domain.EventChange{
		Field:    Titleize(field),
		OldValue: formatOrEmpty(values.Old),
		NewValue: formatOrEmpty(values.New),
	}
}
