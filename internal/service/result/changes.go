package result

import (
	"reflect"

	"github.com/heartmarshall/result-tracker/internal/domain"
)

// dirtyChanges returns the audited attributes whose value differs between
// before and after, in domain.ResultAttributeOrder. A zero before yields
// every set attribute of after with a nil old value.
func dirtyChanges(before, after domain.Result) *domain.ChangeSet {
	oldAttrs := before.Attributes()
	newAttrs := after.Attributes()

	changes := domain.NewChangeSet()
	for _, field := range domain.ResultAttributeOrder {
		oldValue, newValue := oldAttrs[field], newAttrs[field]
		if reflect.DeepEqual(oldValue, newValue) {
			continue
		}
		changes.Set(field, oldValue, newValue)
	}
	return changes
}
