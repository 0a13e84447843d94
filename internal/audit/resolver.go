package audit

import (
	"context"
	"fmt"
	"strconv"

	"github.com/google/uuid"

	"github.com/heartmarshall/result-tracker/internal/domain"
)

// labelStore looks up display labels of referenced entities by key.
// Keys without a matching row are simply absent from the result.
type labelStore interface {
	LabelsByKeys(ctx context.Context, target domain.ReferenceTarget, keys []string) (map[string]string, error)
}

// Resolver turns old/new foreign keys into display labels.
type Resolver struct {
	store labelStore
}

// NewResolver creates a Resolver backed by store.
func NewResolver(store labelStore) *Resolver {
	return &Resolver{store: store}
}

// Resolve looks up both keys with a single store call. An absent key or a
// key whose entity no longer exists resolves to "".
func (r *Resolver) Resolve(ctx context.Context, target domain.ReferenceTarget, oldKey, newKey any) (string, string, error) {
	if err := target.Validate(); err != nil {
		return "", "", err
	}

	oldStr, oldOK := KeyString(oldKey)
	newStr, newOK := KeyString(newKey)

	keys := make([]string, 0, 2)
	if oldOK {
		keys = append(keys, oldStr)
	}
	if newOK && (!oldOK || newStr != oldStr) {
		keys = append(keys, newStr)
	}
	if len(keys) == 0 {
		return "", "", nil
	}

	labels, err := r.store.LabelsByKeys(ctx, target, keys)
	if err != nil {
		return "", "", fmt.Errorf("resolve %s labels: %w", target.Type, err)
	}

	var oldLabel, newLabel string
	if oldOK {
		oldLabel = labels[oldStr]
	}
	if newOK {
		newLabel = labels[newStr]
	}
	return oldLabel, newLabel, nil
}

// KeyString normalizes a raw reference key. It reports false for nil, nil
// pointers, empty strings and uuid.Nil.
func KeyString(key any) (string, bool) {
	switch k := key.(type) {
	case nil:
		return "", false
	case string:
		return k, k != ""
	case *string:
		if k == nil {
			return "", false
		}
		return KeyString(*k)
	case int:
		return strconv.Itoa(k), true
	case int32:
		return strconv.FormatInt(int64(k), 10), true
	case int64:
		return strconv.FormatInt(k, 10), true
	case *int64:
		if k == nil {
			return "", false
		}
		return strconv.FormatInt(*k, 10), true
	case float64:
		// JSON-decoded numeric ids
		return strconv.FormatFloat(k, 'f', -1, 64), true
	case uuid.UUID:
		if k == uuid.Nil {
			return "", false
		}
		return k.String(), true
	case *uuid.UUID:
		if k == nil {
			return "", false
		}
		return KeyString(*k)
	case fmt.Stringer:
		s := k.String()
		return s, s != ""
	default:
		s := fmt.Sprint(k)
		return s, s != ""
	}
}
