//go:build unit || e2e

package testutil

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

// Mutation edits a request body after it has been flattened to JSON keys.
type Mutation func(m map[string]any)

// DtoMap flattens v to its JSON object form and applies muts in order, for
// sending bodies a typed DTO could not express.
func DtoMap(t *testing.T, v any, muts ...Mutation) map[string]any {
	t.Helper()

	raw, err := json.Marshal(v)
	require.NoError(t, err)
	var m map[string]any
	require.NoError(t, json.Unmarshal(raw, &m))

	for _, mut := range muts {
		mut(m)
	}
	return m
}

func Without(key string) Mutation {
	return func(m map[string]any) { delete(m, key) }
}

func With(key string, value any) Mutation {
	return func(m map[string]any) { m[key] = value }
}
