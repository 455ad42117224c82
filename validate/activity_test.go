package validate

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/c360studio/apcheck/fault"
)

func validActorDoc() map[string]any {
	return map[string]any{
		"@context": "https://www.w3.org/ns/activitystreams",
		"id":       "https://example.com/users/alyssa",
		"type":     "Person",
		"inbox":    "https://example.com/users/alyssa/inbox",
		"outbox":   "https://example.com/users/alyssa/outbox",
	}
}

func validCreate() map[string]any {
	return map[string]any{
		"@context": "https://www.w3.org/ns/activitystreams",
		"id":       "https://example.com/activities/1",
		"type":     "Create",
		"summary":  "Alyssa posted a note",
		"actor":    "https://example.com/users/alyssa",
		"object":   validNote(),
	}
}

func TestActivityFaultsClean(t *testing.T) {
	v := newTestValidator(t)
	assert.Empty(t, v.ActivityFaults(context.Background(), validCreate()))
}

func TestActivityFaultsRequirements(t *testing.T) {
	v := newTestValidator(t)
	ctx := context.Background()

	t.Run("missing actor", func(t *testing.T) {
		doc := validCreate()
		delete(doc, "actor")
		assert.Contains(t, codesOf(v.ActivityFaults(ctx, doc)), fault.CodeNoActor)
	})

	t.Run("missing object", func(t *testing.T) {
		doc := validCreate()
		delete(doc, "object")
		assert.Contains(t, codesOf(v.ActivityFaults(ctx, doc)), fault.CodeNoObject)
	})

	t.Run("intransitive verb needs no object", func(t *testing.T) {
		doc := map[string]any{
			"@context": "https://www.w3.org/ns/activitystreams",
			"id":       "https://example.com/activities/2",
			"type":     "Arrive",
			"summary":  "Alyssa arrived",
			"actor":    "https://example.com/users/alyssa",
		}
		assert.Empty(t, v.ActivityFaults(ctx, doc))
	})

	t.Run("target verbs require a target", func(t *testing.T) {
		doc := validCreate()
		doc["type"] = "Add"
		assert.Contains(t, codesOf(v.ActivityFaults(ctx, doc)), fault.CodeNoTarget)

		doc["target"] = "https://example.com/collections/1"
		assert.NotContains(t, codesOf(v.ActivityFaults(ctx, doc)), fault.CodeNoTarget)
	})

	t.Run("multiple actors as a sequence", func(t *testing.T) {
		doc := validCreate()
		doc["actor"] = []any{
			"https://example.com/users/alyssa",
			"https://example.com/users/ben",
		}
		assert.Empty(t, v.ActivityFaults(ctx, doc))
	})
}

func TestActivityFaultsSummary(t *testing.T) {
	v := newTestValidator(t)
	doc := validCreate()
	delete(doc, "summary")

	faults := v.ActivityFaults(context.Background(), doc)
	require.Len(t, faults, 1)
	assert.Equal(t, fault.CodeNoSummary, faults[0].Code)
	assert.Equal(t, fault.SeverityShould, faults[0].Severity)
}

func TestActivityFaultsUnrecognizedVerb(t *testing.T) {
	v := newTestValidator(t)

	doc := validCreate()
	doc["type"] = "Teleport"
	faults := v.ActivityFaults(context.Background(), doc)
	require.Len(t, faults, 1)
	assert.Equal(t, fault.CodeInvalidVerb, faults[0].Code)
	assert.Equal(t, fault.SeverityMust, faults[0].Severity)
}

func TestActivityFaultsAcceptRestrictsObject(t *testing.T) {
	v := newTestValidator(t)
	ctx := context.Background()

	t.Run("accepting a person", func(t *testing.T) {
		doc := validCreate()
		doc["type"] = "Accept"
		doc["object"] = validActorDoc()
		assert.Empty(t, v.ActivityFaults(ctx, doc))
	})

	t.Run("accepting a note is rejected", func(t *testing.T) {
		doc := validCreate()
		doc["type"] = "Accept"
		codes := codesOf(v.ActivityFaults(ctx, doc))
		assert.Contains(t, codes, fault.CodeInvalidObject)
		assert.Contains(t, codes, fault.CodeUnexpectedType)
	})
}

func TestActivityFaultsInlineObjectBubbles(t *testing.T) {
	v := newTestValidator(t)

	doc := validCreate()
	doc["object"] = map[string]any{"type": "Note"}
	faults := v.ActivityFaults(context.Background(), doc)

	require.NotEmpty(t, faults)
	assert.Equal(t, fault.CodeInvalidObject, faults[0].Code)
	assert.Contains(t, codesOf(faults), fault.CodeNoContext)
}

func TestActivityFaultsNonObject(t *testing.T) {
	v := newTestValidator(t)
	faults := v.ActivityFaults(context.Background(), "nope")
	require.Len(t, faults, 1)
	assert.Equal(t, fault.CodeNotAnObject, faults[0].Code)
}
