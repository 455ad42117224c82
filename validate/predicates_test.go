package validate

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/c360studio/apcheck/fault"
)

func TestPredicates(t *testing.T) {
	v := newTestValidator(t)
	ctx := context.Background()

	t.Run("object", func(t *testing.T) {
		assert.True(t, v.IsObject(validNote()))
		assert.False(t, v.IsObject("not an object"))
		// Only faults at or above the reject threshold count; an empty
		// document carries nothing above should.
		assert.True(t, v.IsObject(map[string]any{}))
	})

	t.Run("actor", func(t *testing.T) {
		assert.True(t, v.IsActor(validActorDoc()))
		assert.False(t, v.IsActor(map[string]any{"type": "Person"}))
		assert.False(t, v.IsActor(validNote()))
	})

	t.Run("activity", func(t *testing.T) {
		assert.True(t, v.IsActivity(ctx, validCreate()))
		assert.False(t, v.IsActivity(ctx, validNote()))
	})

	t.Run("link", func(t *testing.T) {
		assert.True(t, v.IsLink(map[string]any{
			"@context": "https://www.w3.org/ns/activitystreams",
			"id":       "https://example.com/links/1",
			"type":     "Link",
			"href":     "https://example.com/attachments/cat.png",
		}))
		assert.False(t, v.IsLink(validNote()))
	})

	t.Run("collection", func(t *testing.T) {
		assert.True(t, v.IsCollection(ctx, validCollection()))
		assert.False(t, v.IsCollection(ctx, validNote()))
	})
}

func TestPredicateThreshold(t *testing.T) {
	// Raising the threshold to critical tolerates must-level gaps.
	lenient := New(Config{Narrative: testLookup, RejectSeverity: fault.SeverityCritical})
	bare := map[string]any{
		"@context": "https://www.w3.org/ns/activitystreams",
		"id":       "https://example.com/users/alyssa",
		"type":     "Person",
	}

	strict := newTestValidator(t)
	assert.False(t, strict.IsActor(bare))
	assert.True(t, lenient.IsActor(bare))
}

func TestPredicatesNeverPanic(t *testing.T) {
	v := New(Config{Narrative: testLookup, ReifyRefs: true, Fetcher: panicFetcher{}})

	doc := validCreate()
	assert.False(t, v.IsActivity(context.Background(), doc))
}
