package validate

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/c360studio/apcheck/fault"
	"github.com/c360studio/apcheck/vocab"
)

type fakeFetcher struct {
	docs  map[string]vocab.Document
	err   error
	calls []string
}

func (f *fakeFetcher) Object(_ context.Context, uri string) (vocab.Document, error) {
	f.calls = append(f.calls, uri)
	if f.err != nil {
		return nil, f.err
	}
	doc, ok := f.docs[uri]
	if !ok {
		return nil, errors.New("not found")
	}
	return doc, nil
}

type panicFetcher struct{}

func (panicFetcher) Object(context.Context, string) (vocab.Document, error) {
	panic("unexpected network access")
}

func invalidActorSpec() vocab.FaultSpec {
	return vocab.FaultSpec{Severity: fault.SeverityMust, Code: fault.CodeInvalidActor}
}

func TestObjectReferenceWithoutReification(t *testing.T) {
	// The fetcher panics on use: no form of reference may touch the
	// network while reification is off.
	v := New(Config{Narrative: testLookup, Fetcher: panicFetcher{}})
	ctx := context.Background()

	t.Run("bare uri accepted on syntax alone", func(t *testing.T) {
		assert.Empty(t, v.ObjectReference(ctx, "https://example.com/users/alyssa", nil, invalidActorSpec()))
	})

	t.Run("malformed uri faulted", func(t *testing.T) {
		faults := v.ObjectReference(ctx, "not a uri", nil, invalidActorSpec())
		require.Len(t, faults, 1)
		assert.Equal(t, fault.CodeInvalidActor, faults[0].Code)
	})

	t.Run("link document uses its href", func(t *testing.T) {
		link := map[string]any{
			"@context": "https://www.w3.org/ns/activitystreams",
			"id":       "https://example.com/links/1",
			"type":     "Link",
			"href":     "https://example.com/users/alyssa",
		}
		assert.Empty(t, v.ObjectReference(ctx, link, nil, invalidActorSpec()))
	})

	t.Run("inline document validated directly", func(t *testing.T) {
		faults := v.ObjectReference(ctx, validNote(), []string{"Note"}, invalidActorSpec())
		assert.Empty(t, faults)

		faults = v.ObjectReference(ctx, validNote(), []string{"Person"}, invalidActorSpec())
		require.NotEmpty(t, faults)
		assert.Equal(t, fault.CodeInvalidActor, faults[0].Code)
		assert.Contains(t, codesOf(faults), fault.CodeUnexpectedType)
	})

	t.Run("scalar value faulted", func(t *testing.T) {
		faults := v.ObjectReference(ctx, 42, nil, invalidActorSpec())
		require.Len(t, faults, 1)
		assert.Equal(t, fault.CodeInvalidActor, faults[0].Code)
	})
}

func TestObjectReferenceReified(t *testing.T) {
	ctx := context.Background()
	uri := "https://example.com/users/alyssa"

	t.Run("unreachable target yields exactly the fallback fault", func(t *testing.T) {
		f := &fakeFetcher{err: errors.New("connection refused")}
		v := New(Config{Narrative: testLookup, ReifyRefs: true, Fetcher: f})

		faults := v.ObjectReference(ctx, uri, nil, invalidActorSpec())
		require.Len(t, faults, 1)
		assert.Equal(t, fault.CodeInvalidActor, faults[0].Code)
		assert.Equal(t, []string{uri}, f.calls)
	})

	t.Run("valid target is clean", func(t *testing.T) {
		f := &fakeFetcher{docs: map[string]vocab.Document{uri: validActorDoc()}}
		v := New(Config{Narrative: testLookup, ReifyRefs: true, Fetcher: f})

		assert.Empty(t, v.ObjectReference(ctx, uri, vocab.ActorTypes, invalidActorSpec()))
	})

	t.Run("nested faults bubble behind the caller's", func(t *testing.T) {
		incomplete := validActorDoc()
		delete(incomplete, "inbox")
		f := &fakeFetcher{docs: map[string]vocab.Document{uri: incomplete}}
		v := New(Config{Narrative: testLookup, ReifyRefs: true, Fetcher: f})

		faults := v.ObjectReference(ctx, uri, vocab.ActorTypes, invalidActorSpec())
		require.NotEmpty(t, faults)
		assert.Equal(t, fault.CodeInvalidActor, faults[0].Code)
		assert.Contains(t, codesOf(faults), fault.CodeNoInbox)
	})

	t.Run("nil fetcher disables reification", func(t *testing.T) {
		v := New(Config{Narrative: testLookup, ReifyRefs: true})
		assert.Empty(t, v.ObjectReference(ctx, uri, vocab.ActorTypes, invalidActorSpec()))
	})
}

func TestObjectReferenceDepthGuard(t *testing.T) {
	// An activity whose actor reference points back at itself would
	// recurse forever without the depth bound.
	uri := "https://example.com/activities/loop"
	f := &fakeFetcher{docs: map[string]vocab.Document{
		uri: {
			"@context": "https://www.w3.org/ns/activitystreams",
			"id":       uri,
			"type":     "Arrive",
			"actor":    uri,
		},
	}}
	v := New(Config{Narrative: testLookup, ReifyRefs: true, Fetcher: f, MaxDepth: 3})

	v.ObjectReference(context.Background(), uri, nil, invalidActorSpec())
	assert.LessOrEqual(t, len(f.calls), 3)
}

func TestActivityReferencesReified(t *testing.T) {
	actorURI := "https://example.com/users/alyssa"
	f := &fakeFetcher{docs: map[string]vocab.Document{actorURI: validActorDoc()}}
	v := New(Config{Narrative: testLookup, ReifyRefs: true, Fetcher: f})

	assert.Empty(t, v.ActivityFaults(context.Background(), validCreate()))
	assert.Equal(t, []string{actorURI}, f.calls)
}

func TestCollObjectReference(t *testing.T) {
	v := newTestValidator(t)
	ctx := context.Background()
	spec := vocab.FaultSpec{Severity: fault.SeverityMust, Code: fault.CodeInvalidItems}

	t.Run("single document", func(t *testing.T) {
		faults, err := v.CollObjectReference(ctx, validNote(), nil, spec)
		require.NoError(t, err)
		assert.Empty(t, faults)
	})

	t.Run("sequence of references", func(t *testing.T) {
		faults, err := v.CollObjectReference(ctx, []any{"https://example.com/notes/1", validNote()}, nil, spec)
		require.NoError(t, err)
		assert.Empty(t, faults)
	})

	t.Run("malformed element is faulted", func(t *testing.T) {
		faults, err := v.CollObjectReference(ctx, []any{"https://example.com/notes/1", 42}, nil, spec)
		require.NoError(t, err)
		require.Len(t, faults, 1)
		assert.Equal(t, fault.CodeInvalidItems, faults[0].Code)
	})

	t.Run("scalar value is a caller error", func(t *testing.T) {
		_, err := v.CollObjectReference(ctx, 42, nil, spec)
		var argErr *ArgumentError
		require.ErrorAs(t, err, &argErr)
		assert.Equal(t, "CollObjectReference", argErr.Op)
	})
}
