package validate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/c360studio/apcheck/fault"
)

func testLookup(code fault.Code) (string, bool) {
	return "narrative for " + string(code), true
}

func newTestValidator(t *testing.T) *Validator {
	t.Helper()
	return New(Config{Narrative: testLookup})
}

func codesOf(faults []fault.Fault) []fault.Code {
	codes := make([]fault.Code, 0, len(faults))
	for _, f := range faults {
		codes = append(codes, f.Code)
	}
	return codes
}

func validNote() map[string]any {
	return map[string]any{
		"@context": "https://www.w3.org/ns/activitystreams",
		"id":       "https://example.com/notes/1",
		"type":     "Note",
		"content":  "hello",
	}
}

func TestObjectFaultsNonObject(t *testing.T) {
	v := newTestValidator(t)

	for _, doc := range []any{"not an object", 42, true, nil, []any{"a"}} {
		faults := v.ObjectFaults(doc)
		require.Len(t, faults, 1)
		assert.Equal(t, fault.CodeNotAnObject, faults[0].Code)
		assert.Equal(t, fault.SeverityCritical, faults[0].Severity)
	}
}

func TestObjectFaultsEmptyDocument(t *testing.T) {
	v := newTestValidator(t)

	faults := v.ObjectFaults(map[string]any{})
	assert.ElementsMatch(t, []fault.Code{
		fault.CodeNoContext,
		fault.CodeNoType,
		fault.CodeNoIDTransient,
	}, codesOf(faults))
	for _, f := range faults {
		assert.Less(t, f.Severity, fault.SeverityCritical)
	}
}

func TestObjectFaultsCleanDocument(t *testing.T) {
	v := newTestValidator(t)
	assert.Empty(t, v.ObjectFaults(validNote()))
}

func TestObjectFaultsIdempotentUpToID(t *testing.T) {
	v := newTestValidator(t)
	doc := map[string]any{"content": 42}

	first := v.ObjectFaults(doc)
	second := v.ObjectFaults(doc)
	require.Equal(t, len(first), len(second))
	for i := range first {
		assert.NotEqual(t, first[i].ID, second[i].ID)
		first[i].ID = ""
		second[i].ID = ""
		assert.Equal(t, first[i], second[i])
	}
}

func TestObjectFaultsAsTypeMembership(t *testing.T) {
	v := newTestValidator(t)

	t.Run("matching type adds nothing", func(t *testing.T) {
		assert.Empty(t, v.ObjectFaultsAs(validNote(), "Note", "Article"))
	})

	t.Run("non-matching type is critical", func(t *testing.T) {
		faults := v.ObjectFaultsAs(validNote(), "Person")
		require.Len(t, faults, 1)
		assert.Equal(t, fault.CodeUnexpectedType, faults[0].Code)
		assert.Equal(t, fault.SeverityCritical, faults[0].Severity)
	})

	t.Run("empty expectation imposes nothing", func(t *testing.T) {
		assert.Empty(t, v.ObjectFaultsAs(validNote()))
	})
}

func TestPersistentObjectFaults(t *testing.T) {
	v := newTestValidator(t)

	t.Run("https id is clean", func(t *testing.T) {
		assert.Empty(t, v.PersistentObjectFaults(validNote()))
	})

	t.Run("http id gets exactly one should fault", func(t *testing.T) {
		doc := validNote()
		doc["id"] = "http://example.com/notes/1"
		faults := v.PersistentObjectFaults(doc)
		require.Len(t, faults, 1)
		assert.Equal(t, fault.CodeIDNotHTTPS, faults[0].Code)
		assert.Equal(t, fault.SeverityShould, faults[0].Severity)
	})

	t.Run("absent id is a must fault", func(t *testing.T) {
		doc := validNote()
		delete(doc, "id")
		faults := v.PersistentObjectFaults(doc)
		assert.Contains(t, codesOf(faults), fault.CodeNoIDPersistent)
		assert.NotContains(t, codesOf(faults), fault.CodeNullIDPersistent)
	})

	t.Run("null id is distinguishable from absent", func(t *testing.T) {
		doc := validNote()
		doc["id"] = nil
		faults := v.PersistentObjectFaults(doc)
		assert.Contains(t, codesOf(faults), fault.CodeNullIDPersistent)
		assert.NotContains(t, codesOf(faults), fault.CodeNoIDPersistent)
	})

	t.Run("malformed id faults id-not-uri exactly once", func(t *testing.T) {
		doc := validNote()
		doc["id"] = "not a uri"
		faults := v.PersistentObjectFaults(doc)
		count := 0
		for _, f := range faults {
			if f.Code == fault.CodeIDNotURI {
				count++
			}
		}
		assert.Equal(t, 1, count)
	})
}

func TestActorFaults(t *testing.T) {
	v := newTestValidator(t)

	validActor := func() map[string]any {
		return map[string]any{
			"@context": "https://www.w3.org/ns/activitystreams",
			"id":       "https://example.com/users/alyssa",
			"type":     "Person",
			"inbox":    "https://example.com/users/alyssa/inbox",
			"outbox":   "https://example.com/users/alyssa/outbox",
		}
	}

	t.Run("complete actor is clean", func(t *testing.T) {
		assert.Empty(t, v.ActorFaults(validActor()))
	})

	t.Run("bare person is not an actor", func(t *testing.T) {
		faults := v.ActorFaults(map[string]any{"type": "Person"})
		codes := codesOf(faults)
		assert.Contains(t, codes, fault.CodeNoInbox)
		assert.Contains(t, codes, fault.CodeNoOutbox)
		assert.Contains(t, codes, fault.CodeNoContext)
		assert.Contains(t, codes, fault.CodeNoIDPersistent)
	})

	t.Run("malformed endpoints", func(t *testing.T) {
		doc := validActor()
		doc["inbox"] = "not a uri"
		doc["outbox"] = 42
		codes := codesOf(v.ActorFaults(doc))
		assert.Contains(t, codes, fault.CodeInvalidInbox)
		assert.Contains(t, codes, fault.CodeInvalidOutbox)
		assert.NotContains(t, codes, fault.CodeNoInbox)
	})

	t.Run("non-actor type is critical", func(t *testing.T) {
		codes := codesOf(v.ActorFaults(validNote()))
		assert.Contains(t, codes, fault.CodeUnexpectedType)
	})

	t.Run("non-object input", func(t *testing.T) {
		faults := v.ActorFaults([]any{})
		require.Len(t, faults, 1)
		assert.Equal(t, fault.CodeNotAnObject, faults[0].Code)
	})
}

func TestLinkFaults(t *testing.T) {
	v := newTestValidator(t)

	validLink := func() map[string]any {
		return map[string]any{
			"@context":  "https://www.w3.org/ns/activitystreams",
			"id":        "https://example.com/links/1",
			"type":      "Link",
			"href":      "https://example.com/attachments/cat.png",
			"mediaType": "image/png",
		}
	}

	t.Run("complete link is clean", func(t *testing.T) {
		assert.Empty(t, v.LinkFaults(validLink()))
	})

	t.Run("missing href", func(t *testing.T) {
		doc := validLink()
		delete(doc, "href")
		codes := codesOf(v.LinkFaults(doc))
		assert.Contains(t, codes, fault.CodeNoHref)
		assert.NotContains(t, codes, fault.CodeInvalidHref)
	})

	t.Run("malformed href is distinct from missing", func(t *testing.T) {
		doc := validLink()
		doc["href"] = "not a uri"
		codes := codesOf(v.LinkFaults(doc))
		assert.Contains(t, codes, fault.CodeInvalidHref)
		assert.NotContains(t, codes, fault.CodeNoHref)
	})

	t.Run("malformed media type", func(t *testing.T) {
		doc := validLink()
		doc["mediaType"] = "png"
		assert.Contains(t, codesOf(v.LinkFaults(doc)), fault.CodeInvalidMediaType)
	})

	t.Run("non-link type is critical", func(t *testing.T) {
		assert.Contains(t, codesOf(v.LinkFaults(validNote())), fault.CodeUnexpectedType)
	})
}

func TestConfigDefaults(t *testing.T) {
	v := New(Config{})
	assert.Equal(t, fault.SeverityMust, v.Config().RejectSeverity)
	assert.Equal(t, DefaultMaxDepth, v.Config().MaxDepth)
	assert.NotNil(t, v.Config().Logger)
	assert.False(t, v.Config().ReifyRefs)
}
