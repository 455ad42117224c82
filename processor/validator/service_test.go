package validator

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/c360studio/apcheck/fault"
	"github.com/c360studio/apcheck/validate"
)

func testService(t *testing.T) *Service {
	t.Helper()
	v := validate.New(validate.Config{
		Narrative: func(code fault.Code) (string, bool) { return string(code), true },
	})
	return New(DefaultConfig(), v, nil)
}

func rawDoc(t *testing.T, doc map[string]any) json.RawMessage {
	t.Helper()
	data, err := json.Marshal(doc)
	require.NoError(t, err)
	return data
}

func TestValidateRequestProfiles(t *testing.T) {
	s := testService(t)
	ctx := context.Background()

	note := map[string]any{
		"@context": "https://www.w3.org/ns/activitystreams",
		"id":       "https://example.com/notes/1",
		"type":     "Note",
	}

	t.Run("object profile accepts a clean note", func(t *testing.T) {
		resp := s.validateRequest(ctx, Request{Document: rawDoc(t, note), Profile: ProfileObject})
		assert.Empty(t, resp.Error)
		assert.True(t, resp.Valid)
		assert.Empty(t, resp.Faults)
	})

	t.Run("empty profile defaults to object", func(t *testing.T) {
		resp := s.validateRequest(ctx, Request{Document: rawDoc(t, note)})
		assert.True(t, resp.Valid)
	})

	t.Run("actor profile rejects a note", func(t *testing.T) {
		resp := s.validateRequest(ctx, Request{Document: rawDoc(t, note), Profile: ProfileActor})
		assert.False(t, resp.Valid)
		assert.NotEmpty(t, resp.Faults)
	})

	t.Run("activity profile", func(t *testing.T) {
		activity := map[string]any{
			"@context": "https://www.w3.org/ns/activitystreams",
			"id":       "https://example.com/activities/1",
			"type":     "Arrive",
			"summary":  "arrived",
			"actor":    "https://example.com/users/alyssa",
		}
		resp := s.validateRequest(ctx, Request{Document: rawDoc(t, activity), Profile: ProfileActivity})
		assert.True(t, resp.Valid)
	})

	t.Run("non-object document", func(t *testing.T) {
		resp := s.validateRequest(ctx, Request{Document: json.RawMessage(`"nope"`), Profile: ProfileObject})
		assert.False(t, resp.Valid)
		require.Len(t, resp.Faults, 1)
		assert.Equal(t, fault.CodeNotAnObject, resp.Faults[0].Code)
	})

	t.Run("unknown profile is a request error", func(t *testing.T) {
		resp := s.validateRequest(ctx, Request{Document: rawDoc(t, note), Profile: "actorish"})
		assert.NotEmpty(t, resp.Error)
		assert.False(t, resp.Valid)
	})

	t.Run("malformed document is a request error", func(t *testing.T) {
		resp := s.validateRequest(ctx, Request{Document: json.RawMessage(`{`)})
		assert.NotEmpty(t, resp.Error)
	})
}

func TestResponseShape(t *testing.T) {
	// A valid response still carries an empty faults array, never null.
	resp := newResponse(nil)
	data, err := json.Marshal(resp)
	require.NoError(t, err)
	assert.JSONEq(t, `{"valid":true,"faults":[]}`, string(data))
}
