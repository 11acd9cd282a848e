package service

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"lingua_tutor_backend/internal/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractReplyAndSkills_TrailingBlock(t *testing.T) {
	content := "Nice try! A better version: \"Could I check in, please?\"\n" +
		"What time does your flight leave?\n\n" +
		`{"skills":[{"skill_id":"phrase:check_in","quality":4},{"skill_id":"grammar:past_tense","quality":2}]}`

	reply, skills := extractReplyAndSkills(content)

	assert.NotContains(t, reply, `"skills"`)
	assert.Contains(t, reply, "What time does your flight leave?")
	require.Len(t, skills, 2)
	assert.Equal(t, ExtractedSkill{SkillID: "phrase:check_in", Quality: 4}, skills[0])
	assert.Equal(t, ExtractedSkill{SkillID: "grammar:past_tense", Quality: 2}, skills[1])
}

func TestExtractReplyAndSkills_FiltersInvalidEntries(t *testing.T) {
	content := "Good.\n" +
		`{"skills":[{"skill_id":"","quality":4},{"skill_id":"vocab:allergy","quality":9},{"skill_id":"vocab:refund","quality":0}]}`

	_, skills := extractReplyAndSkills(content)
	require.Len(t, skills, 1)
	assert.Equal(t, "vocab:refund", skills[0].SkillID)
}

func TestExtractReplyAndSkills_NoBlockReturnsWholeContent(t *testing.T) {
	content := "Just a plain answer without annotations."
	reply, skills := extractReplyAndSkills(content)
	assert.Equal(t, content, reply)
	assert.Nil(t, skills)
}

func TestExtractReplyAndSkills_MalformedBlockTreatedAsPlainReply(t *testing.T) {
	content := "Answer.\n" + `{"skills":[{"skill_id":}]}`
	reply, skills := extractReplyAndSkills(content)
	assert.Equal(t, content, reply)
	assert.Nil(t, skills)
}

func TestFallbackReply_TagsSkillsFromMessage(t *testing.T) {
	_, skills := fallbackReply("My bag is overweight, please help")
	require.Len(t, skills, 1)
	assert.Equal(t, "vocab:overweight_bag", skills[0].SkillID)

	_, skills = fallbackReply("hello there")
	ids := []string{}
	for _, sk := range skills {
		ids = append(ids, sk.SkillID)
	}
	assert.Contains(t, ids, "phrase:polite_request")

	reply, skills := fallbackReply("please")
	require.Len(t, skills, 1)
	assert.Equal(t, "phrase:basic_response", skills[0].SkillID)
	assert.NotEmpty(t, reply)
}

func TestChat_NoAPIKeyUsesLocalFallback(t *testing.T) {
	svc := NewTutorService(config.TutorConfig{BaseURL: "http://unreachable.invalid", APIKey: ""})

	reply, skills, err := svc.Chat("Airport", "Beginner", "my bag is too heavy", nil)
	require.NoError(t, err)
	assert.NotEmpty(t, reply)
	assert.NotEmpty(t, skills)
}

func TestChat_ParsesCompletionFromAPI(t *testing.T) {
	var gotAuth string
	var gotReq chatCompletionRequest
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotReq))

		resp := map[string]interface{}{
			"choices": []map[string]interface{}{
				{"message": map[string]string{
					"role":    "assistant",
					"content": "Well done!\n" + `{"skills":[{"skill_id":"phrase:table_for_two","quality":5}]}`,
				}},
			},
		}
		json.NewEncoder(w).Encode(resp)
	}))
	defer server.Close()

	svc := NewTutorService(config.TutorConfig{BaseURL: server.URL, APIKey: "test-key", Model: "test-model"})

	reply, skills, err := svc.Chat("Restaurant", "Beginner", "A table for two, please", []TutorMessage{
		{Role: "user", Content: "hi"},
		{Role: "assistant", Content: "hello"},
	})
	require.NoError(t, err)

	assert.Equal(t, "Well done!", reply)
	require.Len(t, skills, 1)
	assert.Equal(t, "phrase:table_for_two", skills[0].SkillID)

	assert.Equal(t, "Bearer test-key", gotAuth)
	assert.Equal(t, "test-model", gotReq.Model)
	// system + 两条历史 + 当前用户消息
	require.Len(t, gotReq.Messages, 4)
	assert.Equal(t, "system", gotReq.Messages[0].Role)
	assert.Contains(t, gotReq.Messages[0].Content, "Context: Restaurant")
	assert.Equal(t, "A table for two, please", gotReq.Messages[3].Content)
}

func TestChat_APIErrorSurfaced(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
		w.Write([]byte(`{"error":{"message":"rate limited"}}`))
	}))
	defer server.Close()

	svc := NewTutorService(config.TutorConfig{BaseURL: server.URL, APIKey: "test-key"})
	_, _, err := svc.Chat("Airport", "Beginner", "hi", nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "429")
}
