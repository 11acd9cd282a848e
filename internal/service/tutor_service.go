package service

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"regexp"
	"strings"
	"time"

	"lingua_tutor_backend/internal/config"
)

// TutorService 调用 OpenAI 兼容接口产生辅导回复，并从回复尾部的
// JSON 块里提取本回合练到的技能。调度核心只消费提取结果，
// 不关心对话内容本身。
type TutorService struct {
	config config.TutorConfig
	client *http.Client
}

func NewTutorService(cfg config.TutorConfig) *TutorService {
	return &TutorService{
		config: cfg,
		client: &http.Client{Timeout: 40 * time.Second},
	}
}

type TutorMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// ExtractedSkill 模型标注的技能使用证据，quality 0..5
type ExtractedSkill struct {
	SkillID string `json:"skill_id"`
	Quality int    `json:"quality"`
}

type chatCompletionRequest struct {
	Model       string         `json:"model"`
	Messages    []TutorMessage `json:"messages"`
	Temperature float64        `json:"temperature"`
}

type chatCompletionResponse struct {
	Choices []struct {
		Message TutorMessage `json:"message"`
	} `json:"choices"`
	Error *struct {
		Message string `json:"message"`
	} `json:"error,omitempty"`
}

var skillBlockRE = regexp.MustCompile(`(?s)\{\s*"skills"\s*:\s*\[.*\]\s*\}\s*$`)

// Chat 一轮辅导对话。未配置 API key 时走本地兜底回复，
// 保证调度引擎在离线环境也能运转。
func (s *TutorService) Chat(context, level, message string, history []TutorMessage) (string, []ExtractedSkill, error) {
	if strings.TrimSpace(s.config.APIKey) == "" {
		reply, skills := fallbackReply(message)
		return reply, skills, nil
	}

	messages := make([]TutorMessage, 0, len(history)+2)
	messages = append(messages, TutorMessage{Role: "system", Content: systemPrompt(context, level)})
	messages = append(messages, history...)
	messages = append(messages, TutorMessage{Role: "user", Content: message})

	body, err := json.Marshal(chatCompletionRequest{
		Model:       s.config.Model,
		Messages:    messages,
		Temperature: 0.4,
	})
	if err != nil {
		return "", nil, err
	}

	req, err := http.NewRequest("POST", s.config.BaseURL+"/chat/completions", bytes.NewBuffer(body))
	if err != nil {
		return "", nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+s.config.APIKey)

	resp, err := s.client.Do(req)
	if err != nil {
		return "", nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		raw, _ := io.ReadAll(resp.Body)
		return "", nil, fmt.Errorf("tutor API error (status %d): %s", resp.StatusCode, string(raw))
	}

	var completion chatCompletionResponse
	if err := json.NewDecoder(resp.Body).Decode(&completion); err != nil {
		return "", nil, err
	}
	if completion.Error != nil {
		return "", nil, fmt.Errorf("tutor API error: %s", completion.Error.Message)
	}
	if len(completion.Choices) == 0 {
		return "", nil, fmt.Errorf("tutor API returned no choices")
	}

	reply, skills := extractReplyAndSkills(completion.Choices[0].Message.Content)
	return reply, skills, nil
}

func systemPrompt(context, level string) string {
	return fmt.Sprintf(`You are an AI language tutor.
Conversation-first: teach through realistic dialogue, not lectures.
Context: %s
Level: %s

Rules:
- Keep turns short and natural.
- Correct mistakes gently (show a better version + a quick tip).
- Ask a follow-up question to keep the conversation moving.
- Prefer real-world phrasing and cultural appropriateness.
- If user is stuck, offer 2-3 options they can choose from.
- At the end of your message, output a JSON block on a new line:

{"skills":[{"skill_id":"...","quality":0-5}...]}

Where 'skill_id' are concise labels like:
- phrase:check_in
- grammar:past_tense
- vocab:overweight_bag
Quality meaning:
5 perfect, 4 good, 3 okay, 2 weak, 1 wrong, 0 no attempt.
`, context, level)
}

// extractReplyAndSkills 剥离回复尾部的技能 JSON 块；解析失败时
// 整段内容按纯回复处理
func extractReplyAndSkills(content string) (string, []ExtractedSkill) {
	content = strings.TrimSpace(content)
	loc := skillBlockRE.FindStringIndex(content)
	if loc == nil {
		return content, nil
	}

	var block struct {
		Skills []ExtractedSkill `json:"skills"`
	}
	if err := json.Unmarshal([]byte(content[loc[0]:]), &block); err != nil {
		return content, nil
	}

	skills := make([]ExtractedSkill, 0, len(block.Skills))
	for _, sk := range block.Skills {
		if sk.SkillID == "" || sk.Quality < 0 || sk.Quality > 5 {
			continue
		}
		skills = append(skills, sk)
	}
	return strings.TrimSpace(content[:loc[0]]), skills
}

// fallbackReply 无模型可用时的本地回复，附带朴素的技能标注，
// 保证掌握度更新链路不断
func fallbackReply(message string) (string, []ExtractedSkill) {
	var skills []ExtractedSkill
	low := strings.ToLower(message)
	if strings.Contains(low, "bag") || strings.Contains(low, "overweight") {
		skills = append(skills, ExtractedSkill{SkillID: "vocab:overweight_bag", Quality: 4})
	}
	if !strings.Contains(low, "please") {
		skills = append(skills, ExtractedSkill{SkillID: "phrase:polite_request", Quality: 2})
	}
	if len(skills) == 0 {
		skills = append(skills, ExtractedSkill{SkillID: "phrase:basic_response", Quality: 3})
	}

	reply := "Let's do this in a real situation.\n" +
		"Try: 'Hi, I'm checking in for my flight. My bag might be overweight - what are my options?'\n" +
		"Now you: ask if you can move items to a carry-on."
	return reply, skills
}
