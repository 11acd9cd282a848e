// Package catalog 提供静态技能目录：语境/级别 -> 候选技能，以及场景开场白。
// 目录由运营内容决定，调度核心只消费不拥有。
package catalog

import "strings"

type Level int

const (
	Beginner Level = iota
	Intermediate
	Advanced
)

// ParseLevel 未知级别按 Beginner 处理（fail-soft）
func ParseLevel(s string) Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "intermediate":
		return Intermediate
	case "advanced":
		return Advanced
	default:
		return Beginner
	}
}

// Entry 目录中的一个可练习技能，切片顺序即优先级
type Entry struct {
	SkillID  string
	MinLevel Level
}

var entries = map[string][]Entry{
	"Airport": {
		{SkillID: "phrase:check_in", MinLevel: Beginner},
		{SkillID: "vocab:overweight_bag", MinLevel: Beginner},
		{SkillID: "phrase:rebook_flight", MinLevel: Intermediate},
	},
	"Restaurant": {
		{SkillID: "phrase:table_for_two", MinLevel: Beginner},
		{SkillID: "vocab:allergy", MinLevel: Beginner},
		{SkillID: "phrase:order_modification", MinLevel: Intermediate},
	},
	"Classroom": {
		{SkillID: "phrase:ask_clarification", MinLevel: Beginner},
		{SkillID: "phrase:request_extension", MinLevel: Intermediate},
		{SkillID: "vocab:assignment", MinLevel: Beginner},
	},
	"Office": {
		{SkillID: "phrase:status_update", MinLevel: Beginner},
		{SkillID: "phrase:disagree_politely", MinLevel: Intermediate},
		{SkillID: "phrase:schedule_meeting", MinLevel: Beginner},
	},
	"Shopping": {
		{SkillID: "phrase:return_item", MinLevel: Beginner},
		{SkillID: "vocab:refund", MinLevel: Beginner},
		{SkillID: "phrase:ask_alternative", MinLevel: Intermediate},
	},
}

var scenarios = map[string]string{
	"Airport":    "You are at the check-in counter. Your bag is overweight. Ask what you can do.",
	"Restaurant": "You want a table for two and have dietary restrictions. Make the request.",
	"Classroom":  "You didn't understand the assignment. Ask the professor for clarification.",
	"Office":     "You need to give a status update to your manager.",
	"Shopping":   "You want to return an item without a receipt. Explain your situation.",
}

// Contexts 目录中已知的全部语境
func Contexts() []string {
	return []string{"Airport", "Restaurant", "Classroom", "Office", "Shopping"}
}

// SkillsFor 返回语境下与级别兼容的候选技能ID，按目录优先级排序。
// 未知语境返回空，不是错误。
func SkillsFor(context string, level Level) []string {
	out := []string{}
	for _, e := range entries[context] {
		if e.MinLevel <= level {
			out = append(out, e.SkillID)
		}
	}
	return out
}

// ScenarioPrompt 生成场景开场白。纯格式化，相同输入必得相同输出。
// focusSkill 非空时附带点名要练的技能（计划里的第一条 due/weak 项）。
func ScenarioPrompt(context, focusSkill string) string {
	base, ok := scenarios[context]
	if !ok {
		base = "Let's practice an everyday conversation."
	}
	if focusSkill == "" {
		return base
	}
	return base + " Try to use \"" + HumanizeSkillID(focusSkill) + "\" during the conversation."
}

// HumanizeSkillID "phrase:check_in" -> "check in"
func HumanizeSkillID(skillID string) string {
	s := skillID
	if i := strings.IndexByte(s, ':'); i >= 0 {
		s = s[i+1:]
	}
	return strings.ReplaceAll(s, "_", " ")
}
