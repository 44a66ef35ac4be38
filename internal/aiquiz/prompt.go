package aiquiz

import (
	"fmt"
	"strings"

	"github.com/saulo-duarte/skillverse-api/internal/course"
)

const (
	defaultCount      = 3
	defaultDifficulty = "medium"
)

const systemPrompt = `
You write multiple-choice questions for an online course about plants and their uses.

Rules:
1. Ask only about the module content you are given. Do not invent facts outside it.
2. Every question has exactly four options and one correct answer.
3. Options must be similar in length and style; distractors must be plausible.
4. Never reveal the answer in the question text.

Reply with pure JSON, no text around it:

[
  {
    "question": "<question text>",
    "options": ["...", "...", "...", "..."],
    "correct_option": "A | B | C | D",
    "explanation": "<one or two sentences on why the answer is right>"
  }
]
`

func BuildUserPrompt(m *course.ModuleDetail, req DraftRequest) string {
	count := req.Count
	if count <= 0 {
		count = defaultCount
	}
	difficulty := req.Difficulty
	if difficulty == "" {
		difficulty = defaultDifficulty
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Write %d %s questions about the module %q", count, difficulty, m.Name)
	if m.ScientificName != "" {
		fmt.Fprintf(&b, " (%s)", m.ScientificName)
	}
	b.WriteString(".\n\nModule content:\n")
	if m.Description != "" {
		fmt.Fprintf(&b, "Description: %s\n", m.Description)
	}
	if m.FunFacts != "" {
		fmt.Fprintf(&b, "Fun facts: %s\n", m.FunFacts)
	}
	for _, p := range m.Parts {
		fmt.Fprintf(&b, "Part %s: %s\n", p.Name, p.Description)
	}
	for _, bn := range m.Benefits {
		fmt.Fprintf(&b, "Benefit %s: %s\n", bn.Name, bn.Description)
	}
	if req.Notes != "" {
		fmt.Fprintf(&b, "\nAuthor notes: %s\n", req.Notes)
	}
	return b.String()
}
