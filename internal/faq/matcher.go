package faq

import (
	"strings"

	"github.com/samber/lo"
)

// Match возвращает первую запись, чьё ключевое слово входит в ввод в
// нижнем регистре. Вхождение по подстроке: "open" ловит и "opening".
func (kb *KnowledgeBase) Match(input string) (Entry, bool) {
	text := strings.ToLower(input)

	for _, e := range kb.entries {
		if lo.ContainsBy(e.Keywords, func(k string) bool {
			return k != "" && strings.Contains(text, k)
		}) {
			e.Keywords = append([]string(nil), e.Keywords...)
			return e, true
		}
	}

	return Entry{}, false
}

// Answer: Match, но только текст ответа.
func (kb *KnowledgeBase) Answer(input string) (string, bool) {
	e, ok := kb.Match(input)
	return e.Answer, ok
}
