package faq

import (
	"strings"

	"github.com/samber/lo"
)

// Entry: пара вопрос/ответ. Question только для показа.
type Entry struct {
	Question string
	Answer   string
	Keywords []string
}

// KnowledgeBase неизменяема после создания, порядок записей = приоритет.
type KnowledgeBase struct {
	entries []Entry
}

func NewKnowledgeBase(entries []Entry) *KnowledgeBase {
	return &KnowledgeBase{
		entries: lo.Map(entries, func(e Entry, _ int) Entry {
			return Entry{
				Question: e.Question,
				Answer:   e.Answer,
				Keywords: lo.Map(e.Keywords, func(k string, _ int) string {
					return strings.ToLower(k)
				}),
			}
		}),
	}
}

// Entries возвращает копию в порядке приоритета.
func (kb *KnowledgeBase) Entries() []Entry {
	return lo.Map(kb.entries, func(e Entry, _ int) Entry {
		e.Keywords = append([]string(nil), e.Keywords...)
		return e
	})
}

func (kb *KnowledgeBase) Len() int {
	return len(kb.entries)
}
