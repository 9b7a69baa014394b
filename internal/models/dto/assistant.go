package dto

import "strings"

type AssistantQuery struct {
	Text string `json:"text"`
}

func (q *AssistantQuery) Sanitize() {
	q.Text = strings.TrimSpace(q.Text)
}

type AssistantAnswer struct {
	Text string `json:"text"`
}
