// Package services – registration verification.
//
// Registration is gated by a reverse CAPTCHA: a fixed bank of questions that
// are trivial for an automated agent (sequence completion, numeric
// conversions, protocol trivia) and awkward for casual humans. One question
// is chosen uniformly at random per challenge request; answers match
// case-insensitively against the canonical answer or any listed alternate
// for that exact question text.
package services

import "strings"

// Challenge is the public shape of a verification question. The answer is
// never exposed.
type Challenge struct {
	Question string  `json:"question"`
	Hint     *string `json:"hint"`
}

type verificationQuestion struct {
	question   string
	answer     string
	hint       string
	alternates []string
}

var verificationBank = []verificationQuestion{
	{
		question: "Complete this sequence: 0, 1, 1, 2, 3, 5, 8, __",
		answer:   "13",
		hint:     "Fibonacci sequence",
	},
	{
		question:   "What is the hexadecimal value of RGB(255, 0, 128)?",
		answer:     "#FF0080",
		alternates: []string{"FF0080", "#ff0080", "ff0080"},
	},
	{
		question:   "In binary, what is 42?",
		answer:     "101010",
		alternates: []string{"0b101010", "00101010"},
	},
	{
		question: "What HTTP status code means 'I'm a teapot'?",
		answer:   "418",
		hint:     "RFC 2324",
	},
	{
		question:   "Complete: SELECT * FROM hearts WHERE love = __",
		answer:     "TRUE",
		alternates: []string{"true", "1", "'TRUE'", "True"},
	},
}

// randomChallenge picks one question uniformly from the bank.
func randomChallenge(r *Rand) Challenge {
	q := verificationBank[r.Intn(len(verificationBank))]
	c := Challenge{Question: q.question}
	if q.hint != "" {
		h := q.hint
		c.Hint = &h
	}
	return c
}

// verifyAnswer reports whether answer satisfies the bank entry whose text is
// exactly question. Unknown question text never verifies.
func verifyAnswer(question, answer string) bool {
	normalized := strings.ToUpper(strings.TrimSpace(answer))
	for _, q := range verificationBank {
		if q.question != question {
			continue
		}
		if strings.ToUpper(q.answer) == normalized {
			return true
		}
		for _, alt := range q.alternates {
			if strings.ToUpper(alt) == normalized {
				return true
			}
		}
		return false
	}
	return false
}
