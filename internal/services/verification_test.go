package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVerifyAnswer_CanonicalAndAlternates(t *testing.T) {
	cases := []struct {
		name     string
		question string
		answer   string
		want     bool
	}{
		{"canonical exact", "Complete this sequence: 0, 1, 1, 2, 3, 5, 8, __", "13", true},
		{"surrounding whitespace", "Complete this sequence: 0, 1, 1, 2, 3, 5, 8, __", "  13  ", true},
		{"hex lowercase alternate", "What is the hexadecimal value of RGB(255, 0, 128)?", "ff0080", true},
		{"hex with hash", "What is the hexadecimal value of RGB(255, 0, 128)?", "#FF0080", true},
		{"binary prefix alternate", "In binary, what is 42?", "0b101010", true},
		{"teapot", "What HTTP status code means 'I'm a teapot'?", "418", true},
		{"sql mixed case", "Complete: SELECT * FROM hearts WHERE love = __", "true", true},
		{"sql numeric alternate", "Complete: SELECT * FROM hearts WHERE love = __", "1", true},
		{"wrong answer", "What HTTP status code means 'I'm a teapot'?", "200", false},
		{"answer from another question", "In binary, what is 42?", "418", false},
		{"unknown question", "What is love?", "baby don't hurt me", false},
		{"empty answer", "What HTTP status code means 'I'm a teapot'?", "", false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, verifyAnswer(tc.question, tc.answer))
		})
	}
}

func TestRandomChallenge_DrawsFromBankWithoutAnswers(t *testing.T) {
	r := NewRand(42)
	seen := map[string]bool{}
	for i := 0; i < 100; i++ {
		c := randomChallenge(r)
		found := false
		for _, q := range verificationBank {
			if q.question == c.Question {
				found = true
				if q.hint == "" {
					assert.Nil(t, c.Hint)
				} else {
					assert.NotNil(t, c.Hint)
					assert.Equal(t, q.hint, *c.Hint)
				}
			}
		}
		assert.True(t, found, "question not from bank: %s", c.Question)
		seen[c.Question] = true
	}
	// 100 uniform draws over a 5-entry bank should hit every entry.
	assert.Len(t, seen, len(verificationBank))
}
