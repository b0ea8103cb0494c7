package focus

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"pgregory.net/rapid"
)

func TestScore(t *testing.T) {
	cases := []struct {
		name          string
		total         int
		interruptions int
		pause         int
		want          int
	}{
		{"zero duration", 0, 3, 100, 0},
		{"negative duration", -10, 0, 0, 0},
		{"perfect session", 1500, 0, 0, 100},
		{"one interruption in a short session", 600, 1, 0, 94},
		{"long session with pauses", 3600, 2, 600, 63},
		{"pause longer than session", 600, 0, 900, 0},
		{"penalty drives score negative", 3600, 30, 0, 0},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, Score(tc.total, tc.interruptions, tc.pause))
		})
	}
}

func TestScoreIsClamped(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		total := rapid.IntRange(-10_000, 200_000).Draw(t, "total")
		interruptions := rapid.IntRange(-50, 10_000).Draw(t, "interruptions")
		pause := rapid.IntRange(-10_000, 200_000).Draw(t, "pause")

		got := Score(total, interruptions, pause)

		if got < 0 || got > 100 {
			t.Fatalf("score %d out of range for (%d, %d, %d)", got, total, interruptions, pause)
		}
	})
}

func TestScoreUninterrupted(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		total := rapid.IntRange(1, 1_000_000).Draw(t, "total")

		if got := Score(total, 0, 0); got != 100 {
			t.Fatalf("expected 100 for an uninterrupted %ds session, got %d", total, got)
		}
	})
}
