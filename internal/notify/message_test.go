package notify

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"pomodoro/internal/core/model"
	"pomodoro/internal/core/pomodoro"
)

func TestMessageFor(t *testing.T) {
	tests := []struct {
		name       string
		completion pomodoro.Completion
		want       Message
	}{
		{
			name:       "work before short break",
			completion: pomodoro.Completion{Finished: pomodoro.SessionWork, Next: pomodoro.SessionShortBreak, CompletedWorkSessions: 1},
			want:       Message{Title: "Work Session Over!", Body: "Time for a short break (5 min)."},
		},
		{
			name:       "work before long break",
			completion: pomodoro.Completion{Finished: pomodoro.SessionWork, Next: pomodoro.SessionLongBreak, CompletedWorkSessions: 4},
			want:       Message{Title: "Work Session Over!", Body: "Time for a long break (15 min)."},
		},
		{
			name:       "short break",
			completion: pomodoro.Completion{Finished: pomodoro.SessionShortBreak, Next: pomodoro.SessionWork},
			want:       Message{Title: "Break Over!", Body: "Time to get back to focus (25 min)."},
		},
		{
			name:       "long break",
			completion: pomodoro.Completion{Finished: pomodoro.SessionLongBreak, Next: pomodoro.SessionWork},
			want:       Message{Title: "Long Break Over!", Body: "Ready for the next focus session? (25 min)."},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, MessageFor(model.DefaultSchedule(), tt.completion))
		})
	}
}
