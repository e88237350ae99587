package notify

import (
	"fmt"
	"time"

	"pomodoro/internal/core/model"
	"pomodoro/internal/core/pomodoro"
)

// Message is the user-facing content of a completion alert.
type Message struct {
	Title string
	Body  string
}

// MessageFor builds the alert for a finished session.
func MessageFor(schedule model.Schedule, completion pomodoro.Completion) Message {
	schedule = schedule.Normalized()
	switch completion.Finished {
	case pomodoro.SessionWork:
		if completion.Next == pomodoro.SessionLongBreak {
			return Message{
				Title: "Work Session Over!",
				Body:  fmt.Sprintf("Time for a long break (%d min).", minutes(schedule.LongBreak)),
			}
		}
		return Message{
			Title: "Work Session Over!",
			Body:  fmt.Sprintf("Time for a short break (%d min).", minutes(schedule.ShortBreak)),
		}
	case pomodoro.SessionShortBreak:
		return Message{
			Title: "Break Over!",
			Body:  fmt.Sprintf("Time to get back to focus (%d min).", minutes(schedule.Work)),
		}
	case pomodoro.SessionLongBreak:
		return Message{
			Title: "Long Break Over!",
			Body:  fmt.Sprintf("Ready for the next focus session? (%d min).", minutes(schedule.Work)),
		}
	default:
		return Message{Title: "Session Over!"}
	}
}

func minutes(duration time.Duration) int {
	return int(duration / time.Minute)
}
