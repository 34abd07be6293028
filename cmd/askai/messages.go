package main

import "time"

// answersMsg is returned by the tea.Cmd that runs the completion request.
type answersMsg struct {
	answers  []string
	duration time.Duration
	err      error
}
