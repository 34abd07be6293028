package main

import "github.com/charmbracelet/lipgloss"

// Centralized style definitions for the CLI output.
var (
	// Status messages after persistence.
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("2")) // green

	// Answer presentation.
	answerHeaderStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("6")) // cyan
	dimStyle          = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))            // gray/dim

	// Spinner / animation styles.
	spinnerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("5")) // magenta
)
