package ui

import "github.com/fatih/color"

// General Purpose Colors
var (
	InfoColor    = color.New(color.FgCyan).SprintFunc()
	SuccessColor = color.New(color.FgGreen).SprintFunc()
	WarningColor = color.New(color.FgYellow).SprintFunc()
	ErrorColor   = color.New(color.FgRed).SprintFunc()
	PromptColor  = color.New(color.FgMagenta).SprintFunc()
	CodeColor    = color.New(color.FgWhite).SprintFunc()   // For shell snippets
	DetailColor  = color.New(color.FgHiBlack).SprintFunc() // For file paths and other context
)

// Alias Specific Colors
var (
	AliasNameColor = color.New(color.FgYellow).SprintFunc()
	AliasPathColor = color.New(color.FgWhite).SprintFunc()
)

// Header Colors
var (
	HeaderColor = color.New(color.FgGreen, color.Bold).SprintFunc()
)

// Diff Colors
var (
	DiffAddedColor   = color.New(color.FgGreen).SprintFunc()
	DiffRemovedColor = color.New(color.FgRed).SprintFunc()
)
