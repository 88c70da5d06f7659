package ui

import (
	"ghscout/internal/logic"
)

// searchResolvedMsg carries a finished account search back to the event loop
type searchResolvedMsg struct {
	outcome logic.SearchOutcome
}

// reposResolvedMsg carries a finished repository listing back to the event loop
type reposResolvedMsg struct {
	outcome logic.RepositoryOutcome
}

// helpPagerMsg contains the result of a help pager command
type helpPagerMsg struct {
	err error
}

// pauseRenderingMsg signals to pause Bubble Tea rendering
type pauseRenderingMsg struct{}

// resumeRenderingMsg signals to resume Bubble Tea rendering
type resumeRenderingMsg struct{}
