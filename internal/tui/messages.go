package tui

// editSavedMsg reports the outcome of committing the draft
type editSavedMsg struct {
	err error
}

// printDoneMsg reports the outcome of rendering the PDF
type printDoneMsg struct {
	path string
	err  error
}
