// Package ui holds the lipgloss styles shared by the pager, the full-screen
// browser and the CLI diagnostics.
//
// Styles are built from a renderer bound to the destination writer, so the
// same code emits ANSI colour on a terminal and plain text when output is
// redirected:
//
//	r := ui.NewRenderer(os.Stdout)
//	fmt.Fprint(os.Stdout, ui.PromptStyle(r).Render(ui.DefaultPrompt))
package ui
