// Package ui provides semantic text formatting for CLI output.
//
// Formatters colorize content when the terminal supports it. When NO_COLOR
// is set or colors are unavailable, text decorations (backticks, quotes)
// are used instead so the meaning survives in plain text.
//
//	ui.Code.Sprint("ppc push text")       // Commands
//	ui.Link.Sprint("https://pwpush.com")  // URLs and hosts
//	ui.Success.Sprint("✓")                 // Success indicators
//	ui.Error.Sprint("✗")                   // Error indicators
//	ui.Highlight.Sprint("user@example.com") // User values
//	ui.Muted.Sprint("masked")              // De-emphasized text
//
// HTTPStatus renders a status code colored by its class.
package ui
