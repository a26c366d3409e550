// Package ui provides styled output for signboard's one-shot commands.
//
// The interactive app lives in internal/tui. This package covers everything
// that prints and exits: command headers, success/failure/warning boxes,
// the overwrite confirmation for `config init`, and RenderOnce, which pushes
// a pre-rendered sign through Bubble Tea's renderer.
//
// Example:
//
//	p := ui.NewPrinter(cmd.OutOrStdout())
//	p.PrintHeader("Render", "signboard render", map[string]string{"Size": "640x320"})
//	if err != nil {
//	    p.PrintError("Render failed", err, []string{"Check the output directory exists"})
//	    return err
//	}
//	p.PrintSuccess("Sign rendered", map[string]string{"File": out})
//
// Boxes are sized from the terminal width via golang.org/x/term and clamped
// to a readable range.
package ui
