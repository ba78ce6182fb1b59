// Package output renders driftwood's operator-facing output and exit codes.
//
// A Printer writes either styled, human-readable text or JSON:
//
//	printer := output.NewPrinter(cmd.OutOrStdout(), jsonMode, mode.Enabled(cmd.OutOrStdout())).
//		WithStderr(cmd.ErrOrStderr())
//
//	printer.Step("Processing: %s", title)  // progress line, suppressed in JSON mode
//	printer.Done("Created: %s", fileName)  // success line, suppressed in JSON mode
//	printer.Warn("front matter of %s does not parse", fileName)
//	printer.Error(err)
//	printer.WriteJSON(summary)
//
// Colors are dropped when the writer is not a terminal or --color=never.
//
// # Exit Codes
//
//	output.ExitSuccess     // 0
//	output.ExitUserError   // 1: bad arguments, unreadable export, invalid config or template
//	output.ExitSystemError // 2: filesystem failures, posts that could not be written
package output
