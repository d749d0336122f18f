// Package viz draws function charts in the terminal.
//
//   - [Chart]: f over an interval, optionally with a highlighted root
//   - [Canvas]: Braille-based pixel canvas the charts are drawn on
//   - [TermViewer]: full-screen Bubble Tea view that blocks until closed
//   - [InlineViewer]: asciigraph rendering printed in place
//
// # Key Bindings
//
//	q, Esc, Enter - close the chart
//
// Plotting intervals come from [Interval], which pads the smallest and
// largest of a set of values so that every input and the root stay visible.
package viz
