// Package tui contains the root model, the screen stack, and the two
// name screens.
//
// Allowed here:
// - screen implementations, navigation routing, chrome (header/status/footer)
// - store subscription lifecycle tied to screen mount/unmount
//
// Not allowed here:
// - the observable store itself (internal/store) or config IO (internal/config)
package tui
