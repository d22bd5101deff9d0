// Package point provides Emacs-style motion and editing primitives expressed
// in points (flat cluster offsets) and positions over a host document.
//
// Every function takes its Host explicitly and keeps no state between calls;
// the only memory is a Mark value the caller holds. Numeric arguments are
// clamped into the document rather than rejected, so no function returns an
// error. The caller must supply a non-nil Host.
package point
