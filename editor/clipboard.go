package editor

// Clipboard provides editor-level clipboard integration.
//
// Errors must not crash the UI; a failed read leaves the buffer untouched.
type Clipboard interface {
	ReadText() (string, error)
	WriteText(s string) error
}
