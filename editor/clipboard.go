package editor

// Clipboard abstracts clipboard writes so hosts can plug in a system
// clipboard.
type Clipboard interface {
	WriteText(s string) error
}
