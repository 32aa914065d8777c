package drag

import (
	"strconv"
	"strings"
)

const handlePrefix = "dragline-handle:"

// HandleID returns the identity a rendered handle carries for the line
// starting at lineStart.
func HandleID(lineStart int) string {
	return handlePrefix + strconv.Itoa(lineStart)
}

// ParseHandleID extracts the line-start offset from a handle identity.
func ParseHandleID(id string) (int, bool) {
	raw, ok := strings.CutPrefix(id, handlePrefix)
	if !ok || raw == "" {
		return 0, false
	}
	off, err := strconv.Atoi(raw)
	if err != nil || off < 0 {
		return 0, false
	}
	return off, true
}
