// internal/app/system/navigation/stack.go
package navigation

// Root is the path every history stack starts from and never pops past.
const Root = "/"

// maxDepth bounds the history so the session cookie stays small. When the
// bound is hit the oldest non-root entry is dropped.
const maxDepth = 32

// Stack is a linear, in-order history of visited paths. The first entry is
// always Root; the last entry is the current location. There is no forward
// history: going back discards the popped entry.
type Stack []string

// NewStack returns a history positioned at Root.
func NewStack() Stack {
	return Stack{Root}
}

// normalize repairs a stack read from an untrusted session value so every
// other method can assume the Root invariant holds.
func (s Stack) normalize() Stack {
	if len(s) == 0 || s[0] != Root {
		return append(Stack{Root}, s...)
	}
	return s
}

// Current returns the path at the top of the stack.
func (s Stack) Current() string {
	s = s.normalize()
	return s[len(s)-1]
}

// CanGoBack reports whether a Back call would move anywhere.
func (s Stack) CanGoBack() bool {
	return len(s.normalize()) > 1
}

// Push appends a visited path unconditionally: duplicates are allowed, and
// revisiting a page creates a new entry rather than restoring any earlier
// position. Callers that don't want reload duplicates skip the call
// themselves (see Track).
func (s Stack) Push(path string) Stack {
	s = s.normalize()
	if path == "" {
		return s
	}
	s = append(s, path)
	if len(s) > maxDepth {
		// Keep Root, drop the entry after it.
		s = append(s[:1], s[2:]...)
	}
	return s
}

// Back pops the current entry and returns the new current path. The moved
// flag is false when the stack is already at Root, in which case the stack
// is returned unchanged and the caller should not treat it as a navigation.
func (s Stack) Back() (Stack, string, bool) {
	s = s.normalize()
	if len(s) == 1 {
		return s, s[0], false
	}
	s = s[:len(s)-1]
	return s, s[len(s)-1], true
}
