// ABOUTME: Contract for the bounded cache of recently toggled reading-mode URLs
// ABOUTME: Lets the toggle engine stay independent of the eviction policy

package interfaces

// History is a bounded set of wrapped reading-mode URLs.
// Implementations must be safe for concurrent use.
type History interface {
	// Contains reports whether url is held.
	Contains(url string) bool

	// Insert adds url if absent. Re-inserting a held url does not change its position.
	Insert(url string)

	// Remove drops url if present.
	Remove(url string)

	// Len returns the number of held entries.
	Len() int
}
