package api

import (
	"fmt"
)

// An Explainer collects information about a lookup and can present it in the form of
// a fairly verbose human readable explanation.
type Explainer interface {
	fmt.Stringer

	// AcceptFound accepts information that a value was found for a given key
	AcceptFound(key any, value any)

	// AcceptLocationNotFound accepts information that a location was not found. The actual
	// location is determined by the pushed location node
	AcceptLocationNotFound()

	// AcceptMergeSource accepts information about the source of the current merge options
	AcceptMergeSource(mergeSource string)

	// AcceptNotFound accepts information that a key was not found
	AcceptNotFound(key any)

	// AcceptMergeResult accepts information about the result of a merge
	AcceptMergeResult(value any)

	// AcceptText accepts arbitrary text to be injected into the explanation
	AcceptText(text string)

	PushDataProvider(pvd DataProvider)

	PushInterpolation(expr string)

	PushLocation(loc Location)

	PushLookup(req Request)

	PushMerge(mrg MergeStrategy)

	PushSegment(seg any)

	PushSubLookup(name Name)

	// Pop pops an explainer node from the stack of explanations
	Pop()
}
