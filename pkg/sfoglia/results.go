package sfoglia

// PagedViewAction represents user actions that can occur within a
// PagedView component.
type PagedViewAction int

const (
	PagedViewActionNone      PagedViewAction = iota // No action taken yet
	PagedViewActionSelected                         // User selected the current page (A button)
	PagedViewActionTriggered                        // User triggered the action button (X button)
	PagedViewActionCancelled                        // User cancelled/went back (B button)
)

// PagedViewResult is the return value of the PagedView component.
type PagedViewResult struct {
	Action PagedViewAction
	Page   int // Page the viewport rested on when the component exited
}
