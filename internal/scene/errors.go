package scene

import (
	"errors"
	"fmt"
)

var (
	// ErrDuplicateName is returned when a creation call reuses a node
	// name already present in the container.
	ErrDuplicateName = errors.New("duplicate node name")
	// ErrUnknownNode is returned when an operation targets a node the
	// container does not own.
	ErrUnknownNode = errors.New("node not in container")
	// ErrNotCurve is returned when a follow-path target is not a curve
	// node.
	ErrNotCurve = errors.New("follow-path target is not a curve")
	// ErrNoTrack is returned by SetTrackMode when the property has no
	// track yet.
	ErrNoTrack = errors.New("no track for property")
)

// ContainerError wraps a failed scene container operation. Container
// failures are fatal for the rebuild that triggered them; partially
// created nodes are left for the next rebuild's teardown pass.
type ContainerError struct {
	Op   string
	Node string
	Err  error
}

func (e *ContainerError) Error() string {
	return fmt.Sprintf("scene: %s %q: %v", e.Op, e.Node, e.Err)
}

func (e *ContainerError) Unwrap() error { return e.Err }
