// Package scene models the host scene container the generator writes
// into: transform, mesh and curve nodes in a parent/child hierarchy,
// follow-path constraints, keyframe tracks and named groups.
//
// The Container interface is the narrow capability set the rig
// assembler and lifecycle manager depend on. Graph is the in-memory
// implementation used by the CLI, the exporters and the tests; a real
// rendering host can substitute its own implementation.
package scene

// Kind distinguishes the node flavors the container can create.
type Kind int

const (
	KindTransform Kind = iota // non-renderable carrier
	KindMesh                  // renderable surface
	KindCurve                 // path guide, never rendered
)

func (k Kind) String() string {
	switch k {
	case KindTransform:
		return "transform"
	case KindMesh:
		return "mesh"
	case KindCurve:
		return "curve"
	}
	return "unknown"
}

// Path is a closed one-parameter curve. The orbit package provides the
// only production implementation; tests substitute fixed shapes.
type Path interface {
	// PointXYZ maps a parameter in [0,1) to a position relative to the
	// owning curve node.
	PointXYZ(u float64) (x, y, z float64)
}

// Shape selects a mesh geometry primitive.
type Shape int

const (
	ShapeSphere Shape = iota
	ShapeAnnulus
)

// Geometry describes a mesh node's surface. Sphere uses Radius,
// Segments and Rings; Annulus uses Inner and Outer.
type Geometry struct {
	Shape           Shape
	Radius          float64
	Segments, Rings int
	Inner, Outer    float64
}

// Sphere returns a UV-sphere geometry at the reference resolution.
func Sphere(radius float64) Geometry {
	return Geometry{Shape: ShapeSphere, Radius: radius, Segments: 64, Rings: 32}
}

// Annulus returns a flat ring geometry swept between two radii.
func Annulus(inner, outer float64) Geometry {
	return Geometry{Shape: ShapeAnnulus, Inner: inner, Outer: outer}
}

// Resource is an opaque shared datum attached to nodes, typically an
// appearance handle. Resources are reference counted by the container
// and reclaimed when no node holds them.
type Resource interface {
	ID() string
}

// Node is one object in the scene hierarchy. Transform components are
// plain fields; the container owns the parent/child links.
type Node struct {
	Name     string
	Kind     Kind
	Location [3]float64
	Rotation [3]float64 // XYZ euler, radians
	Scale    [3]float64

	// Mesh nodes only.
	Geometry *Geometry

	// Curve nodes only.
	Curve        Path
	PathDuration int

	// Target curve of a follow-path constraint, nil when unconstrained.
	FollowTarget *Node

	Tracks []*Track

	parent   *Node
	children []*Node
}

// Parent returns the owning node, nil for roots.
func (n *Node) Parent() *Node { return n.parent }

// Children returns the directly owned nodes.
func (n *Node) Children() []*Node { return n.children }

// Track returns the track driving prop, or nil.
func (n *Node) Track(prop Property) *Track {
	for _, tr := range n.Tracks {
		if tr.Property == prop {
			return tr
		}
	}
	return nil
}

// WorldPosition evaluates the node's world-space position at a frame,
// resolving follow-path constraints and the parent chain. Rotation of
// ancestors is not applied; every rig this module builds keeps rotated
// nodes' children at the local origin, so positions stay exact.
func (n *Node) WorldPosition(frame float64) (x, y, z float64) {
	if n.FollowTarget != nil {
		return n.FollowTarget.pathPosition(frame)
	}
	x, y, z = n.Location[0], n.Location[1], n.Location[2]
	if n.parent != nil {
		px, py, pz := n.parent.WorldPosition(frame)
		x, y, z = x+px, y+py, z+pz
	}
	return x, y, z
}

// pathPosition is the world position a follower of this curve takes at
// the given frame: the curve's own world position plus the point at
// the animated path parameter.
func (n *Node) pathPosition(frame float64) (x, y, z float64) {
	bx, by, bz := n.WorldPosition(frame)
	u := 0.0
	if tr := n.Track(PropEvalTime); tr != nil && n.PathDuration > 0 {
		u = tr.ValueAt(frame) / float64(n.PathDuration)
		u -= float64(int(u)) // wrap into [0,1)
	}
	if n.Curve == nil {
		return bx, by, bz
	}
	px, py, pz := n.Curve.PointXYZ(u)
	return bx + px, by + py, bz + pz
}

// Container is the capability set the host scene must provide. All
// creation calls register the node with the host; errors follow the
// ContainerError taxonomy and abort the current rebuild.
type Container interface {
	// NewTransform creates a non-renderable carrier node.
	NewTransform(name string, parent *Node) (*Node, error)
	// NewMesh creates a renderable node with the given geometry.
	NewMesh(name string, parent *Node, geo Geometry) (*Node, error)
	// NewCurve creates a path guide with the given loop duration in
	// frames.
	NewCurve(name string, parent *Node, path Path, duration int) (*Node, error)
	// FollowPath constrains node to traverse the target curve, driven
	// by the curve's eval-time parameter rather than node translation.
	FollowPath(node, curve *Node) error

	// Keyframe records (frame, value) on the property's track,
	// creating the track on first use.
	Keyframe(node *Node, prop Property, frame int, value float64) error
	// SetTrackMode sets interpolation and extrapolation on an existing
	// track.
	SetTrackMode(node *Node, prop Property, interp Interpolation, extrap Extrapolation) error

	// AddToGroup tags a node for group-based teardown.
	AddToGroup(node *Node, group string) error
	// RemoveGroup deletes every node in the group together with its
	// descendants, returning the number of nodes removed.
	RemoveGroup(group string) int
	// RemovePrefix deletes every node whose name starts with prefix,
	// together with descendants, returning the number removed.
	RemovePrefix(prefix string) int

	// Attach binds a shared resource to a node.
	Attach(node *Node, res Resource) error
	// ReleaseUnreferenced drops resources no surviving node holds and
	// returns how many were reclaimed.
	ReleaseUnreferenced() int
}
