package scene

import (
	"sort"
	"strings"
)

// Graph is the in-memory Container. It owns every node it creates,
// tracks group membership, and reference-counts attached resources.
// It is not safe for concurrent use; a rebuild owns it exclusively.
type Graph struct {
	nodes     map[string]*Node
	order     []string // creation order, for stable enumeration
	groups    map[string]map[string]bool
	resources map[string]Resource
	attached  map[string]map[string]bool // resource id -> holder names
}

// NewGraph returns an empty scene graph.
func NewGraph() *Graph {
	return &Graph{
		nodes:     make(map[string]*Node),
		groups:    make(map[string]map[string]bool),
		resources: make(map[string]Resource),
		attached:  make(map[string]map[string]bool),
	}
}

func (g *Graph) insert(n *Node, parent *Node) (*Node, error) {
	if _, ok := g.nodes[n.Name]; ok {
		return nil, &ContainerError{Op: "create", Node: n.Name, Err: ErrDuplicateName}
	}
	if parent != nil {
		if _, ok := g.nodes[parent.Name]; !ok {
			return nil, &ContainerError{Op: "create", Node: n.Name, Err: ErrUnknownNode}
		}
		n.parent = parent
		parent.children = append(parent.children, n)
	}
	g.nodes[n.Name] = n
	g.order = append(g.order, n.Name)
	return n, nil
}

// NewTransform implements Container.
func (g *Graph) NewTransform(name string, parent *Node) (*Node, error) {
	return g.insert(&Node{Name: name, Kind: KindTransform, Scale: [3]float64{1, 1, 1}}, parent)
}

// NewMesh implements Container.
func (g *Graph) NewMesh(name string, parent *Node, geo Geometry) (*Node, error) {
	return g.insert(&Node{Name: name, Kind: KindMesh, Scale: [3]float64{1, 1, 1}, Geometry: &geo}, parent)
}

// NewCurve implements Container.
func (g *Graph) NewCurve(name string, parent *Node, path Path, duration int) (*Node, error) {
	if duration < 2 {
		duration = 2
	}
	return g.insert(&Node{
		Name: name, Kind: KindCurve, Scale: [3]float64{1, 1, 1},
		Curve: path, PathDuration: duration,
	}, parent)
}

// FollowPath implements Container.
func (g *Graph) FollowPath(node, curve *Node) error {
	if err := g.owns("constrain", node); err != nil {
		return err
	}
	if err := g.owns("constrain", curve); err != nil {
		return err
	}
	if curve.Kind != KindCurve {
		return &ContainerError{Op: "constrain", Node: curve.Name, Err: ErrNotCurve}
	}
	node.FollowTarget = curve
	return nil
}

// Keyframe implements Container.
func (g *Graph) Keyframe(node *Node, prop Property, frame int, value float64) error {
	if err := g.owns("keyframe", node); err != nil {
		return err
	}
	tr := node.Track(prop)
	if tr == nil {
		tr = &Track{Property: prop, Interp: InterpLinear, Extrap: ExtrapHold}
		node.Tracks = append(node.Tracks, tr)
	}
	for i, k := range tr.Keys {
		if k.Frame == frame {
			tr.Keys[i].Value = value
			return nil
		}
	}
	tr.Keys = append(tr.Keys, Key{Frame: frame, Value: value})
	sort.Slice(tr.Keys, func(i, j int) bool { return tr.Keys[i].Frame < tr.Keys[j].Frame })
	return nil
}

// SetTrackMode implements Container.
func (g *Graph) SetTrackMode(node *Node, prop Property, interp Interpolation, extrap Extrapolation) error {
	if err := g.owns("track-mode", node); err != nil {
		return err
	}
	tr := node.Track(prop)
	if tr == nil {
		return &ContainerError{Op: "track-mode", Node: node.Name, Err: ErrNoTrack}
	}
	tr.Interp = interp
	tr.Extrap = extrap
	return nil
}

// AddToGroup implements Container.
func (g *Graph) AddToGroup(node *Node, group string) error {
	if err := g.owns("group", node); err != nil {
		return err
	}
	members, ok := g.groups[group]
	if !ok {
		members = make(map[string]bool)
		g.groups[group] = members
	}
	members[node.Name] = true
	return nil
}

// RemoveGroup implements Container.
func (g *Graph) RemoveGroup(group string) int {
	removed := 0
	for name := range g.groups[group] {
		if n, ok := g.nodes[name]; ok {
			removed += g.remove(n)
		}
	}
	delete(g.groups, group)
	return removed
}

// RemovePrefix implements Container.
func (g *Graph) RemovePrefix(prefix string) int {
	var doomed []*Node
	for _, name := range g.order {
		if n, ok := g.nodes[name]; ok && strings.HasPrefix(name, prefix) {
			doomed = append(doomed, n)
		}
	}
	removed := 0
	for _, n := range doomed {
		if _, ok := g.nodes[n.Name]; ok { // may already be gone as a descendant
			removed += g.remove(n)
		}
	}
	return removed
}

// remove deletes a node and its whole subtree, returning the count.
func (g *Graph) remove(n *Node) int {
	count := 1
	for _, c := range append([]*Node(nil), n.children...) {
		count += g.remove(c)
	}
	if p := n.parent; p != nil {
		for i, c := range p.children {
			if c == n {
				p.children = append(p.children[:i], p.children[i+1:]...)
				break
			}
		}
		n.parent = nil
	}
	delete(g.nodes, n.Name)
	for _, members := range g.groups {
		delete(members, n.Name)
	}
	for _, holders := range g.attached {
		delete(holders, n.Name)
	}
	return count
}

// Attach implements Container.
func (g *Graph) Attach(node *Node, res Resource) error {
	if err := g.owns("attach", node); err != nil {
		return err
	}
	id := res.ID()
	g.resources[id] = res
	holders, ok := g.attached[id]
	if !ok {
		holders = make(map[string]bool)
		g.attached[id] = holders
	}
	holders[node.Name] = true
	return nil
}

// ReleaseUnreferenced implements Container: resources with no
// surviving holder are dropped, mirroring a host's zero-user data
// cleanup.
func (g *Graph) ReleaseUnreferenced() int {
	released := 0
	for id, holders := range g.attached {
		if len(holders) == 0 {
			delete(g.attached, id)
			delete(g.resources, id)
			released++
		}
	}
	return released
}

// Lookup returns the named node, or nil.
func (g *Graph) Lookup(name string) *Node {
	return g.nodes[name]
}

// Nodes returns all nodes in creation order.
func (g *Graph) Nodes() []*Node {
	out := make([]*Node, 0, len(g.nodes))
	for _, name := range g.order {
		if n, ok := g.nodes[name]; ok {
			out = append(out, n)
		}
	}
	return out
}

// Roots returns the nodes without parents, in creation order.
func (g *Graph) Roots() []*Node {
	var out []*Node
	for _, n := range g.Nodes() {
		if n.parent == nil {
			out = append(out, n)
		}
	}
	return out
}

// Resources returns the currently held resources, keyed by id.
func (g *Graph) Resources() map[string]Resource {
	out := make(map[string]Resource, len(g.resources))
	for id, r := range g.resources {
		out[id] = r
	}
	return out
}

func (g *Graph) owns(op string, n *Node) error {
	if n == nil {
		return &ContainerError{Op: op, Node: "<nil>", Err: ErrUnknownNode}
	}
	if _, ok := g.nodes[n.Name]; !ok {
		return &ContainerError{Op: op, Node: n.Name, Err: ErrUnknownNode}
	}
	return nil
}
