// Package builder runs one full generation pass: tear down the
// previous system, reclaim orphaned resources, then assemble a rig
// for every catalog entry in order. A rebuild either completes the
// catalog or stops at the first unrecoverable error; invalid bodies
// are skipped or fatal according to an explicit policy.
package builder

import (
	"fmt"
	"log/slog"

	"github.com/orrerylab/orrery/internal/appearance"
	"github.com/orrerylab/orrery/internal/catalog"
	"github.com/orrerylab/orrery/internal/rig"
	"github.com/orrerylab/orrery/internal/scene"
	"github.com/orrerylab/orrery/internal/timeline"
)

// DefaultGroup tags every node a rebuild creates.
const DefaultGroup = "Solar System"

// Policy decides what a body-level configuration error does to the
// rest of the rebuild. Container errors always abort regardless.
type Policy int

const (
	// AbortOnError stops the rebuild at the first invalid body.
	AbortOnError Policy = iota
	// ContinueOnError skips invalid bodies and reports them in the
	// result.
	ContinueOnError
)

// Skipped records a body the rebuild left out under ContinueOnError.
type Skipped struct {
	Name string
	Err  error
}

// Result describes one completed rebuild.
type Result struct {
	Rigs    map[string]*rig.Rig
	Order   []string // creation order of the built bodies
	Skipped []Skipped

	NodesRemoved      int // teardown of the previous generation
	ResourcesReleased int

	StartFrame int
	// EndFrame is the last frame of the longest single cycle; playing
	// start..end shows every body completing at least its fastest
	// loop, and every track repeats seamlessly beyond it.
	EndFrame int
}

// Builder is the catalog and lifecycle manager.
type Builder struct {
	Scene      scene.Container
	Scale      timeline.Scale
	Appearance appearance.Provider
	Policy     Policy
	Group      string
	Log        *slog.Logger
}

// New returns a Builder with the default palette, group and policy.
func New(sc scene.Container, scale timeline.Scale, log *slog.Logger) *Builder {
	if log == nil {
		log = slog.Default()
	}
	return &Builder{
		Scene:      sc,
		Scale:      scale,
		Appearance: appearance.Palette{},
		Policy:     AbortOnError,
		Group:      DefaultGroup,
		Log:        log,
	}
}

// Rebuild tears down the previous system and assembles the catalog
// from scratch. The catalog is read-only input; running Rebuild twice
// in a row yields an identical scene.
func (b *Builder) Rebuild(cat *catalog.Catalog) (*Result, error) {
	res := &Result{
		Rigs:       make(map[string]*rig.Rig),
		StartFrame: b.Scale.StartFrame,
		EndFrame:   b.Scale.StartFrame,
	}

	res.NodesRemoved = b.teardown(cat)
	res.ResourcesReleased = b.Scene.ReleaseUnreferenced()
	if res.NodesRemoved > 0 || res.ResourcesReleased > 0 {
		b.Log.Info("previous system removed",
			"nodes", res.NodesRemoved, "resources", res.ResourcesReleased)
	}

	asm := &rig.Assembler{
		Scene:      b.Scene,
		Scale:      b.Scale,
		Appearance: b.Appearance,
		Group:      b.Group,
		Log:        b.Log,
	}

	for _, body := range cat.Bodies() {
		r, err := b.buildOne(asm, body, res)
		if err != nil {
			if _, ok := catalog.AsConfigError(err); ok && b.Policy == ContinueOnError {
				b.Log.Warn("skipping body", "body", body.Name, "err", err)
				res.Skipped = append(res.Skipped, Skipped{Name: body.Name, Err: err})
				continue
			}
			// Fatal: partially created nodes stay behind; the next
			// rebuild's teardown removes them.
			return res, fmt.Errorf("rebuild aborted at %q: %w", body.Name, err)
		}
		res.Rigs[body.Name] = r
		res.Order = append(res.Order, body.Name)
		res.EndFrame = max(res.EndFrame, b.Scale.StartFrame+max(r.PeriodFrames, r.SpinFrames))
	}

	b.Log.Info("system rebuilt", "bodies", len(res.Rigs),
		"skipped", len(res.Skipped), "end_frame", res.EndFrame)
	return res, nil
}

func (b *Builder) buildOne(asm *rig.Assembler, body catalog.Body, res *Result) (*rig.Rig, error) {
	if body.IsStar() {
		return asm.BuildStar(body)
	}
	var parent *rig.Rig
	if body.Primary != "" {
		p, ok := res.Rigs[body.Primary]
		if !ok {
			return nil, &catalog.ConfigError{
				Body: body.Name, Field: "primary",
				Err: fmt.Errorf("primary %q not built", body.Primary),
			}
		}
		parent = p
	}
	return asm.Build(body, parent)
}

// teardown removes every node of the previous generation: group
// members first, then anything matching the managed name prefixes
// (covers nodes an aborted run created before it could tag them), then
// the star meshes, which carry bare body names.
func (b *Builder) teardown(cat *catalog.Catalog) int {
	removed := b.Scene.RemoveGroup(b.Group)
	for _, prefix := range rig.Prefixes() {
		removed += b.Scene.RemovePrefix(prefix)
	}
	for _, body := range cat.Bodies() {
		if body.IsStar() {
			removed += b.Scene.RemovePrefix(body.Name)
		}
	}
	return removed
}
