package render

import (
	"fmt"

	"github.com/lowtide/openworld/internal/engine/model"
	"github.com/lowtide/openworld/internal/engine/world"
	"github.com/lowtide/openworld/pkg/math"
)

// lodChoice is the representation picked for an instance this frame.
type lodChoice int

const (
	// lodSkip means there is nothing to decide on (no geometry).
	lodSkip lodChoice = iota
	// lodCull means the instance is beyond every draw distance.
	lodCull
	// lodFull draws the instance's own model in full.
	lodFull
	// lodLinked draws the linked lower-detail substitute instead.
	lodLinked
	// lodClump draws a single top-level child frame of a multi-tier model.
	lodClump
)

// lodDecision is the outcome of LOD selection for one instance.
type lodDecision struct {
	choice lodChoice
	// frame is the selected top-level child frame when choice is lodClump.
	frame int
}

// nearestDistance returns a conservative nearest-surface distance from the
// eye to the model: the minimum over its geometries of the distance to the
// world-space bounds center minus the bounds radius. ok is false when the
// model has no geometry and the distance is undefined.
func nearestDistance(m *model.Model, transform math.Mat4, eye math.Vec3) (float32, bool) {
	if len(m.Geometries) == 0 {
		return 0, false
	}
	min := float32(0)
	for i, g := range m.Geometries {
		center := transform.TransformPoint(g.Bounds.Center)
		d := eye.Distance(center) - g.Bounds.Radius
		if i == 0 || d < min {
			min = d
		}
	}
	return min, true
}

// selectInstanceLOD decides which representation of an instance to traverse,
// based on its nearest-surface distance to the eye and its declared draw
// distances. Distances at or inside a tier's threshold keep that tier;
// beyond the farthest threshold the instance is culled.
//
// A multi-tier model whose root has fewer child frames than the tiers
// require is a corrupt asset and reported as an error.
func selectInstanceLOD(in *world.Instance, transform math.Mat4, eye math.Vec3) (lodDecision, error) {
	dist, ok := nearestDistance(in.Model, transform, eye)
	if !ok {
		return lodDecision{choice: lodSkip}, nil
	}

	info := in.Info
	if info == nil || info.ClumpCount <= 1 {
		if info != nil && dist > info.DrawDistance[0] {
			if in.LOD != nil && in.LOD.Info != nil && dist <= in.LOD.Info.DrawDistance[0] {
				return lodDecision{choice: lodLinked}, nil
			}
			return lodDecision{choice: lodCull}, nil
		}
		if info != nil && info.IsLOD {
			// Substitute-only instances draw via their parent's link.
			return lodDecision{choice: lodSkip}, nil
		}
		return lodDecision{choice: lodFull}, nil
	}

	// Multi-tier model: both tiers are sibling subtrees of the root, the
	// last child being the highest detail and the one before it the LOD.
	children := in.Model.RootChildren()
	if len(children) < 2 {
		return lodDecision{}, fmt.Errorf("model %q: %d clumps declared but root has %d children",
			info.ModelName, info.ClumpCount, len(children))
	}

	switch {
	case dist > info.DrawDistance[1]:
		return lodDecision{choice: lodCull}, nil
	case dist > info.DrawDistance[0]:
		return lodDecision{choice: lodClump, frame: children[len(children)-2]}, nil
	default:
		return lodDecision{choice: lodClump, frame: children[len(children)-1]}, nil
	}
}
