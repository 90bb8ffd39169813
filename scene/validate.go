package scene

import (
	"github.com/pkg/errors"
)

var (
	ErrCycle          = errors.New("node hierarchy contains a cycle")
	ErrVertexCount    = errors.New("per-vertex attribute length mismatch")
	ErrIndexRange     = errors.New("index out of vertex range")
	ErrDanglingJoint  = errors.New("joint refers to a node outside the graph")
	ErrNegativeWeight = errors.New("negative joint weight")
)

// Validate checks the structural invariants of the graph. It does not check
// that joint weights sum to one.
func (g *Graph) Validate() error {
	inGraph := map[*Node]bool{}
	var visit func(n *Node, path map[*Node]bool) error
	visit = func(n *Node, path map[*Node]bool) error {
		if path[n] {
			return errors.Wrapf(ErrCycle, "node %q", n.Name)
		}
		path[n] = true
		inGraph[n] = true
		for _, c := range n.Children {
			if err := visit(c, path); err != nil {
				return err
			}
		}
		delete(path, n)
		return nil
	}
	for _, s := range g.Scenes {
		for _, n := range s.Nodes {
			if err := visit(n, map[*Node]bool{}); err != nil {
				return err
			}
		}
	}

	for n := range inGraph {
		if n.Skin != nil {
			for i, j := range n.Skin.Joints {
				if j.Node == nil || !inGraph[j.Node] {
					return errors.Wrapf(ErrDanglingJoint, "skin of %q, joint %d", n.Name, i)
				}
			}
		}
		if n.Mesh == nil {
			continue
		}
		for i, p := range n.Mesh.Primitives {
			if err := p.validate(n.Skin); err != nil {
				return errors.Wrapf(err, "node %q, primitive %d", n.Name, i)
			}
		}
	}
	return nil
}

func (p *Primitive) validate(skin *Skin) error {
	count := p.VertexCount()
	check := func(name string, l int) error {
		if l != 0 && l != count {
			return errors.Wrapf(ErrVertexCount, "%s has %d, positions %d", name, l, count)
		}
		return nil
	}
	if err := check("normals", len(p.Normals)); err != nil {
		return err
	}
	if err := check("colors", len(p.Colors)); err != nil {
		return err
	}
	for _, uv := range p.TextureCoordSets {
		if err := check("texcoords", len(uv)); err != nil {
			return err
		}
	}
	if err := check("joint weights", len(p.JointWeights)); err != nil {
		return err
	}
	for _, idx := range p.Indices {
		if int(idx) >= count {
			return errors.Wrapf(ErrIndexRange, "index %d, %d vertices", idx, count)
		}
	}

	joints := map[*SkinJoint]bool{}
	if skin != nil {
		for _, j := range skin.Joints {
			joints[j] = true
		}
	}
	for v, jw := range p.JointWeights {
		for _, w := range jw {
			if !joints[w.Joint] {
				return errors.Wrapf(ErrDanglingJoint, "vertex %d weight refers to a joint outside the skin", v)
			}
			if w.Weight < 0 {
				return errors.Wrapf(ErrNegativeWeight, "vertex %d", v)
			}
		}
	}
	return nil
}
