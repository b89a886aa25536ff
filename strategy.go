package sike

import (
	"github.com/pkg/errors"
)

// Strategy is a precomputed optimal traversal of the isogeny tree for one
// role. Steps[i] is the number of multiplications by the step degree taken
// before the next point is saved, read strictly in index order.
type Strategy struct {
	// Ell is the prime of the torsion (2 or 3)
	Ell uint
	// Degree is the degree of one isogeny step (4 or 3)
	Degree uint
	// Height is the number of isogeny steps, eA/2 or eB
	Height int
	// Steps has Height-1 entries
	Steps []uint32
}

// walkStats counts the work done by one traversal. Tests compare them to
// the figures implied by the published strategy.
type walkStats struct {
	Mults       int // multiplications by Degree
	Isogenies   int // isogeny steps
	Evaluations int // kernel-tree points pushed through isogenies
	MaxDepth    int // largest number of saved points
}

// validate replays the strategy on indices only and checks that it walks a
// tree of the declared height, consuming every entry exactly once.
func (s *Strategy) validate() error {
	if s.Degree != 3 && s.Degree != 4 {
		return errors.Wrapf(ErrConfig, "strategy degree %d", s.Degree)
	}
	if len(s.Steps) != s.Height-1 {
		return errors.Wrapf(ErrConfig, "strategy has %d entries, want %d", len(s.Steps), s.Height-1)
	}
	n := len(s.Steps)
	var indices []int
	i, sidx := 0, 0
	for j := 1; j <= n; j++ {
		for i <= n-j {
			if sidx >= n {
				return errors.Wrap(ErrConfig, "strategy exhausted early")
			}
			k := int(s.Steps[sidx])
			if k == 0 {
				return errors.Wrapf(ErrConfig, "strategy entry %d is zero", sidx)
			}
			indices = append(indices, i)
			sidx++
			i += k
		}
		// the row must end on a point of exact order Degree
		if i != n-j+1 {
			return errors.Wrapf(ErrConfig, "strategy overshoots in row %d", j)
		}
		i, indices = indices[len(indices)-1], indices[:len(indices)-1]
	}
	if sidx != n {
		return errors.Wrapf(ErrConfig, "strategy used %d of %d entries", sidx, n)
	}
	return nil
}

// mulCount returns the number of point multiplications by Degree the strategy prescribes
func (s *Strategy) mulCount() int {
	var sum int
	for _, k := range s.Steps {
		sum += int(k)
	}
	return sum
}

// walk computes the isogeny of degree Degree^Height with kernel generated
// by kernel on curve. Each point in push is replaced by its image. The
// codomain is returned in projective form. stats may be nil.
func (s *Strategy) walk(curve *ProjectiveCurve, kernel ProjectivePoint, push []ProjectivePoint, stats *walkStats) ProjectiveCurve {
	var phi isogeny
	var coef CurveCoefficientsEquiv
	var mulBy func(p *ProjectivePoint, coef *CurveCoefficientsEquiv, k int)

	if s.Degree == 4 {
		phi = &isogeny4{}
		coef = curve.equiv4()
		mulBy = func(p *ProjectivePoint, coef *CurveCoefficientsEquiv, k int) {
			xDblE(p, coef, 2*k)
		}
	} else {
		phi = &isogeny3{}
		coef = curve.equiv3()
		mulBy = xTplE
	}

	points := make([]ProjectivePoint, 0, 8)
	indices := make([]int, 0, 8)
	xR := kernel
	n := len(s.Steps)
	i, sidx := 0, 0

	for j := 1; j <= n; j++ {
		for i <= n-j {
			points = append(points, xR)
			indices = append(indices, i)

			k := int(s.Steps[sidx])
			sidx++
			mulBy(&xR, &coef, k)
			i += k
			if stats != nil {
				stats.Mults += k
			}
		}
		if stats != nil && len(points) > stats.MaxDepth {
			stats.MaxDepth = len(points)
		}

		coef = phi.GenerateCurve(&xR)
		for k := range points {
			points[k] = phi.EvaluatePoint(&points[k])
		}
		for k := range push {
			push[k] = phi.EvaluatePoint(&push[k])
		}
		if stats != nil {
			stats.Isogenies++
			stats.Evaluations += len(points)
		}

		xR, points = points[len(points)-1], points[:len(points)-1]
		i, indices = indices[len(indices)-1], indices[:len(indices)-1]
	}

	// last step, xR now has exact order Degree
	coef = phi.GenerateCurve(&xR)
	for k := range push {
		push[k] = phi.EvaluatePoint(&push[k])
	}
	if stats != nil {
		stats.Isogenies++
	}

	var out ProjectiveCurve
	if s.Degree == 4 {
		out.fromEquiv4(&coef)
	} else {
		out.fromEquiv3(&coef)
	}
	return out
}
