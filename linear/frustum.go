// Copyright 2026 Gustavo C. Viegas. All rights reserved.

package linear

// Frustum planes, in the order they are stored.
const (
	PLeft = iota
	PRight
	PBottom
	PTop
	PNear
	PFar
)

// Frustum is a view volume defined by six planes.
// Each plane is stored as (n, d) such that a point p
// is inside the plane's half-space iff n ⋅ p + d >= 0.
// Normals are unit length.
type Frustum [6]V4

// Extract sets f to contain the planes of the clip volume
// of the view-projection matrix vp.
// It expects depth in the [0, 1] range.
func (f *Frustum) Extract(vp *M4) {
	var row [4]V4
	for i := range row {
		row[i] = V4{vp[0][i], vp[1][i], vp[2][i], vp[3][i]}
	}
	f[PLeft].Add(&row[3], &row[0])
	f[PRight].Sub(&row[3], &row[0])
	f[PBottom].Add(&row[3], &row[1])
	f[PTop].Sub(&row[3], &row[1])
	f[PNear] = row[2]
	f[PFar].Sub(&row[3], &row[2])
	for i := range f {
		n := V3{f[i][0], f[i][1], f[i][2]}
		if l := n.Len(); l > 0 {
			f[i].Scale(1/l, &f[i])
		}
	}
}

// Dist returns the signed distance from p to the given plane.
func (f *Frustum) Dist(plane int, p *V3) float32 {
	n := V3{f[plane][0], f[plane][1], f[plane][2]}
	return n.Dot(p) + f[plane][3]
}

// SphereVisible reports whether a sphere intersects or is
// contained within f.
// It is conservative: spheres near the frustum's corners
// may be reported as visible.
func (f *Frustum) SphereVisible(center *V3, radius float32) bool {
	for i := range f {
		if f.Dist(i, center) < -radius {
			return false
		}
	}
	return true
}
