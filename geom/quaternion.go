package geom

import "math"

// Vector4 doubles as an RGBA color and a rotation quaternion.
type Vector4 struct {
	X Element
	Y Element
	Z Element
	W Element
}

type Quaternion = Vector4

func NewVector4(x, y, z, w float32) *Vector4 {
	return &Vector4{X: x, Y: y, Z: z, W: w}
}

// NewQuaternionFromAxisAngle returns the rotation of angle radians around axis.
func NewQuaternionFromAxisAngle(axis *Vector3, angle float64) *Quaternion {
	a := (&Vector3{X: axis.X, Y: axis.Y, Z: axis.Z}).Normalize()
	s := Element(math.Sin(angle / 2))
	return &Quaternion{X: a.X * s, Y: a.Y * s, Z: a.Z * s, W: Element(math.Cos(angle / 2))}
}

func (v *Vector4) Len() Element {
	return Element(math.Sqrt(float64(v.X*v.X + v.Y*v.Y + v.Z*v.Z + v.W*v.W)))
}

func (v *Vector4) Normalize() *Vector4 {
	l := v.Len()
	if l > 0 {
		v.X /= l
		v.Y /= l
		v.Z /= l
		v.W /= l
	} else {
		v.W = 1
	}
	return v
}

func (q *Quaternion) Mul(r *Quaternion) *Quaternion {
	return &Quaternion{
		X: q.W*r.X + q.X*r.W + q.Y*r.Z - q.Z*r.Y,
		Y: q.W*r.Y - q.X*r.Z + q.Y*r.W + q.Z*r.X,
		Z: q.W*r.Z + q.X*r.Y - q.Y*r.X + q.Z*r.W,
		W: q.W*r.W - q.X*r.X - q.Y*r.Y - q.Z*r.Z,
	}
}

func (v *Vector4) Inverse() *Vector4 {
	return &Vector4{X: -v.X, Y: -v.Y, Z: -v.Z, W: v.W}
}

// ApplyTo rotates v by the unit quaternion q.
func (q *Quaternion) ApplyTo(v *Vector3) *Vector3 {
	p := q.Mul(&Quaternion{X: v.X, Y: v.Y, Z: v.Z}).Mul(q.Inverse())
	return &Vector3{X: p.X, Y: p.Y, Z: p.Z}
}

func (v *Vector4) Array() [4]Element {
	return [4]Element{v.X, v.Y, v.Z, v.W}
}
