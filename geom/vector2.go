package geom

type Element = float32

type Vector2 struct {
	X Element
	Y Element
}

func (v *Vector2) Array() [2]Element {
	return [2]Element{v.X, v.Y}
}
