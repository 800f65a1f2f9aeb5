// Package geom holds simple geometric value types.
package geom

// Rectangle is a width by height box. Inputs are not validated.
type Rectangle struct {
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

func NewRectangle(width, height float64) Rectangle {
	return Rectangle{Width: width, Height: height}
}

// Area returns Width * Height.
func (r Rectangle) Area() float64 {
	return r.Width * r.Height
}
