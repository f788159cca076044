package entity

// Arena describes the vertical play area the paddles move in
type Arena struct {
	Width        float64
	Height       float64
	PaddleHeight float64
}

// HalfRange is half the arena height minus half the paddle height.
// A paddle centered at ±HalfRange touches the top or bottom edge.
func (a Arena) HalfRange() float64 {
	h := a.Height/2 - a.PaddleHeight/2
	if h < 0 {
		return 0
	}
	return h
}
