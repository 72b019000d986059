package main

type viewID int

const (
	viewMain viewID = iota
	viewTimer
	viewAnalog
	numViews
)

func (v viewID) String() string {
	switch v {
	case viewMain:
		return "main"
	case viewTimer:
		return "timer"
	case viewAnalog:
		return "analog"
	default:
		return "INVALID"
	}
}

// viewRing cycles through the views in order, wrapping at both ends
type viewRing struct {
	cur viewID
}

func (r *viewRing) next() viewID {
	r.cur++
	if r.cur >= numViews {
		r.cur = 0
	}
	return r.cur
}

func (r *viewRing) prev() viewID {
	r.cur--
	if r.cur < 0 {
		r.cur = numViews - 1
	}
	return r.cur
}
