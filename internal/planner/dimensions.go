package planner

import "math"

// TargetDimensions applies the longest-edge cap. When both edges fit within
// maxDim the input is returned unchanged with resize=false; images are never
// upscaled. Otherwise the longer edge becomes exactly maxDim and the shorter
// edge is round(shorter*maxDim/longer), rounding half away from zero and never
// below 1 pixel.
func TargetDimensions(w, h, maxDim int) (nw, nh int, resize bool) {
	if w <= maxDim && h <= maxDim {
		return w, h, false
	}
	if w >= h {
		return maxDim, scaleEdge(h, maxDim, w), true
	}
	return scaleEdge(w, maxDim, h), maxDim, true
}

func scaleEdge(shorter, maxDim, longer int) int {
	n := int(math.Round(float64(shorter) * float64(maxDim) / float64(longer)))
	if n < 1 {
		return 1
	}
	return n
}
