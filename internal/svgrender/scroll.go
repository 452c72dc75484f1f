package svgrender

import "math"

// ScrollAnimation is the precomputed discrete-keyframe sequence for the
// viewport scroll. Nil means no scroll animation is needed (scroll
// disabled, or content fits within MaxHeightPx already).
type ScrollAnimation struct {
	Steps             int
	ViewBoxYKeyframes []int
	ThumbYKeyframes   []int
	MaxHeightPx       int
	DurationSec       float64
}

// computeScroll computes the discrete-keyframe math: steps =
// ceil((content_height - max_height) / pixels_per_scroll), one viewBox-y
// keyframe and one scrollbar-thumb-y keyframe per step (plus the initial
// position), calcMode="discrete" with total duration interval*steps.
func computeScroll(contentHeightPx int, s Scroll) *ScrollAnimation {
	if !s.Enabled || contentHeightPx <= s.MaxHeightPx || s.PixelsPerScroll <= 0 {
		return nil
	}

	delta := contentHeightPx - s.MaxHeightPx
	steps := int(math.Ceil(float64(delta) / float64(s.PixelsPerScroll)))
	if steps < 1 {
		steps = 1
	}

	thumbTrack := s.MaxHeightPx
	thumbHeight := int(float64(thumbTrack) * float64(s.MaxHeightPx) / float64(contentHeightPx))
	if thumbHeight < 1 {
		thumbHeight = 1
	}
	maxThumbY := thumbTrack - thumbHeight
	if maxThumbY < 0 {
		maxThumbY = 0
	}

	viewBox := make([]int, steps+1)
	thumb := make([]int, steps+1)
	for i := 0; i <= steps; i++ {
		y := i * s.PixelsPerScroll
		if y > delta {
			y = delta
		}
		viewBox[i] = y
		if delta > 0 {
			thumb[i] = y * maxThumbY / delta
		}
	}

	return &ScrollAnimation{
		Steps:             steps,
		ViewBoxYKeyframes: viewBox,
		ThumbYKeyframes:   thumb,
		MaxHeightPx:       s.MaxHeightPx,
		DurationSec:       s.IntervalSec * float64(steps),
	}
}
