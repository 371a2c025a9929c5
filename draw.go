package main

import (
	"image/color"
	"sort"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/milk9111/tinytank/common"
	"github.com/milk9111/tinytank/ecs"
	"github.com/milk9111/tinytank/ecs/component"
	"github.com/milk9111/tinytank/ecs/render"
)

const gradientSegments = 16

// drawShapes draws every entity with a Shape, lowest layer first.
func drawShapes(screen, pixel *ebiten.Image, w *ecs.World, width, height float64) {
	entities := w.Query(component.ShapeComponent.ID())
	sort.SliceStable(entities, func(i, j int) bool {
		si, _ := ecs.Get(w, entities[i], component.ShapeComponent)
		sj, _ := ecs.Get(w, entities[j], component.ShapeComponent)
		if si.Layer != sj.Layer {
			return si.Layer < sj.Layer
		}
		return uint64(entities[i]) < uint64(entities[j])
	})

	for _, e := range entities {
		shape, ok := ecs.Get(w, e, component.ShapeComponent)
		if !ok {
			continue
		}
		transform, ok := render.WorldTransform(w, e)
		if !ok {
			continue
		}
		x, y := render.ToScreen(transform.Position, width, height)

		switch shape.Kind {
		case component.ShapeCircle:
			if shape.Fill != nil {
				vector.DrawFilledCircle(screen, float32(x), float32(y), float32(shape.Radius), shape.Fill, true)
			}
			if shape.Outline != nil && shape.OutlineWidth > 0 {
				vector.StrokeCircle(screen, float32(x), float32(y), float32(shape.Radius), float32(shape.OutlineWidth), shape.Outline, true)
			}
		case component.ShapeRect:
			if shape.Fill == nil {
				continue
			}
			op := &ebiten.DrawImageOptions{}
			op.GeoM.Translate(-0.5, -0.5)
			op.GeoM.Scale(shape.Width, shape.Height)
			// Screen y points down, so world rotations flip sign.
			op.GeoM.Rotate(-transform.Rotation)
			op.GeoM.Translate(x, y)
			op.ColorScale.ScaleWithColor(shape.Fill)
			screen.DrawImage(pixel, op)
		}
	}
}

func drawDebugLines(screen *ebiten.Image, lines *render.DebugLines, width, height float64) {
	for _, l := range lines.Lines() {
		x0, y0 := render.ToScreen(l.Start, width, height)
		x1, y1 := render.ToScreen(l.End, width, height)
		if sameColor(l.StartTint, l.EndTint) {
			vector.StrokeLine(screen, float32(x0), float32(y0), float32(x1), float32(y1), 1, l.StartTint, true)
			continue
		}
		for i := 0; i < gradientSegments; i++ {
			t0 := float32(i) / gradientSegments
			t1 := float32(i+1) / gradientSegments
			vector.StrokeLine(screen,
				common.Lerp(float32(x0), float32(x1), t0), common.Lerp(float32(y0), float32(y1), t0),
				common.Lerp(float32(x0), float32(x1), t1), common.Lerp(float32(y0), float32(y1), t1),
				1, common.LerpColor(l.StartTint, l.EndTint, (t0+t1)/2), true)
		}
	}
}

func sameColor(a, b color.Color) bool {
	if a == nil || b == nil {
		return a == b
	}
	ar, ag, ab, aa := a.RGBA()
	br, bg, bb, ba := b.RGBA()
	return ar == br && ag == bg && ab == bb && aa == ba
}
