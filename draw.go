package main

import (
	"image"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	. "github.com/quasilyte/gmath"
)

var whiteImage = func() *ebiten.Image {
	img := ebiten.NewImage(3, 3)
	img.Fill(color.White)
	return img.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
}()

// unit circle with radius 100, scaled on use
var circlePath = func() *vector.Path {
	var path vector.Path
	path.Arc(0, 0, 100, 0, 2*math.Pi, vector.Clockwise)
	path.Close()
	return &path
}()

var circleVertices []ebiten.Vertex
var circleIndices []uint16

var circleScratch []ebiten.Vertex

func DrawFillCircle(target *ebiten.Image, center Vec, radius float64, c color.Color) {
	if circleVertices == nil {
		circleVertices, circleIndices = circlePath.AppendVerticesAndIndicesForFilling(nil, nil)
	}

	var tr ebiten.GeoM
	tr.Scale(0.01*radius, 0.01*radius)
	tr.Translate(center.X, center.Y)

	vertices := TransformVertices(tr, circleVertices, &circleScratch)

	ApplyColorToVertices(vertices, c)

	op := &ebiten.DrawTrianglesOptions{AntiAlias: true}
	target.DrawTriangles(vertices, circleIndices, whiteImage, op)
}

func DrawRing(target *ebiten.Image, center Vec, radius float64, width float32, c color.Color) {
	var path vector.Path
	path.Arc(float32(center.X), float32(center.Y), float32(radius), 0, 2*math.Pi, vector.Clockwise)
	path.Close()

	vop := &vector.StrokeOptions{Width: width}
	vertices, indices := path.AppendVerticesAndIndicesForStroke(nil, nil, vop)
	ApplyColorToVertices(vertices, c)

	op := &ebiten.DrawTrianglesOptions{AntiAlias: true}
	target.DrawTriangles(vertices, indices, whiteImage, op)
}

func FillPath(target *ebiten.Image, path *vector.Path, tr ebiten.GeoM, c color.Color) {
	vertices, indices := path.AppendVerticesAndIndicesForFilling(nil, nil)
	vertices = TransformVertices(tr, vertices, nil)

	ApplyColorToVertices(vertices, c)

	op := &ebiten.DrawTrianglesOptions{AntiAlias: true}
	target.DrawTriangles(vertices, indices, whiteImage, op)
}

func ApplyColorToVertices(vertices []ebiten.Vertex, c color.Color) {
	r, g, b, a := c.RGBA()

	for idx := range vertices {
		vertices[idx].ColorR = float32(r) / 0xffff
		vertices[idx].ColorG = float32(g) / 0xffff
		vertices[idx].ColorB = float32(b) / 0xffff
		vertices[idx].ColorA = float32(a) / 0xffff
	}
}

func TransformVertices(tr ebiten.GeoM, vertices []ebiten.Vertex, reuse *[]ebiten.Vertex) []ebiten.Vertex {
	var trVertices []ebiten.Vertex

	if reuse != nil {
		// transform vertices to screen
		trVertices = (*reuse)[:0]
	}

	for _, vertex := range vertices {
		x, y := tr.Apply(float64(vertex.DstX), float64(vertex.DstY))
		vertex.DstX, vertex.DstY = float32(x), float32(y)
		trVertices = append(trVertices, vertex)
	}

	if reuse != nil {
		*reuse = trVertices[:0]
	}

	return trVertices
}

func TransformVec(tr ebiten.GeoM, value Vec) Vec {
	x, y := tr.Apply(value.X, value.Y)
	return Vec{X: x, Y: y}
}

func rgbaOf(rgba uint32) color.NRGBA {
	return color.NRGBA{
		R: uint8((rgba >> 24) & 0xff),
		G: uint8((rgba >> 16) & 0xff),
		B: uint8((rgba >> 8) & 0xff),
		A: uint8((rgba >> 0) & 0xff),
	}
}

func imageSizeOf(image *ebiten.Image) Vec {
	return Vec{
		X: float64(image.Bounds().Dx()),
		Y: float64(image.Bounds().Dy()),
	}
}
