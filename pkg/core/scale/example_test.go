package scale_test

import (
	"fmt"

	"github.com/pchuan98/livecharts/pkg/core/scale"
)

func ExampleNew() {
	size := scale.Size{Width: 100, Height: 50}
	bounds := scale.Bounds{Min: 0, Max: 10}

	x := scale.New(scale.Point{X: 10}, size, scale.X, bounds)
	fmt.Println(x.ToPixel(5), x.UnitWidth())

	// Y grows upward: the maximum maps to the top edge.
	y := scale.New(scale.Point{}, size, scale.Y, bounds)
	fmt.Println(y.ToPixel(10), y.ToPixel(0))
	// Output:
	// 60 10
	// 0 50
}
