package view_test

import (
	"context"
	"fmt"
	"image"

	"github.com/matzehuels/mandelzoom/pkg/view"
)

func ExampleView_Release() {
	v := view.New(260, 240)

	v.Press(image.Pt(130, 120))
	v.Move(image.Pt(140, 125))
	fmt.Println("short drag zoomed:", v.Release(image.Pt(140, 125)))

	v.Press(image.Pt(130, 120))
	fmt.Println("long drag zoomed:", v.Release(image.Pt(195, 180)))
	fmt.Println("dirty:", v.Dirty())

	img := v.Frame(context.Background())
	fmt.Println("frame:", img.Bounds().Dx(), "x", img.Bounds().Dy())
	fmt.Println("dirty:", v.Dirty())

	v.Reset()
	fmt.Println("window:", v.Window())
	// Output:
	// short drag zoomed: false
	// long drag zoomed: true
	// dirty: true
	// frame: 260 x 240
	// dirty: false
	// window: -2,-1.2,0.6,1.2
}
