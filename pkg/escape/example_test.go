package escape_test

import (
	"fmt"

	"github.com/matzehuels/mandelzoom/pkg/escape"
	"github.com/matzehuels/mandelzoom/pkg/plane"
)

func ExampleDepth() {
	fmt.Println(escape.Depth(0, 0, 30))    // inside the main cardioid
	fmt.Println(escape.Depth(1, 1, 30))    // escapes after one step
	fmt.Println(escape.Depth(-2.5, 0, 30)) // outside the escape radius
	// Output:
	// 30
	// 1
	// 0
}

func ExampleEngine_Render() {
	p := escape.Params{MaxDepth: 30, Width: 260, Height: 240, Window: plane.DefaultWindow}
	img := escape.Engine{Workers: 4}.Render(p)
	fmt.Println(img.Bounds())
	// Output:
	// (0,0)-(260,240)
}
