package main

import (
	"flag"
	"fmt"
	"image/color"
	"image/png"
	"log"
	"os"
	"path/filepath"

	"tictactoe/internal/core"
	"tictactoe/internal/render"
)

func main() {
	out := flag.String("out", filepath.Join("assets", "board.png"), "output PNG path")
	width := flag.Float64("thickness", render.DefaultLineWidth, "partition line width in pixels")
	flag.Parse()

	img := render.Partition(core.Screen(), core.Cols, core.Rows, float32(*width), color.Black)

	f, err := os.Create(*out)
	if err != nil {
		log.Fatal(err)
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		log.Fatalf("encode %s: %v", *out, err)
	}
	if err := f.Close(); err != nil {
		log.Fatal(err)
	}
	fmt.Printf("wrote %dx%d partition to %s\n", core.ScreenWidth, core.ScreenHeight, *out)
}
