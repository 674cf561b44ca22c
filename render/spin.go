package render

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/gif"
	"io"

	"wellplot/model"
)

var grayPalette = func() color.Palette {
	p := make(color.Palette, 256)
	for i := range p {
		p[i] = color.Gray{Y: uint8(i)}
	}
	return p
}()

// Spin renders frames views of the figure with the azimuth turning a full
// circle from view, and writes them as an animated GIF.
func Spin(w io.Writer, f *Figure, width, height int, view model.View, frames int) error {
	if frames < 1 {
		return fmt.Errorf("spin: %d frames", frames)
	}
	anim := &gif.GIF{}
	for i := 0; i < frames; i++ {
		v := view
		v.Azimuth += 360 * float64(i) / float64(frames)
		img, err := f.Render(width, height, v)
		if err != nil {
			return fmt.Errorf("spin frame %d: %w", i, err)
		}
		frame := image.NewPaletted(img.Bounds(), grayPalette)
		draw.Draw(frame, frame.Bounds(), img, image.Point{}, draw.Src)
		anim.Image = append(anim.Image, frame)
		anim.Delay = append(anim.Delay, 8)
	}
	return gif.EncodeAll(w, anim)
}
