package preprocess

import (
	"fmt"
	"image"
	"image/color"
	"math"

	"golang.org/x/image/draw"
	"gonum.org/v1/gonum/floats"
	"gorgonia.org/tensor"
)

// ImageResizeConfig describes a preprocessor that resizes images to a
// new width and height without touching the color channel.
type ImageResizeConfig struct {
	Width  int `json:"width"`
	Height int `json:"height"`
}

// NewImageResizeConfig returns an ImageResizeConfig that leaves a
// one-pixel image unchanged.
func NewImageResizeConfig() ImageResizeConfig {
	return ImageResizeConfig{Width: 1, Height: 1}
}

// Type returns the type tag the configuration decodes from
func (i ImageResizeConfig) Type() Type { return ImageResize }

// Validate returns an error if the configuration describes an
// impossible preprocessor
func (i ImageResizeConfig) Validate() error {
	if i.Width < 1 {
		return fmt.Errorf("width must be positive but got %v", i.Width)
	}
	if i.Height < 1 {
		return fmt.Errorf("height must be positive but got %v",
			i.Height)
	}
	return nil
}

// Create returns a new image resizer
func (i ImageResizeConfig) Create() Preprocessor {
	return imageResizer{width: i.Width, height: i.Height}
}

// imageResizer bilinearly resizes [height, width] or
// [height, width, channels] images channel by channel. Pixel values
// pass through a 16-bit quantization over the image's value range, so
// outputs carry a small quantization error.
type imageResizer struct {
	width  int
	height int
}

func (i imageResizer) Apply(x *tensor.Dense) (*tensor.Dense, error) {
	shape := x.Shape()
	if len(shape) != 2 && len(shape) != 3 {
		return nil, fmt.Errorf("image resize: image rank must be 2 "+
			"or 3 but got %v", len(shape))
	}
	srcHeight, srcWidth := shape[0], shape[1]
	channels := 1
	if len(shape) == 3 {
		channels = shape[2]
	}
	data := x.Data().([]float64)

	out := make([]float64, i.height*i.width*channels)
	min, max := floats.Min(data), floats.Max(data)
	if min == max {
		// Flat images resize to themselves
		for j := range out {
			out[j] = min
		}
	} else {
		scale := math.MaxUint16 / (max - min)
		for c := 0; c < channels; c++ {
			src := image.NewGray16(image.Rect(0, 0, srcWidth, srcHeight))
			for row := 0; row < srcHeight; row++ {
				for col := 0; col < srcWidth; col++ {
					v := data[(row*srcWidth+col)*channels+c]
					src.SetGray16(col, row, color.Gray16{
						Y: uint16(math.Round((v - min) * scale)),
					})
				}
			}

			dst := image.NewGray16(image.Rect(0, 0, i.width, i.height))
			draw.BiLinear.Scale(dst, dst.Bounds(), src, src.Bounds(),
				draw.Src, nil)

			for row := 0; row < i.height; row++ {
				for col := 0; col < i.width; col++ {
					v := float64(dst.Gray16At(col, row).Y)
					out[(row*i.width+col)*channels+c] = min + v/scale
				}
			}
		}
	}

	outShape := []int{i.height, i.width}
	if len(shape) == 3 {
		outShape = append(outShape, channels)
	}
	return tensor.NewDense(tensor.Float64, outShape,
		tensor.WithBacking(out)), nil
}

func (i imageResizer) Reset() {}
