// Package vol holds the image and volume arrays displayed by the viewer.
// A volume is addressed slice-first: the configured slice axis is moved to
// position 0 at construction so Slice(i) is a cheap contiguous view.
package vol

import (
	"errors"
	"fmt"
	"math"
)

var (
	ErrBadShape = errors.New("unsupported array shape")
	ErrBadIndex = errors.New("index out of range")
)

// Image is a 2D array with an optional trailing channel dimension of size
// 3 (RGB) or 4 (RGBA). Values are raw data values, not yet color mapped.
type Image struct {
	data     []float64
	height   int
	width    int
	channels int // 0 for single channel data
}

// NewImage validates and wraps a 2D (+channels) array. shape must be
// [h, w] or [h, w, c] with c in {3, 4}.
func NewImage(data []float64, shape []int) (*Image, error) {
	switch len(shape) {
	case 2:
		if len(data) != shape[0]*shape[1] {
			return nil, fmt.Errorf("image data length %d does not match shape %v: %w", len(data), shape, ErrBadShape)
		}

		return &Image{data: data, height: shape[0], width: shape[1]}, nil
	case 3:
		if shape[2] != 3 && shape[2] != 4 {
			return nil, fmt.Errorf("image channel count %d not 3 or 4: %w", shape[2], ErrBadShape)
		}
		if len(data) != shape[0]*shape[1]*shape[2] {
			return nil, fmt.Errorf("image data length %d does not match shape %v: %w", len(data), shape, ErrBadShape)
		}

		return &Image{data: data, height: shape[0], width: shape[1], channels: shape[2]}, nil
	default:
		return nil, fmt.Errorf("image rank %d not 2 or 3: %w", len(shape), ErrBadShape)
	}
}

func (im *Image) Width() int    { return im.width }
func (im *Image) Height() int   { return im.height }
func (im *Image) Channels() int { return im.channels }

// At returns the value at (x, y). Multi-channel images return the channel
// mean, which is what the status bar readout and the gray renderer want.
func (im *Image) At(x, y int) float64 {
	if x < 0 || x >= im.width || y < 0 || y >= im.height {
		return math.NaN()
	}
	if im.channels == 0 {
		return im.data[y*im.width+x]
	}
	base := (y*im.width + x) * im.channels
	sum := 0.0
	for c := range im.channels {
		sum += im.data[base+c]
	}

	return sum / float64(im.channels)
}

// MinMax scans the image for its value range.
func (im *Image) MinMax() (float64, float64) {
	return minMax(im.data)
}

// Volume is a stack of equally shaped slices. The slice axis is always
// axis 0 of the stored shape.
type Volume struct {
	data     []float64
	extent   int // number of slices
	height   int
	width    int
	channels int // 0 for single channel data
}

// New validates and wraps a volume array. shape must have rank 3 or 4 and,
// for rank 4, a channel dimension of size 3 or 4 after excluding sliceAxis.
// sliceAxis selects the axis slices are taken along and may be negative to
// count from the end; it is moved to position 0, reordering data as needed.
func New(data []float64, shape []int, sliceAxis int) (*Volume, error) {
	ndim := len(shape)
	if sliceAxis < 0 {
		sliceAxis += ndim
	}
	if sliceAxis < 0 || sliceAxis >= ndim {
		return nil, fmt.Errorf("slice axis %d out of range for rank %d: %w", sliceAxis, ndim, ErrBadShape)
	}

	rest := make([]int, 0, ndim-1)
	rest = append(rest, shape[:sliceAxis]...)
	rest = append(rest, shape[sliceAxis+1:]...)
	if ndim != 3 && ndim != 4 || ndim == 4 && rest[len(rest)-1] != 3 && rest[len(rest)-1] != 4 {
		return nil, fmt.Errorf("volume shape %v not valid for slice display with slice axis %d: %w",
			shape, sliceAxis, ErrBadShape)
	}

	total := 1
	for _, dim := range shape {
		total *= dim
	}
	if len(data) != total {
		return nil, fmt.Errorf("volume data length %d does not match shape %v: %w", len(data), shape, ErrBadShape)
	}

	if sliceAxis != 0 {
		data = moveAxisFront(data, shape, sliceAxis)
	}

	vol := &Volume{data: data, extent: shape[sliceAxis], height: rest[0], width: rest[1]}
	if ndim == 4 {
		vol.channels = rest[2]
	}

	return vol, nil
}

func (v *Volume) Extent() int   { return v.extent }
func (v *Volume) Width() int    { return v.width }
func (v *Volume) Height() int   { return v.height }
func (v *Volume) Channels() int { return v.channels }

// SizeBytes is the in-memory size of the raw array.
func (v *Volume) SizeBytes() int { return len(v.data) * 8 }

// Slice returns slice i as an Image sharing the volume's storage.
// i must be in [0, Extent()).
func (v *Volume) Slice(i int) *Image {
	if i < 0 || i >= v.extent {
		panic(fmt.Sprintf("vol: slice %d out of range [0, %d)", i, v.extent))
	}
	stride := v.height * v.width
	if v.channels > 0 {
		stride *= v.channels
	}

	return &Image{
		data:     v.data[i*stride : (i+1)*stride],
		height:   v.height,
		width:    v.width,
		channels: v.channels,
	}
}

// MinMax scans the whole volume for its value range, used as the default
// color range so all slices share one mapping.
func (v *Volume) MinMax() (float64, float64) {
	return minMax(v.data)
}

// Reslice returns a volume over the same data sliced along a different
// axis of the current slice-first shape. Selecting the channel axis of a
// 4D volume is a shape error.
func (v *Volume) Reslice(axis int) (*Volume, error) {
	shape := []int{v.extent, v.height, v.width}
	if v.channels > 0 {
		shape = append(shape, v.channels)
	}

	return New(v.data, shape, axis)
}

func minMax(data []float64) (float64, float64) {
	lo, hi := math.Inf(1), math.Inf(-1)
	for _, val := range data {
		if math.IsNaN(val) {
			continue
		}
		lo = min(lo, val)
		hi = max(hi, val)
	}
	if lo > hi {
		return 0, 0
	}

	return lo, hi
}

// moveAxisFront reorders a row-major array so that axis becomes axis 0.
func moveAxisFront(data []float64, shape []int, axis int) []float64 {
	strides := make([]int, len(shape))
	stride := 1
	for i := len(shape) - 1; i >= 0; i-- {
		strides[i] = stride
		stride *= shape[i]
	}

	newShape := make([]int, 0, len(shape))
	newStrides := make([]int, 0, len(shape))
	newShape = append(newShape, shape[axis])
	newStrides = append(newStrides, strides[axis])
	for i, dim := range shape {
		if i == axis {
			continue
		}
		newShape = append(newShape, dim)
		newStrides = append(newStrides, strides[i])
	}

	out := make([]float64, len(data))
	idx := make([]int, len(newShape))
	for pos := range out {
		src := 0
		for i, j := range idx {
			src += j * newStrides[i]
		}
		out[pos] = data[src]

		for i := len(idx) - 1; i >= 0; i-- {
			idx[i]++
			if idx[i] < newShape[i] {
				break
			}
			idx[i] = 0
		}
	}

	return out
}
