package view

import "github.com/voxtui/voxtui/internal/vol"

// State is the mutable record describing one displayed view. The renderer
// constructs it; the engine holds a reference and mutates SliceIndex,
// Displayed and ColorRange in place.
type State struct {
	Region Region

	// Exactly one of Image / Volume is set. For volumes, Displayed is always
	// Volume.Slice(SliceIndex); for plain images it is Image itself.
	Image      *vol.Image
	Volume     *vol.Volume
	SliceIndex int
	Displayed  *vol.Image

	ColorRange Range

	// Optional widget handles, present only when the view was constructed
	// with those features enabled.
	Slider   Slider
	Colorbar Colorbar
}

// NewImageState builds the state for a plain 2D image view with the color
// range defaulted to the image's value range.
func NewImageState(region Region, img *vol.Image) *State {
	lo, hi := img.MinMax()

	return &State{
		Region:     region,
		Image:      img,
		Displayed:  img,
		ColorRange: Range{Min: lo, Max: hi},
	}
}

// NewVolumeState builds the state for a volume view starting at slice 0,
// with the color range defaulted to the whole volume's value range so every
// slice shares one mapping.
func NewVolumeState(region Region, volume *vol.Volume) *State {
	lo, hi := volume.MinMax()

	return &State{
		Region:     region,
		Volume:     volume,
		Displayed:  volume.Slice(0),
		ColorRange: Range{Min: lo, Max: hi},
	}
}

// Extent is the number of slices, 1 for plain images.
func (s *State) Extent() int {
	if s.Volume == nil {
		return 1
	}

	return s.Volume.Extent()
}
