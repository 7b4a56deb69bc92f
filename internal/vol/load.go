package vol

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io/fs"
	"math"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/xor-gate/goexif2/exif"
	_ "golang.org/x/image/webp"
	"golang.org/x/sync/errgroup"
)

var (
	ErrEmptyStack    = errors.New("no image slices found")
	ErrMixedStack    = errors.New("stack slices have mismatched dimensions")
	errDecodeFailed  = errors.New("failed to decode image")
	acceptedFormats  = []string{".gif", ".jpg", ".jpeg", ".png", ".webp"}
	maxDecodeWorkers = 8
)

// LoadStack builds a grayscale volume from a stack of equally sized image
// files, one file per slice, ordered by name. path may be a directory of
// images or a single image file (yielding a one-slice volume).
func LoadStack(path string) (*Volume, error) {
	files, errScan := stackFiles(path)
	if errScan != nil {
		return nil, errScan
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("%s: %w", path, ErrEmptyStack)
	}

	sliceImages := make([]image.Image, len(files))
	group := errgroup.Group{}
	group.SetLimit(maxDecodeWorkers)
	for i, name := range files {
		group.Go(func() error {
			img, errDecode := decodeOriented(name)
			if errDecode != nil {
				return errDecode
			}
			sliceImages[i] = img

			return nil
		})
	}
	if err := group.Wait(); err != nil {
		return nil, err
	}

	bounds := sliceImages[0].Bounds()
	height, width := bounds.Dy(), bounds.Dx()
	data := make([]float64, 0, len(sliceImages)*height*width)
	for i, img := range sliceImages {
		if img.Bounds().Dx() != width || img.Bounds().Dy() != height {
			return nil, fmt.Errorf("%s is %dx%d, expected %dx%d: %w",
				files[i], img.Bounds().Dx(), img.Bounds().Dy(), width, height, ErrMixedStack)
		}
		for y := range height {
			for x := range width {
				r, g, b, _ := img.At(img.Bounds().Min.X+x, img.Bounds().Min.Y+y).RGBA()
				// ITU-R BT.601 luma, from 16 bit channels.
				data = append(data, (0.299*float64(r)+0.587*float64(g)+0.114*float64(b))/65535.0)
			}
		}
	}

	return New(data, []int{len(sliceImages), height, width}, 0)
}

// stackFiles lists the image files making up the stack, sorted by name.
func stackFiles(path string) ([]string, error) {
	info, errStat := os.Stat(path)
	if errStat != nil {
		return nil, fmt.Errorf("cannot stat %s: %w", path, errStat)
	}
	if !info.IsDir() {
		if !isImageFile(path) {
			return nil, fmt.Errorf("%s: %w", path, ErrEmptyStack)
		}

		return []string{path}, nil
	}

	var files []string
	errWalk := filepath.WalkDir(path, func(name string, entry fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if entry.IsDir() || !entry.Type().IsRegular() || !isImageFile(name) {
			return nil
		}
		files = append(files, name)

		return nil
	})
	if errWalk != nil {
		return nil, errWalk
	}
	slices.Sort(files)

	return files, nil
}

func isImageFile(name string) bool {
	return slices.Contains(acceptedFormats, strings.ToLower(filepath.Ext(name)))
}

// decodeOriented decodes an image file and applies its EXIF orientation so
// photographed stacks display the way a photo viewer would show them.
func decodeOriented(path string) (image.Image, error) {
	raw, errRead := os.ReadFile(path)
	if errRead != nil {
		return nil, fmt.Errorf("read %s: %w", path, errRead)
	}

	img, _, errDecode := image.Decode(bytes.NewReader(raw))
	if errDecode != nil {
		return nil, fmt.Errorf("%s: %v: %w", path, errDecode, errDecodeFailed)
	}

	return applyOrientation(img, exifOrientation(raw)), nil
}

// exifOrientation returns the EXIF orientation tag, defaulting to 1 (as
// stored) when the tag or the EXIF block is missing.
func exifOrientation(raw []byte) int {
	meta, err := exif.Decode(bytes.NewReader(raw))
	if err != nil {
		return 1
	}
	tag, errTag := meta.Get(exif.Orientation)
	if errTag != nil {
		return 1
	}
	orient, errVal := tag.Int(0)
	if errVal != nil {
		return 1
	}

	return orient
}

// applyOrientation handles the rotation-only EXIF orientations (1, 3, 6, 8).
// Mirrored orientations are rare in practice and are displayed as stored.
func applyOrientation(img image.Image, orient int) image.Image {
	bounds := img.Bounds()
	switch orient {
	case 3: // rotated 180
		out := image.NewRGBA(image.Rect(0, 0, bounds.Dx(), bounds.Dy()))
		for y := range bounds.Dy() {
			for x := range bounds.Dx() {
				out.Set(bounds.Dx()-1-x, bounds.Dy()-1-y, img.At(bounds.Min.X+x, bounds.Min.Y+y))
			}
		}

		return out
	case 6: // rotate 90 clockwise to display
		out := image.NewRGBA(image.Rect(0, 0, bounds.Dy(), bounds.Dx()))
		for y := range bounds.Dy() {
			for x := range bounds.Dx() {
				out.Set(bounds.Dy()-1-y, x, img.At(bounds.Min.X+x, bounds.Min.Y+y))
			}
		}

		return out
	case 8: // rotate 90 counter-clockwise to display
		out := image.NewRGBA(image.Rect(0, 0, bounds.Dy(), bounds.Dx()))
		for y := range bounds.Dy() {
			for x := range bounds.Dx() {
				out.Set(y, bounds.Dx()-1-x, img.At(bounds.Min.X+x, bounds.Min.Y+y))
			}
		}

		return out
	default:
		return img
	}
}

// Demo synthesizes a volume of a Gaussian blob orbiting the slice center,
// used when the viewer is started without any input files.
func Demo(extent int, height int, width int) *Volume {
	data := make([]float64, 0, extent*height*width)
	for i := range extent {
		phase := 2 * math.Pi * float64(i) / float64(extent)
		cx := float64(width)/2 + float64(width)/4*math.Cos(phase)
		cy := float64(height)/2 + float64(height)/4*math.Sin(phase)
		sigma := float64(min(width, height)) / 6
		for y := range height {
			for x := range width {
				dx, dy := float64(x)-cx, float64(y)-cy
				data = append(data, math.Exp(-(dx*dx+dy*dy)/(2*sigma*sigma)))
			}
		}
	}

	vol, err := New(data, []int{extent, height, width}, 0)
	if err != nil {
		panic(err) // shape is fixed above
	}

	return vol
}
