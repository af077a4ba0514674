package widgets

import (
	"bytes"
	"context"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"strconv"
	"strings"
	"sync"

	"github.com/disintegration/imaging"
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"

	"github.com/go-drift/formkit/pkg/attr"
	"github.com/go-drift/formkit/pkg/errors"
)

// ImageFit controls how a thumbnail is scaled within its box.
type ImageFit int

const (
	// ImageFitContain scales the image down to fit within the box, keeping
	// its aspect ratio. This is the zero value.
	ImageFitContain ImageFit = iota
	// ImageFitFill stretches the image to the box.
	ImageFitFill
	// ImageFitCover scales and center-crops the image to cover the box.
	ImageFitCover
	// ImageFitNone keeps the intrinsic size.
	ImageFitNone
)

// String returns the attribute spelling of the fit mode.
func (f ImageFit) String() string {
	switch f {
	case ImageFitFill:
		return "fill"
	case ImageFitContain:
		return "contain"
	case ImageFitCover:
		return "cover"
	case ImageFitNone:
		return "none"
	default:
		return fmt.Sprintf("ImageFit(%d)", int(f))
	}
}

// ParseImageFit parses the "fit" attribute.
func ParseImageFit(s string) (ImageFit, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "contain", "":
		return ImageFitContain, true
	case "fill":
		return ImageFitFill, true
	case "cover":
		return ImageFitCover, true
	case "none":
		return ImageFitNone, true
	}
	return ImageFitContain, false
}

// Thumbnail scales img into a w by h box.
func Thumbnail(img image.Image, w, h int, fit ImageFit) image.Image {
	if w <= 0 || h <= 0 {
		return img
	}
	switch fit {
	case ImageFitFill:
		return imaging.Resize(img, w, h, imaging.Lanczos)
	case ImageFitCover:
		return imaging.Fill(img, w, h, imaging.Center, imaging.Lanczos)
	case ImageFitNone:
		return img
	}
	return imaging.Fit(img, w, h, imaging.Lanczos)
}

// Picture is a decoded image file.
type Picture struct {
	File
	Format    string
	Width     int
	Height    int
	Image     image.Image
	Thumbnail image.Image
}

const (
	DefaultThumbnailSize = 128
	defaultImageAccept   = "image/*"
)

// ImagePicker is a FilePicker that only holds images. Each file is decoded
// when it is added; files that do not decode are reported and skipped.
// Decoded pictures and their thumbnails are available from Pictures.
type ImagePicker struct {
	*FilePicker

	imu      sync.Mutex
	reader   Acquirer
	pictures map[string]Picture
	thumbW   int
	thumbH   int
	fit      ImageFit
}

// NewImagePicker returns an empty image picker accepting image/*.
func NewImagePicker(o Options) *ImagePicker {
	p := &ImagePicker{
		FilePicker: newFilePicker(o, TagImage),
		reader:     ReadAcquirer{},
		pictures:   map[string]Picture{},
		thumbW:     DefaultThumbnailSize,
		thumbH:     DefaultThumbnailSize,
	}
	p.FilePicker.accept = ParseAccept(defaultImageAccept)
	p.FilePicker.SetAcquirer(AcquirerFunc(p.acquire))
	return p
}

// SetReader replaces the acquirer that reads raw files before decoding.
func (p *ImagePicker) SetReader(a Acquirer) {
	p.imu.Lock()
	p.reader = a
	p.imu.Unlock()
}

func (p *ImagePicker) acquire(ctx context.Context, h Handle) (File, error) {
	p.imu.Lock()
	reader, w, hh, fit := p.reader, p.thumbW, p.thumbH, p.fit
	p.imu.Unlock()

	f, err := reader.Acquire(ctx, h)
	if err != nil {
		return File{}, err
	}
	img, format, err := image.Decode(bytes.NewReader(f.Data))
	if err != nil {
		return File{}, fmt.Errorf("decode: %w", err)
	}
	b := img.Bounds()
	pic := Picture{
		File:      f,
		Format:    format,
		Width:     b.Dx(),
		Height:    b.Dy(),
		Image:     img,
		Thumbnail: Thumbnail(img, w, hh, fit),
	}
	p.imu.Lock()
	p.pictures[f.Name] = pic
	p.imu.Unlock()
	return f, nil
}

// Pictures returns the decoded held images in value order.
func (p *ImagePicker) Pictures() []Picture {
	files := p.Value()
	p.imu.Lock()
	defer p.imu.Unlock()
	pics := make([]Picture, 0, len(files))
	live := make(map[string]bool, len(files))
	for _, f := range files {
		live[f.Name] = true
		if pic, ok := p.pictures[f.Name]; ok {
			pics = append(pics, pic)
		}
	}
	for name := range p.pictures {
		if !live[name] {
			delete(p.pictures, name)
		}
	}
	return pics
}

// ThumbnailSize returns the thumbnail box.
func (p *ImagePicker) ThumbnailSize() (w, h int) {
	p.imu.Lock()
	defer p.imu.Unlock()
	return p.thumbW, p.thumbH
}

// Fit returns the thumbnail fit mode.
func (p *ImagePicker) Fit() ImageFit {
	p.imu.Lock()
	defer p.imu.Unlock()
	return p.fit
}

// SetAttribute applies "thumbnail-width", "thumbnail-height" and "fit" plus
// the FilePicker attributes. Removing "accept" restores image/*.
func (p *ImagePicker) SetAttribute(name, value string) {
	p.setImageAttribute(name, value, true)
}

// RemoveAttribute clears an attribute.
func (p *ImagePicker) RemoveAttribute(name string) {
	p.setImageAttribute(name, "", false)
}

func (p *ImagePicker) setImageAttribute(name, value string, present bool) {
	switch name {
	case "thumbnail-width", "thumbnail-height":
		n := DefaultThumbnailSize
		if present {
			n = attr.ParseInt(p.Tag(), name, value, DefaultThumbnailSize)
		}
		p.imu.Lock()
		if name == "thumbnail-width" {
			p.thumbW = n
		} else {
			p.thumbH = n
		}
		p.imu.Unlock()
	case "fit":
		fit, ok := ParseImageFit(value)
		if present && !ok {
			errors.ReportAttribute("widgets.ImagePicker.SetAttribute", p.Tag(), name, value, "contain, fill, cover or none")
		}
		p.imu.Lock()
		p.fit = fit
		p.imu.Unlock()
	case "accept":
		if !present || strings.TrimSpace(value) == "" {
			value = defaultImageAccept
		}
		p.FilePicker.setAttribute(name, value, true)
	default:
		p.FilePicker.setAttribute(name, value, present)
	}
}

// Text lists the held images with their dimensions.
func (p *ImagePicker) Text() string {
	pics := p.Pictures()
	parts := make([]string, len(pics))
	for i, pic := range pics {
		parts[i] = pic.Name + " (" + strconv.Itoa(pic.Width) + "x" + strconv.Itoa(pic.Height) + ")"
	}
	return strings.Join(parts, ", ")
}
