package widgets_test

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-drift/formkit/pkg/errors"
	"github.com/go-drift/formkit/pkg/events"
	ftesting "github.com/go-drift/formkit/pkg/testing"
	"github.com/go-drift/formkit/pkg/widgets"
)

func pngBytes(t *testing.T, w, h int) []byte {
	t.Helper()
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for x := 0; x < w; x++ {
		img.Set(x, 0, color.NRGBA{R: 0xff, A: 0xff})
	}
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func TestAccept(t *testing.T) {
	a := widgets.ParseAccept(" image/* , .PDF,application/json,")
	assert.Equal(t, widgets.Accept{"image/*", ".pdf", "application/json"}, a)

	assert.True(t, a.Allows(widgets.File{Name: "a.png", MIME: "image/png", Extension: "png"}))
	assert.True(t, a.Allows(widgets.File{Name: "report.pdf", MIME: "application/octet-stream"}))
	assert.True(t, a.Allows(widgets.File{Name: "x", MIME: "application/json"}))
	assert.False(t, a.Allows(widgets.File{Name: "x.zip", MIME: "application/zip", Extension: "zip"}))
	assert.True(t, widgets.Accept(nil).Allows(widgets.File{Name: "anything"}))
}

func TestReadAcquirer_Sniffs(t *testing.T) {
	ctx := context.Background()
	f, err := widgets.ReadAcquirer{}.Acquire(ctx, widgets.MemoryHandle{FileName: "pic.bin", Data: pngBytes(t, 2, 2)})
	require.NoError(t, err)
	assert.Equal(t, "image/png", f.MIME)
	assert.Equal(t, "png", f.Extension)

	f, err = widgets.ReadAcquirer{}.Acquire(ctx, widgets.MemoryHandle{FileName: "data.json", Data: []byte(`{"a":1}`)})
	require.NoError(t, err)
	assert.Equal(t, "application/json", f.MIME)
	assert.Equal(t, int64(7), f.Size)

	_, err = widgets.ReadAcquirer{MaxSize: 3}.Acquire(ctx, widgets.MemoryHandle{FileName: "big", Data: []byte("four")})
	assert.Error(t, err)
}

func TestFilePicker_AddCommitsOnce(t *testing.T) {
	o, _ := newHarness()
	p := widgets.NewFilePicker(o)
	p.SetAttribute("multiple", "")
	rec := ftesting.Record[[]widgets.File](p)

	added, err := p.Add(context.Background(),
		widgets.MemoryHandle{FileName: "a.json", Data: []byte("{}")},
		widgets.MemoryHandle{FileName: "b.json", Data: []byte("[]")},
	)
	require.NoError(t, err)
	assert.Len(t, added, 2)
	assert.Equal(t, []string{"a.json", "b.json"}, p.Names())
	assert.Equal(t, 1, rec.Count(events.Update))

	_, err = p.Add(context.Background(), widgets.MemoryHandle{FileName: "c.json", Data: []byte("1")})
	require.NoError(t, err)
	assert.Equal(t, "a.json, b.json, c.json", p.Text())

	assert.True(t, p.Remove("b.json"))
	assert.False(t, p.Remove("b.json"))
	assert.Equal(t, []string{"a.json", "c.json"}, p.Names())
}

func TestFilePicker_SingleKeepsLast(t *testing.T) {
	o, _ := newHarness()
	p := widgets.NewFilePicker(o)

	_, err := p.Add(context.Background(),
		widgets.MemoryHandle{FileName: "a.json", Data: []byte("{}")},
		widgets.MemoryHandle{FileName: "b.json", Data: []byte("[]")},
	)
	require.NoError(t, err)
	assert.Equal(t, []string{"b.json"}, p.Names())
}

func TestFilePicker_RejectsReported(t *testing.T) {
	rec := ftesting.CaptureErrors(t)
	o, _ := newHarness()
	p := widgets.NewFilePicker(o)
	p.SetAttribute("accept", "image/*")
	p.SetAcquirer(widgets.AcquirerFunc(func(ctx context.Context, h widgets.Handle) (widgets.File, error) {
		if h.Name() == "broken" {
			return widgets.File{}, fmt.Errorf("unreadable")
		}
		return widgets.ReadAcquirer{}.Acquire(ctx, h)
	}))

	added, err := p.Add(context.Background(),
		widgets.MemoryHandle{FileName: "broken"},
		widgets.MemoryHandle{FileName: "data.json", Data: []byte("{}")},
		widgets.MemoryHandle{FileName: "pic.png", Data: pngBytes(t, 1, 1)},
	)
	require.NoError(t, err)
	require.Len(t, added, 1)
	assert.Equal(t, "pic.png", added[0].Name)

	errs := rec.Errors()
	require.Len(t, errs, 2)
	for _, e := range errs {
		assert.Equal(t, errors.KindDecode, e.Kind)
		assert.Equal(t, widgets.TagFile, e.Tag)
	}
}

func TestFilePicker_CanceledContext(t *testing.T) {
	o, _ := newHarness()
	p := widgets.NewFilePicker(o)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := p.Add(ctx, widgets.MemoryHandle{FileName: "a.json", Data: []byte("{}")})
	assert.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, p.Value())
}

func TestFilePicker_DisabledIgnoresAdd(t *testing.T) {
	o, _ := newHarness()
	p := widgets.NewFilePicker(o)
	p.SetDisabled(true)

	added, err := p.Add(context.Background(), widgets.MemoryHandle{FileName: "a.json", Data: []byte("{}")})
	require.NoError(t, err)
	assert.Empty(t, added)
	assert.Empty(t, p.Value())
}

func TestImagePicker_DecodesAndThumbnails(t *testing.T) {
	o, _ := newHarness()
	p := widgets.NewImagePicker(o)
	p.SetAttribute("thumbnail-width", "16")
	p.SetAttribute("thumbnail-height", "16")

	_, err := p.Add(context.Background(), widgets.MemoryHandle{FileName: "wide.png", Data: pngBytes(t, 64, 32)})
	require.NoError(t, err)

	pics := p.Pictures()
	require.Len(t, pics, 1)
	assert.Equal(t, "png", pics[0].Format)
	assert.Equal(t, 64, pics[0].Width)
	assert.Equal(t, 32, pics[0].Height)
	assert.Equal(t, image.Rect(0, 0, 16, 8), pics[0].Thumbnail.Bounds())
	assert.Equal(t, "wide.png (64x32)", p.Text())
}

func TestImagePicker_RejectsUndecodable(t *testing.T) {
	rec := ftesting.CaptureErrors(t)
	o, _ := newHarness()
	p := widgets.NewImagePicker(o)

	added, err := p.Add(context.Background(),
		widgets.MemoryHandle{FileName: "fake.png", Data: []byte("not an image")},
		widgets.MemoryHandle{FileName: "data.json", Data: []byte("{}")},
	)
	require.NoError(t, err)
	assert.Empty(t, added)
	assert.Len(t, rec.Errors(), 2)
	assert.Equal(t, widgets.Accept{"image/*"}, p.Accept())
}

func TestImagePicker_FitModes(t *testing.T) {
	o, _ := newHarness()
	p := widgets.NewImagePicker(o)
	widgets.ApplyAttributes(p, map[string]string{"fit": "cover", "thumbnail-width": "10", "thumbnail-height": "10"})
	assert.Equal(t, widgets.ImageFitCover, p.Fit())

	_, err := p.Add(context.Background(), widgets.MemoryHandle{FileName: "wide.png", Data: pngBytes(t, 40, 20)})
	require.NoError(t, err)
	pics := p.Pictures()
	require.Len(t, pics, 1)
	assert.Equal(t, image.Rect(0, 0, 10, 10), pics[0].Thumbnail.Bounds())

	p.ClearValue()
	assert.Empty(t, p.Pictures())
}
