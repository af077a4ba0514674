package widgets

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/h2non/filetype"
	"github.com/h2non/filetype/types"

	"github.com/go-drift/formkit/pkg/attr"
	"github.com/go-drift/formkit/pkg/core"
	"github.com/go-drift/formkit/pkg/errors"
	"github.com/go-drift/formkit/pkg/events"
	"github.com/go-drift/formkit/pkg/gestures"
	"github.com/go-drift/formkit/pkg/input"
)

// File is an acquired file: its metadata and contents.
type File struct {
	Name      string
	Size      int64
	MIME      string
	Extension string
	Data      []byte
}

// Handle is a file chosen by the user but not yet read.
type Handle interface {
	Name() string
	Open() (io.ReadCloser, error)
}

// Acquirer reads a Handle into a File.
type Acquirer interface {
	Acquire(ctx context.Context, h Handle) (File, error)
}

// AcquirerFunc adapts a function to Acquirer.
type AcquirerFunc func(ctx context.Context, h Handle) (File, error)

// Acquire calls f.
func (f AcquirerFunc) Acquire(ctx context.Context, h Handle) (File, error) {
	return f(ctx, h)
}

// PathHandle is a Handle on the local file system.
type PathHandle string

// Name returns the base name of the path.
func (p PathHandle) Name() string {
	return filepath.Base(string(p))
}

// Open opens the file.
func (p PathHandle) Open() (io.ReadCloser, error) {
	return os.Open(string(p))
}

// MemoryHandle is a Handle over in-memory contents.
type MemoryHandle struct {
	FileName string
	Data     []byte
}

// Name returns FileName.
func (m MemoryHandle) Name() string {
	return m.FileName
}

// Open returns a reader over Data.
func (m MemoryHandle) Open() (io.ReadCloser, error) {
	return io.NopCloser(bytes.NewReader(m.Data)), nil
}

// ReadAcquirer reads the whole file and sniffs its type from the content,
// falling back to the name's extension.
type ReadAcquirer struct {
	// MaxSize rejects larger files. Zero means no limit.
	MaxSize int64
}

// Acquire reads h.
func (a ReadAcquirer) Acquire(ctx context.Context, h Handle) (File, error) {
	if err := ctx.Err(); err != nil {
		return File{}, err
	}
	rc, err := h.Open()
	if err != nil {
		return File{}, err
	}
	defer rc.Close()
	r := io.Reader(rc)
	if a.MaxSize > 0 {
		r = io.LimitReader(rc, a.MaxSize+1)
	}
	data, err := io.ReadAll(r)
	if err != nil {
		return File{}, err
	}
	if a.MaxSize > 0 && int64(len(data)) > a.MaxSize {
		return File{}, fmt.Errorf("%s: larger than %d bytes", h.Name(), a.MaxSize)
	}
	if err := ctx.Err(); err != nil {
		return File{}, err
	}
	f := File{Name: h.Name(), Size: int64(len(data)), Data: data}
	f.MIME, f.Extension = sniff(f.Name, data)
	return f, nil
}

func sniff(name string, data []byte) (mimeType, ext string) {
	kind, err := filetype.Match(data)
	if err == nil && kind != types.Unknown {
		return kind.MIME.Value, kind.Extension
	}
	ext = strings.TrimPrefix(strings.ToLower(filepath.Ext(name)), ".")
	if ext != "" {
		if t := mime.TypeByExtension("." + ext); t != "" {
			mimeType, _, _ = mime.ParseMediaType(t)
			return mimeType, ext
		}
	}
	return "application/octet-stream", ext
}

// Accept is a parsed "accept" attribute: MIME types, wildcards such as
// image/* and extensions such as .pdf.
type Accept []string

// ParseAccept splits a comma-separated accept list.
func ParseAccept(s string) Accept {
	var a Accept
	for _, p := range strings.Split(s, ",") {
		if p = strings.ToLower(strings.TrimSpace(p)); p != "" {
			a = append(a, p)
		}
	}
	return a
}

// Allows reports whether f matches any entry. An empty list allows
// everything.
func (a Accept) Allows(f File) bool {
	if len(a) == 0 {
		return true
	}
	m := strings.ToLower(f.MIME)
	ext := "." + strings.ToLower(f.Extension)
	nameExt := strings.ToLower(filepath.Ext(f.Name))
	for _, p := range a {
		switch {
		case strings.HasPrefix(p, "."):
			if p == ext || p == nameExt {
				return true
			}
		case strings.HasSuffix(p, "/*"):
			if strings.HasPrefix(m, strings.TrimSuffix(p, "*")) {
				return true
			}
		case p == m:
			return true
		}
	}
	return false
}

// String joins the entries.
func (a Accept) String() string {
	return strings.Join(a, ",")
}

// FilePicker holds files chosen by the user. Handles passed to Add are
// acquired concurrently and committed together as one update; files that
// fail to load or do not match "accept" are reported and skipped. Without
// "multiple" only the last accepted file is kept.
type FilePicker struct {
	*input.Input[[]File]
	field

	mu       sync.Mutex
	acquirer Acquirer
	accept   Accept
	multiple bool
	capture  string
	tap      *gestures.TapRecognizer
	// OnBrowse is called when the user activates the picker; the host opens
	// its file chooser and calls Add with the result.
	OnBrowse func()
}

// NewFilePicker returns an empty picker reading files with ReadAcquirer.
func NewFilePicker(o Options) *FilePicker {
	return newFilePicker(o, TagFile)
}

func newFilePicker(o Options, tag string) *FilePicker {
	cfg := config[[]File](o, tag, nil)
	cfg.Equal = sameFiles
	p := &FilePicker{Input: input.New(cfg), acquirer: ReadAcquirer{}}
	p.tap = core.UseController(p, func() *gestures.TapRecognizer {
		return &gestures.TapRecognizer{
			Router:   o.Router,
			CanStart: p.Editable,
			OnStart:  func() { p.Focus() },
			OnTap:    p.browse,
			Bounds:   p.boundsFunc(),
		}
	})
	return p
}

func sameFiles(a, b []File) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i].Name != b[i].Name || a[i].Size != b[i].Size || a[i].MIME != b[i].MIME ||
			!bytes.Equal(a[i].Data, b[i].Data) {
			return false
		}
	}
	return true
}

// SetAcquirer replaces the acquirer.
func (p *FilePicker) SetAcquirer(a Acquirer) {
	p.mu.Lock()
	p.acquirer = a
	p.mu.Unlock()
}

// Accept returns the accepted types.
func (p *FilePicker) Accept() Accept {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append(Accept(nil), p.accept...)
}

// Multiple reports whether several files may be held.
func (p *FilePicker) Multiple() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.multiple
}

// Capture returns the "capture" hint passed to the host chooser.
func (p *FilePicker) Capture() string {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.capture
}

func (p *FilePicker) browse() {
	if p.OnBrowse != nil {
		p.OnBrowse()
	}
}

// Add acquires the handles and commits the accepted files. It returns the
// files committed by this call.
func (p *FilePicker) Add(ctx context.Context, handles ...Handle) ([]File, error) {
	if !p.Editable() {
		return nil, nil
	}
	p.mu.Lock()
	acq, accept, multiple := p.acquirer, p.accept, p.multiple
	p.mu.Unlock()

	files := make([]File, len(handles))
	errs := make([]error, len(handles))
	var wg sync.WaitGroup
	for i, h := range handles {
		i, h := i, h
		wg.Add(1)
		go func() {
			defer wg.Done()
			defer errors.RecoverWithCallback("widgets.FilePicker.Add", func(r any) {
				errs[i] = fmt.Errorf("acquire panicked: %v", r)
			})
			files[i], errs[i] = acq.Acquire(ctx, h)
		}()
	}
	wg.Wait()
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var added []File
	for i, f := range files {
		if errs[i] != nil {
			p.reject(handles[i].Name(), errs[i])
			continue
		}
		if !accept.Allows(f) {
			p.reject(f.Name, fmt.Errorf("type %s not accepted by %q", f.MIME, accept.String()))
			continue
		}
		added = append(added, f)
	}
	if len(added) == 0 {
		return nil, nil
	}
	next := added
	if multiple {
		next = append(append([]File(nil), p.Value()...), added...)
	} else {
		next = added[len(added)-1:]
	}
	p.Edit(next)
	return added, nil
}

func (p *FilePicker) reject(name string, err error) {
	errors.Report(&errors.InputError{
		Op:   "widgets.FilePicker.Add",
		Kind: errors.KindDecode,
		Tag:  p.Tag(),
		Err:  fmt.Errorf("%s: %w", name, err),
	})
}

// Remove drops the file with the given name.
func (p *FilePicker) Remove(name string) bool {
	cur := p.Value()
	next := make([]File, 0, len(cur))
	for _, f := range cur {
		if f.Name != name {
			next = append(next, f)
		}
	}
	if len(next) == len(cur) {
		return false
	}
	return p.Edit(next)
}

// Names returns the names of the held files.
func (p *FilePicker) Names() []string {
	files := p.Value()
	names := make([]string, len(files))
	for i, f := range files {
		names[i] = f.Name
	}
	return names
}

// HandlePointer opens the chooser on tap.
func (p *FilePicker) HandlePointer(event gestures.PointerEvent) {
	p.tap.HandlePointer(event)
}

// HandleKey opens the chooser on Enter or Space.
func (p *FilePicker) HandleKey(event gestures.KeyEvent) bool {
	if !p.Editable() {
		return false
	}
	switch event.Key {
	case gestures.KeyEnter, gestures.KeySpace:
		p.browse()
		return true
	}
	return false
}

// SetAttribute applies "accept", "multiple" and "capture" plus the common
// attributes. "value" cannot be set declaratively.
func (p *FilePicker) SetAttribute(name, value string) {
	p.setAttribute(name, value, true)
}

// RemoveAttribute clears an attribute.
func (p *FilePicker) RemoveAttribute(name string) {
	p.setAttribute(name, "", false)
}

func (p *FilePicker) setAttribute(name, value string, present bool) {
	if setCommonAttribute(p, &p.field, name, value, present) {
		return
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	switch name {
	case "accept":
		p.accept = nil
		if present {
			p.accept = ParseAccept(value)
		}
	case "multiple":
		p.multiple = attr.ParseFlag(value, present)
	case "capture":
		p.capture = value
	case "value":
		if present && value != "" {
			errors.ReportAttribute("widgets.FilePicker.SetAttribute", p.Tag(), name, value, "file handles added by the host")
		}
	}
}

// AnyValue returns the []File.
func (p *FilePicker) AnyValue() any {
	return p.Value()
}

// SetAnyValue accepts []File or a single File.
func (p *FilePicker) SetAnyValue(v any) error {
	switch x := v.(type) {
	case []File:
		p.SetValue(x)
	case File:
		p.SetValue([]File{x})
	case nil:
		p.ClearValue()
	default:
		return wrongType[[]File](p.Tag(), v)
	}
	return nil
}

// SetText only accepts the empty string, which clears the picker.
func (p *FilePicker) SetText(s string) error {
	if strings.TrimSpace(s) != "" {
		return fmt.Errorf("%s: files cannot be set from text", p.Tag())
	}
	p.ClearValue()
	return nil
}

// Text lists the held file names.
func (p *FilePicker) Text() string {
	return strings.Join(p.Names(), ", ")
}

// OnAny subscribes with the []File boxed as any.
func (p *FilePicker) OnAny(typ events.Type, fn func(events.Event[any])) func() {
	return onAny(p.Input, typ, fn)
}
