package errors

import (
	"bytes"
	stderrors "errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInputErrorString(t *testing.T) {
	err := &InputError{
		Op:   "widgets.Slider.SetAttribute",
		Kind: KindAttribute,
		Err:  &AttributeError{Name: "max", Raw: "ten", Want: "number"},
	}
	assert.Equal(t, `widgets.Slider.SetAttribute [attribute]: invalid max attribute "ten": want number`, err.Error())
}

func TestInputErrorWithTag(t *testing.T) {
	err := &InputError{
		Op:   "widgets.Slider.SetAttribute",
		Kind: KindAttribute,
		Tag:  "input-slider",
		Err:  &AttributeError{Name: "max", Raw: "ten", Want: "number"},
	}
	assert.Contains(t, err.Error(), "tag=input-slider")
}

func TestInputErrorUnwrap(t *testing.T) {
	attrErr := &AttributeError{Name: "step", Raw: "x", Want: "number"}
	err := &InputError{Op: "op", Kind: KindAttribute, Err: attrErr}

	var target *AttributeError
	require.True(t, stderrors.As(err, &target))
	assert.Equal(t, "step", target.Name)
}

func TestErrorKindString(t *testing.T) {
	tests := []struct {
		kind ErrorKind
		want string
	}{
		{KindUnknown, "unknown"},
		{KindAttribute, "attribute"},
		{KindCapability, "capability"},
		{KindListener, "listener"},
		{KindDecode, "decode"},
		{KindConfig, "config"},
		{KindPanic, "panic"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.kind.String(), "ErrorKind(%d)", tt.kind)
	}
}

func TestPanicErrorString(t *testing.T) {
	err := &PanicError{Value: "test panic", Timestamp: time.Now()}
	assert.Equal(t, "panic: test panic", err.Error())

	err.Op = "events.SyncDispatcher"
	assert.Equal(t, "panic in events.SyncDispatcher: test panic", err.Error())
}

func TestCapabilityError(t *testing.T) {
	err := &CapabilityError{Capability: "value", Tag: "input-file"}
	assert.Equal(t, `input-file does not implement "value"`, err.Error())

	err = &CapabilityError{Capability: "value"}
	assert.Equal(t, `<unconfigured> does not implement "value"`, err.Error())
}

func TestUnimplementedPanics(t *testing.T) {
	defer func() {
		r := recover()
		require.NotNil(t, r)
		capErr, ok := r.(*CapabilityError)
		require.True(t, ok, "expected *CapabilityError, got %T", r)
		assert.Equal(t, "focus", capErr.Capability)
		assert.Equal(t, "input-text", capErr.Tag)
	}()
	Unimplemented("input-text", "focus")
}

func TestReport(t *testing.T) {
	var captured *InputError
	handler := &testHandler{onError: func(err *InputError) { captured = err }}

	prev := SetHandler(handler)
	defer SetHandler(prev)

	Report(&InputError{Op: "test.op", Kind: KindConfig, Err: stderrors.New("boom")})

	require.NotNil(t, captured)
	assert.Equal(t, "test.op", captured.Op)
	assert.False(t, captured.Timestamp.IsZero(), "expected Timestamp to be set")
}

func TestReportAttribute(t *testing.T) {
	var captured *InputError
	handler := &testHandler{onError: func(err *InputError) { captured = err }}

	prev := SetHandler(handler)
	defer SetHandler(prev)

	ReportAttribute("widgets.Number.SetAttribute", "input-number", "min", "abc", "number")

	require.NotNil(t, captured)
	assert.Equal(t, KindAttribute, captured.Kind)
	assert.Equal(t, "input-number", captured.Tag)
	var attrErr *AttributeError
	require.True(t, stderrors.As(captured, &attrErr))
	assert.Equal(t, "abc", attrErr.Raw)
}

func TestReportNil(t *testing.T) {
	called := false
	prev := SetHandler(&testHandler{
		onError: func(*InputError) { called = true },
		onPanic: func(*PanicError) { called = true },
	})
	defer SetHandler(prev)

	Report(nil)
	ReportPanic(nil)
	assert.False(t, called)
}

func TestRecover(t *testing.T) {
	var captured *PanicError
	prev := SetHandler(&testHandler{onPanic: func(err *PanicError) { captured = err }})
	defer SetHandler(prev)

	func() {
		defer Recover("test.recover")
		panic("intentional test panic")
	}()

	require.NotNil(t, captured)
	assert.Equal(t, "intentional test panic", captured.Value)
	assert.Equal(t, "test.recover", captured.Op)
	assert.NotEmpty(t, captured.StackTrace)
}

func TestRecoverWithCallback(t *testing.T) {
	prev := SetHandler(&testHandler{})
	defer SetHandler(prev)

	var got any
	func() {
		defer RecoverWithCallback("test.callback", func(r any) { got = r })
		panic(42)
	}()
	assert.Equal(t, 42, got)
}

func TestCaptureStack(t *testing.T) {
	stack := CaptureStack()
	require.NotEmpty(t, stack)
	assert.True(t, strings.Contains(stack, "testing") || strings.Contains(stack, "runtime"),
		"stack trace should contain testing or runtime frames, got: %s", stack)
}

func TestSetHandlerNil(t *testing.T) {
	prev := SetHandler(nil)
	defer SetHandler(prev)

	_, ok := DefaultHandler.(*LogHandler)
	assert.True(t, ok, "SetHandler(nil) should install a LogHandler")
}

func TestLogHandler(t *testing.T) {
	var buf bytes.Buffer
	h := &LogHandler{Out: &buf}
	h.HandleError(&InputError{Op: "widgets.Time.SetAttribute", Kind: KindAttribute, Tag: "input-time", Err: stderrors.New("bad")})
	assert.Equal(t, "[formkit error] widgets.Time.SetAttribute: bad\n", buf.String())

	buf.Reset()
	h.Verbose = true
	h.HandleError(&InputError{Op: "op", Kind: KindDecode, Tag: "input-image", Err: stderrors.New("bad"), StackTrace: "frames"})
	assert.Contains(t, buf.String(), "[formkit error] op [decode] tag=input-image: bad")
	assert.Contains(t, buf.String(), "Stack trace:\nframes")

	buf.Reset()
	h.HandlePanic(&PanicError{Op: "op", Value: "v"})
	assert.Equal(t, "[formkit panic] op: v\n", buf.String())
}

type testHandler struct {
	onError func(*InputError)
	onPanic func(*PanicError)
}

func (h *testHandler) HandleError(err *InputError) {
	if h.onError != nil {
		h.onError(err)
	}
}

func (h *testHandler) HandlePanic(err *PanicError) {
	if h.onPanic != nil {
		h.onPanic(err)
	}
}
