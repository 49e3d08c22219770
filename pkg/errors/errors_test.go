package errors

import (
	"bytes"
	stderrors "errors"
	"strings"
	"testing"
	"time"
)

func TestControlErrorString(t *testing.T) {
	err := &ControlError{
		Op:   "widgets.FloatingLabelField.SetAlignment",
		Kind: KindConfig,
		Err:  &ConfigError{Field: "alignment", Value: "right", Reason: "use left or center"},
	}
	got := err.Error()
	want := `widgets.FloatingLabelField.SetAlignment [config]: invalid alignment "right": use left or center`
	if got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
}

func TestControlErrorUnwrap(t *testing.T) {
	cfg := &ConfigError{Field: "alignment", Value: "justify"}
	err := error(&ControlError{Op: "op", Kind: KindConfig, Err: cfg})

	var target *ConfigError
	if !stderrors.As(err, &target) {
		t.Fatal("expected errors.As to find ConfigError")
	}
	if target.Value != "justify" {
		t.Errorf("Value = %q, want %q", target.Value, "justify")
	}
}

func TestConfigErrorWithoutReason(t *testing.T) {
	err := &ConfigError{Field: "color", Value: "#zz"}
	if got, want := err.Error(), `invalid color "#zz"`; got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
}

func TestErrorKindString(t *testing.T) {
	tests := []struct {
		kind ErrorKind
		want string
	}{
		{KindUnknown, "unknown"},
		{KindConfig, "config"},
		{KindInit, "init"},
		{KindPanic, "panic"},
		{KindTheme, "theme"},
	}
	for _, tt := range tests {
		if got := tt.kind.String(); got != tt.want {
			t.Errorf("ErrorKind(%d).String() = %q, want %q", tt.kind, got, tt.want)
		}
	}
}

func TestPanicErrorString(t *testing.T) {
	err := &PanicError{Value: "test panic", Timestamp: time.Now()}
	if got, want := err.Error(), "panic: test panic"; got != want {
		t.Errorf("PanicError.Error() = %q, want %q", got, want)
	}

	err.Op = "widgets.PageIndicator.Paint"
	if got, want := err.Error(), "panic in widgets.PageIndicator.Paint: test panic"; got != want {
		t.Errorf("PanicError.Error() = %q, want %q", got, want)
	}
}

func TestReport(t *testing.T) {
	var captured *ControlError
	restore := installHandler(&testHandler{onError: func(err *ControlError) { captured = err }})
	defer restore()

	Report(&ControlError{Op: "test.op", Kind: KindInit, Err: stderrors.New("boom")})

	if captured == nil {
		t.Fatal("expected error to be captured")
	}
	if captured.Op != "test.op" {
		t.Errorf("Op = %q, want %q", captured.Op, "test.op")
	}
	if captured.Timestamp.IsZero() {
		t.Error("expected Timestamp to be set")
	}
}

func TestReportConfig(t *testing.T) {
	var captured *ControlError
	restore := installHandler(&testHandler{onError: func(err *ControlError) { captured = err }})
	defer restore()

	err := ReportConfig("theme.Parse", &ConfigError{Field: "alignment", Value: "end"})
	if err == nil {
		t.Fatal("expected returned error")
	}
	if captured == nil || captured.Kind != KindConfig {
		t.Fatalf("expected a config error to be reported, got %+v", captured)
	}
	if !strings.Contains(captured.StackTrace, "TestReportConfig") {
		t.Errorf("expected stack trace to include the reporting test, got %q", captured.StackTrace)
	}
}

func TestReport_KeepsStackTrace(t *testing.T) {
	var captured *ControlError
	restore := installHandler(&testHandler{onError: func(err *ControlError) { captured = err }})
	defer restore()

	Report(&ControlError{Op: "op", Kind: KindInit, Err: stderrors.New("x"), StackTrace: "given"})
	if captured == nil || captured.StackTrace != "given" {
		t.Errorf("expected caller-supplied stack trace to be kept, got %+v", captured)
	}
}

func TestRecover(t *testing.T) {
	var captured *PanicError
	restore := installHandler(&testHandler{onPanic: func(err *PanicError) { captured = err }})
	defer restore()

	func() {
		defer Recover("test.recover")
		panic("intentional test panic")
	}()

	if captured == nil {
		t.Fatal("expected panic to be recovered and captured")
	}
	if captured.Value != "intentional test panic" {
		t.Errorf("Value = %v, want %q", captured.Value, "intentional test panic")
	}
	if captured.Op != "test.recover" {
		t.Errorf("Op = %q, want %q", captured.Op, "test.recover")
	}
	if captured.StackTrace == "" {
		t.Error("expected stack trace")
	}
}

func TestCaptureStack(t *testing.T) {
	stack := CaptureStack()
	if stack == "" {
		t.Error("expected non-empty stack trace")
	}
	if !strings.Contains(stack, "testing") && !strings.Contains(stack, "runtime") {
		t.Errorf("stack trace should contain testing or runtime frames, got: %s", stack)
	}
}

func TestSetHandlerNil(t *testing.T) {
	SetHandler(nil)
	if _, ok := DefaultHandler.(*LogHandler); !ok {
		t.Errorf("SetHandler(nil) should set LogHandler, got %T", DefaultHandler)
	}
}

func TestLogHandler(t *testing.T) {
	var buf bytes.Buffer
	h := &LogHandler{Out: &buf}

	h.HandleError(&ControlError{Op: "graphics.DefaultFontManager", Kind: KindInit, Err: stderrors.New("no font")})
	h.HandlePanic(&PanicError{Op: "widgets.PageIndicator.Paint", Value: "nil canvas", StackTrace: "frames"})

	out := buf.String()
	for _, want := range []string{
		"[controls error] graphics.DefaultFontManager: no font",
		"[controls panic] widgets.PageIndicator.Paint: nil canvas",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("log output %q missing %q", out, want)
		}
	}
	if strings.Contains(out, "frames") {
		t.Error("non-verbose handler should not print stack traces")
	}

	buf.Reset()
	h.Verbose = true
	h.HandleError(&ControlError{Op: "op", Kind: KindTheme, Err: stderrors.New("x"), StackTrace: "frames"})
	if !strings.Contains(buf.String(), "[theme]") || !strings.Contains(buf.String(), "frames") {
		t.Errorf("verbose output missing kind or stack: %q", buf.String())
	}
}

func installHandler(h ErrorHandler) func() {
	old := DefaultHandler
	SetHandler(h)
	return func() { SetHandler(old) }
}

type testHandler struct {
	onError func(*ControlError)
	onPanic func(*PanicError)
}

func (h *testHandler) HandleError(err *ControlError) {
	if h.onError != nil {
		h.onError(err)
	}
}

func (h *testHandler) HandlePanic(err *PanicError) {
	if h.onPanic != nil {
		h.onPanic(err)
	}
}
