package infra

import (
	"errors"
	"fmt"
	"io"
	"path"
	"runtime"
	"strconv"
	"strings"

	"go.uber.org/multierr"
	"go.uber.org/zap/zapcore"
)

// References:
// https://github.com/pkg/errors/blob/master/stack.go

type Frame uintptr

func (frame Frame) pc() uintptr {
	return uintptr(frame) - 1
}

func (frame Frame) file() string {
	pc := frame.pc()
	fn := runtime.FuncForPC(pc)
	if fn == nil {
		return "unknownFile"
	}
	f, _ := fn.FileLine(pc)
	return f
}

func (frame Frame) line() int {
	pc := frame.pc()
	fn := runtime.FuncForPC(pc)
	if fn == nil {
		return 0
	}
	_, l := fn.FileLine(pc)
	return l
}

func (frame Frame) name() string {
	pc := frame.pc()
	fn := runtime.FuncForPC(pc)
	if fn == nil {
		return "unknownFunc"
	}
	return fn.Name()
}

// Format characters:
// %s - source file
// %d - source line
// %n - function name
// %v - verbose, equivalent to %s:%d
// %+s - full path, function name and path separated by \n\t
// %+v - equivalent to %+s:%d
func (frame Frame) Format(s fmt.State, verb rune) {
	switch verb {
	case 's':
		if s.Flag('+') {
			_, _ = io.WriteString(s, frame.name())
			_, _ = io.WriteString(s, "\n\t")
			_, _ = io.WriteString(s, frame.file())
		} else {
			_, _ = io.WriteString(s, path.Base(frame.file()))
		}
	case 'd':
		_, _ = io.WriteString(s, strconv.Itoa(frame.line()))
	case 'n':
		_, _ = io.WriteString(s, funcName(frame.name()))
	case 'v':
		frame.Format(s, 's')
		_, _ = io.WriteString(s, ":")
		frame.Format(s, 'd')
	}
}

// MarshalText renders "<function> <file>:<line>".
func (frame Frame) MarshalText() ([]byte, error) {
	name := frame.name()
	if name == "unknownFunc" {
		return []byte("unknownFrame"), nil
	}
	builder := strings.Builder{}
	_, _ = builder.WriteString(name)
	_, _ = builder.WriteString(" ")
	_, _ = builder.WriteString(frame.file())
	_, _ = builder.WriteString(":")
	_, _ = builder.WriteString(strconv.Itoa(frame.line()))
	return []byte(builder.String()), nil
}

func funcName(name string) string {
	i := strings.LastIndex(name, "/")
	name = name[i+1:]
	i = strings.Index(name, ".")
	return name[i+1:]
}

func caller(skip int) Frame {
	var pcs [1]uintptr
	if n := runtime.Callers(skip+2, pcs[:]); n < 1 {
		return 0
	}
	return Frame(pcs[0])
}

// ErrorStack keeps a group of errors with the frame where they were
// collected. It is rendered as an inline zap object, so the log aggregator
// receives the errors and the frame as JSON fields instead of a plain text stack.
type ErrorStack interface {
	error
	zapcore.ObjectMarshaler
	Unwrap() []error
	Frame() Frame
}

var _ ErrorStack = (*errorStack)(nil)

type errorStack struct {
	err   error
	frame Frame
}

func (es *errorStack) Error() string {
	if es == nil || es.err == nil {
		return ""
	}
	return es.err.Error()
}

func (es *errorStack) Unwrap() []error {
	if es == nil || es.err == nil {
		return nil
	}
	return multierr.Errors(es.err)
}

func (es *errorStack) Frame() Frame {
	return es.frame
}

func (es *errorStack) MarshalLogObject(enc zapcore.ObjectEncoder) error {
	if es == nil {
		return nil
	}
	text, _ := es.frame.MarshalText()
	enc.AddString("errorAt", string(text))
	return enc.AddArray("errors", zapcore.ArrayMarshalerFunc(func(arr zapcore.ArrayEncoder) error {
		for _, err := range multierr.Errors(es.err) {
			arr.AppendString(err.Error())
		}
		return nil
	}))
}

func NewErrorStack(errMsg string) ErrorStack {
	return &errorStack{
		err:   errors.New(errMsg),
		frame: caller(1),
	}
}

// WrapErrorStack returns nil if err is nil.
// An ErrorStack is returned as it is, the original frame is kept.
func WrapErrorStack(err error) error {
	if err == nil {
		return nil
	}
	if es, ok := err.(ErrorStack); ok {
		return es
	}
	return &errorStack{
		err:   err,
		frame: caller(1),
	}
}

// WrapErrorStackWithMessage appends a new error with errMsg to err.
func WrapErrorStackWithMessage(err error, errMsg string) error {
	if err == nil {
		return nil
	}
	frame := caller(1)
	if es, ok := err.(*errorStack); ok && es != nil {
		frame = es.frame
		err = es.err
	}
	return &errorStack{
		err:   multierr.Append(err, errors.New(errMsg)),
		frame: frame,
	}
}

// AppendErrorStack collects errs into the stack of dst.
// The nil errors are ignored and the nested stacks are flattened,
// only the frame of dst is kept.
func AppendErrorStack(dst error, errs ...error) error {
	merr := dst
	frame := caller(1)
	if es, ok := dst.(*errorStack); ok && es != nil {
		merr, frame = es.err, es.frame
	}
	for _, err := range errs {
		if es, ok := err.(*errorStack); ok && es != nil {
			err = es.err
		}
		merr = multierr.Append(merr, err)
	}
	if merr == nil {
		return nil
	}
	return &errorStack{
		err:   merr,
		frame: frame,
	}
}
