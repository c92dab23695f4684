package shared

import (
	"fmt"
	"log/slog"

	"github.com/go-logr/logr"
	"go.uber.org/zap/zapcore"
)

var (
	_ zapcore.ObjectMarshaler = Error{}
	_ logr.Marshaler          = Error{}
	_ slog.LogValuer          = Error{}
)

// MarshalLogObject renders s as a zap object: message, type, chain and,
// when one exists, backtrace.
func (s Error) MarshalLogObject(enc zapcore.ObjectEncoder) error {
	enc.AddString("message", s.Error())
	enc.AddString("type", s.typeName())

	if err := enc.AddArray("chain", chainArray(s.Chain())); err != nil {
		return err
	}

	if bt := s.Backtrace(); len(bt) > 0 {
		enc.AddString("backtrace", fmt.Sprintf("%+v", bt))
	}

	return nil
}

// MarshalLog renders s for logr sinks with the same fields as MarshalLogObject.
func (s Error) MarshalLog() any {
	out := map[string]any{
		"message": s.Error(),
		"type":    s.typeName(),
		"chain":   chainStrings(s.Chain()),
	}

	if bt := s.Backtrace(); len(bt) > 0 {
		out["backtrace"] = fmt.Sprintf("%+v", bt)
	}

	return out
}

// LogValue renders s as a slog group.
func (s Error) LogValue() slog.Value {
	attrs := []slog.Attr{
		slog.String("message", s.Error()),
		slog.String("type", s.typeName()),
		slog.Any("chain", chainStrings(s.Chain())),
	}

	if bt := s.Backtrace(); len(bt) > 0 {
		attrs = append(attrs, slog.String("backtrace", fmt.Sprintf("%+v", bt)))
	}

	return slog.GroupValue(attrs...)
}

func (s Error) typeName() string {
	if s.inner == nil {
		return "<nil>"
	}

	return fmt.Sprintf("%T", s.Cause())
}

type chainArray []error

func (c chainArray) MarshalLogArray(enc zapcore.ArrayEncoder) error {
	for _, err := range c {
		enc.AppendString(err.Error())
	}

	return nil
}

func chainStrings(chain []error) []string {
	out := make([]string, 0, len(chain))
	for _, err := range chain {
		out = append(out, err.Error())
	}

	return out
}
