// Package zapjson provides a zapcore.Encoder that renders log entries as
// single-line JSON through the jsontext writer. Context fields are kept as
// pre-encoded JSON fragments so cloned loggers pay for encoding once.
package zapjson

import (
	"errors"
	"math"
	"strconv"
	"time"

	"github.com/bytedance/sonic"
	"go.uber.org/zap/buffer"
	"go.uber.org/zap/zapcore"

	"github.com/antflydb/jsontext"
)

var bufferPool = buffer.NewPool()

// Encoder implements zapcore.Encoder. Fields added before EncodeEntry are
// encoded eagerly into buf as comma-joined `"key":value` fragments.
type Encoder struct {
	*zapcore.EncoderConfig
	buf *buffer.Buffer
	ns  string // dotted namespace prefix, empty outside namespaces
}

// NewEncoder creates a JSON log encoder for the given config. The config's
// key names and line ending are honored; level, time, caller and duration
// are rendered in fixed formats (lowercase level, RFC 3339 time, trimmed
// caller path, Duration.String).
func NewEncoder(cfg zapcore.EncoderConfig) zapcore.Encoder {
	return &Encoder{
		EncoderConfig: &cfg,
		buf:           bufferPool.Get(),
	}
}

func (e *Encoder) Clone() zapcore.Encoder {
	clone := &Encoder{
		EncoderConfig: e.EncoderConfig,
		buf:           bufferPool.Get(),
		ns:            e.ns,
	}
	_, _ = clone.buf.Write(e.buf.Bytes())
	return clone
}

func (e *Encoder) EncodeEntry(ent zapcore.Entry, fields []zapcore.Field) (*buffer.Buffer, error) {
	var out jsontext.Buffer
	w := jsontext.NewWriter(&out)
	if err := w.BeginObject(); err != nil {
		return nil, err
	}
	if e.TimeKey != "" {
		if err := w.WriteTimeField(e.TimeKey, ent.Time); err != nil {
			return nil, err
		}
	}
	if e.LevelKey != "" {
		if err := w.WriteStringField(e.LevelKey, ent.Level.String()); err != nil {
			return nil, err
		}
	}
	if e.CallerKey != "" && ent.Caller.Defined {
		if err := w.WriteStringField(e.CallerKey, ent.Caller.TrimmedPath()); err != nil {
			return nil, err
		}
	}
	if e.MessageKey != "" {
		if err := w.WriteStringField(e.MessageKey, ent.Message); err != nil {
			return nil, err
		}
	}
	if ent.Stack != "" && e.StacktraceKey != "" {
		if err := w.WriteStringField(e.StacktraceKey, ent.Stack); err != nil {
			return nil, err
		}
	}

	// Pre-encoded fields from context.
	splice(&out, e.buf.Bytes())

	// Encode per-call fields through a throwaway encoder so they share the
	// fragment path with context fields.
	if len(fields) > 0 {
		tmp := &Encoder{EncoderConfig: e.EncoderConfig, buf: bufferPool.Get(), ns: e.ns}
		for i := range fields {
			fields[i].AddTo(tmp)
		}
		splice(&out, tmp.buf.Bytes())
		tmp.buf.Free()
	}

	if err := w.EndObject(); err != nil {
		return nil, err
	}

	final := bufferPool.Get()
	_, _ = final.Write(out.Bytes())
	line := e.LineEnding
	if line == "" {
		line = zapcore.DefaultLineEnding
	}
	final.AppendString(line)
	return final, nil
}

// splice appends already-encoded `"key":value` fragments into an object
// being built in out, inserting the separating comma when the object is not
// empty. The writer layered on out stays unaware of the extra bytes, which
// is safe in compact mode because only "}" follows.
func splice(out *jsontext.Buffer, frag []byte) {
	if len(frag) == 0 {
		return
	}
	region, _ := out.Reserve(len(frag) + 1)
	n := 0
	if b := out.Bytes(); len(b) > 0 && b[len(b)-1] != '{' {
		region[0] = ','
		n = 1
	}
	n += copy(region[n:], frag)
	out.Commit(n)
}

// addField encodes one `"key":value` fragment into e.buf. The value is
// produced by fn through a writer wrapped in a scratch object, then the
// braces are stripped so fragments can be comma-joined later.
func (e *Encoder) addField(key string, fn func(w *jsontext.Writer) error) error {
	var tmp jsontext.Buffer
	w := jsontext.NewWriter(&tmp)
	if err := w.BeginObject(); err != nil {
		return err
	}
	if err := w.WritePropertyName(e.ns + key); err != nil {
		return err
	}
	if err := fn(w); err != nil {
		return err
	}
	if err := w.EndObject(); err != nil {
		return err
	}
	frag := tmp.Bytes()
	frag = frag[1 : len(frag)-1]
	if e.buf.Len() > 0 {
		e.buf.AppendByte(',')
	}
	_, _ = e.buf.Write(frag)
	return nil
}

// appendFloat writes a float, falling back to the conventional string forms
// for values JSON numbers cannot represent.
func appendFloat(w *jsontext.Writer, val float64, bits int) error {
	var err error
	if bits == 32 {
		err = w.WriteFloat32(float32(val))
	} else {
		err = w.WriteFloat64(val)
	}
	if errors.Is(err, jsontext.ErrNonFiniteNumber) {
		switch {
		case math.IsNaN(val):
			return w.WriteString("NaN")
		case math.IsInf(val, 1):
			return w.WriteString("+Inf")
		default:
			return w.WriteString("-Inf")
		}
	}
	return err
}

func (e *Encoder) AddArray(key string, arr zapcore.ArrayMarshaler) error {
	return e.addField(key, func(w *jsontext.Writer) error {
		return appendArray(w, arr)
	})
}

func (e *Encoder) AddObject(key string, obj zapcore.ObjectMarshaler) error {
	return e.addField(key, func(w *jsontext.Writer) error {
		return appendObject(w, obj)
	})
}

func (e *Encoder) AddReflected(key string, val interface{}) error {
	data, err := sonic.Marshal(val)
	if err != nil {
		return err
	}
	return e.addField(key, func(w *jsontext.Writer) error {
		return w.WriteRawValue(data)
	})
}

func (e *Encoder) AddBinary(key string, val []byte) {
	_ = e.addField(key, func(w *jsontext.Writer) error { return w.WriteBase64(val) })
}

func (e *Encoder) AddByteString(key string, val []byte) {
	_ = e.addField(key, func(w *jsontext.Writer) error { return w.WriteStringBytes(val) })
}

func (e *Encoder) AddBool(key string, val bool) {
	_ = e.addField(key, func(w *jsontext.Writer) error { return w.WriteBool(val) })
}

func (e *Encoder) AddComplex128(key string, val complex128) {
	_ = e.addField(key, func(w *jsontext.Writer) error {
		return w.WriteString(strconv.FormatComplex(val, 'g', -1, 128))
	})
}

func (e *Encoder) AddComplex64(key string, val complex64) {
	_ = e.addField(key, func(w *jsontext.Writer) error {
		return w.WriteString(strconv.FormatComplex(complex128(val), 'g', -1, 64))
	})
}

func (e *Encoder) AddDuration(key string, val time.Duration) {
	_ = e.addField(key, func(w *jsontext.Writer) error { return w.WriteString(val.String()) })
}

func (e *Encoder) AddFloat64(key string, val float64) {
	_ = e.addField(key, func(w *jsontext.Writer) error { return appendFloat(w, val, 64) })
}

func (e *Encoder) AddFloat32(key string, val float32) {
	_ = e.addField(key, func(w *jsontext.Writer) error { return appendFloat(w, float64(val), 32) })
}

func (e *Encoder) AddInt(key string, val int)     { e.AddInt64(key, int64(val)) }
func (e *Encoder) AddInt32(key string, val int32) { e.AddInt64(key, int64(val)) }
func (e *Encoder) AddInt16(key string, val int16) { e.AddInt64(key, int64(val)) }
func (e *Encoder) AddInt8(key string, val int8)   { e.AddInt64(key, int64(val)) }

func (e *Encoder) AddUint64(key string, val uint64) {
	_ = e.addField(key, func(w *jsontext.Writer) error { return w.WriteUint(val) })
}

func (e *Encoder) AddInt64(key string, val int64) {
	_ = e.addField(key, func(w *jsontext.Writer) error { return w.WriteInt(val) })
}

func (e *Encoder) AddString(key, val string) {
	_ = e.addField(key, func(w *jsontext.Writer) error { return w.WriteString(val) })
}

func (e *Encoder) AddTime(key string, val time.Time) {
	_ = e.addField(key, func(w *jsontext.Writer) error { return w.WriteTime(val) })
}

func (e *Encoder) AddUint(key string, val uint)       { e.AddUint64(key, uint64(val)) }
func (e *Encoder) AddUint32(key string, val uint32)   { e.AddUint64(key, uint64(val)) }
func (e *Encoder) AddUint16(key string, val uint16)   { e.AddUint64(key, uint64(val)) }
func (e *Encoder) AddUint8(key string, val uint8)     { e.AddUint64(key, uint64(val)) }
func (e *Encoder) AddUintptr(key string, val uintptr) { e.AddUint64(key, uint64(val)) }

// OpenNamespace prefixes subsequent keys with the namespace in dotted form.
// Fragments are flat, so nesting is expressed in the key rather than with a
// wrapper object.
func (e *Encoder) OpenNamespace(key string) {
	e.ns = e.ns + key + "."
}

var _ zapcore.Encoder = (*Encoder)(nil)
