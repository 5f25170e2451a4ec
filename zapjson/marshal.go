package zapjson

import (
	"strconv"
	"time"

	"github.com/bytedance/sonic"
	"go.uber.org/zap/zapcore"

	"github.com/antflydb/jsontext"
)

// appendObject renders an ObjectMarshaler as a nested JSON object directly
// through the writer.
func appendObject(w *jsontext.Writer, obj zapcore.ObjectMarshaler) error {
	if err := w.BeginObject(); err != nil {
		return err
	}
	enc := &objectEncoder{w: w}
	if err := obj.MarshalLogObject(enc); err != nil {
		return err
	}
	if enc.err != nil {
		return enc.err
	}
	for ; enc.open > 0; enc.open-- {
		if err := w.EndObject(); err != nil {
			return err
		}
	}
	return w.EndObject()
}

// appendArray renders an ArrayMarshaler as a nested JSON array.
func appendArray(w *jsontext.Writer, arr zapcore.ArrayMarshaler) error {
	if err := w.BeginArray(); err != nil {
		return err
	}
	enc := &arrayEncoder{w: w}
	if err := arr.MarshalLogArray(enc); err != nil {
		return err
	}
	if enc.err != nil {
		return enc.err
	}
	return w.EndArray()
}

// objectEncoder adapts the writer to zapcore.ObjectEncoder for nested
// marshalers. The interface's scalar methods cannot return errors, so the
// first writer failure is recorded and surfaced by appendObject.
type objectEncoder struct {
	w    *jsontext.Writer
	open int // namespaces opened via OpenNamespace, closed by appendObject
	err  error
}

func (o *objectEncoder) record(err error) {
	if o.err == nil {
		o.err = err
	}
}

func (o *objectEncoder) AddArray(key string, arr zapcore.ArrayMarshaler) error {
	if err := o.w.WritePropertyName(key); err != nil {
		return err
	}
	return appendArray(o.w, arr)
}

func (o *objectEncoder) AddObject(key string, obj zapcore.ObjectMarshaler) error {
	if err := o.w.WritePropertyName(key); err != nil {
		return err
	}
	return appendObject(o.w, obj)
}

func (o *objectEncoder) AddReflected(key string, val interface{}) error {
	data, err := sonic.Marshal(val)
	if err != nil {
		return err
	}
	return o.w.WriteRawValueField(key, data)
}

func (o *objectEncoder) AddBinary(key string, val []byte) {
	o.record(o.w.WriteBase64Field(key, val))
}

func (o *objectEncoder) AddByteString(key string, val []byte) {
	if err := o.w.WritePropertyName(key); err != nil {
		o.record(err)
		return
	}
	o.record(o.w.WriteStringBytes(val))
}

func (o *objectEncoder) AddBool(key string, val bool) {
	o.record(o.w.WriteBoolField(key, val))
}

func (o *objectEncoder) AddComplex128(key string, val complex128) {
	o.record(o.w.WriteStringField(key, strconv.FormatComplex(val, 'g', -1, 128)))
}

func (o *objectEncoder) AddComplex64(key string, val complex64) {
	o.record(o.w.WriteStringField(key, strconv.FormatComplex(complex128(val), 'g', -1, 64)))
}

func (o *objectEncoder) AddDuration(key string, val time.Duration) {
	o.record(o.w.WriteStringField(key, val.String()))
}

func (o *objectEncoder) AddFloat64(key string, val float64) {
	if err := o.w.WritePropertyName(key); err != nil {
		o.record(err)
		return
	}
	o.record(appendFloat(o.w, val, 64))
}

func (o *objectEncoder) AddFloat32(key string, val float32) {
	if err := o.w.WritePropertyName(key); err != nil {
		o.record(err)
		return
	}
	o.record(appendFloat(o.w, float64(val), 32))
}

func (o *objectEncoder) AddInt(key string, val int)     { o.AddInt64(key, int64(val)) }
func (o *objectEncoder) AddInt32(key string, val int32) { o.AddInt64(key, int64(val)) }
func (o *objectEncoder) AddInt16(key string, val int16) { o.AddInt64(key, int64(val)) }
func (o *objectEncoder) AddInt8(key string, val int8)   { o.AddInt64(key, int64(val)) }

func (o *objectEncoder) AddInt64(key string, val int64) {
	o.record(o.w.WriteIntField(key, val))
}

func (o *objectEncoder) AddString(key, val string) {
	o.record(o.w.WriteStringField(key, val))
}

func (o *objectEncoder) AddTime(key string, val time.Time) {
	o.record(o.w.WriteTimeField(key, val))
}

func (o *objectEncoder) AddUint(key string, val uint)       { o.AddUint64(key, uint64(val)) }
func (o *objectEncoder) AddUint32(key string, val uint32)   { o.AddUint64(key, uint64(val)) }
func (o *objectEncoder) AddUint16(key string, val uint16)   { o.AddUint64(key, uint64(val)) }
func (o *objectEncoder) AddUint8(key string, val uint8)     { o.AddUint64(key, uint64(val)) }
func (o *objectEncoder) AddUintptr(key string, val uintptr) { o.AddUint64(key, uint64(val)) }

func (o *objectEncoder) AddUint64(key string, val uint64) {
	o.record(o.w.WriteUintField(key, val))
}

func (o *objectEncoder) OpenNamespace(key string) {
	if err := o.w.BeginObjectField(key); err != nil {
		o.record(err)
		return
	}
	o.open++
}

var _ zapcore.ObjectEncoder = (*objectEncoder)(nil)

// arrayEncoder adapts the writer to zapcore.ArrayEncoder.
type arrayEncoder struct {
	w   *jsontext.Writer
	err error
}

func (a *arrayEncoder) record(err error) {
	if a.err == nil {
		a.err = err
	}
}

func (a *arrayEncoder) AppendArray(arr zapcore.ArrayMarshaler) error {
	return appendArray(a.w, arr)
}

func (a *arrayEncoder) AppendObject(obj zapcore.ObjectMarshaler) error {
	return appendObject(a.w, obj)
}

func (a *arrayEncoder) AppendReflected(val interface{}) error {
	data, err := sonic.Marshal(val)
	if err != nil {
		return err
	}
	return a.w.WriteRawValue(data)
}

func (a *arrayEncoder) AppendBool(val bool) {
	a.record(a.w.WriteBool(val))
}

func (a *arrayEncoder) AppendByteString(val []byte) {
	a.record(a.w.WriteStringBytes(val))
}

func (a *arrayEncoder) AppendComplex128(val complex128) {
	a.record(a.w.WriteString(strconv.FormatComplex(val, 'g', -1, 128)))
}

func (a *arrayEncoder) AppendComplex64(val complex64) {
	a.record(a.w.WriteString(strconv.FormatComplex(complex128(val), 'g', -1, 64)))
}

func (a *arrayEncoder) AppendDuration(val time.Duration) {
	a.record(a.w.WriteString(val.String()))
}

func (a *arrayEncoder) AppendFloat64(val float64) {
	a.record(appendFloat(a.w, val, 64))
}

func (a *arrayEncoder) AppendFloat32(val float32) {
	a.record(appendFloat(a.w, float64(val), 32))
}

func (a *arrayEncoder) AppendInt(val int)     { a.AppendInt64(int64(val)) }
func (a *arrayEncoder) AppendInt32(val int32) { a.AppendInt64(int64(val)) }
func (a *arrayEncoder) AppendInt16(val int16) { a.AppendInt64(int64(val)) }
func (a *arrayEncoder) AppendInt8(val int8)   { a.AppendInt64(int64(val)) }

func (a *arrayEncoder) AppendInt64(val int64) {
	a.record(a.w.WriteInt(val))
}

func (a *arrayEncoder) AppendString(val string) {
	a.record(a.w.WriteString(val))
}

func (a *arrayEncoder) AppendTime(val time.Time) {
	a.record(a.w.WriteTime(val))
}

func (a *arrayEncoder) AppendUint(val uint)       { a.AppendUint64(uint64(val)) }
func (a *arrayEncoder) AppendUint32(val uint32)   { a.AppendUint64(uint64(val)) }
func (a *arrayEncoder) AppendUint16(val uint16)   { a.AppendUint64(uint64(val)) }
func (a *arrayEncoder) AppendUint8(val uint8)     { a.AppendUint64(uint64(val)) }
func (a *arrayEncoder) AppendUintptr(val uintptr) { a.AppendUint64(uint64(val)) }

func (a *arrayEncoder) AppendUint64(val uint64) {
	a.record(a.w.WriteUint(val))
}

var _ zapcore.ArrayEncoder = (*arrayEncoder)(nil)
