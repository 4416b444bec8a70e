package hashing

import (
	"encoding/binary"
	"hash"
	"math"
	"reflect"

	"github.com/zeebo/xxh3"
)

// HashCoder is implemented by values that compute their own 64-bit hash code.
// A type that defines its own notion of equality should implement HashCoder
// so that equal values keep producing equal codes. This includes pointer
// graphs whose cycles can differ in length between equal values (see
// UpdateValue).
type HashCoder interface {
	HashCode() uint64
}

// Kind tags prefix every encoded value so that, for example, the string "1"
// and the integer 1 do not write the same bytes.
const (
	tagNil uint64 = iota + 1
	tagBool
	tagInt
	tagUint
	tagFloat
	tagComplex
	tagString
	tagSequence
	tagMap
	tagPointer
	tagStruct
	tagFunc
	tagIdentity
	tagCycle
)

// UpdateValue writes a deterministic structural encoding of value to h.
//
// The encoding follows reflect.DeepEqual: values that are deeply equal always
// write the same bytes. Map entries are combined without regard to iteration
// order, -0.0 and +0.0 encode identically, pointers are followed (a pointer
// cycle writes a marker instead of recursing), and channels and unsafe
// pointers are written by identity. Unexported struct fields are included.
//
// Cycles are the one exception. The marker is written where a reference
// repeats, so the bytes depend on the length of the cycle. A node pointing to
// itself and a two-node ring are deeply equal but encode differently; cycles
// of the same shape encode the same.
func UpdateValue(h hash.Hash, value any) error {
	w := &valueWriter{
		h:      h,
		active: make(map[visit]struct{}),
	}

	w.value(reflect.ValueOf(value))

	return w.err
}

// Code returns a 64-bit hash code for value. A HashCoder supplies its own
// code; anything else is hashed structurally with xxh3 (see UpdateValue).
func Code(value any) uint64 {
	if coder, ok := value.(HashCoder); ok && !isNilPointer(value) {
		return coder.HashCode()
	}

	h := xxh3.New()

	// xxh3.Hasher never fails a write.
	_ = UpdateValue(h, value)

	return h.Sum64()
}

// Combine folds hash codes into one, in order. Swapping two codes changes the
// result.
func Combine(codes ...uint64) uint64 {
	buf := make([]byte, 8*len(codes))

	for i, code := range codes {
		binary.LittleEndian.PutUint64(buf[8*i:], code)
	}

	return xxh3.Hash(buf)
}

// isNilPointer guards method calls through nil pointers whose element type
// has value-receiver methods.
func isNilPointer(value any) bool {
	v := reflect.ValueOf(value)

	return v.Kind() == reflect.Pointer && v.IsNil()
}

type visit struct {
	ptr uintptr
	typ reflect.Type
	len int
}

type valueWriter struct {
	h      hash.Hash
	err    error
	active map[visit]struct{}
	buf    [8]byte
}

func (w *valueWriter) word(v uint64) {
	if w.err != nil {
		return
	}

	binary.LittleEndian.PutUint64(w.buf[:], v)

	_, w.err = w.h.Write(w.buf[:])
}

func (w *valueWriter) text(s string) {
	w.word(uint64(len(s)))

	if w.err != nil {
		return
	}

	_, w.err = w.h.Write([]byte(s))
}

// enter marks a reference as being on the current path. It reports false
// when the reference is already there, in which case a cycle marker has been
// written and the caller must not descend.
func (w *valueWriter) enter(key visit) bool {
	if _, ok := w.active[key]; ok {
		w.word(tagCycle)

		return false
	}

	w.active[key] = struct{}{}

	return true
}

func (w *valueWriter) leave(key visit) {
	delete(w.active, key)
}

//nolint:cyclop,funlen
func (w *valueWriter) value(v reflect.Value) {
	if w.err != nil {
		return
	}

	if !v.IsValid() {
		w.word(tagNil)

		return
	}

	switch v.Kind() {
	case reflect.Bool:
		w.word(tagBool)

		if v.Bool() {
			w.word(1)
		} else {
			w.word(0)
		}
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		w.word(tagInt)
		w.word(uint64(v.Int())) //nolint:gosec
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		w.word(tagUint)
		w.word(v.Uint())
	case reflect.Float32, reflect.Float64:
		w.word(tagFloat)
		w.word(math.Float64bits(normalizeFloat(v.Float())))
	case reflect.Complex64, reflect.Complex128:
		c := v.Complex()

		w.word(tagComplex)
		w.word(math.Float64bits(normalizeFloat(real(c))))
		w.word(math.Float64bits(normalizeFloat(imag(c))))
	case reflect.String:
		w.word(tagString)
		w.text(v.String())
	case reflect.Array:
		w.sequence(v)
	case reflect.Slice:
		if v.IsNil() {
			w.word(tagNil)

			return
		}

		key := visit{ptr: v.Pointer(), typ: v.Type(), len: v.Len()}
		if !w.enter(key) {
			return
		}

		w.sequence(v)
		w.leave(key)
	case reflect.Map:
		if v.IsNil() {
			w.word(tagNil)

			return
		}

		key := visit{ptr: v.Pointer(), typ: v.Type()}
		if !w.enter(key) {
			return
		}

		w.mapping(v)
		w.leave(key)
	case reflect.Pointer:
		if v.IsNil() {
			w.word(tagNil)

			return
		}

		key := visit{ptr: v.Pointer(), typ: v.Type()}
		if !w.enter(key) {
			return
		}

		w.word(tagPointer)
		w.value(v.Elem())
		w.leave(key)
	case reflect.Interface:
		if v.IsNil() {
			w.word(tagNil)

			return
		}

		w.value(v.Elem())
	case reflect.Struct:
		w.word(tagStruct)
		w.word(uint64(v.NumField()))

		for i := range v.NumField() {
			w.value(v.Field(i))
		}
	case reflect.Func:
		// Non-nil funcs are never deeply equal, so only nil-ness is encoded.
		w.word(tagFunc)

		if v.IsNil() {
			w.word(0)
		} else {
			w.word(1)
		}
	case reflect.Chan, reflect.UnsafePointer:
		w.word(tagIdentity)
		w.word(uint64(v.Pointer()))
	case reflect.Invalid:
		w.word(tagNil)
	}
}

func (w *valueWriter) sequence(v reflect.Value) {
	w.word(tagSequence)
	w.word(uint64(v.Len()))

	for i := range v.Len() {
		w.value(v.Index(i))
	}
}

// mapping sums per-entry digests, so the result does not depend on the
// order MapRange visits entries in.
func (w *valueWriter) mapping(v reflect.Value) {
	var sum uint64

	iter := v.MapRange()
	for iter.Next() {
		hasher := xxh3.New()
		entry := &valueWriter{
			h:      hasher,
			active: w.active,
		}

		entry.value(iter.Key())
		entry.value(iter.Value())

		if entry.err != nil {
			w.err = entry.err

			return
		}

		sum += hasher.Sum64()
	}

	w.word(tagMap)
	w.word(uint64(v.Len()))
	w.word(sum)
}
