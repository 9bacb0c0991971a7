package bloom

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/bits-and-blooms/bitset"
)

// ErrSerializationMismatch is returned when a serialized bit vector does not
// fit the filter it is being loaded into.
var ErrSerializationMismatch = errors.New("bloom: serialized data does not match filter size")

// ResourceError records a failed file operation on a serialized filter.
type ResourceError struct {
	Op   string
	Path string
	Err  error
}

func (e *ResourceError) Error() string {
	return "bloom: " + e.Op + " " + e.Path + ": " + e.Err.Error()
}

func (e *ResourceError) Unwrap() error {
	return e.Err
}

// SerializedSize returns the length in bytes of the serialized bit vector.
func (f *Filter) SerializedSize() int {
	return int((f.size + 7) / 8)
}

// MarshalBinary serializes the bit vector. The format is ceil(size/8) raw
// bytes with bit j of the vector in bit j%8 of byte j/8. Size, probe count
// and hasher are not included.
func (f *Filter) MarshalBinary() ([]byte, error) {
	words := f.bits.Words()
	buf := make([]byte, f.SerializedSize())
	for j := range buf {
		buf[j] = byte(words[j/8] >> (8 * (j % 8)))
	}
	return buf, nil
}

// UnmarshalBinary replaces the bit vector with the contents of data, which
// must have been produced by a filter of the same size. On error the filter
// is left unchanged. The item count is reset to zero.
func (f *Filter) UnmarshalBinary(data []byte) error {
	if len(data) != f.SerializedSize() {
		return fmt.Errorf("%w: got %d bytes, expected %d for %d bits",
			ErrSerializationMismatch, len(data), f.SerializedSize(), f.size)
	}

	// Bits past the end of the vector must be zero.
	if tail := f.size % 8; tail != 0 {
		if data[len(data)-1]>>tail != 0 {
			return fmt.Errorf("%w: padding bits set in final byte", ErrSerializationMismatch)
		}
	}

	words := make([]uint64, (f.size+63)/64)
	for j, b := range data {
		words[j/8] |= uint64(b) << (8 * (j % 8))
	}

	f.bits = bitset.FromWithLength(uint(f.size), words)
	f.count = 0
	return nil
}

// WriteTo writes the serialized bit vector to w.
func (f *Filter) WriteTo(w io.Writer) (int64, error) {
	data, err := f.MarshalBinary()
	if err != nil {
		return 0, err
	}
	n, err := w.Write(data)
	return int64(n), err
}

// ReadFrom reads a serialized bit vector from r until EOF and loads it into
// the filter. Both short and over-long payloads are rejected with
// [ErrSerializationMismatch].
func (f *Filter) ReadFrom(r io.Reader) (int64, error) {
	buf := make([]byte, f.SerializedSize())
	n, err := io.ReadFull(r, buf)
	if err != nil {
		if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
			return int64(n), fmt.Errorf("%w: got %d bytes, expected %d for %d bits",
				ErrSerializationMismatch, n, len(buf), f.size)
		}
		return int64(n), err
	}

	var extra [1]byte
	m, err := io.ReadFull(r, extra[:])
	if m > 0 {
		return int64(n + m), fmt.Errorf("%w: trailing data after %d bytes", ErrSerializationMismatch, n)
	}
	if !errors.Is(err, io.EOF) {
		return int64(n), err
	}

	return int64(n), f.UnmarshalBinary(buf)
}

// SaveFile writes the serialized bit vector to path, creating or truncating
// the file.
func (f *Filter) SaveFile(path string) (err error) {
	file, err := os.Create(path)
	if err != nil {
		return &ResourceError{Op: "create", Path: path, Err: unwrapPathError(err)}
	}
	defer func() {
		if cerr := file.Close(); cerr != nil && err == nil {
			err = &ResourceError{Op: "close", Path: path, Err: unwrapPathError(cerr)}
		}
	}()

	if _, err := f.WriteTo(file); err != nil {
		return &ResourceError{Op: "write", Path: path, Err: unwrapPathError(err)}
	}
	return nil
}

// LoadFile replaces the bit vector with the serialized contents of path.
func (f *Filter) LoadFile(path string) error {
	file, err := os.Open(path)
	if err != nil {
		return &ResourceError{Op: "open", Path: path, Err: unwrapPathError(err)}
	}
	defer file.Close()

	if _, err := f.ReadFrom(file); err != nil {
		if errors.Is(err, ErrSerializationMismatch) {
			return fmt.Errorf("%s: %w", path, err)
		}
		return &ResourceError{Op: "read", Path: path, Err: unwrapPathError(err)}
	}
	return nil
}

// unwrapPathError strips the *os.PathError layer so the path is not
// reported twice.
func unwrapPathError(err error) error {
	var pe *os.PathError
	if errors.As(err, &pe) {
		return pe.Err
	}
	return err
}
