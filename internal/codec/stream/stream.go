// Package stream wraps a byte stream with endian-aware primitive reads and
// writes, token-delimited string scanning, padding, and a LIFO stack of
// saved positions for scoped relocation.
//
// A Stream never owns the underlying reader/writer: it does not open or
// close it, and seeking is discovered by interface assertion. Operations
// are synchronous; a Stream must not be shared across goroutines without
// external synchronization.
package stream

import (
	"errors"
	"io"
)

var (
	// ErrSeekUnsupported is returned when an operation needs to reposition
	// the stream but the underlying value does not implement io.Seeker.
	ErrSeekUnsupported = errors.New("underlying stream does not support seeking")

	// ErrNoSavedPosition is returned by Restore when the position stack is
	// empty.
	ErrNoSavedPosition = errors.New("no saved position to restore")

	// ErrNotReadable is returned for read operations on a write-only Stream.
	ErrNotReadable = errors.New("stream is not readable")

	// ErrNotWritable is returned for write operations on a read-only Stream.
	ErrNotWritable = errors.New("stream is not writable")

	// ErrEmptyToken is returned by ReadUntil for a zero-length delimiter.
	ErrEmptyToken = errors.New("delimiter token must not be empty")

	// ErrNegativeCount is returned for a negative byte or character count.
	ErrNegativeCount = errors.New("count must not be negative")

	// ErrNegativeAlignment is returned by WritePadding for a negative
	// alignment width.
	ErrNegativeAlignment = errors.New("alignment must not be negative")
)

// Stream is the codec's view of one underlying byte stream. The zero value
// is not usable; construct with New, NewReader or NewWriter.
type Stream struct {
	r     io.Reader
	w     io.Writer
	s     io.Seeker
	saved []int64
	tmp   [8]byte
}

// New wraps a readable and writable stream, typically an *os.File. Seeking
// is available when rw also implements io.Seeker.
func New(rw io.ReadWriter) *Stream {
	st := &Stream{r: rw, w: rw}
	if sk, ok := rw.(io.Seeker); ok {
		st.s = sk
	}
	return st
}

// NewReader wraps a read-only stream. Write operations return ErrNotWritable.
func NewReader(r io.Reader) *Stream {
	st := &Stream{r: r}
	if sk, ok := r.(io.Seeker); ok {
		st.s = sk
	}
	return st
}

// NewWriter wraps a write-only stream. Read operations return ErrNotReadable.
func NewWriter(w io.Writer) *Stream {
	st := &Stream{w: w}
	if sk, ok := w.(io.Seeker); ok {
		st.s = sk
	}
	return st
}

// Position reports the current offset from the start of the stream.
func (st *Stream) Position() (int64, error) {
	if st.s == nil {
		return 0, ErrSeekUnsupported
	}
	return st.s.Seek(0, io.SeekCurrent)
}

// Seek moves to an absolute offset from the start of the stream without
// touching the position stack.
func (st *Stream) Seek(offset int64) (int64, error) {
	if st.s == nil {
		return 0, ErrSeekUnsupported
	}
	return st.s.Seek(offset, io.SeekStart)
}

// Relocate pushes the current position onto the stack, then seeks to the
// target computed from offset and whence (io.SeekStart, io.SeekCurrent or
// io.SeekEnd). A later Restore returns to the pushed position.
func (st *Stream) Relocate(offset int64, whence int) error {
	cur, err := st.Position()
	if err != nil {
		return err
	}
	if _, err := st.s.Seek(offset, whence); err != nil {
		return err
	}
	st.saved = append(st.saved, cur)
	return nil
}

// SavePosition pushes the current position onto the stack without moving.
func (st *Stream) SavePosition() error {
	cur, err := st.Position()
	if err != nil {
		return err
	}
	st.saved = append(st.saved, cur)
	return nil
}

// Restore pops the most recently saved position and seeks back to it.
// Nested Relocate/Restore pairs unwind in LIFO order.
func (st *Stream) Restore() error {
	if st.s == nil {
		return ErrSeekUnsupported
	}
	if len(st.saved) == 0 {
		return ErrNoSavedPosition
	}
	target := st.saved[len(st.saved)-1]
	st.saved = st.saved[:len(st.saved)-1]
	_, err := st.s.Seek(target, io.SeekStart)
	return err
}

// Peek returns the next byte without consuming it.
func (st *Stream) Peek() (byte, error) {
	start, err := st.Position()
	if err != nil {
		return 0, err
	}
	b, err := st.readByte()
	if err != nil {
		return 0, err
	}
	_, err = st.s.Seek(start, io.SeekStart)
	return b, err
}

// readExact fills st.tmp[:n] or fails. The stream position is left wherever
// the partial read stopped.
func (st *Stream) readExact(n int) ([]byte, error) {
	if st.r == nil {
		return nil, ErrNotReadable
	}
	b := st.tmp[:n]
	if _, err := io.ReadFull(st.r, b); err != nil {
		return nil, err
	}
	return b, nil
}

func (st *Stream) readByte() (byte, error) {
	if st.r == nil {
		return 0, ErrNotReadable
	}
	_, err := io.ReadFull(st.r, st.tmp[:1])
	return st.tmp[0], err
}

// writeFull writes all of b or fails.
func (st *Stream) writeFull(b []byte) error {
	if st.w == nil {
		return ErrNotWritable
	}
	n, err := st.w.Write(b)
	if err != nil {
		return err
	}
	if n != len(b) {
		return io.ErrShortWrite
	}
	return nil
}
