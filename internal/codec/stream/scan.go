package stream

import (
	"errors"
	"io"
)

// ReadUntil reads bytes from the current position until the last len(token)
// bytes read equal token. The returned string excludes the token and the
// stream is left positioned immediately after it. A token found immediately
// yields an empty string with the stream past the token.
//
// If end-of-stream arrives with no match, the position is restored to
// exactly where the scan began and the empty string stands in for "not
// found". The scan needs a seekable stream for that restore.
func (st *Stream) ReadUntil(token string) (string, error) {
	if len(token) == 0 {
		return "", ErrEmptyToken
	}
	start, err := st.Position()
	if err != nil {
		return "", err
	}
	k := len(token)
	var acc []byte
	for {
		b, err := st.readByte()
		if err != nil {
			if errors.Is(err, io.EOF) {
				if _, serr := st.s.Seek(start, io.SeekStart); serr != nil {
					return "", serr
				}
				return "", nil
			}
			return "", err
		}
		acc = append(acc, b)
		// Compare the window of the last k bytes against the token.
		if len(acc) >= k && string(acc[len(acc)-k:]) == token {
			return string(acc[:len(acc)-k]), nil
		}
	}
}

// ReadCString reads a NUL-terminated string: ReadUntil specialized to a
// single zero byte.
func (st *Stream) ReadCString() (string, error) {
	return st.ReadUntil("\x00")
}
