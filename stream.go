package proquint

import (
	"bufio"
	"bytes"
	"encoding/binary"
	"fmt"
	"io"
)

const STREAM_CHUNK_WORDS = 2048
const STREAM_BUF_SZ = 16384

// StreamingEncode returns a closure that reads up to n words from the
// reader per call and returns them encoded as a chunk of quint text.
// Chunks concatenate into exactly what Encode would produce for the whole
// stream. It returns nil at end of input, and ErrInvalidInputLength if the
// stream ends on a half word.
func (codec *Codec) StreamingEncode(reader io.Reader) func(int) (*string, error) {
	buffered := bufio.NewReaderSize(reader, STREAM_BUF_SZ)
	first := true
	done := false
	var word [WORD_SIZE]byte
	return func(n int) (*string, error) {
		if done {
			return nil, nil
		}
		var out bytes.Buffer
		for count := 0; count < n; count++ {
			_, err := io.ReadFull(buffered, word[:])
			if err == io.EOF {
				done = true
				break
			} else if err == io.ErrUnexpectedEOF {
				done = true
				return nil, fmt.Errorf("%w: trailing byte",
					ErrInvalidInputLength)
			} else if err != nil {
				done = true
				return nil, err
			}
			if first {
				first = false
			} else {
				out.WriteString(codec.Separator)
			}
			out.WriteString(EncodeUint16(binary.BigEndian.Uint16(word[:])))
		}
		if done && out.Len() == 0 {
			return nil, nil
		}
		chunk := out.String()
		return &chunk, nil
	}
}

// EncodeReader encodes the reader's whole byte stream, chunk by chunk.
func (codec *Codec) EncodeReader(reader io.Reader) (string, error) {
	var out bytes.Buffer
	nextChunk := codec.StreamingEncode(reader)
	for {
		chunk, err := nextChunk(STREAM_CHUNK_WORDS)
		if err != nil {
			return "", err
		}
		if chunk == nil {
			break
		}
		out.WriteString(*chunk)
	}
	return out.String(), nil
}

// QuintSplitter returns a closure that yields successive candidate quints
// from the reader, split on the codec separator, nil at end of input. The
// candidates are not validated here.
func (codec *Codec) QuintSplitter(reader io.Reader) func() (*string, error) {
	scanner := bufio.NewScanner(reader)
	scanner.Split(scanQuints(codec.Separator))
	return func() (*string, error) {
		if !scanner.Scan() {
			return nil, scanner.Err()
		}
		quint := scanner.Text()
		return &quint, nil
	}
}

// scanQuints builds a bufio.SplitFunc that cuts on sep, or into five
// character groups when sep is empty, matching Codec.splitQuints.
func scanQuints(sep string) bufio.SplitFunc {
	sepBytes := []byte(sep)
	return func(data []byte, atEOF bool) (int, []byte, error) {
		if atEOF && len(data) == 0 {
			return 0, nil, nil
		}
		if len(sepBytes) == 0 {
			if len(data) > QUINT_LEN {
				return QUINT_LEN, data[:QUINT_LEN], nil
			}
			if atEOF {
				return len(data), data, nil
			}
			return 0, nil, nil
		}
		if idx := bytes.Index(data, sepBytes); idx >= 0 {
			return idx + len(sepBytes), data[:idx], nil
		}
		if atEOF {
			return len(data), data, nil
		}
		return 0, nil, nil
	}
}

// DecodeReader decodes a stream of separator-joined quints back into bytes.
func (codec *Codec) DecodeReader(reader io.Reader) ([]byte, error) {
	nextQuint := codec.QuintSplitter(reader)
	buf := bytes.NewBuffer(make([]byte, 0, STREAM_BUF_SZ))
	idx := 0
	for {
		quint, err := nextQuint()
		if err != nil {
			return nil, err
		}
		if quint == nil {
			break
		}
		word, decodeErr := DecodeUint16(*quint)
		if decodeErr != nil {
			return nil, fmt.Errorf("quint %d %q: %w", idx, *quint, decodeErr)
		}
		binary.Write(buf, binary.BigEndian, word)
		idx++
	}
	return buf.Bytes(), nil
}
