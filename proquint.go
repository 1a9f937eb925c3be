// Package proquint implements the pronounceable-quintuplet identifier
// encoding from https://arxiv.org/html/0901.4016, mapping each 16-bit word
// to a five character consonant-vowel-consonant-vowel-consonant string.
package proquint

import (
	"errors"
	"fmt"
	"strings"
)

const CONSONANTS = "bdfghjklmnprstvz"
const VOWELS = "aiou"
const CONSTRUCTION = "CVCVC"
const QUINT_LEN = 5
const WORD_SIZE = 2
const DEFAULT_SEP = "-"

var ErrInvalidInputLength = errors.New(
	"input length is not a multiple of two bytes")
var ErrInvalidLength = errors.New("quint is not exactly five characters")
var ErrInvalidSymbol = errors.New("character is not in its slot's alphabet")

// slotAlphabet
// Returns the alphabet and bit width for one slot of the CVCVC construction.
func slotAlphabet(slot byte) (string, uint) {
	if slot == 'C' {
		return CONSONANTS, 4
	}
	return VOWELS, 2
}

// EncodeUint16 encodes a single 16-bit word as a five character quint,
// most significant field first.
func EncodeUint16(word uint16) string {
	var quint [QUINT_LEN]byte
	for idx := QUINT_LEN - 1; idx >= 0; idx-- {
		alphabet, bits := slotAlphabet(CONSTRUCTION[idx])
		quint[idx] = alphabet[word&(1<<bits-1)]
		word >>= bits
	}
	return string(quint[:])
}

// DecodeUint16 decodes a five character quint back into its 16-bit word.
// Each character must belong to the alphabet of its slot, so a vowel in a
// consonant position is rejected even though it is a valid quint character.
func DecodeUint16(quint string) (uint16, error) {
	if len(quint) != QUINT_LEN {
		return 0, fmt.Errorf("%w: %q is %d characters",
			ErrInvalidLength, quint, len(quint))
	}
	var word uint16
	for idx := 0; idx < QUINT_LEN; idx++ {
		alphabet, bits := slotAlphabet(CONSTRUCTION[idx])
		symbol := strings.IndexByte(alphabet, quint[idx])
		if symbol < 0 {
			return 0, fmt.Errorf("%w: %q at position %d",
				ErrInvalidSymbol, quint[idx], idx)
		}
		word = word<<bits | uint16(symbol)
	}
	return word, nil
}

// EncodeUint32 encodes a 32-bit value as two quints joined by the default
// separator. An IPv4 address encodes this way in the reference proposal.
func EncodeUint32(value uint32) string {
	return EncodeUint16(uint16(value>>16)) + DEFAULT_SEP +
		EncodeUint16(uint16(value))
}

// DecodeUint32 decodes a two-quint string produced by EncodeUint32.
func DecodeUint32(text string) (uint32, error) {
	words, err := NewCodec().DecodeWords(text)
	if err != nil {
		return 0, err
	}
	if len(words) != 2 {
		return 0, fmt.Errorf("%w: a 32-bit value is two quints, got %d",
			ErrInvalidLength, len(words))
	}
	return uint32(words[0])<<16 | uint32(words[1]), nil
}

// EncodeUint64 encodes a 64-bit value as four quints joined by the default
// separator.
func EncodeUint64(value uint64) string {
	quints := make([]string, 4)
	for idx := 0; idx < 4; idx++ {
		quints[idx] = EncodeUint16(uint16(value >> (48 - uint(idx)*16)))
	}
	return strings.Join(quints, DEFAULT_SEP)
}

// DecodeUint64 decodes a four-quint string produced by EncodeUint64.
func DecodeUint64(text string) (uint64, error) {
	words, err := NewCodec().DecodeWords(text)
	if err != nil {
		return 0, err
	}
	if len(words) != 4 {
		return 0, fmt.Errorf("%w: a 64-bit value is four quints, got %d",
			ErrInvalidLength, len(words))
	}
	var value uint64
	for idx := range words {
		value = value<<16 | uint64(words[idx])
	}
	return value, nil
}

// Codec joins and splits quints with a configurable separator. The zero
// value uses no separator at all, which concatenates quints back to back;
// NewCodec returns one with the conventional "-".
type Codec struct {
	Separator string
}

func NewCodec() *Codec {
	return &Codec{Separator: DEFAULT_SEP}
}

// Encode encodes data as quints joined by the codec separator. data is
// consumed as consecutive big-endian 16-bit words, so its length must be
// even. Empty input encodes to the empty string.
func (codec *Codec) Encode(data []byte) (string, error) {
	if len(data)%WORD_SIZE != 0 {
		return "", fmt.Errorf("%w: %d bytes",
			ErrInvalidInputLength, len(data))
	}
	return codec.EncodeWords(*WordsFromBin(&data)), nil
}

// Decode decodes separator-joined quints back into bytes. The empty string
// decodes to an empty buffer, mirroring Encode of an empty one rather than
// failing on a zero-length candidate quint.
func (codec *Codec) Decode(text string) ([]byte, error) {
	words, err := codec.DecodeWords(text)
	if err != nil {
		return nil, err
	}
	return *words.ToBin(), nil
}

// splitQuints splits text into candidate quints. An empty separator means
// the quints are contiguous, so the text is cut into five character groups
// instead; any short remainder is kept and left for DecodeUint16 to reject.
func (codec *Codec) splitQuints(text string) []string {
	if codec.Separator != "" {
		return strings.Split(text, codec.Separator)
	}
	quints := make([]string, 0, (len(text)+QUINT_LEN-1)/QUINT_LEN)
	for len(text) > QUINT_LEN {
		quints = append(quints, text[:QUINT_LEN])
		text = text[QUINT_LEN:]
	}
	return append(quints, text)
}

// EncodeWords encodes a slice of 16-bit words as separator-joined quints.
func (codec *Codec) EncodeWords(words Words) string {
	quints := make([]string, len(words))
	for idx := range words {
		quints[idx] = EncodeUint16(words[idx])
	}
	return strings.Join(quints, codec.Separator)
}

// DecodeWords decodes separator-joined quints into 16-bit words. A failed
// quint aborts the whole decode, wrapped with its position in the sequence.
func (codec *Codec) DecodeWords(text string) (Words, error) {
	if text == "" {
		return Words{}, nil
	}
	quints := codec.splitQuints(text)
	words := make(Words, 0, len(quints))
	for idx, quint := range quints {
		word, err := DecodeUint16(quint)
		if err != nil {
			return nil, fmt.Errorf("quint %d %q: %w", idx, quint, err)
		}
		words = append(words, word)
	}
	return words, nil
}
