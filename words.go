package proquint

import (
	"bytes"
	"encoding/binary"
)

// Words is a sequence of 16-bit words, one per quint.
type Words []uint16

// ToBin serializes the words as big-endian byte pairs, the wire order the
// quint fields themselves use.
func (words *Words) ToBin() *[]byte {
	buf := bytes.NewBuffer(make([]byte, 0, len(*words)*WORD_SIZE))
	for idx := range *words {
		binary.Write(buf, binary.BigEndian, (*words)[idx])
	}
	byt := buf.Bytes()
	return &byt
}

// WordsFromBin reads big-endian byte pairs back into words. A trailing odd
// byte is ignored; callers that care check the length first.
func WordsFromBin(bin *[]byte) *Words {
	words := make(Words, 0, len(*bin)/WORD_SIZE)
	buf := bytes.NewReader(*bin)
	for {
		var word uint16
		if err := binary.Read(buf, binary.BigEndian, &word); err != nil {
			break
		}
		words = append(words, word)
	}
	return &words
}
