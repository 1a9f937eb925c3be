package main

import (
	"fmt"

	"github.com/extism/go-pdk"
	msgpack "github.com/vmihailenco/msgpack/v5"
	"github.com/wbrown/proquint"
)

var codec = proquint.NewCodec()

//go:wasmexport encode
func Encode() int32 {
	data := pdk.Input()
	encoded, err := codec.Encode(data)
	if err != nil {
		return 1
	}
	pdk.OutputString(encoded)
	return 0
}

//go:wasmexport decode
func Decode() int32 {
	text := pdk.InputString()
	decoded, err := codec.Decode(text)
	if err != nil {
		return 1
	}
	pdk.Output(decoded)
	return 0
}

//go:wasmexport encode_words
func EncodeWords() int32 {
	var words proquint.Words
	if err := msgpack.Unmarshal(pdk.Input(), &words); err != nil {
		return 1
	}
	pdk.OutputString(codec.EncodeWords(words))
	return 0
}

//go:wasmexport decode_words
func DecodeWords() int32 {
	words, err := codec.DecodeWords(pdk.InputString())
	if err != nil {
		return 1
	}
	bytes, err := msgpack.Marshal(&words)
	if err != nil {
		return 1
	}
	pdk.Output(bytes)
	return 0
}

func EncodeAndBackFull() error {
	// Mostly for debugging
	data := []byte{127, 0, 0, 1}
	encoded, err := codec.Encode(data)
	if err != nil {
		return err
	}
	decoded, err := codec.Decode(encoded)
	if err != nil {
		return err
	}
	fmt.Printf("%s -> %v\n", encoded, decoded)
	return nil
}

func main() {
	err := EncodeAndBackFull()
	if err != nil {
		fmt.Println("Error:", err)
	}
}
