package main

//go:generate gopherjs build --minify

import (
	"log"

	"github.com/gopherjs/gopherjs/js"
	"github.com/wbrown/proquint"
)

var codec = proquint.NewCodec()

func Encode(data []byte) string {
	encoded, err := codec.Encode(data)
	if err != nil {
		panic(err)
	}
	return encoded
}

func Decode(text string) []byte {
	decoded, err := codec.Decode(text)
	if err != nil {
		panic(err)
	}
	return decoded
}

func EncodeUint16(word uint16) string {
	return proquint.EncodeUint16(word)
}

func DecodeUint16(quint string) uint16 {
	word, err := proquint.DecodeUint16(quint)
	if err != nil {
		panic(err)
	}
	return word
}

func init() {
	js.Module.Get("exports").Set("encode", Encode)
	js.Module.Get("exports").Set("decode", Decode)
	js.Module.Get("exports").Set("encodeUint16", EncodeUint16)
	js.Module.Get("exports").Set("decodeUint16", DecodeUint16)
	log.Printf("Proquint codec loaded")
}

func main() {

}
