package proquint

import (
	"bytes"
	"testing"
	"time"
)

func BenchmarkEncodeUint16(b *testing.B) {
	for i := 0; i < b.N; i++ {
		EncodeUint16(uint16(i))
	}
}

func BenchmarkDecodeUint16(b *testing.B) {
	quints := make([]string, 0x10000)
	for word := range quints {
		quints[word] = EncodeUint16(uint16(word))
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		DecodeUint16(quints[i&0xFFFF])
	}
}

func BenchmarkCodec_Encode(b *testing.B) {
	b.StopTimer()
	data := randomBuffer(64 * 1024)
	wordCount := len(data) / WORD_SIZE
	start := time.Now()
	b.StartTimer()
	for i := 0; i < b.N; i++ {
		codec.Encode(data)
	}
	b.StopTimer()
	elapsed := time.Since(start)
	b.ReportMetric(float64(wordCount*b.N)/elapsed.Seconds(), "words/sec")
}

func BenchmarkCodec_Decode(b *testing.B) {
	b.StopTimer()
	data := randomBuffer(64 * 1024)
	encoded, _ := codec.Encode(data)
	wordCount := len(data) / WORD_SIZE
	start := time.Now()
	b.StartTimer()
	for i := 0; i < b.N; i++ {
		codec.Decode(encoded)
	}
	b.StopTimer()
	elapsed := time.Since(start)
	b.ReportMetric(float64(wordCount*b.N)/elapsed.Seconds(), "words/sec")
}

func BenchmarkCodec_EncodeReader(b *testing.B) {
	b.StopTimer()
	data := randomBuffer(64 * 1024)
	b.StartTimer()
	for i := 0; i < b.N; i++ {
		codec.EncodeReader(bytes.NewReader(data))
	}
}
