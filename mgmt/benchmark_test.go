package mgmt

import (
	"testing"
)

func BenchmarkFaceStatusMarshalBinary(b *testing.B) {
	fs := sampleFaceStatus()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = fs.MarshalBinary()
	}
}

func BenchmarkFaceStatusMarshalTo(b *testing.B) {
	fs := sampleFaceStatus()
	buf := make([]byte, fs.Size())
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = fs.MarshalTo(buf)
	}
}

func BenchmarkFaceStatusUnmarshalBinary(b *testing.B) {
	var fs FaceStatus
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = fs.UnmarshalBinary(faceStatusWire)
	}
}

func BenchmarkFaceStatusString(b *testing.B) {
	fs := sampleFaceStatus()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = fs.String()
	}
}
