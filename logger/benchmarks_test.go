package logger

import (
	"io"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func newDiscardService() *Service {
	svc := NewService(WithStdout(io.Discard), WithHostname("bench"), WithoutGlobalHandlers())
	svc.Init(true, "")
	return svc
}

// BenchmarkEmit measures a visible record written to a discarding console.
func BenchmarkEmit(b *testing.B) {
	svc := newDiscardService()
	defer svc.Shutdown()

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		svc.Emit("bench", WarningLevel, "test message")
	}
}

// BenchmarkEmitFiltered measures a record rejected by the verbosity filter.
func BenchmarkEmitFiltered(b *testing.B) {
	svc := newDiscardService()
	defer svc.Shutdown()

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		svc.Emit("bench", DebugLevel, "test message")
	}
}

func BenchmarkEmitParallel(b *testing.B) {
	svc := newDiscardService()
	defer svc.Shutdown()

	b.ReportAllocs()
	b.ResetTimer()
	b.RunParallel(func(pb *testing.PB) {
		for pb.Next() {
			svc.Emit("bench", WarningLevel, "test message")
		}
	})
}

// BenchmarkZapThroughService compares zap routed through ZapCore against
// zap's own console encoder.
func BenchmarkZapThroughService(b *testing.B) {
	b.Run("ZapCore", func(b *testing.B) {
		svc := newDiscardService()
		defer svc.Shutdown()
		l := zap.New(NewZapCore(svc, "bench"))

		b.ReportAllocs()
		b.ResetTimer()
		for i := 0; i < b.N; i++ {
			l.Warn("test message", zap.Int("status", 200))
		}
	})

	b.Run("zap", func(b *testing.B) {
		enc := zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig())
		l := zap.New(zapcore.NewCore(enc, zapcore.AddSync(io.Discard), zap.DebugLevel))

		b.ReportAllocs()
		b.ResetTimer()
		for i := 0; i < b.N; i++ {
			l.Warn("test message", zap.Int("status", 200))
		}
	})
}
