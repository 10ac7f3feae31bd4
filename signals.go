package flame

import (
	"context"
	"time"

	"github.com/zoobzio/capitan"
)

// Signals for flame events.
var (
	SignalDecorated     = capitan.NewSignal("flame.decorated", "Class decorated into a singleton")
	SignalMethodWrapped = capitan.NewSignal("flame.method.wrapped", "Method replaced by a coercing interceptor")
	SignalCallCoerced   = capitan.NewSignal("flame.call.coerced", "Keyword arguments coerced for a call")
)

// Keys for typed event data.
var (
	KeyClass          = capitan.NewStringKey("class")
	KeyMethod         = capitan.NewStringKey("method")
	KeyAnnotatedCount = capitan.NewIntKey("annotated_count")
	KeyWrappedCount   = capitan.NewIntKey("wrapped_count")
	KeyCoercedCount   = capitan.NewIntKey("coerced_count")
	KeyDuration       = capitan.NewDurationKey("duration")
)

// emitDecorated emits an event when a class has been decorated.
func emitDecorated(ctx context.Context, class string, wrapped int, duration time.Duration) {
	capitan.Emit(ctx, SignalDecorated,
		KeyClass.Field(class),
		KeyWrappedCount.Field(wrapped),
		KeyDuration.Field(duration),
	)
}

// emitMethodWrapped emits an event when a method is replaced by its interceptor.
func emitMethodWrapped(ctx context.Context, class, method string, annotated int) {
	capitan.Emit(ctx, SignalMethodWrapped,
		KeyClass.Field(class),
		KeyMethod.Field(method),
		KeyAnnotatedCount.Field(annotated),
	)
}

// emitCallCoerced emits an event after a call's keywords were coerced.
func emitCallCoerced(ctx context.Context, class, method string, coerced int, duration time.Duration) {
	capitan.Emit(ctx, SignalCallCoerced,
		KeyClass.Field(class),
		KeyMethod.Field(method),
		KeyCoercedCount.Field(coerced),
		KeyDuration.Field(duration),
	)
}
