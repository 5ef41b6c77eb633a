package service

import (
	"context"
	"testing"
	"time"
)

type ctxKey struct{}

func TestFailureContextSurvivesCancelledRequest(t *testing.T) {
	parent, cancel := context.WithTimeout(context.WithValue(context.Background(), ctxKey{}, "req-1"), time.Millisecond)
	cancel()
	<-parent.Done()

	ctx, stop := failureContext(parent)
	defer stop()

	if err := ctx.Err(); err != nil {
		t.Fatalf("context log gagal ikut batal: %v", err)
	}
	dl, ok := ctx.Deadline()
	if !ok || time.Until(dl) > failureLogTimeout {
		t.Fatalf("deadline = %v ok=%v", dl, ok)
	}
	if ctx.Value(ctxKey{}) != "req-1" {
		t.Error("value request harus tetap terbawa")
	}
}
