package emd

import (
	"bytes"
	"context"
	"errors"
	"testing"
)

func TestSweep_FindsHiddenText(t *testing.T) {
	plane := newRandomPlane(64, 64, 21)
	secret := []byte("the quick brown fox jumps")
	if _, err := mustCodec(t, 3).Hide(plane, secret); err != nil {
		t.Fatalf("Hide failed: %v", err)
	}

	results, err := Sweep(context.Background(), plane, SweepOptions{
		MinGroupSize: 2,
		MaxGroupSize: 6,
		Length:       12,
		Tolerance:    1.0,
		Workers:      2,
	})
	if err != nil {
		t.Fatalf("Sweep failed: %v", err)
	}

	var hit *SweepResult
	for i := range results {
		if i > 0 && results[i].Params.N <= results[i-1].Params.N {
			t.Errorf("results not ordered by n: %d after %d", results[i].Params.N, results[i-1].Params.N)
		}
		if results[i].Params.N == 3 {
			hit = &results[i]
		}
	}
	if hit == nil {
		t.Fatalf("no result for n=3 in %+v", results)
	}
	if hit.Match.Offset != 0 || hit.Match.BitShift != 0 {
		t.Errorf("got offset %d shift %d, want 0 and 0", hit.Match.Offset, hit.Match.BitShift)
	}
	if !bytes.Equal(hit.Match.Bytes, secret[:12]) {
		t.Errorf("got %q, want %q", hit.Match.Bytes, secret[:12])
	}
	if hit.Scanned != hit.Params.ByteCapacity(64, 64) {
		t.Errorf("scanned: got %d, want %d", hit.Scanned, hit.Params.ByteCapacity(64, 64))
	}
}

func TestSweep_SkipsSmallCapacity(t *testing.T) {
	plane := newMemPlane(4, 2)
	results, err := Sweep(context.Background(), plane, SweepOptions{
		MinGroupSize: 2,
		MaxGroupSize: 10,
		Length:       8,
	})
	if err != nil {
		t.Fatalf("Sweep failed: %v", err)
	}
	if len(results) != 0 {
		t.Errorf("got %d results, want 0", len(results))
	}
}

func TestSweep_InvalidOptions(t *testing.T) {
	plane := newMemPlane(8, 8)

	if _, err := Sweep(context.Background(), plane, SweepOptions{MinGroupSize: 0, MaxGroupSize: 4, Length: 4}); !errors.Is(err, ErrInvalidGroupSize) {
		t.Errorf("min 0: got %v, want ErrInvalidGroupSize", err)
	}
	if _, err := Sweep(context.Background(), plane, SweepOptions{MinGroupSize: 2, MaxGroupSize: 4, Length: 0}); !errors.Is(err, ErrInvalidLength) {
		t.Errorf("length 0: got %v, want ErrInvalidLength", err)
	}
}

func TestSweep_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := Sweep(ctx, newRandomPlane(32, 32, 1), SweepOptions{MinGroupSize: 2, MaxGroupSize: 20, Length: 4})
	if !errors.Is(err, context.Canceled) {
		t.Errorf("got %v, want context.Canceled", err)
	}
}
