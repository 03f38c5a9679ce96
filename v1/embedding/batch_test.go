package embedding

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
)

// recordingFunction embeds each text as a single-element vector derived
// from its position in the overall call sequence, and records every batch
// it receives.
type recordingFunction struct {
	mu      sync.Mutex
	batches [][]string
	failOn  string
}

func (f *recordingFunction) Generate(ctx context.Context, texts []string) ([][]float32, error) {
	f.mu.Lock()
	f.batches = append(f.batches, append([]string(nil), texts...))
	f.mu.Unlock()

	out := make([][]float32, len(texts))
	for i, text := range texts {
		if text == f.failOn {
			return nil, errors.New("boom")
		}
		var v float32
		fmt.Sscanf(text, "t%f", &v)
		out[i] = []float32{v}
	}
	return out, nil
}

func makeTexts(n int) []string {
	texts := make([]string, n)
	for i := range texts {
		texts[i] = fmt.Sprintf("t%d", i)
	}
	return texts
}

func TestGenerateBatchedSplitsAndPreservesOrder(t *testing.T) {
	fn := &recordingFunction{}
	texts := makeTexts(10)

	vectors, err := GenerateBatched(context.Background(), fn, texts, 3)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(vectors) != 10 {
		t.Fatalf("expected 10 vectors, got %d", len(vectors))
	}
	for i, v := range vectors {
		if v[0] != float32(i) {
			t.Errorf("vector %d out of order: got %v", i, v)
		}
	}
	if len(fn.batches) != 4 {
		t.Fatalf("expected 4 batches, got %d", len(fn.batches))
	}
	if len(fn.batches[3]) != 1 {
		t.Errorf("expected final batch of 1, got %d", len(fn.batches[3]))
	}
}

func TestGenerateBatchedEmptyInput(t *testing.T) {
	fn := &recordingFunction{}

	vectors, err := GenerateBatched(context.Background(), fn, nil, 5)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if vectors != nil {
		t.Errorf("expected nil result for empty input, got %v", vectors)
	}
	if len(fn.batches) != 0 {
		t.Errorf("expected no provider calls, got %d", len(fn.batches))
	}
}

func TestGenerateBatchedInvalidBatchSize(t *testing.T) {
	if _, err := GenerateBatched(context.Background(), &recordingFunction{}, makeTexts(2), 0); err == nil {
		t.Fatal("expected error for batch size 0")
	}
}

func TestGenerateBatchedPropagatesError(t *testing.T) {
	fn := &recordingFunction{failOn: "t4"}

	_, err := GenerateBatched(context.Background(), fn, makeTexts(6), 2)
	if err == nil {
		t.Fatal("expected provider error")
	}
}

func TestGenerateParallelPreservesOrder(t *testing.T) {
	fn := &recordingFunction{}
	texts := makeTexts(25)

	vectors, err := GenerateParallel(context.Background(), fn, texts, 4, 5)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(vectors) != 25 {
		t.Fatalf("expected 25 vectors, got %d", len(vectors))
	}
	for i, v := range vectors {
		if v[0] != float32(i) {
			t.Errorf("vector %d out of order: got %v", i, v)
		}
	}
}

func TestGenerateParallelSingleWorkerFallsBackToSequential(t *testing.T) {
	fn := &recordingFunction{}

	vectors, err := GenerateParallel(context.Background(), fn, makeTexts(5), 2, 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(vectors) != 5 {
		t.Fatalf("expected 5 vectors, got %d", len(vectors))
	}
}

func TestGenerateParallelPropagatesError(t *testing.T) {
	fn := &recordingFunction{failOn: "t7"}

	_, err := GenerateParallel(context.Background(), fn, makeTexts(12), 3, 4)
	if err == nil {
		t.Fatal("expected provider error")
	}
}
