package generation

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"testing"
	"time"
)

// scriptedService blocks GenerateItem calls whose prompt starts with "slow"
// until gate is closed; everything else returns immediately.
type scriptedService struct {
	gate chan struct{}
	fail bool
}

func (s *scriptedService) GenerateItem(ctx context.Context, prompt string) (string, error) {
	if strings.HasPrefix(prompt, "slow") && s.gate != nil {
		<-s.gate
	}
	if s.fail {
		return "", fmt.Errorf("upstream unavailable")
	}
	return "v:" + prompt, nil
}

func (s *scriptedService) GenerateVariations(ctx context.Context, seed string) ([]string, error) {
	return nil, fmt.Errorf("not scripted")
}

func (s *scriptedService) GenerateDescription(ctx context.Context, value string) (string, error) {
	return "", fmt.Errorf("not scripted")
}

func (s *scriptedService) GenerateCategorySummary(ctx context.Context, label string) (string, error) {
	return "", fmt.Errorf("not scripted")
}

func (s *scriptedService) GenerateArt(ctx context.Context, prompt string, lineWidth int) (string, error) {
	return "", fmt.Errorf("not scripted")
}

func TestControlSuccess(t *testing.T) {
	c := NewControl(&scriptedService{}, time.Second)
	snap := c.Generate(context.Background(), "a cat", DefaultSettings())

	if snap.State != StateSuccess {
		t.Fatalf("state = %v, want success", snap.State)
	}
	if snap.Value != "v:a cat" {
		t.Fatalf("value = %q", snap.Value)
	}
	if snap.Err != "" {
		t.Fatalf("unexpected error %q", snap.Err)
	}
}

func TestControlFailureThenRetryReachesIdle(t *testing.T) {
	c := NewControl(&scriptedService{fail: true}, time.Second)
	snap := c.Generate(context.Background(), "a cat", DefaultSettings())

	if snap.State != StateFailed {
		t.Fatalf("state = %v, want failed", snap.State)
	}
	if snap.Err == "" {
		t.Fatal("failed snapshot must carry a non-empty error message")
	}

	snap = c.Retry()
	if snap.State != StateIdle {
		t.Fatalf("state after retry = %v, want idle", snap.State)
	}
	if snap.Value != "" || snap.Err != "" {
		t.Fatalf("stale result survived retry: %+v", snap)
	}
}

func TestControlRetryIgnoredUnlessFailed(t *testing.T) {
	c := NewControl(&scriptedService{}, time.Second)
	c.Generate(context.Background(), "a cat", DefaultSettings())

	snap := c.Retry()
	if snap.State != StateSuccess {
		t.Fatalf("retry cleared a successful slot: %v", snap.State)
	}
}

func TestControlNewerRequestSupersedesInFlight(t *testing.T) {
	svc := &scriptedService{gate: make(chan struct{})}
	c := NewControl(svc, time.Second)

	var wg sync.WaitGroup
	wg.Add(1)
	started := make(chan struct{})
	go func() {
		defer wg.Done()
		close(started)
		c.Generate(context.Background(), "slow first", DefaultSettings())
	}()

	<-started
	// Wait for the slow request to take the slot.
	deadline := time.Now().Add(time.Second)
	for c.Snapshot().State != StatePending {
		if time.Now().After(deadline) {
			t.Fatal("slow request never reached pending")
		}
		time.Sleep(time.Millisecond)
	}

	snap := c.Generate(context.Background(), "second", DefaultSettings())
	if snap.State != StateSuccess || snap.Value != "v:second" {
		t.Fatalf("newer request result wrong: %+v", snap)
	}

	close(svc.gate)
	wg.Wait()

	final := c.Snapshot()
	if final.Value != "v:second" {
		t.Fatalf("stale response overwrote the slot: %+v", final)
	}
}

func TestControlDiscardsResultForCancelledContext(t *testing.T) {
	svc := &scriptedService{gate: make(chan struct{})}
	c := NewControl(svc, time.Second)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan Snapshot, 1)
	go func() {
		done <- c.Generate(ctx, "slow request", DefaultSettings())
	}()

	deadline := time.Now().Add(time.Second)
	for c.Snapshot().State != StatePending {
		if time.Now().After(deadline) {
			t.Fatal("request never reached pending")
		}
		time.Sleep(time.Millisecond)
	}

	cancel()
	close(svc.gate)

	snap := <-done
	if snap.State != StateIdle {
		t.Fatalf("cancelled request should reset to idle, got %v", snap.State)
	}
	if snap.Value != "" {
		t.Fatalf("cancelled request leaked a value: %q", snap.Value)
	}
}
