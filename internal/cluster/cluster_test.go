package cluster

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"arango-stress/internal/document"
)

func TestNewRequiresEndpoints(t *testing.T) {
	if _, err := New(nil); err == nil {
		t.Error("expected error for empty endpoint list")
	}
	if _, err := New([]string{"http://h1", " "}); err == nil {
		t.Error("expected error for blank endpoint")
	}
}

func TestNewNormalizesEndpoints(t *testing.T) {
	c, err := New([]string{"http://h1:8529/", " http://h2:8529 "})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	eps := c.Endpoints()
	if eps[0] != "http://h1:8529" || eps[1] != "http://h2:8529" {
		t.Errorf("unexpected normalized endpoints: %v", eps)
	}
	if c.First() != "http://h1:8529" {
		t.Errorf("unexpected first endpoint: %s", c.First())
	}
	if c.Size() != 2 {
		t.Errorf("expected size 2, got %d", c.Size())
	}
}

func TestEndpointsReturnsCopy(t *testing.T) {
	c, _ := New([]string{"http://h1"})
	eps := c.Endpoints()
	eps[0] = "mutated"

	if c.First() != "http://h1" {
		t.Error("mutating the returned slice must not affect the cluster")
	}
}

func TestRandomPicksMember(t *testing.T) {
	endpoints := []string{"http://h1", "http://h2", "http://h3"}
	members := map[string]bool{}
	for _, ep := range endpoints {
		members[ep] = true
	}

	sel := Random{}
	for i := 0; i < 100; i++ {
		if !members[sel.Pick(endpoints)] {
			t.Fatal("selector picked an endpoint outside the list")
		}
	}
}

func TestRoundRobinCycles(t *testing.T) {
	endpoints := []string{"http://h1", "http://h2"}
	sel := &RoundRobin{}

	want := []string{"http://h1", "http://h2", "http://h1", "http://h2"}
	for i, w := range want {
		if got := sel.Pick(endpoints); got != w {
			t.Errorf("pick %d: expected %s, got %s", i, w, got)
		}
	}
}

// pingGateway はPingAllのテスト用のGateway実装
type pingGateway struct {
	mu     sync.Mutex
	pinged []string
	fail   map[string]bool
}

func (g *pingGateway) Ping(_ context.Context, endpoint string) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.pinged = append(g.pinged, endpoint)
	if g.fail[endpoint] {
		return fmt.Errorf("connection refused")
	}
	return nil
}

func (g *pingGateway) DatabaseExists(context.Context, string, string) bool   { return false }
func (g *pingGateway) CreateDatabase(context.Context, string, string) error { return nil }
func (g *pingGateway) DropDatabase(context.Context, string, string) error   { return nil }
func (g *pingGateway) CollectionExists(context.Context, string, string, string) bool {
	return false
}
func (g *pingGateway) CreateCollection(context.Context, string, string, string, int, int) error {
	return nil
}
func (g *pingGateway) InsertBatch(context.Context, string, string, string, []document.Document) error {
	return nil
}

func TestPingAll(t *testing.T) {
	c, _ := New([]string{"http://h1", "http://h2", "http://h3"})
	gw := &pingGateway{}

	if err := c.PingAll(context.Background(), gw); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(gw.pinged) != 3 {
		t.Errorf("expected 3 probes, got %d", len(gw.pinged))
	}
}

func TestPingAllReportsFailure(t *testing.T) {
	c, _ := New([]string{"http://h1", "http://h2"})
	gw := &pingGateway{fail: map[string]bool{"http://h2": true}}

	if err := c.PingAll(context.Background(), gw); err == nil {
		t.Error("expected error when an entry point is unreachable")
	}
	// Every endpoint is probed even when one fails.
	if len(gw.pinged) != 2 {
		t.Errorf("expected 2 probes, got %d", len(gw.pinged))
	}
}
