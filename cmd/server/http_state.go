package main

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"sync"

	"factorish.dev/internal/persistence/indexdb"
	"factorish.dev/internal/protocol"
	"factorish.dev/internal/sim/loop"
	"factorish.dev/internal/sim/world"
)

// frameCache keeps the newest published frame for HTTP readers.
type frameCache struct {
	frames <-chan world.Frame
	unsub  func()

	mu   sync.RWMutex
	last world.Frame
	ok   bool
}

func newFrameCache(l *loop.Loop) *frameCache {
	ch, unsub := l.Subscribe()
	return &frameCache{frames: ch, unsub: unsub}
}

func (c *frameCache) run(ctx context.Context) {
	defer c.unsub()
	for {
		select {
		case <-ctx.Done():
			return
		case f := <-c.frames:
			c.store(f)
		}
	}
}

func (c *frameCache) store(f world.Frame) {
	c.mu.Lock()
	c.last, c.ok = f, true
	c.mu.Unlock()
}

func (c *frameCache) latest() (world.Frame, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.last, c.ok
}

func frameHandler(c *frameCache) http.HandlerFunc {
	return func(rw http.ResponseWriter, r *http.Request) {
		f, ok := c.latest()
		if !ok {
			http.Error(rw, "no frame yet", http.StatusServiceUnavailable)
			return
		}
		rw.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(rw).Encode(protocol.NewFrameMsg(f))
	}
}

func metricsHandler(c *frameCache, idx *indexdb.SQLiteIndex) http.HandlerFunc {
	return func(rw http.ResponseWriter, r *http.Request) {
		rw.Header().Set("Content-Type", "text/plain; version=0.0.4")
		f, _ := c.latest()

		// Minimal Prometheus exposition format.
		fmt.Fprintf(rw, "# HELP factorish_world_tick Current world tick.\n")
		fmt.Fprintf(rw, "# TYPE factorish_world_tick gauge\n")
		fmt.Fprintf(rw, "factorish_world_tick %d\n", f.Tick)

		fmt.Fprintf(rw, "# HELP factorish_world_sim_time_seconds Accumulated simulation time.\n")
		fmt.Fprintf(rw, "# TYPE factorish_world_sim_time_seconds gauge\n")
		fmt.Fprintf(rw, "factorish_world_sim_time_seconds %.3f\n", f.SimTime)

		fmt.Fprintf(rw, "# HELP factorish_world_structures Placed structures by kind.\n")
		fmt.Fprintf(rw, "# TYPE factorish_world_structures gauge\n")
		byName := map[string]int{}
		for _, s := range f.Structures {
			byName[s.Name]++
		}
		for _, inv := range f.Inventory {
			fmt.Fprintf(rw, "factorish_world_structures{kind=%q} %d\n", inv.Name, byName[inv.Name])
		}

		fmt.Fprintf(rw, "# HELP factorish_world_items Items in transit.\n")
		fmt.Fprintf(rw, "# TYPE factorish_world_items gauge\n")
		fmt.Fprintf(rw, "factorish_world_items %d\n", len(f.Items))

		fmt.Fprintf(rw, "# HELP factorish_inventory Held structures by kind.\n")
		fmt.Fprintf(rw, "# TYPE factorish_inventory gauge\n")
		for _, inv := range f.Inventory {
			fmt.Fprintf(rw, "factorish_inventory{kind=%q} %d\n", inv.Name, inv.Count)
		}

		if idx != nil {
			st := idx.Stats()
			fmt.Fprintf(rw, "# HELP factorish_index_queue_depth Index writer backlog.\n")
			fmt.Fprintf(rw, "# TYPE factorish_index_queue_depth gauge\n")
			fmt.Fprintf(rw, "factorish_index_queue_depth %d\n", st.QueueDepth)
			fmt.Fprintf(rw, "# HELP factorish_index_dropped_total Entries dropped by the index writer.\n")
			fmt.Fprintf(rw, "# TYPE factorish_index_dropped_total counter\n")
			fmt.Fprintf(rw, "factorish_index_dropped_total{kind=%q} %d\n", "tick", st.DropTickTotal)
			fmt.Fprintf(rw, "factorish_index_dropped_total{kind=%q} %d\n", "audit", st.DropAuditTotal)
		}
	}
}
