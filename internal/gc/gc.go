// Package gc implements the interpreter's mark–sweep garbage collector: a
// process-wide registry of heap-allocated runtime values, each carrying a
// mark bit, reclaimed by tracing reachability from evaluator-supplied roots.
//
// Modeled on the teacher's lifecycle-manager shape in
// internal/interp/runtime/refcount.go (a small owned-by-the-runtime
// interface the evaluator calls into, rather than reaching into value
// internals directly) and its pool.go's use of atomic counters for
// bookkeeping; the mark/sweep algorithm itself is ported from
// original_source/src/evaluator.cpp's gc.Add/gc.Mark/gc.Sweep call sites.
package gc

import (
	"sync/atomic"

	"github.com/cwbudde/go-monkeyscript/internal/runtime"
)

// Threshold is the fixed statement cadence (spec.md §4.3) at which the
// evaluator triggers a mark-and-sweep pass.
const Threshold = 100

type entry struct {
	value runtime.Value
	mark  bool
}

// Collector is the mark–sweep garbage collector. It owns every
// heap-allocated Value created during evaluation; the evaluator and
// environments hold only borrowing handles into it.
type Collector struct {
	registry map[runtime.Value]*entry

	allocs atomic.Uint64
	frees  atomic.Uint64
	sweeps atomic.Uint64
}

// New creates an empty Collector.
func New() *Collector {
	return &Collector{registry: make(map[runtime.Value]*entry)}
}

// Add registers a newly constructed heap value with the collector. Boolean
// and Null singletons must never be passed here (they are never freed).
func (c *Collector) Add(v runtime.Value) {
	if v == nil {
		return
	}
	if _, ok := c.registry[v]; ok {
		return
	}
	c.registry[v] = &entry{value: v}
	c.allocs.Add(1)
}

// Len reports the number of currently registered (live, pre-sweep) values.
// Exposed for GC-liveness tests (spec.md §8).
func (c *Collector) Len() int {
	return len(c.registry)
}

// Mark sets v's mark bit and recursively marks every value reachable from
// it: an Array's elements, a ReturnValue's wrapped value. A Function's
// parameter identifiers and body are AST nodes, not GC-managed, and are
// skipped; its captured Environment, however, is itself a root and is
// marked recursively so closures keep their free variables alive.
func (c *Collector) Mark(v runtime.Value) {
	if v == nil {
		return
	}
	e, ok := c.registry[v]
	if !ok {
		// Singletons (TRUE/FALSE/NULL) are never registered; nothing to mark.
		return
	}
	if e.mark {
		return
	}
	e.mark = true

	switch val := v.(type) {
	case *runtime.Array:
		for _, elem := range val.Elements {
			c.Mark(elem)
		}
	case *runtime.ReturnValue:
		c.Mark(val.Value)
	case *runtime.Function:
		c.MarkEnv(val.Env)
	}
}

// MarkEnv marks every value bound in env's own store, then recurses into
// its outer environment, so the entire live scope chain survives a sweep.
func (c *Collector) MarkEnv(env *runtime.Environment) {
	for env != nil {
		for _, v := range env.Values() {
			c.Mark(v)
		}
		env = env.Outer()
	}
}

// Sweep frees every registered value whose mark bit is clear and clears the
// mark on survivors, so the next cycle starts from a clean slate.
func (c *Collector) Sweep() {
	c.sweeps.Add(1)
	for v, e := range c.registry {
		if !e.mark {
			delete(c.registry, v)
			c.frees.Add(1)
			continue
		}
		e.mark = false
	}
}

// Stats reports cumulative allocation/free/sweep counts, mirroring the
// teacher's pool.go-style atomic counters; useful for diagnostics and tests,
// not consulted by the collection algorithm itself.
type Stats struct {
	Allocs uint64
	Frees  uint64
	Sweeps uint64
	Live   int
}

// Stats snapshots the collector's counters.
func (c *Collector) Stats() Stats {
	return Stats{
		Allocs: c.allocs.Load(),
		Frees:  c.frees.Load(),
		Sweeps: c.sweeps.Load(),
		Live:   c.Len(),
	}
}
