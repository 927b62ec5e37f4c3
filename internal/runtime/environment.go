package runtime

// binding is a single slot in an Environment's store. A reference binding
// does not hold a Value directly; it redirects to the slot living in target
// (the environment where the referenced name is actually owned).
type binding struct {
	value  Value
	target *slotRef
}

// slotRef names exactly where an owning binding lives, so a reference
// binding elsewhere in the chain can read and write through it.
type slotRef struct {
	env  *Environment
	name string
}

// Environment is a node in a singly-linked lexical scope chain: a mapping
// from names to value handles, plus an optional outer link. Enclosed
// environments are created at each function invocation; a Function value
// that captures one (Function.Env) keeps it reachable after that call
// returns.
type Environment struct {
	store map[string]*binding
	outer *Environment
}

// NewGlobal creates the empty, outer-less environment used at interpreter
// start.
func NewGlobal() *Environment {
	return &Environment{store: make(map[string]*binding)}
}

// NewEnclosed creates a new environment enclosed by outer.
func NewEnclosed(outer *Environment) *Environment {
	return &Environment{store: make(map[string]*binding), outer: outer}
}

// Outer returns the enclosing environment, or nil for the global environment.
func (e *Environment) Outer() *Environment {
	return e.outer
}

// Get searches the current environment, then outer environments, resolving
// through any reference binding to the owning slot's current value. It
// returns an Error value "identifier not found: <name>" if name is bound
// nowhere in the chain.
func (e *Environment) Get(name string) Value {
	env, b := e.resolve(name)
	if env == nil {
		return NewError("identifier not found: " + name)
	}
	if b.target != nil {
		return b.target.env.Get(b.target.name)
	}
	return b.value
}

// resolve walks the chain looking for a binding (owning or reference) named
// name, returning the environment that holds the binding slot itself (not
// necessarily the one that owns the value, for reference bindings).
func (e *Environment) resolve(name string) (*Environment, *binding) {
	for env := e; env != nil; env = env.outer {
		if b, ok := env.store[name]; ok {
			return env, b
		}
	}
	return nil, nil
}

// Set creates or overwrites an owning binding for name in this environment
// (not the outer chain) and returns v.
func (e *Environment) Set(name string, v Value) Value {
	e.store[name] = &binding{value: v}
	return v
}

// RefSet creates a reference binding for name in this environment that
// redirects reads and writes to the binding of name in an enclosing
// environment, searched outward starting at e's outer link. It returns an
// Error if no such binding exists anywhere in the outer chain.
func (e *Environment) RefSet(name string, v Value) Value {
	if e.outer == nil {
		return NewError("identifier not found: " + name)
	}
	targetEnv, b := e.outer.resolve(name)
	if targetEnv == nil {
		return NewError("identifier not found: " + name)
	}
	// Resolve through existing reference bindings so a chain of refs all
	// point at the single environment that truly owns the value.
	for b.target != nil {
		targetEnv, b = b.target.env, mustBinding(b.target.env, b.target.name)
	}
	e.store[name] = &binding{target: &slotRef{env: targetEnv, name: name}}
	targetEnv.store[name] = &binding{value: v}
	return v
}

func mustBinding(env *Environment, name string) *binding {
	b, ok := env.store[name]
	if !ok {
		// The chain is internally consistent by construction: a slotRef is
		// only ever created pointing at a binding that exists in env.
		panic("runtime: dangling reference binding for " + name)
	}
	return b
}

// Values returns every Value directly reachable from this environment's own
// store (not outer scopes), resolving reference bindings to their owned
// value. Used by the garbage collector to mark roots.
func (e *Environment) Values() []Value {
	vals := make([]Value, 0, len(e.store))
	for _, b := range e.store {
		if b.target != nil {
			vals = append(vals, b.target.env.Get(b.target.name))
			continue
		}
		vals = append(vals, b.value)
	}
	return vals
}
