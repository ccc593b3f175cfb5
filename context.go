// context.go
//
// Context is the mutable environment an evaluation runs against: a single
// namespace mapping names to either a variable binding (an Element) or a
// registered eager function. Registering a function under a name removes any
// variable of that name and vice versa, so lookup stays uniform.
//
// A Context has no scoping stack, no history, and no transactional
// semantics. Lifetime is owned by whoever created it; the Evaluator only
// borrows it for the duration of a call. Concurrent evaluations must not
// share a Context without external synchronization; give each its own
// Copy instead.
package minimatic

// EagerFunc is a registered builtin: a pure data-in/data-out operation. It
// receives already-evaluated arguments and returns a reduced Element. It
// never sees the Context and must not retain or mutate its argument slice.
//
// Argument-count or payload-kind mismatches are reported by returning a
// *EvaluationError; any other error degrades the call site to a stuck term.
type EagerFunc func(args []Element) (Element, error)

// Context maps names to bound values. The zero value is not usable; call
// NewContext.
type Context struct {
	vars map[string]Element
	fns  map[string]EagerFunc
}

// NewContext returns an empty Context.
func NewContext() *Context {
	return &Context{
		vars: make(map[string]Element),
		fns:  make(map[string]EagerFunc),
	}
}

// Get returns the Element bound to name, or *UnboundSymbolError when the
// name is absent or names a registered function (functions have no Element
// form; use Function for those).
func (c *Context) Get(name string) (Element, error) {
	if v, ok := c.vars[name]; ok {
		return v, nil
	}
	return nil, &UnboundSymbolError{Name: name}
}

// Set binds name to the Element v, inserting or overwriting. A previously
// registered function of the same name is shadowed.
func (c *Context) Set(name string, v Element) {
	delete(c.fns, name)
	c.vars[name] = v
}

// Register installs fn as the eager function named name. A previously bound
// variable of the same name is shadowed.
func (c *Context) Register(name string, fn EagerFunc) {
	delete(c.vars, name)
	c.fns[name] = fn
}

// Unset removes any binding (variable or function) for name. Removing an
// absent name is a no-op.
func (c *Context) Unset(name string) {
	delete(c.vars, name)
	delete(c.fns, name)
}

// Has reports whether name is bound, to either a variable or a function.
func (c *Context) Has(name string) bool {
	if _, ok := c.vars[name]; ok {
		return true
	}
	_, ok := c.fns[name]
	return ok
}

// Function returns the eager function registered under name.
func (c *Context) Function(name string) (EagerFunc, bool) {
	fn, ok := c.fns[name]
	return fn, ok
}

// Copy returns an independent Context. Variable bindings are copied into
// fresh maps; the bound Elements themselves are shared, which is safe
// because Elements are immutable. Function values are shared by reference
// since they are treated as immutable, stateless behavior. Later Set calls
// on either side never affect the other.
func (c *Context) Copy() *Context {
	out := &Context{
		vars: make(map[string]Element, len(c.vars)),
		fns:  make(map[string]EagerFunc, len(c.fns)),
	}
	for k, v := range c.vars {
		out.vars[k] = v
	}
	for k, fn := range c.fns {
		out.fns[k] = fn
	}
	return out
}

// lookupVar is the internal variable-only lookup used by Symbol.Evaluate.
func (c *Context) lookupVar(name string) (Element, bool) {
	v, ok := c.vars[name]
	return v, ok
}
