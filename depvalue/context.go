package depvalue

// Context is the keyed mapping from dependency name to Value described in spec §3. Per design
// note §9 ("Context storage"), contexts are small most of the time — zero, one, or a handful of
// entries — so the first two entries are stored inline and a map is only allocated once a third
// distinct key is set.
type Context struct {
	k0, k1   string
	v0, v1   Value
	n        int
	overflow map[string]Value
}

// NewContext returns an empty Context.
func NewContext() *Context {
	return &Context{}
}

// Set assigns name to v, overwriting any existing value for name.
func (c *Context) Set(name string, v Value) {
	if c.overflow != nil {
		c.overflow[name] = v
		return
	}
	switch {
	case c.n == 0:
		c.k0, c.v0, c.n = name, v, 1
	case c.n == 1 && c.k0 == name:
		c.v0 = v
	case c.n == 1:
		c.k1, c.v1, c.n = name, v, 2
	case c.k0 == name:
		c.v0 = v
	case c.k1 == name:
		c.v1 = v
	default:
		c.overflow = map[string]Value{c.k0: c.v0, c.k1: c.v1, name: v}
	}
}

// Get reports the value stored for name, if any.
func (c *Context) Get(name string) (Value, bool) {
	if c.overflow != nil {
		v, ok := c.overflow[name]
		return v, ok
	}
	if c.n >= 1 && c.k0 == name {
		return c.v0, true
	}
	if c.n >= 2 && c.k1 == name {
		return c.v1, true
	}
	return nil, false
}

// MustGet returns the value stored for name, panicking if absent. Used where a resolver's
// external-dependency contract guarantees presence (an invariant enforced at schema construction,
// not at request time).
func (c *Context) MustGet(name string) Value {
	v, ok := c.Get(name)
	if !ok {
		panic("depvalue: context is missing required dependency " + name)
	}
	return v
}

// Len reports how many entries the context holds.
func (c *Context) Len() int {
	if c.overflow != nil {
		return len(c.overflow)
	}
	return c.n
}

// Range calls f for every entry. Iteration order is unspecified.
func (c *Context) Range(f func(name string, v Value)) {
	if c.overflow != nil {
		for k, v := range c.overflow {
			f(k, v)
		}
		return
	}
	if c.n >= 1 {
		f(c.k0, c.v0)
	}
	if c.n >= 2 {
		f(c.k1, c.v1)
	}
}
