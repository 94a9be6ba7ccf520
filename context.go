package tmpl

//scope is the data context a tree renders against: the caller supplied value
//plus an overlay of iteration bindings. The caller's value is never written
//to; each branch gets its own binding map copy, so a binding is visible only
//within that iteration's subtree.
type scope struct {
	data  interface{}
	binds map[string]interface{}
}

func newScope(data interface{}) *scope {
	return &scope{data: data}
}

//child derives a scope for one iteration: same data, copied bindings. An
//outer binding of the same name is shadowed inside and untouched outside.
func (c *scope) child() *scope {
	d := &scope{data: c.data}
	if len(c.binds) > 0 {
		d.binds = make(map[string]interface{}, len(c.binds)+2)
		for k, v := range c.binds {
			d.binds[k] = v
		}
	}
	return d
}

func (c *scope) bind(name string, val interface{}) {
	if c.binds == nil {
		c.binds = make(map[string]interface{}, 2)
	}
	c.binds[name] = val
}

//lookup resolves the first key of a path: bindings win over the underlying
//data.
func (c *scope) lookup(key string) (interface{}, bool) {
	if v, ok := c.binds[key]; ok {
		return v, true
	}
	return access(c.data, key)
}
