package model

// Decorator adjusts converted properties after the canonical schema-derived
// table has been built. Decorators may replace entries in place but must not
// reorder, add or drop them.
type Decorator interface {
	Decorate(Properties) error
}

// DecoratorFunc adapts a function into a Decorator.
type DecoratorFunc func(Properties) error

// Decorate calls the underlying function.
func (fn DecoratorFunc) Decorate(props Properties) error {
	return fn(props)
}
