package tlv

// collector is an append-only sink for recoverable parse warnings. It is
// handed to the result when the parser finishes.
type collector struct {
	warnings []Warning
}

// add appends a warning for the given input offset.
func (c *collector) add(off int64, err error) {
	c.warnings = append(c.warnings, Warning{ByteOffset: off, Err: err})
}

// take returns the accumulated warnings and empties the collector.
func (c *collector) take() []Warning {
	w := c.warnings
	c.warnings = nil
	return w
}
