package dialog

// cursor tracks a selected row and a viewport offset over a list of n rows.
type cursor struct {
	index  int
	offset int
}

func (c *cursor) reset() {
	c.index = 0
	c.offset = 0
}

func (c *cursor) set(n, index int) bool {
	if index < 0 || index >= n {
		return false
	}
	old := c.index
	c.index = index
	return old != index
}

func (c *cursor) home(n int) bool {
	if n == 0 {
		c.index = 0
		return false
	}
	old := c.index
	c.index = 0
	return old != c.index
}

func (c *cursor) end(n int) bool {
	if n == 0 {
		c.index = 0
		return false
	}
	old := c.index
	c.index = n - 1
	return old != c.index
}

func (c *cursor) pageUp(n, rows int) bool {
	return c.moveBy(n, -pageSize(n, rows))
}

func (c *cursor) pageDown(n, rows int) bool {
	return c.moveBy(n, pageSize(n, rows))
}

func (c *cursor) moveBy(n, delta int) bool {
	if n == 0 {
		c.index = 0
		return false
	}
	old := c.index
	if c.index < 0 {
		c.index = 0
	}
	c.index += delta
	if c.index < 0 {
		c.index = 0
	}
	if c.index >= n {
		c.index = n - 1
	}
	return c.index != old
}

func (c *cursor) clamp(n int) {
	if n == 0 {
		c.index = 0
		c.offset = 0
		return
	}
	if c.index < 0 {
		c.index = 0
	}
	if c.index >= n {
		c.index = n - 1
	}
}

// ensureVisible adjusts the viewport offset so the cursor stays inside a
// window of rows entries.
func (c *cursor) ensureVisible(n, rows int) {
	c.clamp(n)
	if n == 0 || rows <= 0 {
		c.offset = 0
		return
	}
	maxOffset := n - rows
	if maxOffset < 0 {
		maxOffset = 0
	}
	if c.offset > maxOffset {
		c.offset = maxOffset
	}
	if c.offset < 0 {
		c.offset = 0
	}
	if c.index < c.offset {
		c.offset = c.index
	}
	if upper := c.offset + rows - 1; c.index > upper {
		c.offset = c.index - rows + 1
	}
}

// scroll shifts the viewport by delta rows without moving the cursor.
func (c *cursor) scroll(n, rows, delta int) bool {
	if n == 0 || rows <= 0 {
		return false
	}
	maxOffset := n - rows
	if maxOffset < 0 {
		maxOffset = 0
	}
	old := c.offset
	c.offset += delta
	if c.offset < 0 {
		c.offset = 0
	}
	if c.offset > maxOffset {
		c.offset = maxOffset
	}
	return c.offset != old
}

func pageSize(n, rows int) int {
	if n == 0 {
		return 0
	}
	size := rows
	if size <= 0 || size > n {
		size = n
	}
	if size < 1 {
		size = 1
	}
	return size
}
