package components

// List tracks a cursor and scroll offset over a fixed number of rows.
type List struct {
	Len      int
	Cursor   int
	Offset   int
	PageSize int
}

// NewList creates a list of n rows showing pageSize at a time.
func NewList(n, pageSize int) *List {
	if pageSize <= 0 {
		pageSize = n
	}
	return &List{Len: n, PageSize: pageSize}
}

// Down moves the cursor down.
func (l *List) Down() {
	if l.Cursor < l.Len-1 {
		l.SetCursor(l.Cursor + 1)
	}
}

// Up moves the cursor up.
func (l *List) Up() {
	if l.Cursor > 0 {
		l.SetCursor(l.Cursor - 1)
	}
}

// SetCursor jumps to i, clamped, scrolling just enough to keep it visible.
func (l *List) SetCursor(i int) {
	if l.Len == 0 {
		l.Cursor, l.Offset = 0, 0
		return
	}
	if i < 0 {
		i = 0
	}
	if i >= l.Len {
		i = l.Len - 1
	}
	l.Cursor = i
	if l.Cursor < l.Offset {
		l.Offset = l.Cursor
	}
	if l.Cursor >= l.Offset+l.PageSize {
		l.Offset = l.Cursor - l.PageSize + 1
	}
}

// SetPageSize changes the visible row count, keeping the cursor in view.
func (l *List) SetPageSize(n int) {
	if n <= 0 {
		n = l.Len
	}
	l.PageSize = n
	if l.Offset+l.PageSize > l.Len {
		l.Offset = l.Len - l.PageSize
	}
	if l.Offset < 0 {
		l.Offset = 0
	}
	l.SetCursor(l.Cursor)
}

// Window returns the [start, end) range of visible rows.
func (l *List) Window() (int, int) {
	end := l.Offset + l.PageSize
	if end > l.Len {
		end = l.Len
	}
	return l.Offset, end
}
