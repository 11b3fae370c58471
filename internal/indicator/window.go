package indicator

// rollingWindow keeps the last size values in insertion order.
type rollingWindow struct {
	values []float64
	start  int
	count  int
}

func newRollingWindow(size int) *rollingWindow {
	return &rollingWindow{
		values: make([]float64, size),
		start:  0,
		count:  0,
	}
}

// add appends a value and returns the evicted value, if any.
func (w *rollingWindow) add(value float64) (float64, bool) {
	size := len(w.values)
	if w.count < size {
		w.values[(w.start+w.count)%size] = value
		w.count++

		return 0, false
	}

	evicted := w.values[w.start]
	w.values[w.start] = value
	w.start = (w.start + 1) % size

	return evicted, true
}

func (w *rollingWindow) isFull() bool {
	return w.count == len(w.values)
}

func (w *rollingWindow) len() int {
	return w.count
}

// each calls fn with values from the oldest to the newest.
func (w *rollingWindow) each(fn func(value float64)) {
	size := len(w.values)
	for i := 0; i < w.count; i++ {
		fn(w.values[(w.start+i)%size])
	}
}

func (w *rollingWindow) reset() {
	w.start = 0
	w.count = 0
}
