package components

// Flag is an observable boolean. Listeners run synchronously, and only when
// the value actually changes.
type Flag struct {
	value     bool
	listeners []func(bool)
}

func NewFlag(initial bool) *Flag {
	return &Flag{value: initial}
}

func (f *Flag) Get() bool {
	if f == nil {
		return false
	}
	return f.value
}

func (f *Flag) Set(v bool) {
	if f.value == v {
		return
	}
	f.value = v
	for _, fn := range f.listeners {
		fn(v)
	}
}

func (f *Flag) Toggle() {
	f.Set(!f.value)
}

// Subscribe registers fn to be called with the new value on every change.
func (f *Flag) Subscribe(fn func(bool)) {
	f.listeners = append(f.listeners, fn)
}
