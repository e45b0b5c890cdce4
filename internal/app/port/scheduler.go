package port

// Deferrer runs tasks later, never inside the caller's stack.
type Deferrer interface {
	Defer(task func())
}

// Ticker is an observer invoked once per store mutation tick.
type Ticker interface {
	Name() string
	Tick() error
}
