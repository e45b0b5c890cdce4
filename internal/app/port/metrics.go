package port

// TickRecorder counts observer ticks.
type TickRecorder interface {
	ObserveTick(observer string)
	ObserveTickFailure(observer string)
}

// EventRecorder counts delivered and dropped events.
type EventRecorder interface {
	ObserveEvent(kind string)
	ObserveDropped()
}
