package outbound

// CallPacer enforces a minimum wall-clock interval between outbound API
// calls. WaitIfNeeded blocks until the interval since the previous call
// start has elapsed, then records the new call start. Single-threaded
// use only.
type CallPacer interface {
	WaitIfNeeded()
}
