package loader

// State is a Loader's position in the load pipeline.
type State int

const (
	StateUninitialized State = iota
	StateSourceChecked
	StateDecoding
	StateValidating
	StateReady
	StateFailed
)

func (s State) String() string {
	switch s {
	case StateUninitialized:
		return "uninitialized"
	case StateSourceChecked:
		return "source_checked"
	case StateDecoding:
		return "decoding"
	case StateValidating:
		return "validating"
	case StateReady:
		return "ready"
	case StateFailed:
		return "failed"
	}
	return "unknown"
}
