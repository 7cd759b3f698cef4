package outbound

import "io"

// AudioStorePort streams synthesized audio to durable storage under the
// given filename and reports the number of bytes written. An empty
// result is an error.
type AudioStorePort interface {
	Save(filename string, audio io.Reader) (int64, error)
}
