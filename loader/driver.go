package loader

import "sync"

// Driver decodes JSON bytes into the order-preserving value tree build()
// consumes. It is a pluggable SPI mirroring the teacher's goskema.JSONDriver
// (source.go, source/driver_default_gojson.go): callers can pin the stdlib
// decoder via SetJSONDriver(StdlibJSONDriver()) without changing any call
// site that uses LoadJSON or Load.
type Driver interface {
	Decode(data []byte) (any, []string, error)
	Name() string
}

type goccyDriver struct{}

func (goccyDriver) Decode(data []byte) (any, []string, error) { return decodeJSON(data) }
func (goccyDriver) Name() string                               { return "goccy/go-json" }

type stdlibDriver struct{}

func (stdlibDriver) Decode(data []byte) (any, []string, error) { return decodeJSONStdlib(data) }
func (stdlibDriver) Name() string                              { return "encoding/json" }

var (
	driverMu      sync.RWMutex
	currentDriver Driver = goccyDriver{}
)

// SetJSONDriver replaces the global JSON decode driver; nil is ignored.
func SetJSONDriver(d Driver) {
	if d == nil {
		return
	}
	driverMu.Lock()
	currentDriver = d
	driverMu.Unlock()
}

// UseDefaultJSONDriver restores the goccy/go-json-backed driver.
func UseDefaultJSONDriver() {
	driverMu.Lock()
	currentDriver = goccyDriver{}
	driverMu.Unlock()
}

// StdlibJSONDriver returns the encoding/json-backed Driver.
func StdlibJSONDriver() Driver { return stdlibDriver{} }

func getDriver() Driver {
	driverMu.RLock()
	d := currentDriver
	driverMu.RUnlock()
	return d
}
