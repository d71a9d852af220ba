package log

// Logger knows how to log at different levels.
type Logger interface {
	Infof(format string, args ...interface{})
	Warningf(format string, args ...interface{})
	Errorf(format string, args ...interface{})
	Debugf(format string, args ...interface{})
}

// Dummy logger doesn't log anything.
var Dummy Logger = dummy{}

type dummy struct{}

func (dummy) Infof(format string, args ...interface{})    {}
func (dummy) Warningf(format string, args ...interface{}) {}
func (dummy) Errorf(format string, args ...interface{})   {}
func (dummy) Debugf(format string, args ...interface{})   {}
