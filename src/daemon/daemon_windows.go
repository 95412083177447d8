package daemon

import "os"

// StopSignals contains all the signals which will make our server stop gracefully
var StopSignals = []os.Signal{
	os.Interrupt,
}
