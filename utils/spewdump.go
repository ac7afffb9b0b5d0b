package utils

import (
	"github.com/davecgh/go-spew/spew"
	"github.com/sirupsen/logrus"
)

var spewConfig *spew.ConfigState

func init() {
	spewConfig = spew.NewDefaultConfig()
	spewConfig.DisableCapacities = true
	spewConfig.DisablePointerAddresses = true
}

func SDump(a ...interface{}) string {
	return spewConfig.Sdump(a...)
}

// LogDump writes a spew dump of a to the logger at debug level.
func LogDump(log logrus.FieldLogger, msg string, a ...interface{}) {
	if l, ok := log.(*logrus.Entry); ok && !l.Logger.IsLevelEnabled(logrus.DebugLevel) {
		return
	}
	log.Debugf("%s:\n%s", msg, spewConfig.Sdump(a...))
}
