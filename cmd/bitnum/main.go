// Command bitnum is a calculator and converter for arbitrary-width binary
// numbers.
package main

import (
	"os"

	"github.com/sirupsen/logrus"
	prefixed "github.com/x-cray/logrus-prefixed-formatter"
)

var log = logrus.WithField("prefix", "bitnum")

func main() {
	customFormatter := new(prefixed.TextFormatter)
	customFormatter.TimestampFormat = "2006-01-02 15:04:05"
	customFormatter.FullTimestamp = true
	logrus.SetFormatter(customFormatter)

	app := newApp()
	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}
