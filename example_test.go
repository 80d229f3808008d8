package ansi16_test

import (
	"log"
	"os"

	"github.com/bodgit/ansi16"
	"github.com/sirupsen/logrus"
)

func ExampleConverter_Run() {
	logger := logrus.New()
	logger.SetOutput(os.Stdout)

	c := ansi16.New(logger)
	if err := c.Run(
		ansi16.Job{Input: "background_ansi_320x180.png", Width: 320, Height: 180, Output: "background-320x180.bin"},
		ansi16.Job{Input: "start_screen_180x180.png", Width: 180, Height: 180, Output: "start_screen-180x180.bin"},
	); err != nil {
		log.Fatal(err)
	}
}
