package main

import (
	"fmt"
	"io"

	"github.com/go-echarts/statsview"
	"github.com/go-echarts/statsview/viewer"
)

const (
	STATS_ADDRESS = "localhost:12600"
	STATS_URL     = "/debug/statsview"
)

// launchStats serves runtime statistics in the background.
func launchStats(output io.Writer) {
	go func() {
		viewer.SetConfiguration(viewer.WithAddr(STATS_ADDRESS))
		mgr := statsview.New()
		mgr.Start()
	}()

	fmt.Fprintf(output, "stats available at http://%v%v\n", STATS_ADDRESS, STATS_URL)
}
