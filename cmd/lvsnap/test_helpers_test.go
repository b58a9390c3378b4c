package main

import (
	"bytes"
	"testing"

	"github.com/spf13/cobra"
)

// networkFixture is the shared triangle network:
//
//	a [0,30) b [0,20) c [5,30)
//	ab a--b [0,15) weight 2 on [0,10), 0.5 on [10,15)
//	bc b->c [5,20)
//	ca c--a [12,30) weight 3
const networkFixture = "../../timeline/testdata/network.yaml"

// resetFlags restores every flag variable to its default and points --file
// at the fixture.
func resetFlags(t *testing.T) {
	t.Helper()

	networkPath = networkFixture
	attrName = ""
	aggregate = "latest"
	logLevel = "warn"

	snapStart, snapEnd = 0, 0
	snapJSON, snapDump, snapTopo, snapMST = false, false, false, false

	replayFrom, replayTo = 0, 0
	replayStep, replayWidth = 1, 1
	replaySource = ""
	replayDirected, replayMetrics = false, false
}

// run invokes a RunE function with captured stdout and stderr.
func run(fn func(*cobra.Command, []string) error) (stdout, stderr string, err error) {
	cmd := &cobra.Command{}
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	err = fn(cmd, nil)

	return out.String(), errOut.String(), err
}
