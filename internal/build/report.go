package build

import (
	"fmt"
	"io"
	"strconv"
)

// Prints one summary row per executed job, in submission order, followed
// by a "Done" trailer.
func report(w io.Writer, results []Result) {
	for _, res := range results {
		status := "OK"
		if !res.OK() {
			status = strconv.Itoa(res.ExitCode)
		}
		fmt.Fprintln(w, res.Job.Name, status, res.LogFile)
	}
	fmt.Fprintln(w, "Done")
}
