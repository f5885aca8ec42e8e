// This file is part of Gopher2600.
//
// Gopher2600 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Gopher2600 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Gopher2600.  If not, see <https://www.gnu.org/licenses/>.

//go:build statsview
// +build statsview

package statsview

import (
	"fmt"
	"io"
	"net/http"
	"strconv"

	"github.com/go-echarts/statsview"
	"github.com/go-echarts/statsview/viewer"
)

const url = "/debug/statsview"

// CyclesAddress the emulator cycle counter listens on, when available. A
// separate address from Address because go-echarts/statsview owns the
// whole of its own listener; the cycle counter is plain text served by a
// small handler of our own rather than a chart registered with statsview.
const CyclesAddress = "localhost:12601"

const cyclesURL = "/debug/cycles"

// Launch starts the dashboard in a new goroutine. Runtime statistics
// (goroutines, heap, GC pauses) are served by the go-echarts/statsview
// library. Alongside it, a second tiny HTTP server exposes the emulator's
// own cycle count, kept current by SetCycleCount, as plain text.
func Launch(output io.Writer) {
	go func() {
		viewer.SetConfiguration(viewer.WithAddr(Address))
		mgr := statsview.New()
		mgr.Start()
	}()

	go func() {
		mux := http.NewServeMux()
		mux.HandleFunc(cyclesURL, func(w http.ResponseWriter, r *http.Request) {
			fmt.Fprintln(w, strconv.FormatInt(CycleCount(), 10))
		})
		http.ListenAndServe(CyclesAddress, mux)
	}()

	fmt.Fprintf(output, "stats server available at %s%s\n", Address, url)
	fmt.Fprintf(output, "cycle counter available at %s%s\n", CyclesAddress, cyclesURL)
}

// Available returns true if a statsview dashboard is available to launch in
// this build.
func Available() bool {
	return true
}
