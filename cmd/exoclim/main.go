/*
Copyright © 2026 the exoclim authors.
This file is part of exoclim.

exoclim is free software: you can redistribute it and/or modify
it under the terms of the GNU General Public License as published by
the Free Software Foundation, either version 3 of the License, or
(at your option) any later version.

exoclim is distributed in the hope that it will be useful,
but WITHOUT ANY WARRANTY; without even the implied warranty of
MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
GNU General Public License for more details.

You should have received a copy of the GNU General Public License
along with exoclim.  If not, see <http://www.gnu.org/licenses/>.
*/

// Command exoclim is a command-line tool for inspecting planetary
// climate-model output and constants sets.
package main

import (
	"fmt"
	"os"

	"github.com/spatialmodel/exoclim/exoclimutil"
)

func main() {
	if err := exoclimutil.Root.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
