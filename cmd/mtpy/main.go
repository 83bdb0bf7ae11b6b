/*
Copyright © 2018 the MTpy authors.
This file is part of MTpy.

MTpy is free software: you can redistribute it and/or modify
it under the terms of the GNU General Public License as published by
the Free Software Foundation, either version 3 of the License, or
(at your option) any later version.

MTpy is distributed in the hope that it will be useful,
but WITHOUT ANY WARRANTY; without even the implied warranty of
MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
GNU General Public License for more details.

You should have received a copy of the GNU General Public License
along with MTpy.  If not, see <http://www.gnu.org/licenses/>.
*/

// Command mtpy is a command-line interface for the MTpy penetration
// depth tools.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/adamqc/mtpy"
	"github.com/adamqc/mtpy/mtpyutil"
)

func main() {
	if err := mtpyutil.Root.Execute(); err != nil {
		fmt.Println(err)
		// An unsupported impedance component gets its own exit
		// status so scripts can tell it apart from a usage error.
		var compErr *mtpy.UnsupportedComponentError
		if errors.As(err, &compErr) {
			os.Exit(100)
		}
		os.Exit(1)
	}
}
