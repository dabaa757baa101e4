// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command colors converts, compares and interpolates colors
// across color spaces from the command line.
package main

import (
	"os"

	"cogentcore.org/colors/base/errors"
	"cogentcore.org/colors/cli"
	"cogentcore.org/colors/logx"
)

func main() {
	logx.SetDefaultLogger()
	if errors.Log(cli.NewRootCommand().Execute()) != nil {
		os.Exit(1)
	}
}
