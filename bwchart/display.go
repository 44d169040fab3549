// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bwchart

import (
	"fmt"
	"os/exec"
	"runtime"
)

// Show opens the image at path in the platform's default viewer and
// waits for the launcher to exit.
func Show(path string) error {
	cmd := viewerCommand(runtime.GOOS, path)
	if out, err := cmd.CombinedOutput(); err != nil {
		return fmt.Errorf("opening %s: %v\n%s", path, err, out)
	}
	return nil
}

func viewerCommand(goos, path string) *exec.Cmd {
	switch goos {
	case "darwin":
		return exec.Command("open", path)
	case "windows":
		return exec.Command("rundll32", "url.dll,FileProtocolHandler", path)
	}
	return exec.Command("xdg-open", path)
}
