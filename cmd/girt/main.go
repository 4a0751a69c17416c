// Copyright 2018-2024 The up AUTHORS
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// girt is invoked by git as GIT_SEQUENCE_EDITOR during `git rebase -i`: it
// edits the rebase todo list in a full-screen terminal UI and rewrites the
// file in place on exit.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/pflag"

	"github.com/akavel/girt/internal/appdata"
	"github.com/akavel/girt/internal/exitstatus"
	"github.com/akavel/girt/internal/todo"
)

const version = "1.0.0"

const licenseNotice = `girt is distributed under the Apache License, Version 2.0.
See http://www.apache.org/licenses/LICENSE-2.0 for the full text.`

func init() {
	pflag.Usage = func() {
		fmt.Fprint(os.Stderr, `Usage: girt [OPTIONS] <rebase-todo-filepath>

girt is a full-screen terminal editor for a 'git rebase -i' todo list. Git
invokes it as GIT_SEQUENCE_EDITOR, passing the todo file's path as the sole
positional argument; git itself arranges for this via 'rebase.instructionFormat'
and the sequence-editor protocol, so girt is not normally run by hand.

KEYS (see '?' in-app for the full, current keybinding table)

- Up/Down, j/k           - move the selection
- p/r/e/s/f/d            - pick/reword/edit/squash/fixup/drop the selected line
- I                       - insert a new instruction line
- c                       - show the selected commit's diff
- /                       - search; n/N repeat forward/backward
- !                       - hand the todo off to $GIT_EDITOR and reload on return
- Control-Z / Control-Y   - undo/redo
- w                       - write and rebase; q - abort

OPTIONS
`)
		pflag.PrintDefaults()
		fmt.Fprint(os.Stderr, `
HOMEPAGE: https://github.com/akavel/girt
VERSION: `+version+`
`)
	}
	pflag.ErrHelp = errors.New("")
}

var (
	showVersion = pflag.BoolP("version", "v", false, "print version and exit")
	showLicense = pflag.Bool("license", false, "print license notice and exit")
	configFlag  = pflag.String("config", "", "path to an optional girt.toml settings `file`")
	debugMode   = pflag.Bool("debug", false, "write a debug log to girt.debug in the current directory")
)

func main() {
	pflag.Parse()

	if *showVersion {
		fmt.Println("girt " + version)
		return
	}
	if *showLicense {
		fmt.Println(licenseNotice)
		return
	}

	if err := setupLogging(*debugMode); err != nil {
		die(exitstatus.ConfigError, "debug log: "+err.Error())
	}

	if pflag.NArg() != 1 {
		pflag.Usage()
		die(exitstatus.ConfigError, "expected exactly one argument: the rebase-todo filepath")
	}
	todoPath := pflag.Arg(0)

	app, err := appdata.New(appdata.Options{
		TodoPath:   todoPath,
		ConfigPath: *configFlag,
	})
	if err != nil {
		die(classifyStartupError(err), err.Error())
	}

	status := app.Run()
	os.Exit(status.Code())
}

// setupLogging wires zerolog to a file when --debug is set (a TUI process
// cannot log to stdout/stderr without corrupting the screen), and to a
// discarding writer otherwise. Grounded on Omairy12-up's --debug flag
// (up.go: opens up.debug, log.SetOutput(debug)), generalized from the
// standard library logger to zerolog the way sacenox-symb's
// setupFileLogging wires zerolog to a file for the same "don't write to
// the terminal the UI owns" reason.
func setupLogging(debug bool) error {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	if !debug {
		log.Logger = zerolog.Nop()
		return nil
	}
	f, err := os.Create("girt.debug")
	if err != nil {
		return err
	}
	log.Logger = zerolog.New(f).With().Timestamp().Logger()
	zerolog.SetGlobalLevel(zerolog.DebugLevel)
	return nil
}

// classifyStartupError maps appdata.New's failure modes onto spec.md §6's
// exit-code table; todo-file load failures are the one case callers can
// distinguish from a generic config problem.
func classifyStartupError(err error) exitstatus.ExitStatus {
	var fileErr *todo.FileReadError
	if errors.As(err, &fileErr) {
		return exitstatus.FileReadError
	}
	return exitstatus.ConfigError
}

func die(status exitstatus.ExitStatus, message string) {
	fmt.Fprintln(os.Stderr, "girt: "+message)
	os.Exit(status.Code())
}
