// Command mylang is a thin REPL and file runner for MyLang programs. It is
// an external collaborator, not part of the core language (spec.md §1 lists
// the interactive shell and file runner as out of scope for the core), kept
// minimal and grounded on the teacher's cmd/io/main.go bufio.Scanner loop.
package main

import (
	"bufio"
	"fmt"
	"os"
	"time"

	"gitlab.com/variadico/lctime"

	"github.com/zephyrtronium/mylang"
)

func main() {
	if len(os.Args) > 1 {
		runFile(os.Args[1])
		return
	}
	repl()
}

// runBanner formats a run-start/end timestamp the same way the teacher's
// Date addon formats times (lctime.Strftime), MyLang's one ambient use for
// a formatted timestamp since the core language has no date/time built-ins
// of its own (see SPEC_FULL.md §3).
func runBanner(t time.Time) string {
	return lctime.Strftime("run %Y-%m-%d %H:%M:%S", t)
}

func runFile(path string) {
	src, err := os.ReadFile(path)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	in := mylang.NewInterpreter()
	fmt.Fprintln(os.Stderr, runBanner(time.Now()))
	_, err = in.RunString(string(src))
	fmt.Fprintln(os.Stderr, runBanner(time.Now()))
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func repl() {
	in := mylang.NewInterpreter()
	stdin := bufio.NewScanner(os.Stdin)
	fmt.Print("mylang> ")
	for stdin.Scan() {
		line := stdin.Text()
		if line == "exit" {
			break
		}
		v, err := in.RunString(line)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
		} else if v != nil {
			fmt.Println(in.Format(v))
		}
		fmt.Print("mylang> ")
	}
}
