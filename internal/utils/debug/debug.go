// Package debug prints the log file for --debug
package debug

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/nxadm/tail"
)

var errNoLogFile = errors.New("no log file exists yet: try running some commands first")

// Logs writes the log file at path to w. In live mode only new lines are
// shown, followed as they arrive while stdout is a terminal.
func Logs(w io.Writer, path string, live bool) error {
	if live {
		return tailLiveLogs(w, path, isatty.IsTerminal(os.Stdout.Fd()))
	}
	return showExistingLogs(w, path)
}

func tailLiveLogs(w io.Writer, path string, follow bool) error {
	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		return errNoLogFile
	}

	t, err := tail.TailFile(path, tail.Config{
		ReOpen: follow,
		Follow: follow,
		Poll:   true,
		Logger: tail.DiscardingLogger,
		Location: &tail.SeekInfo{
			Offset: 0,
			Whence: io.SeekEnd,
		},
	})
	if err != nil {
		return err
	}
	defer t.Cleanup()

	for line := range t.Lines {
		fmt.Fprintln(w, line.Text)
	}
	return t.Err()
}

func showExistingLogs(w io.Writer, path string) error {
	f, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		return errNoLogFile
	}
	if err != nil {
		return err
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		fmt.Fprintln(w, scanner.Text())
	}
	return scanner.Err()
}
