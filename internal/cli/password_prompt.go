package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
)

// passwordReader prints label and returns one line of input.
type passwordReader func(label string) (string, error)

func newTerminalPasswordReader(stdin *os.File, out io.Writer) passwordReader {
	reader := bufio.NewReader(stdin)
	return func(label string) (string, error) {
		fmt.Fprint(out, label)
		restore, err := disableEcho(stdin)
		if err != nil {
			return "", fmt.Errorf("disable terminal echo: %w", err)
		}
		defer func() {
			restore()
			fmt.Fprintln(out)
		}()

		return readLine(reader)
	}
}

func readLine(reader *bufio.Reader) (string, error) {
	line, err := reader.ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}
