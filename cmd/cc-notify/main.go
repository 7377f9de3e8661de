// cc-notify - sound and Telegram notifications for coding-assistant hooks
// Author: Ariel Frischer
// Source: https://github.com/ariel-frischer/cc-notify

package main

import (
	"os"

	"github.com/ariel-frischer/cc-notify/internal/cli"
)

func main() {
	os.Exit(cli.ExitCode(cli.Execute()))
}
