//go:build darwin

package notify

// platformPlayers lists the macOS audio tools in order of preference
func platformPlayers() []playerCommand {
	return []playerCommand{
		{name: "afplay"},
		ffplayCommand,
	}
}
