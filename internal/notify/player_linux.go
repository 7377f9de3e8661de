//go:build linux

package notify

// platformPlayers lists the Linux audio tools in order of preference.
// paplay and pw-play both decode ogg through libsndfile.
func platformPlayers() []playerCommand {
	return []playerCommand{
		{name: "paplay"},
		{name: "pw-play"},
		ffplayCommand,
	}
}
