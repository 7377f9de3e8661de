//go:build windows

package notify

import "fmt"

// platformPlayers lists the Windows audio tools in order of preference.
// SoundPlayer only decodes wav, so ffplay goes first when installed.
func platformPlayers() []playerCommand {
	return []playerCommand{
		ffplayCommand,
		{
			name: "powershell",
			argsFor: func(soundFile string) []string {
				script := fmt.Sprintf(`
$player = New-Object System.Media.SoundPlayer
$player.SoundLocation = '%s'
$player.PlaySync()
`, escapeForPowerShell(soundFile))
				return []string{"-ExecutionPolicy", "Bypass", "-NoProfile", "-Command", script}
			},
		},
	}
}
