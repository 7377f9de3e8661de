//go:build !linux && !darwin && !windows

package notify

// platformPlayers returns no candidates; NewPlayer falls back to a no-op player
func platformPlayers() []playerCommand {
	return nil
}
