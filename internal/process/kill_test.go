package process

// Notes:
// - Only PIDs that cannot match a live process are exercised; real group
//   termination is covered by the chrome renderer integration test.

import "testing"

func TestKillProcessGroup_IgnoresNonPositive(t *testing.T) {
	t.Parallel()

	// Must not signal the current group (pid 0) or every process (pid -1).
	KillProcessGroup(0)
	KillProcessGroup(-1)
}

func TestKillProcessGroup_UnknownPID(t *testing.T) {
	t.Parallel()

	KillProcessGroup(999999999)
}
