package puzzle

import "fmt"

// GarbageRule maps the number of lines a board cleared in one pass to the
// number of garbage rows sent to its opponent. Clears below Threshold send
// nothing; otherwise lines-Offset rows are sent, never fewer than one.
type GarbageRule struct {
	Threshold int `yaml:"threshold"`
	Offset    int `yaml:"offset"`
}

var (
	// RuleLinesCleared sends one row per cleared line, for any clear.
	RuleLinesCleared = GarbageRule{Threshold: 1, Offset: 0}
	// RuleLegacy only attacks on two or more simultaneous lines, sending lines-1.
	RuleLegacy = GarbageRule{Threshold: 2, Offset: 1}
)

// Amount returns the number of garbage rows to send for a clear of lines rows.
func (r GarbageRule) Amount(lines int) int {
	if lines <= 0 || lines < r.Threshold {
		return 0
	}
	return max(lines-r.Offset, 1)
}

func (r GarbageRule) validate() error {
	if r.Threshold < 1 || r.Offset < 0 {
		return fmt.Errorf("%w: threshold=%d offset=%d", ErrInvalidRule, r.Threshold, r.Offset)
	}
	return nil
}

func (r GarbageRule) String() string {
	return fmt.Sprintf("lines>=%d send lines-%d", r.Threshold, r.Offset)
}
