package formatting

import (
	"fmt"
	"strconv"
)

// FormatPhone renders a North American number as +1 (###) ###-####.
// Ten digits, or eleven with a leading 1, are formatted; anything else is
// returned as its raw digits.
func FormatPhone(n int64) string {
	digits := strconv.FormatInt(n, 10)
	if len(digits) == 11 && digits[0] == '1' {
		digits = digits[1:]
	}
	if len(digits) != 10 {
		return strconv.FormatInt(n, 10)
	}
	return fmt.Sprintf("+1 (%s) %s-%s", digits[:3], digits[3:6], digits[6:])
}
