package crypto

import (
	"fmt"
	"math/rand"
	"strings"
	"time"
)

const base36 = "0123456789abcdefghijklmnopqrstuvwxyz"

// GenerateReferralCode builds a client referral code in the form
// REF-<epoch millis><4 random base36 chars>. The millisecond prefix
// keeps codes roughly sortable by creation time; the random suffix
// breaks same-millisecond collisions. The column's unique index is
// the real guard.
func GenerateReferralCode() string {
	var sb strings.Builder
	for i := 0; i < 4; i++ {
		sb.WriteByte(base36[rand.Intn(len(base36))])
	}
	return fmt.Sprintf("REF-%d%s", time.Now().UnixMilli(), sb.String())
}
