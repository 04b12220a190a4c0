package models

import (
	"fmt"
	"time"
)

// LedgerType identifies one of the per-user counter domains
type LedgerType string

const (
	LedgerWallet LedgerType = "wallet"
	LedgerBank   LedgerType = "bank"
	LedgerXP     LedgerType = "xp"
)

// LedgerTypes lists every valid ledger, in command-option order
var LedgerTypes = []LedgerType{LedgerWallet, LedgerBank, LedgerXP}

// ParseLedgerType converts a command subcommand name into a LedgerType
func ParseLedgerType(s string) (LedgerType, error) {
	switch LedgerType(s) {
	case LedgerWallet, LedgerBank, LedgerXP:
		return LedgerType(s), nil
	default:
		return "", fmt.Errorf("unknown ledger type: %q", s)
	}
}

// String returns the ledger name as stored in the database
func (l LedgerType) String() string {
	return string(l)
}

// LedgerEntry represents one counter for one user in one guild.
// At most one entry exists per (ledger, guild, user); entries are created
// lazily on first write and only ever mutated through atomic set/increment.
type LedgerEntry struct {
	Ledger    LedgerType `db:"ledger"`
	GuildID   int64      `db:"guild_id"`
	UserID    int64      `db:"user_id"`
	Value     int64      `db:"value"`
	CreatedAt time.Time  `db:"created_at"`
	UpdatedAt time.Time  `db:"updated_at"`
}
