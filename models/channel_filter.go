package models

// ChannelFilter holds per-channel feature toggles. The absence of a row is
// equivalent to every toggle enabled, so readers must treat a missing filter
// as the default-allow case.
type ChannelFilter struct {
	ChannelID       int64 `db:"channel_id"`
	LevelUpsEnabled bool  `db:"level_ups_enabled"`
}
