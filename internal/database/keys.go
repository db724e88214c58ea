package database

import "strings"

// Key layout:
//
//	group                 -> JSON array of group names
//	group-<name>-players  -> JSON array of {name, team}
const (
	GroupsKey        = "group"
	PlayersKeyPrefix = "group-"
	playersKeySuffix = "-players"
)

// PlayersKey returns the key holding the players-list of group
func PlayersKey(group string) string {
	return PlayersKeyPrefix + group + playersKeySuffix
}

// GroupFromPlayersKey is the inverse of PlayersKey
func GroupFromPlayersKey(key string) (string, bool) {
	if !strings.HasPrefix(key, PlayersKeyPrefix) || !strings.HasSuffix(key, playersKeySuffix) {
		return "", false
	}
	if len(key) < len(PlayersKeyPrefix)+len(playersKeySuffix) {
		return "", false
	}
	return key[len(PlayersKeyPrefix) : len(key)-len(playersKeySuffix)], true
}
