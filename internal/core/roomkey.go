package core

import "strings"

// roomKeyPrefix is the key convention shared with the scheduling
// collaborator; both sides derive the same key without coordination.
const roomKeyPrefix = "room_"

// RoomForAdvocate derives the chat room key for an advocate identity.
func RoomForAdvocate(advocateID string) string {
	return roomKeyPrefix + advocateID
}

// AdvocateForRoom recovers the advocate identity from a room key, if the
// key follows the advocate room convention.
func AdvocateForRoom(roomKey string) (string, bool) {
	id, ok := strings.CutPrefix(roomKey, roomKeyPrefix)
	if !ok || id == "" {
		return "", false
	}
	return id, true
}
