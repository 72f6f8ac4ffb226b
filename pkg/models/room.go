package models

import "time"

// RoomStatus is a room's reachability as last observed.
type RoomStatus string

const (
	RoomOnline   RoomStatus = "online"
	RoomOffline  RoomStatus = "offline"
	RoomDegraded RoomStatus = "degraded"
)

// Room types. "local" rooms run on the user's own hardware and satisfy
// locality constraints; "server" is the always-on coordinator.
const (
	RoomTypeServer = "server"
	RoomTypeIOS    = "ios"
	RoomTypeLocal  = "local"
)

// LocalRoomURL marks the registry entry describing this process itself.
const LocalRoomURL = "local"

// Room is a peer node capable of executing delegated sub-queries.
type Room struct {
	ID           string     `json:"room_id"`
	Name         string     `json:"room_name"`
	Type         string     `json:"room_type"`
	URL          string     `json:"url"`
	Capabilities []string   `json:"capabilities"`
	Status       RoomStatus `json:"status"`
	Load         float64    `json:"load"`
	LastSeenAt   time.Time  `json:"last_seen_at"`
}

// IsSelf reports whether the room entry is this process.
func (r *Room) IsSelf() bool { return r.URL == LocalRoomURL }

// SatisfiesLocality reports whether work constrained to stay on user
// hardware or on this server may run in the room.
func (r *Room) SatisfiesLocality() bool {
	return r.Type == RoomTypeLocal || r.IsSelf()
}

// HasCapabilities reports whether the room advertises every requested
// capability.
func (r *Room) HasCapabilities(required []string) bool {
	if len(required) == 0 {
		return true
	}
	have := make(map[string]struct{}, len(r.Capabilities))
	for _, c := range r.Capabilities {
		have[c] = struct{}{}
	}
	for _, c := range required {
		if _, ok := have[c]; !ok {
			return false
		}
	}
	return true
}

// RoomBranch names one cross-room delegation target.
type RoomBranch struct {
	RoomID   string `json:"room_id"`
	SubQuery string `json:"sub_query"`
}

// Learning is an observation a room reports in its heartbeat.
type Learning struct {
	AppID   string `json:"app_id,omitempty"`
	Topic   string `json:"topic"`
	Content string `json:"content"`
}
