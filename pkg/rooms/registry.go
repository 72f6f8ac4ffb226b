// Package rooms tracks the peer nodes available for task delegation and
// delegates sub-tasks to them over HTTP. The registry is the in-memory
// source of truth for room health; the client normalizes remote results
// back into instrument results.
package rooms

import (
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"sync"
	"time"

	"github.com/loop-symphony/symphony/pkg/models"
)

// DefaultOfflineAfter is how long a room may go without a heartbeat
// before the sweep marks it offline.
const DefaultOfflineAfter = 120 * time.Second

// ErrUnknownRoom reports an operation against a room id that was never
// registered (or was deregistered).
var ErrUnknownRoom = errors.New("unknown room")

// Registration is the payload a room submits to join the registry.
type Registration struct {
	ID           string   `json:"room_id"`
	Name         string   `json:"room_name"`
	Type         string   `json:"room_type"`
	URL          string   `json:"url"`
	Capabilities []string `json:"capabilities"`
}

// HeartbeatUpdate refreshes a room's liveness. Nil fields keep the
// room's current values.
type HeartbeatUpdate struct {
	Status       models.RoomStatus
	Load         *float64
	Capabilities []string
}

// Registry is the in-memory room table. All reads sweep stale rooms
// first so callers never see a room as online after its heartbeat
// window lapsed. The registry entry for this process itself (URL
// sentinel "local") never expires.
type Registry struct {
	mu           sync.Mutex
	rooms        map[string]*models.Room
	offlineAfter time.Duration
	selfID       string
}

// NewRegistry creates an empty registry.
func NewRegistry(offlineAfter time.Duration) *Registry {
	if offlineAfter <= 0 {
		offlineAfter = DefaultOfflineAfter
	}
	return &Registry{
		rooms:        make(map[string]*models.Room),
		offlineAfter: offlineAfter,
	}
}

// RegisterSelf adds the registry entry describing this process, so room
// scoring compares local execution and remote delegation on equal
// footing. The entry is always online and never swept.
func (r *Registry) RegisterSelf(name string, capabilities []string) *models.Room {
	r.mu.Lock()
	defer r.mu.Unlock()

	room := &models.Room{
		ID:           name,
		Name:         name,
		Type:         models.RoomTypeServer,
		URL:          models.LocalRoomURL,
		Capabilities: append([]string(nil), capabilities...),
		Status:       models.RoomOnline,
		LastSeenAt:   time.Now().UTC(),
	}
	r.rooms[room.ID] = room
	r.selfID = room.ID
	slog.Info("Server room registered", "room_id", room.ID, "capabilities", capabilities)
	return snapshot(room)
}

// Register adds a room or replaces its existing entry. Registration
// always resets the room to online.
func (r *Registry) Register(reg Registration) (*models.Room, error) {
	if reg.ID == "" {
		return nil, fmt.Errorf("room_id is required")
	}
	if reg.URL == "" || reg.URL == models.LocalRoomURL {
		return nil, fmt.Errorf("room %s: a reachable url is required", reg.ID)
	}
	roomType := reg.Type
	if roomType == "" {
		roomType = models.RoomTypeLocal
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if reg.ID == r.selfID {
		return nil, fmt.Errorf("room id %s is reserved for this server", reg.ID)
	}

	room := &models.Room{
		ID:           reg.ID,
		Name:         reg.Name,
		Type:         roomType,
		URL:          reg.URL,
		Capabilities: append([]string(nil), reg.Capabilities...),
		Status:       models.RoomOnline,
		LastSeenAt:   time.Now().UTC(),
	}
	r.rooms[room.ID] = room
	slog.Info("Room registered", "room_id", room.ID, "room_type", room.Type, "url", room.URL)
	return snapshot(room), nil
}

// Heartbeat refreshes a room's last-seen time and applies any reported
// status, load, and capability changes.
func (r *Registry) Heartbeat(roomID string, update HeartbeatUpdate) (*models.Room, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	room, ok := r.rooms[roomID]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownRoom, roomID)
	}

	room.LastSeenAt = time.Now().UTC()
	room.Status = models.RoomOnline
	if update.Status != "" {
		room.Status = update.Status
	}
	if update.Load != nil {
		room.Load = *update.Load
	}
	if update.Capabilities != nil {
		room.Capabilities = append([]string(nil), update.Capabilities...)
	}
	return snapshot(room), nil
}

// Deregister removes a room. Returns false when the room was not
// registered. The server's own entry cannot be removed.
func (r *Registry) Deregister(roomID string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	if roomID == r.selfID {
		return false
	}
	if _, ok := r.rooms[roomID]; !ok {
		return false
	}
	delete(r.rooms, roomID)
	slog.Info("Room deregistered", "room_id", roomID)
	return true
}

// Self returns this process's own registry entry, when registered.
func (r *Registry) Self() (*models.Room, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.selfID == "" {
		return nil, false
	}
	room, ok := r.rooms[r.selfID]
	if !ok {
		return nil, false
	}
	return snapshot(room), true
}

// Get returns a room by id.
func (r *Registry) Get(roomID string) (*models.Room, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.sweepLocked(time.Now().UTC())

	room, ok := r.rooms[roomID]
	if !ok {
		return nil, false
	}
	return snapshot(room), true
}

// List returns every registered room, ordered by id.
func (r *Registry) List() []models.Room {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.sweepLocked(time.Now().UTC())

	out := make([]models.Room, 0, len(r.rooms))
	for _, room := range r.rooms {
		out = append(out, *snapshot(room))
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// BestRoom picks the delegation target for a task needing the given
// capabilities. Candidates are online rooms advertising a superset of
// the required capabilities; among them, locality-satisfying rooms win
// when locality is required, then lower load, then lexicographic room
// id as the deterministic tie-break. Returns false when no room
// qualifies.
func (r *Registry) BestRoom(required []string, requireLocality bool) (*models.Room, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.sweepLocked(time.Now().UTC())

	var candidates []*models.Room
	for _, room := range r.rooms {
		if room.Status != models.RoomOnline {
			continue
		}
		if !room.HasCapabilities(required) {
			continue
		}
		candidates = append(candidates, room)
	}
	if len(candidates) == 0 {
		return nil, false
	}

	sort.Slice(candidates, func(i, j int) bool {
		a, b := candidates[i], candidates[j]
		if requireLocality && a.SatisfiesLocality() != b.SatisfiesLocality() {
			return a.SatisfiesLocality()
		}
		if a.Load != b.Load {
			return a.Load < b.Load
		}
		return a.ID < b.ID
	})
	return snapshot(candidates[0]), true
}

// SweepOffline marks rooms unseen past the heartbeat window offline and
// returns their ids. The server's own entry is exempt.
func (r *Registry) SweepOffline() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.sweepLocked(time.Now().UTC())
}

func (r *Registry) sweepLocked(now time.Time) []string {
	cutoff := now.Add(-r.offlineAfter)
	var marked []string
	for id, room := range r.rooms {
		if id == r.selfID {
			continue
		}
		if room.Status == models.RoomOnline && room.LastSeenAt.Before(cutoff) {
			room.Status = models.RoomOffline
			marked = append(marked, id)
			slog.Warn("Room heartbeat timed out", "room_id", id, "last_seen_at", room.LastSeenAt)
		}
	}
	sort.Strings(marked)
	return marked
}

// Stats summarizes the registry for health reporting.
type Stats struct {
	TotalRooms   int            `json:"total_rooms"`
	OnlineRooms  int            `json:"online_rooms"`
	OfflineRooms int            `json:"offline_rooms"`
	RoomsByType  map[string]int `json:"rooms_by_type"`
}

// Stats counts rooms by status and type.
func (r *Registry) Stats() Stats {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.sweepLocked(time.Now().UTC())

	stats := Stats{RoomsByType: make(map[string]int)}
	for _, room := range r.rooms {
		stats.TotalRooms++
		switch room.Status {
		case models.RoomOnline:
			stats.OnlineRooms++
		case models.RoomOffline:
			stats.OfflineRooms++
		}
		stats.RoomsByType[room.Type]++
	}
	return stats
}

// Degradation describes which rooms and capabilities are currently
// unavailable.
type Degradation struct {
	FullyOperational      bool     `json:"fully_operational"`
	OnlineRooms           []string `json:"online_rooms"`
	OfflineRooms          []string `json:"offline_rooms"`
	DegradedRooms         []string `json:"degraded_rooms"`
	CapabilitiesAvailable []string `json:"capabilities_available"`
	CapabilitiesDegraded  []string `json:"capabilities_degraded"`
}

// Degradation reports the registry's operational posture.
func (r *Registry) Degradation() Degradation {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.sweepLocked(time.Now().UTC())

	d := Degradation{
		OnlineRooms:   []string{},
		OfflineRooms:  []string{},
		DegradedRooms: []string{},
	}
	available := make(map[string]struct{})
	degraded := make(map[string]struct{})
	for _, room := range r.rooms {
		switch room.Status {
		case models.RoomOnline:
			d.OnlineRooms = append(d.OnlineRooms, room.ID)
			for _, c := range room.Capabilities {
				available[c] = struct{}{}
			}
		case models.RoomOffline:
			d.OfflineRooms = append(d.OfflineRooms, room.ID)
		case models.RoomDegraded:
			d.DegradedRooms = append(d.DegradedRooms, room.ID)
			for _, c := range room.Capabilities {
				degraded[c] = struct{}{}
			}
		}
	}
	sort.Strings(d.OnlineRooms)
	sort.Strings(d.OfflineRooms)
	sort.Strings(d.DegradedRooms)
	d.CapabilitiesAvailable = sortedKeys(available)
	d.CapabilitiesDegraded = sortedKeys(degraded)
	d.FullyOperational = len(d.OfflineRooms) == 0 && len(d.DegradedRooms) == 0
	return d
}

func sortedKeys(set map[string]struct{}) []string {
	out := make([]string, 0, len(set))
	for k := range set {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

// snapshot copies a room so callers never share registry-internal state.
func snapshot(room *models.Room) *models.Room {
	out := *room
	out.Capabilities = append([]string(nil), room.Capabilities...)
	return &out
}
