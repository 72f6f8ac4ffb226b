package api

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/loop-symphony/symphony/pkg/models"
	"github.com/loop-symphony/symphony/pkg/rooms"
	"github.com/loop-symphony/symphony/pkg/services"
)

// registerRoomHandler handles POST /rooms/register. Registering an
// already-known room replaces its entry and resets it to online.
func (s *Server) registerRoomHandler(c *gin.Context) {
	var reg rooms.Registration
	if err := c.ShouldBindJSON(&reg); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "invalid request body: " + err.Error()})
		return
	}

	room, err := s.rooms.Register(reg)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": err.Error()})
		return
	}
	c.JSON(http.StatusOK, room)
}

// roomHeartbeatHandler handles POST /rooms/heartbeat. Beyond liveness,
// the heartbeat carries the room's learnings into the shared knowledge
// base and, when the room reports its last synced version, returns the
// knowledge delta it is missing.
func (s *Server) roomHeartbeatHandler(c *gin.Context) {
	var req roomHeartbeatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "invalid request body: " + err.Error()})
		return
	}
	if req.RoomID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "room_id is required"})
		return
	}

	room, err := s.rooms.Heartbeat(req.RoomID, rooms.HeartbeatUpdate{
		Status:       models.RoomStatus(req.Status),
		Load:         req.Load,
		Capabilities: req.Capabilities,
	})
	if err != nil {
		mapServiceError(c, err)
		return
	}

	resp := RoomHeartbeatResponse{Room: room}
	if s.knowledge != nil {
		s.syncRoomKnowledge(c, &req, room, &resp)
	}
	c.JSON(http.StatusOK, resp)
}

// syncRoomKnowledge folds the heartbeat's learnings into the knowledge
// base and computes the delta the room asked for. Failures here degrade
// the sync, never the heartbeat: the room stays online regardless.
func (s *Server) syncRoomKnowledge(c *gin.Context, req *roomHeartbeatRequest, room *models.Room, resp *RoomHeartbeatResponse) {
	ctx := c.Request.Context()

	name := req.RoomName
	if name == "" {
		name = room.Name
	}
	if err := s.knowledge.RecordRoomHeartbeat(ctx, room.ID, name, room.Load, req.Learnings); err != nil {
		slog.Warn("Failed to record room heartbeat knowledge", "room_id", room.ID, "error", err)
	}

	if req.LastKnowledgeVersion == nil {
		return
	}
	appID := req.AppID
	if appID == "" {
		if app := currentApp(c); app != nil && app.ID != services.AnonymousAppID {
			appID = app.ID
		}
	}
	if appID == "" {
		return
	}

	entries, version, err := s.knowledge.Delta(ctx, appID, *req.LastKnowledgeVersion)
	if err != nil {
		slog.Warn("Knowledge delta failed", "room_id", room.ID, "app_id", appID, "error", err)
		return
	}
	if err := s.knowledge.RecordSync(ctx, room.ID, appID, version); err != nil {
		slog.Warn("Failed to record knowledge sync", "room_id", room.ID, "app_id", appID, "error", err)
	}
	resp.KnowledgeVersion = &version
	resp.KnowledgeDelta = knowledgeEntriesFromRows(entries)
}

// deregisterRoomHandler handles POST /rooms/deregister. The server's
// own entry cannot be removed.
func (s *Server) deregisterRoomHandler(c *gin.Context) {
	var req roomDeregisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "invalid request body: " + err.Error()})
		return
	}
	if req.RoomID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "room_id is required"})
		return
	}

	if !s.rooms.Deregister(req.RoomID) {
		c.JSON(http.StatusNotFound, gin.H{"detail": fmt.Sprintf("Room %s not found", req.RoomID)})
		return
	}
	c.JSON(http.StatusOK, gin.H{"deregistered": true})
}

// listRoomsHandler handles GET /rooms.
func (s *Server) listRoomsHandler(c *gin.Context) {
	all := s.rooms.List()
	c.JSON(http.StatusOK, RoomListResponse{Rooms: all, Count: len(all)})
}

// getRoomHandler handles GET /rooms/:id.
func (s *Server) getRoomHandler(c *gin.Context) {
	roomID := c.Param("id")
	room, ok := s.rooms.Get(roomID)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"detail": fmt.Sprintf("Room %s not found", roomID)})
		return
	}
	c.JSON(http.StatusOK, room)
}

// roomStatusHandler handles GET /rooms/status, reporting which rooms
// and capabilities are currently unavailable.
func (s *Server) roomStatusHandler(c *gin.Context) {
	c.JSON(http.StatusOK, s.rooms.Degradation())
}
