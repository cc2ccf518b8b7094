package websocket

import (
	"sort"
	"sync"
	"time"

	"github.com/quickbite/dispatch/internal/pkg/constants"
	"github.com/quickbite/dispatch/internal/pkg/logger"
	"github.com/quickbite/dispatch/internal/pkg/models"
)

// entry tracks one live connection. The channel is a non-owning handle; the
// transport layer manages the connection's lifetime.
type entry struct {
	subjectID    string
	role         string
	channel      Channel
	connectedAt  time.Time
	lastActivity time.Time
}

// Registry is the single authoritative map from subject id to live channel.
// Exactly one entry exists per courier id at a time; registering the same id
// again evicts the previous entry. Mutations hold the write lock, reads the
// read lock, and no channel send ever happens while a lock is held: each
// operation mutates, captures a snapshot of affected entries, releases the
// lock, and only then sends.
type Registry struct {
	mu         sync.RWMutex
	couriers   map[string]*entry
	dashboards map[string]*entry
}

// NewRegistry creates an empty connection registry
func NewRegistry() *Registry {
	return &Registry{
		couriers:   make(map[string]*entry),
		dashboards: make(map[string]*entry),
	}
}

// Register adds a live channel for a subject. A courier registration evicts
// any previous entry for the same id, notifying dashboards of the disconnect
// before the connect so observers see exactly one of each. A dashboard
// registration immediately receives the current connected-courier snapshot.
func (r *Registry) Register(role, subjectID string, channel Channel) {
	now := time.Now()
	e := &entry{
		subjectID:    subjectID,
		role:         role,
		channel:      channel,
		connectedAt:  now,
		lastActivity: now,
	}

	if role == constants.RoleDashboard {
		r.mu.Lock()
		r.dashboards[subjectID] = e
		snapshot := r.courierSnapshotLocked()
		total := len(r.dashboards)
		r.mu.Unlock()

		logger.Info("Dashboard connected",
			logger.String("session_id", subjectID),
			logger.Int("active_dashboards", total))

		// Push the current courier list to the new dashboard
		if err := channel.Send(models.NewDispatchMessage(models.ConnectedCouriersPayload{Couriers: snapshot})); err != nil {
			logger.Warn("Failed to send courier snapshot to dashboard",
				logger.String("session_id", subjectID),
				logger.Err(err))
		}
		return
	}

	r.mu.Lock()
	evicted := r.couriers[subjectID]
	r.couriers[subjectID] = e
	dashboards := r.dashboardChannelsLocked()
	total := len(r.couriers)
	r.mu.Unlock()

	logger.Info("Courier connected",
		logger.String("courier_id", subjectID),
		logger.Int("active_couriers", total))

	if evicted != nil {
		r.sendToAll(dashboards, models.NewDispatchMessage(models.ConnectionStatusPayload{
			CourierID: subjectID,
			Status:    models.StatusDisconnected,
			Timestamp: models.FormatTime(now),
		}))
	}

	r.sendToAll(dashboards, models.NewDispatchMessage(models.ConnectionStatusPayload{
		CourierID: subjectID,
		Status:    models.StatusConnected,
		Timestamp: models.FormatTime(now),
	}))
}

// Unregister removes the entry for a subject if present and reports whether
// anything was removed. Removing a courier notifies all dashboards.
func (r *Registry) Unregister(role, subjectID string) bool {
	return r.unregister(role, subjectID, nil)
}

// UnregisterChannel removes the entry only if it still holds the given
// channel. A transport goroutine whose connection was evicted by a newer
// registration uses this so it cannot remove its successor's entry.
func (r *Registry) UnregisterChannel(role, subjectID string, channel Channel) bool {
	return r.unregister(role, subjectID, channel)
}

func (r *Registry) unregister(role, subjectID string, channel Channel) bool {
	r.mu.Lock()

	var (
		removed    bool
		dashboards []Channel
	)
	if role == constants.RoleDashboard {
		if e, ok := r.dashboards[subjectID]; ok && (channel == nil || e.channel == channel) {
			delete(r.dashboards, subjectID)
			removed = true
		}
		r.mu.Unlock()

		if removed {
			logger.Info("Dashboard disconnected", logger.String("session_id", subjectID))
		}
		return removed
	}

	if e, ok := r.couriers[subjectID]; ok && (channel == nil || e.channel == channel) {
		delete(r.couriers, subjectID)
		dashboards = r.dashboardChannelsLocked()
		removed = true
	}
	r.mu.Unlock()

	if removed {
		logger.Info("Courier disconnected", logger.String("courier_id", subjectID))
		r.sendToAll(dashboards, models.NewDispatchMessage(models.ConnectionStatusPayload{
			CourierID: subjectID,
			Status:    models.StatusDisconnected,
			Timestamp: models.FormatTime(time.Now()),
		}))
	}

	return removed
}

// IsCourierConnected reports whether a courier has a live channel
func (r *Registry) IsCourierConnected(courierID string) bool {
	r.mu.RLock()
	e, ok := r.couriers[courierID]
	r.mu.RUnlock()
	return ok && e.channel.IsOpen()
}

// ConnectedCourierIDs returns a sorted snapshot of connected courier ids.
// The snapshot is not kept consistent with future mutations; callers must
// re-query for freshness.
func (r *Registry) ConnectedCourierIDs() []string {
	r.mu.RLock()
	ids := make([]string, 0, len(r.couriers))
	for id := range r.couriers {
		ids = append(ids, id)
	}
	r.mu.RUnlock()

	sort.Strings(ids)
	return ids
}

// ConnectedCouriers returns a snapshot of courier connection details
func (r *Registry) ConnectedCouriers() []models.ConnectedCourier {
	r.mu.RLock()
	snapshot := r.courierSnapshotLocked()
	r.mu.RUnlock()
	return snapshot
}

// Touch updates the activity timestamp for a subject
func (r *Registry) Touch(role, subjectID string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	m := r.couriers
	if role == constants.RoleDashboard {
		m = r.dashboards
	}
	if e, ok := m[subjectID]; ok {
		e.lastActivity = time.Now()
	}
}

// SendToCourier delivers one message to a courier's channel. It returns false
// when the courier is not connected or the send fails; it never retries.
func (r *Registry) SendToCourier(courierID string, message models.DispatchMessage) bool {
	r.mu.RLock()
	e, ok := r.couriers[courierID]
	r.mu.RUnlock()

	if !ok {
		logger.Warn("Failed to send message to courier: not connected",
			logger.String("courier_id", courierID),
			logger.String("type", string(message.Type)))
		return false
	}

	if err := e.channel.Send(message); err != nil {
		logger.Warn("Failed to send message to courier",
			logger.String("courier_id", courierID),
			logger.String("type", string(message.Type)),
			logger.Err(err))
		return false
	}

	r.Touch(constants.RoleCourier, courierID)
	return true
}

// BroadcastToDashboards delivers one message to every dashboard channel and
// returns the delivery count. Channels found closed during iteration are
// removed from the registry as a side effect. Zero connected dashboards is
// expected, not exceptional.
func (r *Registry) BroadcastToDashboards(message models.DispatchMessage) int {
	r.mu.RLock()
	targets := make([]*entry, 0, len(r.dashboards))
	for _, e := range r.dashboards {
		targets = append(targets, e)
	}
	r.mu.RUnlock()

	if len(targets) == 0 {
		logger.Warn("No dashboard connections available to receive message",
			logger.String("type", string(message.Type)))
		return 0
	}

	sent := 0
	var stale []*entry
	for _, e := range targets {
		if !e.channel.IsOpen() {
			stale = append(stale, e)
			continue
		}
		if err := e.channel.Send(message); err != nil {
			stale = append(stale, e)
			continue
		}
		sent++
	}

	if len(stale) > 0 {
		r.mu.Lock()
		for _, e := range stale {
			if current, ok := r.dashboards[e.subjectID]; ok && current.channel == e.channel {
				delete(r.dashboards, e.subjectID)
			}
		}
		r.mu.Unlock()

		logger.Debug("Removed stale dashboard connections during broadcast",
			logger.Int("removed", len(stale)))
	}

	return sent
}

// SweepStale removes entries whose channel reports closed and returns the
// number removed. It is idempotent and safe to run on a timer alongside
// in-flight operations: it only ever removes, never mutates in place.
func (r *Registry) SweepStale() int {
	r.mu.Lock()

	var staleCouriers []string
	for id, e := range r.couriers {
		if !e.channel.IsOpen() {
			delete(r.couriers, id)
			staleCouriers = append(staleCouriers, id)
		}
	}
	removed := len(staleCouriers)
	for id, e := range r.dashboards {
		if !e.channel.IsOpen() {
			delete(r.dashboards, id)
			removed++
		}
	}
	dashboards := r.dashboardChannelsLocked()
	r.mu.Unlock()

	sort.Strings(staleCouriers)
	now := time.Now()
	for _, id := range staleCouriers {
		r.sendToAll(dashboards, models.NewDispatchMessage(models.ConnectionStatusPayload{
			CourierID: id,
			Status:    models.StatusDisconnected,
			Timestamp: models.FormatTime(now),
		}))
	}

	if removed > 0 {
		logger.Info("Swept stale connections", logger.Int("removed", removed))
	}

	return removed
}

// Stats returns current connection counts
func (r *Registry) Stats() models.ConnectionStats {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return models.ConnectionStats{
		ConnectedCouriers:   len(r.couriers),
		ConnectedDashboards: len(r.dashboards),
		TotalConnections:    len(r.couriers) + len(r.dashboards),
	}
}

// courierSnapshotLocked copies courier connection details; callers hold a lock
func (r *Registry) courierSnapshotLocked() []models.ConnectedCourier {
	snapshot := make([]models.ConnectedCourier, 0, len(r.couriers))
	for _, e := range r.couriers {
		snapshot = append(snapshot, models.ConnectedCourier{
			CourierID:    e.subjectID,
			ConnectedAt:  e.connectedAt,
			LastActivity: e.lastActivity,
		})
	}
	sort.Slice(snapshot, func(i, j int) bool { return snapshot[i].CourierID < snapshot[j].CourierID })
	return snapshot
}

// dashboardChannelsLocked copies dashboard channels; callers hold a lock
func (r *Registry) dashboardChannelsLocked() []Channel {
	channels := make([]Channel, 0, len(r.dashboards))
	for _, e := range r.dashboards {
		channels = append(channels, e.channel)
	}
	return channels
}

func (r *Registry) sendToAll(channels []Channel, message models.DispatchMessage) {
	for _, ch := range channels {
		if err := ch.Send(message); err != nil {
			logger.Debug("Dashboard send failed during event fan-out",
				logger.String("type", string(message.Type)),
				logger.Err(err))
		}
	}
}
