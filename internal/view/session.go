package view

import (
	"errors"
	"fmt"
	"image"
	"log/slog"
)

var ErrGroupConflict = errors.New("region already belongs to a share group")

// Session coordinates every view sharing one canvas: it owns the modifier
// key tracker, the region registry and the declared share groups, and it
// routes normalized input events to the right per-view manager.
//
// Everything here runs on the UI event loop; handlers run to completion
// before the next event is dispatched, so no locking is needed. The
// suppression of programmatic slider updates (Slider.SetValue) is the
// mutation discipline that keeps propagation single-pass.
type Session struct {
	canvasID    string
	keys        *KeyState
	registry    map[string]handler
	order       []string // registration order, for deterministic routing
	sliceGroups []map[string]bool
	zoomGroups  []map[string]bool
}

// Sessions is the registry of canvas sessions. Attach is idempotent per
// canvas identity; a second attach returns the existing session.
type Sessions struct {
	byCanvas map[string]*Session
}

func NewSessions() *Sessions {
	return &Sessions{byCanvas: make(map[string]*Session)}
}

func (s *Sessions) Attach(canvasID string) *Session {
	if existing, ok := s.byCanvas[canvasID]; ok {
		return existing
	}
	session := &Session{
		canvasID: canvasID,
		keys:     NewKeyState(),
		registry: make(map[string]handler),
	}
	s.byCanvas[canvasID] = session

	return session
}

// Close tears down the session for a canvas.
func (s *Sessions) Close(canvasID string) {
	if session, ok := s.byCanvas[canvasID]; ok {
		session.keys.Reset()
		delete(s.byCanvas, canvasID)
	}
}

func (s *Session) Keys() *KeyState { return s.keys }

// AttachImageView registers a manager for a plain image view. Idempotent
// per region: re-attaching returns the existing manager.
func (s *Session) AttachImageView(state *State) *Manager {
	if existing, ok := s.registry[state.Region.ID()]; ok {
		if mgr, isImage := existing.(*Manager); isImage {
			return mgr
		}
	}
	mgr := &Manager{session: s, state: state, zoomScale: DefaultZoomScale, cmapDelta: DefaultCmapDelta}
	s.register(state.Region.ID(), mgr)

	return mgr
}

// AttachVolumeView registers a manager for a volume view and wires the
// slider's change callback, when a slider is present.
func (s *Session) AttachVolumeView(state *State) *VolumeManager {
	if existing, ok := s.registry[state.Region.ID()]; ok {
		if mgr, isVolume := existing.(*VolumeManager); isVolume {
			return mgr
		}
	}
	mgr := &VolumeManager{Manager: Manager{session: s, state: state, zoomScale: DefaultZoomScale, cmapDelta: DefaultCmapDelta}}
	if state.Slider != nil {
		state.Slider.OnChange(mgr.OnSliderChange)
	}
	s.register(state.Region.ID(), mgr)

	return mgr
}

// SetZoomScale adjusts the wheel zoom factor for every attached view.
func (s *Session) SetZoomScale(scale float64) {
	if scale <= 1 {
		return
	}
	for _, id := range s.order {
		switch mgr := s.registry[id].(type) {
		case *Manager:
			mgr.zoomScale = scale
		case *VolumeManager:
			mgr.zoomScale = scale
		}
	}
}

// SetCmapDelta adjusts the colorbar wheel step for every attached view.
func (s *Session) SetCmapDelta(delta float64) {
	if delta <= 0 {
		return
	}
	for _, id := range s.order {
		switch mgr := s.registry[id].(type) {
		case *Manager:
			mgr.cmapDelta = delta
		case *VolumeManager:
			mgr.cmapDelta = delta
		}
	}
}

// register records a manager for a region. Re-registering an id (a region
// re-attached as the other view kind) replaces the manager in place and
// keeps the routing order free of duplicates.
func (s *Session) register(id string, mgr handler) {
	if _, attached := s.registry[id]; !attached {
		s.order = append(s.order, id)
	}
	s.registry[id] = mgr
	slog.Debug("view attached", slog.String("canvas", s.canvasID), slog.String("region", id))
}

// DeclareSliceGroup declares a set of regions whose slice index moves
// together. Membership is fixed after declaration; a region may belong to
// at most one slice group.
func (s *Session) DeclareSliceGroup(ids ...string) error {
	group, err := s.newGroup(s.sliceGroups, ids)
	if err != nil {
		return err
	}
	s.sliceGroups = append(s.sliceGroups, group)

	return nil
}

// DeclareZoomGroup declares a set of regions whose zoom window moves
// together, with the same membership rules as slice groups.
func (s *Session) DeclareZoomGroup(ids ...string) error {
	group, err := s.newGroup(s.zoomGroups, ids)
	if err != nil {
		return err
	}
	s.zoomGroups = append(s.zoomGroups, group)

	return nil
}

func (s *Session) newGroup(existing []map[string]bool, ids []string) (map[string]bool, error) {
	group := make(map[string]bool, len(ids))
	for _, id := range ids {
		for _, other := range existing {
			if other[id] {
				return nil, fmt.Errorf("region %s: %w", id, ErrGroupConflict)
			}
		}
		group[id] = true
	}

	return group, nil
}

// Dispatch routes one normalized event. Wheel events go to the manager
// whose view contains the cursor; wheel events outside any view are
// ignored. Key events update the session tracker only and are not
// forwarded to any manager: managers read modifier state from the tracker
// at wheel time (see VolumeManager.HandleWheel), and no view consumes raw
// key events directly.
func (s *Session) Dispatch(ev Event) {
	switch ev.Kind {
	case KindKeyDown:
		s.keys.OnKeyDown(ev.Key)
	case KindKeyUp:
		s.keys.OnKeyUp(ev.Key)
	case KindWheel:
		if mgr := s.managerAt(ev.Pos); mgr != nil {
			mgr.HandleWheel(ev)
		}
	}
}

func (s *Session) managerAt(pos image.Point) handler {
	for _, id := range s.order {
		if mgr := s.registry[id]; mgr.Contains(pos) {
			return mgr
		}
	}

	return nil
}

// sliceMembers returns the managers in id's slice group in registration
// order, or nil when the region is ungrouped.
func (s *Session) sliceMembers(id string) []*VolumeManager {
	group := findGroup(s.sliceGroups, id)
	if group == nil {
		return nil
	}

	var members []*VolumeManager
	for _, rid := range s.order {
		if !group[rid] {
			continue
		}
		if mgr, ok := s.registry[rid].(*VolumeManager); ok {
			members = append(members, mgr)
		}
	}

	return members
}

// zoomMembers returns the managers sharing id's zoom window. An ungrouped
// region is its own single-member group.
func (s *Session) zoomMembers(id string) []handler {
	group := findGroup(s.zoomGroups, id)
	if group == nil {
		if mgr, ok := s.registry[id]; ok {
			return []handler{mgr}
		}

		return nil
	}

	var members []handler
	for _, rid := range s.order {
		if group[rid] {
			members = append(members, s.registry[rid])
		}
	}

	return members
}

func findGroup(groups []map[string]bool, id string) map[string]bool {
	for _, group := range groups {
		if group[id] {
			return group
		}
	}

	return nil
}

// propagateSlice drives every member of a slice group to index in a single
// synchronous pass. Each member clamps the index to its own extent, so
// grouped volumes of different lengths pin at their last slice instead of
// failing. Sliders of regions other than the origin are updated through the
// programmatic path, which never re-fires their change callbacks; the
// origin's slider already shows the value the user put there.
func (s *Session) propagateSlice(members []*VolumeManager, index int, origin string) {
	for _, mgr := range members {
		target := min(max(index, 0), mgr.state.Volume.Extent()-1)
		mgr.setSlice(target, false)
		if mgr.state.Region.ID() != origin && mgr.state.Slider != nil {
			mgr.state.Slider.SetValue(target)
		}
	}
}
