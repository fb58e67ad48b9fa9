package resize

import (
	"sync"

	"github.com/google/uuid"
)

// Session is one drag gesture. It owns the pointer subscriptions taken at
// drag start and releases them exactly once.
type Session struct {
	ID        string
	Region    string
	StartPos  float64
	StartSize float64

	panel    *Panel
	spec     RegionSpec
	releases []func()
	once     sync.Once
	active   bool
}

func newSession(p *Panel, region string, spec RegionSpec, startPos, startSize float64) *Session {
	return &Session{
		ID:        uuid.NewString(),
		Region:    region,
		StartPos:  startPos,
		StartSize: startSize,
		panel:     p,
		spec:      spec,
		active:    true,
	}
}

// Active reports whether the session still drives its region.
func (s *Session) Active() bool {
	s.panel.mu.Lock()
	defer s.panel.mu.Unlock()
	return s.active
}

// SizeAt returns the clamped size the region would take with the pointer at pos.
func (s *Session) SizeAt(pos float64) float64 {
	delta := pos - s.StartPos
	if s.spec.Handle.inverted() {
		delta = -delta
	}
	return s.spec.clamp(s.StartSize + delta)
}

func (s *Session) onMove(ev PointerEvent) {
	pos := ev.X
	if s.spec.Handle.Vertical() {
		pos = ev.Y
	}

	p := s.panel
	p.mu.Lock()
	defer p.mu.Unlock()
	if !s.active {
		return
	}
	p.commit(s.Region, FormatPx(s.SizeAt(pos)))
}

func (s *Session) onEnd(PointerEvent) {
	s.Close()
}

// Close ends the session and releases its pointer subscriptions. Safe to
// call repeatedly and from within a listener.
func (s *Session) Close() {
	s.once.Do(func() {
		p := s.panel
		p.mu.Lock()
		s.active = false
		if p.session == s {
			p.session = nil
		}
		releases := s.releases
		s.releases = nil
		p.mu.Unlock()

		for _, release := range releases {
			release()
		}
		p.log.WithFields(map[string]any{"region": s.Region, "session": s.ID}).Debug("drag ended")
	})
}
