package iddl

import (
	"context"

	"github.com/alexisbeaulieu97/iddl/internal/layout/resize"
)

// ComputeGridTemplate compacts preset to the present regions. Unknown presets
// yield the degenerate one-cell template together with an error.
func (e *Engine) ComputeGridTemplate(preset string, present []string, overrides map[string]string) (Template, error) {
	return e.grids.Compute(preset, present, overrides)
}

// PanelHandle is the caller's view of a resizable panel.
type PanelHandle struct {
	panel *resize.Panel
	src   PointerSource
}

// UseResizablePanel creates panel state for cfg, restoring anything persisted
// under cfg.StorageKey. Drag sessions subscribe to src.
func (e *Engine) UseResizablePanel(ctx context.Context, cfg PanelConfig, src PointerSource) (*PanelHandle, error) {
	p, err := resize.NewPanel(ctx, cfg,
		resize.WithStore(e.store),
		resize.WithLogger(e.log),
		resize.WithMetrics(e.metrics),
	)
	if err != nil {
		return nil, err
	}
	return &PanelHandle{panel: p, src: src}, nil
}

// Sizes returns a copy of the current sizes.
func (h *PanelHandle) Sizes() map[string]string { return h.panel.Sizes() }

// Collapsed returns a copy of the collapsed flags.
func (h *PanelHandle) Collapsed() map[string]bool { return h.panel.Collapsed() }

// OnDragStart begins a drag of region's handle at pointer position pos. The
// session ends on the next pointer up or cancel.
func (h *PanelHandle) OnDragStart(region string, pos float64) (*Session, error) {
	return h.panel.BeginDrag(region, pos, h.src)
}

// ToggleCollapse flips region's collapsed flag and returns the new value.
func (h *PanelHandle) ToggleCollapse(region string) (bool, error) {
	return h.panel.ToggleCollapse(region)
}

// SetSize commits an explicit size for region.
func (h *PanelHandle) SetSize(region, size string) error {
	return h.panel.SetSize(region, size)
}

// ResetRegion restores region's default size.
func (h *PanelHandle) ResetRegion(region string) error {
	return h.panel.ResetRegion(region)
}

// Panel exposes the underlying state machine.
func (h *PanelHandle) Panel() *Panel { return h.panel }

// Close ends any drag in progress.
func (h *PanelHandle) Close() { h.panel.Close() }

// Layout computes preset for the present regions using the panel's sizes as
// overrides. Collapsed regions size their tracks with the preset's collapsed
// size.
func (e *Engine) Layout(preset string, present []string, h *PanelHandle) (Template, error) {
	return e.grids.ComputeRegions(preset, h.panel.GridRegions(present))
}
