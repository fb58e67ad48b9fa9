package iddl

import (
	"io"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/alexisbeaulieu97/iddl/internal/axes"
	"github.com/alexisbeaulieu97/iddl/internal/config"
	"github.com/alexisbeaulieu97/iddl/internal/layout/grid"
	"github.com/alexisbeaulieu97/iddl/internal/layout/resize"
	"github.com/alexisbeaulieu97/iddl/internal/logger"
	"github.com/alexisbeaulieu97/iddl/internal/metrics"
	"github.com/alexisbeaulieu97/iddl/internal/role"
	"github.com/alexisbeaulieu97/iddl/internal/storage"
	"github.com/alexisbeaulieu97/iddl/internal/style"
	"github.com/alexisbeaulieu97/iddl/internal/style/atom"
	"github.com/alexisbeaulieu97/iddl/internal/variant"
)

// Attribute context.
type (
	Context    = axes.Context
	Overrides  = axes.Overrides
	Prominence = axes.Prominence
	Density    = axes.Density
	Intent     = axes.Intent
	Align      = axes.Align
)

const (
	ProminenceHero     = axes.ProminenceHero
	ProminenceStrong   = axes.ProminenceStrong
	ProminenceStandard = axes.ProminenceStandard
	ProminenceSubtle   = axes.ProminenceSubtle

	DensityCompact     = axes.DensityCompact
	DensityStandard    = axes.DensityStandard
	DensityComfortable = axes.DensityComfortable

	IntentNeutral  = axes.IntentNeutral
	IntentBrand    = axes.IntentBrand
	IntentPositive = axes.IntentPositive
	IntentCaution  = axes.IntentCaution
	IntentCritical = axes.IntentCritical
	IntentInfo     = axes.IntentInfo

	AlignLeft   = axes.AlignLeft
	AlignCenter = axes.AlignCenter
	AlignRight  = axes.AlignRight
)

// Roles and resolution.
type (
	Domain           = role.Domain
	RoleConfig       = role.Config
	RoleKind         = role.Kind
	Predicate        = role.Predicate
	CompoundOverride = role.CompoundOverride
	RoleRegistry     = role.Registry
	StyleFragment    = style.Fragment
	Resolved         = variant.Resolved
	Document         = config.Document
)

const (
	DomainText      = role.DomainText
	DomainContainer = role.DomainContainer
	DomainOverlay   = role.DomainOverlay
	DomainPage      = role.DomainPage
	DomainAction    = role.DomainAction

	KindSimple  = role.KindSimple
	KindComplex = role.KindComplex
)

// Grid layout.
type (
	Template   = grid.Template
	Preset     = grid.Preset
	Track      = grid.Track
	GridRegion = grid.Region
	GridEngine = grid.Engine
)

const (
	PresetStudio       = grid.Studio
	PresetPresentation = grid.Presentation
	PresetSidebar      = grid.Sidebar
	PresetThreeCol     = grid.ThreeCol
	PresetThreeColHead = grid.ThreeColHead
	PresetMasterDetail = grid.MasterDetail
	PresetDialog       = grid.Dialog

	DefaultCollapsedSize = grid.DefaultCollapsedSize
)

// Resizable panels.
type (
	PanelConfig   = resize.Config
	RegionSpec    = resize.RegionSpec
	Edge          = resize.Edge
	Panel         = resize.Panel
	Session       = resize.Session
	PointerSource = resize.PointerSource
	PointerEvent  = resize.PointerEvent
	EventKind     = resize.EventKind
	Listener      = resize.Listener
	PointerBus    = resize.Bus
)

const (
	EdgeLeft   = resize.EdgeLeft
	EdgeRight  = resize.EdgeRight
	EdgeTop    = resize.EdgeTop
	EdgeBottom = resize.EdgeBottom

	EventMove   = resize.EventMove
	EventUp     = resize.EventUp
	EventCancel = resize.EventCancel
)

// NewPointerBus returns an in-process PointerSource.
func NewPointerBus() *PointerBus { return resize.NewBus() }

// Ambient services accepted by the Engine options.
type (
	Logger        = logger.Logger
	LoggerOptions = logger.Options
	Metrics       = metrics.Collectors
	Store         = storage.Store
	StoreBackend  = storage.Backend
	AtomRuntime   = atom.Runtime
)

const (
	BackendMemory = storage.BackendMemory
	BackendFile   = storage.BackendFile
	BackendSQLite = storage.BackendSQLite
)

// NewLogger builds a zerolog-backed logger.
func NewLogger(opts LoggerOptions) (*Logger, error) { return logger.New(opts) }

// NewMetrics registers the engine collectors with reg.
func NewMetrics(reg prometheus.Registerer) *Metrics { return metrics.New(reg) }

// OpenStore opens a persistence backend. The returned close func is always
// non-nil.
func OpenStore(backend StoreBackend, path string) (Store, func() error, error) {
	return storage.Open(backend, path)
}

// NewAtomRuntime creates a runtime whose rules are also written to sink when
// sink is non-nil.
func NewAtomRuntime(sink io.Writer) *AtomRuntime {
	if sink == nil {
		return atom.NewRuntime()
	}
	return atom.NewRuntime(atom.WithSink(sink))
}
