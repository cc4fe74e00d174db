package filters

import (
	"github.com/KirkDiggler/rpg-spellbook/internal/errors"
)

// Model is the serialized state of an active filter. A nil *Model stands for an
// inactive filter.
type Model struct {
	Value Selection `json:"value"`
}

// Filter is the contract a host grid drives for each filterable column.
type Filter[T any] interface {
	// DoesFilterPass is called once per row during the host's filter pass
	DoesFilterPass(row T) bool

	// IsFilterActive reports whether the filter excludes anything
	IsFilterActive() bool

	// GetModel returns nil when inactive, the current selection otherwise
	GetModel() *Model

	// SetModel restores state; nil resets to the full domain
	SetModel(model *Model)
}

// ChangeNotifier is implemented by filters that report user-driven changes to
// their host. The host installs its callback once, when it adopts the filter.
type ChangeNotifier interface {
	SetFilterChangedCallback(callback func())
}

// Option is one checkbox of a set filter.
type Option struct {
	Value   int
	Label   string
	Checked bool
}

// SetFilterConfig holds the column-specific parameters of a set filter
type SetFilterConfig[T any] struct {
	// Field names the column the filter is attached to
	Field string

	// DomainSize is the number of codes; the domain is 0..DomainSize-1
	DomainSize int

	// LabelOf renders a code the way the column displays it
	LabelOf LabelFunc

	// ValueOf returns the row's displayed value for the column, "" when missing
	ValueOf func(row T) string
}

// Validate ensures all required parameters are present
func (c *SetFilterConfig[T]) Validate() error {
	if c == nil {
		return errors.InvalidArgument("config cannot be nil")
	}

	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("Field", c.Field, vb)
	if c.DomainSize < 0 {
		vb.Field("DomainSize", "must not be negative")
	}
	if c.LabelOf == nil {
		vb.RequiredField("LabelOf")
	}
	if c.ValueOf == nil {
		vb.RequiredField("ValueOf")
	}

	return vb.Build()
}

// SetFilter binds the selection functions to one column's domain and to the host
// grid's filter lifecycle. Every column shares this type; only the config differs.
//
// A SetFilter is driven from a single goroutine, like the grid that owns it.
type SetFilter[T any] struct {
	field      string
	domainSize int
	labelOf    LabelFunc
	valueOf    func(row T) string
	onChanged  func()
	selected   Selection
}

// Ensure SetFilter satisfies the host contract
var (
	_ Filter[any]    = (*SetFilter[any])(nil)
	_ ChangeNotifier = (*SetFilter[any])(nil)
)

// NewSetFilter creates a filter with every value selected
func NewSetFilter[T any](cfg *SetFilterConfig[T]) (*SetFilter[T], error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrapf(err, "invalid set filter config")
	}

	return &SetFilter[T]{
		field:      cfg.Field,
		domainSize: cfg.DomainSize,
		labelOf:    cfg.LabelOf,
		valueOf:    cfg.ValueOf,
		selected:   CreateDefaultSelection(cfg.DomainSize),
	}, nil
}

// SetFilterChangedCallback installs the host's change callback
func (f *SetFilter[T]) SetFilterChangedCallback(callback func()) {
	f.onChanged = callback
}

// Field returns the column the filter belongs to
func (f *SetFilter[T]) Field() string {
	return f.field
}

// DoesFilterPass checks the row's displayed value against the selection
func (f *SetFilter[T]) DoesFilterPass(row T) bool {
	return PassesFilter(f.valueOf(row), f.selected, f.labelOf)
}

// IsFilterActive reports whether any value has been deselected
func (f *SetFilter[T]) IsFilterActive() bool {
	return IsActive(f.selected, f.domainSize)
}

// GetModel returns nil for the default selection
func (f *SetFilter[T]) GetModel() *Model {
	if !f.IsFilterActive() {
		return nil
	}

	return &Model{Value: f.selected.Clone()}
}

// SetModel replaces the selection. Values outside the domain are kept as given;
// they never match a row. Host-initiated, so the change callback does not fire.
func (f *SetFilter[T]) SetModel(model *Model) {
	if model == nil {
		f.selected = CreateDefaultSelection(f.domainSize)
		return
	}

	f.selected = model.Value.Clone()
}

// Toggle flips one checkbox. Codes outside the domain are ignored.
func (f *SetFilter[T]) Toggle(value int) {
	if value < 0 || value >= f.domainSize {
		return
	}

	f.selected = Toggle(f.selected, value)
	f.notify()
}

// SelectAll checks every box, making the filter inactive
func (f *SetFilter[T]) SelectAll() {
	f.selected = CreateDefaultSelection(f.domainSize)
	f.notify()
}

// SelectNone clears every box; nothing passes afterwards
func (f *SetFilter[T]) SelectNone() {
	f.selected = Selection{}
	f.notify()
}

// IsChecked reports whether the checkbox for value is checked
func (f *SetFilter[T]) IsChecked(value int) bool {
	return IsChecked(f.selected, value)
}

// Options lists the checkboxes in domain order
func (f *SetFilter[T]) Options() []Option {
	options := make([]Option, f.domainSize)
	for i := range options {
		options[i] = Option{
			Value:   i,
			Label:   f.labelOf(i),
			Checked: f.IsChecked(i),
		}
	}
	return options
}

// notify runs after the state has been replaced so the host's filter pass
// observes the new selection
func (f *SetFilter[T]) notify() {
	if f.onChanged != nil {
		f.onChanged()
	}
}
