package components

// Button is a labelled, pressable control.
type Button struct {
	BaseComponent
	label    string
	variant  Variant
	onPress  func()
	disabled bool
	active   bool
}

// NewButton creates a new primary button with the given label.
func NewButton(label string) *Button {
	return &Button{
		BaseComponent: NewBaseComponent(),
		label:         label,
		variant:       VariantPrimary,
	}
}

// View renders the button outside of any theme scope.
func (b *Button) View() string {
	return b.ViewWithContext(DefaultContext())
}

// ViewWithContext renders the button with the given context.
func (b *Button) ViewWithContext(ctx RenderContext) string {
	th := ctx.Theme()
	style := b.ComputeStyleOver(ButtonAttributes(th, b.variant).Style(), th)

	if b.disabled {
		style = style.Faint(true)
	}
	if b.active {
		style = style.Underline(true)
	}

	return style.Render(b.label)
}

// Press invokes the press handler. It reports whether a handler ran.
func (b *Button) Press() bool {
	if b.disabled || b.onPress == nil {
		return false
	}
	b.onPress()
	return true
}

// WithOnPress sets the function called by Press.
func (b *Button) WithOnPress(fn func()) *Button {
	b.onPress = fn
	return b
}

// WithVariant sets the button variant.
func (b *Button) WithVariant(variant Variant) *Button {
	b.variant = variant
	return b
}

// WithDisabled sets the disabled state.
func (b *Button) WithDisabled(disabled bool) *Button {
	b.disabled = disabled
	return b
}

// WithActive sets the focused state.
func (b *Button) WithActive(active bool) *Button {
	b.active = active
	return b
}

// WithAppliers applies theme-based style modifiers over the variant style.
func (b *Button) WithAppliers(appliers ...StyleFunc) *Button {
	b.AddAppliers(appliers...)
	return b
}

// Label returns the button label.
func (b *Button) Label() string {
	return b.label
}

// SetLabel updates the button label.
func (b *Button) SetLabel(label string) *Button {
	b.label = label
	return b
}

// Variant returns the button variant.
func (b *Button) Variant() Variant {
	return b.variant
}

// IsDisabled returns true if the button is disabled.
func (b *Button) IsDisabled() bool {
	return b.disabled
}

// PrimaryButton creates a primary button.
func PrimaryButton(label string) *Button {
	return NewButton(label).WithVariant(VariantPrimary)
}

// SecondaryButton creates a secondary button.
func SecondaryButton(label string) *Button {
	return NewButton(label).WithVariant(VariantSecondary)
}
