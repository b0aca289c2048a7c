// Package components provides theme-aware terminal components built on lipgloss.
//
// # Overview
//
// Box, Button and Text are pure functions of a theme and a variant. Their
// visual properties are computed by BoxAttributes, ButtonAttributes and
// TextAttributes and then mapped onto lipgloss styles: pixel lengths become
// cells at eight pixels per cell, weights of 600 and above render bold,
// captions render faint and a non-zero radius draws a rounded border.
//
// # Render Context
//
// A RenderContext captures one provider.Value. Build one per frame so every
// component in the frame sees the same theme:
//
//	scope := provider.Provide(theme.ModeSystem, provider.WithSource(src))
//	defer scope.Close()
//
//	ctx := components.ContextFor(scope)
//	out := components.VStack(
//		components.Heading(1, "Settings"),
//		components.NewBox().WithTitle("Appearance").WithContent("Follows the system"),
//		components.PrimaryButton("Apply"),
//	).WithGap(tokens.SpacingSM).ViewWithContext(ctx)
//
// View renders with DefaultContext, which is the light fallback used outside
// any scope.
//
// # Style Modifiers
//
// Components accept StyleFunc modifiers through WithAppliers. They run after
// the variant style, so they win:
//
//	NewBox().WithAppliers(Background(SlotNeutral(tokens.Weight100)), Padding(tokens.SpacingSM))
//
// Available modifiers:
//   - Background(slot), Foreground(slot): theme colors
//   - Padding/PaddingX/PaddingY(key), Margin(key): theme spacing
//   - Rounded(key): rounded border when the radius is non-zero
//   - Typography(variant): text variant attributes
package components
