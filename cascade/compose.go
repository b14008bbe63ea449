package cascade

import (
	"github.com/zhuyadong/libcss/bytecode"
	"github.com/zhuyadong/libcss/intern"
)

// Compose reconciles a child computed style with its parent: inherited
// states copy the parent's value, everything else copies the child's.
// Generic bodies per storage shape; the per-property compose operations
// wire getters to setters.

func composeEnum(parent, child, result *ComputedStyle,
	get func(*ComputedStyle) uint8, set enumSetter) error {
	t := get(child)
	if t == 0 {
		t = get(parent)
	}
	return set(result, t)
}

func composeLength(parent, child, result *ComputedStyle,
	get func(*ComputedStyle) (uint8, bytecode.Fixed, Unit), set lengthSetter) error {
	t, l, u := get(child)
	if t == 0 {
		t, l, u = get(parent)
	}
	return set(result, t, l, u)
}

func composeNumber(parent, child, result *ComputedStyle,
	get func(*ComputedStyle) (uint8, bytecode.Fixed), set numberSetter) error {
	t, n := get(child)
	if t == 0 {
		t, n = get(parent)
	}
	return set(result, t, n)
}

func composeColour(parent, child, result *ComputedStyle,
	get func(*ComputedStyle) (uint8, bytecode.Color), set colourSetter) error {
	t, c := get(child)
	if t == 0 {
		t, c = get(parent)
	}
	return set(result, t, c)
}

func composeURI(parent, child, result *ComputedStyle,
	get func(*ComputedStyle) (uint8, *intern.String), set uriSetter) error {
	t, u := get(child)
	if t == 0 {
		t, u = get(parent)
	}
	return set(result, t, u)
}

func composeTwoLength(parent, child, result *ComputedStyle,
	get func(*ComputedStyle) (uint8, bytecode.Fixed, Unit, bytecode.Fixed, Unit),
	set func(*ComputedStyle, uint8, bytecode.Fixed, Unit, bytecode.Fixed, Unit) error) error {
	t, a, au, b, bu := get(child)
	if t == 0 {
		t, a, au, b, bu = get(parent)
	}
	return set(result, t, a, au, b, bu)
}

func composeStrings(parent, child, result *ComputedStyle,
	get func(*ComputedStyle) (uint8, []*intern.String), set familyListSetter) error {
	t, s := get(child)
	if t == 0 {
		t, s = get(parent)
	}
	// Deep-copy so the records do not share list storage.
	copied := append([]*intern.String(nil), s...)
	return set(result, t, copied)
}
