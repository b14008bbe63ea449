package bytecode

import "testing"

func TestOPVRoundTrip(t *testing.T) {
	tests := []struct {
		name  string
		prop  PropertyID
		flags Flag
		value uint16
	}{
		{"plain", PropWidth, 0, WidthSet},
		{"important", PropColor, FlagImportant, ColorSet},
		{"inherit", PropHeight, FlagInherit, 0},
		{"both flags", PropDisplay, FlagInherit | FlagImportant, 0},
		{"wide value", PropContent, 0, ContentCounter | ListStyleTypeUpperAlpha<<ContentStyleShift},
		{"last property", PropZIndex, 0, ZIndexSet},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opv := BuildOPV(tt.prop, tt.flags, tt.value)
			if got := opv.Opcode(); got != tt.prop {
				t.Errorf("opcode: got %d, want %d", got, tt.prop)
			}
			if got := opv.Value(); got != tt.value {
				t.Errorf("value: got %#x, want %#x", got, tt.value)
			}
			if got := opv.Inherit(); got != (tt.flags&FlagInherit != 0) {
				t.Errorf("inherit: got %v", got)
			}
			if got := opv.Important(); got != (tt.flags&FlagImportant != 0) {
				t.Errorf("important: got %v", got)
			}
		})
	}
}

func TestFixedConversions(t *testing.T) {
	if FixedFromInt(100) != 100<<10 {
		t.Errorf("FixedFromInt(100) = %d", FixedFromInt(100))
	}
	if FixedFromInt(-1).Int() != -1 {
		t.Errorf("negative truncation: got %d", FixedFromInt(-1).Int())
	}
	if f := FixedFromFloat(1.5); f != 1536 {
		t.Errorf("FixedFromFloat(1.5) = %d", f)
	}
}

func TestColorChannels(t *testing.T) {
	c := MakeColor(0xff, 0x00, 0x12, 0xff)
	if uint32(c) != 0xff0012ff {
		t.Fatalf("packed colour = %#x", uint32(c))
	}
	if c.R() != 0xff || c.G() != 0 || c.B() != 0x12 || c.A() != 0xff {
		t.Errorf("channel accessors wrong: %v %v %v %v", c.R(), c.G(), c.B(), c.A())
	}
}
