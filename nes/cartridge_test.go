package nes

import (
	"errors"
	"testing"
)

func TestLoadCartridge(t *testing.T) {
	tests := []struct {
		name    string
		rom     []byte
		wantErr error
	}{
		{
			name:    "empty",
			rom:     nil,
			wantErr: ErrInvalidHeader,
		},
		{
			name:    "too short",
			rom:     []byte{'N', 'E', 'S', 0x1A, 0, 0},
			wantErr: ErrInvalidHeader,
		},
		{
			name:    "bad magic",
			rom:     []byte{'N', 'O', 'S', 0x1A, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0},
			wantErr: ErrInvalidHeader,
		},
		{
			name:    "buffer smaller than declared banks",
			rom:     []byte{'N', 'E', 'S', 0x1A, 1, 1, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0},
			wantErr: ErrInvalidHeader,
		},
		{
			name:    "valid NROM",
			rom:     newTestROM(nil),
			wantErr: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cart, mapper, err := LoadCartridge(tt.rom)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("err = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if cart == nil || mapper == nil {
				t.Fatal("expected non-nil cartridge and mapper")
			}
		})
	}
}

func TestLoadCartridgeUnsupportedMapper(t *testing.T) {
	rom := newTestROM(nil)
	rom[6] = 0x10 // mapper nibble low bits
	rom[7] = 0x00

	_, _, err := LoadCartridge(rom)
	var unsupported *UnsupportedMapperError
	if !errors.As(err, &unsupported) {
		t.Fatalf("err = %v, want *UnsupportedMapperError", err)
	}
	if unsupported.ID != 1 {
		t.Fatalf("mapper ID = %d, want 1", unsupported.ID)
	}
}

func TestLoadCartridgeMirroring(t *testing.T) {
	tests := []struct {
		name  string
		flags byte
		want  Mirroring
	}{
		{"vertical", 0x00, MirrorVertical},
		{"horizontal", 0x01, MirrorHorizontal},
		{"four screen", 0x08, MirrorFourScreen},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rom := newTestROM(nil)
			rom[6] = tt.flags
			cart, _, err := LoadCartridge(rom)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if cart.Mirroring() != tt.want {
				t.Fatalf("Mirroring() = %v, want %v", cart.Mirroring(), tt.want)
			}
		})
	}
}
