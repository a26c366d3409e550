package render

import (
	"bytes"
	"image/png"
	"strings"
	"testing"

	"github.com/muurk/signboard/internal/display"
)

func newTestRasterizer(t *testing.T) *Rasterizer {
	t.Helper()
	r, err := NewRasterizer()
	if err != nil {
		t.Fatalf("NewRasterizer() error = %v", err)
	}
	return r
}

func TestMaskStaticText(t *testing.T) {
	r := newTestRasterizer(t)
	cfg := display.DefaultConfig()
	cfg.Text = "HELLO"

	mask, layout := r.Mask(cfg, 80, 48, 0)

	if mask.Width != 80 || mask.Height != 48 {
		t.Fatalf("mask size = %dx%d, want 80x48", mask.Width, mask.Height)
	}
	if mask.Ink() == 0 {
		t.Error("HELLO should produce lit pixels")
	}
	if want := FontSize("HELLO", 48); layout.FontPx != want {
		t.Errorf("FontPx = %v, want nominal %v", layout.FontPx, want)
	}
	if len(layout.Lines) != 1 || layout.Lines[0] != "HELLO" {
		t.Errorf("Lines = %q, want [HELLO]", layout.Lines)
	}
}

func TestMaskShrinksToFitSingleLine(t *testing.T) {
	r := newTestRasterizer(t)
	cfg := display.DefaultConfig()
	cfg.Text = strings.Repeat("WIDE ", 8)
	cfg.ForceSingleLine = true

	_, layout := r.Mask(cfg, 80, 48, 0)

	if len(layout.Lines) != 1 {
		t.Fatalf("single-line config drew %d lines", len(layout.Lines))
	}
	if nominal := FontSize(cfg.Text, 48); layout.FontPx >= nominal {
		t.Errorf("FontPx = %v, expected shrink below nominal %v", layout.FontPx, nominal)
	}
}

func TestMaskWrapsMultiLine(t *testing.T) {
	r := newTestRasterizer(t)
	cfg := display.DefaultConfig()
	cfg.Text = "THIS SIGN WRAPS ONTO LINES"

	_, layout := r.Mask(cfg, 60, 80, 0)
	if len(layout.Lines) < 2 {
		t.Errorf("expected word wrap onto several lines, got %q", layout.Lines)
	}
}

func TestMaskMarqueeOffset(t *testing.T) {
	r := newTestRasterizer(t)
	cfg := display.DefaultConfig()
	cfg.Text = "HI"
	cfg.MarqueeMode = true

	visible, _ := r.Mask(cfg, 80, 48, 0)
	if visible.Ink() == 0 {
		t.Fatal("text at offset 0 should be visible")
	}

	offscreen, _ := r.Mask(cfg, 80, 48, -1000)
	if offscreen.Ink() != 0 {
		t.Errorf("text scrolled far left should leave no ink, got %d", offscreen.Ink())
	}
}

func TestMaskZeroSize(t *testing.T) {
	r := newTestRasterizer(t)
	cfg := display.DefaultConfig()
	cfg.Text = "X"

	mask, _ := r.Mask(cfg, 0, 10, 0)
	if mask.Width != 0 || mask.Ink() != 0 || len(mask.HalfBlocks()) != 0 {
		t.Errorf("zero-width mask = %+v", mask)
	}
}

func TestEncodePNGUsesConfigColors(t *testing.T) {
	r := newTestRasterizer(t)
	cfg := display.PresentationConfig{
		Text:            "HI",
		TextColor:       display.Blue,
		BackgroundColor: display.Pink,
	}

	var buf bytes.Buffer
	if _, err := r.EncodePNG(&buf, cfg, 64, 32); err != nil {
		t.Fatalf("EncodePNG() error = %v", err)
	}

	img, err := png.Decode(&buf)
	if err != nil {
		t.Fatalf("png.Decode() error = %v", err)
	}
	if b := img.Bounds(); b.Dx() != 64 || b.Dy() != 32 {
		t.Fatalf("image size = %v, want 64x32", b)
	}

	cr, cg, cb, _ := img.At(0, 0).RGBA()
	if cr>>8 != 0xFF || cg>>8 != 0xC0 || cb>>8 != 0xCB {
		t.Errorf("corner pixel = %02X%02X%02X, want background FFC0CB", cr>>8, cg>>8, cb>>8)
	}
}
