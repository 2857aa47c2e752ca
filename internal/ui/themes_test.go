package ui

import "testing"

func TestInitTheme(t *testing.T) {
	saved := GetCurrentTheme()
	t.Cleanup(func() { SetCurrentTheme(saved) })

	InitTheme(true)
	if ColorGreen() != "" || ColorReset() != "" {
		t.Error("--no-color should clear all escape codes")
	}
	if GetCurrentTUITheme() != NoColorTUITheme {
		t.Error("no-color theme should select the uncolored TUI palette")
	}

	t.Setenv("NO_COLOR", "")
	InitTheme(false)
	if GetCurrentTheme().Name != "none" {
		t.Error("NO_COLOR set (even empty) should disable colors")
	}
}

func TestInitTheme_Default(t *testing.T) {
	saved := GetCurrentTheme()
	t.Cleanup(func() { SetCurrentTheme(saved) })

	SetCurrentTheme(DarkTheme)
	if ColorRed() != DarkTheme.Error || ColorBold() != "\033[1m" {
		t.Error("accessors should read the active theme")
	}
	if GetCurrentTUITheme() != DarkTUITheme {
		t.Error("dark theme should select the dark TUI palette")
	}
}
