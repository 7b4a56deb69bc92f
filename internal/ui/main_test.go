package ui

import (
	"os"
	"testing"

	zone "github.com/lrstanley/bubblezone"
)

func TestMain(m *testing.M) {
	zone.NewGlobal()

	code := m.Run()
	zone.Close()
	os.Exit(code)
}
