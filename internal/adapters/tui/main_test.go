package tui

import (
	"os"
	"testing"

	"github.com/OliveiraNt/kafka-utils/internal/utils"
)

func TestMain(m *testing.M) {
	utils.InitLogger()
	utils.SetLogLevel("error")
	os.Exit(m.Run())
}
