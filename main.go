package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/OliveiraNt/kafka-utils/cmd"
	"github.com/OliveiraNt/kafka-utils/internal/utils"
	"github.com/joho/godotenv"
)

func main() {
	_ = godotenv.Load()
	utils.InitLogger()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := cmd.NewRootCmd().ExecuteContext(ctx); err != nil {
		utils.Logger.Error("command failed", "err", err)
		stop()
		os.Exit(1)
	}
}
