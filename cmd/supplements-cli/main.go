package main

import (
	"context"
	"supplements-backend/cmd/supplements-cli/commands"
	"supplements-backend/lib/serviceutil"
	"supplements-backend/lib/telemetry"
)

func main() {
	telemetry.InitSlog(false)
	ctx := serviceutil.SignalContext()
	tel, err := telemetry.SetupFromEnv(ctx, "supplements-cli")
	if err == nil {
		defer tel.Shutdown(context.Background())
	}
	commands.ExecuteContext(ctx)
}
