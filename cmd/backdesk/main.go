package main

import (
	"github.com/bwmarrin/snowflake"
	"github.com/tillworks/backdesk/internal/config"
	"github.com/tillworks/backdesk/internal/logger"
	"github.com/tillworks/backdesk/internal/migration"
	"github.com/tillworks/backdesk/internal/server"
	"github.com/tillworks/backdesk/pkg/db"
	"go.uber.org/fx"
)

func main() {
	app := fx.New(
		config.Module,
		logger.Module,
		fx.Provide(RegisterSnowflake),
		db.Module,
		migration.Module,
		server.Module,
	)
	app.Run()
}

func RegisterSnowflake() *snowflake.Node {
	node, err := snowflake.NewNode(1)
	if err != nil {
		panic(err)
	}
	return node
}
