package main

import (
	"github.com/smallbiznis/incidentbilling/internal/client"
	"github.com/smallbiznis/incidentbilling/internal/clock"
	"github.com/smallbiznis/incidentbilling/internal/config"
	"github.com/smallbiznis/incidentbilling/internal/incident"
	"github.com/smallbiznis/incidentbilling/internal/invoice"
	"github.com/smallbiznis/incidentbilling/internal/migration"
	"github.com/smallbiznis/incidentbilling/internal/observability"
	"github.com/smallbiznis/incidentbilling/internal/rate"
	"github.com/smallbiznis/incidentbilling/internal/server"
	"github.com/smallbiznis/incidentbilling/pkg/db"
	"go.uber.org/fx"
)

func main() {
	app := fx.New(
		// Core infrastructure
		config.Module,
		observability.Module,
		db.Module,
		clock.Module,
		migration.Module,

		// Domains
		client.Module,
		incident.Module,
		rate.Module,
		invoice.Module,

		server.Module,
	)
	app.Run()
}
