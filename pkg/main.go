package main

import (
	"os"

	"github.com/grafana/grafana-plugin-sdk-go/backend/datasource"
	"github.com/grafana/grafana-plugin-sdk-go/backend/log"

	"github.com/grafana/surrealdb-datasource/pkg/internal"
	"github.com/grafana/surrealdb-datasource/pkg/plugin"
)

const pluginID = "grafana-surrealdb-datasource"

func main() {
	log.DefaultLogger.Info("starting plugin", "id", pluginID, "version", internal.Version, "hash", internal.BuildHash)

	// Start listening to requests sent from Grafana. This call is blocking so
	// it won't finish until Grafana shuts down the process or the plugin choose
	// to exit by itself using os.Exit. Manage automatically manages life cycle
	// of datasource instances.
	if err := datasource.Manage(pluginID, plugin.NewDatasource, datasource.ManageOpts{}); err != nil {
		log.DefaultLogger.Error(err.Error())
		os.Exit(1)
	}
}
