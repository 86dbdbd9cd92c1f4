package prices

import (
	"supplements-backend/lib/telemetry"
)

var tracer = telemetry.Tracer("supplements.lib.scrapers.prices")

const (
	report_client_fetch_price = "client.fetch-price"
)
