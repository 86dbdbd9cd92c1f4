package main

import (
	"net/http"
	"supplements-backend/internal/components/telemetry"
	"supplements-backend/lib/serviceutil"
	libtelemetry "supplements-backend/lib/telemetry"
	"supplements-backend/proto/supplements/v1/supplementsv1connect"
	"supplements-backend/services/supplements"
	"supplements-backend/services/supplements/connectapi"
	"supplements-backend/services/supplements/httpapi"

	"connectrpc.com/connect"
)

type RpcConfig struct {
	// calls must carry "Authorization: Bearer <access_token>" when set
	AccessToken string `json:"access_token"`
	// records the json of every request and response on its span
	TraceInputOutput bool `json:"trace_input_output"`
}

// NewMux serves the connect service next to the json api, which keeps
// every path the connect service does not claim.
func NewMux(svc supplements.Service, tel telemetry.API, cfg RpcConfig) *http.ServeMux {
	mux := http.NewServeMux()
	mux.Handle("/", httpapi.NewHandler(svc, tel).Router())
	InitRpc(mux, svc, tel, cfg)
	return mux
}

func InitRpc(mux *http.ServeMux, svc supplements.Service, tel telemetry.API, cfg RpcConfig) {
	supplementsv1connect.SupplementsServiceTracer = libtelemetry.Tracer("supplements-rpc")

	server := supplementsv1connect.NewInstrumentedSupplementsServiceClient(
		connectapi.NewServer(svc, tel),
	)
	server.WithInputOutput = cfg.TraceInputOutput

	mux.Handle(supplementsv1connect.NewSupplementsServiceHandler(
		server,
		connect.WithInterceptors(
			serviceutil.NewConnectOtelInterceptor(),
			serviceutil.VerifyAccessTokenInterceptor(cfg.AccessToken),
		),
	))
}
